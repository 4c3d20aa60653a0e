package service

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/clinitab/uplink/models"
)

// tableStatus tracks one table's fate within a session.
type tableStatus int

const (
	// statusFailed is the initial status of every selected table; it is
	// corrected to statusSucceeded as the server acknowledges each table,
	// so a session that aborts mid-loop reports every unacknowledged table
	// as failed without extra bookkeeping.
	statusFailed tableStatus = iota
	statusSucceeded
)

// syncSession is the working state of one upload invocation. It is created
// when Upload is called and discarded after finalization fires.
type syncSession struct {
	mode models.UploadMode

	// tableNames is the ordered transfer set, fixed at session start.
	tableNames []string

	mu          sync.Mutex
	status      map[string]tableStatus
	emptyTables []string

	// patientIdsPendingRemoval lists patients flagged to leave the device
	// this session; consulted when deciding whether the caller's patient
	// selection must be reset.
	patientIdsPendingRemoval []int64

	// flaggedPatients lists patients whose task instances had move flags
	// set by policy validation; on failure or cancel those flags are unset
	// again so a retry starts clean.
	flaggedPatients []int64

	serverErrors []string
	localErrors  []string

	cancelled atomic.Bool
	finalized atomic.Bool
	cancel    context.CancelFunc
}

func newSyncSession(mode models.UploadMode, cancel context.CancelFunc) *syncSession {
	return &syncSession{
		mode:   mode,
		status: make(map[string]tableStatus),
		cancel: cancel,
	}
}

// setTables fixes the transfer set and initializes every table's status.
func (s *syncSession) setTables(tables []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tableNames = tables
	for _, t := range tables {
		s.status[t] = statusFailed
	}
}

func (s *syncSession) markSucceeded(table string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status[table] = statusSucceeded
}

// deferEmpty records a zero-row table for the single batched notification
// sent after the per-table loop.
func (s *syncSession) deferEmpty(table string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emptyTables = append(s.emptyTables, table)
}

// partition returns the succeeded and failed table lists, each sorted.
func (s *syncSession) partition() (succeeded, failed []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tableNames {
		if s.status[t] == statusSucceeded {
			succeeded = append(succeeded, t)
		} else {
			failed = append(failed, t)
		}
	}
	sort.Strings(succeeded)
	sort.Strings(failed)
	return succeeded, failed
}

func (s *syncSession) recordError(serverMsg, localMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if serverMsg != "" {
		s.serverErrors = append(s.serverErrors, serverMsg)
	}
	if localMsg != "" {
		s.localErrors = append(s.localErrors, localMsg)
	}
}

// requestCancel flips the cancelled flag and cancels the session context so a
// dispatched exchange is abandoned best-effort.
func (s *syncSession) requestCancel() {
	s.cancelled.Store(true)
	if s.cancel != nil {
		s.cancel()
	}
}

func (s *syncSession) isCancelled() bool {
	return s.cancelled.Load()
}

// beginFinalize reports whether the caller won the right to finalize; it
// returns true exactly once per session.
func (s *syncSession) beginFinalize() bool {
	return s.finalized.CompareAndSwap(false, true)
}

func (s *syncSession) removesPatient(patientID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.patientIdsPendingRemoval {
		if id == patientID {
			return true
		}
	}
	return false
}
