// Package workers runs the client's background jobs. The only job today is
// the periodic refresh of server identity metadata and translation strings.
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/clinitab/uplink/internal/logger"
	"github.com/clinitab/uplink/internal/service"
)

// RefreshJob periodically re-fetches server identity metadata and translation
// strings. The job is idle until Start is called.
type RefreshJob interface {
	// Start stops any previously running job, then launches a background
	// goroutine calling RefreshServerInfo every interval. A non-positive
	// interval defaults to one hour. The goroutine exits when ctx is
	// cancelled or Stop is called.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the background goroutine and blocks until it has fully
	// exited. Safe to call when the job is not running.
	Stop()
}

type refreshJob struct {
	registration service.RegistrationService
	logger       *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a refreshJob over the registration service.
func NewRefreshJob(registration service.RegistrationService, log *logger.Logger) RefreshJob {
	return &refreshJob{registration: registration, logger: log}
}

// Start implements [RefreshJob].
func (j *refreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.registration.RefreshServerInfo(jobCtx); err != nil {
					j.logger.Warn().Err(err).Msg("periodic server info refresh failed")
				}
			}
		}
	}()
}

// Stop implements [RefreshJob].
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
