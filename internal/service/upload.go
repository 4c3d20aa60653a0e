// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/mod/semver"

	"github.com/clinitab/uplink/internal/adapter"
	"github.com/clinitab/uplink/internal/config"
	"github.com/clinitab/uplink/internal/logger"
	"github.com/clinitab/uplink/internal/policy"
	"github.com/clinitab/uplink/internal/store"
	"github.com/clinitab/uplink/models"
)

// UploadContext carries everything one session needs from its caller. The
// selected patient and the callbacks are passed in explicitly rather than
// read from ambient state.
type UploadContext struct {
	// Mode selects the post-success local mutation semantics.
	Mode models.UploadMode

	// SessionToken is the transport credential for this session,
	// established out-of-band. It is cleared from the transport when the
	// session finalizes, whatever the outcome.
	SessionToken string

	// SelectedPatientID is the caller's currently selected patient, or 0
	// when none is selected. If that patient leaves the device this
	// session, OnPatientSelectionReset is invoked during finalization.
	SelectedPatientID int64

	// Notifier receives progress and outcome text. Optional.
	Notifier Notifier

	// OnComplete fires exactly once when the session finalizes. Optional.
	OnComplete func(result *UploadResult)

	// OnPatientSelectionReset fires when the selected patient was removed
	// from the device by this session. Optional.
	OnPatientSelectionReset func()
}

// UploadResult is the outcome of one session, delivered both as the Upload
// return value and through UploadContext.OnComplete.
type UploadResult struct {
	Succeeded   []string
	Failed      []string
	EmptyTables []string

	Cancelled bool

	ServerErrors []string
	LocalErrors  []string

	// Message is the human-readable summary shown to the user.
	Message string
}

type uploadService struct {
	records  store.RecordStore
	flags    store.TaskFlagger
	patients store.PatientRepository
	settings store.SettingsStore

	adapter   adapter.ServerAdapter
	catalogue models.Catalogue
	syncCfg   config.ClientSync
	device    config.ClientDevice

	logger *logger.Logger

	mu     sync.Mutex
	active *syncSession
}

// NewUploadService wires the upload engine to its collaborators.
func NewUploadService(
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	catalogue models.Catalogue,
	cfg *config.ClientConfig,
	log *logger.Logger,
) UploadService {
	return &uploadService{
		records:   storages.Records,
		flags:     storages.TaskFlags,
		patients:  storages.Patients,
		settings:  storages.Settings,
		adapter:   serverAdapter,
		catalogue: catalogue,
		syncCfg:   cfg.Sync,
		device:    cfg.Device,
		logger:    log,
	}
}

// Upload implements [UploadService].
func (s *uploadService) Upload(ctx context.Context, uploadCtx UploadContext) (*UploadResult, error) {
	if uploadCtx.Notifier == nil {
		uploadCtx.Notifier = nopNotifier{}
	}

	sessCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	sess := newSyncSession(uploadCtx.Mode, cancel)

	s.mu.Lock()
	if s.active != nil {
		s.mu.Unlock()
		return nil, ErrUploadInProgress
	}
	s.active = sess
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.active = nil
		s.mu.Unlock()
	}()

	runErr := s.run(sessCtx, sess, uploadCtx)

	// finalization must not be interrupted by the cancelled session context
	result := s.finalize(context.WithoutCancel(ctx), sess, uploadCtx, runErr)

	if runErr != nil && !result.Cancelled {
		return result, runErr
	}
	return result, nil
}

// Cancel implements [UploadService].
func (s *uploadService) Cancel() {
	s.mu.Lock()
	sess := s.active
	s.mu.Unlock()

	if sess != nil {
		sess.requestCancel()
	}
}

// fail records one failure step: the transport/server detail goes to
// serverErrors, the human context string to localErrors.
func (s *uploadService) fail(sess *syncSession, step string, err error) error {
	sess.recordError(err.Error(), step)
	s.logger.Error().Err(err).Str("step", step).Msg("upload step failed")
	return fmt.Errorf("%s: %w", step, err)
}

// run walks the session's state sequence in strict forward order. Any error
// return routes the session to finalization; there are no retries and no
// backward transitions. A user cancel surfaces as errCancelled.
func (s *uploadService) run(ctx context.Context, sess *syncSession, uploadCtx UploadContext) error {
	serverURL, err := s.settings.ServerURL(ctx)
	if err != nil {
		return s.fail(sess, "failed to read server address", err)
	}
	if strings.TrimSpace(serverURL) == "" {
		sess.recordError("", "no server address configured")
		return ErrNoServerConfigured
	}

	deviceID, err := s.settings.DeviceID(ctx)
	if err != nil {
		return s.fail(sess, "failed to read device ID", err)
	}
	if deviceID == "" {
		sess.recordError("", "device has never been registered")
		return ErrDeviceNotRegistered
	}
	s.adapter.SetCredentials(deviceID, s.device.User, uploadCtx.SessionToken)

	uploadCtx.Notifier.ShowWait("Checking device registration with the server...")
	if err = s.adapter.CheckDeviceRegistered(ctx); err != nil {
		return s.fail(sess, "server does not recognise this device", err)
	}
	if err = s.adapter.CheckUploadUser(ctx); err != nil {
		return s.fail(sess, "server rejected the upload user", err)
	}

	uploadCtx.Notifier.ShowWait("Fetching server identity...")
	identity, err := s.adapter.GetIDInfo(ctx)
	if err != nil {
		return s.fail(sess, "failed to fetch identity info", err)
	}

	if err = validateServerVersion(identity.ServerVersion, s.syncCfg.MinServerVersion); err != nil {
		sess.recordError(err.Error(), "server software is too old for this client")
		return err
	}

	if err = s.persistAndCompareIdentity(ctx, sess, identity); err != nil {
		return err
	}

	if err = s.validatePatientPolicies(ctx, sess, identity); err != nil {
		return err
	}

	uploadCtx.Notifier.ShowWait("Starting upload...")
	if err = s.adapter.StartUpload(ctx); err != nil {
		return s.fail(sess, "failed to start the upload transaction", err)
	}
	if sess.mode.Preserving() {
		if err = s.adapter.StartPreservation(ctx); err != nil {
			return s.fail(sess, "failed to start preservation", err)
		}
	}

	localTables, err := s.records.TableNames(ctx)
	if err != nil {
		return s.fail(sess, "failed to enumerate local tables", err)
	}
	sess.setTables(selectTables(localTables, s.catalogue, s.logger))

	for i, table := range sess.tableNames {
		if sess.isCancelled() {
			return errCancelled
		}
		uploadCtx.Notifier.Progress(table, i, len(sess.tableNames))

		err = s.transferTable(ctx, sess, table)
		if errors.Is(err, errCancelled) {
			return err
		}
		if err != nil {
			// subsequent tables are never attempted: end_upload assumes
			// a fully consistent table set
			return s.fail(sess, fmt.Sprintf("failed to upload table %q", table), err)
		}
	}

	if len(sess.emptyTables) > 0 {
		if err = s.adapter.UploadEmptyTables(ctx, sess.emptyTables); err != nil {
			return s.fail(sess, "failed to report empty tables", err)
		}
		if sess.isCancelled() {
			return errCancelled
		}
		for _, table := range sess.emptyTables {
			sess.markSucceeded(table)
		}
	}

	if err = s.adapter.EndUpload(ctx); err != nil {
		return s.fail(sess, "failed to commit the upload", err)
	}
	return nil
}

// validateServerVersion gates the session on the server's reported software
// version. Too-old servers are locally fatal: no retry and no further server
// exchange.
func validateServerVersion(reported, minimum string) error {
	v := semver.Canonical("v" + strings.TrimPrefix(reported, "v"))
	min := semver.Canonical("v" + strings.TrimPrefix(minimum, "v"))
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: unparseable server version %q", ErrServerVersionTooOld, reported)
	}
	if semver.Compare(v, min) < 0 {
		return fmt.Errorf("%w: server reports %s, minimum is %s", ErrServerVersionTooOld, reported, minimum)
	}
	return nil
}

// persistAndCompareIdentity stores the fresh identity into settings first and
// only then, for move-based modes, compares its identifier descriptions with
// the previously cached ones. The persistence side effect happens even when
// the comparison fails the session.
func (s *uploadService) persistAndCompareIdentity(ctx context.Context, sess *syncSession, fresh models.ServerIdentity) error {
	cached, err := s.settings.ServerIdentity(ctx)
	if err != nil {
		return s.fail(sess, "failed to read cached server identity", err)
	}
	if err = s.settings.SetServerIdentity(ctx, fresh); err != nil {
		return s.fail(sess, "failed to persist server identity", err)
	}

	if sess.mode.Preserving() && cached.SlotDescriptionsDiffer(fresh) {
		sess.recordError("", "server identifier descriptions have changed since the last sync")
		return ErrIdentityMismatch
	}
	return nil
}

// validatePatientPolicies checks every local patient against the server's
// upload policy and, for move-based modes, its finalize policy. On success in
// a move-based mode it mirrors each patient's move-off-tablet flag onto that
// patient's task instances, recording what it flagged so a later failure can
// undo it.
func (s *uploadService) validatePatientPolicies(ctx context.Context, sess *syncSession, identity models.ServerIdentity) error {
	patients, err := s.patients.AllPatients(ctx)
	if err != nil {
		return s.fail(sess, "failed to read patient records", err)
	}

	// an uncompilable policy is satisfiable by nothing
	uploadPolicy, err := policy.Compile(identity.UploadPolicy)
	if err != nil {
		s.logger.Warn().Err(err).Str("policy", identity.UploadPolicy).Msg("upload policy failed to compile")
	}
	var finalizePolicy *policy.Policy
	if sess.mode.Preserving() {
		finalizePolicy, err = policy.Compile(identity.FinalizePolicy)
		if err != nil {
			s.logger.Warn().Err(err).Str("policy", identity.FinalizePolicy).Msg("finalize policy failed to compile")
		}
	}

	uploadViolations, finalizeViolations := 0, 0
	for _, p := range patients {
		if !uploadPolicy.Satisfies(p) {
			uploadViolations++
		}
		if sess.mode.Preserving() && !finalizePolicy.Satisfies(p) {
			finalizeViolations++
		}
	}
	if uploadViolations > 0 || finalizeViolations > 0 {
		msg := fmt.Sprintf("%d patient(s) fail the upload policy, %d fail the finalize policy",
			uploadViolations, finalizeViolations)
		sess.recordError("", msg)
		return fmt.Errorf("%w: %s", ErrPolicyViolation, msg)
	}

	for _, p := range patients {
		if !p.MoveOffTablet {
			continue
		}
		sess.patientIdsPendingRemoval = append(sess.patientIdsPendingRemoval, p.ID)

		// a plain copy removes nothing, so task move flags stay untouched
		if !sess.mode.Preserving() {
			continue
		}
		if err = s.flags.SetMoveFlagsForPatient(ctx, p.ID, true); err != nil {
			return s.fail(sess, fmt.Sprintf("failed to flag tasks of patient %d for move", p.ID), err)
		}
		sess.flaggedPatients = append(sess.flaggedPatients, p.ID)
	}
	return nil
}

// transferTable sends one table using its strategy. Zero-row tables are
// deferred into the empty-table batch instead of being sent individually.
func (s *uploadService) transferTable(ctx context.Context, sess *syncSession, table string) error {
	if table == models.BlobTable {
		return s.transferBlobs(ctx, sess)
	}

	count, err := s.records.CountRows(ctx, table)
	if err != nil {
		return fmt.Errorf("count rows: %w", err)
	}
	if count == 0 {
		sess.deferEmpty(table)
		return nil
	}

	fields, err := s.records.FieldNames(ctx, table)
	if err != nil {
		return fmt.Errorf("list fields: %w", err)
	}
	rows, err := s.records.AllRows(ctx, table)
	if err != nil {
		return fmt.Errorf("read rows: %w", err)
	}

	transfer := models.TableTransfer{
		Table:    table,
		Fields:   fields,
		Strategy: chooseStrategy(rows, s.syncCfg.RecordwiseThresholdBytes),
	}
	s.logger.Debug().Str("table", table).Stringer("strategy", transfer.Strategy).
		Int("rows", len(rows)).Msg("transferring table")

	switch transfer.Strategy {
	case models.StrategyRecordwise:
		keys := make([]int64, 0, len(rows))
		for _, row := range rows {
			keys = append(keys, row.PK)
		}
		// prune first so the server ends with exactly the local key set
		if err = s.adapter.DeleteWhereKeyNot(ctx, transfer.Table, keys); err != nil {
			return fmt.Errorf("prune server keys: %w", err)
		}
		for _, row := range rows {
			if sess.isCancelled() {
				return errCancelled
			}
			if err = s.adapter.UploadRecord(ctx, transfer.Table, transfer.Fields, row); err != nil {
				return fmt.Errorf("upload record %d: %w", row.PK, err)
			}
		}
	default:
		if err = s.adapter.UploadTable(ctx, transfer.Table, transfer.Fields, rows); err != nil {
			return fmt.Errorf("upload table: %w", err)
		}
	}

	if sess.isCancelled() {
		// an acknowledgment racing with a cancel is discarded: the table
		// keeps its unacknowledged status
		return errCancelled
	}
	sess.markSucceeded(table)
	return nil
}

// transferBlobs runs the blob delta protocol: the server is told every local
// key and its modification timestamp and replies with exactly the keys it
// still needs; only those rows are sent, binary payload inlined.
func (s *uploadService) transferBlobs(ctx context.Context, sess *syncSession) error {
	keys, err := s.records.PrimaryKeysWithTimestamps(ctx, models.BlobTable)
	if err != nil {
		return fmt.Errorf("list blob keys: %w", err)
	}
	if len(keys) == 0 {
		sess.deferEmpty(models.BlobTable)
		return nil
	}

	needed, err := s.adapter.WhichKeysToSend(ctx, models.BlobTable, keys)
	if err != nil {
		return fmt.Errorf("ask which blobs to send: %w", err)
	}
	if len(needed) == 0 {
		// server needs nothing: the table is already fully synced
		sess.markSucceeded(models.BlobTable)
		return nil
	}

	fields, err := s.records.FieldNames(ctx, models.BlobTable)
	if err != nil {
		return fmt.Errorf("list blob fields: %w", err)
	}
	for _, pk := range needed {
		if sess.isCancelled() {
			return errCancelled
		}
		row, err := s.records.Row(ctx, models.BlobTable, pk)
		if err != nil {
			return fmt.Errorf("read blob %d: %w", pk, err)
		}
		if err = s.adapter.UploadRecord(ctx, models.BlobTable, fields, row); err != nil {
			return fmt.Errorf("upload blob %d: %w", pk, err)
		}
	}

	if sess.isCancelled() {
		return errCancelled
	}
	sess.markSucceeded(models.BlobTable)
	return nil
}

// finalize runs exactly once per session, whatever path led here. It always
// clears the transport credential, applies the mode-specific local mutation
// on success, undoes provisional move flags on failure or cancel, and fires
// the caller's callbacks.
func (s *uploadService) finalize(ctx context.Context, sess *syncSession, uploadCtx UploadContext, runErr error) *UploadResult {
	if !sess.beginFinalize() {
		return nil
	}
	s.adapter.ClearCredentials()

	cancelled := sess.isCancelled() || errors.Is(runErr, errCancelled) || errors.Is(runErr, context.Canceled)

	succeeded, failed := sess.partition()
	result := &UploadResult{
		Succeeded:    succeeded,
		Failed:       failed,
		EmptyTables:  append([]string(nil), sess.emptyTables...),
		Cancelled:    cancelled,
		ServerErrors: append([]string(nil), sess.serverErrors...),
		LocalErrors:  append([]string(nil), sess.localErrors...),
	}

	switch {
	case runErr == nil && !cancelled:
		s.finalizeSuccess(ctx, sess, uploadCtx, result)
	case cancelled:
		s.undoProvisionalFlags(ctx, sess, result)
		result.Message = "Upload cancelled."
	default:
		s.undoProvisionalFlags(ctx, sess, result)
		result.Message = failureMessage(result)
	}

	title := "Upload"
	uploadCtx.Notifier.ShowMessage(title, result.Message)
	if uploadCtx.OnComplete != nil {
		uploadCtx.OnComplete(result)
	}
	return result
}

func (s *uploadService) finalizeSuccess(ctx context.Context, sess *syncSession, uploadCtx UploadContext, result *UploadResult) {
	serverURL, err := s.settings.ServerURL(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to read server address during finalization")
	}
	if err = s.settings.SetLastUpload(ctx, time.Now(), serverURL); err != nil {
		s.logger.Error().Err(err).Msg("failed to record last successful upload")
		result.LocalErrors = append(result.LocalErrors, "failed to record last successful upload")
	}

	switch sess.mode {
	case models.UploadCopy:
		// the move flags were provisional; the source database stays intact
		for _, table := range sess.tableNames {
			if err = s.records.ClearMoveFlags(ctx, table); err != nil {
				s.logger.Error().Err(err).Str("table", table).Msg("failed to clear move flags")
				result.LocalErrors = append(result.LocalErrors, fmt.Sprintf("failed to clear move flags on %q", table))
			}
		}
	case models.UploadMoveKeepingPatients:
		if err = s.records.WipeAll(ctx, true); err != nil {
			s.logger.Error().Err(err).Msg("failed to wipe local data")
			result.LocalErrors = append(result.LocalErrors, "failed to wipe local data after move")
		}
	case models.UploadMove:
		if err = s.records.WipeAll(ctx, false); err != nil {
			s.logger.Error().Err(err).Msg("failed to wipe local data")
			result.LocalErrors = append(result.LocalErrors, "failed to wipe local data after move")
		}
	}

	if uploadCtx.OnPatientSelectionReset != nil {
		switch {
		case sess.mode == models.UploadMove:
			// any patient may have been removed
			uploadCtx.OnPatientSelectionReset()
		case uploadCtx.SelectedPatientID != 0 && sess.removesPatient(uploadCtx.SelectedPatientID):
			uploadCtx.OnPatientSelectionReset()
		}
	}

	result.Message = fmt.Sprintf("Upload successful (%s): %d table(s) transferred, %d empty.",
		sess.mode, len(result.Succeeded), len(result.EmptyTables))
}

// undoProvisionalFlags unsets the per-task move flags that policy validation
// set, so a retried session starts from clean state.
func (s *uploadService) undoProvisionalFlags(ctx context.Context, sess *syncSession, result *UploadResult) {
	for _, patientID := range sess.flaggedPatients {
		if err := s.flags.SetMoveFlagsForPatient(ctx, patientID, false); err != nil {
			s.logger.Error().Err(err).Int64("patient", patientID).Msg("failed to unset provisional move flags")
			result.LocalErrors = append(result.LocalErrors, fmt.Sprintf("failed to unset move flags for patient %d", patientID))
		}
	}
}

func failureMessage(result *UploadResult) string {
	var b strings.Builder
	b.WriteString("Upload failed.")
	if len(result.Succeeded) > 0 || len(result.Failed) > 0 {
		fmt.Fprintf(&b, " Transferred: %s. Not transferred: %s.",
			joinOrNone(result.Succeeded), joinOrNone(result.Failed))
	}
	for _, e := range result.LocalErrors {
		b.WriteString("\n")
		b.WriteString(e)
	}
	for _, e := range result.ServerErrors {
		b.WriteString("\n")
		b.WriteString(e)
	}
	return b.String()
}

func joinOrNone(tables []string) string {
	if len(tables) == 0 {
		return "none"
	}
	return strings.Join(tables, ", ")
}
