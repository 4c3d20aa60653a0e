// SPDX-License-Identifier: Apache-2.0

// Package service contains the client's business logic: the upload engine
// that synchronizes local records with the server, and the registration
// engine that establishes and refreshes server identity metadata.
package service

import (
	"context"
)

// UploadService runs one upload session at a time. A session walks a fixed
// sequence of server exchanges; any failure routes to a single finalization
// step, so the caller's completion callback fires exactly once per Upload
// call regardless of outcome.
type UploadService interface {
	// Upload runs a complete upload session in the given mode and returns
	// its result. Exactly one session may be active at a time; a second
	// concurrent call fails with ErrUploadInProgress.
	//
	// Cancellation is cooperative: a cancel request stops the session
	// before its next server exchange, and a response arriving for an
	// exchange dispatched before the cancel is discarded. A cancelled
	// session returns a result with Cancelled set and a nil error.
	Upload(ctx context.Context, uploadCtx UploadContext) (*UploadResult, error)

	// Cancel requests cancellation of the active session, if any. It is
	// safe to call at any time, including when no session is running.
	Cancel()
}

// RegistrationService is the first-contact and metadata-refresh protocol: a
// single pass, not checkpointed and not resumable.
type RegistrationService interface {
	// Register registers this device with the configured server, persists
	// the returned server identity metadata and the registration time,
	// then fetches and caches the server's translation strings. A failure
	// after the registration itself succeeded is reported as
	// ErrStringsRefreshFailed so the caller can tell the two halves apart.
	Register(ctx context.Context) error

	// RefreshServerInfo re-fetches the server identity metadata and the
	// translation strings, overwriting the local copies.
	RefreshServerInfo(ctx context.Context) error
}

// Notifier is the injected progress/result surface. The engines never talk
// to a UI directly; they describe what is happening through this interface.
type Notifier interface {
	// ShowWait announces a long-running step about to start.
	ShowWait(message string)

	// Progress reports per-table progress: done of total tables finished.
	Progress(table string, done, total int)

	// ShowMessage presents a final human-readable outcome.
	ShowMessage(title, message string)
}

// nopNotifier is used when the caller supplies no Notifier.
type nopNotifier struct{}

func (nopNotifier) ShowWait(string)            {}
func (nopNotifier) Progress(string, int, int)  {}
func (nopNotifier) ShowMessage(string, string) {}
