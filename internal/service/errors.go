package service

import "errors"

var (
	ErrUploadInProgress    = errors.New("an upload session is already in progress")
	ErrNoServerConfigured  = errors.New("no server address configured")
	ErrDeviceNotRegistered = errors.New("device is not registered with the server")
	ErrServerVersionTooOld = errors.New("server software version is below the minimum supported")
	ErrIdentityMismatch    = errors.New("server identifier descriptions differ from the locally cached ones")
	ErrPolicyViolation     = errors.New("patient records violate the server's identifier policy")

	// ErrStringsRefreshFailed marks the half-success registration outcome:
	// the device was registered and the identity persisted, but the
	// follow-up translation-string fetch failed.
	ErrStringsRefreshFailed = errors.New("device registered but translation string refresh failed")

	// errCancelled routes a user cancel to finalization internally; it is
	// never returned from the public API (a cancelled session is not an
	// error).
	errCancelled = errors.New("upload cancelled")
)
