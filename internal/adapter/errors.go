package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrServerReported is wrapped around application-level failures: the
	// HTTP exchange succeeded but the reply's success flag was unset. The
	// server-supplied message is included in the wrapping error text.
	ErrServerReported = errors.New("server reported failure")
)
