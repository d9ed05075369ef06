package adapter

import "errors"

// Failure classes. Every error returned by the HTTP adapter wraps exactly one
// of them.
var (
	// ErrTransport marks requests that failed before a response was received
	// (connection refused, timeout, cancelled context).
	ErrTransport = errors.New("transport failure")

	// ErrServerRejected marks any non-2xx response.
	ErrServerRejected = errors.New("server rejected request")

	// ErrDecode marks 2xx responses whose body could not be decoded.
	ErrDecode = errors.New("response decode failure")
)

// Status-specific sentinels, always joined with [ErrServerRejected].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// ErrUnknownMembershipKind is returned when an owner carries a kind the
// backend has no endpoint for.
var ErrUnknownMembershipKind = errors.New("unknown membership kind")
