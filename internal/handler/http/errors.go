package http

import "errors"

var (
	// ErrMissingToken is logged when a protected route is called without the
	// API token header.
	ErrMissingToken = errors.New("empty api token header")

	// ErrInvalidToken is logged when the API token header does not match.
	ErrInvalidToken = errors.New("api token mismatch")

	// ErrInvalidForm is returned when the body of a whole-set PUT is not a
	// parseable url-encoded form.
	ErrInvalidForm = errors.New("invalid form body")

	// ErrMissingSetField is returned for a whole-set PUT without the set
	// field.
	ErrMissingSetField = errors.New("whole-set field is missing")
)
