package client

import "errors"

var (
	// ErrUnknownCommand is returned for a command the client does not know.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrMissingArgument is returned when a command is called without its
	// required argument.
	ErrMissingArgument = errors.New("missing argument")

	// ErrMissingOwner is returned when the profile or cart id needed by a
	// command is not configured.
	ErrMissingOwner = errors.New("owner id is not configured")
)
