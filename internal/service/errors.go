package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-nft-keeper/models"
)

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("version is not specified")

	// ErrToggleInProgress is returned by Toggle when a toggle of the same
	// identifier has not settled yet. No request is made and the local set
	// is left untouched.
	ErrToggleInProgress = errors.New("toggle already in progress for this identifier")

	ErrInvalidSort = errors.New("invalid sort order")

	ErrCollectionNotFound = errors.New("collection not found")
)

// FailureKind classifies why a whole-set persist failed.
type FailureKind int

const (
	// FailureNetwork covers requests that never got an answer: connection
	// errors, timeouts and cancelled contexts.
	FailureNetwork FailureKind = iota + 1
	// FailureRejected covers non-2xx answers from the backend.
	FailureRejected
)

func (k FailureKind) String() string {
	switch k {
	case FailureNetwork:
		return "network"
	case FailureRejected:
		return "rejected"
	}
	return "unknown"
}

// ToggleError is delivered in [models.ToggleResult] when a toggle was rolled
// back.
type ToggleError struct {
	ID   models.Identifier
	Kind FailureKind
	Err  error
}

func (e *ToggleError) Error() string {
	return fmt.Sprintf("toggle %s rolled back (%s failure): %v", e.ID, e.Kind, e.Err)
}

func (e *ToggleError) Unwrap() error {
	return e.Err
}
