package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyOwnerID      = errors.New("owner ID is required")
	ErrInvalidKind       = errors.New("invalid membership kind")
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrNilIdentifiers    = errors.New("identifier list must be set, use an empty list for the empty set")
	ErrInvalidSort       = errors.New("invalid sort order")
)
