package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-nft-keeper/models"
)

// Field names accepted by [MembershipValidator].
const (
	// FieldOwnerID targets Owner.ID.
	FieldOwnerID = "owner_id"

	// FieldKind targets Owner.Kind.
	FieldKind = "kind"

	// FieldIDs targets the identifier list of a whole-set update.
	FieldIDs = "ids"
)

// MembershipValidator validates owners, whole-set updates, identifiers and
// sort orders.
type MembershipValidator struct{}

// NewMembershipValidator returns a [MembershipValidator] as a [Validator].
func NewMembershipValidator() Validator {
	return &MembershipValidator{}
}

// Validate dispatches on the dynamic type of obj. Supported types, by value
// or pointer: models.Owner, models.MembershipUpdate, models.Identifier,
// models.NFTSort and models.CollectionSort. Any other type yields
// ErrUnsupportedType.
func (v *MembershipValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Owner:
		return v.validateOwner(value, fields...)
	case *models.Owner:
		return v.validateOwner(*value, fields...)

	case models.MembershipUpdate:
		return v.validateUpdate(value, fields...)
	case *models.MembershipUpdate:
		return v.validateUpdate(*value, fields...)

	case models.Identifier:
		return validateIdentifier(value)
	case *models.Identifier:
		return validateIdentifier(*value)

	case models.NFTSort:
		if !value.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidSort, value)
		}
		return nil
	case models.CollectionSort:
		if !value.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidSort, value)
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

// validateOwner checks FieldOwnerID and FieldKind by default.
func (v *MembershipValidator) validateOwner(owner models.Owner, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldKind}
	}

	for _, f := range fields {
		switch f {
		case FieldOwnerID:
			if owner.ID == "" {
				return ErrEmptyOwnerID
			}
		case FieldKind:
			if !owner.Kind.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidKind, owner.Kind)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUpdate checks the owner and every identifier by default.
// Duplicated identifiers are accepted: the backend stores lists as sent.
func (v *MembershipValidator) validateUpdate(update models.MembershipUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldKind, FieldIDs}
	}

	for _, f := range fields {
		switch f {
		case FieldOwnerID, FieldKind:
			if err := v.validateOwner(update.Owner, f); err != nil {
				return err
			}
		case FieldIDs:
			if update.IDs == nil {
				return ErrNilIdentifiers
			}
			for i, id := range update.IDs {
				if err := validateIdentifier(id); err != nil {
					return fmt.Errorf("ids[%d]: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateIdentifier(id models.Identifier) error {
	if _, err := models.NormalizeIdentifier(string(id)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidIdentifier, err)
	}
	return nil
}
