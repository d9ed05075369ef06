package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-nft-keeper/internal/validators"
	"github.com/MKhiriev/go-nft-keeper/models"
)

// MembershipValidationService rejects malformed owner ids and identifier
// lists before they reach the wrapped MembershipService.
type MembershipValidationService struct {
	inner     MembershipService
	validator validators.Validator
}

func NewMembershipValidationService() MembershipServiceWrapper {
	return &MembershipValidationService{
		validator: validators.NewMembershipValidator(),
	}
}

func (v *MembershipValidationService) GetProfile(ctx context.Context, profileID string) (models.Profile, error) {
	if err := v.validateOwner(ctx, models.Owner{ID: profileID, Kind: models.KindLikes}); err != nil {
		return models.Profile{}, err
	}
	return v.inner.GetProfile(ctx, profileID)
}

func (v *MembershipValidationService) ReplaceLikes(ctx context.Context, update models.MembershipUpdate) (models.Profile, error) {
	if err := v.validateUpdate(ctx, update); err != nil {
		return models.Profile{}, err
	}
	return v.inner.ReplaceLikes(ctx, update)
}

func (v *MembershipValidationService) GetOrder(ctx context.Context, orderID string) (models.Order, error) {
	if err := v.validateOwner(ctx, models.Owner{ID: orderID, Kind: models.KindCart}); err != nil {
		return models.Order{}, err
	}
	return v.inner.GetOrder(ctx, orderID)
}

func (v *MembershipValidationService) ReplaceOrder(ctx context.Context, update models.MembershipUpdate) (models.Order, error) {
	if err := v.validateUpdate(ctx, update); err != nil {
		return models.Order{}, err
	}
	return v.inner.ReplaceOrder(ctx, update)
}

func (v *MembershipValidationService) Wrap(inner MembershipService) MembershipService {
	v.inner = inner
	return v
}

func (v *MembershipValidationService) validateOwner(ctx context.Context, owner models.Owner) error {
	if err := v.validator.Validate(ctx, owner); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

func (v *MembershipValidationService) validateUpdate(ctx context.Context, update models.MembershipUpdate) error {
	if err := v.validator.Validate(ctx, update); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
