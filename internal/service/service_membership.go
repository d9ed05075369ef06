package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-nft-keeper/internal/logger"
	"github.com/MKhiriev/go-nft-keeper/internal/store"
	"github.com/MKhiriev/go-nft-keeper/models"
)

type membershipService struct {
	profiles    store.ProfileRepository
	memberships store.MembershipRepository

	logger *logger.Logger
}

func NewMembershipService(profiles store.ProfileRepository, memberships store.MembershipRepository, logger *logger.Logger) MembershipService {
	return &membershipService{
		profiles:    profiles,
		memberships: memberships,
		logger:      logger,
	}
}

// GetProfile returns the profile with its likes attached. Unknown profiles
// yield store.ErrProfileNotFound.
func (s *membershipService) GetProfile(ctx context.Context, profileID string) (models.Profile, error) {
	profile, err := s.profiles.GetProfile(ctx, profileID)
	if err != nil {
		return models.Profile{}, err
	}

	likes, err := s.memberships.GetMembers(ctx, models.Owner{ID: profileID, Kind: models.KindLikes})
	if err != nil {
		return models.Profile{}, fmt.Errorf("get likes of profile %s: %w", profileID, err)
	}
	profile.Likes = likes

	return profile, nil
}

// ReplaceLikes overwrites the likes of an existing profile and returns the
// updated profile.
func (s *membershipService) ReplaceLikes(ctx context.Context, update models.MembershipUpdate) (models.Profile, error) {
	if update.Owner.Kind != models.KindLikes {
		return models.Profile{}, fmt.Errorf("%w: likes update for kind %q", ErrInvalidDataProvided, update.Owner.Kind)
	}

	profile, err := s.profiles.GetProfile(ctx, update.Owner.ID)
	if err != nil {
		return models.Profile{}, err
	}

	if err = s.memberships.ReplaceMembers(ctx, update.Owner, update.IDs); err != nil {
		return models.Profile{}, fmt.Errorf("replace likes of profile %s: %w", update.Owner.ID, err)
	}

	logger.FromContext(ctx).Info().Str("owner", update.Owner.String()).Int("count", len(update.IDs)).Msg("likes replaced")

	profile.Likes = update.IDs
	return profile, nil
}

// GetOrder returns the order. Orders exist implicitly: an id that was never
// written has an empty NFT list.
func (s *membershipService) GetOrder(ctx context.Context, orderID string) (models.Order, error) {
	nfts, err := s.memberships.GetMembers(ctx, models.Owner{ID: orderID, Kind: models.KindCart})
	if err != nil {
		return models.Order{}, fmt.Errorf("get order %s: %w", orderID, err)
	}

	return models.Order{ID: orderID, NFTs: nfts}, nil
}

func (s *membershipService) ReplaceOrder(ctx context.Context, update models.MembershipUpdate) (models.Order, error) {
	if update.Owner.Kind != models.KindCart {
		return models.Order{}, fmt.Errorf("%w: order update for kind %q", ErrInvalidDataProvided, update.Owner.Kind)
	}

	if err := s.memberships.ReplaceMembers(ctx, update.Owner, update.IDs); err != nil {
		return models.Order{}, fmt.Errorf("replace order %s: %w", update.Owner.ID, err)
	}

	logger.FromContext(ctx).Info().Str("owner", update.Owner.String()).Int("count", len(update.IDs)).Msg("order replaced")

	return models.Order{ID: update.Owner.ID, NFTs: update.IDs}, nil
}
