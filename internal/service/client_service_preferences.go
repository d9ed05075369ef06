package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-nft-keeper/internal/logger"
	"github.com/MKhiriev/go-nft-keeper/internal/store"
	"github.com/MKhiriev/go-nft-keeper/internal/validators"
	"github.com/MKhiriev/go-nft-keeper/models"
)

// Preference keys.
const (
	nftSortKey        = "sort.nfts"
	collectionSortKey = "sort.collections"
)

type preferencesService struct {
	repo      store.PreferencesRepository
	validator validators.Validator

	logger *logger.Logger
}

func NewPreferencesService(repo store.PreferencesRepository, logger *logger.Logger) PreferencesService {
	return &preferencesService{
		repo:      repo,
		validator: validators.NewMembershipValidator(),
		logger:    logger,
	}
}

// NFTSort implements PreferencesService. A stored value that is no longer
// valid is ignored in favour of the default.
func (s *preferencesService) NFTSort(ctx context.Context) (models.NFTSort, error) {
	raw, err := s.get(ctx, nftSortKey)
	if err != nil {
		return "", err
	}

	sort := models.NFTSort(raw)
	if raw == "" || s.validator.Validate(ctx, sort) != nil {
		return models.DefaultNFTSort, nil
	}
	return sort, nil
}

func (s *preferencesService) SetNFTSort(ctx context.Context, sort models.NFTSort) error {
	if err := s.validator.Validate(ctx, sort); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSort, err)
	}
	return s.set(ctx, nftSortKey, string(sort))
}

func (s *preferencesService) CollectionSort(ctx context.Context) (models.CollectionSort, error) {
	raw, err := s.get(ctx, collectionSortKey)
	if err != nil {
		return "", err
	}

	sort := models.CollectionSort(raw)
	if raw == "" || s.validator.Validate(ctx, sort) != nil {
		return models.DefaultCollectionSort, nil
	}
	return sort, nil
}

func (s *preferencesService) SetCollectionSort(ctx context.Context, sort models.CollectionSort) error {
	if err := s.validator.Validate(ctx, sort); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSort, err)
	}
	return s.set(ctx, collectionSortKey, string(sort))
}

// get returns "" for a missing key.
func (s *preferencesService) get(ctx context.Context, key string) (string, error) {
	value, err := s.repo.GetPreference(ctx, key)
	if errors.Is(err, store.ErrPreferenceNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read preference %s: %w", key, err)
	}
	return value, nil
}

func (s *preferencesService) set(ctx context.Context, key, value string) error {
	if err := s.repo.SetPreference(ctx, key, value); err != nil {
		return fmt.Errorf("write preference %s: %w", key, err)
	}
	s.logger.Debug().Str("key", key).Str("value", value).Msg("preference saved")
	return nil
}
