package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-nft-keeper/internal/adapter"
	"github.com/MKhiriev/go-nft-keeper/internal/logger"
	"github.com/MKhiriev/go-nft-keeper/models"
)

type catalogService struct {
	serverAdapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewCatalogService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) CatalogService {
	return &catalogService{serverAdapter: serverAdapter, logger: logger}
}

func (s *catalogService) Collections(ctx context.Context, sort models.CollectionSort) ([]models.NFTCollection, error) {
	if !sort.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSort, sort)
	}

	raw, err := s.serverAdapter.GetCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}

	collections := make([]models.NFTCollection, len(raw))
	for i, c := range raw {
		collections[i] = c.Deduplicated()
	}

	SortCollections(collections, sort)
	return collections, nil
}

func (s *catalogService) Collection(ctx context.Context, id models.Identifier) (models.NFTCollection, error) {
	raw, err := s.serverAdapter.GetCollections(ctx)
	if err != nil {
		return models.NFTCollection{}, fmt.Errorf("get collection %s: %w", id, err)
	}

	for _, c := range raw {
		if c.ID == id {
			return c.Deduplicated(), nil
		}
	}

	return models.NFTCollection{}, fmt.Errorf("%w: %s", ErrCollectionNotFound, id)
}

func (s *catalogService) OwnedNFTs(ctx context.Context, profileID string) ([]models.Identifier, error) {
	profile, err := s.serverAdapter.GetProfile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("get owned nfts of %s: %w", profileID, err)
	}

	owned := models.DedupedFrom(profile.NFTs)
	return owned.Snapshot(), nil
}

// SortCollections orders collections in place: by name ignoring case, or by
// distinct NFT count descending. Ties keep their relative order.
func SortCollections(collections []models.NFTCollection, sort models.CollectionSort) {
	switch sort {
	case models.CollectionSortName:
		slices.SortStableFunc(collections, func(a, b models.NFTCollection) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		})
	case models.CollectionSortNFTCount:
		slices.SortStableFunc(collections, func(a, b models.NFTCollection) int {
			return cmp.Compare(b.NFTCount(), a.NFTCount())
		})
	}
}

// SortNFTs orders nfts in place: price and rating descending, name
// ascending ignoring case. Ties keep their relative order.
func SortNFTs(nfts []models.NFT, sort models.NFTSort) {
	switch sort {
	case models.NFTSortPrice:
		slices.SortStableFunc(nfts, func(a, b models.NFT) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case models.NFTSortRating:
		slices.SortStableFunc(nfts, func(a, b models.NFT) int {
			return cmp.Compare(b.Rating, a.Rating)
		})
	case models.NFTSortName:
		slices.SortStableFunc(nfts, func(a, b models.NFT) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		})
	}
}
