package service

import (
	"context"

	"github.com/MKhiriev/go-nft-keeper/internal/logger"
	"github.com/MKhiriev/go-nft-keeper/internal/store"
	"github.com/MKhiriev/go-nft-keeper/models"
)

type nftService struct {
	repo store.NFTRepository

	logger *logger.Logger
}

func NewNFTService(repo store.NFTRepository, logger *logger.Logger) NFTService {
	return &nftService{repo: repo, logger: logger}
}

func (s *nftService) GetNFT(ctx context.Context, id models.Identifier) (models.NFT, error) {
	return s.repo.GetNFT(ctx, id)
}

type collectionService struct {
	repo store.CollectionRepository

	logger *logger.Logger
}

func NewCollectionService(repo store.CollectionRepository, logger *logger.Logger) CollectionService {
	return &collectionService{repo: repo, logger: logger}
}

func (s *collectionService) ListCollections(ctx context.Context) ([]models.NFTCollection, error) {
	return s.repo.ListCollections(ctx)
}
