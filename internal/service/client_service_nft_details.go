package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-nft-keeper/internal/adapter"
	"github.com/MKhiriev/go-nft-keeper/internal/logger"
	"github.com/MKhiriev/go-nft-keeper/models"
)

type nftDetailsService struct {
	serverAdapter adapter.ServerAdapter
	concurrency   int

	logger *logger.Logger
}

// NewNFTDetailsService returns the batch detail fetcher over serverAdapter.
// concurrency caps the number of requests in flight; zero or less means one
// goroutine per identifier.
func NewNFTDetailsService(serverAdapter adapter.ServerAdapter, concurrency int, logger *logger.Logger) NFTDetailsService {
	return &nftDetailsService{
		serverAdapter: serverAdapter,
		concurrency:   concurrency,
		logger:        logger,
	}
}

// FetchAll implements NFTDetailsService.
//
// errgroup cancels the shared context after the first failure, so requests
// still in flight usually fail fast; Wait nevertheless returns only after
// every started request has come back.
func (s *nftDetailsService) FetchAll(ctx context.Context, ids []models.Identifier) ([]models.NFT, error) {
	unique := models.DedupedFrom(ids)
	if unique.Len() == 0 {
		return []models.NFT{}, nil
	}

	wanted := unique.Snapshot()
	nfts := make([]models.NFT, len(wanted))

	g, gctx := errgroup.WithContext(ctx)
	if s.concurrency > 0 {
		g.SetLimit(s.concurrency)
	}

	for i, id := range wanted {
		g.Go(func() error {
			nft, err := s.serverAdapter.FetchNFT(gctx, id)
			if err != nil {
				return fmt.Errorf("fetch nft %s: %w", id, err)
			}
			nfts[i] = nft
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Err(err).Int("requested", len(wanted)).Msg("batch detail fetch failed")
		return nil, err
	}

	return nfts, nil
}

// FetchAllAsync implements NFTDetailsService.
func (s *nftDetailsService) FetchAllAsync(ctx context.Context, ids []models.Identifier) <-chan models.BatchResult {
	result := make(chan models.BatchResult, 1)

	go func() {
		defer close(result)
		nfts, err := s.FetchAll(ctx, ids)
		result <- models.BatchResult{NFTs: nfts, Err: err}
	}()

	return result
}
