package adapter

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/MKhiriev/go-nft-keeper/internal/logger"
	"github.com/MKhiriev/go-nft-keeper/models"
)

// cachingServerAdapter keeps successfully fetched NFT detail records in a
// fixed-size LRU. Membership calls are never cached and go straight to next.
type cachingServerAdapter struct {
	next    ServerAdapter
	details *lru.Cache[models.Identifier, models.NFT]

	logger *logger.Logger
}

// NewCachingServerAdapter wraps next with an LRU cache of at most size NFT
// records. A size <= 0 disables caching and returns next unchanged.
func NewCachingServerAdapter(next ServerAdapter, size int, logger *logger.Logger) (ServerAdapter, error) {
	if size <= 0 {
		return next, nil
	}

	details, err := lru.New[models.Identifier, models.NFT](size)
	if err != nil {
		return nil, err
	}

	return &cachingServerAdapter{next: next, details: details, logger: logger}, nil
}

func (c *cachingServerAdapter) FetchNFT(ctx context.Context, id models.Identifier) (models.NFT, error) {
	if nft, ok := c.details.Get(id); ok {
		c.logger.Debug().Str("nft_id", id.String()).Msg("nft detail cache hit")
		return nft, nil
	}

	nft, err := c.next.FetchNFT(ctx, id)
	if err != nil {
		return models.NFT{}, err
	}

	c.details.Add(id, nft)
	return nft, nil
}

func (c *cachingServerAdapter) GetWholeSet(ctx context.Context, owner models.Owner) ([]models.Identifier, error) {
	return c.next.GetWholeSet(ctx, owner)
}

func (c *cachingServerAdapter) PutWholeSet(ctx context.Context, owner models.Owner, ids []models.Identifier) error {
	return c.next.PutWholeSet(ctx, owner, ids)
}

func (c *cachingServerAdapter) GetProfile(ctx context.Context, id string) (models.Profile, error) {
	return c.next.GetProfile(ctx, id)
}

func (c *cachingServerAdapter) GetCollections(ctx context.Context) ([]models.NFTCollection, error) {
	return c.next.GetCollections(ctx)
}
