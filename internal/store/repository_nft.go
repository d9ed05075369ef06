package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-nft-keeper/internal/logger"
	"github.com/MKhiriev/go-nft-keeper/models"
)

// nftRepository is the PostgreSQL-backed implementation of [NFTRepository].
// Images are stored as a JSON array in a text column.
type nftRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNFTRepository constructs a [NFTRepository] backed by the provided
// database connection and logger.
func NewNFTRepository(db *DB, logger *logger.Logger) NFTRepository {
	logger.Debug().Msg("creating nft repository")
	return &nftRepository{
		db:     db,
		logger: logger,
	}
}

// GetNFT returns the NFT with the given id.
//
// Error handling:
//   - no row → [ErrNFTNotFound].
//   - driver error → wrapped [ErrExecutingQuery].
//   - scan or images decode failure → wrapped [ErrScanningRow].
func (r *nftRepository) GetNFT(ctx context.Context, id models.Identifier) (models.NFT, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetNFTQuery(id)
	if err != nil {
		return models.NFT{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		nft    models.NFT
		images string
	)
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&nft.ID, &nft.Name, &images, &nft.Rating, &nft.Description, &nft.Price, &nft.Author, &nft.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.NFT{}, ErrNFTNotFound
	case err != nil:
		log.Err(err).Str("nft_id", id.String()).Str("pg_code", postgresError(err)).Msg("error selecting nft")
		return models.NFT{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = json.Unmarshal([]byte(images), &nft.Images); err != nil {
		log.Err(err).Str("nft_id", id.String()).Msg("error decoding nft images")
		return models.NFT{}, fmt.Errorf("%w: images: %w", ErrScanningRow, err)
	}

	return nft, nil
}
