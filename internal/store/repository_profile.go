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

type profileRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProfileRepository constructs a [ProfileRepository] backed by the
// provided database connection and logger.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

// GetProfile returns the profile with the given id. Likes is left nil.
// Owned NFTs are stored as a JSON array.
func (r *profileRepository) GetProfile(ctx context.Context, id string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetProfileQuery(id)
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		profile models.Profile
		nfts    string
	)
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&profile.ID, &profile.Name, &profile.Avatar, &profile.Description, &profile.Website, &nfts)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Profile{}, ErrProfileNotFound
	case err != nil:
		log.Err(err).Str("profile_id", id).Msg("error selecting profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = json.Unmarshal([]byte(nfts), &profile.NFTs); err != nil {
		return models.Profile{}, fmt.Errorf("%w: nfts: %w", ErrScanningRow, err)
	}

	return profile, nil
}
