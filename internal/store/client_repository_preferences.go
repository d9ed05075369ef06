package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-nft-keeper/internal/logger"
)

// preferencesRepository is the SQLite-backed [PreferencesRepository].
type preferencesRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPreferencesRepository constructs a [PreferencesRepository] over the
// client database.
func NewPreferencesRepository(db *DB, logger *logger.Logger) PreferencesRepository {
	return &preferencesRepository{
		db:     db,
		logger: logger,
	}
}

func (r *preferencesRepository) GetPreference(ctx context.Context, key string) (string, error) {
	query, args, err := buildGetPreferenceQuery(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrPreferenceNotFound
	case err != nil:
		r.logger.Err(err).Str("key", key).Msg("error reading preference")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (r *preferencesRepository) SetPreference(ctx context.Context, key, value string) error {
	query, args, err := buildSetPreferenceQuery(key, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("key", key).Msg("error writing preference")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
