package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-nft-keeper/internal/logger"
	"github.com/MKhiriev/go-nft-keeper/models"
)

// membershipRepository keeps one row per (owner, kind, position). The
// position column preserves the order in which the client sent the set.
type membershipRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMembershipRepository constructs a [MembershipRepository] backed by the
// provided database connection and logger.
func NewMembershipRepository(db *DB, logger *logger.Logger) MembershipRepository {
	logger.Debug().Msg("creating membership repository")
	return &membershipRepository{
		db:     db,
		logger: logger,
	}
}

// GetMembers returns the stored list for owner in position order. An owner
// with no rows has an empty, non-nil list.
func (r *membershipRepository) GetMembers(ctx context.Context, owner models.Owner) ([]models.Identifier, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetMembersQuery(owner)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("owner", owner.String()).Msg("error selecting members")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]models.Identifier, 0)
	for rows.Next() {
		var id models.Identifier
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}

// ReplaceMembers deletes the stored list of owner and inserts ids in one
// transaction. An empty ids clears the list.
func (r *membershipRepository) ReplaceMembers(ctx context.Context, owner models.Owner, ids []models.Identifier) error {
	log := logger.FromContext(ctx)

	deleteQuery, deleteArgs, err := buildDeleteMembersQuery(owner)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var insertQuery string
	var insertArgs []any
	if len(ids) > 0 {
		insertQuery, insertArgs, err = buildInsertMembersQuery(owner, ids)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
	}

	err = r.db.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if insertQuery == "" {
			return nil
		}

		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("owner", owner.String()).Str("pg_code", postgresError(err)).Msg("error replacing members")
		return err
	}

	return nil
}
