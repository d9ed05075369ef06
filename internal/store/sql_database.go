package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-nft-keeper/internal/logger"
)

// maxTxAttempts bounds how many times a transaction classified as
// [Retryable] is run.
const maxTxAttempts = 3

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB wraps *sql.DB with the driver-specific error classifier.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// inTx runs fn inside a transaction. The whole transaction is repeated when
// it fails with an error the classifier reports as [Retryable], up to
// maxTxAttempts times.
func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		if err = db.runTx(ctx, fn); err == nil {
			return nil
		}

		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable || ctx.Err() != nil {
			return err
		}

		db.logger.Warn().Err(err).Int("attempt", attempt).Msg("retrying transaction")
	}

	return err
}

func (db *DB) runTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err = fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
