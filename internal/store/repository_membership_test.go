package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-nft-keeper/internal/logger"
	"github.com/MKhiriev/go-nft-keeper/models"
)

var likesOwner = models.Owner{ID: "1", Kind: models.KindLikes}

func TestGetMembers_KeepsOrderAndDuplicates(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMembershipRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT nft_id FROM memberships WHERE kind = \$1 AND owner_id = \$2 ORDER BY position`).
		WithArgs("likes", "1").
		WillReturnRows(sqlmock.NewRows([]string{"nft_id"}).AddRow("x").AddRow("y").AddRow("x"))

	got, err := repo.GetMembers(context.Background(), likesOwner)

	require.NoError(t, err)
	assert.Equal(t, []models.Identifier{"x", "y", "x"}, got)
}

func TestGetMembers_NoRows(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMembershipRepository(db, logger.Nop())

	mock.ExpectQuery(`FROM memberships`).WillReturnRows(sqlmock.NewRows([]string{"nft_id"}))

	got, err := repo.GetMembers(context.Background(), likesOwner)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestReplaceMembers_DeleteThenInsert(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMembershipRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM memberships WHERE kind = \$1 AND owner_id = \$2`).
		WithArgs("likes", "1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`INSERT INTO memberships \(owner_id,kind,position,nft_id\) VALUES \(\$1,\$2,\$3,\$4\),\(\$5,\$6,\$7,\$8\)`).
		WithArgs("1", "likes", 0, "x", "1", "likes", 1, "z").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := repo.ReplaceMembers(context.Background(), likesOwner, []models.Identifier{"x", "z"})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceMembers_EmptySetOnlyDeletes(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMembershipRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM memberships`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.ReplaceMembers(context.Background(), likesOwner, nil)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceMembers_RetriesSerializationFailure(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMembershipRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM memberships`).WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM memberships`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO memberships`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.ReplaceMembers(context.Background(), likesOwner, []models.Identifier{"x"})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceMembers_NonRetryableFailureRollsBack(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMembershipRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM memberships`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO memberships`).WillReturnError(pgError(pgerrcode.CheckViolation))
	mock.ExpectRollback()

	err := repo.ReplaceMembers(context.Background(), likesOwner, []models.Identifier{"x"})

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.Equal(t, pgerrcode.CheckViolation, postgresError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceMembers_BeginFails(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMembershipRepository(db, logger.Nop())

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	err := repo.ReplaceMembers(context.Background(), likesOwner, []models.Identifier{"x"})

	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestReplaceMembers_GivesUpAfterMaxAttempts(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMembershipRepository(db, logger.Nop())

	for range maxTxAttempts {
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM memberships`).WillReturnError(pgError(pgerrcode.DeadlockDetected))
		mock.ExpectRollback()
	}

	err := repo.ReplaceMembers(context.Background(), likesOwner, nil)

	require.Error(t, err)
	assert.Equal(t, pgerrcode.DeadlockDetected, postgresError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
