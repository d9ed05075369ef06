package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-nft-keeper/internal/logger"
	"github.com/MKhiriev/go-nft-keeper/models"
)

var collectionRowColumns = []string{"id", "name", "cover", "description", "author", "created_at"}

func TestListCollections_AttachesRawMembers(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCollectionRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT (.+) FROM collections ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(collectionRowColumns).
			AddRow("c1", "Peach", "cover1", "", "", "").
			AddRow("c2", "Empty", "cover2", "", "", ""))
	mock.ExpectQuery(`SELECT collection_id, nft_id FROM collection_nfts ORDER BY collection_id, position`).
		WillReturnRows(sqlmock.NewRows([]string{"collection_id", "nft_id"}).
			AddRow("c1", "a").
			AddRow("c1", "b").
			AddRow("c1", "a"))

	got, err := repo.ListCollections(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []models.Identifier{"a", "b", "a"}, got[0].NFTs)
	assert.Equal(t, 2, got[0].NFTCount())
	assert.NotNil(t, got[1].NFTs)
	assert.Empty(t, got[1].NFTs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCollections_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCollectionRepository(db, logger.Nop())

	mock.ExpectQuery(`FROM collections`).WillReturnRows(sqlmock.NewRows(collectionRowColumns))
	mock.ExpectQuery(`FROM collection_nfts`).WillReturnRows(sqlmock.NewRows([]string{"collection_id", "nft_id"}))

	got, err := repo.ListCollections(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListCollections_MembersQueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCollectionRepository(db, logger.Nop())

	mock.ExpectQuery(`FROM collections`).WillReturnRows(sqlmock.NewRows(collectionRowColumns).AddRow("c1", "Peach", "", "", "", ""))
	mock.ExpectQuery(`FROM collection_nfts`).WillReturnError(errors.New("boom"))

	_, err := repo.ListCollections(context.Background())

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListCollections_RowError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCollectionRepository(db, logger.Nop())

	mock.ExpectQuery(`FROM collections`).
		WillReturnRows(sqlmock.NewRows(collectionRowColumns).
			AddRow("c1", "Peach", "", "", "", "").
			RowError(0, errors.New("row broke")))

	_, err := repo.ListCollections(context.Background())

	assert.ErrorIs(t, err, ErrScanningRows)
}
