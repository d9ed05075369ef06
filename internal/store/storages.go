package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-nft-keeper/internal/logger"
	"github.com/MKhiriev/go-nft-keeper/migrations"
)

// Storages groups the repositories of the development backend.
type Storages struct {
	NFTRepository        NFTRepository
	CollectionRepository CollectionRepository
	MembershipRepository MembershipRepository
	ProfileRepository    ProfileRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies the server migrations and
// wires every repository to the connection.
func NewStorages(ctx context.Context, dsn string, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, dsn, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = migrations.MigrateServer(db.DB); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, logger), nil
}

func newStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		NFTRepository:        NewNFTRepository(db, logger),
		CollectionRepository: NewCollectionRepository(db, logger),
		MembershipRepository: NewMembershipRepository(db, logger),
		ProfileRepository:    NewProfileRepository(db, logger),
		db:                   db,
	}
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
