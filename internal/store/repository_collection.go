package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-nft-keeper/internal/logger"
	"github.com/MKhiriev/go-nft-keeper/models"
)

type collectionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCollectionRepository constructs a [CollectionRepository] backed by the
// provided database connection and logger.
func NewCollectionRepository(db *DB, logger *logger.Logger) CollectionRepository {
	logger.Debug().Msg("creating collection repository")
	return &collectionRepository{
		db:     db,
		logger: logger,
	}
}

// ListCollections loads every collection ordered by id, then attaches the
// member lists in stored position order.
func (r *collectionRepository) ListCollections(ctx context.Context) ([]models.NFTCollection, error) {
	log := logger.FromContext(ctx)

	collections, err := r.selectCollections(ctx)
	if err != nil {
		log.Err(err).Msg("error selecting collections")
		return nil, err
	}

	members, err := r.selectMembers(ctx)
	if err != nil {
		log.Err(err).Msg("error selecting collection members")
		return nil, err
	}

	for i := range collections {
		collections[i].NFTs = members[collections[i].ID]
		if collections[i].NFTs == nil {
			collections[i].NFTs = []models.Identifier{}
		}
	}

	return collections, nil
}

func (r *collectionRepository) selectCollections(ctx context.Context) ([]models.NFTCollection, error) {
	query, args, err := buildListCollectionsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	collections := make([]models.NFTCollection, 0)
	for rows.Next() {
		var c models.NFTCollection
		if err = rows.Scan(&c.ID, &c.Name, &c.Cover, &c.Description, &c.Author, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		collections = append(collections, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return collections, nil
}

func (r *collectionRepository) selectMembers(ctx context.Context) (map[models.Identifier][]models.Identifier, error) {
	query, args, err := buildListCollectionMembersQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	members := make(map[models.Identifier][]models.Identifier)
	for rows.Next() {
		var collectionID, nftID models.Identifier
		if err = rows.Scan(&collectionID, &nftID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		members[collectionID] = append(members[collectionID], nftID)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return members, nil
}
