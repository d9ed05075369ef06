package service

import (
	"context"

	"github.com/MKhiriev/go-nft-keeper/models"
)

// NFTDetailsService is the batch detail fetcher: it resolves many
// identifiers into NFT detail records with one concurrent request each.
type NFTDetailsService interface {
	// FetchAll deduplicates ids, fetches every record concurrently and
	// returns once all requests have completed. If any request failed the
	// first error is returned and no records are. An empty ids returns an
	// empty slice without touching the transport. The order of the result
	// is unspecified.
	FetchAll(ctx context.Context, ids []models.Identifier) ([]models.NFT, error)

	// FetchAllAsync runs FetchAll in the background. The returned channel is
	// buffered and receives exactly one result, so a caller that loses
	// interest may simply stop reading.
	FetchAllAsync(ctx context.Context, ids []models.Identifier) <-chan models.BatchResult
}

// MembershipSynchronizer owns the local set of one owner and keeps it in
// step with the backend through optimistic whole-set replacement.
type MembershipSynchronizer interface {
	// Owner returns the synchronized owner.
	Owner() models.Owner

	// Toggle flips the local membership of id immediately, then persists the
	// whole set in the background. The returned channel receives exactly
	// one result once the persist settles; on failure the local change has
	// already been reverted. ErrToggleInProgress is returned without any I/O
	// while an earlier toggle of the same id is pending.
	Toggle(ctx context.Context, id models.Identifier) (<-chan models.ToggleResult, error)

	// ToggleAndWait is Toggle followed by waiting for the result. It returns
	// the final membership of id.
	ToggleAndWait(ctx context.Context, id models.Identifier) (bool, error)

	// Includes reads the live local set, optimistic changes included.
	Includes(id models.Identifier) bool

	// Snapshot returns the local set sorted ascending.
	Snapshot() []models.Identifier

	// Len returns the number of distinct local members.
	Len() int

	// Subscribe registers a listener for settled toggles and resync changes.
	// Events that do not fit into the buffer are dropped for that listener.
	// The returned func unsubscribes and closes the channel.
	Subscribe(buffer int) (<-chan models.MembershipChange, func())
}

// MembershipRegistry hands out one synchronizer per owner.
type MembershipRegistry interface {
	// Synchronizer returns the synchronizer of owner, seeding it from the
	// backend on first use.
	Synchronizer(ctx context.Context, owner models.Owner) (MembershipSynchronizer, error)

	// Resync reseeds the synchronizer of owner in place from the backend's
	// current set. Pending ids keep their optimistic membership and their
	// in-progress guard. Every id whose membership changed is published as
	// a confirmed change.
	Resync(ctx context.Context, owner models.Owner) (MembershipSynchronizer, error)

	// ResyncAll resyncs every owner obtained so far and joins the errors.
	ResyncAll(ctx context.Context) error

	// Subscribe listens to settled toggles and resync changes of every owner.
	Subscribe(buffer int) (<-chan models.MembershipChange, func())
}

// ClientResyncJob periodically calls MembershipRegistry.ResyncAll.
type ClientResyncJob interface {
	// Start stops any previous run and launches the background goroutine.
	Start(ctx context.Context)

	// Stop signals the goroutine to exit and blocks until it has.
	Stop()
}

// CatalogService lists the catalog and profile contents for display. Every
// member list it returns is deduplicated.
type CatalogService interface {
	// Collections returns every collection with deduplicated members,
	// ordered by sort.
	Collections(ctx context.Context, sort models.CollectionSort) ([]models.NFTCollection, error)

	// Collection returns the collection with id. ErrCollectionNotFound is
	// returned when the catalog has no such collection.
	Collection(ctx context.Context, id models.Identifier) (models.NFTCollection, error)

	// OwnedNFTs returns the distinct NFTs owned by the profile with id.
	OwnedNFTs(ctx context.Context, profileID string) ([]models.Identifier, error)
}

// PreferencesService stores the sort orders chosen by the user. Missing
// values fall back to the defaults; unknown values are rejected with
// ErrInvalidSort.
type PreferencesService interface {
	NFTSort(ctx context.Context) (models.NFTSort, error)
	SetNFTSort(ctx context.Context, sort models.NFTSort) error

	CollectionSort(ctx context.Context) (models.CollectionSort, error)
	SetCollectionSort(ctx context.Context, sort models.CollectionSort) error
}
