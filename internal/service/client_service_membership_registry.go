package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-nft-keeper/internal/adapter"
	"github.com/MKhiriev/go-nft-keeper/internal/logger"
	"github.com/MKhiriev/go-nft-keeper/models"
)

type membershipRegistry struct {
	serverAdapter adapter.ServerAdapter

	mu    sync.Mutex
	syncs map[models.Owner]*membershipSynchronizer
	order []models.Owner

	events *changeBroadcaster

	logger *logger.Logger
}

// NewMembershipRegistry returns an empty registry. Synchronizers are created
// on first request.
func NewMembershipRegistry(serverAdapter adapter.ServerAdapter, logger *logger.Logger) MembershipRegistry {
	return &membershipRegistry{
		serverAdapter: serverAdapter,
		syncs:         make(map[models.Owner]*membershipSynchronizer),
		events:        newChangeBroadcaster(),
		logger:        logger,
	}
}

// Synchronizer implements MembershipRegistry. Two callers racing on a new
// owner may both load it; the first one stored wins and the other copy is
// discarded.
func (r *membershipRegistry) Synchronizer(ctx context.Context, owner models.Owner) (MembershipSynchronizer, error) {
	r.mu.Lock()
	existing, ok := r.syncs[owner]
	r.mu.Unlock()
	if ok {
		return existing, nil
	}

	loaded, err := loadMembershipSynchronizer(ctx, owner, r.serverAdapter, r.logger, r.events.publish)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok = r.syncs[owner]; ok {
		return existing, nil
	}
	r.store(owner, loaded)

	return loaded, nil
}

// Resync implements MembershipRegistry. A known owner keeps its instance
// and is reseeded in place; an unknown owner is loaded as by Synchronizer.
// On failure the current state is kept.
func (r *membershipRegistry) Resync(ctx context.Context, owner models.Owner) (MembershipSynchronizer, error) {
	r.mu.Lock()
	existing, ok := r.syncs[owner]
	r.mu.Unlock()
	if !ok {
		return r.Synchronizer(ctx, owner)
	}

	log := r.logger.WithOwner(owner)

	generation := existing.currentGeneration()
	ids, err := r.serverAdapter.GetWholeSet(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("resync %s: %w", owner, err)
	}

	changes, applied := existing.reseed(ids, generation)
	if !applied {
		log.Debug().Msg("resync skipped, toggled meanwhile")
		return existing, nil
	}

	log.Debug().Int("members", existing.Len()).Int("changed", len(changes)).Msg("membership resynced")

	return existing, nil
}

// ResyncAll implements MembershipRegistry.
func (r *membershipRegistry) ResyncAll(ctx context.Context) error {
	r.mu.Lock()
	owners := make([]models.Owner, len(r.order))
	copy(owners, r.order)
	r.mu.Unlock()

	var errs []error
	for _, owner := range owners {
		if _, err := r.Resync(ctx, owner); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (r *membershipRegistry) Subscribe(buffer int) (<-chan models.MembershipChange, func()) {
	return r.events.subscribe(buffer)
}

// store must be called with r.mu held.
func (r *membershipRegistry) store(owner models.Owner, s *membershipSynchronizer) {
	if _, known := r.syncs[owner]; !known {
		r.order = append(r.order, owner)
	}
	r.syncs[owner] = s
}
