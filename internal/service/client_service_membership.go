package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-nft-keeper/internal/adapter"
	"github.com/MKhiriev/go-nft-keeper/internal/logger"
	"github.com/MKhiriev/go-nft-keeper/models"
)

type membershipSynchronizer struct {
	owner         models.Owner
	serverAdapter adapter.ServerAdapter

	// mu guards members, pending and generation. It is never held across a
	// request.
	mu      sync.Mutex
	members models.IdentifierSet
	pending map[models.Identifier]struct{}
	// generation grows whenever a toggle starts or settles.
	generation uint64

	events   *changeBroadcaster
	observer func(models.MembershipChange)

	logger *logger.Logger
}

// NewMembershipSynchronizer returns a synchronizer for owner seeded with
// initial. initial may contain duplicates.
func NewMembershipSynchronizer(owner models.Owner, initial []models.Identifier, serverAdapter adapter.ServerAdapter, logger *logger.Logger) MembershipSynchronizer {
	return newMembershipSynchronizer(owner, initial, serverAdapter, logger, nil)
}

// LoadMembershipSynchronizer seeds a new synchronizer with the set currently
// stored on the backend.
func LoadMembershipSynchronizer(ctx context.Context, owner models.Owner, serverAdapter adapter.ServerAdapter, logger *logger.Logger) (MembershipSynchronizer, error) {
	return loadMembershipSynchronizer(ctx, owner, serverAdapter, logger, nil)
}

func loadMembershipSynchronizer(ctx context.Context, owner models.Owner, serverAdapter adapter.ServerAdapter, logger *logger.Logger, observer func(models.MembershipChange)) (*membershipSynchronizer, error) {
	ids, err := serverAdapter.GetWholeSet(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", owner, err)
	}

	return newMembershipSynchronizer(owner, ids, serverAdapter, logger, observer), nil
}

func newMembershipSynchronizer(owner models.Owner, initial []models.Identifier, serverAdapter adapter.ServerAdapter, log *logger.Logger, observer func(models.MembershipChange)) *membershipSynchronizer {
	return &membershipSynchronizer{
		owner:         owner,
		serverAdapter: serverAdapter,
		members:       models.DedupedFrom(initial),
		pending:       make(map[models.Identifier]struct{}),
		events:        newChangeBroadcaster(),
		observer:      observer,
		logger:        log.WithOwner(owner),
	}
}

func (s *membershipSynchronizer) Owner() models.Owner {
	return s.owner
}

// Toggle implements MembershipSynchronizer. The guard check, the local flip
// and the snapshot sent to the backend happen in one critical section, so a
// persist always carries every optimistic change made before it.
func (s *membershipSynchronizer) Toggle(ctx context.Context, id models.Identifier) (<-chan models.ToggleResult, error) {
	if id == "" {
		return nil, models.ErrEmptyIdentifier
	}

	s.mu.Lock()
	if _, busy := s.pending[id]; busy {
		s.mu.Unlock()
		return nil, ErrToggleInProgress
	}
	s.pending[id] = struct{}{}
	s.generation++
	member := s.members.ToggleMembership(id)
	snapshot := s.members.Snapshot()
	s.mu.Unlock()

	s.logger.Debug().Str("nft_id", id.String()).Bool("member", member).Msg("optimistic toggle")

	result := make(chan models.ToggleResult, 1)
	go s.persist(ctx, id, member, snapshot, result)

	return result, nil
}

func (s *membershipSynchronizer) persist(ctx context.Context, id models.Identifier, member bool, snapshot []models.Identifier, result chan<- models.ToggleResult) {
	defer close(result)

	err := s.serverAdapter.PutWholeSet(ctx, s.owner, snapshot)

	s.mu.Lock()
	delete(s.pending, id)
	s.generation++
	if err != nil {
		// Only id is reverted. Toggles of other ids made meanwhile keep
		// their optimistic state and settle on their own.
		if member {
			s.members.Remove(id)
		} else {
			s.members.Add(id)
		}
	}
	s.mu.Unlock()

	res := models.ToggleResult{ID: id, Member: member}
	if err != nil {
		toggleErr := newToggleError(id, err)
		s.logger.Warn().Err(err).Str("nft_id", id.String()).Stringer("failure", toggleErr.Kind).Msg("toggle rolled back")
		res.Member = !member
		res.Err = toggleErr
	}

	// Subscribers hear about the change before the caller does, so a
	// caller that waited on result observes the event already published.
	s.notify(models.MembershipChange{
		Owner:     s.owner,
		ID:        id,
		Member:    res.Member,
		Confirmed: err == nil,
	})

	result <- res
}

func (s *membershipSynchronizer) currentGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// reseed replaces the members with the backend set ids in place and publishes
// a confirmed change for every id whose membership differs. Pending ids keep
// their optimistic membership and stay guarded. Nothing is applied and false
// is returned when a toggle started or settled after generation was read,
// since ids may then predate that toggle.
func (s *membershipSynchronizer) reseed(ids []models.Identifier, generation uint64) ([]models.MembershipChange, bool) {
	s.mu.Lock()
	if s.generation != generation {
		s.mu.Unlock()
		return nil, false
	}

	fresh := models.DedupedFrom(ids)
	for id := range s.pending {
		if s.members.Contains(id) {
			fresh.Add(id)
		} else {
			fresh.Remove(id)
		}
	}

	var changes []models.MembershipChange
	for _, id := range fresh.Snapshot() {
		if !s.members.Contains(id) {
			changes = append(changes, models.MembershipChange{Owner: s.owner, ID: id, Member: true, Confirmed: true})
		}
	}
	for _, id := range s.members.Snapshot() {
		if !fresh.Contains(id) {
			changes = append(changes, models.MembershipChange{Owner: s.owner, ID: id, Member: false, Confirmed: true})
		}
	}
	s.members = fresh
	s.mu.Unlock()

	for _, change := range changes {
		s.notify(change)
	}

	return changes, true
}

func (s *membershipSynchronizer) notify(change models.MembershipChange) {
	s.events.publish(change)
	if s.observer != nil {
		s.observer(change)
	}
}

// ToggleAndWait implements MembershipSynchronizer. The wait is bounded by
// ctx through the transport: a cancelled ctx fails the persist and the
// toggle is rolled back.
func (s *membershipSynchronizer) ToggleAndWait(ctx context.Context, id models.Identifier) (bool, error) {
	result, err := s.Toggle(ctx, id)
	if err != nil {
		return s.Includes(id), err
	}

	res := <-result
	return res.Member, res.Err
}

func (s *membershipSynchronizer) Includes(id models.Identifier) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.members.Contains(id)
}

func (s *membershipSynchronizer) Snapshot() []models.Identifier {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.members.Snapshot()
}

func (s *membershipSynchronizer) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.members.Len()
}

func (s *membershipSynchronizer) Subscribe(buffer int) (<-chan models.MembershipChange, func()) {
	return s.events.subscribe(buffer)
}
