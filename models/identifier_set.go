package models

import "slices"

// IdentifierSet is a deduplicated, order-irrelevant collection of
// identifiers. It represents the "liked NFTs" or the "NFTs in cart" of a
// single owner.
//
// The zero value is an empty set ready for use. IdentifierSet is not safe for
// concurrent use; owners such as the membership synchronizer guard it with
// their own lock.
type IdentifierSet struct {
	items map[Identifier]struct{}
}

// NewIdentifierSet returns a set holding the distinct values of ids.
func NewIdentifierSet(ids ...Identifier) IdentifierSet {
	return DedupedFrom(ids)
}

// DedupedFrom builds a set from a raw list that may contain accidental
// duplicates (a known defect of collection and profile responses).
// Counting or rendering members must always go through this constructor.
func DedupedFrom(raw []Identifier) IdentifierSet {
	s := IdentifierSet{items: make(map[Identifier]struct{}, len(raw))}
	for _, id := range raw {
		s.items[id] = struct{}{}
	}
	return s
}

// Contains reports whether id is a member of the set.
func (s *IdentifierSet) Contains(id Identifier) bool {
	_, ok := s.items[id]
	return ok
}

// Add inserts id. Adding an existing member is a no-op.
func (s *IdentifierSet) Add(id Identifier) {
	if s.items == nil {
		s.items = make(map[Identifier]struct{})
	}
	s.items[id] = struct{}{}
}

// Remove deletes id. Removing an absent member is a no-op.
func (s *IdentifierSet) Remove(id Identifier) {
	delete(s.items, id)
}

// ToggleMembership flips the membership of id and returns the new state.
func (s *IdentifierSet) ToggleMembership(id Identifier) bool {
	if s.Contains(id) {
		s.Remove(id)
		return false
	}
	s.Add(id)
	return true
}

// Len returns the number of distinct members.
func (s *IdentifierSet) Len() int {
	return len(s.items)
}

// Clone returns an independent copy of the set.
func (s *IdentifierSet) Clone() IdentifierSet {
	c := IdentifierSet{items: make(map[Identifier]struct{}, len(s.items))}
	for id := range s.items {
		c.items[id] = struct{}{}
	}
	return c
}

// Snapshot returns the members sorted ascending. The result never contains
// duplicates and never aliases the set's internal storage.
func (s *IdentifierSet) Snapshot() []Identifier {
	out := make([]Identifier, 0, len(s.items))
	for id := range s.items {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
