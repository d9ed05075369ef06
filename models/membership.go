package models

import "fmt"

// MembershipKind names which set of an owner is being synchronized.
type MembershipKind string

const (
	// KindLikes is the set of NFTs liked by a profile.
	KindLikes MembershipKind = "likes"
	// KindCart is the set of NFTs placed into an order (shopping cart).
	KindCart MembershipKind = "cart"
)

// Valid reports whether k is one of the known kinds.
func (k MembershipKind) Valid() bool {
	return k == KindLikes || k == KindCart
}

// Owner identifies one synchronized set: a profile's likes or a cart's
// contents.
type Owner struct {
	ID   string         `json:"id"`
	Kind MembershipKind `json:"kind"`
}

// String implements fmt.Stringer.
func (o Owner) String() string {
	return fmt.Sprintf("%s/%s", o.Kind, o.ID)
}

// ToggleResult is delivered once per accepted toggle, after the whole-set
// persist has settled.
type ToggleResult struct {
	// ID is the toggled identifier.
	ID Identifier

	// Member is the final local membership of ID: the new value when the
	// persist was confirmed, the reverted value otherwise.
	Member bool

	// Err is nil on confirmation. On failure it describes why the local
	// mutation was rolled back.
	Err error
}

// MembershipChange is published to synchronizer subscribers every time a
// toggle settles and for every id a resync found changed on the server.
type MembershipChange struct {
	Owner     Owner
	ID        Identifier
	Member    bool
	Confirmed bool
}

// MembershipUpdate is a whole-set replacement request. A nil IDs means the
// request carried no set at all, an empty non-nil IDs is the empty set.
type MembershipUpdate struct {
	Owner Owner
	IDs   []Identifier
}
