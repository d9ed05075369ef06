package models

// Profile is the wire shape of GET/PUT /api/v1/profile/{id}. Likes is the
// whole-set field of [KindLikes].
type Profile struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Avatar      string       `json:"avatar"`
	Description string       `json:"description"`
	Website     string       `json:"website"`
	NFTs        []Identifier `json:"nfts"`
	Likes       []Identifier `json:"likes"`
}

// Order is the wire shape of GET/PUT /api/v1/orders/{id}. NFTs is the
// whole-set field of [KindCart].
type Order struct {
	ID   string       `json:"id"`
	NFTs []Identifier `json:"nfts"`
}

// Form field names used by the whole-set PUT endpoints.
const (
	LikesFormField = "likes"
	CartFormField  = "nfts"
)

// FormField returns the form field carrying the whole set for kind.
func (k MembershipKind) FormField() string {
	if k == KindCart {
		return CartFormField
	}
	return LikesFormField
}
