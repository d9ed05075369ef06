package models

// NFT is the detail record of a single token as returned by
// GET /api/v1/nft/{id}. Values are immutable once decoded.
type NFT struct {
	ID          Identifier `json:"id"`
	Name        string     `json:"name"`
	Images      []string   `json:"images"`
	Rating      int        `json:"rating"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Author      string     `json:"author"`
	CreatedAt   string     `json:"createdAt"`
}

// BatchResult is the outcome of a fan-out detail fetch. Exactly one of NFTs
// and Err is meaningful: a non-nil Err means the batch failed as a whole,
// even if some records were fetched.
type BatchResult struct {
	NFTs []NFT
	Err  error
}
