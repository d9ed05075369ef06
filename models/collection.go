package models

// NFTCollection is a catalog entry grouping several NFTs.
//
// NFTs is the raw list as sent by the server and may contain the same
// identifier more than once. Use [NFTCollection.Deduplicated] or
// [NFTCollection.NFTCount] before counting or rendering members.
type NFTCollection struct {
	ID          Identifier   `json:"id"`
	Name        string       `json:"name"`
	Cover       string       `json:"cover"`
	Description string       `json:"description"`
	Author      string       `json:"author"`
	CreatedAt   string       `json:"createdAt"`
	NFTs        []Identifier `json:"nfts"`
}

// NFTCount returns the number of distinct NFTs in the collection.
func (c NFTCollection) NFTCount() int {
	set := DedupedFrom(c.NFTs)
	return set.Len()
}

// Deduplicated returns a copy of c whose NFTs contain each identifier once,
// sorted ascending.
func (c NFTCollection) Deduplicated() NFTCollection {
	set := DedupedFrom(c.NFTs)
	c.NFTs = set.Snapshot()
	return c
}
