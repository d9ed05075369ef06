package models

// NFTSort is the persisted ordering of NFT lists (liked NFTs, cart).
type NFTSort string

const (
	NFTSortPrice  NFTSort = "price"
	NFTSortRating NFTSort = "rating"
	NFTSortName   NFTSort = "name"
)

// DefaultNFTSort is used when no preference has been stored yet.
const DefaultNFTSort = NFTSortRating

// Valid reports whether s is a known ordering.
func (s NFTSort) Valid() bool {
	switch s {
	case NFTSortPrice, NFTSortRating, NFTSortName:
		return true
	}
	return false
}

// CollectionSort is the persisted ordering of the catalog.
type CollectionSort string

const (
	CollectionSortName     CollectionSort = "name"
	CollectionSortNFTCount CollectionSort = "nft_count"
)

// DefaultCollectionSort is used when no preference has been stored yet.
const DefaultCollectionSort = CollectionSortName

// Valid reports whether s is a known ordering.
func (s CollectionSort) Valid() bool {
	return s == CollectionSortName || s == CollectionSortNFTCount
}
