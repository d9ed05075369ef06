package store

import (
	"context"

	"github.com/MKhiriev/go-nft-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// NFTRepository reads NFT detail records.
type NFTRepository interface {
	GetNFT(ctx context.Context, id models.Identifier) (models.NFT, error)
}

// CollectionRepository lists catalog collections together with their raw
// member lists. Duplicated members are returned as stored.
type CollectionRepository interface {
	ListCollections(ctx context.Context) ([]models.NFTCollection, error)
}

// MembershipRepository stores the whole-set memberships (likes, cart) of an
// owner. ReplaceMembers is last-write-wins: the stored list is replaced by
// ids exactly as given, order and duplicates included.
type MembershipRepository interface {
	GetMembers(ctx context.Context, owner models.Owner) ([]models.Identifier, error)
	ReplaceMembers(ctx context.Context, owner models.Owner, ids []models.Identifier) error
}

// ProfileRepository reads user profiles without their likes, which live in
// [MembershipRepository].
type ProfileRepository interface {
	GetProfile(ctx context.Context, id string) (models.Profile, error)
}
