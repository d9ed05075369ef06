package service

import (
	"context"

	"github.com/MKhiriev/go-nft-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// NFTService serves NFT detail records.
type NFTService interface {
	GetNFT(ctx context.Context, id models.Identifier) (models.NFT, error)
}

// CollectionService serves the catalog. Member lists are returned raw, the
// same way the production backend sends them.
type CollectionService interface {
	ListCollections(ctx context.Context) ([]models.NFTCollection, error)
}

// MembershipService serves the whole-set endpoints: a profile's likes and an
// order's NFTs. Replace* methods are last-write-wins and store ids as sent.
type MembershipService interface {
	GetProfile(ctx context.Context, profileID string) (models.Profile, error)
	ReplaceLikes(ctx context.Context, update models.MembershipUpdate) (models.Profile, error)

	GetOrder(ctx context.Context, orderID string) (models.Order, error)
	ReplaceOrder(ctx context.Context, update models.MembershipUpdate) (models.Order, error)
}

// MembershipServiceWrapper defines middleware composition for
// MembershipService, e.g. validation.
type MembershipServiceWrapper interface {
	Wrap(MembershipService) MembershipService
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
