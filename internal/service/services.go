package service

import (
	"fmt"

	"github.com/MKhiriev/go-nft-keeper/internal/config"
	"github.com/MKhiriev/go-nft-keeper/internal/logger"
	"github.com/MKhiriev/go-nft-keeper/internal/store"
)

// Services groups the services of the development backend.
type Services struct {
	NFTService        NFTService
	CollectionService CollectionService
	MembershipService MembershipService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.Version, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	membership := NewMembershipService(storages.ProfileRepository, storages.MembershipRepository, logger)

	return &Services{
		NFTService:        NewNFTService(storages.NFTRepository, logger),
		CollectionService: NewCollectionService(storages.CollectionRepository, logger),
		MembershipService: NewMembershipValidationService().Wrap(membership),
		AppInfoService:    appInfo,
	}, nil
}
