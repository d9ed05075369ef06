package service

import (
	"github.com/MKhiriev/go-nft-keeper/internal/adapter"
	"github.com/MKhiriev/go-nft-keeper/internal/config"
	"github.com/MKhiriev/go-nft-keeper/internal/logger"
	"github.com/MKhiriev/go-nft-keeper/internal/store"
)

type ClientServices struct {
	DetailsService     NFTDetailsService
	Registry           MembershipRegistry
	ResyncJob          ClientResyncJob
	CatalogService     CatalogService
	PreferencesService PreferencesService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, workersCfg config.ClientWorkers, logger *logger.Logger) *ClientServices {
	registry := NewMembershipRegistry(serverAdapter, logger)

	return &ClientServices{
		DetailsService:     NewNFTDetailsService(serverAdapter, workersCfg.FetchConcurrency, logger),
		Registry:           registry,
		ResyncJob:          NewClientResyncJob(registry, workersCfg.ResyncInterval, logger),
		CatalogService:     NewCatalogService(serverAdapter, logger),
		PreferencesService: NewPreferencesService(localStore.PreferencesRepository, logger),
	}
}
