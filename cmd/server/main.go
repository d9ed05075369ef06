package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-nft-keeper/internal/config"
	"github.com/MKhiriev/go-nft-keeper/internal/handler"
	"github.com/MKhiriev/go-nft-keeper/internal/logger"
	"github.com/MKhiriev/go-nft-keeper/internal/server"
	"github.com/MKhiriev/go-nft-keeper/internal/service"
	"github.com/MKhiriev/go-nft-keeper/internal/store"
	"github.com/MKhiriev/go-nft-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("nft-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.Version == "" {
		cfg.Version = buildInfo.BuildVersion()
	}

	log.Debug().Str("address", cfg.HTTPAddress).Dur("request_timeout", cfg.RequestTimeout).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.DSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
