package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-nft-keeper/internal/adapter"
	"github.com/MKhiriev/go-nft-keeper/internal/client"
	"github.com/MKhiriev/go-nft-keeper/internal/config"
	"github.com/MKhiriev/go-nft-keeper/internal/logger"
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
	var exitCode int
	defer func() { os.Exit(exitCode) }()

	log := logger.NewClientLogger("nft-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	serverAdapter, err := adapter.NewCachingServerAdapter(httpAdapter, cfg.Adapter.DetailCacheSize, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create detail cache")
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	services := service.NewClientServices(localStorage, serverAdapter, cfg.Workers, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	app, err := client.NewApp(services, cfg, buildInfo, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx, cfg.Args); err != nil {
		log.Error().Err(err).Strs("args", cfg.Args).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		exitCode = 1
	}
}
