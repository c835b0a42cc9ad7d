package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sheetcharts/internal/config"
	"github.com/MKhiriev/sheetcharts/internal/handler"
	"github.com/MKhiriev/sheetcharts/internal/logger"
	"github.com/MKhiriev/sheetcharts/internal/server"
	"github.com/MKhiriev/sheetcharts/internal/service"
	"github.com/MKhiriev/sheetcharts/internal/store"
	"github.com/MKhiriev/sheetcharts/internal/workers"
	"github.com/MKhiriev/sheetcharts/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("sheetcharts-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Str("upload_dir", cfg.Storage.Files.UploadDir).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	background := workers.NewWorkers(
		workers.NewUploadSweeper(storages.FileStorage, storages.HistoryRepository, cfg.Workers, log),
	)

	srv, err := server.NewServer(handlers, cfg.Server, log, background.Run)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer(ctx)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
