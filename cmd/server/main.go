package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-trust-keeper/internal/adapter"
	"github.com/MKhiriev/go-trust-keeper/internal/config"
	"github.com/MKhiriev/go-trust-keeper/internal/handler"
	"github.com/MKhiriev/go-trust-keeper/internal/logger"
	"github.com/MKhiriev/go-trust-keeper/internal/server"
	"github.com/MKhiriev/go-trust-keeper/internal/service"
	"github.com/MKhiriev/go-trust-keeper/internal/store"
	"github.com/MKhiriev/go-trust-keeper/internal/workers"
	"github.com/MKhiriev/go-trust-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("go-trust-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}
	log.Debug().Str("http", cfg.Server.HTTPAddress).Str("grpc", cfg.Server.GRPCAddress).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	mailer := adapter.NewMailer(cfg.Mail, cfg.Server.RequestTimeout, log)

	services, err := service.NewServices(storages, mailer, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(services, cfg.Workers, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		info.BuildVersion(), info.BuildDate(), info.BuildCommit())
}
