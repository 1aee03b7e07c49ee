package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-trust-keeper/internal/adapter"
	"github.com/MKhiriev/go-trust-keeper/internal/authenticator"
	"github.com/MKhiriev/go-trust-keeper/internal/client"
	"github.com/MKhiriev/go-trust-keeper/internal/config"
	"github.com/MKhiriev/go-trust-keeper/internal/logger"
	"github.com/MKhiriev/go-trust-keeper/internal/service"
	"github.com/MKhiriev/go-trust-keeper/internal/store"
	"github.com/MKhiriev/go-trust-keeper/internal/tui"
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

	log := logger.NewClientLogger("go-trust-client", os.Getenv("CLIENT_LOG_FILE"))
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	passkeys := authenticator.New(localStorage.KeyRepository, cfg.RelyingParty, log)
	services := service.NewClientServices(localStorage, serverAdapter, passkeys, cfg.Trust, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		info.BuildVersion(), info.BuildDate(), info.BuildCommit())
}
