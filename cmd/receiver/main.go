package main

import (
	"context"
	"fmt"

	"github.com/opsforge/secretsync/internal/adapter"
	"github.com/opsforge/secretsync/internal/config"
	myHTTP "github.com/opsforge/secretsync/internal/handler/http"
	"github.com/opsforge/secretsync/internal/logger"
	"github.com/opsforge/secretsync/internal/server"
	"github.com/opsforge/secretsync/internal/service"
	"github.com/opsforge/secretsync/internal/store"
	"github.com/opsforge/secretsync/internal/vault"
	"github.com/opsforge/secretsync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("receiver")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	self := service.SelfDevice(cfg.Device)
	stores := store.NewStores(cfg.Storage, log)
	secrets := vault.NewCLISecretStore(cfg.Vault, log)
	notifier := adapter.NewHTTPPeerNotifier(cfg.Security.WebhookSecret, cfg.Sync.NotifyTimeout)
	services := service.NewServices(self.ID, *cfg, secrets, stores, notifier, log)

	// register self so peers sharing this registry can route to us; the
	// receiver still serves pulls if registration fails
	if _, err = stores.DeviceRegistry.UpsertDevice(context.Background(), self); err != nil {
		log.Warn().Err(err).Msg("device self-registration failed")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	handler := myHTTP.NewHandler(self.ID, cfg.Security.WebhookSecret, buildInfo, services, stores.SyncStatusStore, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
