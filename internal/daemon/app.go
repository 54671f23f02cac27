// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package daemon

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/opsforge/secretsync/internal/adapter"
	"github.com/opsforge/secretsync/internal/config"
	"github.com/opsforge/secretsync/internal/logger"
	"github.com/opsforge/secretsync/internal/service"
	"github.com/opsforge/secretsync/internal/store"
	"github.com/opsforge/secretsync/internal/vault"
	"github.com/opsforge/secretsync/internal/workers"
	"github.com/opsforge/secretsync/models"
)

type App struct {
	self     models.Device
	services *service.Services
	stores   *store.Stores
	secrets  vault.SecretStore
	workers  *workers.Workers

	shutdownTimeout time.Duration

	logger *logger.Logger
}

// NewApp wires the full daemon from configuration.
func NewApp(cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	if len(cfg.Sync.WatchFiles) == 0 {
		return nil, errors.New("no watched files configured, nothing to sync")
	}

	self := service.SelfDevice(cfg.Device)
	stores := store.NewStores(cfg.Storage, log)
	secrets := vault.NewCLISecretStore(cfg.Vault, log)
	notifier := adapter.NewHTTPPeerNotifier(cfg.Security.WebhookSecret, cfg.Sync.NotifyTimeout)
	services := service.NewServices(self.ID, *cfg, secrets, stores, notifier, log)

	app := &App{
		self:            self,
		services:        services,
		stores:          stores,
		secrets:         secrets,
		shutdownTimeout: cfg.Sync.ShutdownTimeout,
		logger:          log,
	}

	app.workers = workers.NewWorkers(
		workers.NewFileWatcher(cfg.Sync.WatchFiles, app.handleFileChange, log),
		workers.NewPeriodicSync(self.ID, cfg.Sync.Interval, services.SyncService, stores.DeviceRegistry, log),
	)

	return app, nil
}

// Run starts the daemon and blocks until a termination signal arrives. The
// vault authentication check runs first and fails fast: without a signed-in
// CLI session the daemon cannot do anything useful.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := a.secrets.IsAuthenticated(ctx); err != nil {
		return fmt.Errorf("vault authentication check failed, sign in with the vault CLI and restart: %w", err)
	}

	registered, err := a.stores.DeviceRegistry.UpsertDevice(ctx, a.self)
	if err != nil {
		return fmt.Errorf("register device in registry: %w", err)
	}
	a.self = registered

	a.logger.Info().
		Str("device_id", a.self.ID).
		Str("hostname", a.self.Hostname).
		Str("sync_endpoint", a.self.SyncEndpoint).
		Msg("device registered, starting workers")

	if err = a.workers.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	a.logger.Info().Msg("termination signal received, shutting down")

	return a.shutdown()
}

// shutdown closes all file watches and cancels the periodic timer, waiting
// for the current cycle's outstanding I/O up to the shutdown timeout.
func (a *App) shutdown() error {
	done := make(chan struct{})
	go func() {
		a.workers.Stop()
		close(done)
	}()

	select {
	case <-done:
		a.logger.Info().Msg("daemon stopped gracefully")
		return nil
	case <-time.After(a.shutdownTimeout):
		return fmt.Errorf("shutdown timed out after %s", a.shutdownTimeout)
	}
}

// handleFileChange pushes the changed file's content into the vault and, on
// success, fans a notification out to every peer. A failed push is already
// recorded in the status store; the periodic cycle catches it up, so no
// retry is attempted here. Notification failures never affect the push
// outcome: push success is the vault write succeeding.
func (a *App) handleFileChange(ctx context.Context, path string) {
	status, err := a.services.SyncService.PushFile(ctx, path)
	if err != nil {
		if errors.Is(err, service.ErrEmptyWatchedFile) {
			return
		}
		a.logger.Error().Err(err).Str("file", path).Msg("push failed, periodic cycle will retry")
		return
	}

	a.services.NotifyService.FanOut(ctx, path, status.LastSyncAt)
}
