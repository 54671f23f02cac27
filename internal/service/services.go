package service

import (
	"github.com/opsforge/secretsync/internal/adapter"
	"github.com/opsforge/secretsync/internal/config"
	"github.com/opsforge/secretsync/internal/logger"
	"github.com/opsforge/secretsync/internal/store"
	"github.com/opsforge/secretsync/internal/vault"
)

type Services struct {
	SyncService   SyncService
	NotifyService NotifyService
}

func NewServices(deviceID string, cfg config.StructuredConfig, secrets vault.SecretStore, stores *store.Stores, notifier adapter.PeerNotifier, logger *logger.Logger) *Services {
	return &Services{
		SyncService:   NewSyncService(deviceID, cfg, secrets, stores, logger),
		NotifyService: NewNotifyService(deviceID, notifier, stores.DeviceRegistry, cfg.Sync.NotifyTimeout, logger),
	}
}
