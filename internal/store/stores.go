package store

import (
	"github.com/opsforge/secretsync/internal/config"
	"github.com/opsforge/secretsync/internal/logger"
)

// NewStores wires all persistence backends from cfg. The audit log is a
// no-op when no path is configured.
func NewStores(cfg config.Storage, logger *logger.Logger) *Stores {
	auditLog := NewNopAuditLog()
	if cfg.AuditLogPath != "" {
		auditLog = NewFileAuditLog(cfg.AuditLogPath)
	}

	return &Stores{
		DeviceRegistry:  NewFileDeviceRegistry(cfg.RegistryPath, logger),
		SyncStatusStore: NewFileSyncStatusStore(cfg.StatusPath),
		AuditLog:        auditLog,
	}
}
