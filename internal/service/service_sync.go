// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/opsforge/secretsync/internal/config"
	"github.com/opsforge/secretsync/internal/logger"
	"github.com/opsforge/secretsync/internal/store"
	"github.com/opsforge/secretsync/internal/vault"
	"github.com/opsforge/secretsync/models"
)

type syncService struct {
	deviceID     string
	secretsVault string
	watchFiles   []string

	secrets     vault.SecretStore
	statusStore store.SyncStatusStore
	auditLog    store.AuditLog

	now func() time.Time

	logger *logger.Logger
}

// NewSyncService constructs the shared [SyncService] used by both processes.
func NewSyncService(deviceID string, cfg config.StructuredConfig, secrets vault.SecretStore, stores *store.Stores, logger *logger.Logger) SyncService {
	return &syncService{
		deviceID:     deviceID,
		secretsVault: cfg.Vault.SecretsVault,
		watchFiles:   cfg.Sync.WatchFiles,
		secrets:      secrets,
		statusStore:  stores.SyncStatusStore,
		auditLog:     stores.AuditLog,
		now:          time.Now,
		logger:       logger,
	}
}

// PullRefresh implements [SyncService]. Files are refreshed independently:
// a reference that fails to resolve marks the attempt failed but does not
// prevent the remaining files from being refreshed, so partial vault state
// still converges file by file.
func (s *syncService) PullRefresh(ctx context.Context, trigger string) (models.SyncStatus, error) {
	log := s.logger.GetChildLogger()
	log.Info().Str("trigger", trigger).Int("files", len(s.watchFiles)).Msg("pull refresh started")

	if err := s.secrets.IsAuthenticated(ctx); err != nil {
		return s.recordFailure(ctx, "", err), fmt.Errorf("%w: %w", ErrSyncFailed, err)
	}

	var errs error
	for _, file := range s.watchFiles {
		if err := s.refreshFile(ctx, file); err != nil {
			log.Warn().Err(err).Str("file", file).Msg("file refresh failed")
			errs = errors.Join(errs, err)
		}
	}

	if errs != nil {
		return s.recordFailure(ctx, "", errs), fmt.Errorf("%w: %w", ErrSyncFailed, errs)
	}

	log.Info().Str("trigger", trigger).Msg("pull refresh finished")
	return s.recordSuccess(ctx, ""), nil
}

// PushFile implements [SyncService]. The shared per-file document is written
// first; it is what peers pull from. The per-device copy is written second
// so that simultaneous pushes from different devices never collide on it.
func (s *syncService) PushFile(ctx context.Context, path string) (models.SyncStatus, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		readErr := fmt.Errorf("read watched file %s: %w", path, err)
		return s.recordFailure(ctx, path, readErr), fmt.Errorf("%w: %w", ErrSyncFailed, readErr)
	}

	if len(content) == 0 {
		s.logger.Debug().Str("file", path).Msg("watched file empty, skipping push")
		return models.SyncStatus{}, ErrEmptyWatchedFile
	}

	if err = s.secrets.IsAuthenticated(ctx); err != nil {
		return s.recordFailure(ctx, path, err), fmt.Errorf("%w: %w", ErrSyncFailed, err)
	}

	item := filepath.Base(path)
	for _, ref := range []models.SecretReference{
		{Vault: s.secretsVault, Item: item, Field: "content"},
		{Vault: s.secretsVault, Item: s.deviceID + "--" + item, Field: "content"},
	} {
		if err = s.secrets.Store(ctx, ref, content); err != nil {
			return s.recordFailure(ctx, path, err), fmt.Errorf("%w: %w", ErrSyncFailed, err)
		}
	}

	s.logger.Info().Str("file", path).Msg("pushed watched file to vault")
	return s.recordSuccess(ctx, path), nil
}

func (s *syncService) refreshFile(ctx context.Context, path string) error {
	ref := models.SecretReference{
		Vault: s.secretsVault,
		Item:  filepath.Base(path),
		Field: "content",
	}

	value, err := s.secrets.Resolve(ctx, ref)
	if err != nil {
		return err
	}

	// a refresh that changes nothing must not touch the file: the daemon's
	// watcher would see the write as a local change and push it back out
	if current, readErr := os.ReadFile(path); readErr == nil && string(current) == value {
		return nil
	}

	if err = os.WriteFile(path, []byte(value), 0o600); err != nil {
		return fmt.Errorf("write refreshed file %s: %w", path, err)
	}

	return nil
}

func (s *syncService) recordSuccess(ctx context.Context, changedFile string) models.SyncStatus {
	return s.record(ctx, models.SyncStatus{
		DeviceID:        s.deviceID,
		LastSyncAt:      s.now().UTC(),
		LastSyncOutcome: models.SyncOutcomeSuccess,
		LastChangedFile: changedFile,
	})
}

func (s *syncService) recordFailure(ctx context.Context, changedFile string, cause error) models.SyncStatus {
	return s.record(ctx, models.SyncStatus{
		DeviceID:        s.deviceID,
		LastSyncAt:      s.now().UTC(),
		LastSyncOutcome: models.SyncOutcomeFailure,
		LastError:       cause.Error(),
		LastChangedFile: changedFile,
	})
}

// record persists the outcome. Status and audit failures are logged rather
// than surfaced: the sync result itself is what the caller cares about.
func (s *syncService) record(ctx context.Context, status models.SyncStatus) models.SyncStatus {
	if err := s.statusStore.Set(ctx, status); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist sync status")
	}
	if err := s.auditLog.Append(ctx, status); err != nil {
		s.logger.Warn().Err(err).Msg("failed to append audit record")
	}

	return status
}
