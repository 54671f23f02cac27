// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/opsforge/secretsync/models"
)

// DeviceRegistry is the durable record of every known device. It is written
// by both local processes; implementations must serialize their own writes
// and replace the backing file atomically. Last-writer-wins is acceptable
// since each device owns its own registry file.
type DeviceRegistry interface {
	// ListDevices returns all registered devices in stable registration
	// order. An absent or empty registry yields an empty slice, not an error.
	ListDevices(ctx context.Context) ([]models.Device, error)

	// UpsertDevice merges device into the registry by ID. An existing record
	// keeps its RegisteredAt and absorbs the non-zero incoming fields; a new
	// record is appended with RegisteredAt set to now. LastSeen is refreshed
	// either way. The stored record is returned.
	UpsertDevice(ctx context.Context, device models.Device) (models.Device, error)

	// TouchHeartbeat refreshes only LastSeen for the given device. An
	// unknown id is logged as a warning and ignored, never an error.
	TouchHeartbeat(ctx context.Context, id string) error
}

// SyncStatusStore holds the single most-recent sync outcome of the local
// device. Every sync attempt overwrites the record.
type SyncStatusStore interface {
	// Get returns the current record, or [ErrSyncStatusNotFound] when no
	// sync has ever run.
	Get(ctx context.Context) (models.SyncStatus, error)

	// Set overwrites the record.
	Set(ctx context.Context, status models.SyncStatus) error
}

// AuditLog captures the history of sync attempts for operators. It is
// write-only from the core's perspective: nothing in the sync logic ever
// reads it back.
type AuditLog interface {
	// Append adds one record to the log.
	Append(ctx context.Context, status models.SyncStatus) error
}

// Stores aggregates all persistence backends used by a process.
type Stores struct {
	DeviceRegistry  DeviceRegistry
	SyncStatusStore SyncStatusStore
	AuditLog        AuditLog
}
