// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"dario.cat/mergo"

	"github.com/opsforge/secretsync/internal/logger"
	"github.com/opsforge/secretsync/models"
)

type fileDeviceRegistry struct {
	path string
	mu   sync.Mutex

	now func() time.Time

	logger *logger.Logger
}

// NewFileDeviceRegistry constructs a [DeviceRegistry] backed by a flat JSON
// file at path. A missing file is a valid empty registry, so first runs need
// no priming.
func NewFileDeviceRegistry(path string, logger *logger.Logger) DeviceRegistry {
	return &fileDeviceRegistry{
		path:   path,
		now:    time.Now,
		logger: logger,
	}
}

// ListDevices implements [DeviceRegistry].
func (r *fileDeviceRegistry) ListDevices(ctx context.Context) ([]models.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()
}

// UpsertDevice implements [DeviceRegistry]. Non-zero fields of the incoming
// record override the stored ones via mergo; RegisteredAt survives every
// update and LastSeen is always refreshed.
func (r *fileDeviceRegistry) UpsertDevice(ctx context.Context, device models.Device) (models.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	devices, err := r.load()
	if err != nil {
		return models.Device{}, err
	}

	now := r.now().UTC()

	for i := range devices {
		if devices[i].ID != device.ID {
			continue
		}

		registeredAt := devices[i].RegisteredAt
		if err = mergo.Merge(&devices[i], device, mergo.WithOverride); err != nil {
			return models.Device{}, fmt.Errorf("error merging device records: %w", err)
		}
		devices[i].RegisteredAt = registeredAt
		devices[i].LastSeen = now

		if err = r.save(devices); err != nil {
			return models.Device{}, err
		}
		return devices[i], nil
	}

	device.RegisteredAt = now
	device.LastSeen = now
	devices = append(devices, device)

	if err = r.save(devices); err != nil {
		return models.Device{}, err
	}

	return device, nil
}

// TouchHeartbeat implements [DeviceRegistry].
func (r *fileDeviceRegistry) TouchHeartbeat(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	devices, err := r.load()
	if err != nil {
		return err
	}

	for i := range devices {
		if devices[i].ID == id {
			devices[i].LastSeen = r.now().UTC()
			return r.save(devices)
		}
	}

	r.logger.Warn().Str("device_id", id).Msg("heartbeat for unknown device ignored")
	return nil
}

func (r *fileDeviceRegistry) load() ([]models.Device, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return []models.Device{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadingStateFile, r.path, err)
	}
	if len(data) == 0 {
		return []models.Device{}, nil
	}

	var devices []models.Device
	if err = json.Unmarshal(data, &devices); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadingStateFile, r.path, err)
	}

	return devices, nil
}

func (r *fileDeviceRegistry) save(devices []models.Device) error {
	data, err := json.MarshalIndent(devices, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWritingStateFile, r.path, err)
	}

	if err = writeFileAtomic(r.path, data, 0o600); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWritingStateFile, r.path, err)
	}

	return nil
}
