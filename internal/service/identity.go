// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"os"
	"runtime"

	"github.com/opsforge/secretsync/internal/config"
	"github.com/opsforge/secretsync/internal/utils"
	"github.com/opsforge/secretsync/models"
)

// SelfDevice builds the local device's registry record from configuration
// and the runtime environment. When no device ID is configured, a stable-ish
// one is derived from the hostname plus a generated UUID; operators who need
// identity to survive reinstalls should configure DEVICE_ID explicitly.
func SelfDevice(cfg config.Device) models.Device {
	hostname := cfg.Hostname
	if hostname == "" {
		if h, err := os.Hostname(); err == nil {
			hostname = h
		}
	}

	id := cfg.ID
	if id == "" {
		id = hostname + "-" + utils.NewUUIDGenerator().Generate()
	}

	return models.Device{
		ID:           id,
		Hostname:     hostname,
		Platform:     runtime.GOOS,
		Architecture: runtime.GOARCH,
		SyncEndpoint: cfg.SyncEndpoint,
	}
}
