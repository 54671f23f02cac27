// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Device is one machine participating in secret synchronization.
//
// A device record carries routing metadata only — never secret values.
// The registry holding these records is authoritative for who to notify,
// while the external vault remains authoritative for secret contents.
type Device struct {
	// ID is the stable unique identifier of the device. Immutable once
	// created; subsequent registrations with the same ID update the
	// existing record in place.
	ID string `json:"id"`

	// Hostname is the device's host name as reported at registration and
	// refreshed on every heartbeat.
	Hostname string `json:"hostname"`

	// Platform is the operating system identifier (e.g. "linux", "darwin").
	Platform string `json:"platform"`

	// Architecture is the CPU architecture identifier (e.g. "amd64").
	Architecture string `json:"architecture"`

	// SyncEndpoint is the URL of the device's webhook receiver. Empty means
	// the device is pull-only and cannot receive push notifications.
	SyncEndpoint string `json:"sync_endpoint,omitempty"`

	// RegisteredAt is the creation timestamp of the record. Immutable.
	RegisteredAt time.Time `json:"registered_at"`

	// LastSeen is refreshed on every heartbeat and sync cycle.
	LastSeen time.Time `json:"last_seen"`
}
