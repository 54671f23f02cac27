// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// HealthResponse is returned by GET /health. It never depends on a prior
// sync having run.
type HealthResponse struct {
	// Status is "healthy" while the process is serving requests.
	Status string `json:"status"`

	// DeviceID identifies the responding device.
	DeviceID string `json:"device_id"`

	// Uptime is the duration since process start, in seconds.
	Uptime float64 `json:"uptime"`

	// Timestamp is when the response was produced.
	Timestamp time.Time `json:"timestamp"`
}

// SyncResponse reports the outcome of a triggered sync to the HTTP caller.
type SyncResponse struct {
	// Outcome is success or failure.
	Outcome SyncOutcome `json:"outcome"`

	// DeviceID is the device that performed the sync.
	DeviceID string `json:"device_id"`

	// Error carries the failure reason when Outcome is failure.
	Error string `json:"error,omitempty"`

	// Timestamp is when the sync attempt finished.
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResponse is the structured body for rejected requests.
type ErrorResponse struct {
	Error    string `json:"error"`
	DeviceID string `json:"device_id,omitempty"`
}
