// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncOutcome is the result classification of a sync attempt.
type SyncOutcome string

const (
	// SyncOutcomeSuccess marks a sync attempt that completed without error.
	SyncOutcomeSuccess SyncOutcome = "success"

	// SyncOutcomeFailure marks a sync attempt that failed; LastError on the
	// accompanying [SyncStatus] carries the reason.
	SyncOutcomeFailure SyncOutcome = "failure"
)

// SyncStatus is the single most-recent sync outcome of the local device.
//
// It is overwritten on every sync attempt (push or pull) and never
// historized in the primary store; an append-only audit log captures
// history separately.
type SyncStatus struct {
	// DeviceID is the local device the record belongs to.
	DeviceID string `json:"device_id"`

	// LastSyncAt is when the attempt finished.
	LastSyncAt time.Time `json:"last_sync_at"`

	// LastSyncOutcome is success or failure.
	LastSyncOutcome SyncOutcome `json:"last_sync_outcome"`

	// LastError carries the failure reason when LastSyncOutcome is failure.
	LastError string `json:"last_error,omitempty"`

	// LastChangedFile is the watched file that triggered the attempt, when
	// the attempt was a file-change push.
	LastChangedFile string `json:"last_changed_file,omitempty"`
}
