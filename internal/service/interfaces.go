// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/opsforge/secretsync/models"
)

// SyncService performs the actual secret movement between the vault, the
// watched local files, and the durable status record. Both the webhook
// receiver and the sync daemon delegate to the same implementation, so a
// CI-triggered pull and the daemon's periodic catch-up run identical logic.
type SyncService interface {
	// PullRefresh replaces every watched file's content with the vault's
	// current value (full refresh, not incremental). A file that already
	// matches the vault is left untouched so the refresh never registers as
	// a local change. The outcome is written to the status store and
	// appended to the audit log before returning.
	// trigger names what caused the pull ("build", "push", "manual",
	// "periodic") and ends up in logs only.
	PullRefresh(ctx context.Context, trigger string) (models.SyncStatus, error)

	// PushFile stores the full content of the watched file at path into the
	// vault: the shared per-file document that peers pull from, plus a
	// per-device copy keyed by device ID and file name. A zero-byte file is
	// treated as a transient write-in-progress state and reported as
	// [ErrEmptyWatchedFile] without touching the vault or the status store.
	PushFile(ctx context.Context, path string) (models.SyncStatus, error)
}

// NotifyService fans a push notification out to every registered peer.
type NotifyService interface {
	// FanOut notifies all peers that have a sync endpoint and are not the
	// local device. Calls run concurrently with a per-call timeout; one
	// unreachable peer never delays or short-circuits the others. Delivery
	// is at-most-once and failures are logged, not returned: the caller
	// always receives one result per attempted peer.
	FanOut(ctx context.Context, changedFile string, at time.Time) []NotifyResult
}

// NotifyResult records one peer's notification attempt.
type NotifyResult struct {
	Peer models.Device
	Err  error
}
