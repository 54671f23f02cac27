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

	"github.com/opsforge/secretsync/models"
)

type fileSyncStatusStore struct {
	path string
	mu   sync.Mutex
}

// NewFileSyncStatusStore constructs a [SyncStatusStore] backed by a single
// JSON record at path. The mutex serializes overlapping status writes from
// concurrent receiver requests so the record is never torn.
func NewFileSyncStatusStore(path string) SyncStatusStore {
	return &fileSyncStatusStore{path: path}
}

// Get implements [SyncStatusStore].
func (s *fileSyncStatusStore) Get(ctx context.Context) (models.SyncStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return models.SyncStatus{}, ErrSyncStatusNotFound
	}
	if err != nil {
		return models.SyncStatus{}, fmt.Errorf("%w: %s: %w", ErrReadingStateFile, s.path, err)
	}
	if len(data) == 0 {
		return models.SyncStatus{}, ErrSyncStatusNotFound
	}

	var status models.SyncStatus
	if err = json.Unmarshal(data, &status); err != nil {
		return models.SyncStatus{}, fmt.Errorf("%w: %s: %w", ErrReadingStateFile, s.path, err)
	}

	return status, nil
}

// Set implements [SyncStatusStore].
func (s *fileSyncStatusStore) Set(ctx context.Context, status models.SyncStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(status, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWritingStateFile, s.path, err)
	}

	if err = writeFileAtomic(s.path, data, 0o600); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWritingStateFile, s.path, err)
	}

	return nil
}
