// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/opsforge/secretsync/models"
)

type fileAuditLog struct {
	path string
	mu   sync.Mutex
}

// NewFileAuditLog constructs an [AuditLog] appending JSONL records to path.
func NewFileAuditLog(path string) AuditLog {
	return &fileAuditLog{path: path}
}

// Append implements [AuditLog]. Records are appended with O_APPEND; the log
// is never rewritten or compacted by the core.
func (l *fileAuditLog) Append(ctx context.Context, status models.SyncStatus) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWritingStateFile, l.path, err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWritingStateFile, l.path, err)
	}
	defer f.Close()

	if _, err = f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWritingStateFile, l.path, err)
	}

	return nil
}

// nopAuditLog is used when no audit log path is configured.
type nopAuditLog struct{}

// NewNopAuditLog returns an [AuditLog] that drops every record.
func NewNopAuditLog() AuditLog {
	return nopAuditLog{}
}

func (nopAuditLog) Append(ctx context.Context, status models.SyncStatus) error {
	return nil
}
