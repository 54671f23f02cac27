package store

import "errors"

// Sentinel errors returned by store implementations to signal well-known
// failure conditions. Callers should use [errors.Is] to match against them.
var (
	// ErrSyncStatusNotFound is returned by [SyncStatusStore.Get] when no
	// sync attempt has ever been recorded.
	ErrSyncStatusNotFound = errors.New("no sync status recorded yet")

	// ErrReadingStateFile is returned (wrapped) when a durable state file
	// exists but cannot be read or decoded.
	ErrReadingStateFile = errors.New("error reading state file")

	// ErrWritingStateFile is returned (wrapped) when a durable state file
	// cannot be written or atomically renamed into place.
	ErrWritingStateFile = errors.New("error writing state file")
)
