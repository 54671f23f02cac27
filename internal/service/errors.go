package service

import "errors"

var (
	// ErrEmptyWatchedFile is returned by PushFile when the watched file is
	// zero bytes. Editors truncate before rewriting, so an empty file is a
	// transient state, not a deletion; callers treat it as a no-op.
	ErrEmptyWatchedFile = errors.New("watched file is empty")

	// ErrSyncFailed wraps the underlying cause when a pull or push attempt
	// fails; the same message is recorded in the status store's LastError.
	ErrSyncFailed = errors.New("sync attempt failed")
)
