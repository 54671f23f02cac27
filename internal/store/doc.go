// Package store implements durable state for the synchronization core: the
// device registry, the sync status record, and the append-only audit log.
//
// All stores persist to flat JSON files and replace their file atomically
// (write to a temp file in the same directory, then rename) so a concurrent
// reader in the other local process never observes a partially-written file.
// The registry holds routing metadata only; secret values never touch these
// files.
package store
