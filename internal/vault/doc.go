// Package vault integrates the external secret-management CLI as the single
// source of truth for secret values.
//
// The package exposes the narrow [SecretStore] interface so daemon and
// receiver logic never depend on the concrete CLI; alternative backends and
// test fakes plug in without touching callers. The default implementation
// shells out to the vault CLI with a bounded per-invocation timeout.
package vault
