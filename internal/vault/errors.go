package vault

import "errors"

// Sentinel errors returned by [SecretStore] implementations to signal
// well-known failure conditions. Callers should use [errors.Is] to match
// against these values.
var (
	// ErrSecretNotFound is returned when a read resolves to nothing: the CLI
	// exited non-zero or produced empty output for the given reference.
	ErrSecretNotFound = errors.New("secret not found in vault")

	// ErrSecretWriteFailed is returned when neither the create nor the edit
	// form of a document write succeeded.
	ErrSecretWriteFailed = errors.New("secret write to vault failed")

	// ErrNotAuthenticated is returned by the authentication probe when the
	// configured account is not present in the CLI's signed-in account list.
	ErrNotAuthenticated = errors.New("vault CLI session is not authenticated")
)
