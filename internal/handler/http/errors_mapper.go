package http

import (
	"errors"
	"net/http"

	"github.com/opsforge/secretsync/internal/service"
	"github.com/opsforge/secretsync/internal/store"
	"github.com/opsforge/secretsync/internal/vault"
)

var errorStatusMap = map[error]int{
	service.ErrSyncFailed: http.StatusInternalServerError,

	vault.ErrNotAuthenticated:  http.StatusInternalServerError,
	vault.ErrSecretNotFound:    http.StatusInternalServerError,
	vault.ErrSecretWriteFailed: http.StatusInternalServerError,

	store.ErrSyncStatusNotFound: http.StatusNotFound,
	store.ErrReadingStateFile:   http.StatusInternalServerError,
	store.ErrWritingStateFile:   http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
