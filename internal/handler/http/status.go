package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/opsforge/secretsync/internal/app"
	"github.com/opsforge/secretsync/internal/logger"
	"github.com/opsforge/secretsync/internal/store"
	"github.com/opsforge/secretsync/internal/utils"
	"github.com/opsforge/secretsync/models"
)

// health reports process liveness. It must succeed before any sync has ever
// run, so it touches no durable state.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{
		Status:    "healthy",
		DeviceID:  h.deviceID,
		Uptime:    time.Since(h.startedAt).Seconds(),
		Timestamp: time.Now().UTC(),
	}, http.StatusOK)
}

// status returns the most recent sync outcome, or 404 when no sync attempt
// has been recorded yet.
func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	syncStatus, err := h.statusStore.Get(r.Context())
	if err != nil {
		if errors.Is(err, store.ErrSyncStatusNotFound) {
			utils.WriteJSON(w, models.ErrorResponse{
				Error:    app.MsgNoSyncYet,
				DeviceID: h.deviceID,
			}, http.StatusNotFound)
			return
		}

		log.Err(err).Str("func", "*Handler.status").Msg("failed to load sync status")
		utils.WriteJSON(w, models.ErrorResponse{
			Error:    app.MsgFailedToLoadStatus,
			DeviceID: h.deviceID,
		}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, syncStatus, http.StatusOK)
}
