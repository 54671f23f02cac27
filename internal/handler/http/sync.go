package http

import (
	"io"
	"net/http"

	"github.com/opsforge/secretsync/internal/app"
	"github.com/opsforge/secretsync/internal/logger"
	"github.com/opsforge/secretsync/internal/utils"
	"github.com/opsforge/secretsync/models"
)

// sync handles POST /sync: peer push notifications and operator-triggered
// manual syncs. Both branches run the same full pull refresh, which makes
// overlapping requests safe without mutual exclusion.
func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.sync").Msg("failed to read request body")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var trigger string
	switch event := decodeWebhookEvent(body).(type) {
	case models.PushEvent:
		log.Info().Str("source", event.Source).Str("changed_file", event.ChangedFile).
			Msg("peer push notification received")
		trigger = "push"
	case models.ManualSyncEvent:
		log.Info().Str("source", event.Source).Msg("manual sync requested")
		trigger = "manual"
	default:
		log.Warn().Str("func", "*Handler.sync").
			Str("payload", string(body)).
			Msg("unrecognized sync payload ignored")
		utils.WriteJSON(w, models.ErrorResponse{
			Error:    app.MsgUnrecognizedSyncPayload,
			DeviceID: h.deviceID,
		}, http.StatusOK)
		return
	}

	h.runPull(w, r, trigger)
}

// buildWebhook handles the CI event path. Only build events trigger a pull;
// every other payload shape is acknowledged and ignored.
func (h *Handler) buildWebhook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.buildWebhook").Msg("failed to read request body")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	event, ok := decodeWebhookEvent(body).(models.BuildEvent)
	if !ok {
		log.Warn().Str("func", "*Handler.buildWebhook").
			Str("payload", string(body)).
			Msg("non-build webhook payload ignored")
		utils.WriteJSON(w, models.ErrorResponse{
			Error:    app.MsgNotABuildEvent,
			DeviceID: h.deviceID,
		}, http.StatusOK)
		return
	}

	log.Info().Str("action", event.Action).Str("repository", event.Repository).
		Msg("build event received")

	h.runPull(w, r, "build")
}

func (h *Handler) runPull(w http.ResponseWriter, r *http.Request, trigger string) {
	log := logger.FromRequest(r)

	status, err := h.services.SyncService.PullRefresh(r.Context(), trigger)
	if err != nil {
		log.Err(err).Str("func", "*Handler.runPull").Str("trigger", trigger).Msg("sync failed")
		utils.WriteJSON(w, models.SyncResponse{
			Outcome:   models.SyncOutcomeFailure,
			DeviceID:  h.deviceID,
			Error:     status.LastError,
			Timestamp: status.LastSyncAt,
		}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.SyncResponse{
		Outcome:   models.SyncOutcomeSuccess,
		DeviceID:  h.deviceID,
		Timestamp: status.LastSyncAt,
	}, http.StatusOK)
}
