package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/opsforge/secretsync/internal/app"
	"github.com/opsforge/secretsync/internal/utils"
	"github.com/opsforge/secretsync/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// read-only routes, no signature required
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/status", h.status)
		r.Get("/version", h.version)
	})

	// sync-triggering routes behind signature verification
	router.Group(func(r chi.Router) {
		r.Use(h.verifySignature)
		r.Post("/sync", h.sync)
		r.Post("/webhook/build", h.buildWebhook)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, models.ErrorResponse{
			Error:    app.MsgUnknownRoute,
			DeviceID: h.deviceID,
		}, http.StatusNotFound)
	})

	return router
}
