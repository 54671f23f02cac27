package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/opsforge/secretsync/internal/app"
	"github.com/opsforge/secretsync/internal/logger"
	"github.com/opsforge/secretsync/internal/utils"
	"github.com/opsforge/secretsync/models"
)

const signatureHeader = "X-Signature"

// verifySignature authenticates sync-triggering requests by checking the
// X-Signature header against an HMAC-SHA256 digest of the raw body.
//
// When no webhook secret is configured, verification is skipped and a
// warning is logged on every request: an explicit insecure-mode escape
// hatch, never a silent failure. A mismatch terminates the request with 401
// before any sync logic runs.
func (h *Handler) verifySignature(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.verifySignature").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body for downstream handlers
		r.Body = io.NopCloser(bytes.NewReader(body))

		if h.webhookSecret == "" {
			log.Warn().Str("func", "*Handler.verifySignature").
				Msg("no webhook secret configured, signature verification skipped")
			next.ServeHTTP(w, r)
			return
		}

		if !utils.VerifySignature(body, r.Header.Get(signatureHeader), h.webhookSecret) {
			log.Error().Str("func", "*Handler.verifySignature").
				Str("uri", r.RequestURI).
				Msg("webhook signature mismatch")
			utils.WriteJSON(w, models.ErrorResponse{
				Error:    app.MsgInvalidSignature,
				DeviceID: h.deviceID,
			}, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
