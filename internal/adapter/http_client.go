// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/opsforge/secretsync/internal/utils"
	"github.com/opsforge/secretsync/models"
)

type httpPeerNotifier struct {
	client        *resty.Client
	webhookSecret string
}

// NewHTTPPeerNotifier constructs a [PeerNotifier] that POSTs signed JSON
// notifications to each peer's advertised sync endpoint. When webhookSecret
// is empty the X-Signature header is omitted and peers running in insecure
// mode accept the body unverified.
func NewHTTPPeerNotifier(webhookSecret string, timeout time.Duration) PeerNotifier {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	cli := resty.New().SetTimeout(timeout)

	return &httpPeerNotifier{client: cli, webhookSecret: webhookSecret}
}

// Notify implements [PeerNotifier]. The body is marshalled once and signed
// over those exact bytes so the receiver's raw-body verification matches.
func (h *httpPeerNotifier) Notify(ctx context.Context, peer models.Device, notification models.PushNotification) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("encode notification for %s: %w", peer.ID, err)
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)

	if h.webhookSecret != "" {
		req.SetHeader("X-Signature", utils.SignBody(body, h.webhookSecret))
	}

	resp, err := req.Post(peer.SyncEndpoint)
	if err != nil {
		return fmt.Errorf("notify %s at %s: %w", peer.ID, peer.SyncEndpoint, err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return fmt.Errorf("notify %s at %s: http %d", peer.ID, peer.SyncEndpoint, resp.StatusCode())
	}

	return nil
}
