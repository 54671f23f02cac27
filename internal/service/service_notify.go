// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/opsforge/secretsync/internal/adapter"
	"github.com/opsforge/secretsync/internal/logger"
	"github.com/opsforge/secretsync/internal/store"
	"github.com/opsforge/secretsync/models"
)

// maxConcurrentNotifies bounds the fan-out so a large registry cannot open
// an unbounded number of simultaneous connections.
const maxConcurrentNotifies = 8

type notifyService struct {
	deviceID      string
	notifier      adapter.PeerNotifier
	registry      store.DeviceRegistry
	notifyTimeout time.Duration

	logger *logger.Logger
}

// NewNotifyService constructs the fan-out [NotifyService] for the daemon.
func NewNotifyService(deviceID string, notifier adapter.PeerNotifier, registry store.DeviceRegistry, notifyTimeout time.Duration, logger *logger.Logger) NotifyService {
	return &notifyService{
		deviceID:      deviceID,
		notifier:      notifier,
		registry:      registry,
		notifyTimeout: notifyTimeout,
		logger:        logger,
	}
}

// FanOut implements [NotifyService]. Every eligible peer gets exactly one
// delivery attempt with its own timeout; results are collected per peer and
// failures are logged as warnings only. An unreachable registry yields an
// empty result set, since without routing data there is nobody to notify.
func (n *notifyService) FanOut(ctx context.Context, changedFile string, at time.Time) []NotifyResult {
	devices, err := n.registry.ListDevices(ctx)
	if err != nil {
		n.logger.Warn().Err(err).Msg("cannot list devices for notification fan-out")
		return nil
	}

	peers := make([]models.Device, 0, len(devices))
	for _, d := range devices {
		if d.ID == n.deviceID || d.SyncEndpoint == "" {
			continue
		}
		peers = append(peers, d)
	}

	if len(peers) == 0 {
		return nil
	}

	results := make([]NotifyResult, len(peers))
	sem := make(chan struct{}, maxConcurrentNotifies)

	var wg sync.WaitGroup
	for i, peer := range peers {
		wg.Add(1)
		go func(i int, peer models.Device) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results[i] = NotifyResult{Peer: peer, Err: n.notifyOne(ctx, peer, changedFile, at)}
		}(i, peer)
	}
	wg.Wait()

	for _, res := range results {
		if res.Err != nil {
			n.logger.Warn().Err(res.Err).Str("peer", res.Peer.ID).Msg("peer notification failed")
		} else {
			n.logger.Debug().Str("peer", res.Peer.ID).Msg("peer notified")
		}
	}

	return results
}

func (n *notifyService) notifyOne(ctx context.Context, peer models.Device, changedFile string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, n.notifyTimeout)
	defer cancel()

	return n.notifier.Notify(ctx, peer, models.PushNotification{
		Source:      n.deviceID,
		DeviceID:    peer.ID,
		ChangedFile: changedFile,
		Timestamp:   at,
	})
}
