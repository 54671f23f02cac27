// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/opsforge/secretsync/internal/logger"
	"github.com/opsforge/secretsync/internal/service"
	"github.com/opsforge/secretsync/internal/store"
)

// PeriodicSync is the convergence mechanism of the whole system: on a fixed
// interval it re-runs the full pull refresh (the same logic a CI-triggered
// pull uses) and refreshes the device's heartbeat in the registry. Any
// missed file-change event or failed push self-heals on the next tick.
type PeriodicSync struct {
	deviceID string
	interval time.Duration

	syncService service.SyncService
	registry    store.DeviceRegistry

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewPeriodicSync creates a PeriodicSync that is idle until Start is called.
// A non-positive interval defaults to 5 minutes.
func NewPeriodicSync(deviceID string, interval time.Duration, syncService service.SyncService, registry store.DeviceRegistry, logger *logger.Logger) *PeriodicSync {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	return &PeriodicSync{
		deviceID:    deviceID,
		interval:    interval,
		syncService: syncService,
		registry:    registry,
		logger:      logger,
	}
}

// Start implements [Worker]. It launches a background goroutine that runs
// one catch-up cycle per tick. The goroutine exits when ctx is cancelled or
// Stop is called; a tick in progress is allowed to finish.
func (p *PeriodicSync) Start(ctx context.Context) error {
	p.Stop()

	p.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(p.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				// cancellation ends the loop, never a cycle in progress;
				// Stop blocks until the cycle returns
				p.tick(context.WithoutCancel(jobCtx))
			}
		}
	}()

	return nil
}

// Stop implements [Worker]. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running (no-op in that case).
func (p *PeriodicSync) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

func (p *PeriodicSync) tick(ctx context.Context) {
	if _, err := p.syncService.PullRefresh(ctx, "periodic"); err != nil {
		p.logger.Warn().Err(err).Msg("periodic sync cycle failed, will retry next tick")
	}

	if err := p.registry.TouchHeartbeat(ctx, p.deviceID); err != nil {
		p.logger.Warn().Err(err).Msg("heartbeat update failed")
	}
}
