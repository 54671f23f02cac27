// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/opsforge/secretsync/internal/logger"
)

// ChangeHandler is invoked once per change event on a watched file.
type ChangeHandler func(ctx context.Context, path string)

// FileWatcher watches a fixed, explicit allow-list of secret-bearing files
// and invokes the handler on every write. It never watches a directory or a
// glob, so unrelated files cannot leak into the sync path.
type FileWatcher struct {
	files    []string
	onChange ChangeHandler

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	logger *logger.Logger
}

// NewFileWatcher constructs an idle FileWatcher; it does nothing until
// Start is called.
func NewFileWatcher(files []string, onChange ChangeHandler, logger *logger.Logger) *FileWatcher {
	return &FileWatcher{
		files:    files,
		onChange: onChange,
		logger:   logger,
	}
}

// Start implements [Worker]. A file that does not exist yet is logged and
// skipped; it joins the watch set on a later daemon restart.
func (f *FileWatcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}

	watched := 0
	for _, file := range f.files {
		if err = watcher.Add(file); err != nil {
			f.logger.Warn().Err(err).Str("file", file).Msg("cannot watch file, skipping")
			continue
		}
		watched++
	}

	f.logger.Info().Int("watched", watched).Int("configured", len(f.files)).
		Msg("file watches established")

	watchCtx, cancel := context.WithCancel(ctx)

	f.mu.Lock()
	f.watcher = watcher
	f.cancel = cancel
	f.mu.Unlock()

	f.wg.Add(1)
	go f.run(watchCtx, watcher)

	return nil
}

// Stop implements [Worker]. It closes all watches and blocks until the
// event loop has exited. Safe to call when the watcher is not running.
func (f *FileWatcher) Stop() {
	f.mu.Lock()
	watcher := f.watcher
	cancel := f.cancel
	f.watcher = nil
	f.cancel = nil
	f.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if watcher != nil {
		watcher.Close()
	}
	f.wg.Wait()
}

func (f *FileWatcher) run(ctx context.Context, watcher *fsnotify.Watcher) {
	defer f.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			f.handleEvent(ctx, watcher, event)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			f.logger.Warn().Err(err).Msg("file watcher error")
		}
	}
}

func (f *FileWatcher) handleEvent(ctx context.Context, watcher *fsnotify.Watcher, event fsnotify.Event) {
	// editors often replace files via rename; re-arm the watch so the next
	// change is not missed
	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		if err := watcher.Add(event.Name); err != nil {
			f.logger.Warn().Err(err).Str("file", event.Name).Msg("cannot re-arm watch")
		}
		return
	}

	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	f.logger.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("watched file changed")

	// Stop cancels ctx to end the event loop, but a push already in flight
	// must finish; the daemon's shutdown timeout is the only bound on it
	f.onChange(context.WithoutCancel(ctx), event.Name)
}
