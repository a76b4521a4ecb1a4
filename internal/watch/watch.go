// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package watch re-runs a callback when any of a set of files changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	xglog "github.com/computare/computare-gen/internal/log"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the burst of events editors emit for one save.
const DefaultDebounce = 300 * time.Millisecond

// Func is invoked with the sorted set of files that changed since the last call.
type Func func(ctx context.Context, changed []string) error

// Run watches paths until ctx is cancelled. Parent directories are watched
// rather than the files themselves so that editors which save via
// rename-over keep triggering events. Errors returned by fn are logged and
// watching continues. Run returns nil on cancellation.
func Run(ctx context.Context, paths []string, debounce time.Duration, fn Func) error {
	if len(paths) == 0 {
		return errors.New("watch: no paths")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	logger := xglog.WithComponentFromContext(ctx, "watch")

	targets := make(map[string]struct{}, len(paths))
	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("watch %s: %w", p, err)
		}
		targets[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	logger.Info().
		Str(xglog.FieldEvent, "watch.started").
		Int("files", len(targets)).
		Msg("watching for changes")

	// Debounce: the timer is (re)armed on each relevant event and fires once.
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()
	pending := make(map[string]struct{})

	for {
		select {
		case <-ctx.Done():
			logger.Info().Str(xglog.FieldEvent, "watch.stopped").Msg("watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Watch for Write and Create events (covers vim, nano, echo)
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			name := filepath.Clean(event.Name)
			if _, ok := targets[name]; !ok {
				continue
			}
			logger.Debug().
				Str(xglog.FieldEvent, "watch.file_changed").
				Str(xglog.FieldPath, name).
				Str("op", event.Op.String()).
				Msg("file changed")
			pending[name] = struct{}{}
			timer.Reset(debounce)

		case <-timer.C:
			changed := make([]string, 0, len(pending))
			for p := range pending {
				changed = append(changed, p)
			}
			sort.Strings(changed)
			clear(pending)

			if err := fn(ctx, changed); err != nil {
				logger.Error().
					Err(err).
					Str(xglog.FieldEvent, "watch.callback_failed").
					Strs("changed", changed).
					Msg("rebuild after change failed")
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error().
				Err(err).
				Str(xglog.FieldEvent, "watch.error").
				Msg("watcher error")
		}
	}
}
