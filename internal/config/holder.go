// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
	xglog "github.com/posecare/statusd/internal/log"
	"github.com/rs/zerolog"
)

// Holder holds configuration with atomic reloading. Reads are lock-cheap;
// reloads either apply a fully valid new configuration or keep the old one.
type Holder struct {
	mu      sync.RWMutex
	current Config
	loader  *Loader
	path    string
	logger  zerolog.Logger

	listenerMu sync.RWMutex
	listeners  []chan<- Config
}

// NewHolder creates a holder around an already-loaded initial configuration.
func NewHolder(initial Config, loader *Loader, path string) *Holder {
	return &Holder{
		current: initial,
		loader:  loader,
		path:    path,
		logger:  xglog.WithComponent("config"),
	}
}

// Get returns the current configuration.
func (h *Holder) Get() Config {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Subscribe registers a channel that receives every successfully applied
// configuration. Sends are non-blocking; a full channel misses that update.
func (h *Holder) Subscribe(ch chan<- Config) {
	h.listenerMu.Lock()
	defer h.listenerMu.Unlock()
	h.listeners = append(h.listeners, ch)
}

// Reload re-runs the loader and atomically swaps in the result. On any load
// or validation error the previous configuration stays in effect.
func (h *Holder) Reload(_ context.Context) error {
	h.logger.Info().Str(xglog.FieldEvent, "config.reload_start").Msg("reloading configuration")

	newCfg, err := h.loader.Load()
	if err != nil {
		h.logger.Error().
			Err(err).
			Str(xglog.FieldEvent, "config.reload_failed").
			Msg("keeping previous configuration")
		return fmt.Errorf("reload config: %w", err)
	}

	h.mu.Lock()
	h.current = newCfg
	h.mu.Unlock()

	xglog.SetLevel(newCfg.LogLevel)

	h.logger.Info().
		Str(xglog.FieldEvent, "config.reloaded").
		Str("log_level", newCfg.LogLevel).
		Bool("rate_limit_enabled", newCfg.RateLimitEnabled).
		Int("message_overrides", len(newCfg.Messages)).
		Msg("configuration applied")

	h.notify(newCfg)
	return nil
}

func (h *Holder) notify(cfg Config) {
	h.listenerMu.RLock()
	defer h.listenerMu.RUnlock()
	for _, ch := range h.listeners {
		select {
		case ch <- cfg:
		default:
		}
	}
}

// Watch reloads the configuration whenever the config file changes, until
// ctx is cancelled. It is a no-op when no file path was configured.
func (h *Holder) Watch(ctx context.Context) error {
	if h.path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create config watcher: %w", err)
	}
	if err := watcher.Add(h.path); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch %s: %w", h.path, err)
	}

	go func() {
		defer func() { _ = watcher.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if err := h.Reload(ctx); err != nil {
					// Already logged inside Reload; keep watching.
					continue
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				h.logger.Warn().
					Err(err).
					Str(xglog.FieldEvent, "config.watch_error").
					Msg("config watcher error")
			}
		}
	}()
	return nil
}
