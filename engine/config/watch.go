package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch reloads the config at path whenever it is written or replaced, and delivers every valid
// result on the returned channel. Invalid edits are logged and skipped. Only the latest unread
// config is kept, so a slow reader never blocks the watcher. The channel closes when ctx ends.
//
// The parent directory is watched rather than the file so that editors which save by renaming
// a temporary file over the original keep being followed.
//
// Parameters:
//   - ctx: stops the watcher when done
//   - path: the config file
//   - logger: receives reload results, nil for none
//
// Returns:
//   - <-chan *Config: reloaded configs
//   - error: if the watcher cannot be created
func Watch(ctx context.Context, path string, logger *zap.Logger) (<-chan *Config, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	path = filepath.Clean(path)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch: %w", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	out := make(chan *Config, 1)
	go func() {
		defer close(out)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != path || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
					continue
				}
				cfg, err := Load(path)
				if err != nil {
					logger.Warn("config reload failed", zap.String("path", path), zap.Error(err))
					continue
				}
				logger.Info("config reloaded", zap.String("path", path))
				deliver(out, cfg)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher error", zap.Error(err))
			}
		}
	}()
	return out, nil
}

// deliver replaces any unread config in out with cfg. out must have a buffer of one and a single sender.
func deliver(out chan *Config, cfg *Config) {
	select {
	case <-out:
	default:
	}
	out <- cfg
}
