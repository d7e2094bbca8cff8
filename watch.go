// FILE: watch.go
package log

import (
	"context"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ConfigWatcher re-applies a TOML configuration file to a logger whenever the file changes.
// The parent directory is watched so editors that replace the file by rename are seen.
type ConfigWatcher struct {
	logger  *Logger
	path    string
	watcher *fsnotify.Watcher

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}

	reloads atomic.Uint64
	errors  atomic.Uint64
}

// NewConfigWatcher creates a watcher for path. The watch begins with Start.
func NewConfigWatcher(l *Logger, path string) (*ConfigWatcher, error) {
	if l == nil {
		return nil, fmtErrorf("config watcher requires a logger")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmtErrorf("failed to resolve config path '%s': %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmtErrorf("failed to create file watcher: %w", err)
	}

	return &ConfigWatcher{
		logger:  l,
		path:    absPath,
		watcher: watcher,
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}, nil
}

// Start begins watching. It is non-blocking; reloads run on a background goroutine
// until Stop is called or ctx is cancelled.
func (w *ConfigWatcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmtErrorf("failed to watch '%s': %w", filepath.Dir(w.path), err)
	}

	w.running = true
	go w.run(ctx)
	return nil
}

// Stop ends the watch and waits for the background goroutine to exit
func (w *ConfigWatcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return w.watcher.Close()
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	return w.watcher.Close()
}

// Reloads returns how many times the configuration was applied successfully
func (w *ConfigWatcher) Reloads() uint64 {
	return w.reloads.Load()
}

// Errors returns how many reloads failed to load or apply
func (w *ConfigWatcher) Errors() uint64 {
	return w.errors.Load()
}

func (w *ConfigWatcher) run(ctx context.Context) {
	defer close(w.doneCh)

	// Editors often emit several events per save; reload once the burst settles
	debounce := time.NewTimer(configReloadDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			debounce.Reset(configReloadDebounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.errors.Add(1)
			w.logger.internalLog("config watcher error: %v\n", err)

		case <-debounce.C:
			w.reload()
		}
	}
}

// reload loads the file and applies it, keeping the current configuration on failure
func (w *ConfigWatcher) reload() {
	cfg, err := NewConfigFromFile(w.path)
	if err != nil {
		w.errors.Add(1)
		w.logger.internalLog("failed to reload config '%s': %v\n", w.path, err)
		return
	}
	if err := w.logger.ApplyConfig(cfg); err != nil {
		w.errors.Add(1)
		w.logger.internalLog("failed to apply reloaded config '%s': %v\n", w.path, err)
		return
	}
	w.reloads.Add(1)
}
