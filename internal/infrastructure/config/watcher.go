package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	appconfig "github.com/doeshing/chaincalc/internal/application/config"
	"github.com/doeshing/chaincalc/internal/domain"
	"github.com/doeshing/chaincalc/internal/ports"
)

const debounceDuration = 100 * time.Millisecond

// Watcher hot-reloads display settings when the config file changes, so a
// running REPL picks up precision edits without restarting. Only display
// settings are swapped at runtime; engine and REPL settings stay fixed for
// the life of the session.
type Watcher struct {
	loader  *FileLoader
	watcher *fsnotify.Watcher
	logger  ports.Logger
	stopCh  chan struct{}

	mu      sync.RWMutex
	current domain.DisplaySettings
}

// NewWatcher builds a watcher seeded with the given settings.
func NewWatcher(loader *FileLoader, initial domain.DisplaySettings, logger ports.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	// Watch the directory rather than the file: editors and atomic saves
	// replace the file, which drops a direct watch.
	if err := fsw.Add(filepath.Dir(loader.Path())); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch config dir: %w", err)
	}
	return &Watcher{
		loader:  loader,
		watcher: fsw,
		logger:  logger,
		stopCh:  make(chan struct{}),
		current: initial,
	}, nil
}

// Display implements ports.SettingsSource.
func (w *Watcher) Display() domain.DisplaySettings {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Start begins watching for configuration changes.
func (w *Watcher) Start() {
	go w.watchLoop()
	w.logger.Info("config watcher started", map[string]interface{}{"path": w.loader.Path()})
}

// Stop stops watching.
func (w *Watcher) Stop() {
	close(w.stopCh)
	w.watcher.Close()
}

func (w *Watcher) watchLoop() {
	var debounce *time.Timer
	for {
		select {
		case <-w.stopCh:
			if debounce != nil {
				debounce.Stop()
			}
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(w.loader.Path()) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(debounceDuration, w.reload)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("config watcher error", err, nil)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := w.loader.Load(context.Background())
	if err != nil {
		w.logger.Error("reload config failed, keeping current settings", err, nil)
		return
	}
	if err := appconfig.Validate(cfg); err != nil {
		w.logger.Error("reloaded config invalid, keeping current settings", err, nil)
		return
	}
	w.mu.Lock()
	w.current = cfg.Display
	w.mu.Unlock()
	w.logger.Info("display settings reloaded", map[string]interface{}{
		"decimals": cfg.Display.Decimals,
	})
}

// StaticSettings is the no-reload SettingsSource used when watching is off.
type StaticSettings struct {
	Settings domain.DisplaySettings
}

// Display implements ports.SettingsSource.
func (s StaticSettings) Display() domain.DisplaySettings {
	return s.Settings
}

var (
	_ ports.SettingsSource = (*Watcher)(nil)
	_ ports.SettingsSource = StaticSettings{}
)
