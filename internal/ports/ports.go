// Package ports defines the interfaces between the application core and the
// infrastructure adapters (config files, loggers, the terminal). The
// application layer depends on these abstractions only.
package ports

import (
	"context"

	"github.com/doeshing/chaincalc/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.chaincalc/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// SettingsSource yields the current display settings. A static snapshot
// satisfies it, as does the fsnotify-backed config watcher that swaps
// settings while a REPL session is running.
type SettingsSource interface {
	Display() domain.DisplaySettings
}

// Logger provides structured logging abstraction for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
