// internal/config/validate.go
package config

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil")
	}

	// ------------------------------------------------------------
	// SOURCE
	// ------------------------------------------------------------

	if cfg.Mongo.URI != "" &&
		!strings.HasPrefix(cfg.Mongo.URI, "mongodb://") &&
		!strings.HasPrefix(cfg.Mongo.URI, "mongodb+srv://") {
		return fmt.Errorf(
			"mongo.uri %q: scheme must be mongodb:// or mongodb+srv://",
			cfg.Mongo.URI,
		)
	}

	// srv records expand to a host list; a direct connection needs one host.
	if cfg.Mongo.Direct && strings.HasPrefix(cfg.Mongo.URI, "mongodb+srv://") {
		return fmt.Errorf("mongo.direct cannot be used with a mongodb+srv:// uri")
	}

	if strings.ContainsAny(cfg.Mongo.Database, "/\\. \"$") {
		return fmt.Errorf("mongo.database %q: contains an invalid character", cfg.Mongo.Database)
	}

	if cfg.Mongo.TimeoutMs < 0 {
		return fmt.Errorf("mongo.timeout_ms must be >= 0, got %d", cfg.Mongo.TimeoutMs)
	}

	// ------------------------------------------------------------
	// RENDER LOOP
	// ------------------------------------------------------------

	if cfg.Watch.IntervalMs < 0 {
		return fmt.Errorf("watch.interval_ms must be >= 0, got %d", cfg.Watch.IntervalMs)
	}

	// ------------------------------------------------------------
	// LOGGING
	// ------------------------------------------------------------

	if cfg.Log.Level != "" {
		if _, err := zapcore.ParseLevel(cfg.Log.Level); err != nil {
			return fmt.Errorf("log.level: %w", err)
		}
	}

	return nil
}
