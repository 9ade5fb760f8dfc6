// internal/config/normalize.go
package config

const (
	DefaultURI       = "mongodb://localhost:27017"
	DefaultDatabase  = "test"
	DefaultTimeoutMs = 2000
	DefaultFallback  = "> "
	DefaultLogLevel  = "warn"
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	// Empty values fall back to the shell defaults.
	if cfg.Mongo.URI == "" {
		cfg.Mongo.URI = DefaultURI
	}
	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = DefaultDatabase
	}
	if cfg.Mongo.TimeoutMs == 0 {
		cfg.Mongo.TimeoutMs = DefaultTimeoutMs
	}
	if cfg.Style.Fallback == "" {
		cfg.Style.Fallback = DefaultFallback
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}
