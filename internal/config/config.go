// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Mongo MongoConfig `yaml:"mongo"`
	Watch WatchConfig `yaml:"watch"`
	Style StyleConfig `yaml:"style"`
	Log   LogConfig   `yaml:"log"`
}

// ---- SOURCE ----

type MongoConfig struct {
	URI       string `yaml:"uri"`
	Database  string `yaml:"database"`
	TimeoutMs int    `yaml:"timeout_ms"`

	// Direct pins the connection to the addressed member (default true).
	Direct bool `yaml:"direct"`
}

// ---- RENDER LOOP ----

type WatchConfig struct {
	// IntervalMs = 0 renders once and exits.
	IntervalMs int `yaml:"interval_ms"`
}

// ---- OUTPUT ----

type StyleConfig struct {
	Color    bool   `yaml:"color"`
	// Readline wraps color escapes in \x01..\x02 for bash/zsh PS1 hooks.
	Readline bool   `yaml:"readline"`
	Fallback string `yaml:"fallback"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Mongo: MongoConfig{
			URI:       DefaultURI,
			Database:  DefaultDatabase,
			TimeoutMs: DefaultTimeoutMs,
			Direct:    true,
		},
		Style: StyleConfig{Fallback: DefaultFallback},
		Log:   LogConfig{Level: DefaultLogLevel},
	}
}

// Load reads a YAML file over Default(). An empty path returns Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return &cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}
