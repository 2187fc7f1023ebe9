// Package config loads client configuration from a YAML file with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvServer overrides the configured server address when set.
const EnvServer = "VIDEOABLE_SERVER"

// Duration wraps time.Duration so YAML values like "30s" parse.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config holds the client settings.
type Config struct {
	// ServerURL is the backend base address.
	ServerURL string `yaml:"server_url"`

	// RequestTimeout bounds every API call. The default is generous because
	// the first chat turn triggers transcription on the server.
	RequestTimeout Duration `yaml:"request_timeout"`

	// TickInterval is the playback clock resolution.
	TickInterval Duration `yaml:"tick_interval"`

	// LogFile receives structured logs; the terminal belongs to the TUI.
	// Empty disables file logging.
	LogFile string `yaml:"log_file"`

	// StorePath is the local SQLite database for recent sessions.
	StorePath string `yaml:"store_path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ServerURL:      "http://localhost:8000",
		RequestTimeout: Duration(120 * time.Second),
		TickInterval:   Duration(100 * time.Millisecond),
	}
}

// DefaultPath returns the config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "videoable.yaml"
	}
	return filepath.Join(dir, "videoable", "config.yaml")
}

// Load reads the config file at path, falling back to defaults when the file
// does not exist, then applies environment overrides. A present but invalid
// file is an error rather than a silent fallback.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if server := os.Getenv(EnvServer); server != "" {
		cfg.ServerURL = server
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = Default().RequestTimeout
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = Default().TickInterval
	}

	return cfg, nil
}
