// Package config loads quotes configuration using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"quotes/internal/quote"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override, e.g. QUOTES_QUOTE_ENDPOINT.
const EnvPrefix = "QUOTES_"

// Default log rotation values.
const (
	DefaultLogMaxSizeMB  = 5
	DefaultLogMaxBackups = 3
	DefaultLogMaxAgeDays = 28
)

// Config is the root configuration structure.
type Config struct {
	Quote     QuoteConfig     `koanf:"quote"     validate:"required"`
	Log       LogConfig       `koanf:"log"       validate:"required"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// QuoteConfig configures the quote API.
type QuoteConfig struct {
	Endpoint string `koanf:"endpoint" validate:"required,http_url"`
}

// LogConfig configures the rotating log file.
type LogConfig struct {
	Level      string `koanf:"level"       validate:"required,oneof=debug info warn error"`
	File       string `koanf:"file"        validate:"required"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"min=0,max=365"`
}

// TelemetryConfig configures OTLP trace export. An empty endpoint disables it.
type TelemetryConfig struct {
	Endpoint    string `koanf:"endpoint"     validate:"omitempty,http_url"`
	ServiceName string `koanf:"service_name" validate:"required"`
}

// DefaultPath returns the default config file path using XDG conventions.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "quotes", "config.yaml")
}

// DefaultLogPath returns the default log file path using XDG conventions.
func DefaultLogPath() string {
	return filepath.Join(xdg.StateHome, "quotes", "quotes.log")
}

func defaults() map[string]any {
	return map[string]any{
		"quote.endpoint": quote.DefaultEndpoint,

		"log.level":       "info",
		"log.file":        DefaultLogPath(),
		"log.max_size":    DefaultLogMaxSizeMB,
		"log.max_backups": DefaultLogMaxBackups,
		"log.max_age":     DefaultLogMaxAgeDays,

		"telemetry.endpoint":     os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		"telemetry.service_name": serviceName(),
	}
}

func serviceName() string {
	if name := os.Getenv("OTEL_SERVICE_NAME"); name != "" {
		return name
	}
	return "quotes"
}

// Load loads configuration with the following precedence (highest to lowest):
//  1. Environment variables (QUOTES_ prefix)
//  2. Config file at path, or DefaultPath() if path is empty
//  3. Default values
//
// A missing file is only an error when path was given explicitly.
func Load(path string) (*Config, error) {
	return LoadWithOverrides(path, nil)
}

// LoadWithOverrides is Load with one more layer on top: overrides maps
// dotted keys (e.g. "quote.endpoint") to values, typically from command-line
// flags. Validation runs once, after every layer is merged.
func LoadWithOverrides(path string, overrides map[string]any) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if err := loadFile(k, path, explicit); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("loading overrides: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps QUOTES_LOG_MAX_SIZE to log.max_size: only the first
// underscore separates the section from the key. Empty values are skipped
// so they don't blank out a default.
func envKey(name, value string) (string, any) {
	if value == "" {
		return "", nil
	}
	return strings.Replace(strings.ToLower(strings.TrimPrefix(name, EnvPrefix)), "_", ".", 1), value
}

func loadFile(k *koanf.Koanf, path string, required bool) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if required {
			return err
		}
		return nil
	}
	return k.Load(file.Provider(path), yaml.Parser())
}
