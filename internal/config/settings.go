package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/handiism/spoolid/internal/display"
)

// DefaultReadmeURL is the raw README of the Bambu-Lab-RFID-Library.
const DefaultReadmeURL = "https://raw.githubusercontent.com/queengooborg/Bambu-Lab-RFID-Library/main/README.md"

// EnvPrefix prefixes environment overrides, e.g. SPOOLID_SERIAL_PORT.
const EnvPrefix = "SPOOLID"

// Settings holds all configuration options.
type Settings struct {
	// Generator settings
	ReadmeURL            string   `mapstructure:"readme_url"`
	ExtraSources         []string `mapstructure:"extra_sources"`
	OutputDir            string   `mapstructure:"output_dir"`
	ExportFormats        []string `mapstructure:"export_formats"`
	MaxConcurrentFetches int      `mapstructure:"max_concurrent_fetches"`
	FetchTimeout         float64  `mapstructure:"fetch_timeout"`
	FetchMaxRetries      int      `mapstructure:"fetch_max_retries"`
	FetchRetryCooldown   float64  `mapstructure:"fetch_retry_cooldown"`
	FetchRetryExponent   float64  `mapstructure:"fetch_retry_exponent"`

	// Catalog settings
	GeneratedPath string `mapstructure:"generated_path"` // empty: embedded snapshot
	FallbackLabel string `mapstructure:"fallback_label"`

	// Reader settings
	SerialPort string `mapstructure:"serial_port"`
	BaudRate   int    `mapstructure:"baud_rate"`

	// Preview settings
	PreviewScale int `mapstructure:"preview_scale"`

	// Logging
	LogLevel string `mapstructure:"log_level"` // debug, info, warn, error
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		ReadmeURL:            DefaultReadmeURL,
		OutputDir:            "generated",
		ExportFormats:        []string{"json", "snippet"},
		MaxConcurrentFetches: 4,
		FetchTimeout:         30,
		FetchMaxRetries:      3,
		FetchRetryCooldown:   0.5,
		FetchRetryExponent:   2.0,

		FallbackLabel: display.DefaultFallback,

		BaudRate: 115200,

		PreviewScale: 4,

		LogLevel: "info",
	}
}

// FetchTimeoutDuration returns FetchTimeout as a time.Duration.
func (s *Settings) FetchTimeoutDuration() time.Duration {
	return time.Duration(s.FetchTimeout * float64(time.Second))
}

// Load reads settings from a config file, then applies SPOOLID_* environment
// overrides.
//
// The file type follows the extension (json, yaml, toml). With an empty path,
// "spoolid.*" is searched in the working directory and in
// $HOME/.config/spoolid, and finding none is not an error: defaults are used.
// An explicit path that does not exist is an error.
func Load(path string) (*Settings, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("spoolid")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "spoolid"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return settings, nil
}

// Save writes settings to a config file. The format follows the extension.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	v := viper.New()
	for key, value := range s.values() {
		v.Set(key, value)
	}
	return v.WriteConfigAs(path)
}

// newViper returns a viper instance carrying the defaults and env overrides.
func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range DefaultSettings().values() {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// values flattens settings into config keys.
func (s *Settings) values() map[string]any {
	return map[string]any{
		"readme_url":             s.ReadmeURL,
		"extra_sources":          s.ExtraSources,
		"output_dir":             s.OutputDir,
		"export_formats":         s.ExportFormats,
		"max_concurrent_fetches": s.MaxConcurrentFetches,
		"fetch_timeout":          s.FetchTimeout,
		"fetch_max_retries":      s.FetchMaxRetries,
		"fetch_retry_cooldown":   s.FetchRetryCooldown,
		"fetch_retry_exponent":   s.FetchRetryExponent,
		"generated_path":         s.GeneratedPath,
		"fallback_label":         s.FallbackLabel,
		"serial_port":            s.SerialPort,
		"baud_rate":              s.BaudRate,
		"preview_scale":          s.PreviewScale,
		"log_level":              s.LogLevel,
	}
}
