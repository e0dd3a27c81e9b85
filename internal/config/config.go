// Package config loads the application configuration from a TOML file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the top-level application configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logging LoggingConfig `toml:"logging"`
	VATSIM  VATSIMConfig  `toml:"vatsim"`
	Weather WeatherConfig `toml:"weather"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Host               string   `toml:"host"`
	Port               int      `toml:"port"`
	CORSAllowedOrigins []string `toml:"cors_allowed_origins"`
	StaticFilesDir     string   `toml:"static_files_dir"`
	ReadTimeoutSecs    int      `toml:"read_timeout_secs"`
	WriteTimeoutSecs   int      `toml:"write_timeout_secs"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // json, console
}

// VATSIMConfig configures the VATSIM data sources.
type VATSIMConfig struct {
	DatafeedURL           string `toml:"datafeed_url"`
	StaticDataURL         string `toml:"static_data_url"`
	BoundariesURL         string `toml:"boundaries_url"`
	RequestTimeoutSeconds int    `toml:"request_timeout_seconds"`
	DatafeedCacheSeconds  int    `toml:"datafeed_cache_seconds"`
}

// WeatherConfig configures the weather API client and cache.
type WeatherConfig struct {
	APIBaseURL            string `toml:"api_base_url"`
	RequestTimeoutSeconds int    `toml:"request_timeout_seconds"`
	CacheExpiryMinutes    int    `toml:"cache_expiry_minutes"`
	CacheSize             int    `toml:"cache_size"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:             "0.0.0.0",
			Port:             8080,
			StaticFilesDir:   "web",
			ReadTimeoutSecs:  15,
			WriteTimeoutSecs: 15,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		VATSIM: VATSIMConfig{
			DatafeedURL:           "https://data.vatsim.net/v3/vatsim-data.json",
			StaticDataURL:         "https://raw.githubusercontent.com/vatsimnetwork/vatspy-data-project/master/VATSpy.dat",
			BoundariesURL:         "https://raw.githubusercontent.com/vatsimnetwork/vatspy-data-project/master/Boundaries.geojson",
			RequestTimeoutSeconds: 30,
			DatafeedCacheSeconds:  15,
		},
		Weather: WeatherConfig{
			APIBaseURL:            "https://aviationweather.gov/api/data",
			RequestTimeoutSeconds: 10,
			CacheExpiryMinutes:    10,
			CacheSize:             256,
		},
	}
}

// LoadConfig loads the configuration from the given path, applying defaults
// for any omitted value. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.VATSIM.RequestTimeoutSeconds <= 0 {
		return fmt.Errorf("vatsim request timeout must be positive")
	}
	if c.Weather.CacheSize <= 0 {
		return fmt.Errorf("weather cache size must be positive")
	}
	return nil
}
