// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"moverz/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Server contains HTTP server configuration
	Server ServerConfig `json:"server"`

	// Tariff contains tariff configuration
	Tariff TariffConfig `json:"tariff"`

	// Store contains lead-store configuration
	Store StoreConfig `json:"store"`

	// Routing contains routing-distance configuration
	Routing RoutingConfig `json:"routing"`

	// Geocoding contains geocoding configuration
	Geocoding GeocodingConfig `json:"geocoding"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`
}

// TariffConfig contains tariff-related settings
type TariffConfig struct {
	// Path is the tariff HCL file; empty means the pinned defaults
	Path string `json:"path,omitempty"`
}

// StoreConfig contains lead-store settings
type StoreConfig struct {
	// DatabasePath is the sqlite database file
	DatabasePath string `json:"database_path"`

	// MigrationsDir holds the goose SQL migrations
	MigrationsDir string `json:"migrations_dir"`
}

// RoutingConfig contains routing-distance settings
type RoutingConfig struct {
	// OSRMBaseURL is the OSRM routing endpoint
	OSRMBaseURL string `json:"osrm_base_url"`

	// CacheBackend selects the distance cache (memory, redis)
	CacheBackend string `json:"cache_backend"`

	// RedisAddr is the redis address when CacheBackend is redis
	RedisAddr string `json:"redis_addr,omitempty"`

	// CoordinatePrecision is the number of decimals kept in cache keys
	CoordinatePrecision int `json:"coordinate_precision"`
}

// GeocodingConfig contains geocoding settings
type GeocodingConfig struct {
	// BaseURL is the address-search endpoint
	BaseURL string `json:"base_url"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	dbPath := filepath.Join(homeDir, ".moverz", "leads.db")

	return &Config{
		Version: "1.0",
		Server: ServerConfig{
			Addr: ":8080",
		},
		Tariff: TariffConfig{},
		Store: StoreConfig{
			DatabasePath:  dbPath,
			MigrationsDir: "./migrations",
		},
		Routing: RoutingConfig{
			OSRMBaseURL:         "https://router.project-osrm.org",
			CacheBackend:        "memory",
			CoordinatePrecision: 3,
		},
		Geocoding: GeocodingConfig{
			BaseURL: "https://api-adresse.data.gouv.fr",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
