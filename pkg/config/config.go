package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// Set default values
		setDefaults()

		// Set up environment variable reading for overrides
		viper.SetEnvPrefix("CATALOG")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		// Load config from fixed location (cleaned for safety)
		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		// Try to read the config file
		if err := viper.ReadInConfig(); err != nil {
			// If the config file doesn't exist, just use defaults and env vars
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		// Validate the configuration
		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// Get returns a config value by key using Viper directly
func Get(key string) any {
	return viper.Get(key)
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetString("database.path") == "" {
		// Catalog database is required for the gateway, but the server can still
		// start and serve cached results, so only warn here.
		fmt.Println("Warning: No database path configured")
	}

	// Auto-correct out-of-range search settings
	if viper.GetInt("search.max_per_page") <= 0 {
		viper.Set("search.max_per_page", 50)
	}
	if viper.GetInt("search.default_per_page") <= 0 {
		viper.Set("search.default_per_page", 12)
	}
	if viper.GetInt("search.popular_limit") <= 0 {
		viper.Set("search.popular_limit", 20)
	}
	if viper.GetDuration("cache.result_ttl") <= 0 {
		viper.Set("cache.result_ttl", 300*time.Second)
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Search.MaxPerPage <= 0 {
		c.Search.MaxPerPage = 50
	}
	if c.Search.DefaultPerPage <= 0 {
		c.Search.DefaultPerPage = 12
	}
	if c.Cache.ResultTTL <= 0 {
		c.Cache.ResultTTL = 300 * time.Second
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Environment defaults
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.path", "./data/catalog.db")
	viper.SetDefault("database.verbose", false)

	// Cache defaults
	viper.SetDefault("cache.result_ttl", 300*time.Second)
	viper.SetDefault("cache.memory_max_mb", 64)
	viper.SetDefault("cache.redis_address", "")
	viper.SetDefault("cache.redis_password", "")
	viper.SetDefault("cache.redis_db", 0)

	// Search defaults
	viper.SetDefault("search.timeout", 5*time.Second)
	viper.SetDefault("search.max_per_page", 50)
	viper.SetDefault("search.default_per_page", 12)
	viper.SetDefault("search.popular_limit", 20)
	viper.SetDefault("search.prune_max_age_days", 30)
	viper.SetDefault("search.prune_interval", 6*time.Hour)
	viper.SetDefault("search.suggestion_limit", 10)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.requests_per_second", 20)
	viper.SetDefault("rate_limiting.burst", 40)
}
