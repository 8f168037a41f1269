package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string          `mapstructure:"environment"`
	Server       ServerConfig    `mapstructure:"server"`
	Database     DatabaseConfig  `mapstructure:"database"`
	Cache        CacheConfig     `mapstructure:"cache"`
	Search       SearchConfig    `mapstructure:"search"`
	RateLimiting RateLimitConfig `mapstructure:"rate_limiting"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains catalog database settings
type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	Verbose bool   `mapstructure:"verbose"`
}

// CacheConfig contains search result cache settings
type CacheConfig struct {
	ResultTTL     time.Duration `mapstructure:"result_ttl"`
	MemoryMaxMB   int64         `mapstructure:"memory_max_mb"`
	RedisAddress  string        `mapstructure:"redis_address"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
}

// SearchConfig contains search engine and suggestion settings
type SearchConfig struct {
	Timeout         time.Duration `mapstructure:"timeout"`
	MaxPerPage      int           `mapstructure:"max_per_page"`
	DefaultPerPage  int           `mapstructure:"default_per_page"`
	PopularLimit    int           `mapstructure:"popular_limit"`
	PruneMaxAgeDays int           `mapstructure:"prune_max_age_days"`
	PruneInterval   time.Duration `mapstructure:"prune_interval"`
	SuggestionLimit int           `mapstructure:"suggestion_limit"`
}

// RateLimitConfig contains rate limiting settings
type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerSecond int  `mapstructure:"requests_per_second"`
	Burst             int  `mapstructure:"burst"`
}
