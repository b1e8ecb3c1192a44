package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// CacheType identifies the cache backend used for the steam proxy.
type CacheType string

const (
	CacheTypeMemory CacheType = "memory"
	CacheTypeRedis  CacheType = "redis"
)

// Config holds the configuration for the Cother server and its dependencies.
type Config struct {
	// Listen is the address the Cother server will listen on.
	Listen string `yaml:"listen" mapstructure:"listen"`
	// LogLevel is the log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
	// Database holds the database configuration.
	Database *DatabaseConfig `yaml:"database" mapstructure:"database"`
	// Auth holds the authentication configuration.
	Auth *AuthConfig `yaml:"auth" mapstructure:"auth"`
	// Cache holds the cache configuration for the steam proxy.
	Cache *CacheConfig `yaml:"cache" mapstructure:"cache"`
	// Steam holds the configuration for the Steam storefront proxy.
	Steam *SteamConfig `yaml:"steam" mapstructure:"steam"`
	// Gravatar holds the configuration for default profile pictures.
	Gravatar *GravatarConfig `yaml:"gravatar" mapstructure:"gravatar"`
}

// DatabaseConfig holds the database configuration.
type DatabaseConfig struct {
	// Path is the path to the sqlite database file.
	Path string `yaml:"path" mapstructure:"path"`
}

// AuthConfig holds the authentication configuration for the Cother server.
type AuthConfig struct {
	// Secret is the signing secret for session tokens.
	Secret string `yaml:"secret" mapstructure:"secret"`
	// TokenMaxAge is the validity of a session token in seconds.
	TokenMaxAge int `yaml:"token_max_age" mapstructure:"token_max_age"`
	// CookieName is the name of the session cookie set on login.
	CookieName string `yaml:"cookie_name" mapstructure:"cookie_name"`
	// CookieDomain is the domain of the session cookie set on login.
	CookieDomain string `yaml:"cookie_domain" mapstructure:"cookie_domain"`
}

// CacheConfig holds the cache configuration.
type CacheConfig struct {
	// Type is the cache backend, either "memory" or "redis".
	Type CacheType `yaml:"type" mapstructure:"type"`
	// RedisURL is the address of the redis server when the redis backend is used.
	RedisURL string `yaml:"redis_url" mapstructure:"redis_url"`
	// TTL is the cache entry lifetime in seconds.
	TTL int `yaml:"ttl" mapstructure:"ttl"`
}

// SteamConfig holds the configuration for the Steam storefront proxy.
type SteamConfig struct {
	// URL is the base URL of the Steam storefront API.
	URL string `yaml:"url" mapstructure:"url"`
}

// GravatarConfig holds the configuration for default profile pictures.
type GravatarConfig struct {
	// Enabled indicates whether Gravatar default avatars are enabled.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// DefaultImage is the fallback image when no Gravatar is found.
	// Valid values: "404", "mp", "identicon", "monsterid", "wavatar", "retro", "robohash", "blank"
	DefaultImage string `yaml:"default_image" mapstructure:"default_image"`
	// Rating is the maximum rating for Gravatar images.
	Rating string `yaml:"rating" mapstructure:"rating"`
	// Size is the size of the Gravatar image in pixels (1-2048).
	Size int `yaml:"size" mapstructure:"size"`
}

// Load reads the configuration from the specified path and returns a Config struct.
// If path is empty, it will use default search paths for config files.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigType("yaml")
	v.SetEnvPrefix("COTHER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.cother")
		v.AddConfigPath("/etc/cother")
	}

	if err := v.ReadInConfig(); err != nil {
		// If no config file is found, use defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		log.Debug("Using config file", "file", v.ConfigFileUsed())
		log.Debug("Environment variables with COTHER_ prefix will override config file values")
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

// setDefaults sets default values for the configuration.
func setDefaults(v *viper.Viper) {
	v.SetDefault("listen", "0.0.0.0:8080")
	v.SetDefault("log_level", "info")

	v.SetDefault("database.path", "./data/cother.db")

	// Auth defaults
	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.token_max_age", 86400) // 24 hours
	v.SetDefault("auth.cookie_name", "COTHER-AUTH")
	v.SetDefault("auth.cookie_domain", "")

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.redis_url", "localhost:6379")
	v.SetDefault("cache.ttl", 300)

	// Steam defaults
	v.SetDefault("steam.url", "https://store.steampowered.com")

	// Gravatar defaults
	v.SetDefault("gravatar.enabled", false)
	v.SetDefault("gravatar.default_image", "robohash")
	v.SetDefault("gravatar.rating", "g")
	v.SetDefault("gravatar.size", 80)
}

// validateConfig validates the configuration.
func validateConfig(c *Config) error {
	if c == nil {
		return fmt.Errorf("missing cother config")
	}

	if c.Auth == nil {
		return fmt.Errorf("missing auth config")
	}
	if c.Auth.Secret == "" {
		return fmt.Errorf("auth secret is required")
	}
	if c.Auth.TokenMaxAge <= 0 {
		return fmt.Errorf("auth token max age must be positive")
	}

	if c.Database == nil || c.Database.Path == "" {
		return fmt.Errorf("database path is required")
	}

	if c.Cache != nil && c.Cache.Type == CacheTypeRedis && c.Cache.RedisURL == "" {
		return fmt.Errorf("redis URL is required when the redis cache is enabled")
	}

	if c.Steam == nil || c.Steam.URL == "" {
		return fmt.Errorf("steam URL is required")
	}

	return nil
}
