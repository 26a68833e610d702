package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config aggregates settings sourced from environment variables.
type Config struct {
	HTTP      HTTPConfig      `mapstructure:"http"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Debug     bool            `mapstructure:"debug"`
}

type HTTPConfig struct {
	Port int `mapstructure:"port"`
}

// DatabaseConfig is optional: an empty URL selects the in-memory stores.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Token   string `mapstructure:"token"`
}

// RateLimitConfig throttles the public lead forms when enabled. The API
// ships with no rate limiting by default.
type RateLimitConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Limit   int           `mapstructure:"limit"`
	Window  time.Duration `mapstructure:"window"`
}

// Load reads configuration from environment variables with defaults.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if err := bindEnv(v); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// MustLoad wraps Load and panics on failure.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.port", 8080)
	v.SetDefault("database.url", "")
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.token", "")
	v.SetDefault("ratelimit.enabled", false)
	v.SetDefault("ratelimit.limit", 10)
	v.SetDefault("ratelimit.window", time.Minute)
	v.SetDefault("debug", false)
}

func bindEnv(v *viper.Viper) error {
	bindings := map[string]string{
		"http.port":         "PORT",
		"database.url":      "DATABASE_URL",
		"metrics.enabled":   "METRICS_ENABLED",
		"metrics.token":     "METRICS_TOKEN",
		"ratelimit.enabled": "RATELIMIT_ENABLED",
		"ratelimit.limit":   "RATELIMIT_LIMIT",
		"ratelimit.window":  "RATELIMIT_WINDOW",
		"debug":             "DEBUG",
	}

	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return err
		}
	}
	return nil
}

func validate(cfg Config) error {
	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return fmt.Errorf("invalid http port: %d", cfg.HTTP.Port)
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.Limit <= 0 {
		return fmt.Errorf("invalid rate limit: %d", cfg.RateLimit.Limit)
	}
	if cfg.Metrics.Enabled && cfg.Metrics.Token == "" {
		return fmt.Errorf("metrics enabled but METRICS_TOKEN is empty")
	}
	return nil
}
