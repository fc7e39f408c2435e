// Package config loads runtime settings from the environment and an
// optional config file. All keys have working defaults; only the
// text-generation API key is genuinely external, and even it is optional
// because base assessments run without it.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Shaolin23/adence-ai/internal/insights"
)

// Config holds every tunable the process reads at startup.
type Config struct {
	APIKey    string `mapstructure:"api_key"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	Insights InsightsConfig `mapstructure:"insights"`
}

// InsightsConfig tunes the augmentor's cache and batching behavior.
type InsightsConfig struct {
	CacheSize   int           `mapstructure:"cache_size"`
	CacheTTL    time.Duration `mapstructure:"cache_ttl"`
	BatchSize   int           `mapstructure:"batch_size"`
	BatchWindow time.Duration `mapstructure:"batch_window"`
	Tier        string        `mapstructure:"tier"`
}

// Load reads configuration from the environment (ADENCE_ prefix, nested keys
// joined with underscores) layered over an optional config file at path.
// Passing an empty path skips the file entirely.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := insights.DefaultOptions()
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("insights.cache_size", defaults.CacheSize)
	v.SetDefault("insights.cache_ttl", defaults.CacheTTL)
	v.SetDefault("insights.batch_size", defaults.BatchSize)
	v.SetDefault("insights.batch_window", defaults.BatchWindow)
	v.SetDefault("insights.tier", string(defaults.Tier))

	v.SetEnvPrefix("ADENCE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The Gemini SDK's conventional variable wins only when no
	// ADENCE_API_KEY is set.
	if err := v.BindEnv("api_key", "ADENCE_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("bind api key: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Insights.CacheSize <= 0 {
		return fmt.Errorf("insights.cache_size must be positive, got %d", c.Insights.CacheSize)
	}
	if c.Insights.BatchSize <= 0 {
		return fmt.Errorf("insights.batch_size must be positive, got %d", c.Insights.BatchSize)
	}
	if c.Insights.BatchWindow <= 0 {
		return fmt.Errorf("insights.batch_window must be positive, got %s", c.Insights.BatchWindow)
	}
	return nil
}
