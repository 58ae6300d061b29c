package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	Features  FeaturesConfig  `mapstructure:"features"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type CatalogConfig struct {
	// Path to a YAML catalog file. Empty selects the built-in seed catalog.
	Path string `mapstructure:"path"`
}

type AuthConfig struct {
	Provider       string        `mapstructure:"provider"`
	SimulatedDelay time.Duration `mapstructure:"simulated_delay"`
	FixedCode      string        `mapstructure:"fixed_code"`
	ChallengeTTL   time.Duration `mapstructure:"challenge_ttl"`
}

type AnalyticsConfig struct {
	WebhookURL string        `mapstructure:"webhook_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type FeaturesConfig struct {
	Auth   bool `mapstructure:"auth"`
	Search bool `mapstructure:"search"`
}

// LoadConfig loads configuration from config.yaml and environment variables.
// A missing config file is not an error: the storefront has no required
// external state and must be able to start on defaults alone.
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.gridwear/")
	v.AddConfigPath("/etc/gridwear/")

	// Enable environment variable override with GRIDWEAR_ prefix
	v.SetEnvPrefix("GRIDWEAR")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("catalog.path", "")
	v.SetDefault("auth.provider", "simulated")
	v.SetDefault("auth.simulated_delay", 1500*time.Millisecond)
	v.SetDefault("auth.fixed_code", "")
	v.SetDefault("auth.challenge_ttl", 10*time.Minute)
	v.SetDefault("analytics.webhook_url", "")
	v.SetDefault("analytics.timeout", 5*time.Second)
	v.SetDefault("features.auth", true)
	v.SetDefault("features.search", true)
}
