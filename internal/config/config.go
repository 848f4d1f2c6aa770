package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress  string `mapstructure:"SERVER_ADDRESS"`
	GinMode        string `mapstructure:"GIN_MODE"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`
	LogFormat      string `mapstructure:"LOG_FORMAT"`
	MaxBodyBytes   int64  `mapstructure:"MAX_BODY_BYTES"`
	MaxLineBytes   int    `mapstructure:"MAX_LINE_BYTES"`
	MetricsEnabled bool   `mapstructure:"METRICS_ENABLED"`
}

var defaults = map[string]any{
	"SERVER_ADDRESS":  ":8080",
	"GIN_MODE":        "release",
	"LOG_LEVEL":       "info",
	"LOG_FORMAT":      "json",
	"MAX_BODY_BYTES":  10 << 20,
	"MAX_LINE_BYTES":  1 << 20,
	"METRICS_ENABLED": true,
}

// LoadConfig reads app.env from path, then lets environment variables
// override it. A missing file leaves the defaults in place.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to decode config: %w", err)
	}

	if cfg.MaxBodyBytes <= 0 {
		return Config{}, fmt.Errorf("config: MAX_BODY_BYTES must be positive, got %d", cfg.MaxBodyBytes)
	}
	if cfg.MaxLineBytes <= 0 {
		return Config{}, fmt.Errorf("config: MAX_LINE_BYTES must be positive, got %d", cfg.MaxLineBytes)
	}

	return cfg, nil
}
