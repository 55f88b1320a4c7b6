// Package config loads greatcircle settings from defaults, an optional
// greatcircle.yaml and GREATCIRCLE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/illmade-knight/great-circle/pkg/geo"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds the application's configuration.
type Config struct {
	LogLevel  string           `mapstructure:"log_level"`
	Formula   string           `mapstructure:"formula"`
	Precision int              `mapstructure:"precision"`
	Trace     bool             `mapstructure:"trace"`
	Waypoints []WaypointConfig `mapstructure:"waypoints"`
}

// WaypointConfig declares an extra catalog entry.
type WaypointConfig struct {
	Code      string `mapstructure:"code"`
	Name      string `mapstructure:"name"`
	Latitude  string `mapstructure:"latitude"`
	Longitude string `mapstructure:"longitude"`
}

// Load reads configuration. An empty path searches for greatcircle.yaml in
// the working directory and ./configs; a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("log_level", "info")
	v.SetDefault("formula", "legacy")
	v.SetDefault("precision", geo.DisplayPrecision)
	v.SetDefault("trace", false)

	// Config file (optional)
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("greatcircle")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	// Environment variables: GREATCIRCLE_LOG_LEVEL → log_level
	v.SetEnvPrefix("GREATCIRCLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values Load cannot type-check.
func (c *Config) Validate() error {
	if _, err := c.ParseLogLevel(); err != nil {
		return err
	}
	if _, err := geo.FormulaByName(c.Formula); err != nil {
		return err
	}
	if c.Precision < 0 {
		return fmt.Errorf("precision must not be negative, got %d", c.Precision)
	}
	for i, wp := range c.Waypoints {
		if strings.TrimSpace(wp.Code) == "" {
			return fmt.Errorf("waypoints[%d]: code is required", i)
		}
	}
	return nil
}

// ParseLogLevel maps LogLevel to a zerolog level.
func (c *Config) ParseLogLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// DistanceFormula returns the configured formula.
func (c *Config) DistanceFormula() geo.Formula {
	f, err := geo.FormulaByName(c.Formula)
	if err != nil {
		return geo.LegacyFormula
	}
	return f
}
