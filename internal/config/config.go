// Package config provides configuration management for the allocation
// service.
//
// Configuration sources, highest priority first:
//
//  1. Environment variables (prefix ICU_ALLOCATOR_, dots become underscores)
//  2. An optional YAML config file
//  3. Default values
//
// All values are validated on load.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/careops-incubation/icu-bed-allocator/pkg/solver"
)

const envPrefix = "ICU_ALLOCATOR"

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `mapstructure:"addr"`
}

// DatasetConfig holds the hospital record source settings.
type DatasetConfig struct {
	// Path is the location of the optimized-allocation CSV export.
	Path string `mapstructure:"path"`
}

// SolverConfig holds the allocation strategy settings.
type SolverConfig struct {
	// Strategy is "greedy" or "simplex".
	Strategy string `mapstructure:"strategy"`
}

// LoggingConfig holds the logger settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`

	// Development switches to console-friendly log output.
	Development bool `mapstructure:"development"`
}

// ScenarioConfig holds the scenario builder settings.
type ScenarioConfig struct {
	// PresetsPath optionally points at a YAML file of named tier splits.
	PresetsPath string `mapstructure:"presets"`
}

// Config is the root configuration of the service.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Dataset  DatasetConfig  `mapstructure:"dataset"`
	Solver   SolverConfig   `mapstructure:"solver"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Scenario ScenarioConfig `mapstructure:"scenario"`
}

// Load reads configuration from defaults, an optional YAML file, and the
// environment, then validates it.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("dataset.path", "hospital_optimized_allocation.csv")
	v.SetDefault("solver.strategy", "greedy")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.development", false)
	v.SetDefault("scenario.presets", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

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
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks for invalid configuration values.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if c.Dataset.Path == "" {
		return fmt.Errorf("dataset.path must not be empty")
	}
	if _, err := solver.ParseStrategy(c.Solver.Strategy); err != nil {
		return fmt.Errorf("solver.strategy: %w", err)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level %q is not a valid level: %w", c.Logging.Level, err)
	}
	return nil
}
