// Package config provides engine and logging configuration.
//
// Configuration can be loaded from:
//  1. YAML file (tipout.yaml)
//  2. Environment variables (fallback)
//
// Example usage:
//
//	cfg := config.LoadOrEnv()
//	logger, _, err := logging.New(cfg.Logging)
//	engine := generic.New(cfg.EngineOptions(logger)...)
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/warp/tipout-engine/generic"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the file LoadOrEnv reads.
const DefaultPath = "tipout.yaml"

// Config represents the entire configuration
type Config struct {
	Engine  EngineConfig  `yaml:"engine"`
	Logging LoggingConfig `yaml:"logging"`
}

// EngineConfig holds allocation settings
type EngineConfig struct {
	// Rounding is the payout granularity; 0 disables rounding.
	Rounding   float64 `yaml:"rounding"`
	IDMatching string  `yaml:"id_matching"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			Rounding:   0.25,
			IDMatching: string(generic.MatchExact),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads and parses the config file. Keys missing from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML after expanding environment variables (e.g. ${ROUNDING}).
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads configuration from environment variables only
func LoadFromEnv() *Config {
	def := Default()
	return &Config{
		Engine: EngineConfig{
			Rounding:   getEnvFloat("TIPOUT_ROUNDING", def.Engine.Rounding),
			IDMatching: getEnv("TIPOUT_ID_MATCHING", def.Engine.IDMatching),
		},
		Logging: LoggingConfig{
			Level:  getEnv("TIPOUT_LOG_LEVEL", def.Logging.Level),
			Format: getEnv("TIPOUT_LOG_FORMAT", def.Logging.Format),
		},
	}
}

// LoadOrEnv tries to load from tipout.yaml, falls back to environment variables
func LoadOrEnv() *Config {
	return LoadOrEnvWithPath(DefaultPath)
}

// LoadOrEnvWithPath tries to load from path, falls back to environment variables
func LoadOrEnvWithPath(path string) *Config {
	if cfg, err := Load(path); err == nil {
		return cfg
	}
	return LoadFromEnv()
}

// Validate rejects settings the engine cannot use.
func (c *Config) Validate() error {
	if c.Engine.Rounding < 0 {
		return fmt.Errorf("engine.rounding must not be negative, got %v", c.Engine.Rounding)
	}
	return nil
}

// EngineOptions converts the engine settings into engine options.
func (c *Config) EngineOptions(logger *zap.Logger) []generic.Option {
	return []generic.Option{
		generic.WithGranularity(c.Engine.Rounding),
		generic.WithIDMatching(generic.ParseIDMatching(c.Engine.IDMatching)),
		generic.WithLogger(logger),
	}
}

// getEnv retrieves an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// getEnvFloat retrieves a float environment variable with a fallback default
func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil && f >= 0 {
			return f
		}
	}
	return fallback
}
