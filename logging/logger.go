// Package logging builds the zap logger handed to engines.
package logging

import (
	"fmt"
	"strings"

	"github.com/warp/tipout-engine/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a structured logger and returns it with a runtime-adjustable
// level handle. Format "console" (or "text") selects the development
// encoder; anything else logs JSON.
func New(cfg config.LoggingConfig) (*zap.Logger, zap.AtomicLevel, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, zap.AtomicLevel{}, err
	}

	base := buildConfig(cfg.Format)
	base.Level = level
	base.DisableStacktrace = true

	logger, err := base.Build()
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger.Named("tipout"), level, nil
}

// ParseLevel maps a level name to an atomic level. Empty means info.
func ParseLevel(s string) (zap.AtomicLevel, error) {
	if strings.TrimSpace(s) == "" {
		return zap.NewAtomicLevelAt(zapcore.InfoLevel), nil
	}
	var parsed zapcore.Level
	if err := parsed.Set(s); err != nil {
		return zap.AtomicLevel{}, fmt.Errorf("invalid level %q: %w", s, err)
	}
	return zap.NewAtomicLevelAt(parsed), nil
}

func buildConfig(format string) zap.Config {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "console", "text":
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return cfg
	default:
		cfg := zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		return cfg
	}
}
