// Package logging builds the zap loggers used across the engine from a small config block.
package logging

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrInvalidConfig is wrapped by every error Validate returns.
var ErrInvalidConfig = errors.New("logging: invalid config")

// Config selects the level, encoding and sinks of the engine logger.
type Config struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string `yaml:"level" toml:"level"`
	// Format is "console" or "json".
	Format string `yaml:"format" toml:"format"`
	// Development enables colored levels, caller info and stack traces on warnings.
	Development bool `yaml:"development" toml:"development"`
	// OutputPaths are zap sink URLs or file paths. Empty means stderr.
	OutputPaths []string `yaml:"output_paths" toml:"output_paths"`
}

// DefaultConfig returns console logging at info level to stderr.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "console"}
}

// Validate checks the level and format names.
//
// Returns:
//   - error: nil if valid, otherwise an error wrapping ErrInvalidConfig
func (c Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch c.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
	}
	return nil
}

// New builds a logger from cfg.
//
// Parameters:
//   - cfg: the logging config
//
// Returns:
//   - *zap.Logger: the logger, callers should Sync it before exit
//   - error: if the config is invalid or a sink cannot be opened
func New(cfg Config) (*zap.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var zc zap.Config
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zc = zap.NewProductionConfig()
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		// frame-rate logs would be thinned out otherwise
		zc.Sampling = nil
	}

	level, _ := zapcore.ParseLevel(cfg.Level)
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = cfg.Format
	if len(cfg.OutputPaths) > 0 {
		zc.OutputPaths = cfg.OutputPaths
	}

	return zc.Build(zap.AddStacktrace(zapcore.ErrorLevel))
}

// Must is New that panics on error. Meant for tools and examples.
func Must(cfg Config) *zap.Logger {
	l, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return l
}
