// Package config loads the simulator configuration from YAML or TOML and watches it for edits.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Carmen-Shannon/oxy-vr/engine/interaction"
	"github.com/Carmen-Shannon/oxy-vr/engine/loader"
	"github.com/Carmen-Shannon/oxy-vr/engine/locomotion"
	"github.com/Carmen-Shannon/oxy-vr/engine/logging"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnsupportedFormat is returned for config files that are neither YAML nor TOML.
	ErrUnsupportedFormat = errors.New("config: unsupported format")
	// ErrInvalidConfig is wrapped by Validate errors outside the nested settings.
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Config is the whole simulator configuration.
type Config struct {
	Locomotion  locomotion.Settings  `yaml:"locomotion" toml:"locomotion"`
	Interaction interaction.Settings `yaml:"interaction" toml:"interaction"`
	Loader      LoaderConfig         `yaml:"loader" toml:"loader"`
	Logging     logging.Config       `yaml:"logging" toml:"logging"`
	Engine      EngineConfig         `yaml:"engine" toml:"engine"`
	Input       InputConfig          `yaml:"input" toml:"input"`
}

// LoaderConfig configures world loading.
type LoaderConfig struct {
	Workers int `yaml:"workers" toml:"workers"`
	// DefaultGround is the edge length of the ground plane added before any manifest. Zero disables it.
	DefaultGround float32      `yaml:"default_ground" toml:"default_ground"`
	Manifests     []string     `yaml:"manifests" toml:"manifests"`
	Rules         loader.Rules `yaml:"rules" toml:"rules"`
}

// EngineConfig configures the frame loop.
type EngineConfig struct {
	TickRate  int  `yaml:"tick_rate" toml:"tick_rate"`
	Profiling bool `yaml:"profiling" toml:"profiling"`
	// ProfileIntervalMs is how often frame stats are logged when Profiling is on.
	ProfileIntervalMs int `yaml:"profile_interval_ms" toml:"profile_interval_ms"`
	Width             int `yaml:"width" toml:"width"`
	Height            int `yaml:"height" toml:"height"`
}

// InputConfig configures the desktop controller emulation.
type InputConfig struct {
	DeadZone float32 `yaml:"dead_zone" toml:"dead_zone"`
	Keyboard bool    `yaml:"keyboard" toml:"keyboard"`
	// Joystick is the GLFW joystick slot read as a gamepad, -1 to disable.
	Joystick int `yaml:"joystick" toml:"joystick"`
}

// Default returns the configuration used when no file is given. Loaded files override it field by field.
func Default() *Config {
	return &Config{
		Locomotion:  locomotion.DefaultSettings(),
		Interaction: interaction.DefaultSettings(),
		Loader: LoaderConfig{
			Workers:       2,
			DefaultGround: 200,
			Rules:         loader.DefaultRules(),
		},
		Logging: logging.DefaultConfig(),
		Engine: EngineConfig{
			TickRate:          90,
			ProfileIntervalMs: 1000,
			Width:             1280,
			Height:            720,
		},
		Input: InputConfig{
			DeadZone: 0.15,
			Keyboard: true,
		},
	}
}

// Validate checks every section.
//
// Returns:
//   - error: nil if valid, otherwise the joined errors of every failing section
func (c *Config) Validate() error {
	errs := []error{
		c.Locomotion.Validate(),
		c.Interaction.Validate(),
		c.Logging.Validate(),
	}
	if c.Loader.Workers < 1 {
		errs = append(errs, fmt.Errorf("%w: loader.workers must be at least 1", ErrInvalidConfig))
	}
	if c.Loader.DefaultGround < 0 {
		errs = append(errs, fmt.Errorf("%w: loader.default_ground must not be negative", ErrInvalidConfig))
	}
	if c.Engine.TickRate < 1 {
		errs = append(errs, fmt.Errorf("%w: engine.tick_rate must be at least 1", ErrInvalidConfig))
	}
	if c.Engine.Width < 1 || c.Engine.Height < 1 {
		errs = append(errs, fmt.Errorf("%w: engine window size must be positive", ErrInvalidConfig))
	}
	if c.Input.DeadZone < 0 || c.Input.DeadZone >= 1 {
		errs = append(errs, fmt.Errorf("%w: input.dead_zone must be in [0, 1)", ErrInvalidConfig))
	}
	return errors.Join(errs...)
}

// Load reads the config at path over Default and validates it. The format follows the extension.
//
// Parameters:
//   - path: a .yaml, .yml or .toml file
//
// Returns:
//   - *Config: the loaded config
//   - error: ErrUnsupportedFormat, an I/O or decode error, or a validation error
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes data in the format named by ext over Default and validates the result.
// Unknown keys are rejected.
//
// Parameters:
//   - data: the encoded config
//   - ext: ".yaml", ".yml" or ".toml"
//
// Returns:
//   - *Config: the config
//   - error: ErrUnsupportedFormat, a decode error, or a validation error
func Parse(data []byte, ext string) (*Config, error) {
	cfg := Default()
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: decode yaml: %w", err)
		}
	case ".toml":
		if err := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(cfg); err != nil {
			return nil, fmt.Errorf("config: decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
