// Package interaction implements what the hands do: grabbing and releasing bodies and climbing surfaces.
package interaction

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSettings is wrapped by every error Settings.Validate returns.
var ErrInvalidSettings = errors.New("interaction: invalid settings")

// ClimbAnchor decides how the climbing reference point evolves while a hand holds a surface.
type ClimbAnchor int

const (
	// ClimbAnchorIncremental re-samples the reference after every move, so each frame only applies that frame's pull.
	ClimbAnchorIncremental ClimbAnchor = iota
	// ClimbAnchorFixed keeps the reference captured at grab time until release.
	ClimbAnchorFixed
)

func (a ClimbAnchor) String() string {
	switch a {
	case ClimbAnchorIncremental:
		return "incremental"
	case ClimbAnchorFixed:
		return "fixed"
	}
	return fmt.Sprintf("ClimbAnchor(%d)", int(a))
}

// MarshalText implements encoding.TextMarshaler.
func (a ClimbAnchor) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting "incremental" or "fixed".
func (a *ClimbAnchor) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "incremental":
		*a = ClimbAnchorIncremental
	case "fixed":
		*a = ClimbAnchorFixed
	default:
		return fmt.Errorf("interaction: unknown climb anchor %q", text)
	}
	return nil
}

// Settings holds the hand tuning.
type Settings struct {
	// GripRadius is the radius of the grab volume around the grip node.
	GripRadius float32 `yaml:"grip_radius" toml:"grip_radius"`
	// ClimbScale scales hand motion into viewpoint motion while climbing.
	ClimbScale float32 `yaml:"climb_scale" toml:"climb_scale"`
	// ClimbAnchor selects how the climbing reference is updated.
	ClimbAnchor ClimbAnchor `yaml:"climb_anchor" toml:"climb_anchor"`
}

// DefaultSettings returns the stock hand tuning.
func DefaultSettings() Settings {
	return Settings{
		GripRadius:  0.1,
		ClimbScale:  0.5,
		ClimbAnchor: ClimbAnchorIncremental,
	}
}

// Validate reports every setting that is out of range.
func (s Settings) Validate() error {
	var errs []error
	if s.GripRadius <= 0 {
		errs = append(errs, fmt.Errorf("%w: grip_radius must be positive, got %v", ErrInvalidSettings, s.GripRadius))
	}
	if s.ClimbScale <= 0 {
		errs = append(errs, fmt.Errorf("%w: climb_scale must be positive, got %v", ErrInvalidSettings, s.ClimbScale))
	}
	if s.ClimbAnchor != ClimbAnchorIncremental && s.ClimbAnchor != ClimbAnchorFixed {
		errs = append(errs, fmt.Errorf("%w: unknown climb_anchor %d", ErrInvalidSettings, int(s.ClimbAnchor)))
	}
	return errors.Join(errs...)
}
