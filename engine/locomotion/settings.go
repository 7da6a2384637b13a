package locomotion

import (
	"errors"
	"fmt"
)

// ErrInvalidSettings is wrapped by every error Settings.Validate returns.
var ErrInvalidSettings = errors.New("locomotion: invalid settings")

// Settings holds locomotion tuning. Angles are in degrees, distances in meters, times in seconds.
type Settings struct {
	// MoveSpeed is the steering speed at full stick deflection.
	MoveSpeed float32 `yaml:"move_speed" toml:"move_speed"`
	// SmoothTurnRate is the smooth yaw rate at full stick deflection, degrees per second.
	SmoothTurnRate float32 `yaml:"smooth_turn_rate" toml:"smooth_turn_rate"`
	// SnapAngle is the yaw applied by one snap turn, degrees.
	SnapAngle float32 `yaml:"snap_angle" toml:"snap_angle"`
	// SnapThreshold is the stick deflection that fires a snap turn.
	SnapThreshold float32 `yaml:"snap_threshold" toml:"snap_threshold"`
	// SnapRearm is the deflection at or below which the snap gate re-arms. Zero requires a centered stick.
	SnapRearm float32 `yaml:"snap_rearm" toml:"snap_rearm"`
	// TeleportThreshold is the forward stick deflection that starts aiming.
	TeleportThreshold float32 `yaml:"teleport_threshold" toml:"teleport_threshold"`
	// TeleportRange is the length of the aiming ray.
	TeleportRange float32 `yaml:"teleport_range" toml:"teleport_range"`
	// PlayerHeight is added to a sampled ground height to place the viewpoint.
	PlayerHeight float32 `yaml:"player_height" toml:"player_height"`
	// GroundProbeHeight lifts the ground probe origin above the viewpoint so slopes are found.
	GroundProbeHeight float32 `yaml:"ground_probe_height" toml:"ground_probe_height"`
	// GroundProbeLength is the length of the downward ground probe.
	GroundProbeLength float32 `yaml:"ground_probe_length" toml:"ground_probe_length"`
	// GroundMiss is the height reported when the probe hits nothing.
	GroundMiss GroundMissPolicy `yaml:"ground_miss" toml:"ground_miss"`
	// Gravity is the downward acceleration applied when not climbing.
	Gravity float32 `yaml:"gravity" toml:"gravity"`
	// GravityEnabled turns vertical velocity integration on.
	GravityEnabled bool `yaml:"gravity_enabled" toml:"gravity_enabled"`
}

// DefaultSettings returns the stock locomotion tuning.
//
// Returns:
//   - Settings: the defaults
func DefaultSettings() Settings {
	return Settings{
		MoveSpeed:         3,
		SmoothTurnRate:    60,
		SnapAngle:         30,
		SnapThreshold:     0.75,
		SnapRearm:         0.75,
		TeleportThreshold: 0.75,
		TeleportRange:     30,
		PlayerHeight:      1.6,
		GroundProbeHeight: 1,
		GroundProbeLength: 100,
		GroundMiss:        GroundMissPassthrough,
		Gravity:           9.81,
		GravityEnabled:    true,
	}
}

// Validate reports every setting that is out of range.
//
// Returns:
//   - error: nil, or the joined errors each wrapping ErrInvalidSettings
func (s Settings) Validate() error {
	var errs []error
	positive := func(name string, v float32) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidSettings, name, v))
		}
	}
	unit := func(name string, v float32) {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%w: %s must be within [0, 1], got %v", ErrInvalidSettings, name, v))
		}
	}

	positive("move_speed", s.MoveSpeed)
	positive("snap_angle", s.SnapAngle)
	positive("teleport_range", s.TeleportRange)
	positive("ground_probe_length", s.GroundProbeLength)
	positive("teleport_threshold", s.TeleportThreshold)
	unit("snap_threshold", s.SnapThreshold)
	unit("snap_rearm", s.SnapRearm)
	unit("teleport_threshold", s.TeleportThreshold)
	if s.SmoothTurnRate < 0 {
		errs = append(errs, fmt.Errorf("%w: smooth_turn_rate must not be negative, got %v", ErrInvalidSettings, s.SmoothTurnRate))
	}
	if s.SnapRearm > s.SnapThreshold {
		errs = append(errs, fmt.Errorf("%w: snap_rearm %v exceeds snap_threshold %v", ErrInvalidSettings, s.SnapRearm, s.SnapThreshold))
	}
	if s.PlayerHeight < 0 || s.GroundProbeHeight < 0 || s.Gravity < 0 {
		errs = append(errs, fmt.Errorf("%w: player_height, ground_probe_height and gravity must not be negative", ErrInvalidSettings))
	}
	if s.GroundMiss != GroundMissPassthrough && s.GroundMiss != GroundMissZero {
		errs = append(errs, fmt.Errorf("%w: unknown ground_miss policy %d", ErrInvalidSettings, int(s.GroundMiss)))
	}
	return errors.Join(errs...)
}
