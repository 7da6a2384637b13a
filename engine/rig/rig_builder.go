package rig

import (
	"github.com/Carmen-Shannon/oxy-vr/engine/interaction"
	"github.com/Carmen-Shannon/oxy-vr/engine/locomotion"
	"github.com/Carmen-Shannon/oxy-vr/engine/scene"
	"go.uber.org/zap"
)

// RigBuilderOption is a functional option for configuring a Rig.
type RigBuilderOption func(*rig)

// WithLocomotionSettings sets the locomotion tuning. Callers validate beforehand.
//
// Parameters:
//   - s: the settings
//
// Returns:
//   - RigBuilderOption: option function to apply
func WithLocomotionSettings(s locomotion.Settings) RigBuilderOption {
	return func(r *rig) {
		r.env.Locomotion = s
	}
}

// WithInteractionSettings sets the hand tuning. Callers validate beforehand.
//
// Parameters:
//   - s: the settings
//
// Returns:
//   - RigBuilderOption: option function to apply
func WithInteractionSettings(s interaction.Settings) RigBuilderOption {
	return func(r *rig) {
		r.env.Interaction = s
	}
}

// WithCollider sets a body that is kept under the viewpoint on the horizontal plane.
//
// Parameters:
//   - b: the collider body
//
// Returns:
//   - RigBuilderOption: option function to apply
func WithCollider(b scene.Body) RigBuilderOption {
	return func(r *rig) {
		r.env.Collider = b
	}
}

// WithLogger sets the logger for edge and mode events. Defaults to a no-op logger.
//
// Parameters:
//   - logger: the logger
//
// Returns:
//   - RigBuilderOption: option function to apply
func WithLogger(logger *zap.Logger) RigBuilderOption {
	return func(r *rig) {
		if logger != nil {
			r.env.Logger = logger
		}
	}
}

// WithModes sets the starting locomotion and rotation modes.
//
// Parameters:
//   - m: the locomotion mode
//   - rm: the rotation mode
//
// Returns:
//   - RigBuilderOption: option function to apply
func WithModes(m locomotion.Mode, rm locomotion.RotationMode) RigBuilderOption {
	return func(r *rig) {
		r.state.Locomotion.Mode = m
		r.state.Locomotion.Rotation = rm
	}
}
