package camera

import (
	"github.com/Carmen-Shannon/oxy-vr/common"
	"github.com/go-gl/mathgl/mgl32"
)

// ViewpointBuilderOption is a functional option for configuring a Viewpoint.
type ViewpointBuilderOption func(*viewpoint)

// WithPosition sets the initial world position of the viewpoint.
//
// Parameters:
//   - x, y, z: the position
//
// Returns:
//   - ViewpointBuilderOption: option function to apply
func WithPosition(x, y, z float32) ViewpointBuilderOption {
	return func(v *viewpoint) {
		v.SetPosition(mgl32.Vec3{x, y, z})
	}
}

// WithYaw sets the initial heading of the viewpoint in radians.
//
// Parameters:
//   - angle: the heading, zero faces +Z
//
// Returns:
//   - ViewpointBuilderOption: option function to apply
func WithYaw(angle float32) ViewpointBuilderOption {
	return func(v *viewpoint) {
		v.SetRotation(common.YawQuat(angle))
	}
}

// WithRotation sets the initial orientation of the viewpoint.
//
// Parameters:
//   - q: the rotation
//
// Returns:
//   - ViewpointBuilderOption: option function to apply
func WithRotation(q mgl32.Quat) ViewpointBuilderOption {
	return func(v *viewpoint) {
		v.SetRotation(q)
	}
}

// WithRealWorldHeight sets the standing eye height. Non-positive values are ignored.
//
// Parameters:
//   - h: the height in meters
//
// Returns:
//   - ViewpointBuilderOption: option function to apply
func WithRealWorldHeight(h float32) ViewpointBuilderOption {
	return func(v *viewpoint) {
		if h > 0 {
			v.realWorldHeight = h
		}
	}
}
