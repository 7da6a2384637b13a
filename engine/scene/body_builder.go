package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// BodyBuilderOption is a functional option for configuring a Body during construction.
type BodyBuilderOption func(*body)

// WithPosition sets the body's initial world position.
//
// Parameters:
//   - x, y, z: the position
//
// Returns:
//   - BodyBuilderOption: functional option to set the position
func WithPosition(x, y, z float32) BodyBuilderOption {
	return func(b *body) {
		b.local.Position = mgl32.Vec3{x, y, z}
	}
}

// WithRotation sets the body's initial world orientation.
//
// Parameters:
//   - q: the rotation
//
// Returns:
//   - BodyBuilderOption: functional option to set the rotation
func WithRotation(q mgl32.Quat) BodyBuilderOption {
	return func(b *body) {
		b.local.Rotation = q.Normalize()
	}
}

// WithSize sets the full box size of the body. Negative components are treated as positive.
//
// Parameters:
//   - x, y, z: the box size along each local axis
//
// Returns:
//   - BodyBuilderOption: functional option to set the size
func WithSize(x, y, z float32) BodyBuilderOption {
	return func(b *body) {
		b.halfExtents = mgl32.Vec3{mgl32.Abs(x) / 2, mgl32.Abs(y) / 2, mgl32.Abs(z) / 2}
	}
}

// WithMass sets the body's mass. A zero mass marks the body static.
//
// Parameters:
//   - mass: the mass
//
// Returns:
//   - BodyBuilderOption: functional option to set the mass
func WithMass(mass float32) BodyBuilderOption {
	return func(b *body) {
		b.mass = mass
	}
}

// WithPickable sets whether rays may hit the body. Bodies are pickable by default.
//
// Parameters:
//   - pickable: true to allow ray hits
//
// Returns:
//   - BodyBuilderOption: functional option to set the pickable flag
func WithPickable(pickable bool) BodyBuilderOption {
	return func(b *body) {
		b.pickable.Store(pickable)
	}
}

// WithSleeping creates the body already asleep.
//
// Parameters:
//   - sleeping: true to start asleep
//
// Returns:
//   - BodyBuilderOption: functional option to set the sleep state
func WithSleeping(sleeping bool) BodyBuilderOption {
	return func(b *body) {
		b.sleeping.Store(sleeping)
	}
}
