// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import "github.com/go-gl/mathgl/mgl32"

// Transform is a rigid pose: a translation and an orientation. Scale is not carried, bodies express their size through extents instead.
type Transform struct {
	// Position is the translation component.
	Position mgl32.Vec3
	// Rotation is the orientation component. A zero quaternion is not a valid rotation, use IdentityTransform for defaults.
	Rotation mgl32.Quat
}

// Ray is a half-line segment used for picking and ground probes.
type Ray struct {
	// Origin is where the ray starts.
	Origin mgl32.Vec3
	// Direction is the unit direction of travel.
	Direction mgl32.Vec3
	// Length caps the distance of accepted hits. A value <= 0 means unbounded.
	Length float32
}

// AABB is an axis-aligned bounding box in world space.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Sphere is a world space sphere, used as the grip volume of a hand.
type Sphere struct {
	Center mgl32.Vec3
	Radius float32
}
