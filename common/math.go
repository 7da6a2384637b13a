package common

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	// WorldUp is the +Y axis. Yaw rotations are taken about it.
	WorldUp = mgl32.Vec3{0, 1, 0}
	// LocalForward is the forward axis of an unrotated node.
	LocalForward = mgl32.Vec3{0, 0, 1}
	// LocalRight is the right axis of an unrotated node.
	LocalRight = mgl32.Vec3{1, 0, 0}
)

// IdentityTransform returns a transform at the origin with no rotation.
//
// Returns:
//   - Transform: the identity transform
func IdentityTransform() Transform {
	return Transform{Rotation: mgl32.QuatIdent()}
}

// Mul composes t with a child transform expressed in t's space, returning the child in t's parent space.
//
// Parameters:
//   - child: the transform local to t
//
// Returns:
//   - Transform: the composed transform
func (t Transform) Mul(child Transform) Transform {
	return Transform{
		Position: t.Position.Add(t.Rotation.Rotate(child.Position)),
		Rotation: t.Rotation.Mul(child.Rotation).Normalize(),
	}
}

// Inverse returns the transform that undoes t.
//
// Returns:
//   - Transform: the inverse of t
func (t Transform) Inverse() Transform {
	inv := t.Rotation.Inverse()
	return Transform{
		Position: inv.Rotate(t.Position.Mul(-1)),
		Rotation: inv,
	}
}

// Apply maps a point from t's local space into its parent space.
//
// Parameters:
//   - p: the local point
//
// Returns:
//   - mgl32.Vec3: the transformed point
func (t Transform) Apply(p mgl32.Vec3) mgl32.Vec3 {
	return t.Position.Add(t.Rotation.Rotate(p))
}

// YawQuat returns a rotation of angle radians about the world up axis.
//
// Parameters:
//   - angle: the yaw in radians, positive turns forward toward +X
//
// Returns:
//   - mgl32.Quat: the rotation
func YawQuat(angle float32) mgl32.Quat {
	return mgl32.QuatRotate(angle, WorldUp)
}

// EulerQuat builds a rotation from Euler angles in radians, applied yaw first, then pitch, then roll.
func EulerQuat(pitch, yaw, roll float32) mgl32.Quat {
	return mgl32.QuatRotate(yaw, WorldUp).
		Mul(mgl32.QuatRotate(pitch, LocalRight)).
		Mul(mgl32.QuatRotate(roll, LocalForward)).
		Normalize()
}

// Yaw extracts the heading of q about the world up axis, in radians.
//
// Parameters:
//   - q: the rotation to inspect
//
// Returns:
//   - float32: the heading in (-pi, pi]
func Yaw(q mgl32.Quat) float32 {
	f := q.Rotate(LocalForward)
	return math32.Atan2(f.X(), f.Z())
}

// Flatten projects v onto the horizontal plane and normalizes it. A vertical or zero vector flattens to zero.
//
// Parameters:
//   - v: the vector to flatten
//
// Returns:
//   - mgl32.Vec3: the unit horizontal direction, or the zero vector
func Flatten(v mgl32.Vec3) mgl32.Vec3 {
	flat := mgl32.Vec3{v.X(), 0, v.Z()}
	l := flat.Len()
	if l < 1e-6 {
		return mgl32.Vec3{}
	}
	return flat.Mul(1 / l)
}

// ClampLength scales v down so its length does not exceed max.
func ClampLength(v mgl32.Vec3, max float32) mgl32.Vec3 {
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	return v.Mul(max / l)
}

// Sign returns -1, 0 or 1 following the sign of v.
func Sign(v float32) float32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// DeadZone snaps values whose magnitude is within zone to exactly zero.
//
// Parameters:
//   - v: the raw axis value
//   - zone: the dead zone half width
//
// Returns:
//   - float32: v, or 0 when |v| <= zone
func DeadZone(v, zone float32) float32 {
	if math32.Abs(v) <= zone {
		return 0
	}
	return v
}
