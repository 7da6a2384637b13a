package common

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// parallelEpsilon is the direction component below which a ray is treated as parallel to a slab.
const parallelEpsilon = 1e-8

// NewRay creates a ray with a normalized direction.
//
// Parameters:
//   - origin: the start point
//   - direction: the direction of travel, need not be unit length
//   - length: the maximum hit distance, <= 0 for unbounded
//
// Returns:
//   - Ray: the ray
func NewRay(origin, direction mgl32.Vec3, length float32) Ray {
	if direction.Len() > 0 {
		direction = direction.Normalize()
	}
	return Ray{Origin: origin, Direction: direction, Length: length}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectAABB tests the ray against b using the slab method.
// A ray starting inside the box hits at distance 0.
//
// Parameters:
//   - b: the box to test
//
// Returns:
//   - float32: the distance to the entry point
//   - bool: true if the box is hit within the ray's length
func (r Ray) IntersectAABB(b AABB) (float32, bool) {
	tMin := float32(0)
	tMax := math32.Inf(1)
	if r.Length > 0 {
		tMax = r.Length
	}

	for i := 0; i < 3; i++ {
		o, d := r.Origin[i], r.Direction[i]
		if math32.Abs(d) < parallelEpsilon {
			if o < b.Min[i] || o > b.Max[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / d
		t1 := (b.Min[i] - o) * inv
		t2 := (b.Max[i] - o) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math32.Max(tMin, t1)
		tMax = math32.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}

// Contains reports whether p lies inside or on b.
func (b AABB) Contains(p mgl32.Vec3) bool {
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() <= b.Max.Y() &&
		p.Z() >= b.Min.Z() && p.Z() <= b.Max.Z()
}

// IntersectsSphere reports whether s touches or overlaps b.
//
// Parameters:
//   - s: the sphere to test
//
// Returns:
//   - bool: true on overlap
func (b AABB) IntersectsSphere(s Sphere) bool {
	var distSq float32
	for i := 0; i < 3; i++ {
		c := mgl32.Clamp(s.Center[i], b.Min[i], b.Max[i])
		d := s.Center[i] - c
		distSq += d * d
	}
	return distSq <= s.Radius*s.Radius
}

// BoundsOf returns the world AABB enclosing a box with the given half extents posed by t.
//
// Parameters:
//   - t: the world pose of the box center
//   - halfExtents: half the box size along each local axis
//
// Returns:
//   - AABB: the enclosing axis-aligned box
func BoundsOf(t Transform, halfExtents mgl32.Vec3) AABB {
	m := t.Rotation.Normalize().Mat4().Mat3()
	var world mgl32.Vec3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			world[row] += math32.Abs(m[col*3+row]) * halfExtents[col]
		}
	}
	return AABB{
		Min: t.Position.Sub(world),
		Max: t.Position.Add(world),
	}
}
