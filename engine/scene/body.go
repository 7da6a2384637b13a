package scene

import (
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-vr/common"
	"github.com/go-gl/mathgl/mgl32"
)

type body struct {
	*node
	halfExtents mgl32.Vec3
	mass        float32
	pickable    atomic.Bool
	sleeping    atomic.Bool
}

// Body is a Node with a box-shaped collision volume and a minimal physics state.
// Bodies take part in ray picks, grip overlap tests and the ground, grabbable and climbable sets of a Scene.
// A sleeping body is excluded from simulation; holding a body puts it to sleep and releasing it wakes it.
type Body interface {
	Node

	// HalfExtents returns half the box size along each local axis.
	//
	// Returns:
	//   - mgl32.Vec3: the half extents
	HalfExtents() mgl32.Vec3

	// Bounds returns the world axis-aligned box enclosing the body at its current pose.
	//
	// Returns:
	//   - common.AABB: the world bounds
	Bounds() common.AABB

	// Mass returns the body's mass. Zero marks a static body.
	Mass() float32

	// Pickable returns whether rays may hit this body.
	Pickable() bool

	// SetPickable sets whether rays may hit this body.
	//
	// Parameters:
	//   - pickable: true to allow ray hits
	SetPickable(pickable bool)

	// Sleeping returns whether the body is excluded from simulation.
	Sleeping() bool

	// Sleep excludes the body from simulation.
	Sleep()

	// WakeUp returns the body to simulation.
	WakeUp()
}

var _ Body = &body{}

// NewBody creates a pickable, awake Body at the origin with unit size.
//
// Parameters:
//   - name: the body identifier
//   - options: functional options to configure the body
//
// Returns:
//   - Body: the created body
func NewBody(name string, options ...BodyBuilderOption) Body {
	b := &body{
		node:        NewNode(name).(*node),
		halfExtents: mgl32.Vec3{0.5, 0.5, 0.5},
		mass:        1,
	}
	b.pickable.Store(true)
	for _, opt := range options {
		opt(b)
	}
	return b
}

func (b *body) HalfExtents() mgl32.Vec3 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.halfExtents
}

func (b *body) Bounds() common.AABB {
	return common.BoundsOf(b.WorldTransform(), b.HalfExtents())
}

func (b *body) Mass() float32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mass
}

func (b *body) Pickable() bool {
	return b.pickable.Load()
}

func (b *body) SetPickable(pickable bool) {
	b.pickable.Store(pickable)
}

func (b *body) Sleeping() bool {
	return b.sleeping.Load()
}

func (b *body) Sleep() {
	b.sleeping.Store(true)
}

func (b *body) WakeUp() {
	b.sleeping.Store(false)
}
