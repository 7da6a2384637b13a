package camera

import (
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-vr/common"
	"github.com/Carmen-Shannon/oxy-vr/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// viewpointCount is an atomic counter used to generate unique node names for each viewpoint instance.
var viewpointCount atomic.Uint64

// DefaultRealWorldHeight is the standing eye height assumed when none is configured.
const DefaultRealWorldHeight float32 = 1.6

type viewpoint struct {
	scene.Node
	mu *sync.Mutex

	realWorldHeight float32
}

// Viewpoint is the user's head in the world: a scene Node whose pose locomotion drives.
// Controllers hang off it so they travel with the user. The real world height is the
// standing eye height added on top of a teleport target.
type Viewpoint interface {
	scene.Node

	// RealWorldHeight returns the standing eye height above the floor.
	//
	// Returns:
	//   - float32: the height in meters
	RealWorldHeight() float32

	// SetRealWorldHeight sets the standing eye height above the floor.
	//
	// Parameters:
	//   - h: the height in meters
	SetRealWorldHeight(h float32)

	// Yaw returns the heading about world up in radians. Zero faces +Z.
	//
	// Returns:
	//   - float32: the heading
	Yaw() float32

	// Turn rotates the viewpoint about world up by angle radians, leaving pitch and roll intact.
	//
	// Parameters:
	//   - angle: the yaw delta, positive turns toward +X
	Turn(angle float32)

	// HorizontalForward returns the view direction projected onto the ground plane and normalized.
	//
	// Returns:
	//   - mgl32.Vec3: the flattened forward, or zero when looking straight up or down
	HorizontalForward() mgl32.Vec3

	// HorizontalRight returns the right axis projected onto the ground plane and normalized.
	//
	// Returns:
	//   - mgl32.Vec3: the flattened right axis
	HorizontalRight() mgl32.Vec3
}

var _ Viewpoint = &viewpoint{}

// NewViewpoint creates a new Viewpoint at the origin facing +Z.
//
// Parameters:
//   - options: functional options to configure the viewpoint
//
// Returns:
//   - Viewpoint: the created viewpoint
func NewViewpoint(options ...ViewpointBuilderOption) Viewpoint {
	v := &viewpoint{
		Node:            scene.NewNode("viewpoint_" + strconv.FormatUint(viewpointCount.Add(1), 10)),
		mu:              &sync.Mutex{},
		realWorldHeight: DefaultRealWorldHeight,
	}
	for _, opt := range options {
		opt(v)
	}
	return v
}

func (v *viewpoint) RealWorldHeight() float32 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.realWorldHeight
}

func (v *viewpoint) SetRealWorldHeight(h float32) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.realWorldHeight = h
}

func (v *viewpoint) Yaw() float32 {
	return common.Yaw(v.Rotation())
}

func (v *viewpoint) Turn(angle float32) {
	v.SetRotation(common.YawQuat(angle).Mul(v.Rotation()))
}

func (v *viewpoint) HorizontalForward() mgl32.Vec3 {
	return common.Flatten(v.Forward())
}

func (v *viewpoint) HorizontalRight() mgl32.Vec3 {
	return common.Flatten(v.Right())
}
