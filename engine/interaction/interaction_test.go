package interaction

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-vr/common"
	"github.com/Carmen-Shannon/oxy-vr/engine/camera"
	"github.com/Carmen-Shannon/oxy-vr/engine/scene"
	"github.com/Carmen-Shannon/oxy-vr/engine/xr"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rigFixture struct {
	vp    camera.Viewpoint
	left  xr.Controller
	right xr.Controller
	sc    scene.Scene
}

func newFixture() rigFixture {
	vp := camera.NewViewpoint(camera.WithPosition(0, 1.6, 0))
	left, right := xr.NewEmulatedPair("test", vp)
	return rigFixture{vp: vp, left: left, right: right, sc: scene.NewScene("test")}
}

// moveHand places a controller's pointer and grip at a local offset from the viewpoint.
func moveHand(c xr.Controller, x, y, z float32) {
	t := common.IdentityTransform()
	t.Position = mgl32.Vec3{x, y, z}
	c.Pointer().SetLocalTransform(t)
	c.Grip().SetLocalTransform(t)
}

func TestGrabAndRelease(t *testing.T) {
	f := newFixture()
	crate := scene.NewBody("crate", scene.WithPosition(0.2, 1.2, 0.35), scene.WithSize(0.2, 0.2, 0.2), scene.WithSleeping(false))
	f.sc.AddGrabbable(crate)

	right := NewHand(xr.HandRight)
	require.Equal(t, GrabBody, Grab(&right, nil, f.right, f.sc, DefaultSettings()))
	assert.Equal(t, crate, right.Held)
	assert.Equal(t, PoseClosed, right.Pose)
	assert.True(t, crate.Sleeping())
	assert.Equal(t, f.right.Grip(), crate.Parent())

	// the body follows the grip
	moveHand(f.right, 0.2, -0.4, 0.5)
	assertVec3(t, mgl32.Vec3{0.2, 1.2, 0.55}, crate.Position(), 1e-5)

	require.True(t, Release(&right))
	assert.Nil(t, right.Held)
	assert.Nil(t, crate.Parent())
	assert.False(t, crate.Sleeping())
	assert.Equal(t, PoseOpen, right.Pose)
	assertVec3(t, mgl32.Vec3{0.2, 1.2, 0.55}, crate.Position(), 1e-5)

	assert.False(t, Release(&right))
}

func TestGrabWhileHoldingIsNoop(t *testing.T) {
	f := newFixture()
	a := scene.NewBody("a", scene.WithPosition(0.2, 1.2, 0.3), scene.WithSize(0.1, 0.1, 0.1))
	b := scene.NewBody("b", scene.WithPosition(0.25, 1.2, 0.3), scene.WithSize(0.1, 0.1, 0.1))
	f.sc.AddGrabbable(a)
	f.sc.AddGrabbable(b)

	right := NewHand(xr.HandRight)
	require.Equal(t, GrabBody, Grab(&right, nil, f.right, f.sc, DefaultSettings()))
	// registration order decides between overlapping bodies
	assert.Equal(t, a, right.Held)

	assert.Equal(t, GrabNothing, Grab(&right, nil, f.right, f.sc, DefaultSettings()))
	assert.Equal(t, a, right.Held)
	assert.Nil(t, b.Parent())
}

func TestGrabMissesDistantBodies(t *testing.T) {
	f := newFixture()
	f.sc.AddGrabbable(scene.NewBody("far", scene.WithPosition(3, 1, 3), scene.WithSize(0.2, 0.2, 0.2)))

	left := NewHand(xr.HandLeft)
	assert.Equal(t, GrabNothing, Grab(&left, nil, f.left, f.sc, DefaultSettings()))
	assert.Nil(t, left.Held)
	assert.Equal(t, PoseClosed, left.Pose)
}

func TestGrabWithoutGripOrController(t *testing.T) {
	f := newFixture()
	f.sc.AddGrabbable(scene.NewBody("crate", scene.WithPosition(0, 1.6, 0)))
	noGrip := xr.NewController("bare-right")

	h := NewHand(xr.HandRight)
	assert.Equal(t, GrabNothing, Grab(&h, nil, noGrip, f.sc, DefaultSettings()))
	assert.Equal(t, GrabNothing, Grab(&h, nil, nil, f.sc, DefaultSettings()))
	assert.Equal(t, GrabNothing, Grab(&h, nil, f.right, nil, DefaultSettings()))
}

func TestOtherHandStealsBody(t *testing.T) {
	f := newFixture()
	moveHand(f.left, 0, -0.4, 0.3)
	moveHand(f.right, 0, -0.4, 0.3)
	crate := scene.NewBody("crate", scene.WithPosition(0, 1.2, 0.3), scene.WithSize(0.2, 0.2, 0.2))
	f.sc.AddGrabbable(crate)

	left, right := NewHand(xr.HandLeft), NewHand(xr.HandRight)
	require.Equal(t, GrabBody, Grab(&left, &right, f.left, f.sc, DefaultSettings()))
	require.Equal(t, GrabBody, Grab(&right, &left, f.right, f.sc, DefaultSettings()))

	assert.Nil(t, left.Held)
	assert.Equal(t, crate, right.Held)
	assert.Equal(t, f.right.Grip(), crate.Parent())

	// the robbed hand releasing leaves the body with its new owner
	assert.False(t, Release(&left))
	assert.Equal(t, f.right.Grip(), crate.Parent())
	assert.True(t, crate.Sleeping())
}

func TestClimbIncremental(t *testing.T) {
	f := newFixture()
	wall := scene.NewBody("ladder", scene.WithPosition(0.2, 1.2, 0.4), scene.WithSize(1, 3, 0.1), scene.WithMass(0))
	f.sc.AddClimbable(wall)
	s := DefaultSettings()

	right := NewHand(xr.HandRight)
	require.Equal(t, GrabSurface, Grab(&right, nil, f.right, f.sc, s))
	assert.True(t, right.Climbing)
	assert.Nil(t, wall.Parent())
	assert.False(t, wall.Sleeping())

	// pull the hand down 0.4 in tracking space: the user rises by half of it
	moveHand(f.right, 0.2, -0.8, 0.3)
	move := Climb(&right, f.right, f.vp, s)
	assertVec3(t, mgl32.Vec3{0, 0.2, 0}, move, 1e-5)
	assert.InDelta(t, 1.8, f.vp.Position().Y(), 1e-5)

	// a still hand does not drift
	move = Climb(&right, f.right, f.vp, s)
	assertVec3(t, mgl32.Vec3{}, move, 1e-5)

	require.True(t, Release(&right))
	assert.False(t, right.Climbing)
	assert.Equal(t, PoseOpen, right.Pose)
	assert.Equal(t, mgl32.Vec3{}, Climb(&right, f.right, f.vp, s))
}

func TestClimbFixedAnchorConverges(t *testing.T) {
	f := newFixture()
	f.sc.AddClimbable(scene.NewBody("wall", scene.WithPosition(0.2, 1.2, 0.3), scene.WithSize(1, 3, 0.2)))
	s := DefaultSettings()
	s.ClimbAnchor = ClimbAnchorFixed

	right := NewHand(xr.HandRight)
	require.Equal(t, GrabSurface, Grab(&right, nil, f.right, f.sc, s))
	anchor := right.Reference

	moveHand(f.right, 0.2, -0.8, 0.3)
	for i := 0; i < 40; i++ {
		Climb(&right, f.right, f.vp, s)
	}

	assert.Equal(t, anchor, right.Reference)
	assert.InDelta(t, 2.0, f.vp.Position().Y(), 1e-4)
	assertVec3(t, anchor, f.right.Pointer().Position(), 1e-4)
}

func TestAnyClimbing(t *testing.T) {
	a, b := NewHand(xr.HandLeft), NewHand(xr.HandRight)
	assert.False(t, AnyClimbing(&a, &b, nil))
	b.Climbing = true
	assert.True(t, AnyClimbing(&a, &b))
}

func TestSettings(t *testing.T) {
	require.NoError(t, DefaultSettings().Validate())

	err := Settings{GripRadius: 0, ClimbScale: -1, ClimbAnchor: 7}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSettings))

	var a ClimbAnchor
	require.NoError(t, a.UnmarshalText([]byte("fixed")))
	assert.Equal(t, ClimbAnchorFixed, a)
	assert.Error(t, a.UnmarshalText([]byte("sticky")))
	assert.Equal(t, "incremental", ClimbAnchorIncremental.String())
}

// assertVec3 compares vectors component by component with an absolute tolerance.
func assertVec3(t *testing.T, want, got mgl32.Vec3, delta float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], delta, "component %d: want %v got %v", i, want, got)
	}
}
