package xr

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-vr/common"
	"github.com/Carmen-Shannon/oxy-vr/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandednessFromID(t *testing.T) {
	tests := map[string]Handedness{
		"oculus-touch-v3-left":  HandLeft,
		"oculus-touch-v3-right": HandRight,
		"Gamepad-RIGHT":         HandRight,
		"tracker-0":             HandNone,
		"":                      HandNone,
	}
	for id, want := range tests {
		assert.Equal(t, want, HandednessFromID(id), id)
	}
	assert.Equal(t, HandRight, HandLeft.Other())
	assert.Equal(t, "left", HandLeft.String())
}

func TestComponentEdges(t *testing.T) {
	c := NewComponent(ComponentA)

	c.Update(true, 1, mgl32.Vec2{})
	assert.True(t, c.PressEdge())
	assert.False(t, c.ReleaseEdge())

	// held: no further edges
	c.Update(true, 1, mgl32.Vec2{})
	assert.False(t, c.PressedChanged())
	assert.False(t, c.PressEdge())

	c.Update(false, 0, mgl32.Vec2{})
	assert.True(t, c.ReleaseEdge())
	assert.True(t, c.ValueChanged())
}

func TestComponentAxesChanged(t *testing.T) {
	c := NewComponent(ComponentThumbstick)

	c.Update(false, 0, mgl32.Vec2{0, -1})
	assert.True(t, c.AxesChanged())
	assert.Equal(t, mgl32.Vec2{0, -1}, c.Axes())

	c.Update(false, 0, mgl32.Vec2{0, -1})
	assert.False(t, c.AxesChanged())
}

func TestNewControllerStandardComponents(t *testing.T) {
	right := NewController("touch-right")
	left := NewController("touch-left", WithGrip(scene.NewNode("grip")))

	assert.Equal(t, HandRight, right.Handedness())
	assert.NotNil(t, right.Component(ComponentA))
	assert.Nil(t, right.Component(ComponentX))
	assert.Nil(t, right.Grip())
	assert.NotNil(t, right.Pointer())
	assert.Len(t, right.Components(), 5)

	assert.NotNil(t, left.Component(ComponentY))
	assert.NotNil(t, left.Grip())

	custom := NewController("pad", WithHandedness(HandLeft), WithComponents(ComponentThumbstick))
	assert.Equal(t, HandLeft, custom.Handedness())
	assert.Len(t, custom.Components(), 1)
	assert.Nil(t, custom.Component(ComponentTrigger))
}

func TestHubConnectAndRelease(t *testing.T) {
	h := NewHub()
	var connected, disconnected []string
	subC := h.OnConnected(func(c Controller) { connected = append(connected, c.ID()) })
	h.OnDisconnected(func(c Controller) { disconnected = append(disconnected, c.ID()) })

	left := NewController("a-left")
	reg := h.Connect(left)
	require.True(t, reg.Active())
	assert.Equal(t, left, h.Controller(HandLeft))
	assert.Nil(t, h.Controller(HandRight))

	// a second left controller displaces the first
	left2 := NewController("b-left")
	reg2 := h.Connect(left2)
	assert.False(t, reg.Active())
	assert.Equal(t, left2, h.Controller(HandLeft))
	assert.Equal(t, []string{"a-left", "b-left"}, connected)
	assert.Equal(t, []string{"a-left"}, disconnected)

	subC.Release()
	subC.Release()
	h.Connect(NewController("c-right"))
	assert.Len(t, connected, 2)
	assert.Len(t, h.Controllers(), 2)

	reg2.Release()
	reg2.Release()
	assert.Nil(t, h.Controller(HandLeft))
	assert.Equal(t, []string{"a-left", "b-left"}, disconnected)
	assert.NotEqual(t, reg.ID(), reg2.ID())
}

func TestApplyGamepad(t *testing.T) {
	left, right := NewEmulatedPair("pad", scene.NewNode("head"))

	s := RestingGamepadState()
	s.Axes[GamepadAxisLeftY] = -0.9
	s.Axes[GamepadAxisLeftX] = 0.05
	s.Axes[GamepadAxisRightTrigger] = 1
	s.Buttons[GamepadButtonLeftBumper] = true
	s.Buttons[GamepadButtonA] = true
	ApplyGamepad(s, left, right, 0.1)

	assert.Equal(t, mgl32.Vec2{0, -0.9}, left.Component(ComponentThumbstick).Axes())
	assert.True(t, left.Component(ComponentSqueeze).PressEdge())
	assert.False(t, left.Component(ComponentTrigger).Pressed())
	assert.True(t, right.Component(ComponentTrigger).PressEdge())
	assert.Equal(t, float32(1), right.Component(ComponentTrigger).Value())
	assert.True(t, right.Component(ComponentA).PressEdge())

	ApplyGamepad(RestingGamepadState(), left, right, 0.1)
	assert.True(t, left.Component(ComponentThumbstick).AxesChanged())
	assert.Equal(t, mgl32.Vec2{}, left.Component(ComponentThumbstick).Axes())
	assert.True(t, right.Component(ComponentA).ReleaseEdge())

	// nil controllers are skipped
	assert.NotPanics(t, func() { ApplyGamepad(s, nil, nil, 0) })
}

func TestKeyboardGamepadMerge(t *testing.T) {
	k := NewKeyboardState()
	k.Press(common.KeyW)
	k.Press(common.KeyE)
	k.Press(common.KeyRight)
	k.Press(common.KeyG)
	k.Press(common.KeyV)

	s := k.Gamepad()
	assert.Equal(t, float32(-1), s.Axes[GamepadAxisLeftY])
	assert.Equal(t, float32(1), s.Axes[GamepadAxisRightX])
	assert.Equal(t, float32(1), s.Axes[GamepadAxisLeftTrigger])
	assert.Equal(t, float32(-1), s.Axes[GamepadAxisRightTrigger])
	assert.True(t, s.Buttons[GamepadButtonRightBumper])

	k.Release(common.KeyW)
	assert.False(t, k.Held(common.KeyW))

	pad := RestingGamepadState()
	pad.Axes[GamepadAxisLeftX] = 0.4
	pad.Buttons[GamepadButtonB] = true
	merged := k.Gamepad().Merge(pad)
	assert.Equal(t, float32(0.4), merged.Axes[GamepadAxisLeftX])
	assert.Equal(t, float32(1), merged.Axes[GamepadAxisLeftTrigger])
	assert.True(t, merged.Buttons[GamepadButtonB])
	assert.True(t, merged.Buttons[GamepadButtonRightBumper])
}

func TestEmulatedPairFollowsParent(t *testing.T) {
	head := scene.NewNode("head")
	left, right := NewEmulatedPair("kb", head)

	assert.Equal(t, HandLeft, left.Handedness())
	assert.Equal(t, HandRight, right.Handedness())

	head.SetPosition(mgl32.Vec3{0, 1.6, 0})
	assertVec3(t, mgl32.Vec3{0.2, 1.2, 0.3}, right.Grip().Position(), 1e-5)
	assertVec3(t, mgl32.Vec3{-0.2, 1.2, 0.3}, left.Pointer().Position(), 1e-5)
}

func TestEmulatedAimTiltsPointersOnly(t *testing.T) {
	head := scene.NewNode("head")
	left, right := NewEmulatedPair("kb", head)
	bare := NewController("bare-left")
	aim := NewEmulatedAim()

	aim.Update(1, 0.5, left, nil, bare, right)
	assert.InDelta(t, mgl32.DegToRad(45), aim.Pitch, 1e-5)
	assertVec3(t, mgl32.Vec3{0, -0.70710677, 0.70710677}, right.Pointer().Forward(), 1e-5)
	assertVec3(t, mgl32.Vec3{0, -0.70710677, 0.70710677}, left.Pointer().Forward(), 1e-5)
	assertVec3(t, mgl32.Vec3{0.2, -0.4, 0.3}, right.Pointer().LocalTransform().Position, 1e-6)
	assertVec3(t, mgl32.Vec3{0, 0, 1}, right.Grip().Forward(), 1e-6)

	aim.Update(1, 10, right)
	assert.Equal(t, aim.MaxPitch, aim.Pitch)
	aim.Update(-1, 10, right)
	assert.Equal(t, aim.MinPitch, aim.Pitch)
	assert.Greater(t, right.Pointer().Forward().Y(), float32(0))
}

// assertVec3 compares vectors component by component with an absolute tolerance.
func assertVec3(t *testing.T, want, got mgl32.Vec3, delta float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], delta, "component %d: want %v got %v", i, want, got)
	}
}
