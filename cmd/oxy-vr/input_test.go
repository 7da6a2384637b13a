package main

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-vr/common"
	"github.com/Carmen-Shannon/oxy-vr/engine/camera"
	"github.com/Carmen-Shannon/oxy-vr/engine/locomotion"
	"github.com/Carmen-Shannon/oxy-vr/engine/rig"
	"github.com/Carmen-Shannon/oxy-vr/engine/scene"
	"github.com/Carmen-Shannon/oxy-vr/engine/xr"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePad struct {
	state   xr.GamepadState
	present bool
}

func (f *fakePad) Gamepad(int) (xr.GamepadState, bool) {
	return f.state, f.present
}

func newInput(keyboard bool) (*desktopInput, xr.Hub) {
	hub := xr.NewHub()
	left, right := xr.NewEmulatedPair("desk", camera.NewViewpoint())
	return newDesktopInput(hub, left, right, keyboard, 0, 0.1, zap.NewNop()), hub
}

func TestJoystickHotPlugWithoutKeyboard(t *testing.T) {
	in, hub := newInput(false)

	in.onJoystick(0, true)
	assert.True(t, in.connected())
	assert.Len(t, hub.Controllers(), 2)

	in.onJoystick(3, false)
	assert.True(t, in.connected())

	in.onJoystick(0, false)
	assert.False(t, in.connected())
	assert.Empty(t, hub.Controllers())
}

func TestKeyboardKeepsControllersConnected(t *testing.T) {
	in, hub := newInput(true)
	in.connect()
	in.connect()

	in.onJoystick(0, false)
	assert.Len(t, hub.Controllers(), 2)
}

func TestFrameMergesKeyboardAndGamepad(t *testing.T) {
	in, _ := newInput(true)
	pad := &fakePad{state: xr.RestingGamepadState(), present: true}
	pad.state.Axes[xr.GamepadAxisRightX] = 0.05
	pad.state.Buttons[xr.GamepadButtonA] = true

	in.keys.Press(common.KeyW)
	in.frame(pad, 0.016)

	stick := in.left.Component(xr.ComponentThumbstick)
	require.NotNil(t, stick)
	assert.Equal(t, float32(-1), stick.Axes().Y())

	// inside the dead zone
	assert.Zero(t, in.right.Component(xr.ComponentThumbstick).Axes().X())
	assert.True(t, in.right.Component(xr.ComponentA).Pressed())

	in.setDeadZone(0)
	in.frame(pad, 0.016)
	assert.InDelta(t, 0.05, in.right.Component(xr.ComponentThumbstick).Axes().X(), 1e-6)

	pad.present = false
	in.keys.Release(common.KeyW)
	in.frame(pad, 0.016)
	assert.Zero(t, stick.Axes().Y())
	assert.False(t, in.right.Component(xr.ComponentA).Pressed())
}

func TestArrowKeysTiltPointers(t *testing.T) {
	in, _ := newInput(true)
	in.setDeadZone(0)

	in.keys.Press(common.KeyDown)
	for i := 0; i < 10; i++ {
		in.frame(nil, 0.05)
	}
	// 90°/s for half a second
	assert.InDelta(t, mgl32.DegToRad(45), in.aim.Pitch, 1e-4)
	assert.Less(t, in.left.Pointer().Forward().Y(), float32(-0.7))
	assert.Less(t, in.right.Pointer().Forward().Y(), float32(-0.7))
	// grips keep their pose
	assertForward(t, in.right.Grip().Forward())

	for i := 0; i < 100; i++ {
		in.frame(nil, 0.05)
	}
	assert.Equal(t, in.aim.MaxPitch, in.aim.Pitch)

	in.keys.Release(common.KeyDown)
	in.keys.Press(common.KeyUp)
	for i := 0; i < 200; i++ {
		in.frame(nil, 0.05)
	}
	assert.Equal(t, in.aim.MinPitch, in.aim.Pitch)
	assert.Greater(t, in.left.Pointer().Forward().Y(), float32(0))
}

func TestKeyboardTeleport(t *testing.T) {
	vp := camera.NewViewpoint(camera.WithPosition(0, 1.6, 0))
	sc := scene.NewScene("desk", scene.WithGround(scene.NewBody("Plane", scene.WithSize(200, 0, 200))))
	hub := xr.NewHub()
	left, right := xr.NewEmulatedPair("desk", vp)
	in := newDesktopInput(hub, left, right, true, -1, 0.1, zap.NewNop())
	in.connect()
	r := rig.NewRig(vp, sc, hub, rig.WithModes(locomotion.Teleport, locomotion.Smooth))
	defer r.Close()

	step := func(n int) {
		for i := 0; i < n; i++ {
			in.frame(nil, 0.016)
			r.Update(0.016)
		}
	}

	// level pointers never reach the ground
	in.keys.Press(common.KeyW)
	step(10)
	assert.False(t, r.State().Locomotion.Target.Valid)
	in.keys.Release(common.KeyW)
	step(1)
	assert.InDelta(t, 0, vp.Position().Z(), 1e-6)
	assert.InDelta(t, 1.6, vp.Position().Y(), 1e-4)

	in.keys.Press(common.KeyDown)
	step(30)
	in.keys.Release(common.KeyDown)

	in.keys.Press(common.KeyW)
	step(5)
	st := r.State()
	require.True(t, st.Locomotion.Target.Valid)
	assert.True(t, st.Locomotion.Beam.Visible)

	in.keys.Release(common.KeyW)
	step(1)
	assert.False(t, r.State().Locomotion.Beam.Visible)
	assert.InDelta(t, -0.2, vp.Position().X(), 1e-4)
	assert.InDelta(t, 1.6, vp.Position().Y(), 1e-4)
	assert.Greater(t, vp.Position().Z(), float32(1))
}

func assertForward(t *testing.T, got mgl32.Vec3) {
	t.Helper()
	assert.InDelta(t, 0, got.X(), 1e-6)
	assert.InDelta(t, 0, got.Y(), 1e-6)
	assert.InDelta(t, 1, got.Z(), 1e-6)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a.yaml", "b.toml"}, splitList(" a.yaml, ,b.toml "))
	assert.Nil(t, splitList(""))
}
