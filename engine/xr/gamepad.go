package xr

import (
	"github.com/Carmen-Shannon/oxy-vr/common"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Gamepad button indices, matching the GLFW standard gamepad layout.
const (
	GamepadButtonA = iota
	GamepadButtonB
	GamepadButtonX
	GamepadButtonY
	GamepadButtonLeftBumper
	GamepadButtonRightBumper
	GamepadButtonBack
	GamepadButtonStart
	GamepadButtonGuide
	GamepadButtonLeftThumb
	GamepadButtonRightThumb
	GamepadButtonDpadUp
	GamepadButtonDpadRight
	GamepadButtonDpadDown
	GamepadButtonDpadLeft
	gamepadButtonCount
)

// Gamepad axis indices, matching the GLFW standard gamepad layout.
const (
	GamepadAxisLeftX = iota
	GamepadAxisLeftY
	GamepadAxisRightX
	GamepadAxisRightY
	GamepadAxisLeftTrigger
	GamepadAxisRightTrigger
	gamepadAxisCount
)

// triggerPressThreshold is the normalized trigger value above which a trigger counts as pressed.
const triggerPressThreshold = 0.5

// GamepadState is one frame of standard gamepad input. Stick axes are in [-1, 1] with +Y pulling
// toward the user. Trigger axes rest at -1 and reach 1 when fully pulled.
type GamepadState struct {
	Buttons [gamepadButtonCount]bool
	Axes    [gamepadAxisCount]float32
}

// RestingGamepadState returns a state with every button released, sticks centered and triggers at rest.
func RestingGamepadState() GamepadState {
	var s GamepadState
	s.Axes[GamepadAxisLeftTrigger] = -1
	s.Axes[GamepadAxisRightTrigger] = -1
	return s
}

// Merge combines two input frames: buttons are OR'd and each axis keeps the value farther from rest.
//
// Parameters:
//   - other: the state to merge in
//
// Returns:
//   - GamepadState: the merged state
func (s GamepadState) Merge(other GamepadState) GamepadState {
	out := s
	for i := range out.Buttons {
		out.Buttons[i] = s.Buttons[i] || other.Buttons[i]
	}
	for i := range out.Axes {
		if i == GamepadAxisLeftTrigger || i == GamepadAxisRightTrigger {
			out.Axes[i] = math32.Max(s.Axes[i], other.Axes[i])
			continue
		}
		if math32.Abs(other.Axes[i]) > math32.Abs(s.Axes[i]) {
			out.Axes[i] = other.Axes[i]
		}
	}
	return out
}

// ApplyGamepad feeds one frame of gamepad input into the emulated controllers. The left stick,
// left bumper and left trigger drive the left controller; the right-hand equivalents and the
// face buttons drive the right controller, X and Y go to the left. Stick values inside deadZone
// read as exactly zero. Either controller may be nil.
//
// Parameters:
//   - s: the gamepad frame
//   - left: the left controller or nil
//   - right: the right controller or nil
//   - deadZone: the stick dead zone half width
func ApplyGamepad(s GamepadState, left, right Controller, deadZone float32) {
	if left != nil {
		applyHand(left, s,
			GamepadAxisLeftX, GamepadAxisLeftY, GamepadAxisLeftTrigger,
			GamepadButtonLeftBumper, GamepadButtonLeftThumb, deadZone)
		updateButton(left, ComponentX, s.Buttons[GamepadButtonX])
		updateButton(left, ComponentY, s.Buttons[GamepadButtonY])
	}
	if right != nil {
		applyHand(right, s,
			GamepadAxisRightX, GamepadAxisRightY, GamepadAxisRightTrigger,
			GamepadButtonRightBumper, GamepadButtonRightThumb, deadZone)
		updateButton(right, ComponentA, s.Buttons[GamepadButtonA])
		updateButton(right, ComponentB, s.Buttons[GamepadButtonB])
	}
}

func applyHand(c Controller, s GamepadState, axisX, axisY, trigger, bumper, thumb int, deadZone float32) {
	if stick := c.Component(ComponentThumbstick); stick != nil {
		axes := mgl32.Vec2{
			common.DeadZone(s.Axes[axisX], deadZone),
			common.DeadZone(s.Axes[axisY], deadZone),
		}
		stick.Update(s.Buttons[thumb], 0, axes)
	}
	if t := c.Component(ComponentTrigger); t != nil {
		value := mgl32.Clamp((s.Axes[trigger]+1)/2, 0, 1)
		t.Update(value > triggerPressThreshold, value, mgl32.Vec2{})
	}
	updateButton(c, ComponentSqueeze, s.Buttons[bumper])
}

func updateButton(c Controller, id ComponentID, pressed bool) {
	comp := c.Component(id)
	if comp == nil {
		return
	}
	var value float32
	if pressed {
		value = 1
	}
	comp.Update(pressed, value, mgl32.Vec2{})
}
