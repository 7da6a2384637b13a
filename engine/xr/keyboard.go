package xr

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-vr/common"
	"github.com/Carmen-Shannon/oxy-vr/engine/scene"
)

// KeyboardState tracks which keys are held so a desktop keyboard can stand in for a gamepad.
// Key presses arrive from window callbacks and are read once per frame.
// Thread-safe for concurrent access.
type KeyboardState struct {
	mu   sync.Mutex
	held map[uint32]bool
}

// NewKeyboardState creates a KeyboardState with no keys held.
func NewKeyboardState() *KeyboardState {
	return &KeyboardState{held: make(map[uint32]bool)}
}

// Press marks keyCode as held.
func (k *KeyboardState) Press(keyCode uint32) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.held[keyCode] = true
}

// Release marks keyCode as released.
func (k *KeyboardState) Release(keyCode uint32) {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.held, keyCode)
}

// Held reports whether keyCode is held.
func (k *KeyboardState) Held(keyCode uint32) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.held[keyCode]
}

// Gamepad translates the held keys into a gamepad frame:
//
//	W/S/A/D      left stick
//	Q/E, ←/→     right stick X
//	↑/↓          right stick Y
//	F, G         left, right squeeze
//	V, R         left, right trigger
//	Space, B     A, B buttons
//
// Returns:
//   - GamepadState: the emulated gamepad frame
func (k *KeyboardState) Gamepad() GamepadState {
	k.mu.Lock()
	defer k.mu.Unlock()

	s := RestingGamepadState()
	s.Axes[GamepadAxisLeftX] = k.axisLocked(common.KeyA, common.KeyD)
	s.Axes[GamepadAxisLeftY] = k.axisLocked(common.KeyW, common.KeyS)
	s.Axes[GamepadAxisRightX] = k.axisLocked(common.KeyQ, common.KeyE) + k.axisLocked(common.KeyLeft, common.KeyRight)
	s.Axes[GamepadAxisRightY] = k.axisLocked(common.KeyUp, common.KeyDown)
	if s.Axes[GamepadAxisRightX] > 1 {
		s.Axes[GamepadAxisRightX] = 1
	} else if s.Axes[GamepadAxisRightX] < -1 {
		s.Axes[GamepadAxisRightX] = -1
	}
	if k.held[common.KeyV] {
		s.Axes[GamepadAxisLeftTrigger] = 1
	}
	if k.held[common.KeyR] {
		s.Axes[GamepadAxisRightTrigger] = 1
	}
	s.Buttons[GamepadButtonLeftBumper] = k.held[common.KeyF]
	s.Buttons[GamepadButtonRightBumper] = k.held[common.KeyG]
	s.Buttons[GamepadButtonA] = k.held[common.KeySpace]
	s.Buttons[GamepadButtonB] = k.held[common.KeyB]
	return s
}

func (k *KeyboardState) axisLocked(negative, positive uint32) float32 {
	var v float32
	if k.held[negative] {
		v--
	}
	if k.held[positive] {
		v++
	}
	return v
}

// EmulatedHandOffset is the local offset of an emulated right hand from the viewpoint. The left hand mirrors it on X.
var EmulatedHandOffset = [3]float32{0.2, -0.4, 0.3}

// NewEmulatedPair creates a left and right controller whose pointer and grip nodes hang off parent at
// fixed hand offsets, so a desktop session has hands that travel with the viewpoint.
//
// Parameters:
//   - prefix: the controller ID prefix, the IDs end in "left" and "right"
//   - parent: the node the hands follow, usually the viewpoint
//
// Returns:
//   - Controller: the left controller
//   - Controller: the right controller
func NewEmulatedPair(prefix string, parent scene.Node) (Controller, Controller) {
	build := func(hand string, sign float32) Controller {
		id := prefix + "-" + hand
		x, y, z := sign*EmulatedHandOffset[0], EmulatedHandOffset[1], EmulatedHandOffset[2]
		return NewController(id,
			WithPointer(scene.NewNode(id+"-pointer", scene.WithParent(parent), scene.WithLocalPosition(x, y, z))),
			WithGrip(scene.NewNode(id+"-grip", scene.WithParent(parent), scene.WithLocalPosition(x, y, z))),
		)
	}
	return build("left", -1), build("right", 1)
}
