// Package window opens the desktop simulator window and turns its keyboard and joystick input
// into engine callbacks. It binds GLFW through cgo; all input mapping lives in engine/xr.
package window

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-vr/engine/xr"
)

// Window is a desktop window used as the input surface of the simulator.
// Callbacks fire from PollEvents on the goroutine that created the window.
type Window interface {
	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetKeyDownCallback sets the callback for key press events. Key repeats are not reported.
	//
	// Parameters:
	//   - callback: function receiving the key code, see common key codes
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the callback for key release events.
	//
	// Parameters:
	//   - callback: function receiving the key code
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetJoystickCallback sets the callback for joystick hot-plug.
	//
	// Parameters:
	//   - callback: function receiving the joystick slot and whether it was connected
	SetJoystickCallback(callback func(joystick int, connected bool))

	// Gamepad reads the current state of a joystick slot through the standard gamepad mapping.
	//
	// Parameters:
	//   - joystick: the joystick slot, 0 based
	//
	// Returns:
	//   - xr.GamepadState: the state, or a resting state when absent
	//   - bool: false if nothing with a gamepad mapping is in the slot
	Gamepad(joystick int) (xr.GamepadState, bool)

	// PollEvents processes pending window events without blocking.
	//
	// Returns:
	//   - bool: false once the window should close
	PollEvents() bool

	// IsRunning returns true until the window is closed or Escape is pressed.
	IsRunning() bool

	// Close destroys the window and releases the platform.
	//
	// Returns:
	//   - error: error if the window was never opened
	Close() error

	// Width returns the framebuffer width in pixels.
	Width() int

	// Height returns the framebuffer height in pixels.
	Height() int
}

// engineWindow is the implementation of the Window interface.
type engineWindow struct {
	title     string
	minWidth  int
	minHeight int
	width     int
	height    int

	// internalWindow holds the platform window (glfwWindow).
	internalWindow any

	onResize   func(width, height int)
	onKeyDown  func(keyCode uint32)
	onKeyUp    func(keyCode uint32)
	onJoystick func(joystick int, connected bool)
}

var _ Window = &engineWindow{}

// NewWindow opens a window with the given options. Must be called from the main goroutine.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the opened window
//   - error: if the platform window cannot be created
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := &engineWindow{
		title:     "oxy-vr",
		minWidth:  320,
		minHeight: 200,
		width:     1280,
		height:    720,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}
	return w, nil
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.onKeyUp = callback
}

func (w *engineWindow) SetJoystickCallback(callback func(joystick int, connected bool)) {
	w.onJoystick = callback
}

func (w *engineWindow) Gamepad(joystick int) (xr.GamepadState, bool) {
	return platformGamepad(joystick)
}

func (w *engineWindow) PollEvents() bool {
	return platformProcessMessages(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}
