package window

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-vr/engine/xr"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfwWindow holds the GLFW-specific window state.
type glfwWindow struct {
	window  *glfw.Window
	running bool
}

// newPlatformWindow creates the GLFW window with input callbacks and stores it as the internal window.
//
// go-gl/glfw: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw
func newPlatformWindow(w *engineWindow) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// Nothing is drawn, so no client API context is needed.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create GLFW window: %w", err)
	}
	win.SetSizeLimits(w.minWidth, w.minHeight, glfw.DontCare, glfw.DontCare)

	gw := &glfwWindow{window: win, running: true}
	w.internalWindow = gw

	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			gw.running = false
			win.SetShouldClose(true)
			return
		}
		switch action {
		case glfw.Press:
			if w.onKeyDown != nil {
				w.onKeyDown(uint32(key))
			}
		case glfw.Release:
			if w.onKeyUp != nil {
				w.onKeyUp(uint32(key))
			}
		}
	})

	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width = width
		w.height = height
		if w.onResize != nil {
			w.onResize(width, height)
		}
	})

	// Reference: https://www.glfw.org/docs/3.3/input_guide.html#joystick_event
	glfw.SetJoystickCallback(func(joy glfw.Joystick, event glfw.PeripheralEvent) {
		if w.onJoystick != nil {
			w.onJoystick(int(joy-glfw.Joystick1), event == glfw.Connected)
		}
	})

	w.width, w.height = win.GetFramebufferSize()
	return nil
}

// platformGamepad reads a joystick slot through GLFW's gamepad mapping database.
// The GLFW layout matches xr.GamepadState index for index.
func platformGamepad(joystick int) (xr.GamepadState, bool) {
	joy := glfw.Joystick1 + glfw.Joystick(joystick)
	if joystick < 0 || joy > glfw.JoystickLast || !joy.IsGamepad() {
		return xr.RestingGamepadState(), false
	}
	gs := joy.GetGamepadState()
	if gs == nil {
		return xr.RestingGamepadState(), false
	}

	var s xr.GamepadState
	for i, a := range gs.Buttons {
		s.Buttons[i] = a == glfw.Press
	}
	s.Axes = gs.Axes
	return s, true
}

func platformIsRunningCheck(w *engineWindow) bool {
	if w.internalWindow == nil {
		return false
	}
	gw := w.internalWindow.(*glfwWindow)
	return gw.running && !gw.window.ShouldClose()
}

func platformCloseWindow(w *engineWindow) error {
	if w.internalWindow == nil {
		return fmt.Errorf("window is not initialized")
	}
	gw := w.internalWindow.(*glfwWindow)
	gw.running = false
	glfw.SetJoystickCallback(nil)
	gw.window.Destroy()
	glfw.Terminate()
	w.internalWindow = nil
	return nil
}

// platformProcessMessages polls GLFW for pending events without blocking.
func platformProcessMessages(w *engineWindow) bool {
	glfw.PollEvents()
	return platformIsRunningCheck(w)
}
