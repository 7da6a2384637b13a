package xr

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// ComponentID names an input component on a controller.
type ComponentID string

const (
	ComponentTrigger    ComponentID = "xr-standard-trigger"
	ComponentSqueeze    ComponentID = "xr-standard-squeeze"
	ComponentThumbstick ComponentID = "xr-standard-thumbstick"
	ComponentA          ComponentID = "a-button"
	ComponentB          ComponentID = "b-button"
	ComponentX          ComponentID = "x-button"
	ComponentY          ComponentID = "y-button"
)

// Component is one button, trigger or stick on a controller. Each Update is one frame of
// input; the change flags describe the difference from the previous Update only.
// Thread-safe for concurrent access.
type Component struct {
	mu sync.Mutex
	id ComponentID

	pressed bool
	value   float32
	axes    mgl32.Vec2

	pressedChanged bool
	valueChanged   bool
	axesChanged    bool
}

// NewComponent creates a released Component with centered axes.
//
// Parameters:
//   - id: the component identifier
//
// Returns:
//   - *Component: the created component
func NewComponent(id ComponentID) *Component {
	return &Component{id: id}
}

// ID returns the component identifier.
func (c *Component) ID() ComponentID {
	return c.id
}

// Update records this frame's raw input and recomputes the change flags.
//
// Parameters:
//   - pressed: whether the component is held down
//   - value: the analog value in [0, 1]
//   - axes: the 2D axis value, x right and y down (pushing a stick forward reads y = -1)
func (c *Component) Update(pressed bool, value float32, axes mgl32.Vec2) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pressedChanged = pressed != c.pressed
	c.valueChanged = value != c.value
	c.axesChanged = axes != c.axes
	c.pressed = pressed
	c.value = value
	c.axes = axes
}

// Pressed returns whether the component is held down.
func (c *Component) Pressed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pressed
}

// Value returns the analog value.
func (c *Component) Value() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Axes returns the 2D axis value.
func (c *Component) Axes() mgl32.Vec2 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.axes
}

// PressedChanged reports whether the pressed state flipped on the last Update.
func (c *Component) PressedChanged() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pressedChanged
}

// ValueChanged reports whether the analog value moved on the last Update.
func (c *Component) ValueChanged() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.valueChanged
}

// AxesChanged reports whether the axes moved on the last Update.
func (c *Component) AxesChanged() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.axesChanged
}

// PressEdge reports whether the last Update went from released to pressed.
func (c *Component) PressEdge() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pressedChanged && c.pressed
}

// ReleaseEdge reports whether the last Update went from pressed to released.
func (c *Component) ReleaseEdge() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pressedChanged && !c.pressed
}
