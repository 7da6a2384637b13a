package xr

import (
	"github.com/Carmen-Shannon/oxy-vr/engine/scene"
)

// ControllerBuilderOption is a functional option for configuring a Controller during construction.
type ControllerBuilderOption func(*controller)

// WithHandedness overrides the hand derived from the controller ID.
//
// Parameters:
//   - h: the hand
//
// Returns:
//   - ControllerBuilderOption: functional option to set the handedness
func WithHandedness(h Handedness) ControllerBuilderOption {
	return func(c *controller) {
		c.handedness = h
	}
}

// WithPointer sets the aiming node. A root node named after the controller is created when omitted.
//
// Parameters:
//   - n: the pointer node
//
// Returns:
//   - ControllerBuilderOption: functional option to set the pointer
func WithPointer(n scene.Node) ControllerBuilderOption {
	return func(c *controller) {
		c.pointer = n
	}
}

// WithGrip sets the holding node. Controllers without a grip cannot grab.
//
// Parameters:
//   - n: the grip node
//
// Returns:
//   - ControllerBuilderOption: functional option to set the grip
func WithGrip(n scene.Node) ControllerBuilderOption {
	return func(c *controller) {
		c.grip = n
	}
}

// WithComponents replaces the standard component set with the given IDs.
//
// Parameters:
//   - ids: the component IDs to create
//
// Returns:
//   - ControllerBuilderOption: functional option to set the components
func WithComponents(ids ...ComponentID) ControllerBuilderOption {
	return func(c *controller) {
		c.addComponents(ids...)
	}
}
