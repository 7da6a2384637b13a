package xr

import (
	"slices"
	"sync"

	"github.com/Carmen-Shannon/oxy-vr/engine/scene"
)

type controller struct {
	mu         *sync.Mutex
	id         string
	handedness Handedness
	pointer    scene.Node
	grip       scene.Node
	components map[ComponentID]*Component
	order      []ComponentID
}

// Controller is a tracked hand controller. The pointer node is the aiming ray origin, the
// grip node is where a held object attaches. Components are looked up by ID and may be absent.
type Controller interface {
	// ID returns the controller's unique ID.
	ID() string

	// Handedness returns the hand holding the controller.
	Handedness() Handedness

	// Pointer returns the aiming pose.
	//
	// Returns:
	//   - scene.Node: the pointer node
	Pointer() scene.Node

	// Grip returns the holding pose, or nil when the device reports none.
	//
	// Returns:
	//   - scene.Node: the grip node or nil
	Grip() scene.Node

	// Component returns the component with the given ID, or nil when the controller has none.
	//
	// Parameters:
	//   - id: the component ID
	//
	// Returns:
	//   - *Component: the component or nil
	Component(id ComponentID) *Component

	// Components returns every component in declaration order.
	Components() []*Component
}

var _ Controller = &controller{}

// NewController creates a Controller. Handedness is derived from the ID suffix unless set explicitly.
// Without a WithComponents option the standard set for the hand is created: trigger, squeeze and
// thumbstick plus A/B on the right or X/Y on the left.
//
// Parameters:
//   - id: the unique controller ID
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the created controller
func NewController(id string, options ...ControllerBuilderOption) Controller {
	c := &controller{
		mu:         &sync.Mutex{},
		id:         id,
		handedness: HandednessFromID(id),
		components: make(map[ComponentID]*Component),
	}
	for _, opt := range options {
		opt(c)
	}

	if c.pointer == nil {
		c.pointer = scene.NewNode(id + "-pointer")
	}
	if len(c.order) == 0 {
		c.addComponents(StandardComponents(c.handedness)...)
	}
	return c
}

// StandardComponents lists the component IDs a typical controller for hand h carries.
//
// Parameters:
//   - h: the hand
//
// Returns:
//   - []ComponentID: the component IDs
func StandardComponents(h Handedness) []ComponentID {
	ids := []ComponentID{ComponentTrigger, ComponentSqueeze, ComponentThumbstick}
	switch h {
	case HandLeft:
		ids = append(ids, ComponentX, ComponentY)
	case HandRight:
		ids = append(ids, ComponentA, ComponentB)
	}
	return ids
}

func (c *controller) addComponents(ids ...ComponentID) {
	for _, id := range ids {
		if _, ok := c.components[id]; ok {
			continue
		}
		c.components[id] = NewComponent(id)
		c.order = append(c.order, id)
	}
}

func (c *controller) ID() string {
	return c.id
}

func (c *controller) Handedness() Handedness {
	return c.handedness
}

func (c *controller) Pointer() scene.Node {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pointer
}

func (c *controller) Grip() scene.Node {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.grip
}

func (c *controller) Component(id ComponentID) *Component {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.components[id]
}

func (c *controller) Components() []*Component {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Component, 0, len(c.order))
	for _, id := range slices.Clone(c.order) {
		out = append(out, c.components[id])
	}
	return out
}
