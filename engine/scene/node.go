package scene

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-vr/common"
	"github.com/go-gl/mathgl/mgl32"
)

type node struct {
	mu     *sync.Mutex
	id     uint64
	name   string
	parent Node
	local  common.Transform
}

// Node is a named pose in a transform hierarchy. Its world pose is the composition of its
// local transform with every ancestor's. Viewpoints, controller pointers, grips and bodies are all nodes.
// Thread-safe for concurrent access.
type Node interface {
	// ID returns the node's registry ID, or 0 if it was never added to a Scene.
	//
	// Returns:
	//   - uint64: the node ID
	ID() uint64

	// SetID sets the node's registry ID. Scenes assign IDs on Add.
	//
	// Parameters:
	//   - id: the new ID
	SetID(id uint64)

	// Name returns the node's identifier.
	Name() string

	// Parent returns the node this one is attached to, or nil for a root node.
	Parent() Node

	// SetParent attaches the node to p, or detaches it when p is nil. The world pose is preserved
	// across the change. Attaching a node to itself or to one of its own descendants is ignored.
	//
	// Parameters:
	//   - p: the new parent, or nil
	SetParent(p Node)

	// LocalTransform returns the pose relative to the parent.
	//
	// Returns:
	//   - common.Transform: the local pose
	LocalTransform() common.Transform

	// SetLocalTransform replaces the pose relative to the parent.
	//
	// Parameters:
	//   - t: the new local pose
	SetLocalTransform(t common.Transform)

	// WorldTransform returns the pose composed through all ancestors.
	//
	// Returns:
	//   - common.Transform: the world pose
	WorldTransform() common.Transform

	// Position returns the world position.
	Position() mgl32.Vec3

	// SetPosition moves the node so its world position becomes p.
	//
	// Parameters:
	//   - p: the world position
	SetPosition(p mgl32.Vec3)

	// Rotation returns the world orientation.
	Rotation() mgl32.Quat

	// SetRotation turns the node so its world orientation becomes q.
	//
	// Parameters:
	//   - q: the world orientation
	SetRotation(q mgl32.Quat)

	// Forward returns the node's local +Z axis in world space.
	Forward() mgl32.Vec3

	// Right returns the node's local +X axis in world space.
	Right() mgl32.Vec3

	// core returns the node backing this value. Nodes are created by this package; other types
	// become nodes by embedding one.
	core() *node
}

var _ Node = &node{}

// NewNode creates a new root Node at the origin with no rotation.
//
// Parameters:
//   - name: the node identifier
//   - options: functional options to configure the node
//
// Returns:
//   - Node: the created node
func NewNode(name string, options ...NodeBuilderOption) Node {
	n := &node{
		mu:    &sync.Mutex{},
		name:  name,
		local: common.IdentityTransform(),
	}
	for _, opt := range options {
		opt(n)
	}
	return n
}

func (n *node) ID() uint64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.id
}

func (n *node) SetID(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.id = id
}

func (n *node) core() *node {
	return n
}

func (n *node) Name() string {
	return n.name
}

func (n *node) Parent() Node {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.parent
}

func (n *node) SetParent(p Node) {
	if p != nil && isSelfOrDescendant(n, p) {
		return
	}

	world := n.WorldTransform()
	local := world
	if p != nil {
		local = p.WorldTransform().Inverse().Mul(world)
	}

	n.mu.Lock()
	n.parent = p
	n.local = local
	n.mu.Unlock()
}

func (n *node) LocalTransform() common.Transform {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.local
}

func (n *node) SetLocalTransform(t common.Transform) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.local = t
}

func (n *node) WorldTransform() common.Transform {
	n.mu.Lock()
	local, parent := n.local, n.parent
	n.mu.Unlock()

	if parent == nil {
		return local
	}
	return parent.WorldTransform().Mul(local)
}

func (n *node) Position() mgl32.Vec3 {
	return n.WorldTransform().Position
}

func (n *node) SetPosition(p mgl32.Vec3) {
	parent := n.Parent()
	if parent != nil {
		p = parent.WorldTransform().Inverse().Apply(p)
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.local.Position = p
}

func (n *node) Rotation() mgl32.Quat {
	return n.WorldTransform().Rotation
}

func (n *node) SetRotation(q mgl32.Quat) {
	parent := n.Parent()
	if parent != nil {
		q = parent.WorldTransform().Rotation.Inverse().Mul(q)
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.local.Rotation = q.Normalize()
}

func (n *node) Forward() mgl32.Vec3 {
	return n.Rotation().Rotate(common.LocalForward)
}

func (n *node) Right() mgl32.Vec3 {
	return n.Rotation().Rotate(common.LocalRight)
}

// isSelfOrDescendant reports whether candidate is n or sits below n in the hierarchy.
// Wrappers compare by their underlying node.
func isSelfOrDescendant(n *node, candidate Node) bool {
	for c := candidate; c != nil; c = c.Parent() {
		if c.core() == n {
			return true
		}
	}
	return false
}
