package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// NodeBuilderOption is a functional option for configuring a Node during construction.
type NodeBuilderOption func(*node)

// WithParent attaches the node to p. The node's initial local transform is kept as given,
// so options setting position or rotation describe the pose relative to p.
//
// Parameters:
//   - p: the parent node
//
// Returns:
//   - NodeBuilderOption: functional option to set the parent
func WithParent(p Node) NodeBuilderOption {
	return func(n *node) {
		n.parent = p
	}
}

// WithLocalPosition sets the node's position relative to its parent.
//
// Parameters:
//   - x, y, z: the local position
//
// Returns:
//   - NodeBuilderOption: functional option to set the position
func WithLocalPosition(x, y, z float32) NodeBuilderOption {
	return func(n *node) {
		n.local.Position = mgl32.Vec3{x, y, z}
	}
}

// WithLocalRotation sets the node's orientation relative to its parent.
//
// Parameters:
//   - q: the local rotation
//
// Returns:
//   - NodeBuilderOption: functional option to set the rotation
func WithLocalRotation(q mgl32.Quat) NodeBuilderOption {
	return func(n *node) {
		n.local.Rotation = q.Normalize()
	}
}
