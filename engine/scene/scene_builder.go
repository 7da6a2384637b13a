package scene

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithBodies adds initial bodies to the scene registry.
// Bodies without IDs will be assigned new IDs.
//
// Parameters:
//   - bodies: the bodies to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithBodies(bodies ...Body) SceneBuilderOption {
	return func(s *scene) {
		for _, b := range bodies {
			s.addLocked(b)
		}
	}
}

// WithGround adds initial bodies to the scene and marks them as ground.
//
// Parameters:
//   - bodies: the ground bodies
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithGround(bodies ...Body) SceneBuilderOption {
	return func(s *scene) {
		for _, b := range bodies {
			s.addLocked(b)
			s.ground = append(s.ground, b)
		}
	}
}
