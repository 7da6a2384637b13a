package loader

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-vr/common"
	"github.com/Carmen-Shannon/oxy-vr/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidManifest is wrapped by every error Manifest.Validate returns.
var ErrInvalidManifest = errors.New("loader: invalid manifest")

// Manifest describes the bodies of one world file.
type Manifest struct {
	Name   string     `yaml:"name" toml:"name"`
	Meshes []MeshSpec `yaml:"meshes" toml:"meshes"`
}

// MeshSpec is one body in a manifest. Position is in world space, Rotation is pitch, yaw and roll
// in degrees, Size is the full box size before any scale rule.
type MeshSpec struct {
	Name     string     `yaml:"name" toml:"name"`
	Parent   string     `yaml:"parent,omitempty" toml:"parent,omitempty"`
	Position [3]float32 `yaml:"position" toml:"position"`
	Rotation [3]float32 `yaml:"rotation,omitempty" toml:"rotation,omitempty"`
	Size     [3]float32 `yaml:"size" toml:"size"`
	Mass     float32    `yaml:"mass,omitempty" toml:"mass,omitempty"`
}

// Validate checks that every mesh is named and has a non-negative size.
//
// Returns:
//   - error: nil if valid, otherwise an error wrapping ErrInvalidManifest
func (m *Manifest) Validate() error {
	var errs []error
	for i, mesh := range m.Meshes {
		if mesh.Name == "" {
			errs = append(errs, fmt.Errorf("%w: mesh %d has no name", ErrInvalidManifest, i))
		}
		for _, v := range mesh.Size {
			if v < 0 {
				errs = append(errs, fmt.Errorf("%w: mesh %q has a negative size", ErrInvalidManifest, mesh.Name))
				break
			}
		}
		if mesh.Mass < 0 {
			errs = append(errs, fmt.Errorf("%w: mesh %q has a negative mass", ErrInvalidManifest, mesh.Name))
		}
	}
	return errors.Join(errs...)
}

// placement is a built body and the set it goes into.
type placement struct {
	body  scene.Body
	class Class
}

// build turns every mesh into a body classified by rules. It only creates nodes, the scene is not touched.
func (m *Manifest) build(rules Rules) []placement {
	out := make([]placement, 0, len(m.Meshes))
	for _, mesh := range m.Meshes {
		class := rules.Classify(mesh)
		size := mgl32.Vec3(mesh.Size).Mul(rules.ScaleFor(mesh.Name))
		rot := common.EulerQuat(
			mgl32.DegToRad(mesh.Rotation[0]),
			mgl32.DegToRad(mesh.Rotation[1]),
			mgl32.DegToRad(mesh.Rotation[2]),
		)

		mass := mesh.Mass
		if class == ClassGrabbable && mass == 0 {
			mass = 1
		}

		b := scene.NewBody(mesh.Name,
			scene.WithPosition(mesh.Position[0], mesh.Position[1], mesh.Position[2]),
			scene.WithRotation(rot),
			scene.WithSize(size[0], size[1], size[2]),
			scene.WithMass(mass),
			scene.WithPickable(!rules.Unpickable(mesh.Name)),
			scene.WithSleeping(class == ClassGrabbable),
		)
		out = append(out, placement{body: b, class: class})
	}
	return out
}
