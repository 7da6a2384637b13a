package loader

import (
	"slices"
	"strings"
)

// Class is how a loaded body takes part in interaction.
type Class int

const (
	// ClassStatic bodies are registered and pickable but neither walkable, grabbable nor climbable.
	ClassStatic Class = iota
	ClassGround
	ClassGrabbable
	ClassClimbable
)

func (c Class) String() string {
	switch c {
	case ClassGround:
		return "ground"
	case ClassGrabbable:
		return "grabbable"
	case ClassClimbable:
		return "climbable"
	}
	return "static"
}

// Rules classify manifest meshes by name and parent.
type Rules struct {
	// GroundPrefixes mark meshes whose name starts with one of them as walkable ground.
	GroundPrefixes []string `yaml:"ground_prefixes" toml:"ground_prefixes"`
	// GrabbableParents mark direct children of these parents as grabbable.
	GrabbableParents []string `yaml:"grabbable_parents" toml:"grabbable_parents"`
	// StaticNames exclude exact names from every other rule.
	StaticNames []string `yaml:"static_names" toml:"static_names"`
	// ClimbablePrefixes mark meshes whose name starts with one of them as climbable.
	ClimbablePrefixes []string `yaml:"climbable_prefixes" toml:"climbable_prefixes"`
	// Scale multiplies the size of meshes whose name starts with a key.
	Scale map[string]float32 `yaml:"scale" toml:"scale"`
	// UnpickablePrefixes keep matching meshes out of ray picking.
	UnpickablePrefixes []string `yaml:"unpickable_prefixes" toml:"unpickable_prefixes"`
}

// DefaultRules returns the rules for the bundled forest scene.
func DefaultRules() Rules {
	return Rules{
		GroundPrefixes:     []string{"Plane"},
		GrabbableParents:   []string{"Props"},
		StaticNames:        []string{"rpgpp_lt_table_01"},
		ClimbablePrefixes:  []string{"Ladder", "Wall"},
		Scale:              map[string]float32{"Rocks": 0.2, "Shrub": 0.2},
		UnpickablePrefixes: []string{"skybox"},
	}
}

// Classify returns the class of mesh. Static names win, then ground, climbable and grabbable in that order.
//
// Parameters:
//   - mesh: the mesh to classify
//
// Returns:
//   - Class: the mesh's class
func (r Rules) Classify(mesh MeshSpec) Class {
	if slices.Contains(r.StaticNames, mesh.Name) {
		return ClassStatic
	}
	switch {
	case hasAnyPrefix(mesh.Name, r.GroundPrefixes):
		return ClassGround
	case hasAnyPrefix(mesh.Name, r.ClimbablePrefixes):
		return ClassClimbable
	case mesh.Parent != "" && slices.Contains(r.GrabbableParents, mesh.Parent):
		return ClassGrabbable
	}
	return ClassStatic
}

// ScaleFor returns the size multiplier for name, 1 when no scale rule matches.
// The longest matching prefix wins.
func (r Rules) ScaleFor(name string) float32 {
	best, scale := -1, float32(1)
	for prefix, s := range r.Scale {
		if strings.HasPrefix(name, prefix) && len(prefix) > best {
			best, scale = len(prefix), s
		}
	}
	return scale
}

// Unpickable reports whether name is excluded from ray picking.
func (r Rules) Unpickable(name string) bool {
	return hasAnyPrefix(name, r.UnpickablePrefixes)
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
