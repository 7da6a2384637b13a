package scene

import (
	"slices"
	"sync"

	"github.com/Carmen-Shannon/oxy-vr/common"
	"github.com/go-gl/mathgl/mgl32"
)

// PickInfo describes the result of a ray pick.
type PickInfo struct {
	// Hit is true when the ray struck a body.
	Hit bool
	// Body is the nearest body struck, nil on a miss.
	Body Body
	// Point is the world position of the hit.
	Point mgl32.Vec3
	// Distance is the distance from the ray origin to Point.
	Distance float32
}

// PickFilter narrows the bodies a pick considers. A nil filter accepts every pickable body.
type PickFilter func(b Body) bool

// Scene is the world the rig moves through: a registry of Bodies plus the ground, grabbable
// and climbable sets that locomotion and interaction query. Bodies keep their registration order,
// which is also the order grab scans walk.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// Count returns the number of bodies in the registry.
	//
	// Returns:
	//   - int: count of registered bodies
	Count() int

	// Add registers a Body with the scene. Bodies without IDs are assigned the next free ID.
	// Adding an already registered body is a no-op.
	//
	// Parameters:
	//   - b: the body to add
	//
	// Returns:
	//   - uint64: the body's ID
	Add(b Body) uint64

	// Get retrieves a Body by its ID. Returns nil if not found.
	//
	// Parameters:
	//   - id: the body's unique ID
	//
	// Returns:
	//   - Body: the body or nil
	Get(id uint64) Body

	// Find retrieves the first registered Body with the given name. Returns nil if not found.
	//
	// Parameters:
	//   - name: the body name
	//
	// Returns:
	//   - Body: the body or nil
	Find(name string) Body

	// Remove drops a Body from the registry and from every set it belongs to.
	//
	// Parameters:
	//   - id: the body's unique ID
	Remove(id uint64)

	// Bodies returns a snapshot of all registered bodies in registration order.
	Bodies() []Body

	// AddGround registers b, if needed, and marks it as walkable ground.
	//
	// Parameters:
	//   - b: the ground body
	AddGround(b Body)

	// Ground returns a snapshot of the ground set.
	Ground() []Body

	// IsGround reports whether b is in the ground set.
	IsGround(b Body) bool

	// AddGrabbable registers b, if needed, and marks it as grabbable.
	//
	// Parameters:
	//   - b: the grabbable body
	AddGrabbable(b Body)

	// Grabbables returns a snapshot of the grabbable set.
	Grabbables() []Body

	// IsGrabbable reports whether b is in the grabbable set.
	IsGrabbable(b Body) bool

	// AddClimbable registers b, if needed, and marks it as a climbable surface.
	//
	// Parameters:
	//   - b: the climbable body
	AddClimbable(b Body)

	// Climbables returns a snapshot of the climbable set.
	Climbables() []Body

	// IsClimbable reports whether b is in the climbable set.
	IsClimbable(b Body) bool

	// PickWithRay casts r against every pickable body accepted by filter and returns the nearest hit.
	// Equal distances resolve to the earlier registered body.
	//
	// Parameters:
	//   - r: the ray to cast
	//   - filter: optional predicate narrowing the candidates
	//
	// Returns:
	//   - PickInfo: the nearest hit, or a PickInfo with Hit false
	PickWithRay(r common.Ray, filter PickFilter) PickInfo

	// IntersectsSphere reports whether the sphere overlaps b's world bounds.
	//
	// Parameters:
	//   - s: the sphere
	//   - b: the body to test
	//
	// Returns:
	//   - bool: true on overlap
	IntersectsSphere(s common.Sphere, b Body) bool

	// Clear removes all bodies and empties every set.
	Clear()
}

type scene struct {
	mu         sync.RWMutex
	name       string
	nextID     uint64
	registry   map[uint64]Body
	order      []Body
	ground     []Body
	grabbables []Body
	climbables []Body
}

var _ Scene = &scene{}

// NewScene creates a new empty Scene.
//
// Parameters:
//   - name: the scene identifier
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the created scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{
		name:     name,
		nextID:   1,
		registry: make(map[uint64]Body),
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

func (s *scene) Add(b Body) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLocked(b)
}

func (s *scene) addLocked(b Body) uint64 {
	if existing, ok := s.registry[b.ID()]; ok {
		if existing == b {
			return b.ID()
		}
		// ID collision with another body, reassign
		b.SetID(0)
	}
	if b.ID() == 0 {
		b.SetID(s.nextID)
		s.nextID++
	} else if b.ID() >= s.nextID {
		s.nextID = b.ID() + 1
	}
	s.registry[b.ID()] = b
	s.order = append(s.order, b)
	return b.ID()
}

func (s *scene) Get(id uint64) Body {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) Find(name string) Body {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.order {
		if b.Name() == name {
			return b
		}
	}
	return nil
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.registry[id]
	if !ok {
		return
	}
	delete(s.registry, id)
	s.order = removeBody(s.order, b)
	s.ground = removeBody(s.ground, b)
	s.grabbables = removeBody(s.grabbables, b)
	s.climbables = removeBody(s.climbables, b)
}

func (s *scene) Bodies() []Body {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.order)
}

func (s *scene) AddGround(b Body) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addLocked(b)
	if !slices.Contains(s.ground, b) {
		s.ground = append(s.ground, b)
	}
}

func (s *scene) Ground() []Body {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.ground)
}

func (s *scene) IsGround(b Body) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.ground, b)
}

func (s *scene) AddGrabbable(b Body) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addLocked(b)
	if !slices.Contains(s.grabbables, b) {
		s.grabbables = append(s.grabbables, b)
	}
}

func (s *scene) Grabbables() []Body {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.grabbables)
}

func (s *scene) IsGrabbable(b Body) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.grabbables, b)
}

func (s *scene) AddClimbable(b Body) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addLocked(b)
	if !slices.Contains(s.climbables, b) {
		s.climbables = append(s.climbables, b)
	}
}

func (s *scene) Climbables() []Body {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.climbables)
}

func (s *scene) IsClimbable(b Body) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.climbables, b)
}

func (s *scene) PickWithRay(r common.Ray, filter PickFilter) PickInfo {
	candidates := s.Bodies()

	var best PickInfo
	for _, b := range candidates {
		if !b.Pickable() {
			continue
		}
		if filter != nil && !filter(b) {
			continue
		}
		d, hit := r.IntersectAABB(b.Bounds())
		if !hit {
			continue
		}
		if !best.Hit || d < best.Distance {
			best = PickInfo{Hit: true, Body: b, Point: r.At(d), Distance: d}
		}
	}
	return best
}

func (s *scene) IntersectsSphere(sp common.Sphere, b Body) bool {
	if b == nil {
		return false
	}
	return b.Bounds().IntersectsSphere(sp)
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry = make(map[uint64]Body)
	s.order = nil
	s.ground = nil
	s.grabbables = nil
	s.climbables = nil
}

func removeBody(list []Body, b Body) []Body {
	if i := slices.Index(list, b); i >= 0 {
		return slices.Delete(list, i, i+1)
	}
	return list
}
