package scene

import (
	"fmt"

	"github.com/elliotchance/orderedmap/v2"
)

// Scene owns the rigid bodies and static props of one session.
// Bodies are kept in insertion order, which is also the draw order.
type Scene struct {
	Name string

	bodies  *orderedmap.OrderedMap[string, *RigidBody]
	statics []Static
}

// New creates an empty scene.
func New(name string) *Scene {
	return &Scene{
		Name:   name,
		bodies: orderedmap.NewOrderedMap[string, *RigidBody](),
	}
}

// Add registers a body. Names must be unique.
func (s *Scene) Add(b *RigidBody) error {
	if b == nil {
		return fmt.Errorf("nil body")
	}
	if _, exists := s.bodies.Get(b.Name); exists {
		return fmt.Errorf("duplicate body name %q", b.Name)
	}
	s.bodies.Set(b.Name, b)
	return nil
}

// AddStatic registers a static prop.
func (s *Scene) AddStatic(st Static) {
	s.statics = append(s.statics, st)
}

// Body looks up a body by name.
func (s *Scene) Body(name string) (*RigidBody, bool) {
	return s.bodies.Get(name)
}

// Bodies returns the bodies in insertion order.
func (s *Scene) Bodies() []*RigidBody {
	out := make([]*RigidBody, 0, s.bodies.Len())
	for el := s.bodies.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value)
	}
	return out
}

// Statics returns the static props in insertion order.
func (s *Scene) Statics() []Static {
	return s.statics
}

// Len returns the number of bodies.
func (s *Scene) Len() int {
	return s.bodies.Len()
}
