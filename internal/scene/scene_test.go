package scene

import (
	"testing"

	"github.com/Faultbox/heliscene/pkg/geometry"
	"github.com/Faultbox/heliscene/pkg/math"
)

func TestRigidBodyModel(t *testing.T) {
	b := NewRigidBody("box", geometry.KindCube, math.Vec3{X: 2, Y: 1, Z: 1}, math.Vec3{X: 0, Y: 4, Z: 0})
	b.rotate(math.RotateY(0.5))

	want := math.Translate(0, 4, 0).Mul(math.RotateY(0.5)).Mul(math.Scale(2, 1, 1))
	if b.Model() != want {
		t.Errorf("Model() = %v, want translation*rotation*scale %v", b.Model(), want)
	}
	if b.Position() != (math.Vec3{Y: 4}) {
		t.Errorf("Position() = %v", b.Position())
	}
}

func TestSceneKeepsInsertionOrder(t *testing.T) {
	s := New("test")
	names := []string{"body", "tail", "rotor", "alpha"}
	for _, n := range names {
		if err := s.Add(NewRigidBody(n, geometry.KindCube, math.Vec3{X: 1, Y: 1, Z: 1}, math.Vec3{})); err != nil {
			t.Fatalf("Add(%s): %v", n, err)
		}
	}

	bodies := s.Bodies()
	if len(bodies) != len(names) || s.Len() != len(names) {
		t.Fatalf("got %d bodies, want %d", len(bodies), len(names))
	}
	for i, b := range bodies {
		if b.Name != names[i] {
			t.Errorf("body %d = %s, want %s", i, b.Name, names[i])
		}
	}

	if b, ok := s.Body("rotor"); !ok || b.Name != "rotor" {
		t.Error("Body(rotor) lookup failed")
	}
	if _, ok := s.Body("missing"); ok {
		t.Error("Body(missing) should not be found")
	}
}

func TestSceneRejectsDuplicates(t *testing.T) {
	s := New("test")
	b := NewRigidBody("body", geometry.KindCube, math.Vec3{X: 1, Y: 1, Z: 1}, math.Vec3{})
	if err := s.Add(b); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(NewRigidBody("body", geometry.KindCube, math.Vec3{}, math.Vec3{})); err == nil {
		t.Error("duplicate name should be rejected")
	}
	if err := s.Add(nil); err == nil {
		t.Error("nil body should be rejected")
	}
}
