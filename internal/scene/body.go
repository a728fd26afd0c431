// Package scene holds the rigid bodies of a scene and advances them from
// user input each frame.
package scene

import (
	"github.com/Faultbox/heliscene/pkg/geometry"
	"github.com/Faultbox/heliscene/pkg/math"
)

// Role decides which per-frame transforms a body receives.
type Role string

const (
	// RoleSteer bodies translate with the group and rotate from user input.
	RoleSteer Role = "steer"
	// RoleSpin bodies translate with the group and spin at a constant rate.
	RoleSpin Role = "spin"
	// RoleCarried bodies only translate with the group.
	RoleCarried Role = "carried"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleSteer, RoleSpin, RoleCarried:
		return true
	}
	return false
}

// Color is a linear RGBA color.
type Color [4]float32

// RigidBody is a mesh instance with accumulated transforms.
// Its model matrix is translation * rotation * scale; the scale is fixed at
// construction and only translation and rotation accumulate.
type RigidBody struct {
	Name  string
	Mesh  geometry.Kind
	Color Color
	Role  Role

	// Spin settings, used when Role is RoleSpin.
	SpinAxis math.Vec3
	SpinRate float32 // radians per second

	scale       math.Mat4
	translation math.Mat4
	rotation    math.Mat4
}

// NewRigidBody creates a body at position with a fixed scale and no rotation.
func NewRigidBody(name string, mesh geometry.Kind, scale, position math.Vec3) *RigidBody {
	return &RigidBody{
		Name:        name,
		Mesh:        mesh,
		Color:       Color{1, 1, 1, 1},
		Role:        RoleCarried,
		scale:       math.ScaleVec(scale),
		translation: math.TranslateVec(position),
		rotation:    math.Identity(),
	}
}

// Scale returns the fixed scale matrix.
func (b *RigidBody) Scale() math.Mat4 {
	return b.scale
}

// Translation returns the accumulated translation matrix.
func (b *RigidBody) Translation() math.Mat4 {
	return b.translation
}

// Rotation returns the accumulated rotation matrix.
func (b *RigidBody) Rotation() math.Mat4 {
	return b.rotation
}

// Position returns the body's world position.
func (b *RigidBody) Position() math.Vec3 {
	return b.translation.Translation()
}

// Model returns translation * rotation * scale.
func (b *RigidBody) Model() math.Mat4 {
	return b.translation.Mul(b.rotation).Mul(b.scale)
}

func (b *RigidBody) translate(delta math.Mat4) {
	b.translation = delta.Mul(b.translation)
}

func (b *RigidBody) rotate(delta math.Mat4) {
	b.rotation = delta.Mul(b.rotation)
}

// Static is a fixed scene prop such as the ground plane.
type Static struct {
	Name         string
	Mesh         geometry.Kind
	Color        Color
	Model        math.Mat4
	Checkerboard bool
}
