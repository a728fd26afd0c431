package scene

import (
	"bytes"
	_ "embed"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/heliscene/pkg/geometry"
	"github.com/Faultbox/heliscene/pkg/math"
)

//go:embed helicopter.yaml
var helicopterYAML []byte

// Definition is the on-disk description of a scene.
type Definition struct {
	Name    string      `yaml:"name"`
	Statics []StaticDef `yaml:"statics"`
	Bodies  []BodyDef   `yaml:"bodies"`
}

// StaticDef describes a static prop.
type StaticDef struct {
	Name         string        `yaml:"name"`
	Mesh         geometry.Kind `yaml:"mesh"`
	Color        Color         `yaml:"color"`
	Scale        [3]float32    `yaml:"scale"`
	Position     [3]float32    `yaml:"position"`
	Checkerboard bool          `yaml:"checkerboard"`
}

// BodyDef describes a rigid body.
type BodyDef struct {
	Name     string        `yaml:"name"`
	Mesh     geometry.Kind `yaml:"mesh"`
	Role     Role          `yaml:"role"`
	Color    Color         `yaml:"color"`
	Scale    [3]float32    `yaml:"scale"`
	Position [3]float32    `yaml:"position"`
	Spin     *SpinDef      `yaml:"spin,omitempty"`
}

// SpinDef configures a spin body.
type SpinDef struct {
	Axis [3]float32 `yaml:"axis"`
	Rate float32    `yaml:"rate"` // radians per second
}

// DefaultDefinition returns the built-in helicopter scene.
func DefaultDefinition() *Definition {
	def, err := ParseDefinition(helicopterYAML)
	if err != nil {
		panic(errors.Wrap(err, "built-in helicopter scene"))
	}
	return def
}

// ParseDefinition decodes and validates a YAML scene definition.
// Unknown fields are rejected.
func ParseDefinition(data []byte) (*Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	def := &Definition{}
	if err := dec.Decode(def); err != nil {
		return nil, errors.Wrap(err, "decoding scene")
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}

// Validate checks names, mesh kinds, roles and spin settings.
func (d *Definition) Validate() error {
	if len(d.Bodies) == 0 {
		return errors.New("scene has no bodies")
	}

	seen := make(map[string]bool, len(d.Bodies))
	for i, b := range d.Bodies {
		if b.Name == "" {
			return errors.Errorf("body %d: missing name", i)
		}
		if seen[b.Name] {
			return errors.Errorf("body %q: duplicate name", b.Name)
		}
		seen[b.Name] = true

		if _, err := geometry.ForKind(b.Mesh); err != nil {
			return errors.Wrapf(err, "body %q", b.Name)
		}
		role := b.Role
		if role == "" {
			role = RoleCarried
		}
		if !role.Valid() {
			return errors.Errorf("body %q: unknown role %q", b.Name, b.Role)
		}
		if role == RoleSpin {
			if b.Spin == nil {
				return errors.Errorf("body %q: spin role needs a spin section", b.Name)
			}
			if vec3(b.Spin.Axis).IsZero() {
				return errors.Errorf("body %q: spin axis is zero", b.Name)
			}
		} else if b.Spin != nil {
			return errors.Errorf("body %q: spin section on a %s body", b.Name, role)
		}
	}

	for i, s := range d.Statics {
		if s.Name == "" {
			return errors.Errorf("static %d: missing name", i)
		}
		if _, err := geometry.ForKind(s.Mesh); err != nil {
			return errors.Wrapf(err, "static %q", s.Name)
		}
	}
	return nil
}

// Build creates a fresh scene from the definition.
func (d *Definition) Build() (*Scene, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	s := New(d.Name)
	for _, sd := range d.Statics {
		s.AddStatic(Static{
			Name:         sd.Name,
			Mesh:         sd.Mesh,
			Color:        sd.Color,
			Model:        math.TranslateVec(vec3(sd.Position)).Mul(math.ScaleVec(vec3(sd.Scale))),
			Checkerboard: sd.Checkerboard,
		})
	}

	for _, bd := range d.Bodies {
		b := NewRigidBody(bd.Name, bd.Mesh, vec3(bd.Scale), vec3(bd.Position))
		b.Color = bd.Color
		if bd.Role != "" {
			b.Role = bd.Role
		}
		if bd.Spin != nil {
			b.SpinAxis = vec3(bd.Spin.Axis)
			b.SpinRate = bd.Spin.Rate
		}
		if err := s.Add(b); err != nil {
			return nil, errors.Wrap(err, "building scene")
		}
	}
	return s, nil
}

func vec3(v [3]float32) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}
