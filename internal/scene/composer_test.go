package scene

import (
	"testing"

	"github.com/Faultbox/heliscene/internal/controls"
	"github.com/Faultbox/heliscene/pkg/math"
)

// newHelicopter builds the default scene with a composer driven by input.
func newHelicopter(t *testing.T) (*Scene, *controls.State, *Composer) {
	t.Helper()
	s, err := DefaultDefinition().Build()
	if err != nil {
		t.Fatalf("building default scene: %v", err)
	}
	in := controls.NewState()
	return s, in, NewComposer(s, in, DefaultRates(), nil)
}

type pose struct {
	translation math.Mat4
	rotation    math.Mat4
}

func snapshot(s *Scene) map[string]pose {
	out := make(map[string]pose)
	for _, b := range s.Bodies() {
		out[b.Name] = pose{b.Translation(), b.Rotation()}
	}
	return out
}

func TestAdvanceIdleIsNoop(t *testing.T) {
	for _, dt := range []float32{0, 0.001, 0.016, 1, 10} {
		s, _, c := newHelicopter(t)
		before := snapshot(s)

		moved := c.Advance(dt)

		if !moved.IsZero() {
			t.Errorf("dt=%v: idle displacement = %v", dt, moved)
		}
		for _, b := range s.Bodies() {
			if b.Translation() != before[b.Name].translation {
				t.Errorf("dt=%v: %s translation changed while idle", dt, b.Name)
			}
			if b.Role != RoleSpin && b.Rotation() != before[b.Name].rotation {
				t.Errorf("dt=%v: %s rotation changed while idle", dt, b.Name)
			}
		}
	}
}

func TestAdvanceNonPositiveDt(t *testing.T) {
	s, in, c := newHelicopter(t)
	in.SetAction(controls.ActionForward, true)
	in.SetAction(controls.ActionYawLeft, true)
	before := snapshot(s)

	c.Advance(0)
	c.Advance(-1)

	for _, b := range s.Bodies() {
		if b.Translation() != before[b.Name].translation || b.Rotation() != before[b.Name].rotation {
			t.Errorf("%s changed for dt <= 0", b.Name)
		}
	}
}

func TestForwardOneSecondMovesOneUnit(t *testing.T) {
	s, in, c := newHelicopter(t)
	body, _ := s.Body("body")
	start := body.Position()
	rot := body.Rotation()

	in.SetAction(controls.ActionForward, true)
	moved := c.Advance(1.0)

	if moved != (math.Vec3{X: 1}) {
		t.Errorf("displacement = %v, want (1, 0, 0)", moved)
	}
	if got := body.Position().Sub(start); got != (math.Vec3{X: 1}) {
		t.Errorf("body moved by %v, want exactly (1, 0, 0)", got)
	}
	if body.Rotation() != rot {
		t.Error("forward motion should not rotate the body")
	}
}

func TestAllBodiesShareVelocity(t *testing.T) {
	s, in, c := newHelicopter(t)
	before := make(map[string]math.Vec3)
	for _, b := range s.Bodies() {
		before[b.Name] = b.Position()
	}

	in.SetAction(controls.ActionAscend, true)
	in.SetAction(controls.ActionStrafeRight, true)
	c.Advance(0.5)

	for _, b := range s.Bodies() {
		got := b.Position().Sub(before[b.Name])
		if !got.ApproxEqual(math.Vec3{Y: 0.5, Z: 0.5}, 1e-6) {
			t.Errorf("%s moved by %v, want (0, 0.5, 0.5)", b.Name, got)
		}
	}
}

func TestForwardThenBackwardCancels(t *testing.T) {
	s, in, c := newHelicopter(t)
	before := snapshot(s)

	in.SetAction(controls.ActionForward, true)
	for i := 0; i < 30; i++ {
		c.Advance(0.25)
	}
	in.SetAction(controls.ActionForward, false)

	in.SetAction(controls.ActionBackward, true)
	for i := 0; i < 30; i++ {
		c.Advance(0.25)
	}

	// Float rounding keeps this from being bit-exact for positions like -0.1.
	for _, b := range s.Bodies() {
		if !b.Translation().ApproxEqual(before[b.Name].translation, 1e-5) {
			t.Errorf("%s translation = %v, want %v", b.Name, b.Translation(), before[b.Name].translation)
		}
	}
}

func TestOnlySteerBodiesTurn(t *testing.T) {
	s, in, c := newHelicopter(t)
	before := snapshot(s)

	in.SetAction(controls.ActionYawLeft, true)
	c.Advance(0.1)

	body, _ := s.Body("body")
	want := math.RotateY(DefaultRates().AngularRate.Y * 0.1)
	if !body.Rotation().ApproxEqual(want, 1e-6) {
		t.Errorf("body rotation = %v, want %v", body.Rotation(), want)
	}

	for _, b := range s.Bodies() {
		if b.Role == RoleCarried && b.Rotation() != before[b.Name].rotation {
			t.Errorf("carried body %s should not turn", b.Name)
		}
	}
}

func TestRotationOrderXYZ(t *testing.T) {
	s, in, c := newHelicopter(t)
	rates := DefaultRates()
	dt := float32(0.2)

	in.SetAction(controls.ActionPitchUp, true)
	in.SetAction(controls.ActionYawRight, true)
	in.SetAction(controls.ActionRollLeft, true)
	c.Advance(dt)

	rx := math.RotateX(rates.AngularRate.X * dt)
	ry := math.RotateY(-rates.AngularRate.Y * dt)
	rz := math.RotateZ(rates.AngularRate.Z * dt)
	want := rz.Mul(ry.Mul(rx.Mul(math.Identity())))

	body, _ := s.Body("body")
	if body.Rotation() != want {
		t.Errorf("rotation = %v, want Rz*Ry*Rx %v", body.Rotation(), want)
	}
}

func TestSpinnerMatchesSequentialIncrements(t *testing.T) {
	s, _, c := newHelicopter(t)
	rotor, _ := s.Body("rotor")
	dt := float32(1.0 / 60.0)
	const frames = 90

	want := math.Identity()
	inc := SpinIncrement(rotor, dt)
	for i := 0; i < frames; i++ {
		want = inc.Mul(want)
		c.Advance(dt)
	}

	if rotor.Rotation() != want {
		t.Errorf("rotor rotation after %d frames = %v, want %v", frames, rotor.Rotation(), want)
	}
}

func TestSpinnerIgnoresInput(t *testing.T) {
	s, in, c := newHelicopter(t)
	rotor, _ := s.Body("rotor")
	dt := float32(0.05)

	in.SetAction(controls.ActionPitchUp, true)
	c.Advance(dt)

	want := SpinIncrement(rotor, dt)
	if rotor.Rotation() != want {
		t.Errorf("rotor rotation = %v, want one spin increment %v", rotor.Rotation(), want)
	}
}

func TestReadIntent(t *testing.T) {
	in := controls.NewState()
	in.SetAction(controls.ActionBackward, true)
	in.SetAction(controls.ActionDescend, true)
	in.SetAction(controls.ActionStrafeLeft, true)
	in.SetAction(controls.ActionRollRight, true)
	in.SetAction(controls.ActionYawLeft, true)
	in.SetAction(controls.ActionYawRight, true)

	got := ReadIntent(in)
	want := Intent{
		Move: math.Vec3{X: -1, Y: -1, Z: -1},
		Turn: math.Vec3{Z: -1},
	}
	if got != want {
		t.Errorf("ReadIntent = %+v, want %+v", got, want)
	}
	if (Intent{}).IsZero() == false {
		t.Error("zero intent should report IsZero")
	}
}
