package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/heliscene/internal/controls"
	"github.com/Faultbox/heliscene/pkg/math"
)

// Rates converts input intents into motion.
type Rates struct {
	LinearSpeed float32   // world units per second on every axis
	AngularRate math.Vec3 // radians per second around X, Y and Z
}

// DefaultRates returns one unit per second of travel and the stock turn rates.
func DefaultRates() Rates {
	return Rates{
		LinearSpeed: 1,
		AngularRate: math.Vec3{X: 0.6, Y: 1.8, Z: 0.6},
	}
}

// Intent holds signed unit intents in {-1, 0, +1} per axis.
type Intent struct {
	Move math.Vec3 // X forward/back, Y ascend/descend, Z strafe right/left
	Turn math.Vec3 // X pitch, Y yaw, Z roll
}

// IsZero reports whether nothing is requested.
func (i Intent) IsZero() bool {
	return i.Move.IsZero() && i.Turn.IsZero()
}

// ReadIntent derives the current intents from the input table.
func ReadIntent(s *controls.State) Intent {
	return Intent{
		Move: math.Vec3{
			X: float32(s.Axis(controls.ActionForward, controls.ActionBackward)),
			Y: float32(s.Axis(controls.ActionAscend, controls.ActionDescend)),
			Z: float32(s.Axis(controls.ActionStrafeRight, controls.ActionStrafeLeft)),
		},
		Turn: math.Vec3{
			X: float32(s.Axis(controls.ActionPitchUp, controls.ActionPitchDown)),
			Y: float32(s.Axis(controls.ActionYawLeft, controls.ActionYawRight)),
			Z: float32(s.Axis(controls.ActionRollLeft, controls.ActionRollRight)),
		},
	}
}

// Composer advances every body of a scene from the input table.
// All bodies share the input-derived velocity; only steer bodies turn.
type Composer struct {
	scene *Scene
	input *controls.State
	rates Rates
	log   *zap.Logger

	last Intent
}

// NewComposer creates a composer. A nil logger disables logging.
func NewComposer(s *Scene, input *controls.State, rates Rates, log *zap.Logger) *Composer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Composer{
		scene: s,
		input: input,
		rates: rates,
		log:   log,
	}
}

// Rates returns the composer's motion rates.
func (c *Composer) Rates() Rates {
	return c.rates
}

// Advance moves the scene forward by dt seconds and returns the world-space
// displacement applied to the bodies. Axes with no intent are skipped, so
// an idle frame leaves every translation and steer rotation untouched.
func (c *Composer) Advance(dt float32) math.Vec3 {
	if dt <= 0 {
		return math.Vec3{}
	}

	intent := ReadIntent(c.input)
	if intent != c.last {
		c.log.Debug("intent changed",
			zap.Any("move", intent.Move),
			zap.Any("turn", intent.Turn),
		)
		c.last = intent
	}

	bodies := c.scene.Bodies()
	step := intent.Move.Scale(c.rates.LinearSpeed * dt)

	// Translation: X, then Z, then Y.
	for _, delta := range []math.Vec3{
		{X: step.X},
		{Z: step.Z},
		{Y: step.Y},
	} {
		if delta.IsZero() {
			continue
		}
		m := math.TranslateVec(delta)
		for _, b := range bodies {
			b.translate(m)
		}
	}

	// Rotation: X, then Y, then Z, steer bodies only.
	turn := math.Vec3{
		X: intent.Turn.X * c.rates.AngularRate.X * dt,
		Y: intent.Turn.Y * c.rates.AngularRate.Y * dt,
		Z: intent.Turn.Z * c.rates.AngularRate.Z * dt,
	}
	var deltas []math.Mat4
	if turn.X != 0 {
		deltas = append(deltas, math.RotateX(turn.X))
	}
	if turn.Y != 0 {
		deltas = append(deltas, math.RotateY(turn.Y))
	}
	if turn.Z != 0 {
		deltas = append(deltas, math.RotateZ(turn.Z))
	}
	if len(deltas) > 0 {
		for _, b := range bodies {
			if b.Role != RoleSteer {
				continue
			}
			for _, d := range deltas {
				b.rotate(d)
			}
		}
	}

	// Spinners turn regardless of input.
	for _, b := range bodies {
		if b.Role == RoleSpin && b.SpinRate != 0 {
			b.rotate(SpinIncrement(b, dt))
		}
	}

	return step
}

// SpinIncrement returns the rotation a spin body receives for one frame of dt.
func SpinIncrement(b *RigidBody, dt float32) math.Mat4 {
	return math.RotateAxis(b.SpinAxis, b.SpinRate*dt)
}
