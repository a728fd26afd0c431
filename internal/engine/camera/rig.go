package camera

import "github.com/Faultbox/heliscene/pkg/math"

// Mode selects which camera of a Rig feeds the renderer.
type Mode int

const (
	ModeOrigin Mode = iota
	ModeFollow
)

func (m Mode) String() string {
	switch m {
	case ModeOrigin:
		return "origin"
	case ModeFollow:
		return "follow"
	default:
		return "unknown"
	}
}

// Rig holds a fixed origin camera and a follow camera that tracks the
// scene's moving bodies. Switching modes never touches either camera.
type Rig struct {
	origin *OrbitCamera
	follow *OrbitCamera
	mode   Mode
}

// NewRig creates a rig with the origin camera active.
func NewRig(origin, follow *OrbitCamera) *Rig {
	return &Rig{
		origin: origin,
		follow: follow,
		mode:   ModeOrigin,
	}
}

// Mode returns the active mode.
func (r *Rig) Mode() Mode {
	return r.mode
}

// Select activates a camera. Unknown modes are ignored.
// Returns true if the active camera changed.
func (r *Rig) Select(m Mode) bool {
	if m != ModeOrigin && m != ModeFollow {
		return false
	}
	changed := r.mode != m
	r.mode = m
	return changed
}

// Toggle switches to the other camera and returns the new mode.
func (r *Rig) Toggle() Mode {
	if r.mode == ModeOrigin {
		r.mode = ModeFollow
	} else {
		r.mode = ModeOrigin
	}
	return r.mode
}

// Active returns the camera that user orbit/zoom input applies to.
func (r *Rig) Active() *OrbitCamera {
	if r.mode == ModeFollow {
		return r.follow
	}
	return r.origin
}

// Origin returns the fixed origin camera.
func (r *Rig) Origin() *OrbitCamera {
	return r.origin
}

// FollowCamera returns the follow camera.
func (r *Rig) FollowCamera() *OrbitCamera {
	return r.follow
}

// Follow moves the follow camera by the bodies' displacement this frame.
// It runs regardless of which camera is active.
func (r *Rig) Follow(delta math.Vec3) {
	if delta.IsZero() {
		return
	}
	r.follow.Translate(delta)
}

// Resize updates the viewport of both cameras.
func (r *Rig) Resize(width, height int) {
	r.origin.Resize(width, height)
	r.follow.Resize(width, height)
}

// Matrices returns the active camera's view and projection matrices.
func (r *Rig) Matrices() (view, proj math.Mat4) {
	c := r.Active()
	return c.ViewMatrix(), c.ProjectionMatrix()
}
