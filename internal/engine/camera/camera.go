// Package camera provides the orbit camera and the origin/follow camera rig.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/heliscene/pkg/math"
)

var worldUp = math.Vec3{X: 0, Y: 1, Z: 0}

// maxElevation bounds |sin(elevation)| so the view never flips over a pole.
const maxElevation = 0.995

// minZoomDistance keeps the eye off the target when MinDistance is 0.
const minZoomDistance = 1e-3

// OrbitCamera rotates its eye around a fixed look-at target.
type OrbitCamera struct {
	Eye    math.Vec3
	Target math.Vec3

	// Projection
	FovY   float32 // radians
	Near   float32
	Far    float32
	Width  int
	Height int

	// Sensitivity
	OrbitSpeed float32 // radians per pixel of drag
	ZoomSpeed  float32 // distance fraction per zoom unit

	// Constraints
	MinDistance float32
	MaxDistance float32
}

// NewOrbitCamera creates an orbit camera with default projection and
// sensitivity settings.
func NewOrbitCamera(eye, target math.Vec3, width, height int) *OrbitCamera {
	return &OrbitCamera{
		Eye:         eye,
		Target:      target,
		FovY:        math32.Pi / 4,
		Near:        0.01,
		Far:         500,
		Width:       width,
		Height:      height,
		OrbitSpeed:  0.01,
		ZoomSpeed:   1,
		MinDistance: 1,
		MaxDistance: 200,
	}
}

// Distance returns the eye-to-target distance.
func (c *OrbitCamera) Distance() float32 {
	return c.Eye.Distance(c.Target)
}

// Orbit rotates the eye around the target by angles proportional to drag
// and scales the eye-to-target distance by (1 + ZoomSpeed*zoom).
// The target is never moved.
func (c *OrbitCamera) Orbit(drag math.Vec2, zoom float32) {
	if drag.IsZero() && zoom == 0 {
		return
	}

	offset := c.Eye.Sub(c.Target)
	dist := offset.Length()
	if dist == 0 {
		return
	}

	// Yaw around world up
	if drag.X != 0 {
		offset = math.QuatFromAxisAngle(worldUp, drag.X*c.OrbitSpeed).Rotate(offset)
	}

	// Pitch around the camera's right axis
	if drag.Y != 0 {
		right := offset.Scale(-1).Cross(worldUp)
		if !right.IsZero() {
			pitched := math.QuatFromAxisAngle(right, drag.Y*c.OrbitSpeed).Rotate(offset)
			if math32.Abs(pitched.Normalize().Dot(worldUp)) < maxElevation {
				offset = pitched
			}
		}
	}

	if zoom != 0 {
		newDist := c.zoomDistance(dist, dist*(1+c.ZoomSpeed*zoom))
		offset = offset.Normalize().Scale(newDist)
	}

	c.Eye = c.Target.Add(offset)
}

// Translate moves eye and target together.
func (c *OrbitCamera) Translate(delta math.Vec3) {
	c.Eye = c.Eye.Add(delta)
	c.Target = c.Target.Add(delta)
}

// Resize updates the viewport size used for the aspect ratio.
func (c *OrbitCamera) Resize(width, height int) {
	c.Width = width
	c.Height = height
}

// Aspect returns width/height, or 1 for a degenerate viewport.
func (c *OrbitCamera) Aspect() float32 {
	if c.Width <= 0 || c.Height <= 0 {
		return 1
	}
	return float32(c.Width) / float32(c.Height)
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Eye, c.Target, worldUp)
}

// ProjectionMatrix returns the perspective projection for this camera.
func (c *OrbitCamera) ProjectionMatrix() math.Mat4 {
	return math.Perspective(c.FovY, c.Aspect(), c.Near, c.Far)
}

// zoomDistance limits a zoom step from cur to next by the distance range.
// The result never moves against the zoom direction: a camera already
// closer than MinDistance stays put when zooming in, and one farther than
// MaxDistance stays put when zooming out.
func (c *OrbitCamera) zoomDistance(cur, next float32) float32 {
	if next < cur {
		floor := math32.Min(cur, math32.Max(c.MinDistance, minZoomDistance))
		return math32.Max(next, floor)
	}
	if c.MaxDistance > 0 {
		return math32.Min(next, math32.Max(cur, c.MaxDistance))
	}
	return next
}
