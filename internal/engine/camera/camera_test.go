package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/heliscene/pkg/math"
)

func newTestCamera() *OrbitCamera {
	c := NewOrbitCamera(math.Vec3{X: 10, Y: 14, Z: 10}, math.Vec3{}, 1280, 720)
	c.ZoomSpeed = 0.05
	return c
}

func TestOrbitZeroIsNoop(t *testing.T) {
	c := newTestCamera()
	eye, target := c.Eye, c.Target

	c.Orbit(math.Vec2{}, 0)

	if c.Eye != eye || c.Target != target {
		t.Errorf("zero orbit moved camera: eye %v -> %v, target %v -> %v", eye, c.Eye, target, c.Target)
	}
}

func TestOrbitKeepsTargetAndDistance(t *testing.T) {
	c := newTestCamera()
	target := c.Target
	dist := c.Distance()

	c.Orbit(math.Vec2{X: 25, Y: -12}, 0)

	if c.Target != target {
		t.Errorf("target moved: %v -> %v", target, c.Target)
	}
	if d := c.Distance(); d < dist-1e-3 || d > dist+1e-3 {
		t.Errorf("drag changed distance: %v -> %v", dist, d)
	}
	if c.Eye.ApproxEqual(math.Vec3{X: 10, Y: 14, Z: 10}, 1e-3) {
		t.Error("drag should move the eye")
	}
}

func TestOrbitYawPreservesHeight(t *testing.T) {
	c := newTestCamera()

	c.Orbit(math.Vec2{X: 40}, 0)

	if c.Eye.Y < 14-1e-3 || c.Eye.Y > 14+1e-3 {
		t.Errorf("horizontal drag changed eye height to %v", c.Eye.Y)
	}
}

func TestOrbitPitchStopsAtPole(t *testing.T) {
	c := newTestCamera()

	for i := 0; i < 1000; i++ {
		c.Orbit(math.Vec2{Y: 10}, 0)
	}

	dir := c.Eye.Sub(c.Target).Normalize()
	if dir.Dot(worldUp) >= maxElevation || dir.Dot(worldUp) <= -maxElevation {
		t.Errorf("pitch passed the pole: elevation %v", dir.Dot(worldUp))
	}
}

func TestZoomMonotonic(t *testing.T) {
	tests := []struct {
		name string
		zoom float32
		grow bool
	}{
		{"positive grows", 1, true},
		{"negative shrinks", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCamera()
			prev := c.Distance()
			for i := 0; i < 5; i++ {
				c.Orbit(math.Vec2{}, tt.zoom)
				d := c.Distance()
				if tt.grow && d <= prev {
					t.Fatalf("step %d: distance %v did not grow from %v", i, d, prev)
				}
				if !tt.grow && d >= prev {
					t.Fatalf("step %d: distance %v did not shrink from %v", i, d, prev)
				}
				prev = d
			}
		})
	}
}

func TestZoomFactor(t *testing.T) {
	c := newTestCamera()
	dist := c.Distance()

	c.Orbit(math.Vec2{}, 2)

	want := dist * (1 + 0.05*2)
	if d := c.Distance(); d < want-1e-3 || d > want+1e-3 {
		t.Errorf("distance = %v, want %v", d, want)
	}
}

func TestZoomClamped(t *testing.T) {
	c := newTestCamera()
	c.MinDistance = 5
	c.MaxDistance = 30

	for i := 0; i < 200; i++ {
		c.Orbit(math.Vec2{}, -5)
	}
	if d := c.Distance(); d < 5-1e-3 || d > 5+1e-3 {
		t.Errorf("distance after zooming in = %v, want 5", d)
	}

	for i := 0; i < 200; i++ {
		c.Orbit(math.Vec2{}, 5)
	}
	if d := c.Distance(); d < 30-1e-3 || d > 30+1e-3 {
		t.Errorf("distance after zooming out = %v, want 30", d)
	}
}

func TestZoomOutsideRangeStaysMonotonic(t *testing.T) {
	tests := []struct {
		name      string
		eye       math.Vec3
		zoom      float32
		wantLower bool
	}{
		{"zoom in below min", math.Vec3{X: 1}, -1, true},
		{"zoom out above max", math.Vec3{X: 300}, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewOrbitCamera(tt.eye, math.Vec3{}, 1280, 720)
			c.ZoomSpeed = 0.05
			c.MinDistance = 2
			c.MaxDistance = 200

			prev := c.Distance()
			for i := 0; i < 10; i++ {
				c.Orbit(math.Vec2{}, tt.zoom)
				d := c.Distance()
				if tt.wantLower && d > prev {
					t.Fatalf("step %d: zooming in moved the eye out, %v -> %v", i, prev, d)
				}
				if !tt.wantLower && d < prev {
					t.Fatalf("step %d: zooming out moved the eye in, %v -> %v", i, prev, d)
				}
				prev = d
			}
		})
	}
}

func TestZoomBackIntoRange(t *testing.T) {
	c := NewOrbitCamera(math.Vec3{X: 1}, math.Vec3{}, 1280, 720)
	c.ZoomSpeed = 0.05
	c.MinDistance = 2
	c.MaxDistance = 200

	// Zooming out from below the range is unrestricted until MaxDistance.
	c.Orbit(math.Vec2{}, 2)
	if d := c.Distance(); d < 1.1-1e-4 || d > 1.1+1e-4 {
		t.Errorf("distance = %v, want 1.1", d)
	}
}

func TestZoomMinDistanceZero(t *testing.T) {
	c := newTestCamera()
	c.MinDistance = 0

	// A factor of 1 + 0.05*(-40) is negative.
	c.Orbit(math.Vec2{}, -40)
	if d := c.Distance(); d <= 0 {
		t.Errorf("distance = %v, eye collapsed onto the target", d)
	}
}

func TestTranslateMovesEyeAndTarget(t *testing.T) {
	c := newTestCamera()
	c.Target = math.Vec3{Y: 4}

	c.Translate(math.Vec3{X: 1, Z: -2})

	if c.Eye != (math.Vec3{X: 11, Y: 14, Z: 8}) {
		t.Errorf("eye = %v", c.Eye)
	}
	if c.Target != (math.Vec3{X: 1, Y: 4, Z: -2}) {
		t.Errorf("target = %v", c.Target)
	}
}

func TestMatricesMatchMathgl(t *testing.T) {
	c := newTestCamera()

	view := c.ViewMatrix()
	wantView := mgl32.LookAtV(mgl32.Vec3{10, 14, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	if !view.ApproxEqual(math.Mat4(wantView), 1e-4) {
		t.Errorf("view mismatch:\n got  %v\n want %v", view, wantView)
	}

	proj := c.ProjectionMatrix()
	wantProj := mgl32.Perspective(c.FovY, 1280.0/720.0, 0.01, 500)
	if !proj.ApproxEqual(math.Mat4(wantProj), 1e-4) {
		t.Errorf("projection mismatch:\n got  %v\n want %v", proj, wantProj)
	}
}

func TestAspectDegenerate(t *testing.T) {
	c := newTestCamera()
	c.Resize(800, 0)
	if c.Aspect() != 1 {
		t.Errorf("aspect for zero height = %v, want 1", c.Aspect())
	}
}
