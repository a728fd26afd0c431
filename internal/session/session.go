// Package session owns the live state of one viewer run: the input table,
// the scene, the composer and the camera rig.
//
// The frame loop feeds it discrete input events, calls Update once per frame
// and asks for a Frame to draw. Session holds no window or GL state and can
// be driven entirely from tests.
package session

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"github.com/Faultbox/heliscene/internal/config"
	"github.com/Faultbox/heliscene/internal/controls"
	"github.com/Faultbox/heliscene/internal/engine/camera"
	"github.com/Faultbox/heliscene/internal/engine/lighting"
	"github.com/Faultbox/heliscene/internal/scene"
	"github.com/Faultbox/heliscene/pkg/geometry"
	"github.com/Faultbox/heliscene/pkg/math"
)

// DrawItem is one mesh to draw this frame.
type DrawItem struct {
	Name         string
	Mesh         geometry.Kind
	Color        scene.Color
	Model        math.Mat4
	Checkerboard bool
}

// Frame holds everything the renderer needs for one frame.
type Frame struct {
	View       math.Mat4
	Projection math.Mat4
	Sun        lighting.Sun
	Items      []DrawItem
}

// Session is the explicit simulation state of a run.
type Session struct {
	log      *zap.Logger
	input    *controls.State
	bindings *controls.Bindings
	scene    *scene.Scene
	composer *scene.Composer
	rig      *camera.Rig
	sun      lighting.Sun

	frames  uint64
	elapsed float32

	quit       bool
	screenshot bool
}

// New builds a session for sc from the viewer configuration.
func New(cfg *config.Config, sc *scene.Scene, log *zap.Logger) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if sc == nil {
		return nil, fmt.Errorf("session needs a scene")
	}

	bindings, err := controls.NewBindings(cfg.Controls.Bindings)
	if err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}

	input := controls.NewState()
	rates := scene.Rates{
		LinearSpeed: cfg.Controls.LinearSpeed,
		AngularRate: math.Vec3{
			X: cfg.Controls.PitchRate,
			Y: cfg.Controls.YawRate,
			Z: cfg.Controls.RollRate,
		},
	}

	s := &Session{
		log:      log,
		input:    input,
		bindings: bindings,
		scene:    sc,
		composer: scene.NewComposer(sc, input, rates, log.Named("composer")),
		rig: camera.NewRig(
			newCamera(cfg, cfg.Camera.Origin),
			newCamera(cfg, cfg.Camera.Follow),
		),
		sun: lighting.NewSun(cfg.Lighting.Azimuth, cfg.Lighting.Elevation, cfg.Lighting.Ambient),
	}

	log.Info("session ready",
		zap.String("scene", sc.Name),
		zap.Int("bodies", sc.Len()),
		zap.Int("statics", len(sc.Statics())),
		zap.Stringer("camera", s.rig.Mode()),
	)
	return s, nil
}

func newCamera(cfg *config.Config, view config.ViewConfig) *camera.OrbitCamera {
	eye := math.Vec3{X: view.Eye[0], Y: view.Eye[1], Z: view.Eye[2]}
	target := math.Vec3{X: view.Target[0], Y: view.Target[1], Z: view.Target[2]}

	cam := camera.NewOrbitCamera(eye, target, cfg.Window.Width, cfg.Window.Height)
	cam.FovY = math.Radians(cfg.Camera.FovDegrees)
	cam.Near = cfg.Camera.Near
	cam.Far = cfg.Camera.Far
	cam.MinDistance = cfg.Camera.MinDistance
	cam.MaxDistance = cfg.Camera.MaxDistance
	cam.OrbitSpeed = cfg.Controls.OrbitSpeed
	cam.ZoomSpeed = cfg.Controls.ZoomSpeed
	return cam
}

// HandleKey routes a key press or release to its bound action.
// It reports whether the key is bound.
func (s *Session) HandleKey(key string, pressed bool) bool {
	a := s.bindings.Lookup(key)
	if a == controls.ActionNone {
		return false
	}
	s.input.SetAction(a, pressed)
	return true
}

// HandleMouseButton starts or ends an orbit drag.
func (s *Session) HandleMouseButton(down bool, x, y float32) {
	if down {
		s.input.PressButton(x, y)
		return
	}
	s.input.ReleaseButton()
}

// HandleCursor orbits the active camera while a drag is in progress.
func (s *Session) HandleCursor(x, y float32) {
	delta, ok := s.input.Drag(x, y)
	if !ok {
		return
	}
	s.rig.Active().Orbit(delta, 0)
}

// HandleScroll zooms the active camera.
func (s *Session) HandleScroll(dy float32) {
	s.rig.Active().Orbit(math.Vec2{}, dy)
}

// HandleFocusLost releases every key so nothing stays held while the
// window is in the background.
func (s *Session) HandleFocusLost() {
	s.input.Reset()
}

// Resize updates both cameras' viewport.
func (s *Session) Resize(width, height int) {
	s.rig.Resize(width, height)
}

// Update advances the session by dt seconds.
func (s *Session) Update(dt float32) {
	step := s.composer.Advance(dt)
	if !step.IsZero() {
		s.rig.Follow(step)
	}
	if dt > 0 {
		s.frames++
		s.elapsed += dt
	}

	if s.input.TakeTrigger(controls.ActionCameraOrigin) && s.rig.Select(camera.ModeOrigin) {
		s.log.Info("camera selected", zap.Stringer("mode", camera.ModeOrigin))
	}
	if s.input.TakeTrigger(controls.ActionCameraFollow) && s.rig.Select(camera.ModeFollow) {
		s.log.Info("camera selected", zap.Stringer("mode", camera.ModeFollow))
	}
	if s.input.TakeTrigger(controls.ActionCameraToggle) {
		s.log.Info("camera selected", zap.Stringer("mode", s.rig.Toggle()))
	}
	if s.input.TakeTrigger(controls.ActionScreenshot) {
		s.screenshot = true
	}
	if s.input.TakeTrigger(controls.ActionDumpState) {
		s.log.Debug("state dump\n" + s.Dump())
	}
	if s.input.TakeTrigger(controls.ActionQuit) {
		s.log.Info("quit requested")
		s.quit = true
	}
}

// RequestQuit asks the loop to stop, e.g. when the window is closed.
func (s *Session) RequestQuit() {
	s.quit = true
}

// QuitRequested reports whether the loop should stop.
func (s *Session) QuitRequested() bool {
	return s.quit
}

// TakeScreenshotRequest reports and clears a pending screenshot request.
func (s *Session) TakeScreenshotRequest() bool {
	req := s.screenshot
	s.screenshot = false
	return req
}

// Rig returns the camera rig.
func (s *Session) Rig() *camera.Rig {
	return s.rig
}

// Scene returns the scene being driven.
func (s *Session) Scene() *scene.Scene {
	return s.scene
}

// Input returns the input table.
func (s *Session) Input() *controls.State {
	return s.input
}

// Frame returns the matrices and draw list for the current state.
// Statics come first, then bodies in scene order.
func (s *Session) Frame() Frame {
	view, proj := s.rig.Matrices()

	statics := s.scene.Statics()
	bodies := s.scene.Bodies()
	items := make([]DrawItem, 0, len(statics)+len(bodies))
	for _, st := range statics {
		items = append(items, DrawItem{
			Name:         st.Name,
			Mesh:         st.Mesh,
			Color:        st.Color,
			Model:        st.Model,
			Checkerboard: st.Checkerboard,
		})
	}
	for _, b := range bodies {
		items = append(items, DrawItem{
			Name:  b.Name,
			Mesh:  b.Mesh,
			Color: b.Color,
			Model: b.Model(),
		})
	}

	return Frame{View: view, Projection: proj, Sun: s.sun, Items: items}
}

// BodyState is the dumped state of one body.
type BodyState struct {
	Name     string
	Role     scene.Role
	Position math.Vec3
	Rotation math.Mat4
}

// Snapshot is a plain-data view of the session for debugging.
type Snapshot struct {
	Frames  uint64
	Elapsed float32
	Idle    bool // no movement or turn key held
	Camera  string
	Eye     math.Vec3
	Target  math.Vec3
	Bodies  []BodyState
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	cam := s.rig.Active()
	snap := Snapshot{
		Frames:  s.frames,
		Elapsed: s.elapsed,
		Idle:    !s.input.AnyHeld(),
		Camera:  s.rig.Mode().String(),
		Eye:     cam.Eye,
		Target:  cam.Target,
	}
	for _, b := range s.scene.Bodies() {
		snap.Bodies = append(snap.Bodies, BodyState{
			Name:     b.Name,
			Role:     b.Role,
			Position: b.Position(),
			Rotation: b.Rotation(),
		})
	}
	return snap
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisableCapacities:       true,
	DisablePointerAddresses: true,
	SortKeys:                true,
}

// Dump renders the current snapshot as text.
func (s *Session) Dump() string {
	return dumpConfig.Sdump(s.Snapshot())
}
