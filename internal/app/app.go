// Package app wires the window, renderer and session into the frame loop.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/heliscene/internal/assets"
	"github.com/Faultbox/heliscene/internal/config"
	"github.com/Faultbox/heliscene/internal/engine/debug"
	"github.com/Faultbox/heliscene/internal/engine/input"
	"github.com/Faultbox/heliscene/internal/engine/renderer"
	"github.com/Faultbox/heliscene/internal/engine/shader"
	"github.com/Faultbox/heliscene/internal/engine/window"
	"github.com/Faultbox/heliscene/internal/logger"
	"github.com/Faultbox/heliscene/internal/scene"
	"github.com/Faultbox/heliscene/internal/session"
)

// maxFrameTime caps dt so a stalled frame (window drag, breakpoint) does
// not teleport the helicopter.
const maxFrameTime = 0.25

// App is the running viewer.
type App struct {
	config      *config.Config
	log         *zap.Logger
	assets      *assets.Manager
	window      *window.Window
	renderer    *renderer.Renderer
	input       *input.Input
	session     *session.Session
	screenshots *debug.Screenshotter
}

// New creates the window and everything that draws into it.
func New(cfg *config.Config) (*App, error) {
	log := logger.Named("app")
	log.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	a := &App{
		config:      cfg,
		log:         log,
		assets:      assets.NewManager(logger.Named("assets")),
		input:       input.New(),
		screenshots: debug.NewScreenshotter(cfg.Screenshots.Dir, cfg.Screenshots.Prefix),
	}

	for _, dir := range cfg.Shaders.SearchDirs {
		if err := a.assets.AddDir(dir); err != nil {
			log.Warn("skipping search dir", zap.String("dir", dir), zap.Error(err))
		}
	}

	sc, err := LoadScene(a.assets, cfg.Scene.Path)
	if err != nil {
		return nil, fmt.Errorf("loading scene: %w", err)
	}

	a.session, err = session.New(cfg, sc, logger.Named("session"))
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	// Window also creates the OpenGL context
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	}, logger.Named("window"))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	if err := renderer.Init(); err != nil {
		a.window.Close()
		return nil, err
	}

	program, err := shader.Load(a.assets.LoadString, cfg.Shaders.Vertex, cfg.Shaders.Fragment)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to build shader: %w", err)
	}

	width, height := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{Width: width, Height: height}, program, logger.Named("renderer"))
	if err != nil {
		program.Delete()
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	a.session.Resize(width, height)

	log.Info("viewer initialized", zap.String("scene", sc.Name))
	return a, nil
}

// LoadScene returns the built-in helicopter for an empty path, otherwise
// the definition at path.
func LoadScene(m *assets.Manager, path string) (*scene.Scene, error) {
	def := scene.DefaultDefinition()
	if path != "" {
		data, err := m.Load(path)
		if err != nil {
			return nil, err
		}
		if def, err = scene.ParseDefinition(data); err != nil {
			return nil, err
		}
	}
	return def.Build()
}

// Run runs the frame loop until the window closes or quit is requested.
func (a *App) Run() error {
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting frame loop")

	for !a.session.QuitRequested() {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now
		if dt > maxFrameTime {
			dt = maxFrameTime
		}

		// 1. Process input
		if a.input.Update() {
			a.session.RequestQuit()
		}
		for _, ev := range a.input.Events() {
			a.handle(ev)
		}

		// 2. Advance the scene
		a.session.Update(float32(dt))

		// 3. Render
		a.renderer.Draw(a.session.Frame())
		if a.session.TakeScreenshotRequest() {
			a.screenshot()
		}

		// 4. Present
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frameCount), zap.Duration("dt", time.Duration(dt*float64(time.Second))))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	a.log.Info("frame loop stopped")
	return nil
}

func (a *App) handle(ev input.Event) {
	switch ev.Type {
	case input.EventWindowResize:
		width, height := a.window.DrawableSize()
		a.renderer.Resize(width, height)
		a.session.Resize(width, height)
	case input.EventFocusLost:
		a.session.HandleFocusLost()
	case input.EventKeyDown:
		a.session.HandleKey(ev.KeyName, true)
	case input.EventKeyUp:
		a.session.HandleKey(ev.KeyName, false)
	case input.EventMouseDown:
		if ev.Button == input.ButtonLeft {
			a.session.HandleMouseButton(true, ev.MouseX, ev.MouseY)
		}
	case input.EventMouseUp:
		if ev.Button == input.ButtonLeft {
			a.session.HandleMouseButton(false, ev.MouseX, ev.MouseY)
		}
	case input.EventMouseMove:
		a.session.HandleCursor(ev.MouseX, ev.MouseY)
	case input.EventMouseWheel:
		a.session.HandleScroll(ev.WheelY)
	}
}

func (a *App) screenshot() {
	pixels, width, height := a.renderer.ReadPixels()
	name, err := a.screenshots.Save(pixels, width, height)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("file", name))
}

// Close releases the window and GPU resources.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
	a.assets.Close()
}
