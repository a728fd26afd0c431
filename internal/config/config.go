// Package config handles viewer configuration loading and management.
package config

import (
	"fmt"
	"math"
)

// Config holds all viewer settings.
type Config struct {
	Window      WindowConfig     `yaml:"window"`
	Controls    ControlsConfig   `yaml:"controls"`
	Camera      CameraConfig     `yaml:"camera"`
	Scene       SceneConfig      `yaml:"scene"`
	Lighting    LightingConfig   `yaml:"lighting"`
	Shaders     ShaderConfig     `yaml:"shaders"`
	Screenshots ScreenshotConfig `yaml:"screenshots"`
	Logging     LoggingConfig    `yaml:"logging"`

	// Source is the file the settings were read from, empty for defaults.
	Source string `yaml:"-"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// ControlsConfig holds input sensitivity and key bindings.
type ControlsConfig struct {
	LinearSpeed float32 `yaml:"linear_speed"` // units per second
	PitchRate   float32 `yaml:"pitch_rate"`   // radians per second
	YawRate     float32 `yaml:"yaw_rate"`
	RollRate    float32 `yaml:"roll_rate"`
	OrbitSpeed  float32 `yaml:"orbit_speed"` // radians per pixel of drag
	ZoomSpeed   float32 `yaml:"zoom_speed"`  // distance fraction per scroll step

	// Bindings overrides the default layout, action name -> key name.
	Bindings map[string]string `yaml:"bindings"`
}

// CameraConfig holds projection settings and the two camera placements.
type CameraConfig struct {
	FovDegrees  float32    `yaml:"fov_degrees"`
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
	MinDistance float32    `yaml:"min_distance"`
	MaxDistance float32    `yaml:"max_distance"`
	Origin      ViewConfig `yaml:"origin"`
	Follow      ViewConfig `yaml:"follow"`
}

// ViewConfig places a camera.
type ViewConfig struct {
	Eye    [3]float32 `yaml:"eye"`
	Target [3]float32 `yaml:"target"`
}

// SceneConfig selects the scene definition.
type SceneConfig struct {
	Path string `yaml:"path"` // empty means the built-in helicopter
}

// LightingConfig places the sun, angles in degrees.
type LightingConfig struct {
	Azimuth   float32 `yaml:"azimuth"`
	Elevation float32 `yaml:"elevation"`
	Ambient   float32 `yaml:"ambient"`
}

// ShaderConfig holds the shader source pair.
type ShaderConfig struct {
	Vertex     string   `yaml:"vertex"`
	Fragment   string   `yaml:"fragment"`
	SearchDirs []string `yaml:"search_dirs"`
}

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "heliscene",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Controls: ControlsConfig{
			LinearSpeed: 1.0,
			PitchRate:   0.6,
			YawRate:     1.8,
			RollRate:    0.6,
			OrbitSpeed:  0.01,
			ZoomSpeed:   0.05,
		},
		Camera: CameraConfig{
			FovDegrees:  45,
			Near:        0.01,
			Far:         500,
			MinDistance: 2,
			MaxDistance: 200,
			Origin: ViewConfig{
				Eye:    [3]float32{10, 14, 10},
				Target: [3]float32{0, 0, 0},
			},
			Follow: ViewConfig{
				Eye:    [3]float32{10, 14, 10},
				Target: [3]float32{0, 4, 0},
			},
		},
		Lighting: LightingConfig{
			Azimuth:   35,
			Elevation: 60,
			Ambient:   0.4,
		},
		Shaders: ShaderConfig{
			Vertex:     "shader/default.vert",
			Fragment:   "shader/default.frag",
			SearchDirs: []string{"."},
		},
		Screenshots: ScreenshotConfig{
			Dir:    "",
			Prefix: "screenshot",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate rejects settings the viewer cannot run with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Camera.FovDegrees <= 0 || c.Camera.FovDegrees >= 180 {
		return fmt.Errorf("camera fov must be in (0, 180), got %v", c.Camera.FovDegrees)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera clip planes must satisfy 0 < near < far, got %v/%v", c.Camera.Near, c.Camera.Far)
	}
	if c.Camera.MaxDistance > 0 && c.Camera.MaxDistance < c.Camera.MinDistance {
		return fmt.Errorf("camera max distance %v below min distance %v", c.Camera.MaxDistance, c.Camera.MinDistance)
	}
	for _, view := range []struct {
		name string
		cfg  ViewConfig
	}{
		{"origin", c.Camera.Origin},
		{"follow", c.Camera.Follow},
	} {
		d := view.cfg.distance()
		if d == 0 {
			return fmt.Errorf("camera %s eye and target coincide", view.name)
		}
		if d < c.Camera.MinDistance || (c.Camera.MaxDistance > 0 && d > c.Camera.MaxDistance) {
			return fmt.Errorf("camera %s distance %.3g outside [%v, %v]", view.name, d, c.Camera.MinDistance, c.Camera.MaxDistance)
		}
	}
	if c.Controls.LinearSpeed < 0 {
		return fmt.Errorf("linear speed must not be negative, got %v", c.Controls.LinearSpeed)
	}
	if c.Lighting.Ambient < 0 || c.Lighting.Ambient > 1 {
		return fmt.Errorf("lighting ambient must be in [0, 1], got %v", c.Lighting.Ambient)
	}
	if c.Shaders.Vertex == "" || c.Shaders.Fragment == "" {
		return fmt.Errorf("both shader paths are required")
	}
	return nil
}

// distance returns the eye-to-target distance of a camera placement.
func (v ViewConfig) distance() float32 {
	var sum float64
	for i := range v.Eye {
		d := float64(v.Eye[i] - v.Target[i])
		sum += d * d
	}
	return float32(math.Sqrt(sum))
}
