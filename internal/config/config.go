// Package config handles glowsphere configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/glowsphere/internal/engine/tween"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all settings.
type Config struct {
	Window      WindowConfig      `yaml:"window"`
	Scene       SceneConfig       `yaml:"scene"`
	Controls    ControlsConfig    `yaml:"controls"`
	Timeline    TimelineConfig    `yaml:"timeline"`
	Interaction InteractionConfig `yaml:"interaction"`
	Overlay     OverlayConfig     `yaml:"overlay"`
	Logging     LoggingConfig     `yaml:"logging"`
	Debug       DebugConfig       `yaml:"debug"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string  `yaml:"title"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	PixelRatio float64 `yaml:"pixel_ratio"`
}

// Vec3 is a position in world units.
type Vec3 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// SphereConfig describes the sphere geometry.
type SphereConfig struct {
	Radius         float32 `yaml:"radius"`
	WidthSegments  int     `yaml:"width_segments"`
	HeightSegments int     `yaml:"height_segments"`
}

// LightConfig describes the point light.
type LightConfig struct {
	Color     string  `yaml:"color"`
	Intensity float32 `yaml:"intensity"`
	Distance  float32 `yaml:"distance"`
	Decay     float32 `yaml:"decay"`
	Position  Vec3    `yaml:"position"`
}

// CameraConfig describes the perspective camera.
type CameraConfig struct {
	Fov      float32 `yaml:"fov"` // vertical, degrees
	Near     float32 `yaml:"near"`
	Far      float32 `yaml:"far"`
	Distance float32 `yaml:"distance"`
}

// SceneConfig holds the scene contents.
type SceneConfig struct {
	Sphere     SphereConfig `yaml:"sphere"`
	Color      string       `yaml:"color"`
	Roughness  float32      `yaml:"roughness"`
	Background string       `yaml:"background"` // empty means black
	Light      LightConfig  `yaml:"light"`
	Camera     CameraConfig `yaml:"camera"`
}

// ControlsConfig holds orbit control settings.
type ControlsConfig struct {
	Damping          bool    `yaml:"damping"`
	DampingFrequency float64 `yaml:"damping_frequency"`
	DampingRatio     float64 `yaml:"damping_ratio"`
	Pan              bool    `yaml:"pan"`
	Zoom             bool    `yaml:"zoom"`
	AutoRotate       bool    `yaml:"auto_rotate"`
	AutoRotateSpeed  float32 `yaml:"auto_rotate_speed"`
	RotateSpeed      float32 `yaml:"rotate_speed"`
}

// TimelineConfig holds the entrance animation settings.
type TimelineConfig struct {
	Duration time.Duration `yaml:"duration"` // per tween
	Ease     string        `yaml:"ease"`
}

// InteractionConfig holds the drag-to-recolor settings.
type InteractionConfig struct {
	Blue          int           `yaml:"blue"`
	Clamp         bool          `yaml:"clamp"`
	ColorDuration time.Duration `yaml:"color_duration"`
}

// OverlayConfig holds the nav bar and title content.
type OverlayConfig struct {
	Enabled bool     `yaml:"enabled"`
	Brand   string   `yaml:"brand"`
	Links   []string `yaml:"links"`
	Title   string   `yaml:"title"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DebugConfig holds developer settings.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"`
	ShowFPS       bool   `yaml:"show_fps"`
}

// Default returns a Config with the stock scene.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "glowsphere",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			PixelRatio: 2,
		},
		Scene: SceneConfig{
			Sphere:     SphereConfig{Radius: 3, WidthSegments: 64, HeightSegments: 64},
			Color:      "#00ff83",
			Roughness:  0.5,
			Background: "#000000",
			Light: LightConfig{
				Color:     "#ffffff",
				Intensity: 1.25,
				Distance:  100,
				Decay:     2,
				Position:  Vec3{X: 0, Y: 10, Z: 10},
			},
			Camera: CameraConfig{Fov: 50, Near: 0.001, Far: 1000, Distance: 20},
		},
		Controls: ControlsConfig{
			Damping:          true,
			DampingFrequency: 6,
			DampingRatio:     1,
			Pan:              false,
			Zoom:             false,
			AutoRotate:       true,
			AutoRotateSpeed:  3,
			RotateSpeed:      1,
		},
		Timeline: TimelineConfig{
			Duration: 1800 * time.Millisecond,
			Ease:     "power1.out",
		},
		Interaction: InteractionConfig{
			Blue:          150,
			Clamp:         true,
			ColorDuration: tween.DefaultDuration,
		},
		Overlay: OverlayConfig{
			Enabled: true,
			Brand:   "Sphere",
			Links:   []string{"Explore", "Create"},
			Title:   "Give it a spin",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
			ShowFPS:       false,
		},
	}
}

// Validate reports every invalid setting. Each error wraps ErrInvalid.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}
	hex := func(field, value string) {
		_, err := colorful.Hex(value)
		check(err == nil, "%s %q is not a #rrggbb color", field, value)
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	check(c.Window.PixelRatio > 0, "window.pixel_ratio %g must be positive", c.Window.PixelRatio)

	s := c.Scene
	check(s.Sphere.Radius > 0, "scene.sphere.radius %g must be positive", s.Sphere.Radius)
	check(s.Sphere.WidthSegments >= 3 && s.Sphere.HeightSegments >= 2,
		"scene.sphere segments %dx%d below 3x2", s.Sphere.WidthSegments, s.Sphere.HeightSegments)
	hex("scene.color", s.Color)
	if s.Background != "" {
		hex("scene.background", s.Background)
	}
	hex("scene.light.color", s.Light.Color)
	check(s.Roughness >= 0 && s.Roughness <= 1, "scene.roughness %g outside [0,1]", s.Roughness)
	check(s.Light.Intensity >= 0, "scene.light.intensity %g is negative", s.Light.Intensity)
	check(s.Light.Decay >= 0, "scene.light.decay %g is negative", s.Light.Decay)
	check(s.Camera.Fov > 0 && s.Camera.Fov < 180, "scene.camera.fov %g outside (0,180)", s.Camera.Fov)
	check(s.Camera.Near > 0 && s.Camera.Far > s.Camera.Near,
		"scene.camera near/far %g/%g must satisfy 0 < near < far", s.Camera.Near, s.Camera.Far)
	check(s.Camera.Distance > 0, "scene.camera.distance %g must be positive", s.Camera.Distance)

	check(c.Controls.DampingFrequency > 0, "controls.damping_frequency %g must be positive", c.Controls.DampingFrequency)
	check(c.Controls.DampingRatio > 0, "controls.damping_ratio %g must be positive", c.Controls.DampingRatio)

	check(c.Timeline.Duration >= 0, "timeline.duration %v is negative", c.Timeline.Duration)
	_, err := tween.EaseByName(c.Timeline.Ease)
	check(err == nil, "timeline.ease: %v", err)

	check(c.Interaction.Blue >= 0 && c.Interaction.Blue <= 255, "interaction.blue %d outside [0,255]", c.Interaction.Blue)
	check(c.Interaction.ColorDuration >= 0, "interaction.color_duration %v is negative", c.Interaction.ColorDuration)

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		check(false, "logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}

	return errors.Join(errs...)
}
