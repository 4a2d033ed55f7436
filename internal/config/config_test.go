package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.PixelRatio != 2 {
		t.Errorf("expected pixel ratio 2, got %v", cfg.Window.PixelRatio)
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Scene.Sphere.Radius != 3 || cfg.Scene.Sphere.WidthSegments != 64 || cfg.Scene.Sphere.HeightSegments != 64 {
		t.Errorf("unexpected sphere %+v", cfg.Scene.Sphere)
	}
	if cfg.Scene.Color != "#00ff83" {
		t.Errorf("expected color #00ff83, got %s", cfg.Scene.Color)
	}
	if cfg.Scene.Light.Intensity != 1.25 || cfg.Scene.Light.Distance != 100 {
		t.Errorf("unexpected light %+v", cfg.Scene.Light)
	}
	if cfg.Scene.Camera.Fov != 50 || cfg.Scene.Camera.Distance != 20 {
		t.Errorf("unexpected camera %+v", cfg.Scene.Camera)
	}

	c := cfg.Controls
	if !c.Damping || c.Pan || c.Zoom || !c.AutoRotate || c.AutoRotateSpeed != 3 {
		t.Errorf("unexpected controls %+v", c)
	}

	if cfg.Timeline.Duration != 1800*time.Millisecond {
		t.Errorf("expected timeline duration 1.8s, got %v", cfg.Timeline.Duration)
	}
	if cfg.Interaction.Blue != 150 || cfg.Interaction.ColorDuration != 500*time.Millisecond {
		t.Errorf("unexpected interaction %+v", cfg.Interaction)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

scene:
  color: "#ff0000"
  light:
    intensity: 2
    position: {x: 1, y: 2, z: 3}

controls:
  auto_rotate_speed: 5

timeline:
  duration: 900ms

interaction:
  color_duration: 250ms

logging:
  level: "debug"
  log_file: "glowsphere.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Window.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Scene.Color != "#ff0000" {
		t.Errorf("expected color #ff0000, got %s", cfg.Scene.Color)
	}
	if got := cfg.Scene.Light.Position; got != (Vec3{1, 2, 3}) {
		t.Errorf("expected light position {1 2 3}, got %+v", got)
	}
	// Keys missing from the file keep their defaults.
	if cfg.Scene.Light.Distance != 100 {
		t.Errorf("expected light distance 100, got %v", cfg.Scene.Light.Distance)
	}
	if cfg.Controls.AutoRotateSpeed != 5 {
		t.Errorf("expected auto rotate speed 5, got %v", cfg.Controls.AutoRotateSpeed)
	}
	if cfg.Timeline.Duration != 900*time.Millisecond {
		t.Errorf("expected timeline duration 900ms, got %v", cfg.Timeline.Duration)
	}
	if cfg.Interaction.ColorDuration != 250*time.Millisecond {
		t.Errorf("expected color duration 250ms, got %v", cfg.Interaction.ColorDuration)
	}
	if cfg.Logging.LogFile != "glowsphere.log" {
		t.Errorf("expected log file 'glowsphere.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }, "window size"},
		{"negative height", func(c *Config) { c.Window.Height = -5 }, "window size"},
		{"zero pixel ratio", func(c *Config) { c.Window.PixelRatio = 0 }, "pixel_ratio"},
		{"flat sphere", func(c *Config) { c.Scene.Sphere.HeightSegments = 1 }, "segments"},
		{"bad color", func(c *Config) { c.Scene.Color = "green" }, "scene.color"},
		{"bad background", func(c *Config) { c.Scene.Background = "black" }, "scene.background"},
		{"rough", func(c *Config) { c.Scene.Roughness = 2 }, "roughness"},
		{"far before near", func(c *Config) { c.Scene.Camera.Far = 0.0001 }, "near/far"},
		{"unknown ease", func(c *Config) { c.Timeline.Ease = "elastic.wobble" }, "timeline.ease"},
		{"blue overflow", func(c *Config) { c.Interaction.Blue = 300 }, "interaction.blue"},
		{"unknown level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not mention %s", err, tt.field)
			}
		})
	}
}

func TestValidateAllowsEmptyBackground(t *testing.T) {
	cfg := Default()
	cfg.Scene.Background = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate with empty background: %v", err)
	}
}

func TestValidateReportsAll(t *testing.T) {
	cfg := Default()
	cfg.Window.Width = 0
	cfg.Scene.Color = "nope"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"window size", "scene.color"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWd) })
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", tmpDir)
	t.Setenv("APPDATA", filepath.Join(tmpDir, "appdata"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, FileName), []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Errorf("expected to find %s in current directory", FileName)
	}
}

func parseFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f := BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return f
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		verify func(*testing.T, *Config)
	}{
		{
			name: "debug flag",
			args: []string{"--debug"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Debug.ShowFPS {
					t.Error("expected show_fps to be enabled with debug flag")
				}
			},
		},
		{
			name: "windowed flag",
			args: []string{"--windowed"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
		},
		{
			name: "fullscreen flag",
			args: []string{"--fullscreen"},
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
		},
		{
			name: "width and height flags",
			args: []string{"--width", "2560", "--height=1440"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 2560 || cfg.Window.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			parseFlags(t, tt.args...).apply(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	flags := parseFlags(t, "-c", configPath, "--width", "1920")
	cfg, used, err := Load(flags)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if used != configPath {
		t.Errorf("expected config path %s, got %s", configPath, used)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	// Height should be from file (900) since no flag override
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  pixel_ratio: -1\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, _, err := Load(parseFlags(t, "--config", configPath))
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Window.Width = 1024
	cfg.Overlay.Title = "Hello"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}
	if loaded.Window.Width != 1024 || loaded.Overlay.Title != "Hello" {
		t.Errorf("round trip lost values: %+v %+v", loaded.Window, loaded.Overlay)
	}
	if loaded.Timeline.Duration != cfg.Timeline.Duration {
		t.Errorf("duration = %v, want %v", loaded.Timeline.Duration, cfg.Timeline.Duration)
	}
}
