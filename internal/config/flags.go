package config

import "github.com/spf13/pflag"

// Flags holds command-line overrides bound to a flag set.
type Flags struct {
	Config     string
	Debug      bool
	Windowed   bool
	Fullscreen bool
	Width      int
	Height     int
}

// BindFlags registers the overrides on fs. Call before fs is parsed.
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVarP(&f.Config, "config", "c", "", "path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "enable debug logging and the FPS log")
	fs.BoolVar(&f.Windowed, "windowed", false, "run in windowed mode")
	fs.BoolVar(&f.Fullscreen, "fullscreen", false, "run in fullscreen mode")
	fs.IntVar(&f.Width, "width", 0, "window width")
	fs.IntVar(&f.Height, "height", 0, "window height")
	fs.SortFlags = false
	return f
}

// apply writes overrides into cfg. A nil Flags applies nothing.
func (f *Flags) apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
		cfg.Debug.ShowFPS = true
	}
	if f.Windowed {
		cfg.Window.Fullscreen = false
	}
	if f.Fullscreen {
		cfg.Window.Fullscreen = true
	}
	if f.Width > 0 {
		cfg.Window.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Window.Height = f.Height
	}
}

// configPath returns the explicit --config path, if any.
func (f *Flags) configPath() string {
	if f == nil {
		return ""
	}
	return f.Config
}
