// Command glowsphere opens a window with a lit, slowly spinning sphere.
// Drag to rotate it and recolor it; F11 toggles fullscreen, F12 saves a
// screenshot, Escape quits.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/glowsphere/internal/app"
	"github.com/Faultbox/glowsphere/internal/config"
	"github.com/Faultbox/glowsphere/internal/engine/renderer"
	"github.com/Faultbox/glowsphere/internal/engine/ui2d"
	"github.com/Faultbox/glowsphere/internal/engine/window"
	"github.com/Faultbox/glowsphere/internal/logger"
)

func init() {
	// SDL and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

var flags *config.Flags

var rootCmd = &cobra.Command{
	Use:           "glowsphere",
	Short:         "A lit sphere you can spin and recolor",
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, path, err := config.Load(flags)
		if err != nil {
			return err
		}
		if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
			return err
		}
		defer logger.Sync()

		logger.Info("=== glowsphere ===", zap.String("config", path))

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return run(ctx, cfg)
	},
}

func init() {
	flags = config.BindFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(configCmd)
}

func run(ctx context.Context, cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}

	w, h := win.Size()
	rend, err := renderer.New(renderer.Config{Width: w, Height: h, PixelRatio: cfg.Window.PixelRatio})
	if err != nil {
		win.Close()
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	deps := app.Deps{Window: win, Renderer: rend}
	if cfg.Overlay.Enabled {
		ov, err := ui2d.New(w, h)
		if err != nil {
			rend.Close()
			win.Close()
			return fmt.Errorf("failed to create overlay: %w", err)
		}
		deps.Overlay = ov
	}

	a, err := app.New(cfg, deps)
	if err != nil {
		if deps.Overlay != nil {
			deps.Overlay.Close()
		}
		rend.Close()
		win.Close()
		return err
	}
	defer a.Close()

	return a.Run(ctx)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("glowsphere failed", zap.Error(err))
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
