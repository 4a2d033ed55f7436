// Package app wires the scene, controls, animations and input into the
// render loop. It depends on the window and GL renderers only through
// small interfaces, so the loop runs headless in tests.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/glowsphere/internal/config"
	"github.com/Faultbox/glowsphere/internal/engine/camera"
	"github.com/Faultbox/glowsphere/internal/engine/debug"
	"github.com/Faultbox/glowsphere/internal/engine/input"
	"github.com/Faultbox/glowsphere/internal/engine/overlay"
	"github.com/Faultbox/glowsphere/internal/engine/scene"
	"github.com/Faultbox/glowsphere/internal/engine/tween"
	"github.com/Faultbox/glowsphere/internal/engine/viewport"
	"github.com/Faultbox/glowsphere/internal/logger"
)

// Window is the platform surface the app draws into.
type Window interface {
	PollEvents(dst []input.Event) []input.Event
	SwapBuffers()
	Size() (int, int)
	DrawableSize() (int, int)
	ToggleFullscreen()
	Close()
}

// SceneRenderer draws the 3D scene.
type SceneRenderer interface {
	SetSize(width, height int)
	SetPixelRatio(ratio float64)
	SetDrawableSize(width, height int)
	Render(s *scene.Scene, cam *camera.Perspective) error
	Present()
	Snapshot() (pixels []byte, width, height int)
	Close()
}

// OverlayRenderer draws the 2D nav bar and title over the scene.
type OverlayRenderer interface {
	overlay.Measurer
	Resize(width, height int)
	Begin()
	DrawFrame(f overlay.Frame)
	End()
	Close()
}

// Controller is the camera interaction driven once per frame.
type Controller interface {
	Update() bool
	SetViewportSize(width, height int)
	PointerDown(button uint8, x, y float32)
	PointerMove(x, y float32)
	PointerUp()
	Wheel(delta float32)
}

// Deps are the platform services the app runs on. Overlay may be nil.
type Deps struct {
	Window   Window
	Renderer SceneRenderer
	Overlay  OverlayRenderer
	// Controls replaces the orbit controls; tests use it.
	Controls Controller
	// Now replaces the wall clock; tests use it.
	Now func() time.Time
}

// App owns the scene and runs the frame loop.
type App struct {
	cfg  *config.Config
	deps Deps

	world       *World
	controls    Controller
	tweens      *tween.Engine
	timeline    *tween.Timeline
	overlay     overlay.State
	style       overlay.Style
	interaction *Interaction
	view        viewport.Viewport

	dispatcher *input.Dispatcher
	subs       []input.Subscription
	events     []input.Event

	screenshots *debug.ScreenshotCapture
	fps         *debug.FPSCounter

	lastFrame time.Time
	hidden    bool
	quit      bool
	capture   bool
	frames    uint64
	closed    bool
}

// New builds the scene, starts the entrance timeline and renders the first
// frame.
func New(cfg *config.Config, deps Deps) (*App, error) {
	if deps.Window == nil || deps.Renderer == nil {
		return nil, errors.New("app: window and renderer are required")
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	w, h := deps.Window.Size()
	view := viewport.New(w, h)
	if !view.Valid() {
		return nil, fmt.Errorf("app: window size %dx%d is not drawable", w, h)
	}

	world, err := NewWorld(cfg.Scene, view.Aspect())
	if err != nil {
		return nil, fmt.Errorf("building scene: %w", err)
	}

	a := &App{
		cfg:         cfg,
		deps:        deps,
		world:       world,
		tweens:      tween.NewEngine(),
		view:        view,
		dispatcher:  input.NewDispatcher(),
		screenshots: debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "glowsphere"),
		fps:         debug.NewFPSCounter(time.Second),
		overlay:     overlay.State{NavOffset: 0, TitleOpacity: 1},
	}

	a.controls = deps.Controls
	if a.controls == nil {
		a.controls = NewControls(world.Camera, cfg.Controls)
	}

	a.style = overlay.DefaultStyle()
	a.style.Brand = cfg.Overlay.Brand
	a.style.Links = cfg.Overlay.Links
	a.style.Title = cfg.Overlay.Title

	if err := a.startTimeline(); err != nil {
		return nil, err
	}

	a.interaction = NewInteraction(&a.view, world.Mesh.Material, a.tweens,
		uint8(cfg.Interaction.Blue), cfg.Interaction.Clamp, cfg.Interaction.ColorDuration)
	a.subscribe()

	deps.Renderer.SetPixelRatio(cfg.Window.PixelRatio)
	a.resize(w, h)

	if err := a.render(); err != nil {
		return nil, err
	}
	logger.Info("app initialized",
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Int("vertices", len(world.Mesh.Geometry.Vertices)),
		zap.Duration("timeline", a.timeline.Duration()),
	)
	return a, nil
}

// startTimeline queues the entrance: sphere grows, nav slides in, title
// fades in, one after another.
func (a *App) startTimeline() error {
	ease, err := tween.EaseByName(a.cfg.Timeline.Ease)
	if err != nil {
		return err
	}
	tl := tween.NewTimeline(tween.WithDuration(a.cfg.Timeline.Duration), tween.WithEase(ease))
	mesh := a.world.Mesh
	scale := &tween.Accessor{Get: mesh.ScaleChannels, Set: mesh.SetScaleChannels}
	tl.FromTo(scale, []float64{0, 0, 0}, []float64{1, 1, 1})
	tl.FromTo(a.overlay.NavTarget(), []float64{-1}, []float64{0})
	tl.FromTo(a.overlay.TitleTarget(), []float64{0}, []float64{1},
		tween.OnComplete(func() { logger.Debug("entrance timeline complete") }))
	a.timeline = tl
	a.tweens.Add(tl)
	return nil
}

func (a *App) subscribe() {
	on := func(t input.EventType, fn func(input.Event)) {
		a.subs = append(a.subs, a.dispatcher.Subscribe(t, input.ListenerFunc(fn)))
	}

	on(input.EventQuit, func(input.Event) { a.quit = true })
	on(input.EventWindowResize, func(e input.Event) { a.resize(e.Width, e.Height) })
	on(input.EventWindowHidden, func(input.Event) {
		a.hidden = true
		logger.Debug("window hidden, pausing")
	})
	on(input.EventWindowShown, func(input.Event) {
		a.hidden = false
		a.lastFrame = time.Time{}
		a.fps.Reset()
		logger.Debug("window shown, resuming")
	})
	on(input.EventKeyDown, a.onKey)

	on(input.EventMouseDown, func(e input.Event) { a.controls.PointerDown(e.Button, e.MouseX, e.MouseY) })
	on(input.EventMouseMove, func(e input.Event) { a.controls.PointerMove(e.MouseX, e.MouseY) })
	on(input.EventMouseUp, func(input.Event) { a.controls.PointerUp() })
	on(input.EventMouseWheel, func(e input.Event) { a.controls.Wheel(e.Wheel) })

	for _, t := range []input.EventType{input.EventMouseDown, input.EventMouseUp, input.EventMouseMove} {
		a.subs = append(a.subs, a.dispatcher.Subscribe(t, a.interaction))
	}
}

func (a *App) onKey(e input.Event) {
	switch e.Key {
	case input.KeyEscape:
		a.quit = true
	case input.KeyF11:
		a.deps.Window.ToggleFullscreen()
	case input.KeyF12:
		a.capture = true
	}
}

// resize applies a new logical window size. Non-positive sizes are ignored.
func (a *App) resize(width, height int) {
	if width <= 0 || height <= 0 {
		logger.Debug("ignoring empty resize", zap.Int("width", width), zap.Int("height", height))
		return
	}
	a.view.SetSize(width, height)

	cam := a.world.Camera
	cam.Aspect = float32(width) / float32(height)
	cam.UpdateProjectionMatrix()

	a.deps.Renderer.SetSize(width, height)
	a.deps.Renderer.SetDrawableSize(a.deps.Window.DrawableSize())
	a.controls.SetViewportSize(width, height)
	if a.deps.Overlay != nil {
		a.deps.Overlay.Resize(width, height)
	}
}

// Run drives frames until ctx is cancelled, the window is closed or
// Escape is pressed.
func (a *App) Run(ctx context.Context) error {
	logger.Info("starting render loop")
	defer logger.Info("render loop stopped", zap.Uint64("frames", a.frames))

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		if err := a.tick(); err != nil {
			return err
		}
		if a.quit {
			return nil
		}
	}
}

// tick processes pending events and, unless the window is hidden, runs one
// frame: controls, animations, render, present.
func (a *App) tick() error {
	a.events = a.deps.Window.PollEvents(a.events[:0])
	for _, e := range a.events {
		a.dispatcher.Dispatch(e)
	}
	if a.quit || a.hidden {
		return nil
	}

	now := a.deps.Now()
	var dt time.Duration
	if !a.lastFrame.IsZero() {
		dt = now.Sub(a.lastFrame)
	}
	a.lastFrame = now

	a.controls.Update()
	a.tweens.Advance(dt)

	if err := a.render(); err != nil {
		return err
	}
	a.frames++

	if a.cfg.Debug.ShowFPS {
		if fps, ok := a.fps.Frame(now); ok {
			logger.Debug("fps", zap.Float64("fps", fps), zap.Duration("dt", dt))
		}
	}
	return nil
}

func (a *App) render() error {
	if err := a.deps.Renderer.Render(a.world.Scene, a.world.Camera); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if o := a.deps.Overlay; o != nil {
		o.Begin()
		o.DrawFrame(overlay.Layout(a.overlay, a.style, a.view.Width, a.view.Height, o))
		o.End()
	}
	if a.capture {
		a.capture = false
		a.saveScreenshot()
	}
	a.deps.Renderer.Present()
	a.deps.Window.SwapBuffers()
	return nil
}

func (a *App) saveScreenshot() {
	pixels, w, h := a.deps.Renderer.Snapshot()
	path, err := a.screenshots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close unsubscribes every listener and releases the renderers and window.
// It is safe to call more than once.
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true
	logger.Info("closing app")

	for _, s := range a.subs {
		a.dispatcher.Unsubscribe(s)
	}
	a.subs = nil

	if a.deps.Overlay != nil {
		a.deps.Overlay.Close()
	}
	a.deps.Renderer.Close()
	a.deps.Window.Close()
}
