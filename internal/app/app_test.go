package app

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Faultbox/glowsphere/internal/config"
	"github.com/Faultbox/glowsphere/internal/engine/camera"
	"github.com/Faultbox/glowsphere/internal/engine/input"
	"github.com/Faultbox/glowsphere/internal/engine/overlay"
	"github.com/Faultbox/glowsphere/internal/engine/scene"
)

type fakeWindow struct {
	w, h    int
	pending [][]input.Event
	swaps   int
	toggles int
	closed  int
}

func (f *fakeWindow) PollEvents(dst []input.Event) []input.Event {
	if len(f.pending) == 0 {
		return dst
	}
	batch := f.pending[0]
	f.pending = f.pending[1:]
	return append(dst, batch...)
}

func (f *fakeWindow) push(events ...input.Event) { f.pending = append(f.pending, events) }
func (f *fakeWindow) SwapBuffers()               { f.swaps++ }
func (f *fakeWindow) Size() (int, int)           { return f.w, f.h }
func (f *fakeWindow) DrawableSize() (int, int)   { return f.w * 2, f.h * 2 }
func (f *fakeWindow) ToggleFullscreen()          { f.toggles++ }
func (f *fakeWindow) Close()                     { f.closed++ }

// parkingWindow waits briefly when it has no events, the way the SDL
// window waits out its event timeout while minimized.
type parkingWindow struct {
	*fakeWindow
	parked chan struct{}
}

func (p *parkingWindow) PollEvents(dst []input.Event) []input.Event {
	if len(p.pending) > 0 {
		return p.fakeWindow.PollEvents(dst)
	}
	select {
	case p.parked <- struct{}{}:
	default:
	}
	time.Sleep(5 * time.Millisecond)
	return dst
}

type fakeRenderer struct {
	log       *[]string
	w, h      int
	dw, dh    int
	ratio     float64
	renders   int
	presents  int
	snapshots int
	closed    int
}

func (f *fakeRenderer) SetSize(w, h int)         { f.w, f.h = w, h }
func (f *fakeRenderer) SetPixelRatio(r float64)  { f.ratio = r }
func (f *fakeRenderer) SetDrawableSize(w, h int) { f.dw, f.dh = w, h }
func (f *fakeRenderer) Present()                 { f.presents++ }
func (f *fakeRenderer) Close()                   { f.closed++ }

func (f *fakeRenderer) Render(*scene.Scene, *camera.Perspective) error {
	f.renders++
	*f.log = append(*f.log, "render")
	return nil
}

func (f *fakeRenderer) Snapshot() ([]byte, int, int) {
	f.snapshots++
	return make([]byte, 2*2*4), 2, 2
}

type fakeOverlay struct {
	w, h   int
	frames []overlay.Frame
	closed int
}

func (f *fakeOverlay) Measure(text string, scale float32) (float32, float32) {
	return float32(len(text)) * 7 * scale, 13 * scale
}
func (f *fakeOverlay) Resize(w, h int)            { f.w, f.h = w, h }
func (f *fakeOverlay) Begin()                     {}
func (f *fakeOverlay) DrawFrame(fr overlay.Frame) { f.frames = append(f.frames, fr) }
func (f *fakeOverlay) End()                       {}
func (f *fakeOverlay) Close()                     { f.closed++ }

type fakeControls struct {
	log     *[]string
	updates int
	w, h    int
	downs   int
}

func (f *fakeControls) Update() bool {
	f.updates++
	*f.log = append(*f.log, "update")
	return false
}
func (f *fakeControls) SetViewportSize(w, h int)            { f.w, f.h = w, h }
func (f *fakeControls) PointerDown(uint8, float32, float32) { f.downs++ }
func (f *fakeControls) PointerMove(float32, float32)        {}
func (f *fakeControls) PointerUp()                          {}
func (f *fakeControls) Wheel(float32)                       {}

type fakeClock struct {
	t    time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

type harness struct {
	app      *App
	window   *fakeWindow
	renderer *fakeRenderer
	overlay  *fakeOverlay
	controls *fakeControls
	log      []string
}

func newHarness(t *testing.T, w, h int) *harness {
	t.Helper()
	cfg := config.Default()
	cfg.Debug.ScreenshotDir = t.TempDir()

	hs := &harness{window: &fakeWindow{w: w, h: h}, overlay: &fakeOverlay{}}
	hs.renderer = &fakeRenderer{log: &hs.log}
	hs.controls = &fakeControls{log: &hs.log}
	clock := &fakeClock{t: time.Unix(0, 0), step: 100 * time.Millisecond}

	a, err := New(cfg, Deps{
		Window:   hs.window,
		Renderer: hs.renderer,
		Overlay:  hs.overlay,
		Controls: hs.controls,
		Now:      clock.Now,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(a.Close)
	hs.app = a
	hs.log = nil
	return hs
}

func (hs *harness) tick(t *testing.T, n int) {
	t.Helper()
	for j := 0; j < n; j++ {
		if err := hs.app.tick(); err != nil {
			t.Fatalf("tick: %v", err)
		}
	}
}

func TestNewRendersOnceAndHidesEntrance(t *testing.T) {
	hs := newHarness(t, 1000, 500)

	if hs.renderer.renders != 1 || hs.window.swaps != 1 {
		t.Errorf("renders/swaps after New = %d/%d, want 1/1", hs.renderer.renders, hs.window.swaps)
	}
	if hs.renderer.ratio != 2 {
		t.Errorf("pixel ratio = %g, want 2", hs.renderer.ratio)
	}
	if s := hs.app.world.Mesh.Scale; s.X != 0 || s.Y != 0 || s.Z != 0 {
		t.Errorf("mesh scale at load = %v, want zero", s)
	}
	if hs.app.overlay.NavOffset != -1 || hs.app.overlay.TitleOpacity != 0 {
		t.Errorf("overlay at load = %+v, want nav -1, title 0", hs.app.overlay)
	}
	if len(hs.overlay.frames) != 1 {
		t.Fatalf("overlay frames = %d, want 1", len(hs.overlay.frames))
	}
	if len(hs.overlay.frames[0].Texts) != 0 {
		t.Errorf("hidden title drawn at load: %+v", hs.overlay.frames[0].Texts)
	}
}

func TestTickOrder(t *testing.T) {
	hs := newHarness(t, 800, 600)
	hs.tick(t, 3)

	want := []string{"update", "render", "update", "render", "update", "render"}
	if len(hs.log) != len(want) {
		t.Fatalf("log = %v, want %v", hs.log, want)
	}
	for i := range want {
		if hs.log[i] != want[i] {
			t.Errorf("log[%d] = %s, want %s", i, hs.log[i], want[i])
		}
	}
	if hs.renderer.presents != 4 || hs.window.swaps != 4 {
		t.Errorf("presents/swaps = %d/%d, want 4/4", hs.renderer.presents, hs.window.swaps)
	}
}

func TestEntranceTimelineCompletes(t *testing.T) {
	hs := newHarness(t, 800, 600)

	// 100ms per frame; the first tick only starts the clock.
	hs.tick(t, 10)
	if s := hs.app.world.Mesh.Scale.X; s <= 0 || s >= 1 {
		t.Errorf("mesh scale mid-entrance = %f, want in (0,1)", s)
	}
	if hs.app.overlay.NavOffset != -1 {
		t.Errorf("nav moved before sphere finished: %f", hs.app.overlay.NavOffset)
	}

	hs.tick(t, 60)
	if s := hs.app.world.Mesh.Scale; s.X != 1 || s.Y != 1 || s.Z != 1 {
		t.Errorf("mesh scale = %v, want 1", s)
	}
	if hs.app.overlay.NavOffset != 0 || hs.app.overlay.TitleOpacity != 1 {
		t.Errorf("overlay = %+v, want nav 0, title 1", hs.app.overlay)
	}
	if n := hs.app.tweens.Active(); n != 0 {
		t.Errorf("active animations = %d, want 0", n)
	}
}

func TestResize(t *testing.T) {
	hs := newHarness(t, 800, 600)

	hs.window.push(input.Event{Type: input.EventWindowResize, Width: 1000, Height: 500})
	hs.tick(t, 1)

	cam := hs.app.world.Camera
	if cam.Aspect != float32(1000)/float32(500) {
		t.Errorf("aspect = %f, want 2", cam.Aspect)
	}
	if hs.renderer.w != 1000 || hs.renderer.h != 500 {
		t.Errorf("renderer size = %dx%d, want 1000x500", hs.renderer.w, hs.renderer.h)
	}
	if hs.renderer.dw != 1600 || hs.renderer.dh != 1200 {
		t.Errorf("drawable = %dx%d, want fake window drawable", hs.renderer.dw, hs.renderer.dh)
	}
	if hs.overlay.w != 1000 || hs.controls.w != 1000 || hs.controls.h != 500 {
		t.Errorf("overlay/controls not resized")
	}
	proj := cam.ProjectionMatrix()

	hs.app.resize(1000, 500)
	if cam.ProjectionMatrix() != proj {
		t.Error("second identical resize changed the projection")
	}

	hs.app.resize(0, 500)
	hs.app.resize(1000, -1)
	if hs.app.view.Width != 1000 || hs.app.view.Height != 500 || cam.Aspect != 2 {
		t.Errorf("non-positive resize applied: view %+v aspect %f", hs.app.view, cam.Aspect)
	}
}

func TestDragRecolors(t *testing.T) {
	hs := newHarness(t, 1000, 500)
	in := hs.app.interaction

	hs.window.push(input.Event{Type: input.EventMouseMove, MouseX: 10, MouseY: 10})
	hs.tick(t, 1)
	if _, ok := in.RGB(); ok {
		t.Fatal("move without a pressed button recolored")
	}

	hs.window.push(
		input.Event{Type: input.EventMouseDown, Button: 1, MouseX: 0, MouseY: 0},
		input.Event{Type: input.EventMouseMove, MouseX: 500, MouseY: 250},
		input.Event{Type: input.EventMouseUp, Button: 1},
		input.Event{Type: input.EventMouseMove, MouseX: 900, MouseY: 100},
	)
	hs.tick(t, 1)

	rgb, ok := in.RGB()
	if !ok || rgb != [3]uint8{128, 128, 150} {
		t.Errorf("rgb = %v (%v), want [128 128 150]", rgb, ok)
	}
	if in.Dragging() {
		t.Error("still dragging after mouse up")
	}
	if hs.controls.downs != 1 {
		t.Errorf("controls saw %d pointer downs, want 1", hs.controls.downs)
	}

	hs.tick(t, 40)
	r, g, b := hs.app.world.Mesh.Material.Color.RGB255()
	if r != 128 || g != 128 || b != 150 {
		t.Errorf("material = (%d,%d,%d), want (128,128,150)", r, g, b)
	}
}

func TestRunStops(t *testing.T) {
	tests := []struct {
		name  string
		event input.Event
	}{
		{"quit", input.Event{Type: input.EventQuit}},
		{"escape", input.Event{Type: input.EventKeyDown, Key: input.KeyEscape}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hs := newHarness(t, 800, 600)
			hs.window.push()
			hs.window.push(tt.event)

			if err := hs.app.Run(context.Background()); err != nil {
				t.Fatalf("Run: %v", err)
			}
			if hs.controls.updates != 1 {
				t.Errorf("updates = %d, want 1", hs.controls.updates)
			}
		})
	}
}

func TestRunHonoursContext(t *testing.T) {
	hs := newHarness(t, 800, 600)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := hs.app.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if hs.controls.updates != 0 {
		t.Errorf("updates after cancelled context = %d, want 0", hs.controls.updates)
	}
}

func TestRunStopsWhileHidden(t *testing.T) {
	hs := newHarness(t, 800, 600)
	win := &parkingWindow{fakeWindow: hs.window, parked: make(chan struct{}, 1)}
	hs.app.deps.Window = win
	hs.window.push(input.Event{Type: input.EventWindowHidden})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- hs.app.Run(ctx) }()

	select {
	case <-win.parked:
	case <-time.After(2 * time.Second):
		t.Fatal("window never parked")
	}
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel while hidden")
	}
	if hs.controls.updates != 0 {
		t.Errorf("updates while hidden = %d, want 0", hs.controls.updates)
	}
}

func TestHiddenPausesFrames(t *testing.T) {
	hs := newHarness(t, 800, 600)

	hs.window.push(input.Event{Type: input.EventWindowHidden})
	hs.tick(t, 5)
	if hs.controls.updates != 0 || hs.renderer.renders != 1 {
		t.Errorf("hidden window ran frames: updates %d renders %d", hs.controls.updates, hs.renderer.renders)
	}

	hs.window.push(input.Event{Type: input.EventWindowShown})
	hs.tick(t, 1)
	if hs.controls.updates != 1 {
		t.Errorf("updates after show = %d, want 1", hs.controls.updates)
	}
	if s := hs.app.world.Mesh.Scale.X; s != 0 {
		t.Errorf("first frame after resume advanced tweens: scale %f", s)
	}
}

func TestKeys(t *testing.T) {
	hs := newHarness(t, 800, 600)

	hs.window.push(
		input.Event{Type: input.EventKeyDown, Key: input.KeyF11},
		input.Event{Type: input.EventKeyDown, Key: input.KeyF12},
	)
	hs.tick(t, 1)

	if hs.window.toggles != 1 {
		t.Errorf("fullscreen toggles = %d, want 1", hs.window.toggles)
	}
	if hs.renderer.snapshots != 1 {
		t.Fatalf("snapshots = %d, want 1", hs.renderer.snapshots)
	}
	files, err := os.ReadDir(hs.app.cfg.Debug.ScreenshotDir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("screenshot files = %d, want 1", len(files))
	}
}

func TestClose(t *testing.T) {
	hs := newHarness(t, 800, 600)
	hs.app.Close()
	hs.app.Close()

	if hs.window.closed != 1 || hs.renderer.closed != 1 || hs.overlay.closed != 1 {
		t.Errorf("closed window/renderer/overlay = %d/%d/%d, want 1/1/1",
			hs.window.closed, hs.renderer.closed, hs.overlay.closed)
	}
	for _, typ := range []input.EventType{input.EventQuit, input.EventMouseMove, input.EventWindowResize} {
		if n := hs.app.dispatcher.Listeners(typ); n != 0 {
			t.Errorf("%s listeners after Close = %d, want 0", typ, n)
		}
	}
}

func TestNewRejectsEmptyWindow(t *testing.T) {
	log := []string{}
	_, err := New(config.Default(), Deps{
		Window:   &fakeWindow{},
		Renderer: &fakeRenderer{log: &log},
	})
	if err == nil {
		t.Error("expected error for zero-size window")
	}
}
