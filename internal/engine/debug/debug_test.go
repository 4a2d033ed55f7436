package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFlipRows(t *testing.T) {
	// 1x2 image: bottom row red, top row blue (GL order).
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img := FlipRows(pixels, 1, 2)
	if c := img.RGBAAt(0, 0); c.B != 255 || c.R != 0 {
		t.Errorf("top pixel = %v, want blue", c)
	}
	if c := img.RGBAAt(0, 1); c.R != 255 || c.B != 0 {
		t.Errorf("bottom pixel = %v, want red", c)
	}
}

func TestCaptureFromPixels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "glowsphere")
	sc.now = func() time.Time { return time.Date(2024, 5, 1, 12, 30, 45, 123e6, time.UTC) }

	pixels := make([]byte, 4*3*4)
	for i := range pixels {
		pixels[i] = 200
	}
	path, err := sc.CaptureFromPixels(pixels, 4, 3)
	if err != nil {
		t.Fatalf("CaptureFromPixels: %v", err)
	}
	if want := filepath.Join(dir, "glowsphere_2024-05-01_12-30-45.123.png"); path != want {
		t.Errorf("path = %s, want %s", path, want)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("bounds = %v, want 4x3", b)
	}
}

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "x")
	_, err := sc.CaptureFromPixels(make([]byte, 10), 2, 2)
	if err == nil || !strings.Contains(err.Error(), "mismatch") {
		t.Errorf("err = %v, want size mismatch", err)
	}
	if _, err := sc.CaptureFromPixels(nil, 0, 2); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestFPSCounter(t *testing.T) {
	c := NewFPSCounter(time.Second)
	start := time.Unix(0, 0)

	for i := 0; i < 60; i++ {
		if _, ok := c.Frame(start.Add(time.Duration(i) * time.Second / 60)); ok {
			t.Fatalf("reported early at frame %d", i)
		}
	}
	fps, ok := c.Frame(start.Add(time.Second))
	if !ok {
		t.Fatal("expected a report after one second")
	}
	if fps != 61 {
		t.Errorf("fps = %v, want 61", fps)
	}

	c.Reset()
	if _, ok := c.Frame(start.Add(5 * time.Second)); ok {
		t.Error("first frame after Reset should not report")
	}
}
