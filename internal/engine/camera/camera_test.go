package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/glowsphere/pkg/math"
)

func newTestControls() (*Perspective, *OrbitControls) {
	cam := NewPerspective(50, 2, 0.001, 1000)
	cam.Position = math.V3(0, 0, 20)
	controls := NewOrbitControls(cam)
	controls.SetViewportSize(1000, 500)
	return cam, controls
}

func azimuth(cam *Perspective) float64 {
	return gomath.Atan2(float64(cam.Position.X), float64(cam.Position.Z))
}

func TestProjectionFollowsAspect(t *testing.T) {
	cam := NewPerspective(50, 1, 0.001, 1000)
	before := cam.ProjectionMatrix()

	cam.Aspect = 2
	if cam.ProjectionMatrix() != before {
		t.Error("projection changed before UpdateProjectionMatrix")
	}

	cam.UpdateProjectionMatrix()
	after := cam.ProjectionMatrix()
	if gomath.Abs(float64(after[0]*2-before[0])) > 1e-5 {
		t.Errorf("x scale = %f, want %f", after[0], before[0]/2)
	}
}

func TestNoUpdateNoMotion(t *testing.T) {
	cam, controls := newTestControls()
	controls.AutoRotate = true
	controls.AutoRotateSpeed = 3

	controls.PointerDown(ButtonLeft, 0, 0)
	controls.PointerMove(100, 0)
	controls.PointerUp()

	if cam.Position != math.V3(0, 0, 20) {
		t.Errorf("camera moved without Update: %v", cam.Position)
	}
}

func TestAutoRotateAdvancesPerFrame(t *testing.T) {
	cam, controls := newTestControls()
	controls.AutoRotate = true
	controls.AutoRotateSpeed = 3

	const frames = 10
	for i := 0; i < frames; i++ {
		if !controls.Update() {
			t.Fatalf("frame %d reported no motion", i)
		}
	}

	want := -float64(controls.AutoRotationAngle()) * frames
	if got := azimuth(cam); gomath.Abs(got-want) > 1e-4 {
		t.Errorf("azimuth after %d frames = %f, want %f", frames, got, want)
	}
	if d := cam.Position.Length(); gomath.Abs(float64(d)-20) > 1e-3 {
		t.Errorf("distance = %f, want 20", d)
	}
	if cam.Target() != (math.Vec3{}) {
		t.Errorf("camera target = %v, want origin", cam.Target())
	}
}

func TestAutoRotateSpeedScales(t *testing.T) {
	_, controls := newTestControls()
	base := controls.AutoRotationAngle()
	controls.AutoRotateSpeed = 3
	if got := controls.AutoRotationAngle(); gomath.Abs(float64(got-3*base)) > 1e-7 {
		t.Errorf("angle at speed 3 = %g, want %g", got, 3*base)
	}
}

func TestDragWithoutDamping(t *testing.T) {
	cam, controls := newTestControls()

	controls.PointerDown(ButtonLeft, 0, 0)
	controls.PointerMove(125, 0)
	controls.PointerUp()
	controls.Update()

	want := -2 * gomath.Pi * 125 / 500
	if got := azimuth(cam); gomath.Abs(got-want) > 1e-4 {
		t.Errorf("azimuth = %f, want %f", got, want)
	}
	if controls.Update() {
		t.Error("camera kept moving after an undamped drag")
	}
}

func TestDragWithDampingDecelerates(t *testing.T) {
	cam, controls := newTestControls()
	controls.EnableDamping = true

	controls.PointerDown(ButtonLeft, 0, 0)
	controls.PointerMove(50, 0)
	controls.PointerUp()

	total := -2 * gomath.Pi * 50 / 500

	controls.Update()
	first := azimuth(cam)
	if gomath.Abs(first) >= gomath.Abs(total) {
		t.Fatalf("first damped frame applied %f, want less than %f", first, total)
	}

	prev := first
	for i := 0; i < 300; i++ {
		controls.Update()
		got := azimuth(cam)
		if gomath.Abs(got) > gomath.Abs(total)+1e-4 {
			t.Fatalf("frame %d overshot: %f beyond %f", i, got, total)
		}
		if gomath.Abs(got) < gomath.Abs(prev)-1e-6 {
			t.Fatalf("frame %d reversed: %f after %f", i, got, prev)
		}
		prev = got
	}

	if gomath.Abs(prev-total) > 1e-3 {
		t.Errorf("settled azimuth = %f, want %f", prev, total)
	}
}

func TestPolarAngleStaysInRange(t *testing.T) {
	cam, controls := newTestControls()

	controls.PointerDown(ButtonLeft, 0, 0)
	controls.PointerMove(0, 5000)
	controls.PointerUp()
	controls.Update()

	phi := math.SphericalFromVec3(cam.Position).Phi
	if phi <= 0 || phi >= gomath.Pi {
		t.Errorf("phi = %f, want inside (0, pi)", phi)
	}
}

func TestZoomDisabled(t *testing.T) {
	cam, controls := newTestControls()
	controls.EnableZoom = false

	controls.Wheel(5)
	controls.Update()

	if d := cam.Position.Length(); gomath.Abs(float64(d)-20) > 1e-3 {
		t.Errorf("distance = %f, want 20", d)
	}
}

func TestZoomEnabled(t *testing.T) {
	cam, controls := newTestControls()

	controls.Wheel(5)
	controls.Update()

	if d := cam.Position.Length(); d >= 20 {
		t.Errorf("distance after zoom in = %f, want < 20", d)
	}
}

func TestPanDisabled(t *testing.T) {
	_, controls := newTestControls()
	controls.EnablePan = false

	controls.PointerDown(ButtonRight, 0, 0)
	if controls.Dragging() {
		t.Fatal("right button started a gesture with pan disabled")
	}
	controls.PointerMove(100, 100)
	controls.Update()

	if controls.Target != (math.Vec3{}) {
		t.Errorf("target = %v, want origin", controls.Target)
	}
}

func TestPanEnabled(t *testing.T) {
	_, controls := newTestControls()

	controls.PointerDown(ButtonRight, 0, 0)
	controls.PointerMove(100, 0)
	controls.PointerUp()
	controls.Update()

	if controls.Target.X >= 0 {
		t.Errorf("target x = %f, want negative after dragging right", controls.Target.X)
	}
}

func TestAutoRotatePausesWhileDragging(t *testing.T) {
	cam, controls := newTestControls()
	controls.AutoRotate = true

	controls.PointerDown(ButtonLeft, 0, 0)
	controls.Update()

	if d := cam.Position.Sub(math.V3(0, 0, 20)).Length(); d > 1e-4 {
		t.Errorf("auto-rotate ran during a drag: %v", cam.Position)
	}
}
