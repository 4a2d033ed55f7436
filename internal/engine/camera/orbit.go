package camera

import (
	"github.com/charmbracelet/harmonica"
	"github.com/chewxy/math32"

	"github.com/Faultbox/glowsphere/pkg/math"
)

// Pointer buttons understood by the controls.
const (
	ButtonLeft   = 1
	ButtonMiddle = 2
	ButtonRight  = 3
)

// Defaults for the damping spring: critically damped, settling in well under a second.
const (
	DefaultDampingFrequency = 6.0
	DefaultDampingRatio     = 1.0
	DefaultFPS              = 60
)

// minMove is the squared camera displacement below which Update reports no change.
const minMove = 1e-8

type controlState int

const (
	stateNone controlState = iota
	stateRotate
	statePan
)

// axis tracks one angular axis: Goal accumulates pointer input, Pos is the
// rotation applied so far and Vel is the spring's internal velocity.
type axis struct {
	goal, pos, vel float64
}

// step advances the axis and returns the rotation to apply this frame.
func (a *axis) step(spring *harmonica.Spring, damped bool) float32 {
	prev := a.pos
	if damped {
		a.pos, a.vel = spring.Update(a.pos, a.vel, a.goal)
	} else {
		a.pos, a.vel = a.goal, 0
	}
	delta := a.pos - prev

	// Rebase once settled so the accumulators stay small.
	if a.goal-a.pos < 1e-9 && a.pos-a.goal < 1e-9 && a.vel < 1e-9 && a.vel > -1e-9 {
		a.goal, a.pos, a.vel = 0, 0, 0
	}
	return float32(delta)
}

// OrbitControls rotates a camera around a target in response to pointer
// drags. Damped motion, auto-rotation and zoom are all advanced by Update,
// which must run once per frame.
type OrbitControls struct {
	Camera *Perspective
	Target math.Vec3

	EnableRotate bool
	EnablePan    bool
	EnableZoom   bool

	EnableDamping    bool
	DampingFrequency float64
	DampingRatio     float64

	AutoRotate      bool
	AutoRotateSpeed float32 // 1 = one revolution per minute at 60 fps
	RotateSpeed     float32
	ZoomSpeed       float32
	PanSpeed        float32

	MinPolarAngle float32
	MaxPolarAngle float32
	MinDistance   float32
	MaxDistance   float32

	state          controlState
	last           math.Vec2
	viewportHeight float32
	theta, phi     axis
	zoomScale      float32
	panOffset      math.Vec3
	spring         harmonica.Spring
	springFreq     float64
	springRatio    float64
}

// NewOrbitControls attaches controls to cam, orbiting the origin.
func NewOrbitControls(cam *Perspective) *OrbitControls {
	c := &OrbitControls{
		Camera:           cam,
		EnableRotate:     true,
		EnablePan:        true,
		EnableZoom:       true,
		DampingFrequency: DefaultDampingFrequency,
		DampingRatio:     DefaultDampingRatio,
		AutoRotateSpeed:  1,
		RotateSpeed:      1,
		ZoomSpeed:        1,
		PanSpeed:         1,
		MinPolarAngle:    0,
		MaxPolarAngle:    math32.Pi,
		MinDistance:      0,
		MaxDistance:      math32.Inf(1),
		viewportHeight:   1,
		zoomScale:        1,
	}
	cam.LookAt(c.Target)
	return c
}

// SetViewportSize tells the controls how large the drag surface is.
func (c *OrbitControls) SetViewportSize(width, height int) {
	if height > 0 {
		c.viewportHeight = float32(height)
	}
}

// Dragging reports whether a pointer gesture is in progress.
func (c *OrbitControls) Dragging() bool {
	return c.state != stateNone
}

// PointerDown starts a rotate (left) or pan (right) gesture.
func (c *OrbitControls) PointerDown(button uint8, x, y float32) {
	switch {
	case button == ButtonLeft && c.EnableRotate:
		c.state = stateRotate
	case button == ButtonRight && c.EnablePan:
		c.state = statePan
	default:
		return
	}
	c.last = math.Vec2{X: x, Y: y}
}

// PointerMove feeds a pointer position into the active gesture.
func (c *OrbitControls) PointerMove(x, y float32) {
	if c.state == stateNone {
		return
	}
	pos := math.Vec2{X: x, Y: y}
	d := pos.Sub(c.last)
	c.last = pos

	switch c.state {
	case stateRotate:
		k := 2 * math32.Pi / c.viewportHeight * c.RotateSpeed
		c.theta.goal -= float64(d.X * k)
		c.phi.goal -= float64(d.Y * k)
	case statePan:
		c.pan(d)
	}
}

// PointerUp ends the current gesture. Damped motion keeps going.
func (c *OrbitControls) PointerUp() {
	c.state = stateNone
}

// Wheel zooms in for positive delta. Ignored when zoom is disabled.
func (c *OrbitControls) Wheel(delta float32) {
	if !c.EnableZoom || delta == 0 {
		return
	}
	factor := math32.Pow(0.95, c.ZoomSpeed*math32.Abs(delta))
	if delta > 0 {
		c.zoomScale *= factor
	} else {
		c.zoomScale /= factor
	}
}

func (c *OrbitControls) pan(d math.Vec2) {
	offset := c.Camera.Position.Sub(c.Target)
	// Scale so the target point follows the pointer.
	dist := offset.Length() * math32.Tan(math.Radians(c.Camera.Fov)/2)
	k := 2 * dist / c.viewportHeight * c.PanSpeed

	view := c.Camera.ViewMatrix()
	right := math.V3(view[0], view[4], view[8])
	up := math.V3(view[1], view[5], view[9])
	c.panOffset = c.panOffset.Add(right.Scale(-d.X * k)).Add(up.Scale(d.Y * k))
}

// AutoRotationAngle returns the azimuth change applied per frame by auto-rotation.
func (c *OrbitControls) AutoRotationAngle() float32 {
	return 2 * math32.Pi / 60 / 60 * c.AutoRotateSpeed
}

// Update advances damping, auto-rotation and zoom, then repositions the
// camera. It reports whether the camera moved.
func (c *OrbitControls) Update() bool {
	if c.springFreq != c.DampingFrequency || c.springRatio != c.DampingRatio {
		c.spring = harmonica.NewSpring(harmonica.FPS(DefaultFPS), c.DampingFrequency, c.DampingRatio)
		c.springFreq, c.springRatio = c.DampingFrequency, c.DampingRatio
	}

	before := c.Camera.Position
	offset := before.Sub(c.Target)
	sph := math.SphericalFromVec3(offset)

	if c.AutoRotate && c.state == stateNone {
		sph.Theta -= c.AutoRotationAngle()
	}
	sph.Theta += c.theta.step(&c.spring, c.EnableDamping)
	sph.Phi += c.phi.step(&c.spring, c.EnableDamping)

	sph.Phi = math.Clamp(sph.Phi, c.MinPolarAngle, c.MaxPolarAngle)
	sph = sph.MakeSafe()

	sph.Radius = math.Clamp(sph.Radius*c.zoomScale, c.MinDistance, c.MaxDistance)
	c.zoomScale = 1

	c.Target = c.Target.Add(c.panOffset)
	c.panOffset = math.Vec3{}

	c.Camera.Position = c.Target.Add(sph.Vec3())
	c.Camera.LookAt(c.Target)

	moved := c.Camera.Position.Sub(before)
	return moved.Dot(moved) > minMove
}
