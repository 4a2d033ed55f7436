// Package renderer draws a scene graph with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/glowsphere/internal/engine/camera"
	"github.com/Faultbox/glowsphere/internal/engine/framebuffer"
	"github.com/Faultbox/glowsphere/internal/engine/model"
	"github.com/Faultbox/glowsphere/internal/engine/renderer/shaders"
	"github.com/Faultbox/glowsphere/internal/engine/scene"
	"github.com/Faultbox/glowsphere/internal/engine/shader"
	"github.com/Faultbox/glowsphere/internal/engine/viewport"
	"github.com/Faultbox/glowsphere/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	PixelRatio float64
}

// gpuMesh is an uploaded geometry.
type gpuMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// Renderer draws the scene into an offscreen target sized to the drawing
// buffer and scales it onto the window's default framebuffer.
type Renderer struct {
	view    viewport.Viewport
	program *shader.Program
	target  *framebuffer.Framebuffer
	meshes  map[*model.Mesh]*gpuMesh

	drawableW int32
	drawableH int32
}

// New creates a renderer bound to the current GL context.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	r := &Renderer{
		view:      viewport.New(max(cfg.Width, 1), max(cfg.Height, 1)),
		meshes:    make(map[*model.Mesh]*gpuMesh),
		drawableW: int32(max(cfg.Width, 1)),
		drawableH: int32(max(cfg.Height, 1)),
	}
	r.view.SetPixelRatio(cfg.PixelRatio)

	var err error
	r.program, err = shader.NewProgram("standard", shaders.StandardVertexShader, shaders.StandardFragmentShader)
	if err != nil {
		return nil, err
	}

	bw, bh := r.view.DrawingBufferSize()
	r.target, err = framebuffer.New(int32(bw), int32(bh))
	if err != nil {
		r.program.Delete()
		return nil, err
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)

	logger.Debug("renderer created",
		zap.Int("width", r.view.Width),
		zap.Int("height", r.view.Height),
		zap.Float64("pixelRatio", r.view.PixelRatio),
	)
	return r, nil
}

// Close releases all GL resources owned by the renderer.
func (r *Renderer) Close() {
	logger.Info("closing renderer", zap.Int("meshes", len(r.meshes)))
	for m, g := range r.meshes {
		gl.DeleteVertexArrays(1, &g.vao)
		gl.DeleteBuffers(1, &g.vbo)
		gl.DeleteBuffers(1, &g.ebo)
		delete(r.meshes, m)
	}
	if r.target != nil {
		r.target.Destroy()
		r.target = nil
	}
	if r.program != nil {
		r.program.Delete()
		r.program = nil
	}
}

// SetSize sets the logical output size. Non-positive sizes are ignored.
func (r *Renderer) SetSize(width, height int) {
	if r.view.SetSize(width, height) {
		logger.Debug("renderer resized",
			zap.Int("width", width),
			zap.Int("height", height),
		)
	}
}

// SetPixelRatio sets how many drawing-buffer pixels back one logical pixel.
func (r *Renderer) SetPixelRatio(ratio float64) {
	r.view.SetPixelRatio(ratio)
}

// SetDrawableSize records the window's default framebuffer size in
// physical pixels, the destination of the final blit.
func (r *Renderer) SetDrawableSize(width, height int) {
	if width > 0 && height > 0 {
		r.drawableW, r.drawableH = int32(width), int32(height)
	}
}

// Size returns the logical output size.
func (r *Renderer) Size() (int, int) {
	return r.view.Width, r.view.Height
}

// DrawingBufferSize returns the offscreen target size.
func (r *Renderer) DrawingBufferSize() (int, int) {
	return r.view.DrawingBufferSize()
}

// Render draws s from cam's point of view into the offscreen target and
// leaves the target bound, so 2D passes can draw on top before Present.
func (r *Renderer) Render(s *scene.Scene, cam *camera.Perspective) error {
	bw, bh := r.view.DrawingBufferSize()
	if r.target.Resize(int32(bw), int32(bh)) {
		logger.Debug("render target reallocated", zap.Int("width", bw), zap.Int("height", bh))
	}

	r.target.Bind()
	bg := s.Background.Clamped()
	gl.Enable(gl.DEPTH_TEST)
	r.target.Clear(float32(bg.R), float32(bg.G), float32(bg.B), 1)

	r.program.Use()
	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix()
	r.program.SetMat4("uView", (*[16]float32)(&view))
	r.program.SetMat4("uProjection", (*[16]float32)(&proj))
	r.program.SetVec3("uCameraPos", cam.WorldPosition().Array())
	r.uploadLights(s.PointLights())

	for _, m := range s.Meshes() {
		if err := r.drawMesh(m); err != nil {
			r.target.Unbind()
			return err
		}
	}

	gl.BindVertexArray(0)
	return nil
}

// Present scales the offscreen target onto the window. The caller swaps
// buffers.
func (r *Renderer) Present() {
	r.target.BlitTo(r.drawableW, r.drawableH)
}

func (r *Renderer) uploadLights(lights []*scene.PointLight) {
	if len(lights) > scene.MaxPointLights {
		lights = lights[:scene.MaxPointLights]
	}
	r.program.SetInt("uLightCount", int32(len(lights)))
	for i, l := range lights {
		u := l.Uniform()
		prefix := fmt.Sprintf("uLights[%d].", i)
		r.program.SetVec3(prefix+"position", u.Position)
		r.program.SetVec3(prefix+"color", u.Color)
		r.program.SetFloat(prefix+"intensity", u.Intensity)
		r.program.SetFloat(prefix+"distance", u.Distance)
		r.program.SetFloat(prefix+"decay", u.Decay)
	}
}

func (r *Renderer) drawMesh(m *scene.Mesh) error {
	g, err := r.upload(m.Geometry)
	if err != nil {
		return err
	}

	world := m.WorldMatrix()
	normal := world.NormalMatrix()
	r.program.SetMat4("uModel", (*[16]float32)(&world))
	r.program.SetMat4("uNormalMatrix", (*[16]float32)(&normal))
	r.program.SetVec3("uColor", m.Material.LinearColor())
	r.program.SetFloat("uRoughness", m.Material.Roughness)
	r.program.SetFloat("uMetalness", m.Material.Metalness)

	gl.BindVertexArray(g.vao)
	gl.DrawElements(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, nil)
	return nil
}

// upload creates GPU buffers for a geometry on first use.
func (r *Renderer) upload(m *model.Mesh) (*gpuMesh, error) {
	if g, ok := r.meshes[m]; ok {
		return g, nil
	}
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return nil, fmt.Errorf("upload mesh: empty geometry")
	}

	g := &gpuMesh{indexCount: int32(len(m.Indices))}
	stride := int32(unsafe.Sizeof(model.Vertex{}))

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*int(stride), unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, unsafe.Offsetof(model.Vertex{}.Position))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, unsafe.Offsetof(model.Vertex{}.Normal))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, unsafe.Offsetof(model.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.meshes[m] = g
	logger.Debug("mesh uploaded",
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("triangles", m.TriangleCount()),
		zap.Uint32("vao", g.vao),
	)
	return g, nil
}

// Snapshot reads back the last rendered frame as bottom-up RGBA rows.
func (r *Renderer) Snapshot() (pixels []byte, width, height int) {
	w, h := r.target.Size()
	return r.target.ReadPixels(), int(w), int(h)
}
