// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/scenekit/internal/engine/shader"
	"github.com/Faultbox/scenekit/internal/logger"
	"github.com/Faultbox/scenekit/internal/mesh"
	"github.com/Faultbox/scenekit/internal/scene"
	"github.com/Faultbox/scenekit/internal/shape"
	"github.com/Faultbox/scenekit/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	VSync  bool

	// DepthTest enables the depth buffer. 2D scenes leave it off so that
	// figures layer in draw order.
	DepthTest  bool
	ClearColor math.Color
}

// vertex layout shared by meshes and figures: position, normal, texcoord.
const (
	floatsPerVertex = 8
	vertexStride    = floatsPerVertex * 4
	normalOffset    = 3 * 4
	texCoordOffset  = 6 * 4
)

// meshBuffers is the GPU copy of a mesh.
type meshBuffers struct {
	vao, vbo, ebo uint32
	count         int32
	mode          uint32
	indexed       bool
}

// Renderer draws scene graphs with OpenGL. It implements scene.Renderer.
type Renderer struct {
	config Config
	log    *zap.Logger

	program *shader.Program

	meshes map[*mesh.Mesh]*meshBuffers

	// figureVAO/figureVBO hold the vertices of one 2D figure at a time.
	figureVAO uint32
	figureVBO uint32
	scratch   []float32

	stack      []math.Mat4
	model      math.Mat4
	view       math.Mat4
	projection math.Mat4

	lighting  bool
	light     math.Vec3
	pointSize float32
}

var _ scene.Renderer = (*Renderer)(nil)

// New creates a new renderer.
// Must be called after the OpenGL context is created.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:     cfg,
		log:        logger.Named("renderer"),
		meshes:     make(map[*mesh.Mesh]*meshBuffers),
		model:      math.Identity(),
		view:       math.Identity(),
		projection: math.Identity(),
		lighting:   true,
		light:      math.Direction(1, 1, 1),
		pointSize:  5,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	r.SetDepthTest(cfg.DepthTest)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	c := cfg.ClearColor
	gl.ClearColor(c.R, c.G, c.B, 1.0)

	var err error
	r.program, err = shader.New(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("create shader program: %w", err)
	}
	r.log.Debug("shader program created", zap.Uint32("program", r.program.ID))

	r.createFigureBuffers()
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	return r, nil
}

// Close releases all GPU resources owned by the renderer.
func (r *Renderer) Close() {
	r.log.Info("closing renderer", zap.Int("meshes", len(r.meshes)))
	for m := range r.meshes {
		r.ReleaseMesh(m)
	}
	if r.figureVAO != 0 {
		gl.DeleteVertexArrays(1, &r.figureVAO)
	}
	if r.figureVBO != 0 {
		gl.DeleteBuffers(1, &r.figureVBO)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current framebuffer size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// ReadPixels returns the framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

// Viewport restricts drawing to a sub-rectangle of the framebuffer.
func (r *Renderer) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

// SetProjection sets the projection matrix used by subsequent draws.
func (r *Renderer) SetProjection(m math.Mat4) { r.projection = m }

// SetView sets the view matrix used by subsequent draws.
func (r *Renderer) SetView(m math.Mat4) { r.view = m }

// SetLighting toggles lighting for filled meshes.
func (r *Renderer) SetLighting(on bool) { r.lighting = on }

// SetLight places the light in world space. A point (W=1) is a point
// light; a direction (W=0) is a directional light shining from that
// direction toward the origin.
func (r *Renderer) SetLight(v math.Vec3) { r.light = v }

// SetPointSize sets the size of figure center markers in pixels.
func (r *Renderer) SetPointSize(size float32) { r.pointSize = size }

// SetDepthTest toggles depth testing.
func (r *Renderer) SetDepthTest(on bool) {
	r.config.DepthTest = on
	if on {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	mask := uint32(gl.COLOR_BUFFER_BIT)
	if r.config.DepthTest {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(mask)

	r.stack = r.stack[:0]
	r.model = math.Identity()

	r.program.Use()
	r.program.SetInt("uTexture", 0)
}

// End finishes the current frame.
func (r *Renderer) End() {
	if len(r.stack) != 0 {
		r.log.Warn("unbalanced matrix stack at end of frame", zap.Int("depth", len(r.stack)))
		r.stack = r.stack[:0]
	}
	gl.BindVertexArray(0)
}

// Push saves the current model matrix and replaces it with world.
func (r *Renderer) Push(world math.Mat4) {
	r.stack = append(r.stack, r.model)
	r.model = world
}

// Pop restores the model matrix saved by the matching Push.
func (r *Renderer) Pop() {
	n := len(r.stack)
	if n == 0 {
		r.log.Warn("matrix stack underflow")
		r.model = math.Identity()
		return
	}
	r.model = r.stack[n-1]
	r.stack = r.stack[:n-1]
}

// setUniforms uploads the frame state and the current model matrix. The
// projection, view and light may change between draws of one frame.
func (r *Renderer) setUniforms() {
	r.program.SetMat4("uView", (*[16]float32)(&r.view))
	r.program.SetMat4("uProjection", (*[16]float32)(&r.projection))
	gl.Uniform4f(r.program.Uniform("uLight"), r.light.X, r.light.Y, r.light.Z, r.light.W)
	r.program.SetFloat("uPointSize", r.pointSize)
	r.program.SetMat4("uModel", (*[16]float32)(&r.model))
	normal := mgl32.Mat4(r.model).Mat3().Inv().Transpose()
	r.program.SetMat3("uNormalMatrix", (*[9]float32)(&normal))
}

// DrawMesh draws m in the current model transform.
func (r *Renderer) DrawMesh(m *mesh.Mesh, color math.Color) {
	b := r.buffersFor(m)
	if b.count == 0 {
		return
	}

	r.setUniforms()
	r.program.SetVec3("uColor", color.Array())
	r.program.SetVec3("uEmission", m.Emission.Array())
	r.program.SetBool("uLit", r.lighting && b.mode == gl.TRIANGLES)
	r.program.SetBool("uSphereMap", m.Texture != 0)
	r.bindTexture(m.Texture)

	gl.BindVertexArray(b.vao)
	if b.indexed {
		gl.DrawElements(b.mode, b.count, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(b.mode, 0, b.count)
	}
	gl.BindVertexArray(0)
}

// DrawFigure draws a 2D figure in the current model transform. Figures are
// drawn unlit at z = 0.
func (r *Renderer) DrawFigure(f shape.Figure, style scene.FigureStyle) {
	points := f.Points()
	if len(points) == 0 {
		return
	}

	r.setUniforms()
	r.program.SetBool("uLit", false)
	r.program.SetBool("uSphereMap", false)
	r.program.SetVec3("uColor", f.Color().Array())

	r.scratch = r.scratch[:0]
	for _, p := range points {
		r.scratch = append(r.scratch,
			p.Vertex.X, p.Vertex.Y, 0,
			0, 0, 1,
			p.TexCoord.X, p.TexCoord.Y)
	}
	c := f.Center()
	r.scratch = append(r.scratch, c.X, c.Y, 0, 0, 0, 1, 0, 0)

	gl.BindVertexArray(r.figureVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.figureVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.scratch)*4, unsafe.Pointer(&r.scratch[0]), gl.DYNAMIC_DRAW)

	n := int32(len(points))
	if !style.Hidden {
		r.bindTexture(style.Texture)
		gl.DrawArrays(gl.TRIANGLE_FAN, 0, n)
		r.bindTexture(0)
	}
	if style.Border {
		gl.DrawArrays(gl.LINE_LOOP, 0, n)
	}
	if style.Center {
		gl.DrawArrays(gl.POINTS, n, 1)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

func (r *Renderer) bindTexture(id uint32) {
	r.program.SetBool("uTextured", id != 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, id)
}

// ReleaseMesh frees the GPU buffers of m. The next DrawMesh uploads it again.
func (r *Renderer) ReleaseMesh(m *mesh.Mesh) {
	b, ok := r.meshes[m]
	if !ok {
		return
	}
	gl.DeleteVertexArrays(1, &b.vao)
	gl.DeleteBuffers(1, &b.vbo)
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
	}
	delete(r.meshes, m)
}

func (r *Renderer) buffersFor(m *mesh.Mesh) *meshBuffers {
	if b, ok := r.meshes[m]; ok {
		return b
	}
	b := uploadMesh(m)
	r.meshes[m] = b
	r.log.Debug("mesh uploaded",
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("faces", len(m.Faces)),
		zap.Int32("count", b.count),
		zap.Bool("lines", m.Lines),
	)
	return b
}

func uploadMesh(m *mesh.Mesh) *meshBuffers {
	b := &meshBuffers{mode: gl.TRIANGLES}

	var verts []mesh.Vertex
	var indices []uint32
	if m.Lines {
		verts = m.LineSegments()
		b.mode = gl.LINES
		b.count = int32(len(verts))
	} else {
		verts, indices = m.Triangulate()
		b.indexed = true
		b.count = int32(len(indices))
	}
	if len(verts) == 0 {
		b.count = 0
		return b
	}

	data := make([]float32, 0, len(verts)*floatsPerVertex)
	for _, v := range verts {
		data = append(data,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			0, 0)
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	if b.indexed && len(indices) > 0 {
		gl.GenBuffers(1, &b.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)
	}

	setVertexAttributes()

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return b
}

func (r *Renderer) createFigureBuffers() {
	gl.GenVertexArrays(1, &r.figureVAO)
	gl.BindVertexArray(r.figureVAO)
	gl.GenBuffers(1, &r.figureVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.figureVBO)
	setVertexAttributes()
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func setVertexAttributes() {
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride, normalOffset)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, vertexStride, texCoordOffset)
	gl.EnableVertexAttribArray(2)
}
