// Package demotest provides fakes for driving demos without a window.
package demotest

import (
	"fmt"
	"time"

	"github.com/Faultbox/scenekit/internal/config"
	"github.com/Faultbox/scenekit/internal/demo"
	"github.com/Faultbox/scenekit/internal/engine/timer"
	"github.com/Faultbox/scenekit/internal/mesh"
	"github.com/Faultbox/scenekit/internal/scene"
	"github.com/Faultbox/scenekit/internal/shape"
	"github.com/Faultbox/scenekit/pkg/math"
)

// MeshDraw records one DrawMesh call.
type MeshDraw struct {
	Mesh  *mesh.Mesh
	Color math.Color
	World math.Mat4
}

// FigureDraw records one DrawFigure call.
type FigureDraw struct {
	Figure shape.Figure
	Style  scene.FigureStyle
	World  math.Mat4
}

// Surface is a demo.Surface that records draws.
type Surface struct {
	Width, Height int

	Projection math.Mat4
	View       math.Mat4
	Viewports  [][4]int
	Lighting   bool
	Light      math.Vec3
	DepthTest  bool
	PointSize  float32

	Meshes  []MeshDraw
	Figures []FigureDraw

	stack []math.Mat4
}

var _ demo.Surface = (*Surface)(nil)

// NewSurface returns a surface of the given size.
func NewSurface(width, height int) *Surface {
	return &Surface{Width: width, Height: height}
}

// Reset forgets recorded draws.
func (s *Surface) Reset() {
	s.Meshes = nil
	s.Figures = nil
	s.Viewports = nil
}

func (s *Surface) Push(world math.Mat4) { s.stack = append(s.stack, world) }

func (s *Surface) Pop() {
	if len(s.stack) == 0 {
		panic("demotest: Pop without Push")
	}
	s.stack = s.stack[:len(s.stack)-1]
}

// Depth returns the current matrix stack depth.
func (s *Surface) Depth() int { return len(s.stack) }

func (s *Surface) top() math.Mat4 {
	if len(s.stack) == 0 {
		return math.Identity()
	}
	return s.stack[len(s.stack)-1]
}

func (s *Surface) DrawMesh(m *mesh.Mesh, color math.Color) {
	s.Meshes = append(s.Meshes, MeshDraw{Mesh: m, Color: color, World: s.top()})
}

func (s *Surface) DrawFigure(f shape.Figure, style scene.FigureStyle) {
	s.Figures = append(s.Figures, FigureDraw{Figure: f, Style: style, World: s.top()})
}

func (s *Surface) SetProjection(m math.Mat4) { s.Projection = m }
func (s *Surface) SetView(m math.Mat4)       { s.View = m }
func (s *Surface) Size() (int, int)          { return s.Width, s.Height }
func (s *Surface) SetLighting(on bool)       { s.Lighting = on }
func (s *Surface) SetLight(v math.Vec3)      { s.Light = v }
func (s *Surface) SetDepthTest(on bool)      { s.DepthTest = on }
func (s *Surface) SetPointSize(size float32) { s.PointSize = size }

func (s *Surface) Viewport(x, y, width, height int) {
	s.Viewports = append(s.Viewports, [4]int{x, y, width, height})
}

// Textures is a demo.Textures serving fixed sizes by path.
type Textures struct {
	Sizes  map[string][2]int
	Loaded []string
	nextID uint32
}

// Load returns a texture for a known path and an error otherwise.
func (t *Textures) Load(path string) (demo.Texture, error) {
	size, ok := t.Sizes[path]
	if !ok {
		return demo.Texture{}, fmt.Errorf("open %s: no such file", path)
	}
	t.nextID++
	t.Loaded = append(t.Loaded, path)
	return demo.Texture{ID: t.nextID, Width: size[0], Height: size[1]}, nil
}

// Clock is a manually advanced time source.
type Clock struct {
	T time.Time
}

// Now returns the clock time.
func (c *Clock) Now() time.Time { return c.T }

// Advance moves the clock forward.
func (c *Clock) Advance(d time.Duration) { c.T = c.T.Add(d) }

// NewContext returns a context over cfg with a fake clock and texture set.
func NewContext(cfg *config.Config, textures *Textures, width, height int) (*demo.Context, *Clock) {
	clock := &Clock{T: time.Unix(0, 0)}
	return &demo.Context{
		Config:   cfg,
		Textures: textures,
		Timer:    timer.New(cfg.Simulation.StepInterval),
		Now:      clock.Now,
		Width:    width,
		Height:   height,
	}, clock
}
