// Package editor is a 2D triangle editor. Triangles are drawn by clicking
// points over a background image, then picked and moved, then set bouncing
// around the image bounds.
package editor

import (
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/Faultbox/scenekit/internal/config"
	"github.com/Faultbox/scenekit/internal/demo"
	"github.com/Faultbox/scenekit/internal/engine/input"
	"github.com/Faultbox/scenekit/internal/game/states"
	"github.com/Faultbox/scenekit/internal/logger"
	"github.com/Faultbox/scenekit/internal/physics"
	"github.com/Faultbox/scenekit/internal/picking"
	"github.com/Faultbox/scenekit/internal/scene"
	"github.com/Faultbox/scenekit/internal/shape"
	"github.com/Faultbox/scenekit/pkg/math"
)

// Title is the window title.
const Title = "Triangle editor"

const (
	planeNear = -10
	planeFar  = 10
	pointSize = 2
)

var (
	triangleColor = math.Red
	selectedColor = math.Green
	pendingColor  = math.Green
)

// Editor is the triangle editor program.
type Editor struct {
	ctx *demo.Context
	cfg config.SimulationConfig
	log *zap.Logger
	rng *rand.Rand

	modes     *states.Manager
	design    *designState
	selection *selectionState
	animation *animationState

	background demo.Texture
	backdrop   *shape.Rectangle
	bounds     physics.Bounds
	showBack   bool

	points    []math.Vec2
	triangles []*shape.Triangle
	selected  *picking.Selection[*shape.Triangle]
	running   bool

	width, height int
	mouse         math.Vec2
}

var _ demo.Demo = (*Editor)(nil)

// New returns an uninitialized editor.
func New() *Editor {
	e := &Editor{
		log:      logger.Named("editor"),
		modes:    states.NewManager(),
		selected: picking.NewSelection[*shape.Triangle](triangleColor, selectedColor),
	}
	e.design = &designState{e}
	e.selection = &selectionState{e}
	e.animation = &animationState{e}
	return e
}

// Init loads the background image, whose size bounds the animation, and
// enters design mode.
func (e *Editor) Init(ctx *demo.Context) error {
	e.ctx = ctx
	e.cfg = ctx.Config.Simulation
	e.width, e.height = ctx.Width, ctx.Height
	ctx.Timer.Interval = e.cfg.StepInterval

	seed := e.cfg.Seed
	if seed == 0 {
		seed = uint64(ctx.Time().UnixNano())
	}
	e.rng = rand.New(rand.NewPCG(seed, seed))

	path := ctx.Config.AssetPath(ctx.Config.Assets.Background)
	tex, err := ctx.Textures.Load(path)
	if err != nil {
		return fmt.Errorf("load background: %w", err)
	}
	e.background = tex
	e.bounds = physics.Bounds{Width: float32(tex.Width), Height: float32(tex.Height)}
	e.backdrop = shape.NewRectangle(0, 0, e.bounds.Width, e.bounds.Height)
	e.log.Info("background loaded",
		zap.String("path", path),
		zap.Int("width", tex.Width),
		zap.Int("height", tex.Height))

	e.showBack = true
	e.modes.Change(e.design)
	return e.modes.Update()
}

// Reset goes back to design mode with no points, triangles or selection
// and the background shown.
func (e *Editor) Reset() {
	e.modes.Change(e.design)
	if err := e.modes.Update(); err != nil {
		e.log.Error("reset", zap.Error(err))
	}
	e.selected.Clear()
	e.points = nil
	e.triangles = nil
	e.showBack = true
	e.log.Info("reset")
}

// HandleEvent applies the keys shared by all modes and passes the rest to
// the current mode.
func (e *Editor) HandleEvent(ev input.Event) bool {
	switch ev.Type {
	case input.EventWindowResize:
		e.width, e.height = ev.Width, ev.Height
		return true
	case input.EventMouseMove:
		e.mouse = e.toScene(ev.MouseX, ev.MouseY)
		return false
	case input.EventChar, input.EventMouseUp:
		e.mouse = e.toScene(ev.MouseX, ev.MouseY)
	case input.EventKeyDown:
		if ev.Key == input.KeyF5 {
			e.Reset()
			return true
		}
	}

	if ev.Type == input.EventChar {
		switch ev.Char {
		case 'd':
			return e.enter(e.design, false)
		case 's':
			return e.enter(e.selection, true)
		case 'a':
			return e.enter(e.animation, true)
		case 'r':
			e.Reset()
			return true
		}
	}

	redraw, err := e.modes.HandleEvent(ev)
	if err != nil {
		e.log.Error("mode change", zap.Error(err))
	}
	return redraw
}

func (e *Editor) enter(s states.State, needTriangles bool) bool {
	if e.modes.Is(s) {
		e.log.Info("already in mode", zap.String("mode", s.Name()))
		return false
	}
	if needTriangles && len(e.triangles) == 0 {
		e.log.Error("no triangles yet", zap.String("mode", s.Name()))
		return false
	}
	e.modes.Change(s)
	if err := e.modes.Update(); err != nil {
		e.log.Error("mode change", zap.String("mode", s.Name()), zap.Error(err))
	}
	return true
}

// Step forwards a timer tick to the current mode.
func (e *Editor) Step() bool {
	return e.modes.Step()
}

func (e *Editor) toScene(x, y int) math.Vec2 {
	return picking.WindowToProjection(x, y, picking.Viewport{
		Width:  float32(e.width),
		Height: float32(e.height),
	})
}

// texCoord maps a background position to texture space.
func (e *Editor) texCoord(p math.Vec2) math.Vec2 {
	return math.Vec2{X: p.X / e.bounds.Width, Y: p.Y / e.bounds.Height}
}

// addPoint queues p; every third point closes a counter-clockwise triangle.
func (e *Editor) addPoint(p math.Vec2) {
	e.points = append(e.points, p)
	e.log.Info("point", zap.Int("n", len(e.points)), zap.Float32("x", p.X), zap.Float32("y", p.Y))
	if len(e.points) < 3 {
		return
	}
	p0, p1, p2 := shape.OrientCCW(e.points[0], e.points[1], e.points[2])
	e.points = e.points[:0]

	t := shape.NewTriangle(p0, p1, p2, e.texCoord(p0), e.texCoord(p1), e.texCoord(p2))
	t.SetColor(triangleColor)
	t.SetVelocity(physics.RandomVelocity(e.rng, e.cfg.MaxPixelsPerStep))
	e.triangles = append(e.triangles, t)
	e.log.Debug("triangle added",
		zap.Int("count", len(e.triangles)),
		zap.Float32("vx", t.Velocity().X),
		zap.Float32("vy", t.Velocity().Y))
}

func (e *Editor) popPoint() {
	if len(e.points) == 0 {
		e.log.Warn("no point to remove")
		return
	}
	e.points = e.points[:len(e.points)-1]
}

func (e *Editor) selectAt(p math.Vec2) {
	if e.selected.SelectAt(p, e.triangles) {
		e.log.Debug("triangle selected", zap.Float32("x", p.X), zap.Float32("y", p.Y))
	}
}

// moveSelected centers the selection on p. With retexture the triangle
// shows the part of the background under its new place.
func (e *Editor) moveSelected(p math.Vec2, retexture bool) {
	t, ok := e.selected.Selected()
	if !ok {
		return
	}
	t.SetPosition(p)
	if !retexture {
		return
	}
	for i, pt := range t.Points() {
		t.SetTexCoord(i, e.texCoord(pt.Vertex))
	}
}

func (e *Editor) removeSelected() {
	t, ok := e.selected.Selected()
	if !ok {
		e.log.Warn("nothing selected")
		return
	}
	e.selected.Release(t)
	for i, cand := range e.triangles {
		if cand == t {
			e.triangles = append(e.triangles[:i], e.triangles[i+1:]...)
			break
		}
	}
	e.log.Debug("triangle removed", zap.Int("count", len(e.triangles)))
}

func (e *Editor) toggleBackground() {
	e.showBack = !e.showBack
}

func (e *Editor) setRunning(on bool) {
	e.running = on
	if on {
		e.ctx.ArmTimer()
	} else {
		e.ctx.Timer.Disarm()
	}
}

// advance moves every triangle one step, bouncing off the image bounds.
func (e *Editor) advance() {
	physics.StepAll(e.triangles, e.bounds)
}

// Mode returns the name of the current mode.
func (e *Editor) Mode() string {
	if s := e.modes.Current(); s != nil {
		return s.Name()
	}
	return ""
}

// Points returns the points of the triangle being drawn.
func (e *Editor) Points() []math.Vec2 { return e.points }

// Triangles returns all triangles in pick order.
func (e *Editor) Triangles() []*shape.Triangle { return e.triangles }

// Selected returns the selected triangle, if any.
func (e *Editor) Selected() (*shape.Triangle, bool) { return e.selected.Selected() }

// Running reports whether the animation timer is on.
func (e *Editor) Running() bool { return e.running }

// BackgroundShown reports whether the background is drawn outside design
// mode.
func (e *Editor) BackgroundShown() bool { return e.showBack }

// Bounds returns the animation area.
func (e *Editor) Bounds() physics.Bounds { return e.bounds }

// Render draws the background and the triangles as the current mode
// shows them.
func (e *Editor) Render(s demo.Surface) {
	s.SetDepthTest(false)
	s.SetLighting(false)
	s.SetPointSize(pointSize)
	s.Viewport(0, 0, e.width, e.height)
	s.SetProjection(math.Ortho(0, float32(e.width), 0, float32(e.height), planeNear, planeFar))
	s.SetView(math.Identity())

	g, root := e.buildScene()
	if err := g.Draw(root, math.Identity(), s); err != nil {
		e.log.Error("draw", zap.Error(err))
	}
}

func (e *Editor) buildScene() (*scene.Graph, scene.NodeID) {
	g := scene.New()
	root := g.NewNode(scene.Group{})
	add := func(geo scene.Geometry) {
		if err := g.AddChild(root, g.NewNode(geo)); err != nil {
			e.log.Error("scene", zap.Error(err))
		}
	}

	inDesign := e.modes.Is(e.design)
	if e.showBack || inDesign {
		add(scene.Rectangle{Figure: e.backdrop, Style: scene.FigureStyle{Texture: e.background.ID}})
	}

	var style scene.FigureStyle
	switch {
	case inDesign:
		style = scene.FigureStyle{Hidden: true, Border: true, Center: true}
	case e.modes.Is(e.selection):
		style = scene.FigureStyle{Texture: e.background.ID, Border: true}
	default:
		style = scene.FigureStyle{Texture: e.background.ID}
	}
	for _, t := range e.triangles {
		add(scene.Triangle{Figure: t, Style: style})
	}

	if inDesign {
		for _, p := range e.points {
			dot := shape.NewRectangle(p.X, p.Y, p.X, p.Y)
			dot.SetColor(pendingColor)
			add(scene.Rectangle{Figure: dot, Style: scene.FigureStyle{Hidden: true, Center: true}})
		}
	}
	return g, root
}

// Close stops the animation timer.
func (e *Editor) Close() {
	if e.ctx != nil {
		e.ctx.Timer.Disarm()
	}
}
