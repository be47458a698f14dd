// Package solar animates a sun, an earth with a moon and a satellite, and
// their orbits. It is driven by a step timer or single steps, and viewed
// through a movable camera in one viewport or a grid of them.
package solar

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/scenekit/internal/config"
	"github.com/Faultbox/scenekit/internal/demo"
	"github.com/Faultbox/scenekit/internal/engine/camera"
	"github.com/Faultbox/scenekit/internal/engine/input"
	"github.com/Faultbox/scenekit/internal/generator"
	"github.com/Faultbox/scenekit/internal/logger"
	"github.com/Faultbox/scenekit/internal/mesh"
	"github.com/Faultbox/scenekit/internal/scene"
	"github.com/Faultbox/scenekit/pkg/math"
)

// Title is the window title.
const Title = "Solar system"

const (
	minScale    = 0.3
	maxScale    = 10
	scaleStep   = 0.25
	planeNear   = 0.5
	planeFar    = 1000
	fovY        = 45
	axisLength  = 50
	ringDivs    = 32
	gridColumns = 4
)

var (
	sunColor       = math.Color{R: 0.2, G: 0.2, B: 0.2}
	sunEmission    = math.Color{R: 0.9, G: 0.9, B: 0.3}
	satelliteColor = math.Color{R: 0.4, G: 0.4, B: 0.4}
	earthRingColor = math.Color{R: 0.4, G: 0.25, B: 0.04}
	moonRingColor  = math.Color{R: 0.5, G: 0.5, B: 0.5}
	satRingColor   = math.Color{R: 0.2, G: 0.2, B: 0.5}
)

// Demo is the solar system program.
type Demo struct {
	ctx *demo.Context
	cfg config.SolarConfig
	log *zap.Logger

	graph *scene.Graph
	root  scene.NodeID
	axes  scene.NodeID

	sun, earth, moon, satellite *body

	camera  *camera.Camera
	presets []camera.Preset

	width, height int
	scale         float32
	ortho         bool
	grid          bool
	running       bool
	showAxes      bool
}

var _ demo.Demo = (*Demo)(nil)

// New returns an uninitialized demo.
func New() *Demo {
	return &Demo{log: logger.Named("solar")}
}

// Init builds the scene. Missing earth or moon textures are not fatal.
func (d *Demo) Init(ctx *demo.Context) error {
	d.ctx = ctx
	d.cfg = ctx.Config.Solar
	d.width, d.height = ctx.Width, ctx.Height
	ctx.Timer.Interval = d.cfg.StepInterval

	if err := d.build(); err != nil {
		return err
	}
	d.loadTexture("earth", ctx.Config.Assets.Earth, d.earth)
	d.loadTexture("moon", ctx.Config.Assets.Moon, d.moon)

	d.presets = camera.Presets(d.cfg.CameraRange)
	d.camera = camera.New(math.Point(0, 0, 1), math.Point(0, 0, 0), math.Direction(0, 1, 0))
	d.Reset()
	return nil
}

func (d *Demo) build() error {
	c := d.cfg
	g := scene.New()
	d.graph = g

	sphere := func(radius float32) (*mesh.Mesh, error) {
		return generator.Sphere(radius, c.SphereSlices, c.SphereStacks)
	}
	sunMesh, err := sphere(c.SunRadius)
	if err != nil {
		return fmt.Errorf("sun: %w", err)
	}
	sunMesh.Emission = sunEmission
	earthMesh, err := sphere(c.EarthRadius)
	if err != nil {
		return fmt.Errorf("earth: %w", err)
	}
	moonMesh, err := sphere(c.MoonRadius)
	if err != nil {
		return fmt.Errorf("moon: %w", err)
	}
	satMesh := generator.Satellite()

	ring := func(radius float32, color math.Color) (scene.NodeID, error) {
		m, err := generator.Ring(radius, ringDivs)
		if err != nil {
			return 0, err
		}
		return g.NewNode(scene.Mesh{Mesh: m, Color: color}), nil
	}
	earthRing, err := ring(c.EarthDistance, earthRingColor)
	if err != nil {
		return err
	}
	moonRing, err := ring(c.MoonDistance, moonRingColor)
	if err != nil {
		return err
	}
	satRing, err := ring(c.SatelliteDistance, satRingColor)
	if err != nil {
		return err
	}
	// The satellite circles in the earth's XY plane.
	if err := g.SetTransform(satRing, math.RotateX(math.DegToRad(-90))); err != nil {
		return err
	}

	place := func(name string, m *mesh.Mesh, color math.Color, distance float32) *body {
		return newBody(name, g.NewNode(scene.Group{}), g.NewNode(scene.Mesh{Mesh: m, Color: color}), distance)
	}
	d.sun = place("sun", sunMesh, sunColor, 0)
	d.earth = place("earth", earthMesh, math.White, c.EarthDistance)
	d.moon = place("moon", moonMesh, math.White, c.MoonDistance)
	d.satellite = place("satellite", satMesh, satelliteColor, c.SatelliteDistance)
	d.satellite.tilt = math.RotateX(math.DegToRad(-90))
	d.satellite.spinTilt = math.RotateX(math.DegToRad(-90))
	d.satellite.shape = math.Scale(c.SatelliteSize, c.SatelliteSize, c.SatelliteSize)

	d.root = g.NewNode(scene.Group{})
	d.axes = g.NewNode(scene.Group{})
	axisLines, err := d.axisNodes()
	if err != nil {
		return err
	}

	links := []struct {
		parent   scene.NodeID
		children []scene.NodeID
	}{
		{d.root, []scene.NodeID{d.axes, d.sun.placement}},
		{d.axes, axisLines},
		{d.sun.placement, []scene.NodeID{earthRing, d.earth.placement, d.sun.spin}},
		{d.earth.placement, []scene.NodeID{moonRing, d.moon.placement, satRing, d.satellite.placement, d.earth.spin}},
		{d.moon.placement, []scene.NodeID{d.moon.spin}},
		{d.satellite.placement, []scene.NodeID{d.satellite.spin}},
	}
	for _, l := range links {
		for _, child := range l.children {
			if err := g.AddChild(l.parent, child); err != nil {
				return err
			}
		}
	}

	d.log.Info("scene built", zap.Int("nodes", g.Len()))
	return nil
}

func (d *Demo) axisNodes() ([]scene.NodeID, error) {
	dirs := []struct {
		end   math.Vec3
		color math.Color
	}{
		{math.Point(axisLength, 0, 0), math.Red},
		{math.Point(0, axisLength, 0), math.Green},
		{math.Point(0, 0, axisLength), math.Blue},
	}
	nodes := make([]scene.NodeID, 0, len(dirs))
	for _, a := range dirs {
		m, err := mesh.New([]math.Vec3{math.Point(0, 0, 0), a.end}, [][]uint32{{0, 1}})
		if err != nil {
			return nil, fmt.Errorf("axis line: %w", err)
		}
		m.Lines = true
		m.SetColor(a.color)
		nodes = append(nodes, d.graph.NewNode(scene.Mesh{Mesh: m, Color: a.color}))
	}
	return nodes, nil
}

func (d *Demo) loadTexture(name, file string, b *body) {
	if file == "" {
		return
	}
	path := d.ctx.Config.AssetPath(file)
	tex, err := d.ctx.Textures.Load(path)
	if err != nil {
		d.log.Warn("texture not loaded", zap.String("body", name), zap.String("path", path), zap.Error(err))
		return
	}
	if m, ok := d.graph.Geometry(b.spin).(scene.Mesh); ok {
		m.Mesh.Texture = tex.ID
	}
}

// Reset restores zoom, projection, layout, axes, camera and all angles,
// and stops the timer.
func (d *Demo) Reset() {
	d.scale = 1
	d.ortho = true
	d.grid = false
	d.showAxes = true
	d.setRunning(false)
	d.presets[0].Apply(d.camera)
	for _, b := range d.bodies() {
		b.reset()
	}
	d.sync()
	d.log.Info("reset")
}

func (d *Demo) bodies() []*body {
	return []*body{d.sun, d.earth, d.moon, d.satellite}
}

func (d *Demo) sync() {
	for _, b := range d.bodies() {
		if err := b.apply(d.graph); err != nil {
			d.log.Error("update transform", zap.String("body", b.name), zap.Error(err))
		}
	}
	if err := d.graph.SetVisible(d.axes, d.showAxes); err != nil {
		d.log.Error("toggle axes", zap.Error(err))
	}
}

// OneStep advances every orbit and spin by its configured step.
func (d *Demo) OneStep() {
	c := d.cfg
	d.earth.advance(c.EarthOrbitStep, c.EarthSpinStep)
	d.moon.advance(c.MoonOrbitStep, c.MoonSpinStep)
	d.satellite.advance(c.SatelliteOrbitStep, c.SatelliteSpinStep)
	d.sync()
}

func (d *Demo) setRunning(on bool) {
	d.running = on
	if on {
		d.ctx.ArmTimer()
	} else {
		d.ctx.Timer.Disarm()
	}
}

// Step runs one timer tick while the animation is on.
func (d *Demo) Step() bool {
	if !d.running {
		return false
	}
	d.OneStep()
	d.ctx.ArmTimer()
	return true
}

// HandleEvent reacts to keys and window resizes.
func (d *Demo) HandleEvent(ev input.Event) bool {
	switch ev.Type {
	case input.EventWindowResize:
		d.width, d.height = ev.Width, ev.Height
		return true
	case input.EventChar:
		return d.handleChar(ev.Char)
	case input.EventKeyDown:
		return d.handleKey(ev.Key)
	}
	return false
}

func (d *Demo) handleChar(c rune) bool {
	step := d.cfg.CameraStep
	switch c {
	case '+':
		if d.scale < maxScale {
			d.scale += scaleStep
		}
	case '-':
		if d.scale > minScale {
			d.scale -= scaleStep
		}
	case 's':
		if d.running {
			return false
		}
		d.OneStep()
	case 't':
		d.grid = !d.grid
		d.log.Info("viewports", zap.Bool("grid", d.grid))
	case 'o':
		d.presets[0].Apply(d.camera)
	case 'x':
		d.presets[1].Apply(d.camera)
	case 'y':
		d.presets[2].Apply(d.camera)
	case 'z':
		d.presets[3].Apply(d.camera)
	case 'p':
		d.ortho = !d.ortho
		d.log.Info("projection", zap.Bool("ortho", d.ortho))
	case 'i':
		d.Reset()
	case 'n':
		d.camera.MoveForward(step)
	case 'N':
		d.camera.MoveBackward(step)
	case 'u':
		d.camera.MoveRight(step)
	case 'U':
		d.camera.MoveLeft(step)
	case 'v':
		d.camera.MoveUp(step)
	case 'V':
		d.camera.MoveDown(step)
	case 'g':
		d.camera.RotateLeft(step)
	default:
		return false
	}
	return true
}

func (d *Demo) handleKey(k input.Key) bool {
	step := d.cfg.CameraStep
	switch k {
	case input.KeyF1:
		d.presets[0].Apply(d.camera)
	case input.KeyF2:
		d.presets[1].Apply(d.camera)
	case input.KeyF3:
		d.presets[2].Apply(d.camera)
	case input.KeyF4:
		d.presets[3].Apply(d.camera)
	case input.KeyF5:
		d.Reset()
	case input.KeyF8:
		d.showAxes = !d.showAxes
		d.sync()
	case input.KeyF9:
		d.setRunning(!d.running)
		d.log.Info("timer", zap.Bool("running", d.running))
	case input.KeyUp:
		d.camera.MoveForward(step)
	case input.KeyDown:
		d.camera.MoveBackward(step)
	case input.KeyLeft:
		d.camera.MoveLeft(step)
	case input.KeyRight:
		d.camera.MoveRight(step)
	case input.KeyPageUp:
		d.camera.MoveUp(step)
	case input.KeyPageDown:
		d.camera.MoveDown(step)
	case input.KeyDelete, input.KeyF12:
		d.camera.RotateRight(step)
	case input.KeyF11:
		d.camera.RotateLeft(step)
	default:
		return false
	}
	return true
}

// Running reports whether the step timer drives the animation.
func (d *Demo) Running() bool { return d.running }

// Scale returns the zoom factor.
func (d *Demo) Scale() float32 { return d.scale }

// Camera returns the view camera.
func (d *Demo) Camera() *camera.Camera { return d.camera }

// Projection returns the projection for the whole window at the current
// zoom. Zooming narrows the field of view in perspective mode.
func (d *Demo) Projection() math.Mat4 {
	w, h := float32(d.width), float32(d.height)
	if d.ortho {
		x := w * 0.5 / d.scale
		y := h * 0.5 / d.scale
		return math.Ortho(-x, x, -y, y, planeNear, planeFar)
	}
	return math.Perspective(math.DegToRad(fovY/d.scale), w/h, planeNear, planeFar)
}

// Tiles returns the viewports to draw into: the whole window, or a grid
// four tiles wide keeping the window's aspect ratio.
func (d *Demo) Tiles() [][4]int {
	if !d.grid {
		return [][4]int{{0, 0, d.width, d.height}}
	}
	tw := d.width / gridColumns
	th := 0
	if d.width > 0 {
		th = tw * d.height / d.width
	}
	if tw == 0 || th == 0 {
		return nil
	}
	rows := d.height / th
	tiles := make([][4]int, 0, rows*gridColumns)
	for i := 0; i < rows; i++ {
		for j := 0; j < gridColumns; j++ {
			tiles = append(tiles, [4]int{j * tw, i * th, tw, th})
		}
	}
	return tiles
}

// Render draws the scene into every tile.
func (d *Demo) Render(s demo.Surface) {
	s.SetDepthTest(true)
	s.SetLighting(true)
	s.SetLight(math.Point(0, 0, 0))
	s.SetProjection(d.Projection())
	s.SetView(d.camera.ViewMatrix())
	for _, t := range d.Tiles() {
		s.Viewport(t[0], t[1], t[2], t[3])
		if err := d.graph.Draw(d.root, math.Identity(), s); err != nil {
			d.log.Error("draw", zap.Error(err))
			return
		}
	}
	s.Viewport(0, 0, d.width, d.height)
}

// Close stops the timer.
func (d *Demo) Close() {
	if d.ctx != nil {
		d.ctx.Timer.Disarm()
	}
}
