// Package rods shows a box with six rods sticking out of its faces. The
// rods share one mesh swept from an outline file. The whole model turns
// about one axis at a time.
package rods

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/scenekit/internal/config"
	"github.com/Faultbox/scenekit/internal/demo"
	"github.com/Faultbox/scenekit/internal/engine/input"
	"github.com/Faultbox/scenekit/internal/generator"
	"github.com/Faultbox/scenekit/internal/logger"
	"github.com/Faultbox/scenekit/internal/mesh"
	"github.com/Faultbox/scenekit/internal/scene"
	"github.com/Faultbox/scenekit/pkg/math"
)

// Title is the window title.
const Title = "Box and rods"

const (
	minScale  = 0.3
	maxScale  = 10
	scaleStep = 0.25
	planeNear = -1000
	planeFar  = 1000
)

var eye = math.Point(0, 0, 400)

// Axis selects the turning axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// rodTurns places rod i: a rotation applied after the rod is lifted along Y.
var rodTurns = []math.Mat4{
	math.Identity(),
	math.RotateZ(math.DegToRad(90)),
	math.RotateZ(math.DegToRad(180)),
	math.RotateZ(math.DegToRad(270)),
	math.RotateX(math.DegToRad(90)),
	math.RotateX(math.DegToRad(270)),
}

// Demo is the rods program.
type Demo struct {
	cfg config.RodsConfig
	log *zap.Logger

	graph *scene.Graph
	root  scene.NodeID
	rods  []scene.NodeID

	box *mesh.Mesh
	rod *mesh.Mesh

	width, height int
	scale         float32
	angles        [3]float32
}

var _ demo.Demo = (*Demo)(nil)

// New returns an uninitialized demo.
func New() *Demo {
	return &Demo{log: logger.Named("rods"), scale: 1}
}

// Init loads the rod outline and builds the scene.
func (d *Demo) Init(ctx *demo.Context) error {
	d.cfg = ctx.Config.Rods
	d.width, d.height = ctx.Width, ctx.Height

	path := ctx.Config.AssetPath(ctx.Config.Assets.Outline)
	outline, err := generator.LoadOutline(path)
	if err != nil {
		return fmt.Errorf("rod outline: %w", err)
	}
	d.rod, err = generator.Revolve(outline, d.cfg.Slices, true)
	if err != nil {
		return fmt.Errorf("rod mesh: %w", err)
	}
	d.rod.SetColor(math.Red)
	d.box = generator.Box(d.cfg.BoxSize)
	d.box.SetColor(math.Red)

	d.graph = scene.New()
	d.root = d.graph.NewNode(scene.Group{})
	if err := d.graph.AddChild(d.root, d.graph.NewNode(scene.Mesh{Mesh: d.box, Color: math.Red})); err != nil {
		return err
	}

	lift := math.Translate(0, d.cfg.Distance, 0)
	d.rods = d.rods[:0]
	for _, turn := range rodTurns {
		n := d.graph.NewNode(scene.Mesh{Mesh: d.rod, Color: math.Red})
		if err := d.graph.SetTransform(n, turn.Mul(lift)); err != nil {
			return err
		}
		if err := d.graph.AddChild(d.root, n); err != nil {
			return err
		}
		d.rods = append(d.rods, n)
	}

	d.log.Info("scene built",
		zap.String("outline", path),
		zap.Int("outline_points", len(outline)),
		zap.Int("rod_vertices", len(d.rod.Vertices)),
		zap.Int("rod_faces", len(d.rod.Faces)),
	)
	return nil
}

// HandleEvent reacts to zoom, turn and reset keys.
func (d *Demo) HandleEvent(ev input.Event) bool {
	switch ev.Type {
	case input.EventWindowResize:
		d.width, d.height = ev.Width, ev.Height
		return true
	case input.EventKeyDown:
		if ev.Key == input.KeyF5 {
			d.Reset()
			return true
		}
	case input.EventChar:
		switch ev.Char {
		case '+':
			if d.scale < maxScale {
				d.scale += scaleStep
			}
			return true
		case '-':
			if d.scale > minScale {
				d.scale -= scaleStep
			}
			return true
		case 'x', 'X':
			d.Turn(AxisX)
			return true
		case 'y', 'Y':
			d.Turn(AxisY)
			return true
		case 'z', 'Z':
			d.Turn(AxisZ)
			return true
		case 'r', 'R':
			d.Reset()
			return true
		}
	}
	return false
}

// Turn advances the angle about axis by one step and zeroes the others.
func (d *Demo) Turn(axis Axis) {
	a := d.angles[axis] + d.cfg.RotateStep
	for a >= 360 {
		a -= 360
	}
	d.angles = [3]float32{}
	d.angles[axis] = a
	d.log.Debug("turn", zap.Int("axis", int(axis)), zap.Float32("degrees", a))
}

// Reset restores zoom and orientation.
func (d *Demo) Reset() {
	d.scale = 1
	d.angles = [3]float32{}
	d.log.Info("reset")
}

// Step does nothing; the model only moves on key presses.
func (d *Demo) Step() bool { return false }

// Scale returns the zoom factor.
func (d *Demo) Scale() float32 { return d.scale }

// Angles returns the turn about X, Y and Z in degrees.
func (d *Demo) Angles() [3]float32 { return d.angles }

// Rods returns the rod nodes.
func (d *Demo) Rods() []scene.NodeID { return d.rods }

// Graph returns the scene.
func (d *Demo) Graph() *scene.Graph { return d.graph }

// Orientation returns the model rotation for the current angles.
func (d *Demo) Orientation() math.Mat4 {
	return math.RotateX(math.DegToRad(d.angles[AxisX])).
		Mul(math.RotateY(math.DegToRad(d.angles[AxisY]))).
		Mul(math.RotateZ(math.DegToRad(d.angles[AxisZ])))
}

// Projection returns an orthographic projection showing the window at the
// current zoom, centred on the origin.
func (d *Demo) Projection() math.Mat4 {
	x := float32(d.width) * 0.5 / d.scale
	y := float32(d.height) * 0.5 / d.scale
	return math.Ortho(-x, x, -y, y, planeNear, planeFar)
}

// Render draws the model.
func (d *Demo) Render(s demo.Surface) {
	s.SetDepthTest(true)
	s.SetLighting(true)
	s.SetLight(math.Direction(1, 1, 1))
	s.Viewport(0, 0, d.width, d.height)
	s.SetProjection(d.Projection())
	s.SetView(math.LookAt(eye, math.Point(0, 0, 0), math.Direction(0, 1, 0)))
	if err := d.graph.Draw(d.root, d.Orientation(), s); err != nil {
		d.log.Error("draw", zap.Error(err))
	}
}

// Close releases nothing; meshes are owned by the renderer cache.
func (d *Demo) Close() {}
