package solar

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/scenekit/internal/scene"
	"github.com/Faultbox/scenekit/pkg/math"
)

// body is something on an orbit. Its placement node carries
//
//	tilt · RotY(orbit) · T(distance, 0, 0) · RotY(-orbit)
//
// so the body circles its parent without turning, and its children ride
// along. The spin node under it turns the body itself:
//
//	spinTilt · RotY(rotation) · shape
type body struct {
	name      string
	placement scene.NodeID
	spin      scene.NodeID

	distance float32
	tilt     math.Mat4
	spinTilt math.Mat4
	shape    math.Mat4

	orbit    float32
	rotation float32
}

func newBody(name string, placement, spin scene.NodeID, distance float32) *body {
	return &body{
		name:      name,
		placement: placement,
		spin:      spin,
		distance:  distance,
		tilt:      math.Identity(),
		spinTilt:  math.Identity(),
		shape:     math.Identity(),
	}
}

// advance adds to both angles, wrapping them to (-360, 360).
func (b *body) advance(orbitStep, spinStep float32) {
	b.orbit = wrap(b.orbit + orbitStep)
	b.rotation = wrap(b.rotation + spinStep)
}

func (b *body) reset() {
	b.orbit, b.rotation = 0, 0
}

func (b *body) placementTransform() math.Mat4 {
	o := math.DegToRad(b.orbit)
	return b.tilt.
		Mul(math.RotateY(o)).
		Mul(math.Translate(b.distance, 0, 0)).
		Mul(math.RotateY(-o))
}

func (b *body) spinTransform() math.Mat4 {
	return b.spinTilt.
		Mul(math.RotateY(math.DegToRad(b.rotation))).
		Mul(b.shape)
}

// apply writes the current angles into the graph.
func (b *body) apply(g *scene.Graph) error {
	if err := g.SetTransform(b.placement, b.placementTransform()); err != nil {
		return err
	}
	return g.SetTransform(b.spin, b.spinTransform())
}

func wrap(deg float32) float32 {
	return math32.Mod(deg, 360)
}
