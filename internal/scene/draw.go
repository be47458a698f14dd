package scene

import (
	"github.com/Faultbox/scenekit/pkg/math"
)

// Draw renders root and its subtree. Each node's world transform is
// parent * local. The node's geometry is drawn before its children, and the
// children are drawn in order. Every Push is matched by a Pop.
func (g *Graph) Draw(root NodeID, parent math.Mat4, r Renderer) error {
	if _, err := g.get(root); err != nil {
		return err
	}
	g.draw(root, parent, r)
	return nil
}

func (g *Graph) draw(id NodeID, parent math.Mat4, r Renderer) {
	n := &g.nodes[id]
	if n.hidden {
		return
	}

	world := parent.Mul(n.transform)
	r.Push(world)
	defer r.Pop()

	switch geo := n.geometry.(type) {
	case Mesh:
		if geo.Mesh != nil {
			r.DrawMesh(geo.Mesh, geo.Color)
		}
	case Rectangle:
		if geo.Figure != nil {
			r.DrawFigure(geo.Figure, geo.Style)
		}
	case Triangle:
		if geo.Figure != nil {
			r.DrawFigure(geo.Figure, geo.Style)
		}
	case Group, nil:
	}

	for _, c := range n.children {
		g.draw(c, world, r)
	}
}

// WorldTransform returns the product of the local transforms on the first
// path found from root down to id.
func (g *Graph) WorldTransform(root, id NodeID) (math.Mat4, bool) {
	if _, err := g.get(root); err != nil {
		return math.Mat4{}, false
	}
	return g.world(root, id, math.Identity())
}

func (g *Graph) world(cur, target NodeID, parent math.Mat4) (math.Mat4, bool) {
	m := parent.Mul(g.nodes[cur].transform)
	if cur == target {
		return m, true
	}
	for _, c := range g.nodes[cur].children {
		if w, ok := g.world(c, target, m); ok {
			return w, true
		}
	}
	return math.Mat4{}, false
}

// Pick returns the last drawn visible figure node under point p, given in
// root coordinates. Figures are tested in their own space by mapping p
// through the inverse of the node's world transform.
func (g *Graph) Pick(root NodeID, p math.Vec2) (NodeID, bool) {
	if _, err := g.get(root); err != nil {
		return 0, false
	}
	hit, found := NodeID(0), false
	g.pick(root, math.Identity(), p, &hit, &found)
	return hit, found
}

func (g *Graph) pick(id NodeID, parent math.Mat4, p math.Vec2, hit *NodeID, found *bool) {
	n := &g.nodes[id]
	if n.hidden {
		return
	}
	world := parent.Mul(n.transform)

	if f, ok := figureOf(n.geometry); ok {
		local := world.Inverse().TransformPoint(math.Point(p.X, p.Y, 0))
		if f.Inside(math.Vec2{X: local.X, Y: local.Y}) {
			*hit, *found = id, true
		}
	}
	for _, c := range n.children {
		g.pick(c, world, p, hit, found)
	}
}
