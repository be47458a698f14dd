// Package scene provides a hierarchical scene graph. Nodes carry a local
// transform and optional geometry; drawing accumulates transforms from the
// root down and hands geometry to a Renderer.
//
// Nodes live in an arena owned by Graph and are addressed by NodeID. A node
// may be the child of several parents, which is how the rods demo shares
// one mesh between six nodes. Cycles are rejected.
package scene

import (
	"errors"
	"fmt"

	"github.com/Faultbox/scenekit/internal/mesh"
	"github.com/Faultbox/scenekit/internal/shape"
	"github.com/Faultbox/scenekit/pkg/math"
)

var (
	// ErrUnknownNode is returned for a NodeID that does not belong to the graph.
	ErrUnknownNode = errors.New("unknown node")
	// ErrChildIndex is returned when a child index is out of range.
	ErrChildIndex = errors.New("child index out of range")
	// ErrCycle is returned when adding a child would create a cycle.
	ErrCycle = errors.New("child is an ancestor of parent")
)

// NodeID identifies a node within a Graph.
type NodeID int

// Renderer receives draw calls while a graph is traversed. Push and Pop
// bracket every node, and the matrix passed to Push is the node's world
// transform.
type Renderer interface {
	Push(world math.Mat4)
	Pop()
	DrawMesh(m *mesh.Mesh, color math.Color)
	DrawFigure(f shape.Figure, style FigureStyle)
}

type node struct {
	geometry  Geometry
	transform math.Mat4
	children  []NodeID
	hidden    bool
}

// Graph owns all nodes of a scene.
type Graph struct {
	nodes []node
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{}
}

// NewNode adds a node with an identity transform and no children.
func (g *Graph) NewNode(geometry Geometry) NodeID {
	g.nodes = append(g.nodes, node{geometry: geometry, transform: math.Identity()})
	return NodeID(len(g.nodes) - 1)
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

func (g *Graph) get(id NodeID) (*node, error) {
	if id < 0 || int(id) >= len(g.nodes) {
		return nil, fmt.Errorf("node %d: %w", id, ErrUnknownNode)
	}
	return &g.nodes[id], nil
}

// AddChild appends child to parent's children. Adding a node that is
// already a direct child of parent does nothing.
func (g *Graph) AddChild(parent, child NodeID) error {
	p, err := g.get(parent)
	if err != nil {
		return err
	}
	if _, err := g.get(child); err != nil {
		return err
	}
	for _, c := range p.children {
		if c == child {
			return nil
		}
	}
	if g.reaches(child, parent) {
		return fmt.Errorf("add %d under %d: %w", child, parent, ErrCycle)
	}
	p.children = append(p.children, child)
	return nil
}

// reaches reports whether target is from or one of its descendants.
func (g *Graph) reaches(from, target NodeID) bool {
	if from == target {
		return true
	}
	for _, c := range g.nodes[from].children {
		if g.reaches(c, target) {
			return true
		}
	}
	return false
}

// RemoveChild detaches child from parent. The child node itself stays in
// the graph and keeps its other parents.
func (g *Graph) RemoveChild(parent, child NodeID) error {
	p, err := g.get(parent)
	if err != nil {
		return err
	}
	for i, c := range p.children {
		if c == child {
			p.children = append(p.children[:i], p.children[i+1:]...)
			return nil
		}
	}
	return nil
}

// ClearChildren detaches all children of id.
func (g *Graph) ClearChildren(id NodeID) error {
	n, err := g.get(id)
	if err != nil {
		return err
	}
	n.children = nil
	return nil
}

// NumChildren returns the number of direct children of id.
func (g *Graph) NumChildren(id NodeID) int {
	n, err := g.get(id)
	if err != nil {
		return 0
	}
	return len(n.children)
}

// Children returns a copy of id's children in draw order.
func (g *Graph) Children(id NodeID) []NodeID {
	n, err := g.get(id)
	if err != nil {
		return nil
	}
	out := make([]NodeID, len(n.children))
	copy(out, n.children)
	return out
}

// Child returns the i-th child of parent.
func (g *Graph) Child(parent NodeID, i int) (NodeID, error) {
	p, err := g.get(parent)
	if err != nil {
		return 0, err
	}
	if i < 0 || i >= len(p.children) {
		return 0, fmt.Errorf("child %d of node %d (has %d): %w", i, parent, len(p.children), ErrChildIndex)
	}
	return p.children[i], nil
}

// SetTransform replaces the local transform of id.
func (g *Graph) SetTransform(id NodeID, m math.Mat4) error {
	n, err := g.get(id)
	if err != nil {
		return err
	}
	n.transform = m
	return nil
}

// Transform returns the local transform of id.
func (g *Graph) Transform(id NodeID) math.Mat4 {
	n, err := g.get(id)
	if err != nil {
		return math.Identity()
	}
	return n.transform
}

// SetGeometry replaces what id draws.
func (g *Graph) SetGeometry(id NodeID, geometry Geometry) error {
	n, err := g.get(id)
	if err != nil {
		return err
	}
	n.geometry = geometry
	return nil
}

// Geometry returns what id draws.
func (g *Graph) Geometry(id NodeID) Geometry {
	n, err := g.get(id)
	if err != nil {
		return nil
	}
	return n.geometry
}

// SetVisible shows or hides id and its subtree.
func (g *Graph) SetVisible(id NodeID, visible bool) error {
	n, err := g.get(id)
	if err != nil {
		return err
	}
	n.hidden = !visible
	return nil
}

// Visible reports whether id is drawn.
func (g *Graph) Visible(id NodeID) bool {
	n, err := g.get(id)
	return err == nil && !n.hidden
}
