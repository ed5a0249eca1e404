// Package graph holds node-graph documents: nodes placed in editor space
// and the connections between them.
package graph

import "math"

// Default node size in editor units, used when a document omits one.
const (
	DefaultNodeWidth  = 180
	DefaultNodeHeight = 120
	DefaultKind       = "node"
)

// Node is a box in editor space.
type Node struct {
	ID     string         `toml:"id" json:"id"`
	Label  string         `toml:"label" json:"label"`
	Kind   string         `toml:"kind" json:"kind"`
	X      float64        `toml:"x" json:"x"`
	Y      float64        `toml:"y" json:"y"`
	Width  float64        `toml:"width" json:"width"`
	Height float64        `toml:"height" json:"height"`
	Props  map[string]any `toml:"props" json:"props,omitempty"`
}

// Connection links the output of one node to the input of another.
type Connection struct {
	ID   string `toml:"id" json:"id"`
	From string `toml:"from" json:"from"`
	To   string `toml:"to" json:"to"`
}

// Graph is a whole document.
type Graph struct {
	Name        string       `toml:"name" json:"name"`
	Nodes       []Node       `toml:"nodes" json:"nodes"`
	Connections []Connection `toml:"connections" json:"connections"`
	// Encoding is the charset the document was read in, set by Load.
	Encoding string `toml:"-" json:"-"`
}

// Rect is an axis-aligned rectangle in editor space.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Right edge.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Center returns the midpoint.
func (r Rect) Center() (float64, float64) {
	return r.Left + r.Width/2, r.Top + r.Height/2
}

// Union returns the smallest rect covering r and o.
func (r Rect) Union(o Rect) Rect {
	left := math.Min(r.Left, o.Left)
	top := math.Min(r.Top, o.Top)
	right := math.Max(r.Right(), o.Right())
	bottom := math.Max(r.Bottom(), o.Bottom())
	return Rect{Left: left, Top: top, Width: right - left, Height: bottom - top}
}

// Rect returns the node's box.
func (n Node) Rect() Rect {
	return Rect{Left: n.X, Top: n.Y, Width: n.Width, Height: n.Height}
}

// Title is the label, or the ID when the label is empty.
func (n Node) Title() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Node finds a node by ID.
func (g *Graph) Node(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Bounds returns the rect covering every node. ok is false for an empty
// graph.
func (g *Graph) Bounds() (r Rect, ok bool) {
	for i, n := range g.Nodes {
		if i == 0 {
			r = n.Rect()
			continue
		}
		r = r.Union(n.Rect())
	}
	return r, len(g.Nodes) > 0
}

// Endpoints resolves both ends of c.
func (g *Graph) Endpoints(c Connection) (from, to Node, ok bool) {
	from, okFrom := g.Node(c.From)
	to, okTo := g.Node(c.To)
	return from, to, okFrom && okTo
}
