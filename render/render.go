// Package render carries draw requests through a pipeline of pipes.
// Each request is a tagged Data value: a node, a connection or the
// minimap overlay.
package render

import (
	"fmt"

	"github.com/cornish/nodemap/graph"
	"github.com/cornish/nodemap/minimap"
)

// Kind discriminates Data.
type Kind int

const (
	KindNode Kind = iota
	KindConnection
	KindMinimap
)

func (k Kind) String() string {
	switch k {
	case KindNode:
		return "node"
	case KindConnection:
		return "connection"
	case KindMinimap:
		return "minimap"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// NodeData asks for one node to be drawn.
type NodeData struct {
	Node     graph.Node
	Selected bool
}

// ConnectionData asks for one connection to be drawn between two nodes.
type ConnectionData struct {
	Connection graph.Connection
	From       graph.Node
	To         graph.Node
}

// MinimapData asks for the minimap overlay. Host receives the gestures.
// Width is the measured container width, zero before measurement, and
// Bounds is where the container sits on the canvas.
type MinimapData struct {
	Props  minimap.Props
	Host   minimap.Host
	Width  float64
	Bounds minimap.Box
}

// Data is a draw request. Exactly one payload matches Kind.
type Data struct {
	Kind       Kind
	Node       *NodeData
	Connection *ConnectionData
	Minimap    *MinimapData
}

// Node wraps a node draw request.
func Node(d NodeData) Data {
	return Data{Kind: KindNode, Node: &d}
}

// Connection wraps a connection draw request.
func Connection(d ConnectionData) Data {
	return Data{Kind: KindConnection, Connection: &d}
}

// Minimap wraps a minimap draw request.
func Minimap(d MinimapData) Data {
	return Data{Kind: KindMinimap, Minimap: &d}
}

// Valid reports whether the payload matching Kind is set.
func (d Data) Valid() bool {
	switch d.Kind {
	case KindNode:
		return d.Node != nil
	case KindConnection:
		return d.Connection != nil
	case KindMinimap:
		return d.Minimap != nil
	default:
		return false
	}
}

// Phase is the point in a frame a signal belongs to.
type Phase int

const (
	// PhaseRender asks pipes to draw.
	PhaseRender Phase = iota
	// PhaseRendered reports a request was drawn.
	PhaseRendered
)

func (p Phase) String() string {
	switch p {
	case PhaseRender:
		return "render"
	case PhaseRendered:
		return "rendered"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Signal travels down a Pipeline.
type Signal struct {
	Phase Phase
	Data  Data
}

// Render builds a PhaseRender signal.
func Render(d Data) Signal {
	return Signal{Phase: PhaseRender, Data: d}
}

// Rendered builds a PhaseRendered signal.
func Rendered(d Data) Signal {
	return Signal{Phase: PhaseRendered, Data: d}
}
