package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cornish/nodemap/graph"
	"github.com/cornish/nodemap/minimap"
	"github.com/cornish/nodemap/render"
)

// identity maps editor units straight to dots.
type identity struct{}

func (identity) ToScreen(x, y float64) (float64, float64) { return x, y }

func newCanvas(cols, rows int) (*CanvasRenderer, *Grid, *render.Pipeline) {
	g := NewGrid(cols, rows, false)
	r := NewCanvasRenderer(DefaultStyles(), NewMinimapRenderer(DefaultStyles()))
	r.Begin(g, identity{})
	p := render.NewPipeline(nil)
	p.Use(r.Pipe)
	return r, g, p
}

func TestCanvasNode(t *testing.T) {
	r, g, p := newCanvas(12, 5)
	n := graph.Node{ID: "a", Label: "Add", Kind: "math", Width: 20, Height: 16}

	require.True(t, p.Frame(render.Node(render.NodeData{Node: n})))
	assert.Equal(t, "╭────────╮  \n"+
		"│Add     │  \n"+
		"│math    │  \n"+
		"╰────────╯  \n"+
		"            ", g.Plain())
	assert.Equal(t, Stats{Nodes: 1}, r.Stats())
}

func TestCanvasSelectedNodeColor(t *testing.T) {
	_, g, p := newCanvas(12, 5)
	n := graph.Node{ID: "a", Width: 20, Height: 16}
	p.Frame(render.Node(render.NodeData{Node: n, Selected: true}))
	assert.Equal(t, DefaultStyles().Theme.UI.NodeSelected, g.At(0, 0).Fg)
	assert.Equal(t, 'a', g.At(1, 1).Rune, "falls back to the ID")
}

func TestCanvasCullsOffscreen(t *testing.T) {
	r, _, p := newCanvas(10, 5)
	far := graph.Node{ID: "far", X: 1000, Y: 1000, Width: 10, Height: 10}
	left := graph.Node{ID: "left", X: -50, Width: 10, Height: 10}

	assert.False(t, p.Frame(render.Node(render.NodeData{Node: far})))
	assert.False(t, p.Frame(render.Node(render.NodeData{Node: left})))
	assert.Equal(t, 0, r.Stats().Nodes)
}

func TestCanvasConnection(t *testing.T) {
	r, g, p := newCanvas(30, 2)
	a := graph.Node{ID: "a", Width: 4, Height: 4}
	b := graph.Node{ID: "b", X: 40, Width: 4, Height: 4}

	require.True(t, p.Frame(render.Connection(render.ConnectionData{From: a, To: b})))
	for x := 1; x < 21; x++ {
		assert.NotZero(t, g.At(x, 0).Dots, "cell %d", x)
	}
	assert.Zero(t, g.At(25, 0).Dots)
	assert.Equal(t, 1, r.Stats().Connections)

	off := graph.Node{ID: "off", X: 500, Y: 500, Width: 4, Height: 4}
	far := graph.Node{ID: "far", X: 900, Y: 500, Width: 4, Height: 4}
	assert.False(t, p.Frame(render.Connection(render.ConnectionData{From: off, To: far})))
}

func TestCanvasNodesCoverConnections(t *testing.T) {
	_, g, p := newCanvas(12, 5)
	a := graph.Node{ID: "a", Width: 20, Height: 16}
	b := graph.Node{ID: "b", X: 100, Y: 100, Width: 4, Height: 4}
	p.Frame(render.Connection(render.ConnectionData{From: a, To: b}))
	p.Frame(render.Node(render.NodeData{Node: a}))
	assert.Zero(t, g.At(5, 2).Dots)
}

func TestCanvasMinimap(t *testing.T) {
	r, g, p := newCanvas(6, 4)
	d := render.MinimapData{
		Props: minimap.Props{
			Size:     8,
			Ratio:    1,
			Nodes:    []minimap.Rect{{Width: 0.25, Height: 0.5}},
			Viewport: minimap.Rect{Left: 0.5, Width: 0.5, Height: 1},
		},
		Width:  8,
		Bounds: minimap.Box{Left: 2, Top: 4, Width: 8, Height: 8},
	}
	require.True(t, p.Frame(render.Minimap(d)))
	assert.True(t, r.Stats().Minimap)
	assert.Equal(t, uint8(0xFF), g.At(1, 1).Dots)

	r.minimap.SetEnabled(false)
	assert.False(t, p.Frame(render.Minimap(d)))
}

func TestCanvasWithoutFrame(t *testing.T) {
	r := NewCanvasRenderer(DefaultStyles(), nil)
	_, ok := r.Pipe(render.Render(render.Node(render.NodeData{})))
	assert.False(t, ok)
}

func TestClipLine(t *testing.T) {
	x0, y0, x1, y1, ok := clipLine(-100, 5, 100, 5, 20, 20)
	require.True(t, ok)
	assert.InDelta(t, -1, x0, 1e-9)
	assert.InDelta(t, 5, y0, 1e-9)
	assert.InDelta(t, 20, x1, 1e-9)
	assert.InDelta(t, 5, y1, 1e-9)

	_, _, _, _, ok = clipLine(-10, 30, 30, 50, 20, 20)
	assert.False(t, ok)
}
