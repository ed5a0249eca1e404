package area

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cornish/nodemap/drag"
	"github.com/cornish/nodemap/graph"
	"github.com/cornish/nodemap/minimap"
)

func testGraph() *graph.Graph {
	return &graph.Graph{Nodes: []graph.Node{
		{ID: "a", Label: "A", X: 0, Y: 0, Width: 100, Height: 50},
		{ID: "b", Label: "B", X: 300, Y: 100, Width: 100, Height: 50},
	}}
}

func newTestArea(t *testing.T) (*Area, *clock) {
	t.Helper()
	a := New(testGraph(), DefaultOptions(), nil)
	a.Resize(200, 100)
	c := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	a.history.now = c.now
	return a, c
}

func rect(t *testing.T, want, got minimap.Rect) {
	t.Helper()
	assert.InDelta(t, want.Left, got.Left, 1e-9)
	assert.InDelta(t, want.Top, got.Top, 1e-9)
	assert.InDelta(t, want.Width, got.Width, 1e-9)
	assert.InDelta(t, want.Height, got.Height, 1e-9)
}

func TestViewportRect(t *testing.T) {
	a, _ := newTestArea(t)
	assert.Equal(t, graph.Rect{Width: 200, Height: 100}, a.ViewportRect())

	a.SetTransform(minimap.Transform{X: -50, Y: 20, K: 2})
	assert.Equal(t, graph.Rect{Left: 25, Top: -10, Width: 100, Height: 50}, a.ViewportRect())
}

func TestMinimapProps(t *testing.T) {
	a, _ := newTestArea(t)
	p := a.MinimapProps(40, 2)

	assert.Equal(t, 40.0, p.Size)
	assert.Equal(t, 2.0, p.Ratio)
	require.Len(t, p.Nodes, 2)
	// bounds (0,0,400,150), extent max(400, 150*2) = 400
	rect(t, minimap.Rect{Left: 0, Top: 0, Width: 0.25, Height: 0.125}, p.Nodes[0])
	rect(t, minimap.Rect{Left: 0.75, Top: 0.25, Width: 0.25, Height: 0.125}, p.Nodes[1])
	rect(t, minimap.Rect{Left: 0, Top: 0, Width: 0.5, Height: 0.25}, p.Viewport)
}

func TestMinimapPropsFitBox(t *testing.T) {
	a, _ := newTestArea(t)
	a.SetTransform(minimap.Transform{X: 0, Y: 900, K: 1})
	p := a.MinimapProps(30, 3)

	all := append([]minimap.Rect{p.Viewport}, p.Nodes...)
	for _, r := range all {
		assert.GreaterOrEqual(t, r.Left, -1e-9)
		assert.GreaterOrEqual(t, r.Top, -1e-9)
		assert.LessOrEqual(t, r.Left+r.Width, 1+1e-9)
		assert.LessOrEqual(t, r.Top+r.Height, 1/3.0+1e-9)
	}
}

func TestMinimapPropsEmptyGraph(t *testing.T) {
	a := New(&graph.Graph{}, DefaultOptions(), nil)
	p := a.MinimapProps(40, 2)
	assert.Empty(t, p.Nodes)
	rect(t, minimap.Rect{}, p.Viewport)

	a.Resize(100, 100)
	p = a.MinimapProps(40, 2)
	rect(t, minimap.Rect{Width: 0.5, Height: 0.5}, p.Viewport)
}

func TestTranslateAccumulatesFromInitial(t *testing.T) {
	a, _ := newTestArea(t)
	a.MinimapProps(40, 2)

	initial := a.Start()
	a.Translate(-0.1, 0, initial)
	assert.InDelta(t, -40, a.Transform().X, 1e-9)

	a.Translate(-0.05, 0.02, initial)
	assert.InDelta(t, -60, a.Transform().X, 1e-9)
	assert.InDelta(t, 8, a.Transform().Y, 1e-9)
	assert.Equal(t, 1.0, a.Transform().K)

	assert.True(t, a.History().CanBack())
	require.True(t, a.Back())
	assert.Equal(t, initial, a.Transform())
}

func TestTranslateNewSession(t *testing.T) {
	a, c := newTestArea(t)
	a.MinimapProps(40, 2)

	first := a.Start()
	a.Translate(-0.1, 0, first)
	c.advance(time.Second)

	second := a.Start()
	a.Translate(-0.1, 0, second)
	assert.InDelta(t, -40-0.1*a.frame().extent, a.Transform().X, 1e-9)
}

func TestTranslateRepeatedSnapshotStartsFresh(t *testing.T) {
	a, _ := newTestArea(t)
	a.MinimapProps(40, 2)

	first := a.Start()
	a.Translate(0.1, 0, first)
	a.SetTransform(first)
	extent := a.frame().extent

	second := a.Start()
	require.Equal(t, first, second)
	a.Translate(0.05, 0, second)
	assert.InDelta(t, first.X+0.05*extent, a.Transform().X, 1e-9)
}

func TestPoint(t *testing.T) {
	a, _ := newTestArea(t)
	a.MinimapProps(40, 2)

	a.Point(0.5, 0.25)
	// editor (200, 50) lands mid-canvas
	assert.InDelta(t, -100, a.Transform().X, 1e-9)
	assert.InDelta(t, 0, a.Transform().Y, 1e-9)
	assert.True(t, a.History().CanBack())
}

func TestZoom(t *testing.T) {
	a, _ := newTestArea(t)

	require.True(t, a.Zoom(2, 100, 50))
	assert.Equal(t, minimap.Transform{X: -100, Y: -50, K: 2}, a.Transform())

	ex, ey := a.ToEditor(100, 50)
	assert.InDelta(t, 100, ex, 1e-9)
	assert.InDelta(t, 50, ey, 1e-9)

	a.Zoom(100, 0, 0)
	assert.Equal(t, DefaultOptions().MaxZoom, a.Transform().K)
	assert.False(t, a.Zoom(2, 0, 0), "already at max zoom")

	a.Zoom(1e-6, 0, 0)
	assert.Equal(t, DefaultOptions().MinZoom, a.Transform().K)
	assert.False(t, a.Zoom(0, 0, 0))
	assert.False(t, a.Zoom(-1, 0, 0))
}

func TestPan(t *testing.T) {
	a, _ := newTestArea(t)
	a.Pan(10, -4)
	assert.Equal(t, minimap.Transform{X: 10, Y: -4, K: 1}, a.Transform())
	assert.False(t, a.History().CanBack(), "plain pans are not history")
}

func TestFit(t *testing.T) {
	a, _ := newTestArea(t)
	require.True(t, a.Fit())
	tr := a.Transform()
	assert.InDelta(t, 0.45, tr.K, 1e-9)
	assert.InDelta(t, 10, tr.X, 1e-9)
	assert.InDelta(t, 16.25, tr.Y, 1e-9)

	empty := New(&graph.Graph{}, DefaultOptions(), nil)
	empty.Resize(10, 10)
	assert.False(t, empty.Fit())
}

func TestFocus(t *testing.T) {
	a, _ := newTestArea(t)
	require.True(t, a.Focus("b"))
	// center of b is (350, 125)
	assert.Equal(t, minimap.Transform{X: -250, Y: -75, K: 1}, a.Transform())
	assert.False(t, a.Focus("missing"))
}

func TestNodeAt(t *testing.T) {
	a, _ := newTestArea(t)
	n, ok := a.NodeAt(10, 10)
	require.True(t, ok)
	assert.Equal(t, "a", n.ID)

	_, ok = a.NodeAt(150, 10)
	assert.False(t, ok)
}

func TestBackForward(t *testing.T) {
	a, c := newTestArea(t)
	start := a.Transform()

	a.Focus("b")
	c.advance(time.Second)
	focused := a.Transform()
	a.Focus("a")

	require.True(t, a.Back())
	assert.Equal(t, focused, a.Transform())
	require.True(t, a.Back())
	assert.Equal(t, start, a.Transform())
	assert.False(t, a.Back())

	require.True(t, a.Forward())
	assert.Equal(t, focused, a.Transform())
}

type event struct{ x, y float64 }

func (e *event) StopPropagation() {}
func (e *event) PreventDefault()  {}

func TestMinimapDragMovesViewportWithPointer(t *testing.T) {
	a, _ := newTestArea(t)
	props := a.MinimapProps(40, 2)

	s := drag.NewSurface[*event]()
	v := minimap.NewView(a, s, func(e *event) drag.Position {
		return drag.Position{X: e.x, Y: e.y}
	}, nil)
	v.SetProps(props)
	v.Container().Place(minimap.Box{Width: 80, Height: 40})
	v.Container().Measure(80)

	before := a.ViewportRect()
	v.PointerDown(&event{x: 5, y: 5})
	require.True(t, v.Panning())
	s.Dispatch(drag.EventMove, &event{x: 13, y: 5})
	s.Dispatch(drag.EventUp, &event{x: 13, y: 5})

	after := a.ViewportRect()
	// 8 of 80 pixels is a tenth of the 400 unit extent
	assert.InDelta(t, before.Left+40, after.Left, 1e-9)
	assert.InDelta(t, before.Top, after.Top, 1e-9)
}
