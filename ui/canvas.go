package ui

import (
	"math"

	"github.com/cornish/nodemap/minimap"
	"github.com/cornish/nodemap/render"
)

// Camera maps editor coordinates to canvas dots.
type Camera interface {
	ToScreen(x, y float64) (float64, float64)
}

// Stats counts what reached the grid in the last frame.
type Stats struct {
	Nodes       int
	Connections int
	Minimap     bool
}

// CanvasRenderer draws render signals into a grid. Use its Pipe in a
// render.Pipeline; off-screen nodes and connections stop there.
type CanvasRenderer struct {
	styles  Styles
	minimap *MinimapRenderer
	grid    *Grid
	camera  Camera
	stats   Stats
}

// NewCanvasRenderer creates a renderer. Minimap signals go to mm.
func NewCanvasRenderer(styles Styles, mm *MinimapRenderer) *CanvasRenderer {
	return &CanvasRenderer{styles: styles, minimap: mm}
}

// SetStyles updates the styles for runtime theme changes.
func (r *CanvasRenderer) SetStyles(styles Styles) {
	r.styles = styles
}

// Begin starts a frame on g seen through camera.
func (r *CanvasRenderer) Begin(g *Grid, camera Camera) {
	r.grid = g
	r.camera = camera
	r.stats = Stats{}
	if bg := r.styles.Theme.UI.CanvasBg; bg != "" {
		w, h := g.Size()
		g.Fill(0, 0, w, h, bg)
	}
}

// Stats returns the counts of the current frame.
func (r *CanvasRenderer) Stats() Stats {
	return r.stats
}

// Pipe draws PhaseRender signals and counts PhaseRendered ones.
func (r *CanvasRenderer) Pipe(s render.Signal) (render.Signal, bool) {
	if r.grid == nil {
		return s, false
	}
	switch s.Phase {
	case render.PhaseRender:
		return s, r.draw(s.Data)
	case render.PhaseRendered:
		switch s.Data.Kind {
		case render.KindNode:
			r.stats.Nodes++
		case render.KindConnection:
			r.stats.Connections++
		case render.KindMinimap:
			r.stats.Minimap = true
		}
	}
	return s, true
}

func (r *CanvasRenderer) draw(d render.Data) bool {
	switch d.Kind {
	case render.KindNode:
		return r.drawNode(d.Node)
	case render.KindConnection:
		return r.drawConnection(d.Connection)
	case render.KindMinimap:
		if r.minimap == nil || !r.minimap.IsEnabled() {
			return false
		}
		m := d.Minimap
		r.minimap.Draw(r.grid, minimap.Compute(m.Props, m.Width), m.Bounds)
		return true
	}
	return false
}

// nodeCells returns a node's cell rectangle, at least 2x2 so the frame
// shows at any zoom.
func (r *CanvasRenderer) nodeCells(d *render.NodeData) (x, y, w, h int) {
	rect := d.Node.Rect()
	x0, y0 := r.camera.ToScreen(rect.Left, rect.Top)
	x1, y1 := r.camera.ToScreen(rect.Right(), rect.Bottom())
	x = int(math.Floor(x0 / DotsPerCellX))
	y = int(math.Floor(y0 / DotsPerCellY))
	w = max(int(math.Ceil(x1/DotsPerCellX))-x, 2)
	h = max(int(math.Ceil(y1/DotsPerCellY))-y, 2)
	return
}

func (r *CanvasRenderer) drawNode(d *render.NodeData) bool {
	x, y, w, h := r.nodeCells(d)
	gw, gh := r.grid.Size()
	if x+w <= 0 || y+h <= 0 || x >= gw || y >= gh {
		return false
	}
	ui := r.styles.Theme.UI
	border, title := ui.NodeBorder, ui.NodeTitle
	if d.Selected {
		border, title = ui.NodeSelected, ui.NodeSelected
	}
	r.grid.Clear(x+1, y+1, w-2, h-2)
	r.grid.Box(x, y, w, h, border)

	label := d.Node.Title()
	switch {
	case h >= 3 && w >= 3:
		r.grid.Text(x+1, y+1, label, w-2, title)
		if h >= 4 && d.Node.Kind != "" {
			r.grid.Text(x+1, y+2, d.Node.Kind, w-2, ui.HelpFg)
		}
	case w >= 5:
		// too short for an inner row: label on the top border
		r.grid.Text(x+1, y, label, w-2, title)
	}
	return true
}

func (r *CanvasRenderer) drawConnection(d *render.ConnectionData) bool {
	fx, fy := d.From.Rect().Center()
	tx, ty := d.To.Rect().Center()
	x0, y0 := r.camera.ToScreen(fx, fy)
	x1, y1 := r.camera.ToScreen(tx, ty)

	gw, gh := r.grid.Size()
	w, h := float64(gw*DotsPerCellX), float64(gh*DotsPerCellY)
	if math.Max(x0, x1) < 0 || math.Max(y0, y1) < 0 || math.Min(x0, x1) >= w || math.Min(y0, y1) >= h {
		return false
	}
	// keep Bresenham bounded when one end is far off-screen
	x0, y0, x1, y1, ok := clipLine(x0, y0, x1, y1, w, h)
	if !ok {
		return false
	}
	r.grid.Line(int(x0), int(y0), int(x1), int(y1), r.styles.Theme.UI.Connection)
	return true
}

// clipLine clips a segment to [-1, w] x [-1, h] (Liang-Barsky). It
// reports false when the segment misses the box.
func clipLine(x0, y0, x1, y1, w, h float64) (float64, float64, float64, float64, bool) {
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0 + 1},
		{dx, w - x0},
		{-dy, y0 + 1},
		{dy, h - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			t0 = math.Max(t0, t)
		} else {
			t1 = math.Min(t1, t)
		}
	}
	if t0 > t1 {
		return 0, 0, 0, 0, false
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}
