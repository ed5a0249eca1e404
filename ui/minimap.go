package ui

import (
	"math"

	"github.com/cornish/nodemap/minimap"
)

// MinimapMargin is the gap in cells between the minimap frame and the
// canvas edge.
const MinimapMargin = 1

// MinimapRenderer draws a minimap layout into a grid. Nodes are filled
// braille boxes, the viewport is an outline. In ASCII mode nodes become
// '#' cells and the viewport '+' cells.
type MinimapRenderer struct {
	styles  Styles
	enabled bool
}

// NewMinimapRenderer creates an enabled renderer.
func NewMinimapRenderer(styles Styles) *MinimapRenderer {
	return &MinimapRenderer{
		styles:  styles,
		enabled: true,
	}
}

// SetStyles updates the styles for runtime theme changes.
func (r *MinimapRenderer) SetStyles(styles Styles) {
	r.styles = styles
}

// SetEnabled shows or hides the minimap.
func (r *MinimapRenderer) SetEnabled(enabled bool) {
	r.enabled = enabled
}

// IsEnabled returns whether the minimap is shown.
func (r *MinimapRenderer) IsEnabled() bool {
	return r.enabled
}

// Toggle flips the minimap on or off.
func (r *MinimapRenderer) Toggle() bool {
	r.enabled = !r.enabled
	return r.enabled
}

// Placement is where a minimap goes on a canvas.
type Placement struct {
	// Bounds is the content box in dots, relative to the canvas.
	Bounds minimap.Box
	// Width is what the container measures once drawn: the configured
	// width, narrowed to the cells available.
	Width float64
}

// PlaceMinimap puts the minimap in the bottom-right corner of a canvas
// of cols by rows cells. It reports false when the canvas is too small
// to hold a framed minimap.
func PlaceMinimap(cols, rows int, props minimap.Props) (Placement, bool) {
	want := props.RenderedWidth()
	if !minimap.Measured(want) || !minimap.Measured(props.Size) {
		return Placement{}, false
	}
	w := int(math.Ceil(want / DotsPerCellX))
	h := int(math.Ceil(props.Size / DotsPerCellY))
	// frame plus margin on each side
	room := 2 + 2*MinimapMargin
	w = min(w, cols-room)
	h = min(h, rows-room)
	if w < 1 || h < 1 {
		return Placement{}, false
	}
	x := cols - MinimapMargin - 1 - w
	y := rows - MinimapMargin - 1 - h
	return Placement{
		Bounds: minimap.Box{
			Left:   float64(x * DotsPerCellX),
			Top:    float64(y * DotsPerCellY),
			Width:  float64(w * DotsPerCellX),
			Height: float64(h * DotsPerCellY),
		},
		Width: math.Min(want, float64(w*DotsPerCellX)),
	}, true
}

// cellBox converts a dot box to whole cells.
func cellBox(b minimap.Box) (x, y, w, h int) {
	x = int(b.Left) / DotsPerCellX
	y = int(b.Top) / DotsPerCellY
	w = int(b.Width) / DotsPerCellX
	h = int(b.Height) / DotsPerCellY
	return
}

// dotSpan converts a float range to [lo, hi) dots clipped to [min, max).
// A non-empty range always covers at least one dot.
func dotSpan(start, length float64, lo, hi int) (int, int) {
	a := int(math.Floor(start))
	b := int(math.Ceil(start + length))
	if b <= a {
		b = a + 1
	}
	return max(a, lo), min(b, hi)
}

// Draw renders layout with its content box at bounds.
func (r *MinimapRenderer) Draw(g *Grid, layout minimap.Layout, bounds minimap.Box) {
	if !r.enabled {
		return
	}
	ui := r.styles.Theme.UI
	cx, cy, cw, ch := cellBox(bounds)
	if cw < 1 || ch < 1 {
		return
	}
	g.Clear(cx-1, cy-1, cw+2, ch+2)
	g.Fill(cx-1, cy-1, cw+2, ch+2, ui.MinimapBg)
	g.Box(cx-1, cy-1, cw+2, ch+2, ui.MinimapBorder)
	if !layout.Measured {
		return
	}
	if g.ASCII() {
		r.drawCells(g, layout, cx, cy, cw, ch)
		return
	}

	left, top := cx*DotsPerCellX, cy*DotsPerCellY
	right, bottom := left+cw*DotsPerCellX, top+ch*DotsPerCellY
	for _, n := range layout.Nodes {
		x0, x1 := dotSpan(float64(left)+n.Left, n.Width, left, right)
		y0, y1 := dotSpan(float64(top)+n.Top, n.Height, top, bottom)
		g.DotRect(x0, y0, x1, y1, ui.MinimapNode)
	}
	vp := layout.Viewport
	x0, x1 := dotSpan(float64(left)+vp.Left, vp.Width, left, right)
	y0, y1 := dotSpan(float64(top)+vp.Top, vp.Height, top, bottom)
	g.DotOutline(x0, y0, x1, y1, ui.MinimapViewport)
}

func (r *MinimapRenderer) drawCells(g *Grid, layout minimap.Layout, cx, cy, cw, ch int) {
	ui := r.styles.Theme.UI
	span := func(b minimap.Box) (int, int, int, int) {
		x0, x1 := dotSpan(b.Left/DotsPerCellX, b.Width/DotsPerCellX, 0, cw)
		y0, y1 := dotSpan(b.Top/DotsPerCellY, b.Height/DotsPerCellY, 0, ch)
		return cx + x0, cy + y0, cx + x1, cy + y1
	}
	for _, n := range layout.Nodes {
		x0, y0, x1, y1 := span(n)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				g.Set(x, y, '#', ui.MinimapNode)
			}
		}
	}
	x0, y0, x1, y1 := span(layout.Viewport)
	if x1 <= x0 || y1 <= y0 {
		return
	}
	for x := x0; x < x1; x++ {
		g.Set(x, y0, '+', ui.MinimapViewport)
		g.Set(x, y1-1, '+', ui.MinimapViewport)
	}
	for y := y0; y < y1; y++ {
		g.Set(x0, y, '+', ui.MinimapViewport)
		g.Set(x1-1, y, '+', ui.MinimapViewport)
	}
}
