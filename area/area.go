// Package area is the node canvas: it owns the camera over a graph and
// serves as the minimap's host.
package area

import (
	"log/slog"
	"math"

	"github.com/cornish/nodemap/graph"
	"github.com/cornish/nodemap/minimap"
)

// Options configures an Area.
type Options struct {
	MinZoom     float64
	MaxZoom     float64
	HistorySize int
	// FitPadding is the fraction of the canvas left empty around Fit.
	FitPadding float64
}

// DefaultOptions returns the zoom limits used without a config file.
func DefaultOptions() Options {
	return Options{MinZoom: 0.1, MaxZoom: 4, HistorySize: 100, FitPadding: 0.1}
}

// frame maps editor space onto the minimap's normalized space.
type frame struct {
	origin graph.Rect
	extent float64
	ratio  float64
}

type panSession struct {
	initial minimap.Transform
	extent  float64
	accX    float64
	accY    float64
}

// Area is a camera over a graph. A point p in editor space appears on
// the canvas at p*K + (X, Y), in braille dots.
type Area struct {
	graph   *graph.Graph
	t       minimap.Transform
	width   float64
	height  float64
	ratio   float64
	opts    Options
	history *History
	pan     *panSession
	logger  *slog.Logger
}

var _ minimap.Host = (*Area)(nil)

// New creates an area showing g at zoom 1.
func New(g *graph.Graph, opts Options, logger *slog.Logger) *Area {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if g == nil {
		g = &graph.Graph{}
	}
	if opts.MinZoom <= 0 {
		opts.MinZoom = DefaultOptions().MinZoom
	}
	if opts.MaxZoom < opts.MinZoom {
		opts.MaxZoom = opts.MinZoom
	}
	return &Area{
		graph:   g,
		t:       minimap.Transform{K: 1},
		ratio:   1,
		opts:    opts,
		history: NewHistory(opts.HistorySize),
		logger:  logger,
	}
}

// Graph returns the displayed document.
func (a *Area) Graph() *graph.Graph {
	return a.graph
}

// SetGraph swaps the document and forgets camera history.
func (a *Area) SetGraph(g *graph.Graph) {
	a.graph = g
	a.pan = nil
	a.history.Clear()
}

// History exposes the camera history.
func (a *Area) History() *History {
	return a.history
}

// Resize sets the canvas size in dots.
func (a *Area) Resize(width, height float64) {
	a.width = math.Max(width, 0)
	a.height = math.Max(height, 0)
}

// Size returns the canvas size in dots.
func (a *Area) Size() (float64, float64) {
	return a.width, a.height
}

// Transform returns the camera.
func (a *Area) Transform() minimap.Transform {
	return a.t
}

// SetTransform moves the camera without recording history.
func (a *Area) SetTransform(t minimap.Transform) {
	if t.K <= 0 {
		t.K = 1
	}
	a.t = t
}

// ToScreen maps an editor point to canvas dots.
func (a *Area) ToScreen(x, y float64) (float64, float64) {
	return x*a.t.K + a.t.X, y*a.t.K + a.t.Y
}

// ToEditor maps canvas dots to an editor point.
func (a *Area) ToEditor(x, y float64) (float64, float64) {
	return (x - a.t.X) / a.t.K, (y - a.t.Y) / a.t.K
}

// ViewportRect is the visible part of editor space.
func (a *Area) ViewportRect() graph.Rect {
	return graph.Rect{
		Left:   -a.t.X / a.t.K,
		Top:    -a.t.Y / a.t.K,
		Width:  a.width / a.t.K,
		Height: a.height / a.t.K,
	}
}

// NodeAt returns the topmost node under a canvas point.
func (a *Area) NodeAt(x, y float64) (graph.Node, bool) {
	ex, ey := a.ToEditor(x, y)
	for i := len(a.graph.Nodes) - 1; i >= 0; i-- {
		n := a.graph.Nodes[i]
		r := n.Rect()
		if ex >= r.Left && ex <= r.Right() && ey >= r.Top && ey <= r.Bottom() {
			return n, true
		}
	}
	return graph.Node{}, false
}

func (a *Area) frame() frame {
	b := a.ViewportRect()
	if nb, ok := a.graph.Bounds(); ok {
		b = b.Union(nb)
	}
	e := math.Max(b.Width, b.Height*a.ratio)
	if e <= 0 || math.IsNaN(e) || math.IsInf(e, 0) {
		e = 1
	}
	return frame{origin: b, extent: e, ratio: a.ratio}
}

func (f frame) normalize(r graph.Rect) minimap.Rect {
	return minimap.Rect{
		Left:   (r.Left - f.origin.Left) / f.extent,
		Top:    (r.Top - f.origin.Top) / f.extent,
		Width:  r.Width / f.extent,
		Height: r.Height / f.extent,
	}
}

// MinimapProps normalizes nodes and the viewport so both fit a ratio:1
// box with one scale factor.
func (a *Area) MinimapProps(size, ratio float64) minimap.Props {
	if ratio > 0 {
		a.ratio = ratio
	}
	f := a.frame()
	nodes := make([]minimap.Rect, len(a.graph.Nodes))
	for i, n := range a.graph.Nodes {
		nodes[i] = f.normalize(n.Rect())
	}
	return minimap.Props{
		Size:     size,
		Ratio:    a.ratio,
		Nodes:    nodes,
		Viewport: f.normalize(a.ViewportRect()),
	}
}

// Start snapshots the camera and closes any open minimap pan.
func (a *Area) Start() minimap.Transform {
	a.pan = nil
	return a.t
}

// Translate pans relative to initial by a normalized delta. Deltas of
// one session accumulate, and the extent is fixed when it opens, so
// the mapping holds while the bounds change under the drag.
func (a *Area) Translate(dx, dy float64, initial minimap.Transform) {
	// Start clears a.pan, so a new gesture opens a session even when its
	// snapshot equals the previous one.
	if a.pan == nil || a.pan.initial != initial {
		a.pan = &panSession{initial: initial, extent: a.frame().extent}
		a.history.Push(initial)
		a.logger.Debug("area pan session", "extent", a.pan.extent)
	}
	a.pan.accX += dx
	a.pan.accY += dy
	k := initial.K
	if k <= 0 {
		k = a.t.K
	}
	a.t = minimap.Transform{
		X: initial.X + a.pan.accX*a.pan.extent*k,
		Y: initial.Y + a.pan.accY*a.pan.extent*k,
		K: k,
	}
}

// Point centers the camera on a normalized minimap point.
func (a *Area) Point(x, y float64) {
	f := a.frame()
	ex := f.origin.Left + x*f.extent
	ey := f.origin.Top + y*f.extent/f.ratio
	a.logger.Debug("area point", "x", ex, "y", ey)
	a.jump()
	a.CenterOn(ex, ey)
}

// CenterOn moves the camera so the editor point is mid-canvas.
func (a *Area) CenterOn(x, y float64) {
	a.t.X = a.width/2 - x*a.t.K
	a.t.Y = a.height/2 - y*a.t.K
}

// Pan shifts the camera by canvas dots.
func (a *Area) Pan(dx, dy float64) {
	a.pan = nil
	a.t.X += dx
	a.t.Y += dy
}

// Zoom scales by factor around the canvas point (cx, cy). The zoom is
// clamped to the configured limits. It reports whether K changed.
func (a *Area) Zoom(factor, cx, cy float64) bool {
	if factor <= 0 || math.IsNaN(factor) {
		return false
	}
	k := a.clampZoom(a.t.K * factor)
	if k == a.t.K {
		return false
	}
	a.jump()
	ex, ey := a.ToEditor(cx, cy)
	a.t.K = k
	a.t.X = cx - ex*k
	a.t.Y = cy - ey*k
	return true
}

func (a *Area) clampZoom(k float64) float64 {
	return math.Min(math.Max(k, a.opts.MinZoom), a.opts.MaxZoom)
}

// Fit frames every node. It reports false for an empty graph or an
// unsized canvas.
func (a *Area) Fit() bool {
	b, ok := a.graph.Bounds()
	if !ok || a.width <= 0 || a.height <= 0 {
		return false
	}
	pad := 1 - a.opts.FitPadding
	if pad <= 0 {
		pad = 1
	}
	k := a.opts.MaxZoom
	if b.Width > 0 {
		k = math.Min(k, a.width*pad/b.Width)
	}
	if b.Height > 0 {
		k = math.Min(k, a.height*pad/b.Height)
	}
	a.jump()
	a.t.K = a.clampZoom(k)
	a.CenterOn(b.Center())
	return true
}

// Focus centers the node with the given ID.
func (a *Area) Focus(id string) bool {
	n, ok := a.graph.Node(id)
	if !ok {
		return false
	}
	a.jump()
	a.CenterOn(n.Rect().Center())
	return true
}

// Back returns the camera to its previous position.
func (a *Area) Back() bool {
	t, ok := a.history.Back(a.t)
	if ok {
		a.pan = nil
		a.t = t
	}
	return ok
}

// Forward undoes Back.
func (a *Area) Forward() bool {
	t, ok := a.history.Forward(a.t)
	if ok {
		a.pan = nil
		a.t = t
	}
	return ok
}

func (a *Area) jump() {
	a.pan = nil
	a.history.Push(a.t)
}
