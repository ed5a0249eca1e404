package minimap

import (
	"log/slog"

	"github.com/cornish/nodemap/drag"
)

// Layout is the minimap in pixel space, relative to the container's
// top-left corner.
type Layout struct {
	// Width and Height are the configured box size.
	Width  float64
	Height float64
	// Measured is false until the container has a width; Nodes and
	// Viewport are empty until then.
	Measured bool
	Nodes    []Box
	Viewport Box
}

// Compute lays out props for a container of the given width.
func Compute(props Props, containerWidth float64) Layout {
	l := Layout{
		Width:  props.RenderedWidth(),
		Height: props.Size,
	}
	if !Measured(containerWidth) {
		return l
	}
	l.Measured = true
	l.Nodes = make([]Box, len(props.Nodes))
	for i, n := range props.Nodes {
		l.Nodes[i] = ScaleRect(n, containerWidth)
	}
	l.Viewport = ScaleRect(props.Viewport, containerWidth)
	return l
}

// View composes the minimap: host props, the measured container, and
// both gestures.
type View[E Cancelable] struct {
	props     Props
	container Container
	client    drag.Extractor[E]
	pan       *Pan[E]
	jump      *Jump[E]
	slopX     float64
	slopY     float64
}

// NewView creates a minimap bound to host. Pointer events must be
// dispatched to surface; position reads an event's screen position in
// pixels.
func NewView[E Cancelable](host Host, surface *drag.Surface[E], position drag.Extractor[E], logger *slog.Logger) *View[E] {
	v := &View[E]{client: position}
	v.pan = NewPan(host, &v.container, surface, position, logger)
	v.jump = NewJump(host, &v.container, position, logger)
	return v
}

// SetProps replaces the host-supplied data.
func (v *View[E]) SetProps(p Props) {
	v.props = p
}

// Props returns the current host data.
func (v *View[E]) Props() Props {
	return v.props
}

// Container returns the measured element.
func (v *View[E]) Container() *Container {
	return &v.container
}

// Layout computes the current pixel layout.
func (v *View[E]) Layout() Layout {
	return Compute(v.props, v.container.Width())
}

// SetHitSlop widens the viewport indicator's hit area by x and y pixels
// on each side. Coarse pointers (terminal cells) need it for thin
// indicators.
func (v *View[E]) SetHitSlop(x, y float64) {
	v.slopX = x
	v.slopY = y
}

// Panning reports whether the viewport indicator is being dragged.
func (v *View[E]) Panning() bool {
	return v.pan.Active()
}

// CancelPan aborts a viewport drag.
func (v *View[E]) CancelPan() {
	v.pan.Cancel()
}

// Contains reports whether e lies inside the laid out container.
func (v *View[E]) Contains(e E) bool {
	box, ok := v.container.Bounds()
	if !ok {
		return false
	}
	p := v.client(e)
	return box.Contains(p.X, p.Y)
}

// PointerDown intercepts the event and starts a pan when it lands on the
// viewport indicator.
func (v *View[E]) PointerDown(e E) {
	v.jump.Intercept(e)
	// unmeasured: the press is swallowed but no pan starts
	if v.onViewport(e) {
		v.pan.Start(e)
	}
}

// Click intercepts a single click.
func (v *View[E]) Click(e E) {
	v.jump.Intercept(e)
}

// DoubleClick jumps the host camera to the clicked point.
func (v *View[E]) DoubleClick(e E) {
	v.jump.DoubleClick(e, v.props.Size, v.props.Ratio)
}

func (v *View[E]) onViewport(e E) bool {
	box, ok := v.container.Bounds()
	if !ok {
		return false
	}
	l := v.Layout()
	if !l.Measured {
		return false
	}
	p := v.client(e)
	vp := l.Viewport
	vp.Left += box.Left - v.slopX
	vp.Top += box.Top - v.slopY
	vp.Width += 2 * v.slopX
	vp.Height += 2 * v.slopY
	return vp.Contains(p.X, p.Y)
}
