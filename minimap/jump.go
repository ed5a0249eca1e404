package minimap

import (
	"log/slog"

	"github.com/cornish/nodemap/drag"
)

// Cancelable is a pointer event the minimap can keep from reaching the
// canvas underneath it.
type Cancelable interface {
	StopPropagation()
	PreventDefault()
}

// Jump handles double-click navigation on the minimap box.
type Jump[E Cancelable] struct {
	host      Host
	container *Container
	client    drag.Extractor[E]
	logger    *slog.Logger
}

// NewJump creates a jump handler. client reads the event's screen
// position in pixels.
func NewJump[E Cancelable](host Host, container *Container, client drag.Extractor[E], logger *slog.Logger) *Jump[E] {
	return &Jump[E]{
		host:      host,
		container: container,
		client:    client,
		logger:    orDiscard(logger),
	}
}

// Intercept swallows a click or pointer-down on the minimap.
func (j *Jump[E]) Intercept(e E) {
	e.StopPropagation()
	e.PreventDefault()
}

// DoubleClick normalizes the click offset within the container by the
// configured box size (width size*ratio, height size) and asks the host
// to jump there. The result is not clamped to [0,1].
func (j *Jump[E]) DoubleClick(e E, size, ratio float64) {
	j.Intercept(e)
	box, ok := j.container.Bounds()
	if !ok || !Measured(j.container.Width()) {
		return
	}
	width := size * ratio
	if !Measured(width) || !Measured(size) {
		return
	}
	p := j.client(e)
	x := (p.X - box.Left) / width
	y := (p.Y - box.Top) / size
	j.logger.Debug("minimap jump", "x", x, "y", y)
	j.host.Point(x, y)
}
