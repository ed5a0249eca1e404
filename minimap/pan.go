package minimap

import (
	"log/slog"

	"github.com/cornish/nodemap/drag"
)

// Pan drags the viewport indicator. Dragging the indicator one way moves
// the camera translation the other way.
type Pan[E any] struct {
	host      Host
	container *Container
	drag      *drag.Controller[E]
	initial   Transform
	logger    *slog.Logger
}

// NewPan wires a drag controller on surface to host.Translate.
func NewPan[E any](host Host, container *Container, surface *drag.Surface[E], extract drag.Extractor[E], logger *slog.Logger) *Pan[E] {
	p := &Pan[E]{
		host:      host,
		container: container,
		logger:    orDiscard(logger),
	}
	p.drag = drag.New(surface, extract, p.delta).OnEnd(func() {
		p.logger.Debug("minimap pan ended")
	})
	return p
}

// Start begins a pan gesture and snapshots the camera.
func (p *Pan[E]) Start(e E) {
	p.initial = p.host.Start()
	p.drag.Start(e)
	p.logger.Debug("minimap pan started", "x", p.initial.X, "y", p.initial.Y, "k", p.initial.K)
}

// Active reports whether a pan gesture is in progress.
func (p *Pan[E]) Active() bool {
	return p.drag.Active()
}

// Cancel ends the gesture without further translates.
func (p *Pan[E]) Cancel() {
	p.drag.End()
}

func (p *Pan[E]) delta(dx, dy float64) {
	w := p.container.Width()
	if !Measured(w) {
		return
	}
	p.host.Translate(Invert(-dx, w), Invert(-dy, w), p.initial)
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
