package render

import "log/slog"

// Pipe sees a signal and returns it, possibly changed. Returning false
// stops the signal from reaching later pipes.
type Pipe func(Signal) (Signal, bool)

// Pipeline runs signals through pipes in registration order.
type Pipeline struct {
	pipes  []Pipe
	logger *slog.Logger
}

// NewPipeline creates an empty pipeline. A nil logger discards.
func NewPipeline(logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Pipeline{logger: logger}
}

// Use appends a pipe.
func (p *Pipeline) Use(pipe Pipe) {
	p.pipes = append(p.pipes, pipe)
}

// Len returns the number of pipes.
func (p *Pipeline) Len() int {
	return len(p.pipes)
}

// Emit runs s through every pipe. It returns the final signal and
// whether it reached the end of the pipeline. Malformed data is
// dropped before the first pipe.
func (p *Pipeline) Emit(s Signal) (Signal, bool) {
	if !s.Data.Valid() {
		p.logger.Warn("dropping malformed render signal", "phase", s.Phase, "kind", s.Data.Kind)
		return s, false
	}
	for _, pipe := range p.pipes {
		var ok bool
		s, ok = pipe(s)
		if !ok {
			return s, false
		}
	}
	return s, true
}

// Frame emits PhaseRender and, when it passes, PhaseRendered for d.
func (p *Pipeline) Frame(d Data) bool {
	s, ok := p.Emit(Render(d))
	if !ok {
		return false
	}
	_, ok = p.Emit(Rendered(s.Data))
	return ok
}
