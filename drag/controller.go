package drag

// Position is a pointer location in the surface's pixel space.
type Position struct {
	X float64
	Y float64
}

// Extractor reads the pointer position out of an event. It keeps the
// controller independent of any particular event type.
type Extractor[E any] func(E) Position

// session is the state of one pointer-down to pointer-up gesture.
type session struct {
	active bool
	lastX  float64
	lastY  float64
}

// Controller is a pointer-drag state machine. Between Start and the
// matching up or cancel event it reports the movement since the previous
// move event to its delta callback. A controller owns at most one
// session at a time.
type Controller[E any] struct {
	surface *Surface[E]
	extract Extractor[E]
	onDelta func(dx, dy float64)
	onEnd   func()

	session session
	handles []Handle[E]
}

// New creates a controller listening on surface. onDelta receives
// incremental deltas; it is never called outside a session.
func New[E any](surface *Surface[E], extract Extractor[E], onDelta func(dx, dy float64)) *Controller[E] {
	return &Controller[E]{
		surface: surface,
		extract: extract,
		onDelta: onDelta,
	}
}

// OnEnd sets a callback run once when a session ends.
func (c *Controller[E]) OnEnd(fn func()) *Controller[E] {
	c.onEnd = fn
	return c
}

// Start begins a session at e's position. Starting while a session is
// active only moves the reference point.
func (c *Controller[E]) Start(e E) {
	p := c.extract(e)
	c.session.lastX = p.X
	c.session.lastY = p.Y
	if c.session.active {
		return
	}
	c.session.active = true
	c.handles = append(c.handles,
		c.surface.On(EventMove, c.move),
		c.surface.On(EventUp, c.end),
		c.surface.On(EventCancel, c.end),
	)
}

// Active reports whether a session is in progress.
func (c *Controller[E]) Active() bool {
	return c.session.active
}

// End finishes the current session. Ending an ended session is a no-op.
func (c *Controller[E]) End() {
	if !c.session.active {
		return
	}
	c.session = session{}
	for _, h := range c.handles {
		h.Remove()
	}
	c.handles = c.handles[:0]
	if c.onEnd != nil {
		c.onEnd()
	}
}

func (c *Controller[E]) move(e E) {
	if !c.session.active {
		return
	}
	p := c.extract(e)
	dx := p.X - c.session.lastX
	dy := p.Y - c.session.lastY
	c.session.lastX = p.X
	c.session.lastY = p.Y
	if c.onDelta != nil {
		c.onDelta(dx, dy)
	}
}

func (c *Controller[E]) end(E) {
	c.End()
}
