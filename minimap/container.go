package minimap

// Container tracks the rendered minimap element. Its width comes from a
// size observer and lags layout, so zero means "not measured yet".
type Container struct {
	width  float64
	box    Box
	placed bool
}

// Measure records the observed content width in pixels.
func (c *Container) Measure(width float64) {
	if width < 0 {
		width = 0
	}
	c.width = width
}

// Width returns the last measured width, or 0.
func (c *Container) Width() float64 {
	return c.width
}

// Place records the container's bounding box on screen.
func (c *Container) Place(box Box) {
	c.box = box
	c.placed = true
}

// Unplace forgets the bounding box, e.g. when the minimap is hidden.
func (c *Container) Unplace() {
	c.box = Box{}
	c.placed = false
}

// Bounds returns the bounding box on screen, if laid out.
func (c *Container) Bounds() (Box, bool) {
	return c.box, c.placed
}
