// Package minimap maps a node editor's normalized coordinate space onto a
// small overview box and back, and implements the two overview
// gestures: dragging the viewport indicator to pan the camera and
// double-clicking to jump it.
package minimap

// Rect is a rectangle in the host's normalized space. Node boxes and the
// viewport share the space, so one factor scales both.
type Rect struct {
	Width  float64
	Height float64
	Left   float64
	Top    float64
}

// Transform is the host camera: translation (X, Y) and zoom K.
type Transform struct {
	X float64
	Y float64
	K float64
}

// Box is a rectangle in minimap pixel space.
type Box struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Contains reports whether (x, y) lies inside the box, edges included.
func (b Box) Contains(x, y float64) bool {
	return x >= b.Left && x <= b.Left+b.Width && y >= b.Top && y <= b.Top+b.Height
}

// Host is the canvas the minimap navigates.
type Host interface {
	// Start returns a snapshot of the camera transform.
	Start() Transform
	// Translate pans the camera by a normalized delta. initial is the
	// snapshot taken when the gesture began.
	Translate(dx, dy float64, initial Transform)
	// Point moves the camera to a normalized point of the minimap box.
	Point(x, y float64)
}

// Props is what the host supplies on each render.
type Props struct {
	// Size is the box height in pixels.
	Size float64
	// Ratio is box width over height.
	Ratio    float64
	Nodes    []Rect
	Viewport Rect
}

// RenderedWidth is the configured pixel width of the box.
func (p Props) RenderedWidth() float64 {
	return p.Size * p.Ratio
}
