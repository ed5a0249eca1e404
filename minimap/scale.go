package minimap

import "math"

// Scale converts a normalized value to pixels.
func Scale(v, containerWidth float64) float64 {
	return v * containerWidth
}

// Invert converts a pixel value back to normalized space. A zero width
// yields Inf or NaN; check Measured first.
func Invert(v, containerWidth float64) float64 {
	return v / containerWidth
}

// Measured reports whether a container width can be used for scaling.
func Measured(containerWidth float64) bool {
	return containerWidth > 0 && !math.IsInf(containerWidth, 0)
}

// ScaleRect places a normalized rect in pixel space.
func ScaleRect(r Rect, containerWidth float64) Box {
	return Box{
		Left:   Scale(r.Left, containerWidth),
		Top:    Scale(r.Top, containerWidth),
		Width:  Scale(r.Width, containerWidth),
		Height: Scale(r.Height, containerWidth),
	}
}
