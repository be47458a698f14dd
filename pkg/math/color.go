package math

// Color is a linear RGB color with components in [0, 1].
type Color struct {
	R, G, B float32
}

// Common colors.
var (
	White = Color{1, 1, 1}
	Red   = Color{1, 0, 0}
	Green = Color{0, 1, 0}
	Blue  = Color{0, 0, 1}
)

// Array returns the color as an RGB array.
func (c Color) Array() [3]float32 {
	return [3]float32{c.R, c.G, c.B}
}
