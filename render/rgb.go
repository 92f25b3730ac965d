package render

import "github.com/gdamore/tcell/v2"

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// clamp converts float to uint8
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v + 0.5)
}

// Blend composites src over c at alpha, 0.0-1.0
func Blend(c, src RGB, alpha float64) RGB {
	alpha = min(max(alpha, 0), 1)
	inv := 1 - alpha
	return RGB{
		R: clamp(float64(c.R)*inv + float64(src.R)*alpha),
		G: clamp(float64(c.G)*inv + float64(src.G)*alpha),
		B: clamp(float64(c.B)*inv + float64(src.B)*alpha),
	}
}

// Scale multiplies every channel by factor
func Scale(c RGB, factor float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
	}
}

// Tcell converts to a tcell true color
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
