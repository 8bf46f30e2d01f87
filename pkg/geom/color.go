// Package geom provides the drawing primitives shared by the punchpdf
// layout engine: color math, banded gradients, and the recurring
// placeholder-box styles.
package geom

import "math"

// RGB is an 8-bit-per-channel color.
type RGB struct {
	R, G, B int
}

// Common colors used across page chrome and cards.
var (
	White = RGB{255, 255, 255}
	Black = RGB{0, 0, 0}
)

// Mix blends two colors channel-wise. A weight of 0 returns a, a weight
// of 1 returns b. Weights outside [0,1] are clamped.
func Mix(a, b RGB, weight float64) RGB {
	if weight < 0 {
		weight = 0
	}
	if weight > 1 {
		weight = 1
	}
	mixc := func(x, y int) int {
		return int(math.Round(float64(x)*(1-weight) + float64(y)*weight))
	}
	return RGB{mixc(a.R, b.R), mixc(a.G, b.G), mixc(a.B, b.B)}
}

// Container derives a light tinted fill from an accent color, suitable
// as the background of badges and highlighted boxes.
func Container(accent RGB) RGB {
	return Mix(accent, White, 0.85)
}

// OnContainer derives a darkened readable ink color from the same accent,
// for text drawn on top of the Container fill.
func OnContainer(accent RGB) RGB {
	return Mix(accent, Black, 0.55)
}
