package geom

// Filler is the minimal drawing surface a gradient needs. The canvas
// package's Canvas satisfies it.
type Filler interface {
	SetFillColor(r, g, b int)
	FillRect(x, y, w, h float64)
}

// GradientSteps is the number of horizontal strips used to approximate a
// vertical linear gradient. Banding keeps the output portable across
// backends that lack a native gradient primitive.
const GradientSteps = 20

// stripOverlap extends each strip slightly so adjacent bands never show
// a hairline seam at fractional coordinates.
const stripOverlap = 0.5

// VerticalGradient fills the rectangle at (x, y) with a banded top-to-bottom
// gradient from the top color to the bottom color.
func VerticalGradient(f Filler, x, y, w, h float64, top, bottom RGB) {
	step := h / GradientSteps
	for i := 0; i < GradientSteps; i++ {
		c := Mix(top, bottom, float64(i)/GradientSteps)
		f.SetFillColor(c.R, c.G, c.B)
		f.FillRect(x, y+float64(i)*step, w, step+stripOverlap)
	}
}

// BoxKind selects one of the recurring empty placeholder-box styles.
type BoxKind string

const (
	// BoxInitial is the small box a reader initials by hand.
	BoxInitial BoxKind = "initial"

	// BoxSignature is the wide box for an ink signature or date.
	BoxSignature BoxKind = "signature"
)

// BoxStyle describes how a placeholder box is stroked.
type BoxStyle struct {
	LineWidth float64
	Stroke    RGB
	Radius    float64
}

// StyleFor returns the stroke style for a placeholder-box kind. Unknown
// kinds get the initials style.
func StyleFor(kind BoxKind) BoxStyle {
	switch kind {
	case BoxSignature:
		return BoxStyle{LineWidth: 0.4, Stroke: RGB{90, 90, 90}, Radius: 1.2}
	default:
		return BoxStyle{LineWidth: 0.5, Stroke: RGB{120, 120, 120}, Radius: 1.0}
	}
}
