package canvas

import (
	"io"

	perrors "github.com/punchlabs/punchpdf/pkg/errors"
)

// Op is one recorded drawing call.
type Op struct {
	Kind  string // "text", "fillrect", "strokerect", "roundedrect", "circle", "line", "path", "image"
	Page  int    // zero-based page index at the time of the call
	X, Y  float64
	W, H  float64
	Text  string // text content or image name
	Style string // shape style string, or font style for text
	Fill  [3]int // fill color at the time of the call
	Size  float64
}

// Recorder is an in-memory Canvas. It paints nothing and instead records
// every call, so layout decisions can be asserted without a PDF backend.
// Text widths are approximated from rune counts, deterministically.
type Recorder struct {
	Ops   []Op
	Pages int

	// Depth is the current PushState nesting; MinDepth tracks underflow.
	Depth    int
	MinDepth int

	// FailImages makes every Image call report an embed error, for
	// exercising per-resource degradation paths.
	FailImages bool

	fontStyle string
	fontSize  float64
	fill      [3]int
}

// runeWidth is the approximate advance per rune in page units per point
// of font size. Close enough to Helvetica for layout tests.
const runeWidth = 0.16

// NewRecorder returns a Recorder with no pages.
func NewRecorder() *Recorder {
	return &Recorder{fontSize: 10}
}

func (r *Recorder) record(op Op) {
	op.Page = r.Pages - 1
	op.Fill = r.fill
	r.Ops = append(r.Ops, op)
}

func (r *Recorder) AddPage() { r.Pages++ }

func (r *Recorder) PageIndex() int { return r.Pages - 1 }

func (r *Recorder) PageSize() (float64, float64) { return 210, 297 }

func (r *Recorder) SetFont(style string, sizePt float64) {
	r.fontStyle = style
	r.fontSize = sizePt
}

func (r *Recorder) TextWidth(s string) float64 {
	return float64(len([]rune(s))) * r.fontSize * runeWidth
}

func (r *Recorder) Text(x, y float64, s string) {
	r.record(Op{Kind: "text", X: x, Y: y, W: r.TextWidth(s), Text: s, Style: r.fontStyle, Size: r.fontSize})
}

func (r *Recorder) SetTextColor(int, int, int) {}

func (r *Recorder) SetFillColor(red, g, b int) { r.fill = [3]int{red, g, b} }

func (r *Recorder) SetDrawColor(int, int, int) {}

func (r *Recorder) SetLineWidth(float64) {}

func (r *Recorder) SetLineCap(string) {}

func (r *Recorder) SetLineJoin(string) {}

func (r *Recorder) SetAlpha(float64) {}

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.record(Op{Kind: "fillrect", X: x, Y: y, W: w, H: h})
}

func (r *Recorder) StrokeRect(x, y, w, h float64) {
	r.record(Op{Kind: "strokerect", X: x, Y: y, W: w, H: h})
}

func (r *Recorder) RoundedRect(x, y, w, h, radius float64, style string) {
	r.record(Op{Kind: "roundedrect", X: x, Y: y, W: w, H: h, Style: style})
}

func (r *Recorder) Circle(cx, cy, radius float64, style string) {
	r.record(Op{Kind: "circle", X: cx - radius, Y: cy - radius, W: 2 * radius, H: 2 * radius, Style: style})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64) {
	r.record(Op{Kind: "line", X: x1, Y: y1, W: x2 - x1, H: y2 - y1})
}

func (r *Recorder) MoveTo(x, y float64) {}

func (r *Recorder) LineTo(x, y float64) {}

func (r *Recorder) CurveTo(cx, cy, x, y float64) {}

func (r *Recorder) ClosePath() {}

func (r *Recorder) DrawPath(style string) {
	r.record(Op{Kind: "path", Style: style})
}

func (r *Recorder) PushState() { r.Depth++ }

func (r *Recorder) PopState() {
	r.Depth--
	if r.Depth < r.MinDepth {
		r.MinDepth = r.Depth
	}
}

func (r *Recorder) Image(name string, data []byte, format string, x, y, w, h float64) error {
	if r.FailImages {
		return perrors.Imagef(perrors.ErrImageEmbed, "recorder is configured to fail image embeds")
	}
	r.record(Op{Kind: "image", X: x, Y: y, W: w, H: h, Text: name, Style: format})
	return nil
}

func (r *Recorder) Output(io.Writer) error { return nil }

// OpsOnPage returns the recorded ops for one page, optionally filtered by
// kind. An empty kind matches everything.
func (r *Recorder) OpsOnPage(page int, kind string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Page == page && (kind == "" || op.Kind == kind) {
			out = append(out, op)
		}
	}
	return out
}

// Texts returns all painted strings across the document, in paint order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// HasText reports whether s was painted anywhere in the document.
func (r *Recorder) HasText(s string) bool {
	for _, t := range r.Texts() {
		if t == s {
			return true
		}
	}
	return false
}

// MaxBottom returns the lowest painted extent on a page: y+h for shapes
// and images, the baseline for text.
func (r *Recorder) MaxBottom(page int) float64 {
	max := 0.0
	for _, op := range r.OpsOnPage(page, "") {
		bottom := op.Y
		switch op.Kind {
		case "fillrect", "strokerect", "roundedrect", "circle", "image":
			bottom = op.Y + op.H
		}
		if bottom > max {
			max = bottom
		}
	}
	return max
}
