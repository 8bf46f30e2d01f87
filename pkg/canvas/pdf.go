package canvas

import (
	"bytes"
	"io"

	"github.com/go-pdf/fpdf"

	perrors "github.com/punchlabs/punchpdf/pkg/errors"
)

// fontFamily is the single face used throughout generated documents.
const fontFamily = "Helvetica"

// drawState mirrors the graphics state fpdf does not let us read back,
// so PushState/PopState can restore it exactly.
type drawState struct {
	fontStyle string
	fontSize  float64
	text      [3]int
	fill      [3]int
	draw      [3]int
	lineWidth float64
	lineCap   string
	lineJoin  string
	alpha     float64
}

// PDF is the fpdf-backed Canvas. One PDF value builds one document.
type PDF struct {
	f     *fpdf.Fpdf
	state drawState
	stack []drawState
	known map[string]bool // registered image resource names
}

// NewPDF constructs a portrait A4 document in millimeter units. The
// engine owns pagination, so fpdf's automatic page breaking is disabled.
func NewPDF(title string) (*PDF, error) {
	f := fpdf.New("P", "mm", "A4", "")
	if err := f.Error(); err != nil {
		return nil, perrors.EngineWrap(err, perrors.ErrEngineInit, "document engine failed to start")
	}
	f.SetTitle(title, true)
	f.SetMargins(0, 0, 0)
	f.SetAutoPageBreak(false, 0)

	p := &PDF{
		f: f,
		state: drawState{
			fontSize:  10,
			lineWidth: 0.2,
			lineCap:   "butt",
			lineJoin:  "miter",
			alpha:     1,
		},
		known: make(map[string]bool),
	}
	p.apply(p.state)
	if err := f.Error(); err != nil {
		return nil, perrors.EngineWrap(err, perrors.ErrEngineInit, "document engine failed to start")
	}
	return p, nil
}

// apply pushes a full drawState into fpdf.
func (p *PDF) apply(s drawState) {
	p.f.SetFont(fontFamily, s.fontStyle, s.fontSize)
	p.f.SetTextColor(s.text[0], s.text[1], s.text[2])
	p.f.SetFillColor(s.fill[0], s.fill[1], s.fill[2])
	p.f.SetDrawColor(s.draw[0], s.draw[1], s.draw[2])
	p.f.SetLineWidth(s.lineWidth)
	p.f.SetLineCapStyle(s.lineCap)
	p.f.SetLineJoinStyle(s.lineJoin)
	p.f.SetAlpha(s.alpha, "Normal")
}

func (p *PDF) AddPage() { p.f.AddPage() }

func (p *PDF) PageIndex() int { return p.f.PageNo() - 1 }

func (p *PDF) PageSize() (float64, float64) { return p.f.GetPageSize() }

func (p *PDF) SetFont(style string, sizePt float64) {
	p.state.fontStyle = style
	p.state.fontSize = sizePt
	p.f.SetFont(fontFamily, style, sizePt)
}

func (p *PDF) TextWidth(s string) float64 { return p.f.GetStringWidth(s) }

func (p *PDF) Text(x, y float64, s string) { p.f.Text(x, y, s) }

func (p *PDF) SetTextColor(r, g, b int) {
	p.state.text = [3]int{r, g, b}
	p.f.SetTextColor(r, g, b)
}

func (p *PDF) SetFillColor(r, g, b int) {
	p.state.fill = [3]int{r, g, b}
	p.f.SetFillColor(r, g, b)
}

func (p *PDF) SetDrawColor(r, g, b int) {
	p.state.draw = [3]int{r, g, b}
	p.f.SetDrawColor(r, g, b)
}

func (p *PDF) SetLineWidth(w float64) {
	p.state.lineWidth = w
	p.f.SetLineWidth(w)
}

func (p *PDF) SetLineCap(style string) {
	p.state.lineCap = style
	p.f.SetLineCapStyle(style)
}

func (p *PDF) SetLineJoin(style string) {
	p.state.lineJoin = style
	p.f.SetLineJoinStyle(style)
}

func (p *PDF) SetAlpha(alpha float64) {
	p.state.alpha = alpha
	p.f.SetAlpha(alpha, "Normal")
}

func (p *PDF) FillRect(x, y, w, h float64) { p.f.Rect(x, y, w, h, "F") }

func (p *PDF) StrokeRect(x, y, w, h float64) { p.f.Rect(x, y, w, h, "D") }

func (p *PDF) RoundedRect(x, y, w, h, radius float64, style string) {
	p.f.RoundedRect(x, y, w, h, radius, "1234", style)
}

func (p *PDF) Circle(cx, cy, r float64, style string) { p.f.Circle(cx, cy, r, style) }

func (p *PDF) Line(x1, y1, x2, y2 float64) { p.f.Line(x1, y1, x2, y2) }

func (p *PDF) MoveTo(x, y float64) { p.f.MoveTo(x, y) }

func (p *PDF) LineTo(x, y float64) { p.f.LineTo(x, y) }

func (p *PDF) CurveTo(cx, cy, x, y float64) { p.f.CurveTo(cx, cy, x, y) }

func (p *PDF) ClosePath() { p.f.ClosePath() }

func (p *PDF) DrawPath(style string) { p.f.DrawPath(style) }

func (p *PDF) PushState() {
	p.stack = append(p.stack, p.state)
}

func (p *PDF) PopState() {
	if len(p.stack) == 0 {
		return
	}
	p.state = p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	p.apply(p.state)
}

// Image registers the bytes once per name and places the resource. An
// embed failure clears the backend's sticky error so the rest of the
// document survives a single bad image.
func (p *PDF) Image(name string, data []byte, format string, x, y, w, h float64) error {
	opts := fpdf.ImageOptions{ImageType: format}
	if !p.known[name] {
		p.f.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
		if err := p.f.Error(); err != nil {
			p.f.ClearError()
			return perrors.ImageWrap(err, perrors.ErrImageEmbed, "image resource rejected")
		}
		p.known[name] = true
	}
	p.f.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	if err := p.f.Error(); err != nil {
		p.f.ClearError()
		return perrors.ImageWrap(err, perrors.ErrImageEmbed, "image placement failed")
	}
	return nil
}

func (p *PDF) Output(w io.Writer) error {
	if err := p.f.Output(w); err != nil {
		return perrors.EngineWrap(err, perrors.ErrEngineOutput, "document could not be written")
	}
	return nil
}
