// Package icons draws the small glyph catalog used in project-info rows,
// checkboxes and numbered badges. Every glyph is composed from primitive
// strokes and paths expressed as fractions of the requested size, so icons
// scale uniformly. Drawing is bracketed by graphics-state save/restore so
// icon styling never leaks into surrounding content.
package icons

import (
	"github.com/punchlabs/punchpdf/pkg/canvas"
	"github.com/punchlabs/punchpdf/pkg/geom"
)

// Key identifies a glyph in the catalog.
type Key string

const (
	KeyUser      Key = "user"
	KeyCalendar  Key = "calendar"
	KeyPin       Key = "pin"
	KeyPhone     Key = "phone"
	KeyMail      Key = "mail"
	KeyHome      Key = "home"
	KeyCheck     Key = "check"
	KeyList      Key = "list"
	KeyPen       Key = "pen"
	KeyPaper     Key = "paper"
	KeyHandshake Key = "handshake"
	KeyAlert     Key = "alert"
	KeyNumber    Key = "number"
	KeyDefault   Key = "default"
)

// ParseKey maps a stored icon name onto the catalog. Unknown names map to
// KeyDefault rather than failing.
func ParseKey(s string) Key {
	switch Key(s) {
	case KeyUser, KeyCalendar, KeyPin, KeyPhone, KeyMail, KeyHome,
		KeyCheck, KeyList, KeyPen, KeyPaper, KeyHandshake, KeyAlert,
		KeyNumber:
		return Key(s)
	}
	return KeyDefault
}

// Draw paints the glyph for key inside the size×size box whose top-left
// corner is (x, y), stroked/filled in the ink color. Unknown keys fall
// back to the default glyph; Draw never fails.
func Draw(c canvas.Canvas, key Key, x, y, size float64, ink geom.RGB) {
	c.PushState()
	c.SetDrawColor(ink.R, ink.G, ink.B)
	c.SetFillColor(ink.R, ink.G, ink.B)
	c.SetLineWidth(size * 0.09)
	c.SetLineCap("round")
	c.SetLineJoin("round")

	switch key {
	case KeyUser:
		drawUser(c, x, y, size)
	case KeyCalendar:
		drawCalendar(c, x, y, size)
	case KeyPin:
		drawPin(c, x, y, size)
	case KeyPhone:
		drawPhone(c, x, y, size)
	case KeyMail:
		drawMail(c, x, y, size)
	case KeyHome:
		drawHome(c, x, y, size)
	case KeyCheck:
		drawCheck(c, x, y, size)
	case KeyList:
		drawList(c, x, y, size)
	case KeyPen:
		drawPen(c, x, y, size)
	case KeyPaper:
		drawPaper(c, x, y, size)
	case KeyHandshake:
		drawHandshake(c, x, y, size)
	case KeyAlert:
		drawAlert(c, x, y, size)
	case KeyNumber:
		badge(c, x, y, size, "", geom.Container(ink), geom.OnContainer(ink))
	default:
		drawFallback(c, x, y, size)
	}

	c.PopState()
}

// DrawBadge paints the numbered-badge glyph: a filled circle with centered
// bold text. Fill and ink override the default badge coloring; this is the
// only glyph that renders text.
func DrawBadge(c canvas.Canvas, x, y, size float64, text string, fill, ink geom.RGB) {
	c.PushState()
	badge(c, x, y, size, text, fill, ink)
	c.PopState()
}

func badge(c canvas.Canvas, x, y, size float64, text string, fill, ink geom.RGB) {
	cx := x + size/2
	cy := y + size/2
	c.SetFillColor(fill.R, fill.G, fill.B)
	c.Circle(cx, cy, size/2, canvas.Fill)
	if text == "" {
		return
	}
	c.SetTextColor(ink.R, ink.G, ink.B)
	c.SetFont("B", size*0.52/canvas.PtToUnit)
	w := c.TextWidth(text)
	// Baseline sits below center by roughly a third of the text height.
	c.Text(cx-w/2, cy+size*0.19, text)
}

func drawUser(c canvas.Canvas, x, y, s float64) {
	// Head, then shoulders as an open arc approximated with a curve.
	c.Circle(x+s*0.5, y+s*0.32, s*0.18, canvas.Stroke)
	c.MoveTo(x+s*0.18, y+s*0.88)
	c.CurveTo(x+s*0.5, y+s*0.5, x+s*0.82, y+s*0.88)
	c.DrawPath(canvas.Stroke)
}

func drawCalendar(c canvas.Canvas, x, y, s float64) {
	c.RoundedRect(x+s*0.12, y+s*0.18, s*0.76, s*0.7, s*0.08, canvas.Stroke)
	// Binding tabs and the header rule.
	c.Line(x+s*0.32, y+s*0.08, x+s*0.32, y+s*0.26)
	c.Line(x+s*0.68, y+s*0.08, x+s*0.68, y+s*0.26)
	c.Line(x+s*0.12, y+s*0.4, x+s*0.88, y+s*0.4)
}

func drawPin(c canvas.Canvas, x, y, s float64) {
	// Teardrop: two curves meeting at the tip, with an inner dot.
	c.MoveTo(x+s*0.5, y+s*0.92)
	c.CurveTo(x+s*0.08, y+s*0.46, x+s*0.5, y+s*0.08)
	c.CurveTo(x+s*0.92, y+s*0.46, x+s*0.5, y+s*0.92)
	c.ClosePath()
	c.DrawPath(canvas.Stroke)
	c.Circle(x+s*0.5, y+s*0.38, s*0.1, canvas.Fill)
}

func drawPhone(c canvas.Canvas, x, y, s float64) {
	// Handset: earpiece and mouthpiece joined by a curved body.
	c.Circle(x+s*0.24, y+s*0.26, s*0.12, canvas.Fill)
	c.Circle(x+s*0.76, y+s*0.78, s*0.12, canvas.Fill)
	c.MoveTo(x+s*0.24, y+s*0.26)
	c.CurveTo(x+s*0.3, y+s*0.75, x+s*0.76, y+s*0.78)
	c.DrawPath(canvas.Stroke)
}

func drawMail(c canvas.Canvas, x, y, s float64) {
	c.RoundedRect(x+s*0.08, y+s*0.22, s*0.84, s*0.56, s*0.06, canvas.Stroke)
	c.MoveTo(x+s*0.08, y+s*0.26)
	c.LineTo(x+s*0.5, y+s*0.56)
	c.LineTo(x+s*0.92, y+s*0.26)
	c.DrawPath(canvas.Stroke)
}

func drawHome(c canvas.Canvas, x, y, s float64) {
	// Roof.
	c.MoveTo(x+s*0.08, y+s*0.5)
	c.LineTo(x+s*0.5, y+s*0.12)
	c.LineTo(x+s*0.92, y+s*0.5)
	c.DrawPath(canvas.Stroke)
	// Body and door.
	c.StrokeRect(x+s*0.2, y+s*0.5, s*0.6, s*0.4)
	c.StrokeRect(x+s*0.42, y+s*0.64, s*0.16, s*0.26)
}

func drawCheck(c canvas.Canvas, x, y, s float64) {
	c.MoveTo(x+s*0.16, y+s*0.55)
	c.LineTo(x+s*0.42, y+s*0.8)
	c.LineTo(x+s*0.86, y+s*0.22)
	c.DrawPath(canvas.Stroke)
}

func drawList(c canvas.Canvas, x, y, s float64) {
	for i := 0; i < 3; i++ {
		ly := y + s*(0.25+0.25*float64(i))
		c.Circle(x+s*0.14, ly, s*0.05, canvas.Fill)
		c.Line(x+s*0.3, ly, x+s*0.9, ly)
	}
}

func drawPen(c canvas.Canvas, x, y, s float64) {
	// Barrel.
	c.Line(x+s*0.3, y+s*0.7, x+s*0.78, y+s*0.22)
	// Nib.
	c.MoveTo(x+s*0.3, y+s*0.7)
	c.LineTo(x+s*0.16, y+s*0.84)
	c.LineTo(x+s*0.24, y+s*0.9)
	c.LineTo(x+s*0.38, y+s*0.78)
	c.ClosePath()
	c.DrawPath(canvas.Fill)
}

func drawPaper(c canvas.Canvas, x, y, s float64) {
	c.StrokeRect(x+s*0.2, y+s*0.1, s*0.6, s*0.8)
	// Folded corner.
	c.MoveTo(x+s*0.62, y+s*0.1)
	c.LineTo(x+s*0.8, y+s*0.28)
	c.LineTo(x+s*0.62, y+s*0.28)
	c.ClosePath()
	c.DrawPath(canvas.Fill)
	c.Line(x+s*0.3, y+s*0.45, x+s*0.7, y+s*0.45)
	c.Line(x+s*0.3, y+s*0.6, x+s*0.7, y+s*0.6)
	c.Line(x+s*0.3, y+s*0.75, x+s*0.58, y+s*0.75)
}

func drawHandshake(c canvas.Canvas, x, y, s float64) {
	// Two forearms meeting in clasped hands at the center.
	c.MoveTo(x+s*0.06, y+s*0.42)
	c.CurveTo(x+s*0.3, y+s*0.62, x+s*0.5, y+s*0.55)
	c.DrawPath(canvas.Stroke)
	c.MoveTo(x+s*0.94, y+s*0.42)
	c.CurveTo(x+s*0.7, y+s*0.62, x+s*0.5, y+s*0.55)
	c.DrawPath(canvas.Stroke)
	c.Circle(x+s*0.5, y+s*0.55, s*0.1, canvas.Fill)
}

func drawAlert(c canvas.Canvas, x, y, s float64) {
	c.MoveTo(x+s*0.5, y+s*0.1)
	c.LineTo(x+s*0.92, y+s*0.86)
	c.LineTo(x+s*0.08, y+s*0.86)
	c.ClosePath()
	c.DrawPath(canvas.Stroke)
	c.Line(x+s*0.5, y+s*0.36, x+s*0.5, y+s*0.62)
	c.Circle(x+s*0.5, y+s*0.74, s*0.04, canvas.Fill)
}

func drawFallback(c canvas.Canvas, x, y, s float64) {
	c.Circle(x+s*0.5, y+s*0.5, s*0.36, canvas.Stroke)
}
