// Package canvas defines the drawing surface the punchpdf layout engine
// paints on, plus two implementations: a PDF backend built on fpdf and an
// in-memory Recorder for tests.
//
// The engine works in page units (millimeters on an A4 page). Text width
// is exposed as a query separate from painting so layout code can measure
// content before committing any ink.
package canvas

import "io"

// PtToUnit converts a font size in points to page units (millimeters).
const PtToUnit = 0.3528

// Style strings accepted by the shape and path calls.
const (
	Fill       = "F"
	Stroke     = "D"
	FillStroke = "FD"
)

// Canvas is the drawing surface. One Canvas holds one document; pages are
// appended with AddPage and drawing always targets the latest page.
//
// Implementations keep their own graphics state (colors, line width, font);
// PushState/PopState bracket temporary changes so styling cannot leak.
type Canvas interface {
	// AddPage appends a blank page and makes it current.
	AddPage()
	// PageIndex returns the zero-based index of the current page, or -1
	// before the first AddPage.
	PageIndex() int
	// PageSize returns the page dimensions in page units.
	PageSize() (w, h float64)

	// SetFont selects the face used by Text and TextWidth. Style is a
	// combination of "B" and "I", or empty for regular. Size is in points.
	SetFont(style string, sizePt float64)
	// TextWidth returns the painted width of s in page units under the
	// current font.
	TextWidth(s string) float64
	// Text paints s with its baseline at (x, y).
	Text(x, y float64, s string)

	SetTextColor(r, g, b int)
	SetFillColor(r, g, b int)
	SetDrawColor(r, g, b int)
	SetLineWidth(w float64)
	// SetLineCap sets the stroke cap style: "butt", "round" or "square".
	SetLineCap(style string)
	// SetLineJoin sets the stroke join style: "miter", "round" or "bevel".
	SetLineJoin(style string)
	// SetAlpha sets the constant opacity for subsequent drawing, 0..1.
	SetAlpha(alpha float64)

	FillRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)
	RoundedRect(x, y, w, h, radius float64, style string)
	Circle(cx, cy, r float64, style string)
	Line(x1, y1, x2, y2 float64)

	// MoveTo begins a path; LineTo/CurveTo extend it; DrawPath paints it
	// with the given style. CurveTo is a quadratic segment through the
	// control point (cx, cy).
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(cx, cy, x, y float64)
	ClosePath()
	DrawPath(style string)

	PushState()
	PopState()

	// Image paints a raster image. Name keys the backend's resource cache
	// so repeated placements embed the bytes once. Format is "PNG" or
	// "JPEG". A failed embed reports an error without invalidating the
	// document.
	Image(name string, data []byte, format string, x, y, w, h float64) error

	// Output writes the finished document.
	Output(w io.Writer) error
}
