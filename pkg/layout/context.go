// Package layout is the card layout engine: it measures content, decides
// page breaks against the fixed page boundary, advances a running vertical
// cursor, and paints card chrome. All drawing goes through canvas.Canvas,
// and every card measures itself fully before painting anything.
package layout

import (
	"context"

	"github.com/punchlabs/punchpdf/pkg/canvas"
	"github.com/punchlabs/punchpdf/pkg/geom"
	"github.com/punchlabs/punchpdf/pkg/images"
)

// Page geometry contract, in page units. Coordinate records handed to
// consumers use this same system.
const (
	PageWidth  = 210.0
	PageHeight = 297.0

	// BandHeight is the height of the gradient header and footer bands.
	BandHeight = 35.0

	// ContentTop is where the cursor starts on a fresh page.
	ContentTop = 40.0

	// ContentBottom is the page content boundary. Nothing paints below it;
	// content that would is moved to a new page first.
	ContentBottom = PageHeight - BandHeight - 5
)

// Card metrics.
const (
	CardWidth = 190.0
	CardX     = (PageWidth - CardWidth) / 2
	CardGap   = 6.0

	PadX = 6.0
	PadY = 5.0

	TitleBarHeight = 10.0
	PillHeight     = 9.0

	MinCardWidth = 90.0
)

// Sign-off item metrics.
const (
	// InitialIndent is the text indent that leaves room for an initials box.
	InitialIndent = 16.0

	// NumberedIndent is the left inset of the numbered background boxes in
	// the warranty-procedures section.
	NumberedIndent = 8.0

	InitialBoxW = 12.0
	InitialBoxH = 8.0

	BadgeSize   = 6.0
	NumberedPad = 2.5

	ItemGap = 3.0

	// BadgeCenterNudge shifts the numbered badge toward the visual center
	// of its background box; the single-line variant needs a larger shift.
	// Both are tuned by eye, not derived.
	BadgeCenterNudge       = 0.5
	BadgeCenterNudgeSingle = 1.2
)

// Signature block metrics.
const (
	SigBoxH      = 14.0
	SigLabelH    = 5.0
	SigRowGap    = 4.0
	SigRowHeight = SigBoxH + SigLabelH + SigRowGap

	// SignatureBlockHeight is the fixed extra height a signature-type
	// section card reserves for its two signature+date row pairs.
	SignatureBlockHeight = 2*SigRowHeight + 4
)

// Font sizes in points.
const (
	HeadlineFontPt = 16.0
	SubheadFontPt  = 11.0
	DetailFontPt   = 9.0
	TitleFontPt    = 11.0
	BodyFontPt     = 10.0
	CaptionFontPt  = 7.5
)

// Theme is the color set applied to page chrome and cards.
type Theme struct {
	// Accent drives the header/footer gradients and title bars.
	Accent geom.RGB

	// AccentAlt colors the rewalk-notes pill so follow-up items read
	// differently from ordinary locations.
	AccentAlt geom.RGB

	Ink      geom.RGB
	Subtle   geom.RGB
	CardFill geom.RGB
}

// DefaultTheme returns the stock report colors.
func DefaultTheme() Theme {
	return Theme{
		Accent:    geom.RGB{R: 31, G: 78, B: 121},
		AccentAlt: geom.RGB{R: 191, G: 96, B: 22},
		Ink:       geom.RGB{R: 40, G: 40, B: 40},
		Subtle:    geom.RGB{R: 112, G: 118, B: 126},
		CardFill:  geom.RGB{R: 243, G: 246, B: 250},
	}
}

// Context threads the mutable layout state through every draw call: the
// canvas, the theme, and the running vertical cursor. One Context serves
// one document-generation pass; concurrent generations each build their
// own.
type Context struct {
	C       canvas.Canvas
	Theme   Theme
	CursorY float64
}

// NewContext wraps a canvas for one generation pass. No page exists yet;
// StartPage begins the first one.
func NewContext(c canvas.Canvas, theme Theme) *Context {
	return &Context{C: c, Theme: theme}
}

// StartPage appends a page, paints its gradient bands, and resets the
// cursor to the top of the content area.
func (lc *Context) StartPage() {
	lc.C.AddPage()
	lc.paintChrome()
	lc.CursorY = ContentTop
}

// paintChrome draws the header and footer gradient bands.
func (lc *Context) paintChrome() {
	light := geom.Mix(lc.Theme.Accent, geom.White, 0.45)
	geom.VerticalGradient(lc.C, 0, 0, PageWidth, BandHeight, lc.Theme.Accent, light)
	geom.VerticalGradient(lc.C, 0, PageHeight-BandHeight, PageWidth, BandHeight, light, lc.Theme.Accent)
}

// EnsureRoom starts a new page when the next h units of content would
// cross the content boundary. It reports whether a break happened. The
// check always runs before any of that content is painted.
func (lc *Context) EnsureRoom(h float64) bool {
	if lc.CursorY+h > ContentBottom {
		lc.StartPage()
		return true
	}
	return false
}

// Advance moves the cursor down h units.
func (lc *Context) Advance(h float64) {
	lc.CursorY += h
}

// PageIndex returns the zero-based index of the current page.
func (lc *Context) PageIndex() int {
	return lc.C.PageIndex()
}

// SetFont selects the face for subsequent text and measurement.
func (lc *Context) SetFont(style string, sizePt float64) {
	lc.C.SetFont(style, sizePt)
}

// Width measures a string under the current font, in page units.
func (lc *Context) Width(s string) float64 {
	return lc.C.TextWidth(s)
}

// HeaderLogo resolves a logo data URI and places it inside the first
// page's header band, scaled to fit maxW by maxH preserving aspect
// ratio. The probe is bounded by ctx; any failure omits the logo and the
// document carries on.
func (lc *Context) HeaderLogo(ctx context.Context, uri string, maxW, maxH float64) {
	if _, _, err := images.ProbeSize(ctx, uri); err != nil {
		return
	}
	raster, err := images.Decode(uri)
	if err != nil {
		return
	}
	w, h := raster.AspectFit(maxW, maxH)
	_ = lc.C.Image(raster.Name, raster.Data, raster.Format,
		CardX, (BandHeight-h)/2, w, h)
}

// baseline converts a line's top offset into its text baseline.
func baseline(top, lineHeight float64) float64 {
	return top + lineHeight*0.78
}
