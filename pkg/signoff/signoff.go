// Package signoff assembles the walkthrough sign-off PDF: the template's
// section cards followed by a fixed closing card with the certification
// text and homebuyer signature rows. This document is consumed flattened
// for ink overlay, so no coordinate map is produced.
package signoff

import (
	"context"
	"time"

	"github.com/punchlabs/punchpdf/pkg/canvas"
	perrors "github.com/punchlabs/punchpdf/pkg/errors"
	"github.com/punchlabs/punchpdf/pkg/geom"
	"github.com/punchlabs/punchpdf/pkg/images"
	"github.com/punchlabs/punchpdf/pkg/layout"
	"github.com/punchlabs/punchpdf/pkg/model"
	"github.com/punchlabs/punchpdf/pkg/textflow"
)

const (
	logoMaxW = 40.0
	logoMaxH = 18.0

	closingTitle = "Sign Off"
	notYetLabel  = "Items not yet complete:"
	notYetBoxH   = 18.0

	disclaimerLine = "This form documents the condition of the residence as reviewed " +
		"during the walkthrough and does not waive any rights under the builder's warranty."
)

// Options tune one sign-off generation pass.
type Options struct {
	// Logo is an optional data URI painted in the header band.
	Logo string

	// Signature is an optional data URI pre-filled into the first
	// homebuyer signature box.
	Signature string

	// Now fixes the date embedded in the certification line. Zero means
	// the current time.
	Now time.Time

	// Theme overrides the stock colors when non-nil.
	Theme *layout.Theme

	// LogoProbeTimeout bounds the logo dimension probe; zero means one
	// second. On timeout the logo is omitted.
	LogoProbeTimeout time.Duration
}

// Generate lays out the sign-off form onto c: header chrome, the project
// card, every template section in order, then the closing certification
// card. A bad logo or signature image degrades to omission. The caller
// serializes the finished document through c.Output.
func Generate(ctx context.Context, c canvas.Canvas, info model.ProjectInfo, tmpl model.SignOffTemplate, opts Options) error {
	if c == nil {
		return perrors.Inputf(perrors.ErrInputInvalid, "nil canvas")
	}
	if len(tmpl.Sections) == 0 {
		return perrors.Templatef(perrors.ErrTemplateEmpty, "template %q has no sections", tmpl.Name)
	}

	theme := layout.DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	lc := layout.NewContext(c, theme)
	lc.StartPage()

	if opts.Logo != "" {
		timeout := opts.LogoProbeTimeout
		if timeout <= 0 {
			timeout = time.Second
		}
		probeCtx, cancel := context.WithTimeout(ctx, timeout)
		lc.HeaderLogo(probeCtx, opts.Logo, logoMaxW, logoMaxH)
		cancel()
	}

	title := tmpl.Name
	if title == "" {
		title = "Walkthrough Sign Off"
	}
	lc.TitlePill(title, theme.Accent, geom.White)
	lc.ProjectCard(info)

	// Template signature sections always render blank rows; only the
	// closing card's first row takes the supplied signature.
	for _, sec := range tmpl.Sections {
		lc.SectionCard(sec, nil)
	}

	closingCard(lc, signatureRaster(opts.Signature), now)
	return nil
}

// signatureRaster decodes the caller's signature image. An undecodable
// signature leaves the boxes blank for a wet signature instead.
func signatureRaster(uri string) *images.Raster {
	if uri == "" {
		return nil
	}
	raster, err := images.Decode(uri)
	if err != nil {
		return nil
	}
	return raster
}

// closingCard paints the fixed final card: italic disclaimer, bold
// certification with the current date, two signature+date row pairs, and
// the blank box for items not yet complete. The break check covers the
// whole card.
func closingCard(lc *layout.Context, prefill *images.Raster, now time.Time) {
	bodyW := layout.CardWidth - 2*layout.PadX
	certLine := certification(now)

	lc.SetFont("I", layout.BodyFontPt)
	disc := textflow.Measure(disclaimerLine, bodyW, layout.BodyFontPt, lc.Width)
	lc.SetFont("B", layout.BodyFontPt)
	cert := textflow.Measure(certLine, bodyW, layout.BodyFontPt, lc.Width)
	labelLH := textflow.LineHeight(layout.CaptionFontPt)

	height := layout.TitleBarHeight + layout.ItemGap +
		disc.Height + layout.ItemGap +
		cert.Height + layout.ItemGap +
		2*layout.SigRowHeight +
		labelLH + 1 + notYetBoxH + layout.PadY
	lc.EnsureRoom(height)

	top := lc.CursorY
	fill := lc.Theme.CardFill
	lc.C.SetFillColor(fill.R, fill.G, fill.B)
	lc.C.RoundedRect(layout.CardX, top, layout.CardWidth, height, 2.5, canvas.Fill)

	accent := lc.Theme.Accent
	lc.C.SetFillColor(accent.R, accent.G, accent.B)
	lc.C.RoundedRect(layout.CardX, top, layout.CardWidth, layout.TitleBarHeight, 2.5, canvas.Fill)
	lc.C.SetTextColor(255, 255, 255)
	lc.SetFont("B", layout.TitleFontPt)
	titleLH := textflow.LineHeight(layout.TitleFontPt)
	lc.C.Text(layout.CardX+layout.PadX, top+(layout.TitleBarHeight-titleLH)/2+titleLH*0.78, closingTitle)

	x := layout.CardX + layout.PadX
	y := top + layout.TitleBarHeight + layout.ItemGap

	ink := lc.Theme.Ink
	y = paintRun(lc, disc, "I", x, y, ink) + layout.ItemGap
	y = paintRun(lc, cert, "B", x, y, ink) + layout.ItemGap

	lc.CursorY = y
	lc.SignatureRows(prefill)
	y = lc.CursorY

	subtle := lc.Theme.Subtle
	lc.SetFont("", layout.CaptionFontPt)
	lc.C.SetTextColor(subtle.R, subtle.G, subtle.B)
	lc.C.Text(x, y+labelLH*0.78, notYetLabel)
	y += labelLH + 1

	style := geom.StyleFor(geom.BoxSignature)
	lc.C.SetLineWidth(style.LineWidth)
	lc.C.SetDrawColor(style.Stroke.R, style.Stroke.G, style.Stroke.B)
	lc.C.RoundedRect(x, y, bodyW, notYetBoxH, style.Radius, canvas.Stroke)

	lc.CursorY = top + height
	lc.Advance(layout.CardGap)
}

// certification renders the bold acceptance line with the export date.
func certification(now time.Time) string {
	return "I certify that the walkthrough was completed with me on " +
		now.Format("January 2, 2006") + " and that the items recorded above " +
		"accurately reflect its findings."
}

// paintRun paints a measured block top-down at x and returns the y just
// below it.
func paintRun(lc *layout.Context, block textflow.Block, style string, x, y float64, ink geom.RGB) float64 {
	lc.SetFont(style, layout.BodyFontPt)
	lc.C.SetTextColor(ink.R, ink.G, ink.B)
	for i, line := range block.Lines {
		lc.C.Text(x, y+float64(i)*block.LineHeight+block.LineHeight*0.78, line)
	}
	return y + block.Height
}
