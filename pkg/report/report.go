// Package report assembles the punch-list PDF: page chrome, project card,
// location pills, issues with checkboxes and photo grids. Alongside the
// document it emits the coordinate map an interactive markup layer uses
// to hit-test the rendered pages.
package report

import (
	"context"
	"time"

	"github.com/punchlabs/punchpdf/pkg/canvas"
	perrors "github.com/punchlabs/punchpdf/pkg/errors"
	"github.com/punchlabs/punchpdf/pkg/geom"
	"github.com/punchlabs/punchpdf/pkg/icons"
	"github.com/punchlabs/punchpdf/pkg/images"
	"github.com/punchlabs/punchpdf/pkg/layout"
	"github.com/punchlabs/punchpdf/pkg/model"
	"github.com/punchlabs/punchpdf/pkg/textflow"
)

// Issue row geometry. The text zone sits between the checkbox column and
// the photo grid; photos run four per row on the right.
const (
	checkboxSize = 4.5
	textZoneX    = 10.0 // from the card edge
	textZoneW    = 85.0
	photoZoneX   = 100.0 // from the card edge
	photoCols    = 4
	photoW       = 21.0
	photoH       = 16.0
	photoGap     = 2.0
	captionH     = 5.0
	issueGap     = 4.0

	logoMaxW = 40.0
	logoMaxH = 18.0
)

// DefaultLogoProbeTimeout bounds the logo dimension probe.
const DefaultLogoProbeTimeout = time.Second

const reportTitle = "Punch List"

const disclaimer = "The items listed below were identified during the walkthrough " +
	"inspection and are to be corrected prior to close-out. Completion of each item " +
	"is acknowledged by checking it on a reviewed copy of this report."

// ImageLocation records where one photo landed, keyed by its issue.
type ImageLocation struct {
	Page    int
	X, Y    float64
	W, H    float64
	IssueID string
}

// CheckboxLocation records where an issue's checkbox landed. The Text*
// fields anchor the issue's description zone; current consumers only
// hit-test the box, but the anchors are part of the contract.
type CheckboxLocation struct {
	Page    int
	X, Y    float64
	W, H    float64
	IssueID string
	TextX   float64
	TextY   float64
	TextW   float64
}

// HitCheckbox maps a page-unit point back to the issue whose checkbox
// contains it.
func HitCheckbox(recs []CheckboxLocation, page int, x, y float64) (string, bool) {
	for _, r := range recs {
		if r.Page == page && x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H {
			return r.IssueID, true
		}
	}
	return "", false
}

// Options tune one punch-list generation pass.
type Options struct {
	// Logo is an optional data URI painted in the header band.
	Logo string

	// Marks overlays review marks onto issues during regeneration.
	Marks model.MarkMap

	// Now fixes the date appended to the rewalk-notes title. Zero means
	// the current time.
	Now time.Time

	// Theme overrides the stock colors when non-nil.
	Theme *layout.Theme

	// LogoProbeTimeout bounds the logo dimension probe; zero means
	// DefaultLogoProbeTimeout. On timeout the logo is omitted.
	LogoProbeTimeout time.Duration
}

// Result is the finished document plus the coordinate side-channel.
type Result struct {
	Doc        canvas.Canvas
	Images     []ImageLocation
	Checkboxes []CheckboxLocation
	Pages      int
}

// Generate lays out the punch-list report onto c in one pass. Locations
// with no issues are skipped; the Rewalk Notes pseudo-location renders
// last. Photo and logo failures degrade to omission, never to an error.
func Generate(ctx context.Context, c canvas.Canvas, info model.ProjectInfo, locations []model.Location, opts Options) (*Result, error) {
	if c == nil {
		return nil, perrors.Inputf(perrors.ErrInputInvalid, "nil canvas")
	}

	theme := layout.DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	g := &generator{
		lc:    layout.NewContext(c, theme),
		marks: opts.Marks,
	}

	g.lc.StartPage()
	g.header(ctx, info, opts)

	for _, loc := range model.RenderOrder(locations) {
		g.location(loc, now)
	}

	return &Result{
		Doc:        c,
		Images:     g.images,
		Checkboxes: g.checkboxes,
		Pages:      c.PageIndex() + 1,
	}, nil
}

// generator carries the per-pass state: the layout context and the
// coordinate records accumulated so far.
type generator struct {
	lc         *layout.Context
	marks      model.MarkMap
	images     []ImageLocation
	checkboxes []CheckboxLocation
}

// header paints the first-page chrome content: logo, title pill, project
// card and disclaimer.
func (g *generator) header(ctx context.Context, info model.ProjectInfo, opts Options) {
	if opts.Logo != "" {
		g.logo(ctx, opts)
	}

	g.lc.TitlePill(reportTitle, g.lc.Theme.Accent, geom.White)
	g.lc.ProjectCard(info)
	g.lc.Paragraph(disclaimer, "I", 8, 0, g.lc.Theme.Subtle)
	g.lc.Advance(layout.CardGap)
}

// logo places the logo inside the header band. Probe timeouts and decode
// failures omit the logo; the report always survives.
func (g *generator) logo(ctx context.Context, opts Options) {
	timeout := opts.LogoProbeTimeout
	if timeout <= 0 {
		timeout = DefaultLogoProbeTimeout
	}
	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	g.lc.HeaderLogo(probeCtx, opts.Logo, logoMaxW, logoMaxH)
}

// issueMeasure is the measured shape of one issue row.
type issueMeasure struct {
	block    textflow.Block
	gridRows int
	captions bool
	height   float64
}

func (g *generator) measureIssue(issue model.Issue) issueMeasure {
	g.lc.SetFont("", layout.BodyFontPt)
	m := issueMeasure{
		block: textflow.Measure(issue.Description, textZoneW, layout.BodyFontPt, g.lc.Width),
	}
	if n := len(issue.Photos); n > 0 {
		m.gridRows = (n + photoCols - 1) / photoCols
		for _, p := range issue.Photos {
			if p.Description != "" {
				m.captions = true
			}
		}
	}

	textH := m.block.Height
	if textH < checkboxSize {
		textH = checkboxSize
	}
	gridH := float64(m.gridRows) * g.rowHeight(m.captions)
	m.height = textH
	if gridH > m.height {
		m.height = gridH
	}
	return m
}

func (g *generator) rowHeight(captions bool) float64 {
	h := photoH + photoGap
	if captions {
		h += captionH
	}
	return h
}

// location paints one title pill and all of its issues. The pill is never
// separated from the first issue: the break check covers both before any
// drawing starts.
func (g *generator) location(loc model.Location, now time.Time) {
	title := loc.Name
	fill := g.lc.Theme.Accent
	if loc.Name == model.RewalkNotes {
		fill = g.lc.Theme.AccentAlt
		title = title + " - " + now.Format("January 2, 2006")
	}

	first := g.measureIssue(loc.Issues[0])
	need := layout.PillHeight + layout.ItemGap + first.height
	if span := layout.ContentBottom - layout.ContentTop; need > span {
		need = span
	}
	g.lc.EnsureRoom(need)
	g.lc.TitlePill(title, fill, geom.White)

	for i, issue := range loc.Issues {
		m := first
		if i > 0 {
			m = g.measureIssue(issue)
			need = m.height
			if span := layout.ContentBottom - layout.ContentTop; need > span {
				need = span
			}
			g.lc.EnsureRoom(need)
		}
		g.issue(issue, m)
	}
	g.lc.Advance(layout.CardGap - issueGap)
}

// issue paints one checkbox row: the checkbox (always recorded), any
// review-mark overlays, the wrapped description, and the photo grid. An
// issue taller than a full page cannot keep the two-column shape and
// flows instead.
func (g *generator) issue(issue model.Issue, m issueMeasure) {
	if m.height > layout.ContentBottom-layout.ContentTop {
		g.issueFlowed(issue, m)
		return
	}

	lc := g.lc
	top := lc.CursorY
	g.checkbox(issue, top)
	g.paintDescription(m.block, top)

	rowH := g.rowHeight(m.captions)
	for start := 0; start < len(issue.Photos); start += photoCols {
		end := start + photoCols
		if end > len(issue.Photos) {
			end = len(issue.Photos)
		}
		g.photoRow(issue.ID, issue.Photos[start:end], top+float64(start/photoCols)*rowH)
	}

	lc.CursorY = top + m.height + issueGap
}

// issueFlowed paints an issue taller than one page's content area. The
// side-by-side columns degrade to a stacked flow: description lines break
// pages at line granularity, then the photo grid breaks at row
// granularity, so ink never crosses the content boundary.
func (g *generator) issueFlowed(issue model.Issue, m issueMeasure) {
	lc := g.lc
	g.checkbox(issue, lc.CursorY)

	ink := lc.Theme.Ink
	for _, line := range m.block.Lines {
		lc.EnsureRoom(m.block.LineHeight)
		lc.SetFont("", layout.BodyFontPt)
		lc.C.SetTextColor(ink.R, ink.G, ink.B)
		lc.C.Text(layout.CardX+textZoneX, lc.CursorY+m.block.LineHeight*0.78, line)
		lc.Advance(m.block.LineHeight)
	}

	rowH := g.rowHeight(m.captions)
	for start := 0; start < len(issue.Photos); start += photoCols {
		end := start + photoCols
		if end > len(issue.Photos) {
			end = len(issue.Photos)
		}
		lc.EnsureRoom(rowH)
		g.photoRow(issue.ID, issue.Photos[start:end], lc.CursorY)
		lc.Advance(rowH)
	}
	lc.Advance(issueGap)
}

// checkbox paints the issue's checkbox at vertical offset top, records
// its location, and overlays any review marks.
func (g *generator) checkbox(issue model.Issue, top float64) {
	lc := g.lc
	boxX := layout.CardX + 1
	lc.C.SetLineWidth(0.4)
	ink := lc.Theme.Ink
	lc.C.SetDrawColor(ink.R, ink.G, ink.B)
	lc.C.RoundedRect(boxX, top, checkboxSize, checkboxSize, 1, canvas.Stroke)

	g.checkboxes = append(g.checkboxes, CheckboxLocation{
		Page:    lc.PageIndex(),
		X:       boxX,
		Y:       top,
		W:       checkboxSize,
		H:       checkboxSize,
		IssueID: issue.ID,
		TextX:   layout.CardX + textZoneX,
		TextY:   top,
		TextW:   textZoneW,
	})

	// Marks are additive; an issue can carry both.
	if g.marks.Has(issue.ID, model.MarkCheck) {
		icons.Draw(lc.C, icons.KeyCheck, boxX-0.5, top-0.5, checkboxSize+1, geom.RGB{R: 46, G: 125, B: 50})
	}
	if g.marks.Has(issue.ID, model.MarkX) {
		g.strikeX(boxX, top)
	}
}

// strikeX paints the rejected-item cross over the checkbox.
func (g *generator) strikeX(x, y float64) {
	lc := g.lc
	lc.C.PushState()
	lc.C.SetDrawColor(183, 28, 28)
	lc.C.SetLineWidth(0.7)
	lc.C.SetLineCap("round")
	lc.C.Line(x, y, x+checkboxSize, y+checkboxSize)
	lc.C.Line(x+checkboxSize, y, x, y+checkboxSize)
	lc.C.PopState()
}

// paintDescription paints the wrapped issue text beside the checkbox.
// Room for the whole issue was ensured before painting started, so lines
// never reach the content boundary here.
func (g *generator) paintDescription(block textflow.Block, top float64) {
	lc := g.lc
	ink := lc.Theme.Ink
	lc.SetFont("", layout.BodyFontPt)
	lc.C.SetTextColor(ink.R, ink.G, ink.B)
	for i, line := range block.Lines {
		lc.C.Text(layout.CardX+textZoneX,
			top+float64(i)*block.LineHeight+block.LineHeight*0.78, line)
	}
}

// photoRow paints up to one grid row of photos at vertical offset y,
// left-to-right, recording a coordinate entry for each photo that embeds.
// A photo that fails to decode or embed is dropped alone.
func (g *generator) photoRow(issueID string, row []model.Photo, y float64) {
	lc := g.lc
	for col, photo := range row {
		raster, err := images.Decode(photo.URL)
		if err != nil {
			continue
		}

		x := layout.CardX + photoZoneX + float64(col)*(photoW+photoGap)
		w, h := raster.AspectFit(photoW, photoH)
		if err := lc.C.Image(raster.Name, raster.Data, raster.Format,
			x+(photoW-w)/2, y+(photoH-h)/2, w, h); err != nil {
			continue
		}

		g.images = append(g.images, ImageLocation{
			Page:    lc.PageIndex(),
			X:       x,
			Y:       y,
			W:       photoW,
			H:       photoH,
			IssueID: issueID,
		})

		if photo.Description != "" {
			g.caption(photo.Description, x, y+photoH+0.5)
		}
	}
}

// caption paints a small pill under a photo, truncating the text to the
// cell width.
func (g *generator) caption(text string, x, y float64) {
	lc := g.lc
	fill := lc.Theme.CardFill
	lc.C.SetFillColor(fill.R, fill.G, fill.B)
	lc.C.RoundedRect(x, y, photoW, captionH-1, (captionH-1)/2, canvas.Fill)

	lc.SetFont("", layout.CaptionFontPt)
	runes := []rune(text)
	for len(runes) > 1 && lc.Width(string(runes)) > photoW-2 {
		runes = runes[:len(runes)-1]
	}
	subtle := lc.Theme.Subtle
	lc.C.SetTextColor(subtle.R, subtle.G, subtle.B)
	lh := textflow.LineHeight(layout.CaptionFontPt)
	lc.C.Text(x+1, y+(captionH-1-lh)/2+lh*0.78, string(runes))
}
