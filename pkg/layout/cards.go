package layout

import (
	"strconv"

	"github.com/punchlabs/punchpdf/pkg/canvas"
	"github.com/punchlabs/punchpdf/pkg/geom"
	"github.com/punchlabs/punchpdf/pkg/icons"
	"github.com/punchlabs/punchpdf/pkg/images"
	"github.com/punchlabs/punchpdf/pkg/model"
	"github.com/punchlabs/punchpdf/pkg/textflow"
)

// detail row spacing inside the project card.
const (
	headlineGap = 2.5
	detailGap   = 1.5
	detailIcon  = 4.2
)

// projectMeasure is the measured shape of a project-info card.
type projectMeasure struct {
	headline   string
	subhead    string
	details    []model.Field
	headlineLH float64
	subheadLH  float64
	detailLH   float64
	boxW       float64
	boxH       float64
}

// measureProject sizes the card from its content: each row is measured
// independently, the box takes the widest row plus padding, and height
// accumulates only the rows that are present.
func (lc *Context) measureProject(info model.ProjectInfo) projectMeasure {
	m := projectMeasure{
		headline:   info.Headline(),
		subhead:    info.Subheadline(),
		details:    info.Details(),
		headlineLH: textflow.LineHeight(HeadlineFontPt),
		subheadLH:  textflow.LineHeight(SubheadFontPt),
		detailLH:   textflow.LineHeight(DetailFontPt),
	}

	maxW := 0.0
	lc.SetFont("B", HeadlineFontPt)
	if w := lc.Width(m.headline); w > maxW {
		maxW = w
	}
	lc.SetFont("", SubheadFontPt)
	if w := lc.Width(m.subhead); w > maxW {
		maxW = w
	}
	lc.SetFont("", DetailFontPt)
	for _, f := range m.details {
		if w := detailIcon + 2 + lc.Width(f.Value); w > maxW {
			maxW = w
		}
	}

	m.boxW = maxW + 2*PadX
	if m.boxW < MinCardWidth {
		m.boxW = MinCardWidth
	}
	if m.boxW > CardWidth {
		m.boxW = CardWidth
	}

	h := 2*PadY + m.headlineLH
	if m.subhead != "" {
		h += headlineGap + m.subheadLH
	}
	if len(m.details) > 0 {
		h += headlineGap
		for range m.details {
			h += m.detailLH + detailGap
		}
		h -= detailGap
	}
	m.boxH = h
	return m
}

// ProjectCard measures and paints the project-info card, horizontally
// centered, and advances the cursor past it.
func (lc *Context) ProjectCard(info model.ProjectInfo) {
	m := lc.measureProject(info)
	lc.EnsureRoom(m.boxH)

	x := (PageWidth - m.boxW) / 2
	top := lc.CursorY
	fill := lc.Theme.CardFill
	lc.C.SetFillColor(fill.R, fill.G, fill.B)
	lc.C.RoundedRect(x, top, m.boxW, m.boxH, 3, canvas.Fill)

	y := top + PadY
	ink := lc.Theme.Ink
	lc.C.SetTextColor(ink.R, ink.G, ink.B)

	lc.SetFont("B", HeadlineFontPt)
	lc.C.Text(x+(m.boxW-lc.Width(m.headline))/2, baseline(y, m.headlineLH), m.headline)
	y += m.headlineLH

	if m.subhead != "" {
		y += headlineGap
		subtle := lc.Theme.Subtle
		lc.C.SetTextColor(subtle.R, subtle.G, subtle.B)
		lc.SetFont("", SubheadFontPt)
		lc.C.Text(x+(m.boxW-lc.Width(m.subhead))/2, baseline(y, m.subheadLH), m.subhead)
		y += m.subheadLH
	}

	if len(m.details) > 0 {
		y += headlineGap
		lc.C.SetTextColor(ink.R, ink.G, ink.B)
		for _, f := range m.details {
			icons.Draw(lc.C, f.IconKey(), x+PadX, y+(m.detailLH-detailIcon)/2, detailIcon, lc.Theme.Accent)
			lc.SetFont("", DetailFontPt)
			lc.C.Text(x+PadX+detailIcon+2, baseline(y, m.detailLH), f.Value)
			y += m.detailLH + detailGap
		}
	}

	lc.Advance(m.boxH + CardGap)
}

// TitlePill paints a full-width pill bar with left-aligned bold text and
// advances the cursor. Callers needing the pill kept with following
// content must EnsureRoom for both before calling.
func (lc *Context) TitlePill(text string, fill, ink geom.RGB) {
	lc.EnsureRoom(PillHeight)
	lc.C.SetFillColor(fill.R, fill.G, fill.B)
	lc.C.RoundedRect(CardX, lc.CursorY, CardWidth, PillHeight, PillHeight/2, canvas.Fill)
	lc.C.SetTextColor(ink.R, ink.G, ink.B)
	lc.SetFont("B", TitleFontPt)
	lh := textflow.LineHeight(TitleFontPt)
	lc.C.Text(CardX+PillHeight/2+1, baseline(lc.CursorY+(PillHeight-lh)/2, lh), text)
	lc.Advance(PillHeight + ItemGap)
}

// Paragraph wraps and paints a run of text at the given indent from the
// card edge, breaking pages at line granularity, and advances the cursor.
func (lc *Context) Paragraph(text, style string, sizePt, indent float64, ink geom.RGB) {
	lc.SetFont(style, sizePt)
	block := textflow.Measure(text, CardWidth-2*PadX-indent, sizePt, lc.Width)
	lc.C.SetTextColor(ink.R, ink.G, ink.B)
	for _, line := range block.Lines {
		lc.EnsureRoom(block.LineHeight)
		// Font and color survive a page break; chrome painting restores
		// neither, so reassert both.
		lc.SetFont(style, sizePt)
		lc.C.SetTextColor(ink.R, ink.G, ink.B)
		lc.C.Text(CardX+PadX+indent, baseline(lc.CursorY, block.LineHeight), line)
		lc.Advance(block.LineHeight)
	}
}

// itemMeasure is one measured sign-off content line.
type itemMeasure struct {
	item     model.SectionItem
	block    textflow.Block
	indent   float64
	height   float64
	numbered bool
	number   int
}

// sectionMeasure is the measured shape of a sign-off section card.
type sectionMeasure struct {
	items     []itemMeasure
	height    float64
	signature bool
}

// measureSection resolves each body line's type and indent, wraps its
// text, and totals the card height before anything is painted.
func (lc *Context) measureSection(sec model.SignOffSection) sectionMeasure {
	numbered := sec.Title == model.WarrantyProcedures
	m := sectionMeasure{signature: sec.Type == model.ItemSignature}

	lc.SetFont("", BodyFontPt)
	number := 0
	for _, item := range sec.Items() {
		im := itemMeasure{item: item}
		switch {
		case item.Type == model.ItemInitials:
			im.indent = InitialIndent
		case numbered && item.Type == model.ItemText:
			im.indent = NumberedIndent
			im.numbered = true
			number++
			im.number = number
		}

		budget := CardWidth - 2*PadX - im.indent
		if im.numbered {
			budget -= BadgeSize + 4 + NumberedPad
		}
		im.block = textflow.Measure(item.Text, budget, BodyFontPt, lc.Width)

		im.height = im.block.Height
		switch {
		case item.Type == model.ItemInitials && im.height < InitialBoxH:
			im.height = InitialBoxH
		case im.numbered:
			im.height = im.block.Height + 2*NumberedPad
		}
		m.items = append(m.items, im)
	}

	m.height = TitleBarHeight + PadY
	for _, im := range m.items {
		m.height += im.height + ItemGap
	}
	if m.signature {
		m.height += SignatureBlockHeight
	}
	return m
}

// SectionCard measures and paints one sign-off section card. The page
// break decision covers the whole card, so a title bar is never separated
// from its first content line. For signature sections, prefill optionally
// rasterizes an existing signature into the first signature box.
func (lc *Context) SectionCard(sec model.SignOffSection, prefill *images.Raster) {
	m := lc.measureSection(sec)
	lc.EnsureRoom(m.height)

	top := lc.CursorY
	fill := lc.Theme.CardFill
	lc.C.SetFillColor(fill.R, fill.G, fill.B)
	lc.C.RoundedRect(CardX, top, CardWidth, m.height, 2.5, canvas.Fill)

	accent := lc.Theme.Accent
	lc.C.SetFillColor(accent.R, accent.G, accent.B)
	lc.C.RoundedRect(CardX, top, CardWidth, TitleBarHeight, 2.5, canvas.Fill)
	lc.C.SetTextColor(255, 255, 255)
	lc.SetFont("B", TitleFontPt)
	titleLH := textflow.LineHeight(TitleFontPt)
	lc.C.Text(CardX+PadX, baseline(top+(TitleBarHeight-titleLH)/2, titleLH), sec.Title)

	y := top + TitleBarHeight + ItemGap
	for _, im := range m.items {
		lc.paintItem(im, y)
		y += im.height + ItemGap
	}

	lc.CursorY = y
	if m.signature {
		lc.SignatureRows(prefill)
	}
	lc.CursorY = top + m.height
	lc.Advance(CardGap)
}

// paintItem paints one measured section item at vertical offset y.
func (lc *Context) paintItem(im itemMeasure, y float64) {
	ink := lc.Theme.Ink
	textX := CardX + PadX + im.indent

	if im.numbered {
		boxX := CardX + PadX + im.indent
		boxW := CardWidth - 2*PadX - im.indent
		container := geom.Container(lc.Theme.Accent)
		lc.C.SetFillColor(container.R, container.G, container.B)
		lc.C.RoundedRect(boxX, y, boxW, im.height, 1.5, canvas.Fill)

		nudge := BadgeCenterNudge
		if len(im.block.Lines) == 1 {
			nudge = BadgeCenterNudgeSingle
		}
		badgeY := y + im.height/2 - BadgeSize/2 + nudge
		icons.DrawBadge(lc.C, boxX+NumberedPad, badgeY, BadgeSize,
			strconv.Itoa(im.number), lc.Theme.Accent, geom.White)

		textX = boxX + NumberedPad + BadgeSize + 4
		lc.paintLines(im.block, textX, y+NumberedPad, ink)
		return
	}

	if im.item.Type == model.ItemInitials {
		style := geom.StyleFor(geom.BoxInitial)
		lc.C.SetLineWidth(style.LineWidth)
		lc.C.SetDrawColor(style.Stroke.R, style.Stroke.G, style.Stroke.B)
		lc.C.RoundedRect(CardX+PadX, y, InitialBoxW, InitialBoxH, style.Radius, canvas.Stroke)
	}

	lc.paintLines(im.block, textX, y, ink)
}

// paintLines paints a measured block starting at (x, top).
func (lc *Context) paintLines(block textflow.Block, x, top float64, ink geom.RGB) {
	lc.C.SetTextColor(ink.R, ink.G, ink.B)
	lc.SetFont("", BodyFontPt)
	for i, line := range block.Lines {
		lc.C.Text(x, baseline(top+float64(i)*block.LineHeight, block.LineHeight), line)
	}
}

// SignatureRows paints the two homebuyer signature+date row pairs at the
// cursor. When prefill is present its raster is placed inside the first
// signature box; a failed embed leaves the box empty.
func (lc *Context) SignatureRows(prefill *images.Raster) {
	style := geom.StyleFor(geom.BoxSignature)
	lc.C.SetLineWidth(style.LineWidth)
	lc.C.SetDrawColor(style.Stroke.R, style.Stroke.G, style.Stroke.B)
	subtle := lc.Theme.Subtle

	sigW := CardWidth - 2*PadX - 50 - 6
	dateX := CardX + PadX + sigW + 6
	labelLH := textflow.LineHeight(CaptionFontPt)

	y := lc.CursorY
	for row := 0; row < 2; row++ {
		lc.C.RoundedRect(CardX+PadX, y, sigW, SigBoxH, style.Radius, canvas.Stroke)
		lc.C.RoundedRect(dateX, y, 50, SigBoxH, style.Radius, canvas.Stroke)

		if row == 0 && prefill != nil {
			w, h := prefill.AspectFit(sigW-4, SigBoxH-3)
			// Undecodable signatures were filtered upstream; a backend
			// rejection here just leaves the box blank.
			_ = lc.C.Image(prefill.Name, prefill.Data, prefill.Format,
				CardX+PadX+2, y+(SigBoxH-h)/2, w, h)
		}

		lc.C.SetTextColor(subtle.R, subtle.G, subtle.B)
		lc.SetFont("", CaptionFontPt)
		lc.C.Text(CardX+PadX, baseline(y+SigBoxH+0.5, labelLH), "Homebuyer Signature")
		lc.C.Text(dateX, baseline(y+SigBoxH+0.5, labelLH), "Date")
		y += SigRowHeight
	}
	lc.CursorY = y
}
