package signoff

import (
	"bytes"
	"context"
	"encoding/base64"
	stderrors "errors"
	"image"
	"image/color"
	"image/png"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/punchlabs/punchpdf/pkg/canvas"
	perrors "github.com/punchlabs/punchpdf/pkg/errors"
	"github.com/punchlabs/punchpdf/pkg/layout"
	"github.com/punchlabs/punchpdf/pkg/model"
)

var fixedNow = time.Date(2026, time.April, 3, 10, 0, 0, 0, time.UTC)

func pngDataURI(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func testInfo() model.ProjectInfo {
	return model.ProjectInfo{Fields: []model.Field{
		{ID: "headline", Value: "Maple Street Lot 12"},
	}}
}

func testTemplate() model.SignOffTemplate {
	return model.SignOffTemplate{
		ID:   "walkthrough",
		Name: "Walkthrough Sign Off",
		Sections: []model.SignOffSection{
			{
				Title: "Acknowledgement",
				Type:  model.ItemText,
				Body:  "All systems were demonstrated.\nOperating instructions were provided.",
			},
			{
				Title: "Homeowner Initials",
				Type:  model.ItemInitials,
				Body:  "Keys received.\nWarranty booklet received.",
			},
		},
	}
}

func generate(t *testing.T, tmpl model.SignOffTemplate, opts Options) *canvas.Recorder {
	t.Helper()
	r := canvas.NewRecorder()
	if opts.Now.IsZero() {
		opts.Now = fixedNow
	}
	if err := Generate(context.Background(), r, testInfo(), tmpl, opts); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return r
}

func TestGenerateValidation(t *testing.T) {
	if err := Generate(context.Background(), nil, testInfo(), testTemplate(), Options{}); err == nil {
		t.Error("expected error for nil canvas")
	}

	r := canvas.NewRecorder()
	err := Generate(context.Background(), r, testInfo(), model.SignOffTemplate{Name: "bare"}, Options{})
	if err == nil {
		t.Fatal("expected error for empty template")
	}
	if !stderrors.Is(err, perrors.New(perrors.ErrTemplateEmpty, perrors.CategoryTemplate, "")) {
		t.Errorf("error = %v, want code %s", err, perrors.ErrTemplateEmpty)
	}
}

func TestGenerateContent(t *testing.T) {
	r := generate(t, testTemplate(), Options{})

	for _, want := range []string{
		"Walkthrough Sign Off",
		"Maple Street Lot 12",
		"Acknowledgement",
		"Homeowner Initials",
		closingTitle,
		notYetLabel,
	} {
		if !r.HasText(want) {
			t.Errorf("text %q missing", want)
		}
	}

	joined := strings.Join(r.Texts(), " ")
	if !strings.Contains(joined, "April 3, 2026") {
		t.Error("certification line does not embed the export date")
	}

	labels := 0
	for _, s := range r.Texts() {
		if s == "Homebuyer Signature" {
			labels++
		}
	}
	if labels != 2 {
		t.Errorf("painted %d signature labels, want 2", labels)
	}
}

func TestClosingCardBoxes(t *testing.T) {
	// No signature-type section, so every stroked box on the page belongs
	// to the closing card: two signature+date pairs plus the open-items
	// box.
	tmpl := model.SignOffTemplate{
		Name: "Walkthrough Sign Off",
		Sections: []model.SignOffSection{
			{Title: "Acknowledgement", Type: model.ItemText, Body: "All systems were demonstrated."},
		},
	}
	r := generate(t, tmpl, Options{})

	stroked := 0
	for _, op := range r.OpsOnPage(0, "roundedrect") {
		if op.Style == canvas.Stroke {
			stroked++
		}
	}
	if stroked != 5 {
		t.Errorf("stroked boxes = %d, want 5", stroked)
	}
}

func TestSignaturePrefill(t *testing.T) {
	r := generate(t, testTemplate(), Options{Signature: pngDataURI(t, 60, 20)})

	ops := r.OpsOnPage(0, "image")
	if len(ops) != 1 {
		t.Fatalf("painted %d images, want 1 signature prefill", len(ops))
	}
	sig := ops[0]
	maxW := layout.CardWidth - 2*layout.PadX - 50 - 6 - 4
	if sig.W > maxW || sig.H > layout.SigBoxH {
		t.Errorf("signature %gx%g does not fit its box", sig.W, sig.H)
	}
}

func TestSignaturePrefillsClosingCardOnly(t *testing.T) {
	// A template with its own signature-typed section still gets blank
	// rows there; the supplied image lands only in the closing card.
	tmpl := testTemplate()
	tmpl.Sections = append(tmpl.Sections, model.SignOffSection{
		Title: "Acceptance",
		Type:  model.ItemSignature,
		Body:  "The homebuyer accepts the residence.",
	})
	r := generate(t, tmpl, Options{Signature: pngDataURI(t, 60, 20)})

	var imgs []canvas.Op
	for page := 0; page < r.Pages; page++ {
		imgs = append(imgs, r.OpsOnPage(page, "image")...)
	}
	if len(imgs) != 1 {
		t.Fatalf("painted %d signature images, want 1", len(imgs))
	}

	// The single embed belongs to the closing card: it paints after the
	// closing title, not after the template section's.
	titleAt := -1
	for i, op := range r.Ops {
		if op.Kind == "text" && op.Text == closingTitle {
			titleAt = i
		}
	}
	imgAt := -1
	for i, op := range r.Ops {
		if op.Kind == "image" {
			imgAt = i
		}
	}
	if titleAt < 0 || imgAt < titleAt {
		t.Errorf("signature painted at op %d, before closing card title at %d", imgAt, titleAt)
	}
}

func TestBadSignatureOmitted(t *testing.T) {
	r := generate(t, testTemplate(), Options{Signature: "data:image/png;base64,@@@@"})

	if got := len(r.OpsOnPage(0, "image")); got != 0 {
		t.Errorf("painted %d images for a bad signature, want 0", got)
	}
	if !r.HasText(closingTitle) {
		t.Error("document lost after signature failure")
	}
}

func TestLogoPaintedInBand(t *testing.T) {
	r := generate(t, testTemplate(), Options{Logo: pngDataURI(t, 80, 30)})

	ops := r.OpsOnPage(0, "image")
	if len(ops) != 1 {
		t.Fatalf("painted %d images, want 1 logo", len(ops))
	}
	if bottom := ops[0].Y + ops[0].H; bottom > layout.BandHeight {
		t.Errorf("logo bottom %g below header band %g", bottom, layout.BandHeight)
	}
}

func TestLongTemplateBreaksPages(t *testing.T) {
	tmpl := model.SignOffTemplate{Name: "Walkthrough Sign Off"}
	for i := 0; i < 8; i++ {
		tmpl.Sections = append(tmpl.Sections, model.SignOffSection{
			Title: "Acknowledgement",
			Type:  model.ItemText,
			Body: "All mechanical systems were demonstrated in working order.\n" +
				"Operating instructions and warranty documents were provided.\n" +
				"Exterior grading and drainage were reviewed with the homeowner.",
		})
	}
	r := generate(t, tmpl, Options{})

	if r.Pages < 2 {
		t.Fatal("expected the run to spill onto a second page")
	}
	for page := 0; page < r.Pages; page++ {
		for _, op := range r.OpsOnPage(page, "") {
			if op.Kind == "fillrect" && op.W == layout.PageWidth {
				continue
			}
			bottom := op.Y
			switch op.Kind {
			case "fillrect", "strokerect", "roundedrect", "circle", "image":
				bottom = op.Y + op.H
			}
			if bottom > layout.ContentBottom {
				t.Errorf("page %d: %s at y=%g extends to %g, below %g",
					page, op.Kind, op.Y, bottom, layout.ContentBottom)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	opts := Options{Signature: pngDataURI(t, 60, 20), Now: fixedNow}
	r1 := generate(t, testTemplate(), opts)
	r2 := generate(t, testTemplate(), opts)

	if !reflect.DeepEqual(r1.Ops, r2.Ops) {
		t.Error("repeat generation produced different drawing ops")
	}
}
