package canvas

import "testing"

func TestRecorderPages(t *testing.T) {
	r := NewRecorder()
	if r.PageIndex() != -1 {
		t.Errorf("PageIndex before AddPage = %d, want -1", r.PageIndex())
	}
	r.AddPage()
	r.AddPage()
	if r.PageIndex() != 1 {
		t.Errorf("PageIndex after two AddPage = %d, want 1", r.PageIndex())
	}
}

func TestRecorderOpsTrackPage(t *testing.T) {
	r := NewRecorder()
	r.AddPage()
	r.FillRect(0, 0, 10, 10)
	r.AddPage()
	r.SetFont("B", 12)
	r.Text(5, 20, "hello")

	if got := r.OpsOnPage(0, "fillrect"); len(got) != 1 {
		t.Fatalf("page 0 fillrect ops = %d, want 1", len(got))
	}
	texts := r.OpsOnPage(1, "text")
	if len(texts) != 1 {
		t.Fatalf("page 1 text ops = %d, want 1", len(texts))
	}
	if texts[0].Text != "hello" || texts[0].Style != "B" || texts[0].Size != 12 {
		t.Errorf("text op = %+v, want hello/B/12", texts[0])
	}
}

func TestRecorderTextWidthDeterministic(t *testing.T) {
	r := NewRecorder()
	r.SetFont("", 10)
	a := r.TextWidth("measurement")
	b := r.TextWidth("measurement")
	if a != b {
		t.Errorf("TextWidth not deterministic: %v vs %v", a, b)
	}
	r.SetFont("", 20)
	if r.TextWidth("measurement") <= a {
		t.Error("TextWidth should grow with font size")
	}
}

func TestRecorderMaxBottom(t *testing.T) {
	r := NewRecorder()
	r.AddPage()
	r.FillRect(0, 100, 10, 50)
	r.Text(0, 120, "x")
	if got := r.MaxBottom(0); got != 150 {
		t.Errorf("MaxBottom = %v, want 150", got)
	}
}

func TestRecorderStateDepth(t *testing.T) {
	r := NewRecorder()
	r.PushState()
	r.PopState()
	r.PopState()
	if r.Depth != -1 || r.MinDepth != -1 {
		t.Errorf("Depth = %d, MinDepth = %d, want -1/-1 after underflow", r.Depth, r.MinDepth)
	}
}

func TestRecorderFailImages(t *testing.T) {
	r := NewRecorder()
	r.AddPage()
	r.FailImages = true
	if err := r.Image("p1", []byte{1}, "PNG", 0, 0, 10, 10); err == nil {
		t.Fatal("expected error with FailImages set")
	}
	if len(r.OpsOnPage(0, "image")) != 0 {
		t.Error("failed image should not be recorded")
	}
}
