package geom

import "testing"

func TestMix(t *testing.T) {
	tests := []struct {
		name   string
		a, b   RGB
		weight float64
		want   RGB
	}{
		{"zero weight returns first", RGB{10, 20, 30}, RGB{200, 200, 200}, 0, RGB{10, 20, 30}},
		{"full weight returns second", RGB{10, 20, 30}, RGB{200, 100, 50}, 1, RGB{200, 100, 50}},
		{"halfway rounds per channel", RGB{0, 0, 0}, RGB{255, 101, 1}, 0.5, RGB{128, 51, 1}},
		{"weight below range clamps", RGB{10, 10, 10}, RGB{20, 20, 20}, -2, RGB{10, 10, 10}},
		{"weight above range clamps", RGB{10, 10, 10}, RGB{20, 20, 20}, 3, RGB{20, 20, 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mix(tt.a, tt.b, tt.weight)
			if got != tt.want {
				t.Errorf("Mix(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.weight, got, tt.want)
			}
		})
	}
}

func TestContainerOnContainer(t *testing.T) {
	accent := RGB{30, 110, 190}

	container := Container(accent)
	if container.R <= accent.R || container.G <= accent.G || container.B <= accent.B {
		t.Errorf("Container(%v) = %v, expected a lighter tint", accent, container)
	}

	ink := OnContainer(accent)
	if ink.R >= accent.R || ink.G >= accent.G || ink.B >= accent.B {
		t.Errorf("OnContainer(%v) = %v, expected a darker shade", accent, ink)
	}
}

// fillRecorder captures FillRect calls for gradient coverage checks.
type fillRecorder struct {
	colors []RGB
	rects  [][4]float64
}

func (r *fillRecorder) SetFillColor(red, g, b int) {
	r.colors = append(r.colors, RGB{red, g, b})
}

func (r *fillRecorder) FillRect(x, y, w, h float64) {
	r.rects = append(r.rects, [4]float64{x, y, w, h})
}

func TestVerticalGradient(t *testing.T) {
	rec := &fillRecorder{}
	top := RGB{0, 0, 0}
	bottom := RGB{200, 100, 40}

	VerticalGradient(rec, 0, 10, 210, 35, top, bottom)

	if len(rec.rects) != GradientSteps {
		t.Fatalf("expected %d strips, got %d", GradientSteps, len(rec.rects))
	}
	if rec.colors[0] != top {
		t.Errorf("first strip color = %v, want top color %v", rec.colors[0], top)
	}

	// Strips must be contiguous: each strip starts at or before the end of
	// the previous one, and coverage reaches the bottom edge.
	for i := 1; i < len(rec.rects); i++ {
		prevEnd := rec.rects[i-1][1] + rec.rects[i-1][3]
		if rec.rects[i][1] > prevEnd {
			t.Errorf("strip %d starts at %v, past previous end %v", i, rec.rects[i][1], prevEnd)
		}
	}
	last := rec.rects[len(rec.rects)-1]
	if last[1]+last[3] < 10+35 {
		t.Errorf("gradient coverage ends at %v, want at least %v", last[1]+last[3], 10+35.0)
	}
}

func TestStyleFor(t *testing.T) {
	if StyleFor(BoxInitial) == StyleFor(BoxSignature) {
		t.Error("initial and signature box styles should differ")
	}
	if StyleFor("bogus") != StyleFor(BoxInitial) {
		t.Error("unknown kind should fall back to the initials style")
	}
}
