package textflow

import (
	"strings"
	"testing"
)

// runeWidth measures 1 unit per rune, which makes budgets readable as
// character counts.
func runeWidth(s string) float64 {
	return float64(len([]rune(s)))
}

func TestWrapEmpty(t *testing.T) {
	if got := Wrap("", 20, runeWidth); got != nil {
		t.Errorf("Wrap(\"\") = %v, want nil", got)
	}
	if got := Wrap("   \n  ", 20, runeWidth); got != nil {
		t.Errorf("Wrap(whitespace) = %v, want nil", got)
	}
}

func TestWrapSingleLine(t *testing.T) {
	got := Wrap("leaky faucet", 20, runeWidth)
	if len(got) != 1 || got[0] != "leaky faucet" {
		t.Errorf("Wrap = %v, want one unchanged line", got)
	}
}

func TestWrapBreaksAtBudget(t *testing.T) {
	got := Wrap("one two three four", 9, runeWidth)
	want := []string{"one two", "three", "four"}
	if len(got) != len(want) {
		t.Fatalf("Wrap = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
		if runeWidth(got[i]) > 9 {
			t.Errorf("line %d %q exceeds budget", i, got[i])
		}
	}
}

func TestWrapExplicitNewlines(t *testing.T) {
	got := Wrap("first\nsecond", 50, runeWidth)
	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("Wrap = %v, want explicit break preserved", got)
	}
}

func TestWrapOversizedWord(t *testing.T) {
	got := Wrap("abcdefghij", 4, runeWidth)
	if len(got) < 3 {
		t.Fatalf("Wrap = %v, want the word hard-broken", got)
	}
	joined := strings.Join(got, "")
	if joined != "abcdefghij" {
		t.Errorf("hard break lost characters: %q", joined)
	}
	for _, line := range got {
		if runeWidth(line) > 4 {
			t.Errorf("line %q exceeds budget", line)
		}
	}
}

// Wrapping the joined output again at the same budget must reproduce the
// same lines.
func TestWrapStableUnderReapplication(t *testing.T) {
	texts := []string{
		"the quick brown fox jumps over the lazy dog and keeps on running",
		"short",
		"a b c d e f g h i j k l m n o p",
		"one\ntwo three four five six seven eight",
	}
	for _, text := range texts {
		first := Wrap(text, 14, runeWidth)
		second := Wrap(strings.Join(first, "\n"), 14, runeWidth)
		if len(first) != len(second) {
			t.Fatalf("re-wrap changed line count for %q: %v vs %v", text, first, second)
		}
		for i := range first {
			if first[i] != second[i] {
				t.Errorf("re-wrap changed line %d for %q: %q vs %q", i, text, first[i], second[i])
			}
		}
	}
}

func TestMeasureHeights(t *testing.T) {
	b := Measure("one two three four", 9, 10, runeWidth)
	if len(b.Lines) != 3 {
		t.Fatalf("Measure lines = %d, want 3", len(b.Lines))
	}
	if b.LineHeight != LineHeight(10) {
		t.Errorf("LineHeight = %v, want %v", b.LineHeight, LineHeight(10))
	}
	if b.Height != 3*b.LineHeight {
		t.Errorf("Height = %v, want %v", b.Height, 3*b.LineHeight)
	}

	empty := Measure("", 9, 10, runeWidth)
	if empty.Height != 0 || len(empty.Lines) != 0 {
		t.Errorf("empty Measure = %+v, want zero block", empty)
	}
}

func TestLineHeightScales(t *testing.T) {
	if LineHeight(20) <= LineHeight(10) {
		t.Error("line height should grow with font size")
	}
}
