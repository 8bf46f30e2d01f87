package model

import (
	"strings"
	"testing"
)

func loc(name string, issueCount int) Location {
	l := Location{ID: name + "-id", Name: name}
	for i := 0; i < issueCount; i++ {
		l.Issues = append(l.Issues, Issue{ID: name + "-issue", Description: "d"})
	}
	return l
}

func TestRenderOrderRewalkLast(t *testing.T) {
	in := []Location{loc("Bath", 1), loc(RewalkNotes, 1), loc("Kitchen", 2)}
	got := RenderOrder(in)

	names := make([]string, len(got))
	for i, l := range got {
		names[i] = l.Name
	}
	want := []string{"Bath", "Kitchen", RewalkNotes}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("RenderOrder = %v, want %v", names, want)
	}
}

func TestRenderOrderDropsEmpty(t *testing.T) {
	in := []Location{loc("Bath", 0), loc("Kitchen", 1), loc(RewalkNotes, 0)}
	got := RenderOrder(in)
	if len(got) != 1 || got[0].Name != "Kitchen" {
		t.Errorf("RenderOrder = %v, want only Kitchen", got)
	}
}

func TestRenderOrderPreservesRelativeOrder(t *testing.T) {
	in := []Location{loc("C", 1), loc("A", 1), loc("B", 1)}
	got := RenderOrder(in)
	if got[0].Name != "C" || got[1].Name != "A" || got[2].Name != "B" {
		t.Errorf("RenderOrder reordered non-rewalk locations: %v", got)
	}
}

func TestProjectInfoConvention(t *testing.T) {
	info := ProjectInfo{Fields: []Field{
		{ID: "f0", Value: "Maple Street 12"},
		{ID: "f1", Value: "Lot 4, Phase 2"},
		{ID: "f2", Value: "Jane Doe", Icon: "user"},
		{ID: "f3", Value: "   ", Icon: "phone"},
		{ID: "f4", Value: "jane@example.com", Icon: "mail"},
	}}

	if info.Headline() != "Maple Street 12" {
		t.Errorf("Headline = %q", info.Headline())
	}
	if info.Subheadline() != "Lot 4, Phase 2" {
		t.Errorf("Subheadline = %q", info.Subheadline())
	}
	details := info.Details()
	if len(details) != 2 {
		t.Fatalf("Details = %d fields, want 2 (blank dropped)", len(details))
	}
	if details[0].ID != "f2" || details[1].ID != "f4" {
		t.Errorf("Details = %v", details)
	}
}

func TestProjectInfoEmpty(t *testing.T) {
	var info ProjectInfo
	if info.Headline() != "" || info.Subheadline() != "" || info.Details() != nil {
		t.Error("empty project info should report empty everything")
	}
}

func TestMarkMap(t *testing.T) {
	m := MarkMap{"i1": {MarkCheck, MarkX}, "i2": {MarkX}}

	if !m.Has("i1", MarkCheck) || !m.Has("i1", MarkX) {
		t.Error("marks should be additive on one issue")
	}
	if m.Has("i2", MarkCheck) {
		t.Error("i2 should not have a check mark")
	}
	if m.Has("absent", MarkCheck) {
		t.Error("unknown issue should have no marks")
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		headline string
		kind     string
		want     string
	}{
		{"Maple Street 12", "Punch List", "Maple Street 12 - Punch List.pdf"},
		{"", "Punch List", "Project - Punch List.pdf"},
		{"Unit 4/B: final", "Sign Off", "Unit 4-B- final - Sign Off.pdf"},
	}
	for _, tt := range tests {
		info := ProjectInfo{Fields: []Field{{Value: tt.headline}}}
		if got := Filename(info, tt.kind); got != tt.want {
			t.Errorf("Filename(%q, %q) = %q, want %q", tt.headline, tt.kind, got, tt.want)
		}
	}
}

func TestNewIssue(t *testing.T) {
	a := NewIssue("leaky faucet")
	b := NewIssue("leaky faucet")
	if a.ID == "" || a.ID == b.ID {
		t.Error("NewIssue should mint unique ids")
	}
	if a.Timestamp.IsZero() {
		t.Error("NewIssue should stamp the current time")
	}
}

func TestSectionItems(t *testing.T) {
	sec := SignOffSection{
		Title: "Acknowledgements",
		Type:  ItemText,
		Body:  "First paragraph.\n\n[initials] I agree to the above.\nSecond paragraph.",
	}
	items := sec.Items()
	if len(items) != 3 {
		t.Fatalf("Items = %d, want 3 (blank line dropped)", len(items))
	}
	if items[0].Type != ItemText || items[0].Text != "First paragraph." {
		t.Errorf("item 0 = %+v", items[0])
	}
	if items[1].Type != ItemInitials || items[1].Text != "I agree to the above." {
		t.Errorf("item 1 = %+v, want initials override", items[1])
	}
	if items[2].Type != ItemText {
		t.Errorf("item 2 = %+v", items[2])
	}
}

func TestSectionItemsInitialsDefault(t *testing.T) {
	sec := SignOffSection{
		Type: ItemInitials,
		Body: "Roof and gutters\n[text] A plain explanatory line\nWindows and doors",
	}
	items := sec.Items()
	if len(items) != 3 {
		t.Fatalf("Items = %d, want 3", len(items))
	}
	if items[0].Type != ItemInitials || items[2].Type != ItemInitials {
		t.Error("section default should apply to unmarked lines")
	}
	if items[1].Type != ItemText {
		t.Error("[text] marker should override an initials section")
	}
}

func TestSectionItemsSignatureSectionYieldsText(t *testing.T) {
	sec := SignOffSection{Type: ItemSignature, Body: "Certification line"}
	items := sec.Items()
	if len(items) != 1 || items[0].Type != ItemText {
		t.Errorf("Items = %+v, want one text item", items)
	}
}
