package model

import "strings"

// ItemType selects how one sign-off content line renders.
type ItemType string

const (
	// ItemText renders a wrapped paragraph.
	ItemText ItemType = "text"

	// ItemInitials renders the line next to an empty initials box.
	ItemInitials ItemType = "initials"

	// ItemSignature marks a section that ends with the signature/date rows.
	ItemSignature ItemType = "signature"
)

// WarrantyProcedures is the section title with a special rendering
// contract: its items get numbered badges on background boxes instead of
// plain text.
const WarrantyProcedures = "Warranty Procedures"

// Line-level markers overriding the section's default item type.
const (
	markerText     = "[text]"
	markerInitials = "[initials]"
)

// SignOffSection is one titled block of a sign-off template. Body is
// newline-delimited; each non-blank line is one renderable item. A line
// may start with "[text]" or "[initials]" to override the section type
// for that line alone.
type SignOffSection struct {
	Title string   `yaml:"title"`
	Type  ItemType `yaml:"type"`
	Body  string   `yaml:"body"`
}

// SectionItem is one resolved content line of a section.
type SectionItem struct {
	Type ItemType
	Text string
}

// Items splits the body into non-blank lines and resolves each line's
// effective item type. Signature sections produce text items; the
// signature rows are appended by the layout engine after the items.
func (s SignOffSection) Items() []SectionItem {
	def := s.Type
	if def == "" || def == ItemSignature {
		def = ItemText
	}
	var out []SectionItem
	for _, line := range strings.Split(s.Body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		item := SectionItem{Type: def, Text: line}
		switch {
		case strings.HasPrefix(line, markerText):
			item.Type = ItemText
			item.Text = strings.TrimSpace(strings.TrimPrefix(line, markerText))
		case strings.HasPrefix(line, markerInitials):
			item.Type = ItemInitials
			item.Text = strings.TrimSpace(strings.TrimPrefix(line, markerInitials))
		}
		if item.Text == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}

// SignOffTemplate is an ordered list of sections rendered into the
// acceptance form.
type SignOffTemplate struct {
	ID       string           `yaml:"id"`
	Name     string           `yaml:"name"`
	Sections []SignOffSection `yaml:"sections"`
}
