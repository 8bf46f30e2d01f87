// Package model holds the value types the layout engine consumes: project
// info, locations with issues and photos, and sign-off templates. The
// engine treats all of them as immutable inputs; ownership stays with the
// caller.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/punchlabs/punchpdf/pkg/icons"
)

// RewalkNotes is the name of the pseudo-location that collects follow-up
// notes. It is ordinary data but always renders last, with its own pill
// styling and the current date appended to its title.
const RewalkNotes = "Rewalk Notes"

// Field is one row of the project-info card.
type Field struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	Value string `yaml:"value"`
	Icon  string `yaml:"icon"`
}

// IconKey resolves the stored icon name against the glyph catalog.
func (f Field) IconKey() icons.Key {
	return icons.ParseKey(f.Icon)
}

// ProjectInfo is the ordered field list describing the project. By
// convention field 0 is the headline, field 1 the subheadline, and the
// rest are icon+value detail rows. Empty fields are omitted from output.
type ProjectInfo struct {
	Fields []Field `yaml:"fields"`
}

// Headline returns the value of the first field, or empty.
func (p ProjectInfo) Headline() string {
	if len(p.Fields) > 0 {
		return strings.TrimSpace(p.Fields[0].Value)
	}
	return ""
}

// Subheadline returns the value of the second field, or empty.
func (p ProjectInfo) Subheadline() string {
	if len(p.Fields) > 1 {
		return strings.TrimSpace(p.Fields[1].Value)
	}
	return ""
}

// Details returns the non-empty fields from index 2 on.
func (p ProjectInfo) Details() []Field {
	var out []Field
	for i := 2; i < len(p.Fields); i++ {
		if strings.TrimSpace(p.Fields[i].Value) != "" {
			out = append(out, p.Fields[i])
		}
	}
	return out
}

// Photo is an attached image. URL is a base64 data URI; its MIME substring
// determines the embedded raster format. An undecodable photo is skipped
// at render time without failing the document.
type Photo struct {
	URL         string `yaml:"url"`
	Description string `yaml:"description,omitempty"`
}

// Issue is one cataloged defect.
type Issue struct {
	ID          string    `yaml:"id"`
	Description string    `yaml:"description"`
	Photos      []Photo   `yaml:"photos,omitempty"`
	Timestamp   time.Time `yaml:"timestamp,omitempty"`
}

// NewIssue builds an issue with a fresh id and the current time. A
// convenience for callers assembling input; the engine never mints ids.
func NewIssue(description string) Issue {
	return Issue{
		ID:          uuid.NewString(),
		Description: description,
		Timestamp:   time.Now(),
	}
}

// Location groups issues by place within the project.
type Location struct {
	ID     string  `yaml:"id"`
	Name   string  `yaml:"name"`
	Issues []Issue `yaml:"issues,omitempty"`
}

// RenderOrder returns the locations that will produce output, in render
// order: locations with no issues are dropped, relative order is
// preserved, and the Rewalk Notes pseudo-location always sorts last.
func RenderOrder(locations []Location) []Location {
	var out []Location
	var rewalk []Location
	for _, loc := range locations {
		if len(loc.Issues) == 0 {
			continue
		}
		if loc.Name == RewalkNotes {
			rewalk = append(rewalk, loc)
			continue
		}
		out = append(out, loc)
	}
	return append(out, rewalk...)
}

// Mark is a review overlay applied to an issue's checkbox and photos.
type Mark string

const (
	MarkCheck Mark = "check"
	MarkX     Mark = "x"
)

// MarkMap records which issues carry which review marks. Marks are
// additive: an issue may carry both a check and an x.
type MarkMap map[string][]Mark

// Has reports whether the issue carries the given mark.
func (m MarkMap) Has(issueID string, mark Mark) bool {
	for _, got := range m[issueID] {
		if got == mark {
			return true
		}
	}
	return false
}

// Filename derives an export file name from the project headline:
// "{headline} - {kind}.pdf", falling back to "Project" when the headline
// is empty. Characters unsafe in file names are replaced.
func Filename(info ProjectInfo, kind string) string {
	base := info.Headline()
	if base == "" {
		base = "Project"
	}
	clean := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		}
		return r
	}, base)
	return clean + " - " + kind + ".pdf"
}
