package template

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	perrors "github.com/punchlabs/punchpdf/pkg/errors"
	"github.com/punchlabs/punchpdf/pkg/model"
)

func wantCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %s, got nil", code)
	}
	if !stderrors.Is(err, perrors.New(code, perrors.CategoryTemplate, "")) {
		t.Errorf("error = %v, want code %s", err, code)
	}
}

func TestDefaultTemplate(t *testing.T) {
	tmpl := Default()

	if len(tmpl.Sections) != 4 {
		t.Fatalf("sections = %d, want 4", len(tmpl.Sections))
	}
	if tmpl.Name == "" || tmpl.ID == "" {
		t.Error("template name or id empty")
	}

	titles := make(map[string]model.SignOffSection)
	for _, sec := range tmpl.Sections {
		titles[sec.Title] = sec
	}
	if _, ok := titles[model.WarrantyProcedures]; !ok {
		t.Errorf("missing %q section", model.WarrantyProcedures)
	}

	last := tmpl.Sections[len(tmpl.Sections)-1]
	if last.Type != model.ItemSignature {
		t.Errorf("final section type = %q, want signature", last.Type)
	}

	// The acknowledgement section carries one line-level initials marker.
	ack := titles["Acknowledgement"]
	initials := 0
	for _, item := range ack.Items() {
		if item.Type == model.ItemInitials {
			initials++
		}
	}
	if initials != 1 {
		t.Errorf("acknowledgement initials items = %d, want 1", initials)
	}
}

func TestInitThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walkthrough.yaml")

	if err := Init(path); err != nil {
		t.Fatalf("Init: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, Default()) {
		t.Error("loaded template differs from the built-in one")
	}
}

func TestInitRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walkthrough.yaml")
	if err := Init(path); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := Init(path); err == nil {
		t.Error("second Init overwrote an existing file")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	wantCode(t, err, perrors.ErrTemplateNotFound)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("sections: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	wantCode(t, err, perrors.ErrTemplateParse)
}

func TestLoadEmptyTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("id: x\nname: Empty\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	wantCode(t, err, perrors.ErrTemplateEmpty)
}

func TestLoadOrDefault(t *testing.T) {
	got, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if !reflect.DeepEqual(got, Default()) {
		t.Error("empty path did not produce the built-in template")
	}

	path := filepath.Join(t.TempDir(), "walkthrough.yaml")
	if err := Init(path); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOrDefault(path); err != nil {
		t.Errorf("LoadOrDefault(%s): %v", path, err)
	}
}
