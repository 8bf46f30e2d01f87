// Package template loads sign-off templates from YAML files and carries
// the built-in walkthrough template used when no file is supplied.
package template

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	perrors "github.com/punchlabs/punchpdf/pkg/errors"
	"github.com/punchlabs/punchpdf/pkg/model"
)

// Default returns the built-in walkthrough sign-off template.
func Default() model.SignOffTemplate {
	return model.SignOffTemplate{
		ID:   "walkthrough",
		Name: "Walkthrough Sign Off",
		Sections: []model.SignOffSection{
			{
				Title: "Acknowledgement",
				Type:  model.ItemText,
				Body: "All mechanical systems were demonstrated in working order.\n" +
					"Operating instructions for appliances and equipment were provided.\n" +
					"[initials] I acknowledge receipt of all keys, openers, and access codes.",
			},
			{
				Title: "Homeowner Initials",
				Type:  model.ItemInitials,
				Body: "The exterior of the home was inspected and accepted.\n" +
					"The interior finishes were inspected and accepted.\n" +
					"All utility accounts are ready for transfer.",
			},
			{
				Title: model.WarrantyProcedures,
				Type:  model.ItemText,
				Body: "Submit non-emergency warranty requests in writing through the " +
					"builder's service portal.\n" +
					"Emergency items affecting habitability should be phoned in to the " +
					"service line immediately.\n" +
					"A courtesy review is scheduled near the end of the first year of " +
					"ownership; cosmetic items are addressed only at closing.",
			},
			{
				Title: "Acceptance",
				Type:  model.ItemSignature,
				Body: "The homebuyer accepts the residence subject to completion of the " +
					"items listed on the attached punch list.",
			},
		},
	}
}

// Load reads and parses a sign-off template from a YAML file.
func Load(path string) (model.SignOffTemplate, error) {
	var tmpl model.SignOffTemplate

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return tmpl, perrors.TemplateWrap(err, perrors.ErrTemplateNotFound,
			fmt.Sprintf("template file not found: %s", path))
	}
	if err != nil {
		return tmpl, perrors.IOWrap(err, perrors.ErrFileRead,
			fmt.Sprintf("reading template file: %s", path))
	}

	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return tmpl, perrors.TemplateWrap(err, perrors.ErrTemplateParse,
			fmt.Sprintf("parsing template file: %s", path))
	}
	if len(tmpl.Sections) == 0 {
		return tmpl, perrors.Templatef(perrors.ErrTemplateEmpty,
			"template %s defines no sections", path)
	}
	return tmpl, nil
}

// LoadOrDefault loads the template at path, or returns the built-in
// template when path is empty.
func LoadOrDefault(path string) (model.SignOffTemplate, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Init writes the built-in template to path as a starting point for
// customization. It refuses to overwrite an existing file.
func Init(path string) error {
	if _, err := os.Stat(path); err == nil {
		return perrors.Inputf(perrors.ErrInputInvalid, "refusing to overwrite %s", path)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return perrors.TemplateWrap(err, perrors.ErrTemplateParse, "encoding built-in template")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return perrors.IOWrap(err, perrors.ErrFileWrite,
			fmt.Sprintf("writing template file: %s", path))
	}
	return nil
}
