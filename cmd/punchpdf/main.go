// Punchpdf exports walkthrough inspection documents: a punch-list report
// of the cataloged issues with photos, and a sign-off acceptance form
// built from a section template.
//
// Components:
//   - Project file: YAML describing the project, locations, issues, photos
//   - Template file: YAML sign-off sections (built-in default available)
//   - Outputs: "{headline} - Punch List.pdf" and "{headline} - Sign Off.pdf"
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/punchlabs/punchpdf/pkg/canvas"
	perrors "github.com/punchlabs/punchpdf/pkg/errors"
	"github.com/punchlabs/punchpdf/pkg/model"
	"github.com/punchlabs/punchpdf/pkg/report"
	"github.com/punchlabs/punchpdf/pkg/signoff"
	"github.com/punchlabs/punchpdf/pkg/template"
)

const version = "1.0.0"

func main() {
	// Parse flags
	projectPath := flag.String("project", "", "Project YAML file")
	templatePath := flag.String("template", "", "Sign-off template YAML file (default: built-in)")
	outDir := flag.String("out", ".", "Output directory")
	initTemplate := flag.Bool("init", false, "Write the built-in template to the -template path and exit")
	sample := flag.Bool("sample", false, "Export a generated demo project")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("punchpdf %s\n", version)
		os.Exit(0)
	}

	if *initTemplate {
		path := *templatePath
		if path == "" {
			path = "signoff.yaml"
		}
		if err := template.Init(path); err != nil {
			fail(err)
		}
		fmt.Printf("Template written to: %s\n", path)
		fmt.Println("Edit this file and pass it with -template.")
		os.Exit(0)
	}

	// Resolve input project
	var project Project
	switch {
	case *sample:
		project = SampleProject()
	case *projectPath != "":
		var err error
		project, err = LoadProject(*projectPath)
		if err != nil {
			fail(err)
		}
	default:
		fmt.Println("Usage: punchpdf -project <file.yaml> [-template <file.yaml>] [-out <dir>]")
		fmt.Println("       punchpdf -sample")
		flag.PrintDefaults()
		os.Exit(2)
	}

	tmpl, err := template.LoadOrDefault(*templatePath)
	if err != nil {
		fail(err)
	}

	ctx := context.Background()
	interactive := term.IsTerminal(int(os.Stdout.Fd()))

	// Punch-list report
	reportName := model.Filename(project.Info, "Punch List")
	if interactive {
		fmt.Printf("Generating %s ...\n", reportName)
	}
	res, err := generateReport(ctx, project)
	if err != nil {
		fail(err)
	}
	reportPath := filepath.Join(*outDir, reportName)
	if err := writePDF(res.Doc, reportPath); err != nil {
		fail(err)
	}
	if interactive {
		fmt.Printf("  %d page(s), %d issue(s), %d photo(s)\n",
			res.Pages, len(res.Checkboxes), len(res.Images))
	}

	// Sign-off form
	signoffName := model.Filename(project.Info, "Sign Off")
	if interactive {
		fmt.Printf("Generating %s ...\n", signoffName)
	}
	doc, err := generateSignoff(ctx, project, tmpl)
	if err != nil {
		fail(err)
	}
	signoffPath := filepath.Join(*outDir, signoffName)
	if err := writePDF(doc, signoffPath); err != nil {
		fail(err)
	}

	fmt.Printf("Wrote %s\n", reportPath)
	fmt.Printf("Wrote %s\n", signoffPath)
}

func generateReport(ctx context.Context, project Project) (*report.Result, error) {
	pdf, err := canvas.NewPDF("Punch List")
	if err != nil {
		return nil, err
	}
	return report.Generate(ctx, pdf, project.Info, project.Locations, report.Options{
		Logo: project.Logo,
	})
}

func generateSignoff(ctx context.Context, project Project, tmpl model.SignOffTemplate) (canvas.Canvas, error) {
	pdf, err := canvas.NewPDF("Sign Off")
	if err != nil {
		return nil, err
	}
	err = signoff.Generate(ctx, pdf, project.Info, tmpl, signoff.Options{
		Logo:      project.Logo,
		Signature: project.Signature,
	})
	if err != nil {
		return nil, err
	}
	return pdf, nil
}

func writePDF(doc canvas.Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return perrors.IOWrap(err, perrors.ErrFileWrite, fmt.Sprintf("creating %s", path))
	}
	defer f.Close()

	if err := doc.Output(f); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return perrors.IOWrap(err, perrors.ErrFileWrite, fmt.Sprintf("writing %s", path))
	}
	return nil
}

// fail prints a structured error with its suggestions when available,
// then exits.
func fail(err error) {
	var pe *perrors.Error
	if errors.As(err, &pe) {
		fmt.Fprintln(os.Stderr, pe.UserMessage())
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(1)
}
