package main

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	perrors "github.com/punchlabs/punchpdf/pkg/errors"
	"github.com/punchlabs/punchpdf/pkg/model"
)

// Project bundles everything one export run needs: the project info card
// fields, the location/issue/photo catalog, and the optional artwork.
type Project struct {
	Info      model.ProjectInfo `yaml:"info"`
	Locations []model.Location  `yaml:"locations"`

	// Logo and Signature accept either a data URI or a path to an image
	// file, resolved relative to the project file.
	Logo      string `yaml:"logo,omitempty"`
	Signature string `yaml:"signature,omitempty"`
}

// LoadProject reads a project YAML file and resolves any file-path image
// references into data URIs.
func LoadProject(path string) (Project, error) {
	var p Project

	data, err := os.ReadFile(path)
	if err != nil {
		return p, perrors.IOWrap(err, perrors.ErrFileRead,
			fmt.Sprintf("reading project file: %s", path))
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, perrors.Inputf(perrors.ErrInputInvalid, "parsing project file %s: %v", path, err)
	}

	dir := filepath.Dir(path)
	p.Logo = resolveImage(dir, p.Logo)
	p.Signature = resolveImage(dir, p.Signature)
	for li := range p.Locations {
		for ii := range p.Locations[li].Issues {
			photos := p.Locations[li].Issues[ii].Photos
			for pi := range photos {
				photos[pi].URL = resolveImage(dir, photos[pi].URL)
			}
		}
	}
	return p, nil
}

// resolveImage turns a file path into a data URI. Data URIs and empty
// strings pass through; an unreadable file passes through too and is
// handled by the per-photo failure isolation downstream.
func resolveImage(dir, ref string) string {
	if ref == "" || strings.HasPrefix(ref, "data:") {
		return ref
	}

	path := ref
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ref
	}

	mime := "image/png"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		mime = "image/jpeg"
	case ".webp":
		mime = "image/webp"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// SampleProject builds a small demo project with generated photos, used
// to try the tool without any input files.
func SampleProject() Project {
	kitchen := model.NewIssue("Scratch on the island countertop near the sink")
	kitchen.Photos = []model.Photo{
		{URL: samplePhoto(200, 150), Description: "SW corner"},
		{URL: samplePhoto(160, 160)},
	}
	garage := model.NewIssue("Overhead door seal does not compress on the left side")
	rewalk := model.NewIssue("Verify touch-up paint in the stairwell has cured evenly")

	return Project{
		Info: model.ProjectInfo{Fields: []model.Field{
			{ID: "headline", Label: "Project", Value: "Maple Street Lot 12", Icon: "home"},
			{ID: "subheadline", Label: "Phase", Value: "Final walkthrough"},
			{ID: "buyer", Label: "Homebuyer", Value: "Jordan Avery", Icon: "user"},
			{ID: "date", Label: "Walk date", Value: "April 3, 2026", Icon: "calendar"},
			{ID: "address", Label: "Address", Value: "12 Maple Street", Icon: "pin"},
		}},
		Locations: []model.Location{
			{ID: "loc-kitchen", Name: "Kitchen", Issues: []model.Issue{kitchen}},
			{ID: "loc-garage", Name: "Garage", Issues: []model.Issue{garage}},
			{ID: "loc-porch", Name: "Porch"},
			{ID: "loc-rewalk", Name: model.RewalkNotes, Issues: []model.Issue{rewalk}},
		},
	}
}

// samplePhoto renders a small gradient placeholder raster.
func samplePhoto(w, h int) string {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{
				R: uint8(40 + 120*x/w),
				G: uint8(60 + 100*y/h),
				B: 120,
				A: 255,
			})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return ""
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}
