// Package images turns the data URIs stored on photos, logos and
// signatures into rasters the PDF backend can embed. PNG and JPEG pass
// through untouched; WebP is transcoded to PNG. Dimension probing is
// bounded by the caller's context so a pathological image can never stall
// an export.
package images

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"image"
	"image/png"
	"strings"

	_ "image/jpeg" // decoder registration for probing

	"golang.org/x/image/webp"

	perrors "github.com/punchlabs/punchpdf/pkg/errors"
)

// Raster is an image ready for embedding.
type Raster struct {
	// Name keys the backend's resource cache; derived from the content
	// hash so identical photos embed once.
	Name string

	// Format is "PNG" or "JPEG".
	Format string

	Data   []byte
	Width  int
	Height int
}

// AspectFit scales the raster to fit inside maxW×maxH preserving aspect
// ratio, never scaling up past the box on either axis.
func (r *Raster) AspectFit(maxW, maxH float64) (w, h float64) {
	if r.Width <= 0 || r.Height <= 0 {
		return maxW, maxH
	}
	ratio := float64(r.Width) / float64(r.Height)
	w, h = maxW, maxW/ratio
	if h > maxH {
		h = maxH
		w = maxH * ratio
	}
	return w, h
}

// ParseDataURI splits a base64 data URI into its MIME type and raw bytes.
func ParseDataURI(uri string) (mime string, data []byte, err error) {
	if !strings.HasPrefix(uri, "data:") {
		return "", nil, perrors.Imagef(perrors.ErrImageDataURI, "not a data URI")
	}
	rest := uri[len("data:"):]
	comma := strings.IndexByte(rest, ',')
	if comma < 0 {
		return "", nil, perrors.Imagef(perrors.ErrImageDataURI, "data URI has no payload")
	}
	meta := rest[:comma]
	payload := rest[comma+1:]
	if !strings.Contains(meta, "base64") {
		return "", nil, perrors.Imagef(perrors.ErrImageDataURI, "data URI is not base64 encoded")
	}
	mime = meta
	if semi := strings.IndexByte(meta, ';'); semi >= 0 {
		mime = meta[:semi]
	}
	data, decErr := base64.StdEncoding.DecodeString(payload)
	if decErr != nil {
		return "", nil, perrors.ImageWrap(decErr, perrors.ErrImageDataURI, "data URI payload is not valid base64")
	}
	return mime, data, nil
}

// Decode converts a data URI into an embeddable raster. The MIME substring
// picks the format; when it is missing or unrecognized the magic bytes
// decide. WebP input is transcoded to PNG.
func Decode(uri string) (*Raster, error) {
	mime, data, err := ParseDataURI(uri)
	if err != nil {
		return nil, err
	}

	format := formatFor(mime, data)
	switch format {
	case "PNG", "JPEG":
		cfg, _, cfgErr := image.DecodeConfig(bytes.NewReader(data))
		if cfgErr != nil {
			return nil, perrors.ImageWrap(cfgErr, perrors.ErrImageDecode, "image bytes are not decodable")
		}
		return &Raster{
			Name:   contentName(data),
			Format: format,
			Data:   data,
			Width:  cfg.Width,
			Height: cfg.Height,
		}, nil
	case "WEBP":
		img, decErr := webp.Decode(bytes.NewReader(data))
		if decErr != nil {
			return nil, perrors.ImageWrap(decErr, perrors.ErrImageDecode, "webp image is not decodable")
		}
		var buf bytes.Buffer
		if encErr := png.Encode(&buf, img); encErr != nil {
			return nil, perrors.ImageWrap(encErr, perrors.ErrImageDecode, "webp transcode failed")
		}
		bounds := img.Bounds()
		return &Raster{
			Name:   contentName(data),
			Format: "PNG",
			Data:   buf.Bytes(),
			Width:  bounds.Dx(),
			Height: bounds.Dy(),
		}, nil
	}
	return nil, perrors.Imagef(perrors.ErrImageUnsupported, "unsupported image format %q", mime)
}

// ProbeSize reports an image's pixel dimensions, giving up when the
// context expires. Used for the logo, whose probe must never block an
// export indefinitely.
func ProbeSize(ctx context.Context, uri string) (w, h int, err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return 0, 0, perrors.ImageWrap(ctxErr, perrors.ErrImageProbeTimeout, "image dimension probe timed out")
	}

	type result struct {
		w, h int
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		r, decErr := Decode(uri)
		if decErr != nil {
			ch <- result{err: decErr}
			return
		}
		ch <- result{w: r.Width, h: r.Height}
	}()

	select {
	case <-ctx.Done():
		return 0, 0, perrors.ImageWrap(ctx.Err(), perrors.ErrImageProbeTimeout, "image dimension probe timed out")
	case res := <-ch:
		return res.w, res.h, res.err
	}
}

// formatFor resolves the embed format from the MIME substring, falling
// back to magic-byte sniffing.
func formatFor(mime string, data []byte) string {
	m := strings.ToLower(mime)
	switch {
	case strings.Contains(m, "png"):
		return "PNG"
	case strings.Contains(m, "jpeg"), strings.Contains(m, "jpg"):
		return "JPEG"
	case strings.Contains(m, "webp"):
		return "WEBP"
	}
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG")):
		return "PNG"
	case bytes.HasPrefix(data, []byte("\xff\xd8")):
		return "JPEG"
	case len(data) >= 12 && bytes.Equal(data[0:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return "WEBP"
	}
	return ""
}

// contentName derives a stable resource name from the image bytes.
func contentName(data []byte) string {
	sum := sha256.Sum256(data)
	return "img-" + hex.EncodeToString(sum[:8])
}
