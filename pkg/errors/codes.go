// Package errors provides error code constants for punchpdf.
// Error codes are organized by category for consistent handling and lookup.
package errors

// -----------------------------------------------------------------------------
// Engine Error Codes
// -----------------------------------------------------------------------------
// Use these codes for errors raised by the underlying PDF document engine.

const (
	// ErrEngineInit indicates the document engine could not be constructed.
	// This is fatal: no document is produced.
	ErrEngineInit = "ENGINE_INIT_FAILED"

	// ErrEngineOutput indicates the finished document could not be written.
	ErrEngineOutput = "ENGINE_OUTPUT_FAILED"
)

// -----------------------------------------------------------------------------
// Image Error Codes
// -----------------------------------------------------------------------------
// Image errors are recoverable per resource: the element is skipped and
// document generation continues.

const (
	// ErrImageDataURI indicates a data URI could not be parsed.
	ErrImageDataURI = "IMAGE_DATA_URI_INVALID"

	// ErrImageUnsupported indicates the raster format is not embeddable.
	ErrImageUnsupported = "IMAGE_FORMAT_UNSUPPORTED"

	// ErrImageDecode indicates the image bytes could not be decoded.
	ErrImageDecode = "IMAGE_DECODE_FAILED"

	// ErrImageEmbed indicates the backend rejected the image resource.
	ErrImageEmbed = "IMAGE_EMBED_FAILED"

	// ErrImageProbeTimeout indicates a dimension probe did not finish in time.
	ErrImageProbeTimeout = "IMAGE_PROBE_TIMEOUT"
)

// -----------------------------------------------------------------------------
// Template Error Codes
// -----------------------------------------------------------------------------

const (
	// ErrTemplateNotFound indicates the template file does not exist.
	ErrTemplateNotFound = "TEMPLATE_NOT_FOUND"

	// ErrTemplateParse indicates the template file could not be parsed.
	// Usually a YAML syntax error or invalid structure.
	ErrTemplateParse = "TEMPLATE_PARSE_FAILED"

	// ErrTemplateEmpty indicates the template has no sections to render.
	ErrTemplateEmpty = "TEMPLATE_EMPTY"
)

// -----------------------------------------------------------------------------
// Input and IO Error Codes
// -----------------------------------------------------------------------------

const (
	// ErrInputInvalid indicates caller-supplied data fails validation.
	ErrInputInvalid = "INPUT_INVALID"

	// ErrFileRead indicates a file could not be read.
	ErrFileRead = "FILE_READ_FAILED"

	// ErrFileWrite indicates a file could not be written.
	ErrFileWrite = "FILE_WRITE_FAILED"
)

// suggestions maps error codes to remediation steps shown to the user.
var suggestions = map[string][]string{
	ErrEngineInit: {
		"Refresh and retry the export",
		"Close other exports before starting a new one",
	},
	ErrEngineOutput: {
		"Check free disk space and retry",
	},
	ErrImageDataURI: {
		"Re-attach the photo; its stored data is not a valid image URI",
	},
	ErrImageUnsupported: {
		"Convert the image to PNG or JPEG and re-attach it",
	},
	ErrTemplateNotFound: {
		"Check the template path",
		"Run with -init to create a starter template",
	},
	ErrTemplateParse: {
		"Check the template file for YAML syntax errors",
	},
	ErrTemplateEmpty: {
		"Add at least one section to the template",
	},
}

// suggestionsFor returns the registered suggestions for a code, or nil.
func suggestionsFor(code string) []string {
	s, ok := suggestions[code]
	if !ok {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
