// Package errors provides structured error types for punchpdf.
// Errors carry a code, a category, an optional cause, and actionable
// suggestions shown to the person exporting the document.
package errors

import (
	"fmt"
	"strings"
)

// Category classifies errors for consistent handling and display.
type Category string

const (
	CategoryEngine   Category = "engine"   // Document engine construction/output errors
	CategoryImage    Category = "image"    // Photo/logo/signature decode and embed errors
	CategoryTemplate Category = "template" // Sign-off template loading/parsing errors
	CategoryInput    Category = "input"    // Invalid caller-supplied data
	CategoryIO       Category = "io"       // File read/write errors
)

// Error is a structured error with context and suggestions.
// It implements the error interface and supports error wrapping.
type Error struct {
	// Code is a unique identifier for this error type (e.g., "ENGINE_INIT_FAILED")
	Code string

	// Category classifies this error for consistent handling
	Category Category

	// Message is the primary error message describing what went wrong
	Message string

	// Cause is the underlying error that triggered this error (for wrapping)
	Cause error

	// Suggestions are actionable remediation steps for the user
	Suggestions []string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain inspection.
// This enables errors.Is() and errors.As() to work with Error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether e matches target. Two Errors match if they have the
// same Code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// UserMessage renders the error for display to the person running the
// export: the message, then each suggestion on its own line.
func (e *Error) UserMessage() string {
	var sb strings.Builder
	sb.WriteString(e.Message)
	for _, s := range e.Suggestions {
		sb.WriteString("\n  - ")
		sb.WriteString(s)
	}
	return sb.String()
}

// New creates a new Error with the given code, category, and message.
// Suggestions registered for the code are attached automatically.
func New(code string, category Category, message string) *Error {
	return &Error{
		Code:        code,
		Category:    category,
		Message:     message,
		Suggestions: suggestionsFor(code),
	}
}

// Wrap creates a new Error wrapping an underlying cause.
func Wrap(cause error, code string, category Category, message string) *Error {
	e := New(code, category, message)
	e.Cause = cause
	return e
}

// EngineWrap wraps an error as an engine error.
func EngineWrap(cause error, code, message string) *Error {
	return Wrap(cause, code, CategoryEngine, message)
}

// Imagef creates an image error with a formatted message.
func Imagef(code, format string, args ...interface{}) *Error {
	return New(code, CategoryImage, fmt.Sprintf(format, args...))
}

// ImageWrap wraps an error as an image error.
func ImageWrap(cause error, code, message string) *Error {
	return Wrap(cause, code, CategoryImage, message)
}

// Templatef creates a template error with a formatted message.
func Templatef(code, format string, args ...interface{}) *Error {
	return New(code, CategoryTemplate, fmt.Sprintf(format, args...))
}

// TemplateWrap wraps an error as a template error.
func TemplateWrap(cause error, code, message string) *Error {
	return Wrap(cause, code, CategoryTemplate, message)
}

// Inputf creates an input validation error with a formatted message.
func Inputf(code, format string, args ...interface{}) *Error {
	return New(code, CategoryInput, fmt.Sprintf(format, args...))
}

// IOWrap wraps an error as a file IO error.
func IOWrap(cause error, code, message string) *Error {
	return Wrap(cause, code, CategoryIO, message)
}
