package errors

import (
	"fmt"
)

// ParseError represents a deck, theme or configuration decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures a rejected style edit or configuration value.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UploadError indicates a logo upload that could not be inlined.
type UploadError struct {
	Slot      string
	MediaType string
	Err       error
}

// NewUploadError constructs an UploadError for the given logo slot.
func NewUploadError(slot, mediaType string, err error) error {
	return &UploadError{Slot: slot, MediaType: mediaType, Err: err}
}

func (e *UploadError) Error() string {
	if e == nil {
		return ""
	}
	if e.MediaType != "" {
		return fmt.Sprintf("upload error [%s]: %s: %v", e.Slot, e.MediaType, e.Err)
	}
	return fmt.Sprintf("upload error [%s]: %v", e.Slot, e.Err)
}

// Unwrap exposes the underlying error.
func (e *UploadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SourceError reports a failure to obtain a deck from a file or the generation service.
type SourceError struct {
	Source string
	Err    error
}

// NewSourceError constructs a SourceError.
func NewSourceError(source string, err error) error {
	return &SourceError{Source: source, Err: err}
}

func (e *SourceError) Error() string {
	if e == nil {
		return ""
	}
	if e.Source != "" {
		return fmt.Sprintf("deck source error [%s]: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("deck source error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *SourceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
