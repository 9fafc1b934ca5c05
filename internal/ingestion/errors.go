// Package ingestion obtains plain resume text from the supported input
// formats: PDF (two independent extraction libraries), DOCX, HTML, Markdown,
// and plain text.
package ingestion

import "fmt"

// ExtractionError represents a failure to pull text out of an input file
type ExtractionError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error for %s: %s", e.Path, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// UnsupportedFormatError is returned when the input extension is not handled
type UnsupportedFormatError struct {
	Path string
	Ext  string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported input format %q for %s", e.Ext, e.Path)
}
