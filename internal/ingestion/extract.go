package ingestion

import (
	"path/filepath"
	"strings"
)

// Extract dispatches on file extension and returns plain resume text.
// PDF uses the primary extractor; DOCX and HTML output is cleaned because
// those converters leave ragged whitespace behind.
func Extract(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return ExtractPDF(path)
	case ".docx":
		text, err := ExtractDOCX(path)
		if err != nil {
			return "", err
		}
		return CleanText(text), nil
	case ".html", ".htm":
		text, err := ExtractHTML(path)
		if err != nil {
			return "", err
		}
		return CleanText(text), nil
	case ".md", ".txt", ".text":
		return ReadText(path)
	default:
		return "", &UnsupportedFormatError{Path: path, Ext: filepath.Ext(path)}
	}
}
