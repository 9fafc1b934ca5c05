package ingestion

import (
	"bytes"
	"os"
	"regexp"

	"github.com/nguyenthenguyen/docx"
)

var (
	docxParagraphPattern = regexp.MustCompile(`</w:p>`)
	docxTagPattern       = regexp.MustCompile(`<[^>]+>`)
)

// ExtractDOCX extracts plain text from a Word document. Paragraph boundaries
// become newlines before the remaining markup is stripped.
func ExtractDOCX(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &ExtractionError{Path: path, Message: "file not found", Cause: err}
		}
		return "", &ExtractionError{Path: path, Message: "failed to read file", Cause: err}
	}

	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to parse docx", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	content := doc.Editable().GetContent()
	content = docxParagraphPattern.ReplaceAllString(content, "\n")
	content = docxTagPattern.ReplaceAllString(content, "")
	return content, nil
}
