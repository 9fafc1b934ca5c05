package ingestion

import (
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// blockSelector lists the elements whose boundaries become line breaks so
// the section extractor still sees one heading or bullet per line.
const blockSelector = "p, li, h1, h2, h3, h4, h5, h6, div, tr, br"

// ExtractHTML extracts visible text from an HTML resume export (e.g. a
// LinkedIn profile download) with block elements newline-separated.
func ExtractHTML(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &ExtractionError{Path: path, Message: "file not found", Cause: err}
		}
		return "", &ExtractionError{Path: path, Message: "failed to open file", Cause: err}
	}
	defer func() { _ = f.Close() }()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to parse HTML", Cause: err}
	}

	doc.Find("script, style, noscript, nav, footer").Remove()

	var sb strings.Builder
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		// Only leaf-level blocks carry text directly; nested containers
		// would duplicate their children's text.
		if s.Children().Filter(blockSelector).Length() > 0 {
			return
		}
		if text := strings.TrimSpace(s.Text()); text != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	})

	if sb.Len() == 0 {
		// Severely flattened markup: fall back to body text.
		return strings.TrimSpace(doc.Find("body").Text()), nil
	}
	return sb.String(), nil
}
