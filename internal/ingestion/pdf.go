package ingestion

import (
	"os"
	"strings"

	ledongthuc "github.com/ledongthuc/pdf"
	rscpdf "rsc.io/pdf"

	"github.com/harris/atskit/internal/types"
)

// ExtractPDF extracts text with the primary library (page-by-page plain text
// concatenation, better for complex layouts). Pages that fail to decode are
// skipped rather than aborting the whole document.
func ExtractPDF(path string) (string, error) {
	f, r, err := ledongthuc.Open(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to open PDF", Cause: err}
	}
	defer func() { _ = f.Close() }()

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// ExtractPDFSecondary extracts text with the secondary library, walking the
// raw content-stream text objects. The two outputs are cross-checked by the
// audit command; a large length difference signals a layout that confuses
// naive ATS text reconstruction.
func ExtractPDFSecondary(path string) (string, error) {
	r, err := rscpdf.Open(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to open PDF", Cause: err}
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		for _, t := range page.Content().Text {
			sb.WriteString(t.S)
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// PDFInfo reads basic file facts: page count, encryption flag, size in MB.
func PDFInfo(path string) (types.FileInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return types.FileInfo{}, &ExtractionError{Path: path, Message: "failed to stat file", Cause: err}
	}
	info := types.FileInfo{
		FileSizeMB: float64(stat.Size()) / (1024 * 1024),
	}

	f, r, err := ledongthuc.Open(path)
	if err != nil {
		// Encrypted documents fail to open without a password; report what
		// we know instead of erroring out of the whole audit.
		info.Encrypted = true
		return info, nil
	}
	defer func() { _ = f.Close() }()

	info.Pages = r.NumPage()
	return info, nil
}
