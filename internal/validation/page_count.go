package validation

import (
	ledongthuc "github.com/ledongthuc/pdf"
)

// CountPDFPages counts the pages of a compiled PDF.
func CountPDFPages(pdfPath string) (int, error) {
	f, r, err := ledongthuc.Open(pdfPath)
	if err != nil {
		return 0, &CompilationError{Message: "failed to open produced PDF", Cause: err}
	}
	defer func() { _ = f.Close() }()

	return r.NumPage(), nil
}
