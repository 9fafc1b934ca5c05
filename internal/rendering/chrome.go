package rendering

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ChromeTimeout bounds a single print-to-PDF run.
const ChromeTimeout = 60 * time.Second

// PrintPDF renders HTML to a PDF via headless Chrome and writes it to
// outPath. Used as the build engine on machines without a TeX toolchain.
// Requires Chrome/Chromium to be installed on the system.
func PrintPDF(ctx context.Context, html string, outPath string) error {
	// Chrome needs a URL; stage the HTML in a temp file.
	tmpDir, err := os.MkdirTemp("", "atskit-render-*")
	if err != nil {
		return &RenderError{Message: "failed to create temp directory", Cause: err}
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	htmlPath := filepath.Join(tmpDir, "resume.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0644); err != nil {
		return &RenderError{Message: "failed to write temp HTML file", Cause: err}
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, ChromeTimeout)
	defer cancel()

	fileURL := &url.URL{Scheme: "file", Path: htmlPath}

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate(fileURL.String()),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(false).
				WithPaperWidth(8.5).
				WithPaperHeight(11).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return &RenderError{Message: "headless browser rendering failed", Cause: err}
	}

	if err := os.WriteFile(outPath, pdf, 0644); err != nil {
		return &RenderError{Message: fmt.Sprintf("failed to write PDF: %s", outPath), Cause: err}
	}
	return nil
}
