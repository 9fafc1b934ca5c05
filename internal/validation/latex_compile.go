package validation

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// CompilationTimeout is the maximum time to wait for one xelatex pass
const CompilationTimeout = 30 * time.Second

// logTailLines is how much of the xelatex log a CompilationError carries
const logTailLines = 25

// auxExtensions are the xelatex byproducts removed by CleanAux
var auxExtensions = []string{".aux", ".log", ".out", ".toc", ".fdb_latexmk", ".fls", ".synctex.gz"}

// CompileLaTeX compiles a .tex file with xelatex and returns the produced
// PDF path. With twoPasses, xelatex runs a second time so cross-references
// resolve.
func CompileLaTeX(ctx context.Context, texPath string, twoPasses bool) (string, error) {
	if _, err := exec.LookPath("xelatex"); err != nil {
		return "", &CompilationError{
			Message: "xelatex not found in PATH. Please install TeX Live",
			Cause:   err,
		}
	}

	workDir := filepath.Dir(texPath)

	passes := 1
	if twoPasses {
		passes = 2
	}
	for pass := 1; pass <= passes; pass++ {
		if err := runXelatex(ctx, texPath, workDir, pass); err != nil {
			return "", err
		}
	}

	pdfPath := strings.TrimSuffix(texPath, filepath.Ext(texPath)) + ".pdf"
	if _, err := os.Stat(pdfPath); err != nil {
		return "", &CompilationError{
			Message: fmt.Sprintf("PDF not produced: %s", pdfPath),
			Cause:   err,
		}
	}
	return pdfPath, nil
}

func runXelatex(ctx context.Context, texPath, workDir string, pass int) error {
	passCtx, cancel := context.WithTimeout(ctx, CompilationTimeout)
	defer cancel()

	cmd := exec.CommandContext(passCtx, "xelatex",
		"-interaction=nonstopmode",
		"-output-directory", workDir,
		texPath)

	var output strings.Builder
	cmd.Stdout = &output
	cmd.Stderr = &output

	if err := cmd.Run(); err != nil {
		return &CompilationError{
			Message:   fmt.Sprintf("xelatex pass %d failed", pass),
			LogOutput: logTail(output.String()),
			Cause:     err,
		}
	}
	return nil
}

// logTail keeps the end of the compiler output, where xelatex reports errors.
func logTail(output string) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) > logTailLines {
		lines = lines[len(lines)-logTailLines:]
	}
	return strings.Join(lines, "\n")
}

// CleanAux removes compilation byproducts next to the .tex file.
// Best effort; missing files are not errors.
func CleanAux(texPath string) {
	base := strings.TrimSuffix(texPath, filepath.Ext(texPath))
	for _, ext := range auxExtensions {
		_ = os.Remove(base + ext)
	}
}
