package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harris/atskit/internal/analysis"
	"github.com/harris/atskit/internal/ingestion"
	"github.com/harris/atskit/internal/observability"
)

var diffCmd = &cobra.Command{
	Use:   "diff <old.pdf> <new.pdf>",
	Short: "Run a side-by-side ATS analysis of two PDF resumes",
	Args:  cobra.ExactArgs(2),
	RunE:  runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

func runDiff(_ *cobra.Command, args []string) error {
	printer := observability.NewPrinter(os.Stdout, false)

	scores := make([]int, 2)
	for i, path := range args {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("resume file not found: %s", path)
		}

		text, err := ingestion.ExtractPDF(path)
		if err != nil {
			return fmt.Errorf("failed to extract text from %s: %w", path, err)
		}

		quick := analysis.QuickAnalyze(text)
		printer.PrintQuickAnalysis(filepath.Base(path), quick)
		scores[i] = quick.ATSScore
	}

	_, _ = fmt.Fprintf(os.Stdout, "\nScore delta: %+d points\n", scores[1]-scores[0])
	if scores[1] > scores[0] {
		_, _ = fmt.Fprintf(os.Stdout, "✅ Second resume scores higher\n")
	} else if scores[1] < scores[0] {
		_, _ = fmt.Fprintf(os.Stdout, "⚠️ Second resume scores lower\n")
	} else {
		_, _ = fmt.Fprintf(os.Stdout, "Both resumes score the same\n")
	}

	return nil
}
