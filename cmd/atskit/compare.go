package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harris/atskit/internal/compare"
	"github.com/harris/atskit/internal/observability"
	"github.com/harris/atskit/internal/report"
)

var compareCmd = &cobra.Command{
	Use:   "compare <old.json> <new.json>",
	Short: "Compare two saved analysis reports",
	Long: `Loads two JSON reports produced by analyze or check, validates them
against the report schema, and prints a section-by-section comparison of
parse quality, issues, and scores.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, args []string) error {
	oldReport, err := report.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load original report: %w", err)
	}

	newReport, err := report.Load(args[1])
	if err != nil {
		return fmt.Errorf("failed to load optimized report: %w", err)
	}

	comparison := compare.Reports(oldReport, newReport)

	printer := observability.NewPrinter(os.Stdout, false)
	printer.PrintComparison(comparison)

	return nil
}
