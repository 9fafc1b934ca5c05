package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harris/atskit/internal/ingestion"
	"github.com/harris/atskit/internal/optimize"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize <in.md|.tex|.txt>",
	Short: "Apply ATS-safe character substitutions to a source file",
	Long: `Rewrites problem characters in place-preserving fashion: ampersands
become "and", fancy bullets and dashes become ASCII, curly quotes become
straight. Running it twice produces identical output.`,
	Args: cobra.ExactArgs(1),
	RunE: runOptimize,
}

var optimizeOutput string

func init() {
	optimizeCmd.Flags().StringVarP(&optimizeOutput, "output", "o", "", "Path for the optimized file (default: <input>_optimized<ext>)")

	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(_ *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", path)
	}

	content, err := ingestion.ReadText(path)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	var optimized string
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".tex":
		optimized = optimize.LaTeX(content)
	case ".md":
		optimized = optimize.Markdown(content)
	default:
		optimized = optimize.Characters(content)
	}

	outPath := optimizeOutput
	if outPath == "" {
		base := strings.TrimSuffix(path, filepath.Ext(path))
		outPath = base + "_optimized" + filepath.Ext(path)
	}

	if err := os.WriteFile(outPath, []byte(optimized), 0644); err != nil {
		return fmt.Errorf("failed to write optimized file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Optimized file saved to: %s\n", outPath)
	if optimized == content {
		_, _ = fmt.Fprintf(os.Stdout, "  No changes needed\n")
	}

	return nil
}
