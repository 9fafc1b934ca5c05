package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harris/atskit/internal/ingestion"
	"github.com/harris/atskit/internal/markdown"
)

var convertCmd = &cobra.Command{
	Use:   "convert <resume.md>",
	Short: "Convert a Markdown resume to ATS-friendly plain text",
	Long: `Parses a Markdown resume (definition-list format with YAML frontmatter)
and emits a labeled plain-text rendition that parses cleanly in
Applicant Tracking Systems.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

var (
	convertOutput    string
	convertOptimized bool
)

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Path for the ATS text file (default: <input>_ats.txt)")
	convertCmd.Flags().BoolVar(&convertOptimized, "optimized", false, "Also write a compact single-line-per-entry rendition (<input>_optimized.txt)")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(_ *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("markdown file not found: %s", path)
	}

	content, err := ingestion.ReadText(path)
	if err != nil {
		return fmt.Errorf("failed to read markdown: %w", err)
	}

	data, err := markdown.Parse(content)
	if err != nil {
		return fmt.Errorf("failed to parse markdown: %w", err)
	}

	atsText := markdown.GenerateATSText(data)

	outPath := convertOutput
	if outPath == "" {
		outPath = strings.TrimSuffix(path, filepath.Ext(path)) + "_ats.txt"
	}

	if err := os.WriteFile(outPath, []byte(atsText), 0644); err != nil {
		return fmt.Errorf("failed to write ATS text: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "ATS text saved to: %s\n", outPath)

	if convertOptimized {
		optPath := strings.TrimSuffix(path, filepath.Ext(path)) + "_optimized.txt"
		if err := os.WriteFile(optPath, []byte(markdown.GenerateOptimizedText(data)), 0644); err != nil {
			return fmt.Errorf("failed to write optimized text: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Optimized text saved to: %s\n", optPath)
	}

	_, _ = fmt.Fprintf(os.Stdout, "  %d jobs, %d education entries, %d skill categories\n",
		len(data.Jobs), len(data.Education), len(data.Skills))

	return nil
}
