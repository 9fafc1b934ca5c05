package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/harris/atskit/internal/analysis"
	"github.com/harris/atskit/internal/ingestion"
	"github.com/harris/atskit/internal/observability"
	"github.com/harris/atskit/internal/optimize"
	"github.com/harris/atskit/internal/parsing"
	"github.com/harris/atskit/internal/report"
	"github.com/harris/atskit/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume file>",
	Short: "Run a full heuristic ATS parse of a resume",
	Long: `Extracts text from a resume (PDF, DOCX, HTML, Markdown, or plain text),
parses contact info, work experience, education, and skills the way an ATS
would, scans for formatting issues, and scores the result 0-100.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

var (
	analyzeOutput  string
	analyzeVerbose bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Path to save the JSON report (optional)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print extraction details")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("resume file not found: %s", path)
	}

	text, err := ingestion.Extract(path)
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	if analyzeVerbose {
		_, _ = fmt.Fprintf(os.Stdout, "Extracted %d characters from %s\n", len(text), path)
	}

	rep := buildExtractedReport(text, analysis.IssueOptions{CheckLineBreaks: true})

	printer := observability.NewPrinter(os.Stdout, analyzeVerbose)
	printer.PrintReport(rep)

	if analyzeOutput != "" {
		if err := report.Save(analyzeOutput, rep); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "\nReport saved to: %s\n", analyzeOutput)
	}

	return nil
}

// buildExtractedReport assembles a parse report from extracted resume text.
func buildExtractedReport(text string, opts analysis.IssueOptions) *types.Report {
	rep := &types.Report{
		ID:             uuid.NewString(),
		ContactInfo:    parsing.ParseContact(text),
		WorkExperience: parsing.ParseWorkExperience(text, parsing.Extracted),
		Education:      parsing.ParseEducation(text, parsing.Extracted),
		Skills:         parsing.ParseSkills(text, parsing.Extracted),
		ATSIssues:      analysis.DetectIssues(text, opts),
		OptimizedText:  optimize.Text(text),
	}
	rep.OptimizationScore = analysis.Score(rep, analysis.AdvancedWeights)
	return rep
}
