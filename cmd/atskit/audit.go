package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/harris/atskit/internal/analysis"
	"github.com/harris/atskit/internal/config"
	"github.com/harris/atskit/internal/ingestion"
	"github.com/harris/atskit/internal/observability"
	"github.com/harris/atskit/internal/report"
	"github.com/harris/atskit/internal/types"
)

var auditCmd = &cobra.Command{
	Use:   "audit <resume.pdf>",
	Short: "Audit a PDF resume for ATS and human readability",
	Long: `Extracts text with two independent PDF libraries, cross-checks the
results, and reports file info, text structure, readability metrics,
keyword density, a presence-based ATS score, and recommendations.`,
	Args: cobra.ExactArgs(1),
	RunE: runAudit,
}

var (
	auditOutput     string
	auditConfigPath string
	auditVerbose    bool
	auditSaveText   bool
)

func init() {
	auditCmd.Flags().StringVarP(&auditOutput, "output", "o", "", "Path to save the JSON report (optional)")
	auditCmd.Flags().StringVar(&auditConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	auditCmd.Flags().BoolVarP(&auditVerbose, "verbose", "v", false, "Print extraction cross-check details")
	auditCmd.Flags().BoolVar(&auditSaveText, "save-text", false, "Include extracted text in the saved report")

	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("resume file not found: %s", path)
	}

	if auditConfigPath != "" {
		cfg, err := config.LoadConfig(auditConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyAuditConfig(cmd, cfg, path)
	}

	rep, err := buildAuditReport(path)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout, auditVerbose)
	printer.PrintAuditReport(rep)

	if auditOutput != "" {
		if !auditSaveText {
			rep.TextExtraction.PrimaryText = ""
			rep.TextExtraction.SecondaryText = ""
		}
		if err := report.Save(auditOutput, rep); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "\nReport saved to: %s\n", auditOutput)
	}

	return nil
}

// applyAuditConfig fills in flag values from the config file. Explicitly set
// flags win; the report path defaults into the configured report directory.
func applyAuditConfig(cmd *cobra.Command, cfg *config.Config, path string) {
	if !cmd.Flags().Changed("save-text") {
		auditSaveText = cfg.SaveText
	}
	if !cmd.Flags().Changed("verbose") {
		auditVerbose = cfg.Verbose
	}
	if auditOutput == "" && cfg.ReportDir != "" {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		auditOutput = filepath.Join(cfg.ReportDir, base+"_audit.json")
	}
}

func buildAuditReport(path string) (*types.AuditReport, error) {
	info, err := ingestion.PDFInfo(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF info: %w", err)
	}

	primary, err := ingestion.ExtractPDF(path)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text: %w", err)
	}

	// The secondary extractor is a cross-check; its failure is recorded,
	// not fatal.
	secondary, secErr := ingestion.ExtractPDFSecondary(path)
	if secErr != nil {
		secondary = ""
	}

	quality := analysis.CompareExtractions(primary, secondary)
	structure := analysis.AnalyzeStructure(primary)

	rep := &types.AuditReport{
		ID:       uuid.NewString(),
		FileInfo: info,
		TextExtraction: types.TextExtraction{
			PrimaryText:       primary,
			SecondaryText:     secondary,
			ExtractionQuality: quality,
			TextStructure:     structure,
		},
		ATSCompatibility: types.ATSCompatibility{
			TextReadability:  analysis.AnalyzeReadability(primary),
			KeywordDensity:   analysis.AnalyzeKeywordDensity(primary),
			FormattingIssues: analysis.DetectFormattingIssues(primary),
			ATSFriendlyScore: analysis.PresenceScore(quality, structure, analysis.AuditWeights),
		},
		HumanReadability: types.HumanReadability{
			VisualStructure:          analysis.AnalyzeVisualStructure(primary),
			ContentOrganization:      analysis.AnalyzeContentOrganization(primary),
			ProfessionalPresentation: analysis.AnalyzePresentation(primary),
		},
	}
	rep.Recommendations = analysis.GenerateRecommendations(rep)

	return rep, nil
}
