package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harris/atskit/internal/analysis"
	"github.com/harris/atskit/internal/config"
	"github.com/harris/atskit/internal/ingestion"
	"github.com/harris/atskit/internal/markdown"
	"github.com/harris/atskit/internal/observability"
	"github.com/harris/atskit/internal/rendering"
	"github.com/harris/atskit/internal/report"
	"github.com/harris/atskit/internal/types"
	"github.com/harris/atskit/internal/validation"
)

var buildCmd = &cobra.Command{
	Use:   "build <resume.md>",
	Short: "Build a PDF resume from Markdown and verify it",
	Long: `Runs the full pipeline: parse the Markdown resume, emit ATS text,
score it, render LaTeX (or HTML for the chrome engine), produce a PDF,
then re-analyze the PDF the way an ATS would.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

var (
	buildConfigPath string
	buildEngine     string
	buildTemplate   string
	buildOutputDir  string
	buildReportDir  string
	buildKeepAux    bool
	buildTwoPasses  bool
	buildMaxPages   int
	buildMinScore   int
	buildVerbose    bool
)

func init() {
	buildCmd.Flags().StringVar(&buildConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	buildCmd.Flags().StringVar(&buildEngine, "engine", "latex", "PDF engine: latex (xelatex) or chrome (headless)")
	buildCmd.Flags().StringVar(&buildTemplate, "template", "", "Path to a template override (default: embedded template)")
	buildCmd.Flags().StringVarP(&buildOutputDir, "output-dir", "o", "", "Directory for generated artifacts (default: input file's directory)")
	buildCmd.Flags().StringVar(&buildReportDir, "report-dir", "", "Directory to save the final JSON report (default: not saved)")
	buildCmd.Flags().BoolVar(&buildKeepAux, "keep-aux", false, "Keep LaTeX auxiliary files after the build")
	buildCmd.Flags().BoolVar(&buildTwoPasses, "two-passes", true, "Run xelatex twice so cross-references resolve")
	buildCmd.Flags().IntVar(&buildMaxPages, "max-pages", 1, "Warn when the produced PDF exceeds this page count")
	buildCmd.Flags().IntVar(&buildMinScore, "min-score", 0, "Fail the build when the final ATS score is below this value")
	buildCmd.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "Print pipeline step details")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	path := args[0]
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("markdown file not found: %s", path)
	}

	// Step 1: Load config file if provided
	var cfg config.Config
	if buildConfigPath != "" {
		loadedCfg, err := config.LoadConfig(buildConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
		if buildVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", buildConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("engine") {
		cfg.Engine = buildEngine
	}
	if cmd.Flags().Changed("template") {
		cfg.Template = buildTemplate
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = buildOutputDir
	}
	if cmd.Flags().Changed("report-dir") {
		cfg.ReportDir = buildReportDir
	}
	if cmd.Flags().Changed("keep-aux") {
		cfg.KeepAux = buildKeepAux
	}
	if cmd.Flags().Changed("two-passes") {
		cfg.TwoPasses = &buildTwoPasses
	}
	if cmd.Flags().Changed("max-pages") {
		cfg.MaxPages = buildMaxPages
	}
	if cmd.Flags().Changed("min-score") {
		cfg.ScoreWarnAt = buildMinScore
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = buildVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{
		Engine:    "latex",
		OutputDir: filepath.Dir(path),
		MaxPages:  1,
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	// Step 4: Parse the Markdown resume
	content, err := ingestion.ReadText(path)
	if err != nil {
		return fmt.Errorf("failed to read markdown: %w", err)
	}
	data, err := markdown.Parse(content)
	if err != nil {
		return fmt.Errorf("failed to parse markdown: %w", err)
	}
	if cfg.Verbose {
		_, _ = fmt.Fprintf(os.Stdout, "Parsed %d jobs, %d education entries, %d skill categories\n",
			len(data.Jobs), len(data.Education), len(data.Skills))
	}

	// Step 5: Emit and score the ATS text rendition
	atsText := markdown.GenerateATSText(data)
	atsPath := filepath.Join(cfg.OutputDir, base+"_ats.txt")
	if err := os.WriteFile(atsPath, []byte(atsText), 0644); err != nil {
		return fmt.Errorf("failed to write ATS text: %w", err)
	}
	atsReport := buildATSTextReport(atsText)
	_, _ = fmt.Fprintf(os.Stdout, "ATS text: %s (score %d/100)\n", atsPath, atsReport.OptimizationScore)

	// Step 6: Produce the PDF
	var pdfPath string
	switch cfg.Engine {
	case "chrome":
		pdfPath, err = buildWithChrome(ctx, data, cfg.OutputDir, base)
	default:
		pdfPath, err = buildWithLaTeX(ctx, data, cfg, base)
	}
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "PDF: %s\n", pdfPath)

	// Step 7: Enforce the page limit
	pages, err := validation.CountPDFPages(pdfPath)
	if err != nil {
		return fmt.Errorf("failed to count pages: %w", err)
	}
	if pages > cfg.MaxPages {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: PDF is %d pages (limit %d)\n", pages, cfg.MaxPages)
	}

	// Step 8: Re-analyze the produced PDF
	text, err := ingestion.ExtractPDF(pdfPath)
	if err != nil {
		return fmt.Errorf("failed to extract text from built PDF: %w", err)
	}
	rep := buildExtractedReport(text, analysis.IssueOptions{
		CheckLineBreaks: true,
		MaxLineBreaks:   cfg.MaxLineBreaks,
	})
	printer := observability.NewPrinter(os.Stdout, cfg.Verbose)
	printer.PrintReport(rep)

	if cfg.ReportDir != "" {
		reportPath := filepath.Join(cfg.ReportDir, base+"_report.json")
		if err := report.Save(reportPath, rep); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "\nReport saved to: %s\n", reportPath)
	}

	if cfg.ScoreWarnAt > 0 && rep.OptimizationScore < cfg.ScoreWarnAt {
		return fmt.Errorf("ATS score %d is below the required minimum %d", rep.OptimizationScore, cfg.ScoreWarnAt)
	}

	return nil
}

func buildWithLaTeX(ctx context.Context, data *types.ResumeData, cfg config.Config, base string) (string, error) {
	tex, err := rendering.RenderLaTeX(data, cfg.Template)
	if err != nil {
		return "", fmt.Errorf("failed to render LaTeX: %w", err)
	}

	texPath := filepath.Join(cfg.OutputDir, base+".tex")
	if err := os.WriteFile(texPath, []byte(tex), 0644); err != nil {
		return "", fmt.Errorf("failed to write LaTeX file: %w", err)
	}

	twoPasses := true
	if cfg.TwoPasses != nil {
		twoPasses = *cfg.TwoPasses
	}
	pdfPath, err := validation.CompileLaTeX(ctx, texPath, twoPasses)
	if err != nil {
		return "", fmt.Errorf("failed to compile LaTeX: %w", err)
	}
	if !cfg.KeepAux {
		validation.CleanAux(texPath)
	}
	return pdfPath, nil
}

func buildWithChrome(ctx context.Context, data *types.ResumeData, outputDir, base string) (string, error) {
	html, err := rendering.RenderHTML(data)
	if err != nil {
		return "", fmt.Errorf("failed to render HTML: %w", err)
	}

	pdfPath := filepath.Join(outputDir, base+".pdf")
	if err := rendering.PrintPDF(ctx, html, pdfPath); err != nil {
		return "", fmt.Errorf("failed to print PDF: %w", err)
	}
	return pdfPath, nil
}
