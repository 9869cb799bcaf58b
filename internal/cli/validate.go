package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/one-dna/disclose/internal/model"
	"github.com/one-dna/disclose/internal/pipeline"
)

var (
	validateJSON    bool
	validateSummary bool
	validateOut     string
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <content-dir>",
	Short: "Validate a content directory against the disclosure policy",
	Long: `Validate loads every evidence object, specification, and content page
under the given directory, runs the full rule set, and reports all
findings in one pass.

The command exits non-zero when any page or catalog object has errors,
so it can gate a publish step in CI. Warnings never block.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "emit the full report as JSON")
	validateCmd.Flags().BoolVar(&validateSummary, "summary", false, "append an LLM editorial summary (requires configured provider)")
	validateCmd.Flags().StringVarP(&validateOut, "output", "o", "", "write the JSON report to a file")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	contentDir := args[0]

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := loadConfig()
	if !validateSummary {
		cfg.LLM.Provider = ""
	}

	p := pipeline.New(cfg, logger)
	result, err := p.Run(ctx, contentDir)
	if err != nil {
		return fmt.Errorf("validation run failed: %w", err)
	}

	if validateOut != "" {
		data, err := json.MarshalIndent(result.Report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		if err := os.WriteFile(validateOut, data, 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		logger.Info("report written", zap.String("path", validateOut))
	}

	if validateJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result.Report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
	} else {
		printReport(result)
	}

	if !result.Report.Publishable {
		return fmt.Errorf("validation failed: %d error(s) across %d page(s)",
			result.Report.TotalErrors(), len(result.Report.Pages))
	}
	return nil
}

func printReport(result *pipeline.Result) {
	r := result.Report

	fmt.Printf("Run %s\n", r.RunID)
	fmt.Printf("Pages: %d  Errors: %d  Warnings: %d\n\n",
		len(r.Pages), r.TotalErrors(), r.TotalWarnings())

	if len(r.Catalog.Issues) > 0 {
		fmt.Println("Catalog:")
		printIssues(r.Catalog.Issues)
		fmt.Println()
	}

	for _, pr := range r.Pages {
		if len(pr.Report.Issues) == 0 {
			continue
		}
		fmt.Printf("%s/%s (%s):\n", pr.Locale, pr.Slug, pr.PageType)
		printIssues(pr.Report.Issues)
		fmt.Println()
	}

	if r.Publishable {
		fmt.Println("Result: PUBLISHABLE")
	} else {
		fmt.Println("Result: BLOCKED")
	}

	if result.Summary != "" {
		fmt.Printf("\nEditorial summary:\n%s\n", result.Summary)
	}
}

func printIssues(issues []model.Issue) {
	for _, issue := range issues {
		fmt.Printf("  %s\n", issue.String())
	}
}
