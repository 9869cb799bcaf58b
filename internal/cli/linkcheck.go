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

	"github.com/one-dna/disclose/internal/linkcheck"
	"github.com/one-dna/disclose/internal/loader"
)

var linkcheckJSON bool

// linkcheckCmd represents the linkcheck command
var linkcheckCmd = &cobra.Command{
	Use:   "linkcheck <content-dir>",
	Short: "Probe every evidence document URL",
	Long: `Linkcheck fetches the documentUrl of every evidence object and reports
dead links, stale documents, and robots-denied hosts.

Findings here are editorial follow-ups. They never block publication:
an unreachable host must not take the content pipeline down with it.`,
	Args: cobra.ExactArgs(1),
	RunE: runLinkcheck,
}

func init() {
	linkcheckCmd.Flags().BoolVar(&linkcheckJSON, "json", false, "emit results as JSON")

	rootCmd.AddCommand(linkcheckCmd)
}

func runLinkcheck(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	site, err := loader.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	cfg := loadConfig()
	checker := linkcheck.NewChecker(cfg.LinkCheck)

	logger.Info("checking evidence document URLs",
		zap.Int("evidence_objects", site.Evidence.Len()),
		zap.Int("workers", cfg.LinkCheck.MaxWorkers))

	results := checker.Check(ctx, site.Evidence.All())

	if linkcheckJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	var dead, stale, denied int
	for _, r := range results {
		switch {
		case r.Dead:
			dead++
			fmt.Printf("  DEAD   %-32s %s\n", r.EvidenceID, r.URL)
		case r.RobotsDenied:
			denied++
			fmt.Printf("  ROBOTS %-32s %s\n", r.EvidenceID, r.URL)
		case r.Stale:
			stale++
			fmt.Printf("  STALE  %-32s %s (age %dd)\n", r.EvidenceID, r.URL, *r.AgeDays)
		case verbose:
			fmt.Printf("  OK     %-32s %s\n", r.EvidenceID, r.URL)
		}
	}

	fmt.Printf("\nChecked %d URLs: %d dead, %d stale, %d robots-denied\n",
		len(results), dead, stale, denied)
	return nil
}
