package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/one-dna/disclose/internal/loader"
)

var specExportOut string

// specCmd groups specification subcommands
var specCmd = &cobra.Command{
	Use:   "spec",
	Short: "Work with copy-ready specification blocks",
}

// specExportCmd represents the spec export command
var specExportCmd = &cobra.Command{
	Use:   "export <content-dir> <id>",
	Short: "Export one specification text block verbatim",
	Long: `Export prints the specificationText of one specification object exactly
as authored, byte for byte, followed by its technical parameters and the
mandatory verification disclaimer.

The text is meant to be pasted into tender or planning documents; the
disclaimer always travels with it.`,
	Args: cobra.ExactArgs(2),
	RunE: runSpecExport,
}

func init() {
	specExportCmd.Flags().StringVarP(&specExportOut, "output", "o", "", "write the export to a file instead of stdout")

	specCmd.AddCommand(specExportCmd)
	rootCmd.AddCommand(specCmd)
}

func runSpecExport(cmd *cobra.Command, args []string) error {
	site, err := loader.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	spec, ok := site.Specs.Resolve(args[1])
	if !ok {
		return fmt.Errorf("no specification %q (known: %s)", args[1], strings.Join(site.Specs.IDs(), ", "))
	}

	var b strings.Builder
	b.WriteString(spec.SpecificationText)
	if !strings.HasSuffix(spec.SpecificationText, "\n") {
		b.WriteByte('\n')
	}

	if len(spec.TechnicalParameters) > 0 {
		b.WriteByte('\n')
		for _, p := range spec.TechnicalParameters {
			b.WriteString(fmt.Sprintf("%s: %s", p.Name, p.Value))
			if p.Unit != "" {
				b.WriteString(" " + p.Unit)
			}
			if p.TestMethod != "" {
				b.WriteString(" (" + p.TestMethod + ")")
			}
			b.WriteByte('\n')
		}
	}

	b.WriteByte('\n')
	b.WriteString(spec.Disclaimer)
	b.WriteByte('\n')

	if specExportOut != "" {
		return os.WriteFile(specExportOut, []byte(b.String()), 0o644)
	}
	fmt.Print(b.String())
	return nil
}
