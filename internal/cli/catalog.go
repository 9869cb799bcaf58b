package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/one-dna/disclose/internal/loader"
	"github.com/one-dna/disclose/internal/model"
)

var (
	catalogAsOf string
	catalogJSON bool
)

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog <content-dir>",
	Short: "List evidence objects and specifications with derived status",
	Long: `Catalog loads the evidence and specification catalogs and lists every
object. Evidence status is derived against a reference date: a verified
item whose expirationDate has passed is shown as expired without
mutating the stored record.

The reference date defaults to now and can be overridden with --as-of
to preview upcoming expirations.`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&catalogAsOf, "as-of", "", "reference date for expiry (YYYY-MM-DD, default: today)")
	catalogCmd.Flags().BoolVar(&catalogJSON, "json", false, "emit the catalog listing as JSON")

	rootCmd.AddCommand(catalogCmd)
}

// catalogEntry is one evidence row in the listing
type catalogEntry struct {
	ID             string                   `json:"id"`
	Type           model.EvidenceType       `json:"type"`
	Title          string                   `json:"title"`
	Issuer         string                   `json:"issuer,omitempty"`
	ExpirationDate string                   `json:"expiration_date,omitempty"`
	StoredStatus   model.VerificationStatus `json:"stored_status"`
	DerivedStatus  model.VerificationStatus `json:"derived_status"`
}

func runCatalog(cmd *cobra.Command, args []string) error {
	asOf := time.Now()
	if catalogAsOf != "" {
		t, err := time.Parse("2006-01-02", catalogAsOf)
		if err != nil {
			return fmt.Errorf("invalid --as-of date %q: %w", catalogAsOf, err)
		}
		asOf = t
	}

	site, err := loader.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	entries := make([]catalogEntry, 0, site.Evidence.Len())
	for _, e := range site.Evidence.All() {
		entries = append(entries, catalogEntry{
			ID:             e.ID,
			Type:           e.EvidenceType,
			Title:          e.Title,
			Issuer:         e.IssuingOrganization,
			ExpirationDate: e.ExpirationDate,
			StoredStatus:   e.VerificationStatus,
			DerivedStatus:  e.StatusAt(asOf),
		})
	}

	if catalogJSON {
		out := struct {
			AsOf           string               `json:"as_of"`
			Evidence       []catalogEntry       `json:"evidence"`
			Specifications []specificationEntry `json:"specifications"`
		}{
			AsOf:           asOf.Format("2006-01-02"),
			Evidence:       entries,
			Specifications: specEntries(site),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("Evidence (%d objects, as of %s):\n", len(entries), asOf.Format("2006-01-02"))
	for _, entry := range entries {
		status := string(entry.DerivedStatus)
		if entry.DerivedStatus != entry.StoredStatus {
			status = fmt.Sprintf("%s (stored: %s)", entry.DerivedStatus, entry.StoredStatus)
		}
		fmt.Printf("  %-32s %-28s %s\n", entry.ID, entry.Type, status)
	}

	fmt.Printf("\nSpecifications (%d objects):\n", site.Specs.Len())
	for _, s := range site.Specs.All() {
		fmt.Printf("  %-32s %-28s %s\n", s.ID, s.Category, s.Title)
	}
	return nil
}

// specificationEntry is one specification row in the JSON listing
type specificationEntry struct {
	ID       string             `json:"id"`
	Category model.SpecCategory `json:"category"`
	Title    string             `json:"title"`
	Evidence []string           `json:"evidence_refs,omitempty"`
}

func specEntries(site *loader.Site) []specificationEntry {
	entries := make([]specificationEntry, 0, site.Specs.Len())
	for _, s := range site.Specs.All() {
		entries = append(entries, specificationEntry{
			ID:       s.ID,
			Category: s.Category,
			Title:    s.Title,
			Evidence: s.EvidenceRefs,
		})
	}
	return entries
}
