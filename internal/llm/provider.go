// Package llm generates optional editorial summaries of validation
// reports. Summaries are advisory text for the content team and NEVER
// affect validation outcomes or the publish gate.
package llm

import (
	"context"
	"fmt"

	"github.com/one-dna/disclose/internal/model"
)

// Provider is an LLM backend capable of summarizing a site report
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize generates an editorial summary of the report
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)

	// IsAvailable checks if the provider is configured and reachable
	IsAvailable(ctx context.Context) bool
}

// SummarizeRequest is the input for report summarization
type SummarizeRequest struct {
	// Report is the site validation report to summarize
	Report model.SiteReport

	// Prompt overrides the default prompt when non-empty
	Prompt string

	// Model selects a provider-specific model
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// SummarizeResponse is the generated summary
type SummarizeResponse struct {
	Summary    string
	Model      string
	TokensUsed int
}

// BuildPrompt constructs the default summarization prompt. The model is
// told to describe findings only; deciding what blocks publication is
// the validator's job and already settled by the time this runs.
func BuildPrompt(report model.SiteReport) string {
	prompt := fmt.Sprintf(`You are summarizing a content compliance validation report for an editorial team.

RULES:
1. Describe findings only. Do not judge whether claims are true.
2. Do not invent pages, evidence ids, or findings not listed below.
3. Group related findings so an editor can fix them in one pass.
4. Blocking errors come first, warnings second.

Report:
- Run: %s
- Pages validated: %d
- Blocking errors: %d
- Warnings: %d
- Publishable: %v

Findings:
`, report.RunID, len(report.Pages), report.TotalErrors(), report.TotalWarnings(), report.Publishable)

	const maxFindings = 30
	count := 0
pages:
	for _, page := range report.Pages {
		for _, issue := range page.Report.Issues {
			if count >= maxFindings {
				break pages
			}
			prompt += fmt.Sprintf("- [%s] %s/%s %s: %s\n", issue.Severity, page.Locale, page.Slug, issue.Field, issue.Message)
			count++
		}
	}
	for _, issue := range report.Catalog.Issues {
		if count >= maxFindings {
			break
		}
		prompt += fmt.Sprintf("- [%s] catalog %s: %s\n", issue.Severity, issue.Field, issue.Message)
		count++
	}
	if total := report.TotalErrors() + report.TotalWarnings(); total > count {
		prompt += fmt.Sprintf("... and %d more findings\n", total-count)
	}

	prompt += "\nProvide a 4-6 sentence summary for the editorial team."
	return prompt
}
