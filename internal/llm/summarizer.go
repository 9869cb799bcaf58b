package llm

import (
	"context"
	"fmt"

	"github.com/one-dna/disclose/internal/model"
)

// Summarizer wraps a provider behind the enabled/disabled decision
type Summarizer struct {
	provider Provider
	config   model.LLMConfig
}

// NewSummarizer creates a summarizer for the configured provider.
// An empty provider name yields a disabled summarizer, not an error.
func NewSummarizer(config model.LLMConfig) (*Summarizer, error) {
	if config.Provider == "" {
		return &Summarizer{config: config}, nil
	}

	switch config.Provider {
	case "openai":
		provider, err := NewOpenAIProvider(config)
		if err != nil {
			return nil, err
		}
		return &Summarizer{provider: provider, config: config}, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", config.Provider)
	}
}

// IsEnabled reports whether a provider is configured
func (s *Summarizer) IsEnabled() bool {
	return s.provider != nil
}

// Summarize generates an editorial summary of a site report
func (s *Summarizer) Summarize(ctx context.Context, report model.SiteReport) (string, error) {
	if s.provider == nil {
		return "", fmt.Errorf("no LLM provider configured")
	}

	resp, err := s.provider.Summarize(ctx, SummarizeRequest{
		Report:    report,
		Model:     s.config.Model,
		MaxTokens: s.config.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	return resp.Summary, nil
}
