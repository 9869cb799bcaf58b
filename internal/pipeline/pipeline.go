// Package pipeline orchestrates the build-time content run: load the
// content directory, validate catalogs and pages, project structured
// markup for publishable pages, and gate publication on zero errors.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/one-dna/disclose/internal/cache"
	"github.com/one-dna/disclose/internal/llm"
	"github.com/one-dna/disclose/internal/loader"
	"github.com/one-dna/disclose/internal/model"
	"github.com/one-dna/disclose/internal/schema"
	"github.com/one-dna/disclose/internal/validate"
)

// Pipeline wires the loader, validators, projector, and optional
// summarizer behind one Run call
type Pipeline struct {
	config     *model.Config
	projector  *schema.Projector
	markups    cache.Cache
	summarizer *llm.Summarizer
	logger     *zap.Logger
	now        func() time.Time
}

// New creates a pipeline from configuration
func New(cfg *model.Config, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}

	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(cfg.LLM)
		if err != nil {
			logger.Warn("LLM summarizer disabled", zap.Error(err))
		} else {
			summarizer = s
		}
	}

	var markups cache.Cache
	if cfg.Cache.Enabled {
		markups = cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.TTL)
	}

	return &Pipeline{
		config:     cfg,
		projector:  schema.NewProjector(cfg.Site),
		markups:    markups,
		summarizer: summarizer,
		logger:     logger,
		now:        time.Now,
	}
}

// Result is the outcome of one pipeline run
type Result struct {
	Site    *loader.Site
	Report  *model.SiteReport
	Summary string // editorial LLM summary, empty unless enabled
}

// Run loads and validates a content directory. The returned report is
// complete even when the site is not publishable; rendering failed
// pages is the caller's decision to refuse, not this package's.
func (p *Pipeline) Run(ctx context.Context, contentDir string) (*Result, error) {
	asOf := p.now()

	site, err := loader.Load(contentDir)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	p.logger.Info("content loaded",
		zap.Int("pages", len(site.Pages)),
		zap.Int("evidence", site.Evidence.Len()),
		zap.Int("specifications", site.Specs.Len()),
	)

	report := model.NewSiteReport(asOf)
	report.Catalog = p.validateCatalogs(site, asOf)
	report.Pages = validatePages(ctx, site.Pages, site.Evidence, site.Specs,
		p.config.Concurrency.ValidationWorkers, asOf)
	report.Finish()

	for _, page := range report.Pages {
		for _, issue := range page.Report.Warnings() {
			p.logger.Warn("editorial follow-up",
				zap.String("locale", string(page.Locale)),
				zap.String("slug", page.Slug),
				zap.String("field", issue.Field),
				zap.String("message", issue.Message),
			)
		}
	}

	if report.Publishable {
		p.projectMarkup(site)
	} else {
		p.logger.Error("publication blocked",
			zap.String("run_id", report.RunID),
			zap.Int("errors", report.TotalErrors()),
		)
	}

	result := &Result{Site: site, Report: report}

	// Advisory only: the gate above is already decided
	if p.summarizer != nil && p.summarizer.IsEnabled() {
		summary, err := p.summarizer.Summarize(ctx, *report)
		if err != nil {
			p.logger.Warn("summary generation failed", zap.Error(err))
		} else {
			result.Summary = summary
		}
	}

	return result, nil
}

// validateCatalogs checks the evidence catalog and every specification
func (p *Pipeline) validateCatalogs(site *loader.Site, asOf time.Time) model.Report {
	report := site.Evidence.Validate(asOf)

	for _, spec := range site.Specs.All() {
		specReport := validate.Specification(spec, site.Evidence, asOf)
		report.Merge(fmt.Sprintf("specification[%s]", spec.ID), specReport)
	}
	return report
}

// projectMarkup fills the markup cache for every page of a publishable
// site, so serve-time renders hit precomputed JSON-LD
func (p *Pipeline) projectMarkup(site *loader.Site) {
	if p.markups == nil {
		return
	}

	for _, page := range site.Pages {
		markup, err := p.projector.Project(page)
		if err != nil {
			p.logger.Warn("projection skipped",
				zap.String("slug", page.PageSlug()), zap.Error(err))
			continue
		}
		data, err := schema.JSONLD(markup)
		if err != nil {
			p.logger.Warn("markup serialization failed",
				zap.String("slug", page.PageSlug()), zap.Error(err))
			continue
		}

		key := cache.MarkupKey(string(page.Meta().Language), page.PageSlug(), "primary")
		if err := p.markups.Set(key, data, p.config.Cache.TTL); err != nil {
			p.logger.Warn("markup cache write failed", zap.Error(err))
		}
	}
}

// Markup returns the cached primary JSON-LD for a page, if present
func (p *Pipeline) Markup(locale, slug string) ([]byte, bool) {
	if p.markups == nil {
		return nil, false
	}
	return p.markups.Get(cache.MarkupKey(locale, slug, "primary"))
}

// Projector exposes the projector for callers that need a specific shape
func (p *Pipeline) Projector() *schema.Projector {
	return p.projector
}
