package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/one-dna/disclose/internal/catalog"
	"github.com/one-dna/disclose/internal/i18n"
	"github.com/one-dna/disclose/internal/model"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

const evidenceYAML = `id: E1
evidenceType: certification
title: Cradle to Cradle Certified
description: Product certification
verificationStatus: verified
`

const goodPageYAML = `id: page-circularity
type: core-knowledge
slug: what-is-circularity
metadata:
  language: en
  audiences: [architect]
  themes: [circularity]
  lastReviewed: "2024-06-01"
  contentOwner: sustainability-team
  seo:
    title: What is circularity?
    description: How mono-material design enables recycling.
title: What is circularity?
lead: Circularity starts at the first molecule.
claimsFramework:
  problemFraming: Hard to recycle.
  whatThisEnables: [mono-material recycling]
  whatThisDoesNotGuarantee: [local capacity]
  evidenceAndScope:
    - claim: mono-material
      evidenceRef: E1
`

const badPageYAML = `id: page-greenwash
type: core-knowledge
slug: pure-benefit
metadata:
  language: en
  lastReviewed: "2024-06-01"
  contentOwner: marketing
  seo:
    title: Pure benefit
    description: Benefits without disclosure.
title: Pure benefit
lead: Everything is great.
claimsFramework:
  whatThisEnables: [everything]
  whatThisDoesNotGuarantee: []
  evidenceAndScope: []
`

func goodContentDir(t *testing.T) string {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "evidence", "e1.yaml"), evidenceYAML)
	writeFile(t, filepath.Join(dir, "pages", "en", "circularity.yaml"), goodPageYAML)
	return dir
}

func TestPipeline_PublishableSite(t *testing.T) {
	p := New(model.DefaultConfig(), zap.NewNop())

	result, err := p.Run(context.Background(), goodContentDir(t))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !result.Report.Publishable {
		t.Fatalf("expected publishable site, errors: %+v", result.Report)
	}
	if result.Report.RunID == "" {
		t.Error("expected a run id")
	}

	// Publishable pages get precomputed markup
	markup, ok := p.Markup("en", "what-is-circularity")
	if !ok {
		t.Fatal("expected cached markup for validated page")
	}
	if string(markup)[0] != '{' {
		t.Errorf("markup is not JSON: %s", markup)
	}
}

func TestPipeline_BlockedSiteGetsNoMarkup(t *testing.T) {
	dir := goodContentDir(t)
	writeFile(t, filepath.Join(dir, "pages", "en", "greenwash.yaml"), badPageYAML)

	p := New(model.DefaultConfig(), zap.NewNop())
	result, err := p.Run(context.Background(), dir)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Report.Publishable {
		t.Fatal("site with an unpaired enabling claim must not publish")
	}
	// Two errors on the bad page: empty non-guarantees, missing pairing
	if got := result.Report.TotalErrors(); got != 2 {
		t.Errorf("TotalErrors = %d, want 2", got)
	}

	// A blocked site publishes nothing, including the clean pages
	if _, ok := p.Markup("en", "what-is-circularity"); ok {
		t.Error("blocked site must not precompute markup")
	}
}

func TestValidatePages_KeepsOrder(t *testing.T) {
	evidence := catalog.NewEvidence()
	evidence.Freeze()
	specs := catalog.NewSpecifications()
	specs.Freeze()

	pages := []model.ContentPage{
		model.Article{ID: "a1", Slug: "one", Metadata: articleMeta(), Title: "t", ArticleType: model.ArticleNews, PublishedAt: "2024-01-01", Excerpt: "e"},
		model.Article{ID: "a2", Slug: "two", Metadata: articleMeta(), Title: "t", ArticleType: model.ArticleNews, PublishedAt: "2024-01-01", Excerpt: "e"},
		model.Article{ID: "a3", Slug: "three", Metadata: articleMeta(), Title: "t", ArticleType: model.ArticleNews, PublishedAt: "2024-01-01", Excerpt: "e"},
	}

	reports := validatePages(context.Background(), pages, evidence, specs, 2, time.Now())

	if len(reports) != 3 {
		t.Fatalf("expected 3 reports, got %d", len(reports))
	}
	for i, want := range []string{"a1", "a2", "a3"} {
		if reports[i].PageID != want {
			t.Errorf("reports[%d].PageID = %q, want %q", i, reports[i].PageID, want)
		}
	}
}

func articleMeta() model.ContentMetadata {
	return model.ContentMetadata{
		Language:     i18n.LocaleEN,
		LastReviewed: "2024-06-01",
		ContentOwner: "team",
		SEO:          model.SEOMetadata{Title: "t", Description: "d"},
	}
}
