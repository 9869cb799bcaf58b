package validate

import (
	"fmt"
	"time"

	"github.com/one-dna/disclose/internal/catalog"
	"github.com/one-dna/disclose/internal/i18n"
	"github.com/one-dna/disclose/internal/model"
)

// Page validates a content page of any variant: shared metadata rules
// first, then the variant's own rules, then the embedded claims
// framework where the variant carries one.
func Page(page model.ContentPage, evidence *catalog.Evidence, specs *catalog.Specifications, asOf time.Time) model.Report {
	var report model.Report

	if page.PageID() == "" {
		report.AddError("id", "page id is required")
	}

	validateMetadata(&report, page.Meta(), evidence, asOf)

	switch p := page.(type) {
	case model.CoreKnowledgePage:
		validateCoreKnowledge(&report, p, evidence, specs)
	case model.AudienceGuidancePage:
		validateAudienceGuidance(&report, p, evidence, specs)
	case model.Article:
		validateArticle(&report, p, evidence, specs)
	case model.CountryModule:
		validateCountryModule(&report, p)
	default:
		report.AddError("type", "unknown page variant %q", page.PageType())
	}

	if f := page.Framework(); f != nil {
		report.Merge("claimsFramework", Claims(*f, evidence, asOf))
	}

	return report
}

func validateMetadata(report *model.Report, meta model.ContentMetadata, evidence *catalog.Evidence, asOf time.Time) {
	if !i18n.IsValidLocale(string(meta.Language)) {
		report.AddError("metadata.language", "unknown locale %q", meta.Language)
	}
	if meta.Country != "" && !i18n.IsValidCountry(string(meta.Country)) {
		report.AddError("metadata.country", "unknown country %q", meta.Country)
	}
	for i, audience := range meta.Audiences {
		if !model.IsValidAudience(audience) {
			report.AddError(fmt.Sprintf("metadata.audiences[%d]", i), "unknown audience %q", audience)
		}
	}
	for i, theme := range meta.Themes {
		if !model.IsValidTheme(theme) {
			report.AddError(fmt.Sprintf("metadata.themes[%d]", i), "unknown theme %q", theme)
		}
	}

	if meta.ContentOwner == "" {
		report.AddError("metadata.contentOwner", "content owner is required")
	}
	if meta.LastReviewed == "" {
		report.AddError("metadata.lastReviewed", "last reviewed date is required")
	} else if _, err := time.Parse("2006-01-02", meta.LastReviewed); err != nil {
		report.AddWarning("metadata.lastReviewed", "unparseable date %q", meta.LastReviewed)
	}

	if meta.SEO.Title == "" {
		report.AddError("metadata.seo.title", "seo title is required")
	}
	if meta.SEO.Description == "" {
		report.AddError("metadata.seo.description", "seo description is required")
	}

	for i, ref := range meta.EvidenceRefs {
		field := fmt.Sprintf("metadata.evidenceRefs[%d]", i)
		ev, ok := evidence.Resolve(ref)
		if !ok {
			report.AddError(field, "unresolved evidence reference %q", ref)
			continue
		}
		if status := ev.StatusAt(asOf); status != model.StatusVerified {
			report.AddWarning(field, "evidence %q is %s, not verified", ref, status)
		}
	}
}

func validateSections(report *model.Report, field string, sections []model.ContentSection, evidence *catalog.Evidence, specs *catalog.Specifications) {
	for i, section := range sections {
		f := fmt.Sprintf("%s[%d]", field, i)
		switch section.Type {
		case model.SectionEvidenceBlock:
			if section.EvidenceRef == "" {
				report.AddError(f+".evidenceRef", "evidence block needs an evidence reference")
			} else if _, ok := evidence.Resolve(section.EvidenceRef); !ok {
				report.AddError(f+".evidenceRef", "unresolved evidence reference %q", section.EvidenceRef)
			}
		case model.SectionSpecificationBlock:
			if section.SpecRef == "" {
				report.AddError(f+".specRef", "specification block needs a specification reference")
			} else if _, ok := specs.Resolve(section.SpecRef); !ok {
				report.AddError(f+".specRef", "unresolved specification reference %q", section.SpecRef)
			}
		case model.SectionMedia:
			if section.Media == nil {
				report.AddError(f+".media", "media section has no asset")
			} else if section.Media.Alt == "" {
				report.AddWarning(f+".media.alt", "media asset has no alt text")
			}
		}
	}
}

func validateCoreKnowledge(report *model.Report, p model.CoreKnowledgePage, evidence *catalog.Evidence, specs *catalog.Specifications) {
	if p.Slug == "" {
		report.AddError("slug", "slug is required")
	}
	if p.Title == "" {
		report.AddError("title", "title is required")
	}
	if p.Lead == "" {
		report.AddError("lead", "lead paragraph is required")
	}
	validateSections(report, "sections", p.Sections, evidence, specs)
}

func validateAudienceGuidance(report *model.Report, p model.AudienceGuidancePage, evidence *catalog.Evidence, specs *catalog.Specifications) {
	if p.Slug == "" {
		report.AddError("slug", "slug is required")
	}
	if p.Title == "" {
		report.AddError("title", "title is required")
	}
	if !model.IsValidAudience(p.TargetAudience) {
		report.AddError("targetAudience", "unknown audience %q", p.TargetAudience)
	}
	if p.ProblemStatement == "" {
		report.AddError("problemStatement", "problem statement is required")
	}
	if p.SolutionOverview == "" {
		report.AddError("solutionOverview", "solution overview is required")
	}
	for i, ref := range p.Specifications {
		if _, ok := specs.Resolve(ref); !ok {
			report.AddError(fmt.Sprintf("specifications[%d]", i),
				"unresolved specification reference %q", ref)
		}
	}
	for i, section := range p.GuidanceSections {
		f := fmt.Sprintf("guidanceSections[%d]", i)
		if section.Title == "" {
			report.AddError(f+".title", "guidance section title is required")
		}
		for j, ref := range section.RelevantEvidence {
			if _, ok := evidence.Resolve(ref); !ok {
				report.AddError(fmt.Sprintf("%s.relevantEvidence[%d]", f, j),
					"unresolved evidence reference %q", ref)
			}
		}
	}
}

func validateArticle(report *model.Report, p model.Article, evidence *catalog.Evidence, specs *catalog.Specifications) {
	if p.Slug == "" {
		report.AddError("slug", "slug is required")
	}
	if p.Title == "" {
		report.AddError("title", "title is required")
	}
	if p.Excerpt == "" {
		report.AddError("excerpt", "excerpt is required")
	}
	switch p.ArticleType {
	case model.ArticleInsight, model.ArticleCaseStudy, model.ArticleNews, model.ArticleTechnical:
	default:
		report.AddError("articleType", "unknown article type %q", p.ArticleType)
	}
	if p.PublishedAt == "" {
		report.AddError("publishedAt", "publication date is required")
	} else if _, err := time.Parse("2006-01-02", p.PublishedAt); err != nil {
		report.AddWarning("publishedAt", "unparseable date %q", p.PublishedAt)
	}
	validateSections(report, "content", p.Content, evidence, specs)
}

func validateCountryModule(report *model.Report, p model.CountryModule) {
	if !i18n.IsValidCountry(string(p.Country)) {
		report.AddError("country", "unknown country %q", p.Country)
	}
	if p.RegulatoryContext.Overview == "" {
		report.AddError("regulatoryContext.overview", "regulatory overview is required")
	}
	if len(p.LegalModules) == 0 {
		report.AddError("legalModules", "a country module needs at least one legal module")
	}
	for i, legal := range p.LegalModules {
		f := fmt.Sprintf("legalModules[%d]", i)
		switch legal.Type {
		case model.LegalPrivacyPolicy, model.LegalCookiePolicy, model.LegalTerms,
			model.LegalDisclaimer, model.LegalImprint:
		default:
			report.AddError(f+".type", "unknown legal module type %q", legal.Type)
		}
		if legal.Content == "" {
			report.AddError(f+".content", "legal module content is required")
		}
	}
	for i, standard := range p.LocalStandards {
		f := fmt.Sprintf("localStandards[%d]", i)
		switch standard.Compliance {
		case model.ComplianceFull, model.CompliancePartial, model.CompliancePending:
		default:
			report.AddError(f+".compliance", "unknown compliance level %q", standard.Compliance)
		}
	}
}
