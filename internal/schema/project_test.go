package schema

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/one-dna/disclose/internal/i18n"
	"github.com/one-dna/disclose/internal/model"
)

func testSite() model.SiteConfig {
	return model.SiteConfig{
		BaseURL:          "https://www.one-dna.com",
		OrganizationName: "ONE-DNA",
		LogoURL:          "https://www.one-dna.com/images/logo.png",
		Description:      "Circularity from the first molecule.",
		ContactEmail:     "info@one-dna.com",
		SameAs:           []string{"https://www.linkedin.com/company/one-dna"},
	}
}

func corePage() model.CoreKnowledgePage {
	return model.CoreKnowledgePage{
		ID:   "p1",
		Slug: "what-is-circularity",
		Metadata: model.ContentMetadata{
			Language:     i18n.LocaleEN,
			LastReviewed: "2024-06-01",
			ContentOwner: "team",
			SEO: model.SEOMetadata{
				Title:       "What is circularity?",
				Description: "How mono-material design enables recycling.",
			},
		},
		Title: "What is circularity?",
		Lead:  "Lead.",
		ClaimsFramework: model.ClaimsFramework{
			WhatThisEnables:          []string{"mono-material recycling"},
			WhatThisDoesNotGuarantee: []string{"local recycling capacity"},
		},
	}
}

func TestProject_IdempotentBytes(t *testing.T) {
	// Projecting the same unchanged page twice must yield byte-identical
	// markup; caching and snapshot tests depend on it
	p := NewProjector(testSite())
	page := corePage()

	first, err := p.Project(page)
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.Project(page)
	if err != nil {
		t.Fatal(err)
	}

	a, err := JSONLD(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := JSONLD(second)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(a, b) {
		t.Errorf("projection not byte-stable:\n%s\n%s", a, b)
	}
}

func TestProject_WebPageShape(t *testing.T) {
	p := NewProjector(testSite())

	got, err := p.Project(corePage())
	if err != nil {
		t.Fatal(err)
	}

	page, ok := got.(WebPage)
	if !ok {
		t.Fatalf("expected WebPage, got %T", got)
	}

	want := WebPage{
		Context:      "https://schema.org",
		Type:         "WebPage",
		Name:         "What is circularity?",
		Description:  "How mono-material design enables recycling.",
		URL:          "https://www.one-dna.com/en/what-is-circularity",
		InLanguage:   "en",
		DateModified: "2024-06-01",
		IsPartOf: &WebSite{
			Type: "WebSite",
			Name: "ONE-DNA",
			URL:  "https://www.one-dna.com",
		},
		Publisher: &Organization{
			Type:        "Organization",
			Name:        "ONE-DNA",
			URL:         "https://www.one-dna.com",
			Logo:        "https://www.one-dna.com/images/logo.png",
			Description: "Circularity from the first molecule.",
			ContactPoint: &ContactPoint{
				Type:        "ContactPoint",
				Email:       "info@one-dna.com",
				ContactType: "customer service",
			},
		},
	}

	if diff := cmp.Diff(want, page); diff != "" {
		t.Errorf("projection mismatch (-want +got):\n%s", diff)
	}
}

func TestProject_Article(t *testing.T) {
	p := NewProjector(testSite())

	article := model.Article{
		ID:   "a1",
		Slug: "inside-the-polymer",
		Metadata: model.ContentMetadata{
			Language:     i18n.LocaleDE,
			LastReviewed: "2024-07-01",
			SEO:          model.SEOMetadata{Title: "t", Description: "d"},
		},
		Title:       "Inside the polymer",
		ArticleType: model.ArticleTechnical,
		PublishedAt: "2024-05-01",
		Author:      &model.Author{Name: "A. Author", Role: "Materials Lead"},
		Excerpt:     "A technical look at the polymer family.",
		Tags:        []string{"lifecycle", "technology"},
	}

	got := p.Article(article)

	if got.URL != "https://www.one-dna.com/de/inside-the-polymer" {
		t.Errorf("URL = %q", got.URL)
	}
	if got.Keywords != "lifecycle, technology" {
		t.Errorf("Keywords = %q", got.Keywords)
	}
	if got.Author == nil || got.Author.Name != "A. Author" {
		t.Errorf("Author = %+v", got.Author)
	}
	if got.DatePublished != "2024-05-01" {
		t.Errorf("DatePublished = %q", got.DatePublished)
	}
}

func TestFrameworkFAQ(t *testing.T) {
	p := NewProjector(testSite())

	faq := p.FrameworkFAQ(model.ClaimsFramework{
		WhatThisEnables:          []string{"mono-material recycling", "take-back logistics"},
		WhatThisDoesNotGuarantee: []string{"recycling in every municipality."},
		LocalConditions:          []string{"collection infrastructure varies"},
	})

	if len(faq.MainEntity) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(faq.MainEntity))
	}

	enables := faq.MainEntity[0].AcceptedAnswer.Text
	if enables != "mono-material recycling. take-back logistics." {
		t.Errorf("enables answer = %q", enables)
	}

	// Already-terminated sentences are not double-dotted
	notGuaranteed := faq.MainEntity[1].AcceptedAnswer.Text
	if strings.Contains(notGuaranteed, "..") {
		t.Errorf("double period in %q", notGuaranteed)
	}
}

func TestProduct_Parameters(t *testing.T) {
	p := NewProjector(testSite())

	spec := model.SpecificationObject{
		ID:                 "S1",
		Slug:               "tile-spec",
		Metadata:           model.ContentMetadata{Language: i18n.LocaleEN},
		Title:              "Modular tile specification",
		Category:           model.SpecTechnical,
		ApplicationContext: "Commercial interiors",
		TechnicalParameters: []model.TechnicalParameter{
			{Name: "total thickness", Value: "6.5", Unit: "mm", TestMethod: "ISO 1765"},
		},
	}

	got := p.Product(spec)

	if got.URL != "https://www.one-dna.com/en/specifications/tile-spec" {
		t.Errorf("URL = %q", got.URL)
	}
	if len(got.AdditionalProperty) != 1 || got.AdditionalProperty[0].UnitText != "mm" {
		t.Errorf("AdditionalProperty = %+v", got.AdditionalProperty)
	}
}

func TestCertification_OnlyForCertificationEvidence(t *testing.T) {
	p := NewProjector(testSite())

	cert := model.EvidenceObject{
		ID:                  "E1",
		EvidenceType:        model.EvidenceCertification,
		Title:               "Cradle to Cradle Certified",
		ReferenceNumber:     "C2C-1234",
		IssuingOrganization: "C2C Products Innovation Institute",
		IssueDate:           "2023-01-01",
		ExpirationDate:      "2026-01-01",
	}

	got, ok := p.Certification(cert)
	if !ok {
		t.Fatal("expected certification projection")
	}
	if got.IssuedBy == nil || got.IssuedBy.Name != "C2C Products Innovation Institute" {
		t.Errorf("IssuedBy = %+v", got.IssuedBy)
	}

	epd := cert
	epd.EvidenceType = model.EvidenceEPD
	if _, ok := p.Certification(epd); ok {
		t.Error("non-certification evidence must not project")
	}
}

func TestBreadcrumbs(t *testing.T) {
	p := NewProjector(testSite())

	got := p.Breadcrumbs([]BreadcrumbItem{
		{Name: "Home", Href: "/en"},
		{Name: "Knowledge", Href: "/en/knowledge"},
	})

	if len(got.ItemListElement) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got.ItemListElement))
	}
	if got.ItemListElement[1].Position != 2 {
		t.Errorf("position = %d", got.ItemListElement[1].Position)
	}
	if got.ItemListElement[1].Item != "https://www.one-dna.com/en/knowledge" {
		t.Errorf("item = %q", got.ItemListElement[1].Item)
	}
}

func TestOrganization_TopLevelHasContext(t *testing.T) {
	p := NewProjector(testSite())

	org := p.Organization()
	if org.Context != "https://schema.org" {
		t.Errorf("Context = %q", org.Context)
	}
	if len(org.SameAs) != 1 {
		t.Errorf("SameAs = %v", org.SameAs)
	}

	data, err := JSONLD(org)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), `{"@context":"https://schema.org","@type":"Organization"`) {
		t.Errorf("unexpected JSON-LD prefix: %s", data)
	}
}
