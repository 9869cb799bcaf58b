package schema

import (
	"fmt"
	"strings"

	"github.com/one-dna/disclose/internal/model"
)

// Projector turns content pages into structured markup. It holds only
// static site identity; no clock, no network, no randomness, so the
// same page always projects to the same bytes.
type Projector struct {
	site model.SiteConfig
}

// NewProjector creates a projector for the given site identity
func NewProjector(site model.SiteConfig) *Projector {
	return &Projector{site: site}
}

// Organization projects the publishing organization
func (p *Projector) Organization() Organization {
	org := p.organization()
	org.Context = context
	org.SameAs = p.site.SameAs
	return org
}

// organization is the embedded form, without @context
func (p *Projector) organization() Organization {
	org := Organization{
		Type:        "Organization",
		Name:        p.site.OrganizationName,
		URL:         p.site.BaseURL,
		Logo:        p.site.LogoURL,
		Description: p.site.Description,
	}
	if p.site.ContactEmail != "" || p.site.ContactPhone != "" {
		org.ContactPoint = &ContactPoint{
			Type:        "ContactPoint",
			Telephone:   p.site.ContactPhone,
			Email:       p.site.ContactEmail,
			ContactType: "customer service",
		}
	}
	return org
}

// Project returns the primary markup object for any page variant
func (p *Projector) Project(page model.ContentPage) (interface{}, error) {
	switch v := page.(type) {
	case model.CoreKnowledgePage:
		return p.webPage(v.Title, v.Metadata.SEO.Description, page), nil
	case model.AudienceGuidancePage:
		return p.webPage(v.Title, v.Metadata.SEO.Description, page), nil
	case model.Article:
		return p.Article(v), nil
	case model.CountryModule:
		name := v.Metadata.SEO.Title
		return p.webPage(name, v.Metadata.SEO.Description, page), nil
	default:
		return nil, fmt.Errorf("no projection for page variant %q", page.PageType())
	}
}

// PageURL builds the canonical URL for a page
func (p *Projector) PageURL(page model.ContentPage) string {
	return fmt.Sprintf("%s/%s/%s", p.site.BaseURL, page.Meta().Language, page.PageSlug())
}

func (p *Projector) webPage(name, description string, page model.ContentPage) WebPage {
	org := p.organization()
	return WebPage{
		Context:      context,
		Type:         "WebPage",
		Name:         name,
		Description:  description,
		URL:          p.PageURL(page),
		InLanguage:   string(page.Meta().Language),
		DateModified: page.Meta().LastReviewed,
		IsPartOf: &WebSite{
			Type: "WebSite",
			Name: p.site.OrganizationName,
			URL:  p.site.BaseURL,
		},
		Publisher: &org,
	}
}

// Article projects an article page
func (p *Projector) Article(a model.Article) Article {
	org := p.organization()
	out := Article{
		Context:        context,
		Type:           "Article",
		Headline:       a.Title,
		Description:    a.Excerpt,
		URL:            p.PageURL(a),
		InLanguage:     string(a.Metadata.Language),
		DatePublished:  a.PublishedAt,
		DateModified:   a.Metadata.LastReviewed,
		Publisher:      &org,
		ArticleSection: string(a.ArticleType),
		Keywords:       joinTags(a.Tags),
	}
	if a.Author != nil {
		out.Author = &Person{Type: "Person", Name: a.Author.Name, JobTitle: a.Author.Role}
	}
	if a.FeaturedImage != nil {
		out.Image = a.FeaturedImage.Src
	}
	return out
}

// FrameworkFAQ projects a claims framework into FAQ markup. The enabling
// claims and non-guarantees become machine-readable question/answer
// pairs, so the disclosure travels with the page metadata.
func (p *Projector) FrameworkFAQ(f model.ClaimsFramework) FAQPage {
	faq := FAQPage{Context: context, Type: "FAQPage"}

	if len(f.WhatThisEnables) > 0 {
		faq.MainEntity = append(faq.MainEntity, Question{
			Type: "Question",
			Name: "What does this enable?",
			AcceptedAnswer: Answer{
				Type: "Answer",
				Text: joinSentences(f.WhatThisEnables),
			},
		})
	}
	if len(f.WhatThisDoesNotGuarantee) > 0 {
		faq.MainEntity = append(faq.MainEntity, Question{
			Type: "Question",
			Name: "What does this not guarantee?",
			AcceptedAnswer: Answer{
				Type: "Answer",
				Text: joinSentences(f.WhatThisDoesNotGuarantee),
			},
		})
	}
	if len(f.LocalConditions) > 0 {
		faq.MainEntity = append(faq.MainEntity, Question{
			Type: "Question",
			Name: "Which local conditions affect outcomes?",
			AcceptedAnswer: Answer{
				Type: "Answer",
				Text: joinSentences(f.LocalConditions),
			},
		})
	}
	return faq
}

// Product projects a specification object
func (p *Projector) Product(s model.SpecificationObject) Product {
	org := p.organization()
	out := Product{
		Context:      context,
		Type:         "Product",
		Name:         s.Title,
		Description:  s.ApplicationContext,
		URL:          fmt.Sprintf("%s/%s/specifications/%s", p.site.BaseURL, s.Metadata.Language, s.Slug),
		Brand:        &Brand{Type: "Brand", Name: p.site.OrganizationName},
		Manufacturer: &org,
		Category:     string(s.Category),
	}
	for _, param := range s.TechnicalParameters {
		out.AdditionalProperty = append(out.AdditionalProperty, PropertyValue{
			Type:     "PropertyValue",
			Name:     param.Name,
			Value:    param.Value,
			UnitText: param.Unit,
		})
	}
	return out
}

// HowToSteps projects instruction-shaped content
func (p *Projector) HowToSteps(name, description, totalTime string, steps []model.ContentSection) HowTo {
	out := HowTo{
		Context:     context,
		Type:        "HowTo",
		Name:        name,
		Description: description,
		TotalTime:   totalTime,
	}
	position := 0
	for _, section := range steps {
		if section.Type != model.SectionText && section.Type != model.SectionHeading {
			continue
		}
		position++
		out.Step = append(out.Step, HowToStep{
			Type:     "HowToStep",
			Position: position,
			Name:     section.Heading,
			Text:     section.Text,
		})
	}
	return out
}

// Certification projects certification evidence. Other evidence types
// have no schema.org shape; callers get false and embed nothing.
func (p *Projector) Certification(e model.EvidenceObject) (Certification, bool) {
	if e.EvidenceType != model.EvidenceCertification {
		return Certification{}, false
	}
	out := Certification{
		Context:                     context,
		Type:                        "Certification",
		Name:                        e.Title,
		Description:                 e.Description,
		CertificationIdentification: e.ReferenceNumber,
		DateCreated:                 e.IssueDate,
		Expires:                     e.ExpirationDate,
		URL:                         e.DocumentURL,
	}
	if e.IssuingOrganization != "" {
		out.IssuedBy = &Organization{Type: "Organization", Name: e.IssuingOrganization}
	}
	return out, true
}

// Breadcrumbs projects a breadcrumb trail from (name, href) pairs
func (p *Projector) Breadcrumbs(items []BreadcrumbItem) BreadcrumbList {
	out := BreadcrumbList{Context: context, Type: "BreadcrumbList"}
	for i, item := range items {
		out.ItemListElement = append(out.ItemListElement, ListItem{
			Type:     "ListItem",
			Position: i + 1,
			Name:     item.Name,
			Item:     p.site.BaseURL + item.Href,
		})
	}
	return out
}

// BreadcrumbItem is one (name, href) input pair for Breadcrumbs
type BreadcrumbItem struct {
	Name string
	Href string
}

func joinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

func joinSentences(items []string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(item)
		if !strings.HasSuffix(item, ".") {
			b.WriteString(".")
		}
	}
	return b.String()
}
