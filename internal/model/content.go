package model

import "github.com/one-dna/disclose/internal/i18n"

// PageType discriminates the content page union
type PageType string

const (
	PageCoreKnowledge    PageType = "core-knowledge"
	PageAudienceGuidance PageType = "audience-guidance"
	PageArticle          PageType = "article"
	PageCountryModule    PageType = "country-module"
)

// ContentPage is the tagged union of renderable page variants. Each
// variant carries only its own fields; variant-specific rules (such as
// which pages must embed a claims framework) live in the validators.
type ContentPage interface {
	// PageType returns the discriminator tag
	PageType() PageType

	// PageID returns the stable content id
	PageID() string

	// PageSlug returns the URL slug (the country code for country modules)
	PageSlug() string

	// Meta returns the shared content metadata
	Meta() ContentMetadata

	// Framework returns the embedded claims framework, nil if the
	// variant does not carry one
	Framework() *ClaimsFramework
}

// Audience identifies who a piece of content is written for
type Audience string

const (
	AudiencePolicymaker  Audience = "policymaker"
	AudienceArchitect    Audience = "architect"
	AudienceDesigner     Audience = "designer"
	AudienceSpecifier    Audience = "specifier"
	AudienceProjectOwner Audience = "project-owner"
	AudienceRetailer     Audience = "retailer"
	AudiencePartner      Audience = "partner"
	AudienceContractor   Audience = "contractor"
	AudienceMunicipality Audience = "municipality"
	AudienceGeneral      Audience = "general"
)

// IsValidAudience reports whether a is a known audience
func IsValidAudience(a Audience) bool {
	switch a {
	case AudiencePolicymaker, AudienceArchitect, AudienceDesigner,
		AudienceSpecifier, AudienceProjectOwner, AudienceRetailer,
		AudiencePartner, AudienceContractor, AudienceMunicipality,
		AudienceGeneral:
		return true
	}
	return false
}

// Theme is a thematic content category
type Theme string

const (
	ThemeSustainability Theme = "sustainability"
	ThemeCircularity    Theme = "circularity"
	ThemeRecyclability  Theme = "recyclability"
	ThemeTakeBack       Theme = "take-back"
	ThemeSpecifications Theme = "specifications"
	ThemeInstallation   Theme = "installation"
	ThemeMaintenance    Theme = "maintenance"
	ThemePolicy         Theme = "policy"
	ThemeProcurement    Theme = "procurement"
	ThemeCertification  Theme = "certification"
	ThemeLifecycle      Theme = "lifecycle"
	ThemeTechnology     Theme = "technology"
)

// IsValidTheme reports whether t is a known theme
func IsValidTheme(t Theme) bool {
	switch t {
	case ThemeSustainability, ThemeCircularity, ThemeRecyclability,
		ThemeTakeBack, ThemeSpecifications, ThemeInstallation,
		ThemeMaintenance, ThemePolicy, ThemeProcurement,
		ThemeCertification, ThemeLifecycle, ThemeTechnology:
		return true
	}
	return false
}

// ContentMetadata is shared by every page variant. Language is the
// single primary locale; Country is optional and defaults to global.
type ContentMetadata struct {
	Language     i18n.Locale  `json:"language" yaml:"language"`
	Country      i18n.Country `json:"country,omitempty" yaml:"country,omitempty"`
	Audiences    []Audience   `json:"audiences" yaml:"audiences"`
	Themes       []Theme      `json:"themes" yaml:"themes"`
	EvidenceRefs []string     `json:"evidenceRefs,omitempty" yaml:"evidenceRefs,omitempty"`
	LastReviewed string       `json:"lastReviewed" yaml:"lastReviewed"` // ISO 8601 date
	ContentOwner string       `json:"contentOwner" yaml:"contentOwner"`
	SEO          SEOMetadata  `json:"seo" yaml:"seo"`
}

// SEOMetadata carries the page's search metadata
type SEOMetadata struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Keywords    []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	OGImage     string   `json:"ogImage,omitempty" yaml:"ogImage,omitempty"`
	NoIndex     bool     `json:"noIndex,omitempty" yaml:"noIndex,omitempty"`
}

// SectionType classifies a content section body
type SectionType string

const (
	SectionText               SectionType = "text"
	SectionHeading            SectionType = "heading"
	SectionList               SectionType = "list"
	SectionQuote              SectionType = "quote"
	SectionCallout            SectionType = "callout"
	SectionEvidenceBlock      SectionType = "evidence-block"
	SectionSpecificationBlock SectionType = "specification-block"
	SectionMedia              SectionType = "media"
	SectionVideoEmbed         SectionType = "video-embed"
)

// ContentSection is one block of page body content. Text holds prose
// sections; Items holds list sections; evidence and specification blocks
// reference catalog objects by id.
type ContentSection struct {
	ID          string      `json:"id" yaml:"id"`
	Type        SectionType `json:"type" yaml:"type"`
	Heading     string      `json:"heading,omitempty" yaml:"heading,omitempty"`
	Level       int         `json:"level,omitempty" yaml:"level,omitempty"` // heading level 2-4
	Text        string      `json:"text,omitempty" yaml:"text,omitempty"`
	Items       []string    `json:"items,omitempty" yaml:"items,omitempty"`
	Variant     string      `json:"variant,omitempty" yaml:"variant,omitempty"`
	EvidenceRef string      `json:"evidenceRef,omitempty" yaml:"evidenceRef,omitempty"`
	SpecRef     string      `json:"specRef,omitempty" yaml:"specRef,omitempty"`
	Media       *MediaAsset `json:"media,omitempty" yaml:"media,omitempty"`
	Video       *VideoEmbed `json:"video,omitempty" yaml:"video,omitempty"`
}

// MediaAsset is an image or document attachment
type MediaAsset struct {
	Src     string `json:"src" yaml:"src"`
	Alt     string `json:"alt" yaml:"alt"`
	Caption string `json:"caption,omitempty" yaml:"caption,omitempty"`
	Width   int    `json:"width,omitempty" yaml:"width,omitempty"`
	Height  int    `json:"height,omitempty" yaml:"height,omitempty"`
}

// VideoEmbed is an embedded video reference
type VideoEmbed struct {
	Type        string `json:"type" yaml:"type"` // youtube, vimeo, hosted
	VideoID     string `json:"videoId,omitempty" yaml:"videoId,omitempty"`
	Src         string `json:"src,omitempty" yaml:"src,omitempty"`
	Title       string `json:"title" yaml:"title"`
	AspectRatio string `json:"aspectRatio,omitempty" yaml:"aspectRatio,omitempty"`
}

// RelatedContentRef links to another page without owning it
type RelatedContentRef struct {
	ID    string `json:"id" yaml:"id"`
	Type  string `json:"type" yaml:"type"`
	Title string `json:"title" yaml:"title"`
	Slug  string `json:"slug" yaml:"slug"`
}

// CallToAction is a page-level action link
type CallToAction struct {
	Text    string `json:"text" yaml:"text"`
	Href    string `json:"href" yaml:"href"`
	Variant string `json:"variant,omitempty" yaml:"variant,omitempty"` // primary, secondary
}

// CoreKnowledgePage is a foundational explainer. The claims framework is
// mandatory: a core page always asserts benefits, so it always discloses.
type CoreKnowledgePage struct {
	ID              string              `json:"id" yaml:"id"`
	Slug            string              `json:"slug" yaml:"slug"`
	Metadata        ContentMetadata     `json:"metadata" yaml:"metadata"`
	Title           string              `json:"title" yaml:"title"`
	Subtitle        string              `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Lead            string              `json:"lead" yaml:"lead"`
	Sections        []ContentSection    `json:"sections" yaml:"sections"`
	ClaimsFramework ClaimsFramework     `json:"claimsFramework" yaml:"claimsFramework"`
	RelatedContent  []RelatedContentRef `json:"relatedContent,omitempty" yaml:"relatedContent,omitempty"`
	CTA             *CallToAction       `json:"cta,omitempty" yaml:"cta,omitempty"`
}

func (p CoreKnowledgePage) PageType() PageType          { return PageCoreKnowledge }
func (p CoreKnowledgePage) PageID() string              { return p.ID }
func (p CoreKnowledgePage) PageSlug() string            { return p.Slug }
func (p CoreKnowledgePage) Meta() ContentMetadata       { return p.Metadata }
func (p CoreKnowledgePage) Framework() *ClaimsFramework { return &p.ClaimsFramework }

// GuidanceSection is one audience-specific guidance block
type GuidanceSection struct {
	ID               string   `json:"id" yaml:"id"`
	Title            string   `json:"title" yaml:"title"`
	Content          string   `json:"content" yaml:"content"`
	KeyPoints        []string `json:"keyPoints" yaml:"keyPoints"`
	RelevantEvidence []string `json:"relevantEvidence,omitempty" yaml:"relevantEvidence,omitempty"`
}

// NextStep is a follow-up action offered to the reader
type NextStep struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Href        string `json:"href" yaml:"href"`
}

// AudienceGuidancePage addresses one audience's needs. Like core pages
// it always carries a claims framework.
type AudienceGuidancePage struct {
	ID               string            `json:"id" yaml:"id"`
	Slug             string            `json:"slug" yaml:"slug"`
	Metadata         ContentMetadata   `json:"metadata" yaml:"metadata"`
	TargetAudience   Audience          `json:"targetAudience" yaml:"targetAudience"`
	Title            string            `json:"title" yaml:"title"`
	ProblemStatement string            `json:"problemStatement" yaml:"problemStatement"`
	SolutionOverview string            `json:"solutionOverview" yaml:"solutionOverview"`
	GuidanceSections []GuidanceSection `json:"guidanceSections" yaml:"guidanceSections"`
	ClaimsFramework  ClaimsFramework   `json:"claimsFramework" yaml:"claimsFramework"`
	Specifications   []string          `json:"specifications,omitempty" yaml:"specifications,omitempty"` // specification ids
	NextSteps        []NextStep        `json:"nextSteps" yaml:"nextSteps"`
}

func (p AudienceGuidancePage) PageType() PageType          { return PageAudienceGuidance }
func (p AudienceGuidancePage) PageID() string              { return p.ID }
func (p AudienceGuidancePage) PageSlug() string            { return p.Slug }
func (p AudienceGuidancePage) Meta() ContentMetadata       { return p.Metadata }
func (p AudienceGuidancePage) Framework() *ClaimsFramework { return &p.ClaimsFramework }

// ArticleType classifies an article
type ArticleType string

const (
	ArticleInsight   ArticleType = "insight"
	ArticleCaseStudy ArticleType = "case-study"
	ArticleNews      ArticleType = "news"
	ArticleTechnical ArticleType = "technical"
)

// Author is the article byline
type Author struct {
	Name   string `json:"name" yaml:"name"`
	Role   string `json:"role,omitempty" yaml:"role,omitempty"`
	Avatar string `json:"avatar,omitempty" yaml:"avatar,omitempty"`
}

// Article is dated editorial content. The claims framework is optional:
// news about an event makes no product claim, a technical deep-dive does.
type Article struct {
	ID              string           `json:"id" yaml:"id"`
	Slug            string           `json:"slug" yaml:"slug"`
	Metadata        ContentMetadata  `json:"metadata" yaml:"metadata"`
	Title           string           `json:"title" yaml:"title"`
	ArticleType     ArticleType      `json:"articleType" yaml:"articleType"`
	PublishedAt     string           `json:"publishedAt" yaml:"publishedAt"` // ISO 8601 date
	Author          *Author          `json:"author,omitempty" yaml:"author,omitempty"`
	FeaturedImage   *MediaAsset      `json:"featuredImage,omitempty" yaml:"featuredImage,omitempty"`
	Excerpt         string           `json:"excerpt" yaml:"excerpt"`
	Content         []ContentSection `json:"content" yaml:"content"`
	ClaimsFramework *ClaimsFramework `json:"claimsFramework,omitempty" yaml:"claimsFramework,omitempty"`
	Tags            []string         `json:"tags" yaml:"tags"`
}

func (p Article) PageType() PageType          { return PageArticle }
func (p Article) PageID() string              { return p.ID }
func (p Article) PageSlug() string            { return p.Slug }
func (p Article) Meta() ContentMetadata       { return p.Metadata }
func (p Article) Framework() *ClaimsFramework { return p.ClaimsFramework }

// Regulation is one regulation relevant to a market
type Regulation struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Relevance   string `json:"relevance" yaml:"relevance"`
	URL         string `json:"url,omitempty" yaml:"url,omitempty"`
}

// RegulatoryContext describes the rules a market operates under
type RegulatoryContext struct {
	Overview        string       `json:"overview" yaml:"overview"`
	KeyRegulations  []Regulation `json:"keyRegulations" yaml:"keyRegulations"`
	ComplianceNotes string       `json:"complianceNotes" yaml:"complianceNotes"`
}

// ComplianceLevel states how far a local standard is met
type ComplianceLevel string

const (
	ComplianceFull    ComplianceLevel = "full"
	CompliancePartial ComplianceLevel = "partial"
	CompliancePending ComplianceLevel = "pending"
)

// LocalStandard is a country-specific certification or standard
type LocalStandard struct {
	Name         string          `json:"name" yaml:"name"`
	Organization string          `json:"organization" yaml:"organization"`
	Description  string          `json:"description" yaml:"description"`
	Compliance   ComplianceLevel `json:"compliance" yaml:"compliance"`
}

// PartnerInfo describes how to reach local partners
type PartnerInfo struct {
	PartnerTypes        []string `json:"partnerTypes" yaml:"partnerTypes"`
	ContactInstructions string   `json:"contactInstructions" yaml:"contactInstructions"`
}

// LegalModuleType classifies a legal text block
type LegalModuleType string

const (
	LegalPrivacyPolicy LegalModuleType = "privacy-policy"
	LegalCookiePolicy  LegalModuleType = "cookie-policy"
	LegalTerms         LegalModuleType = "terms"
	LegalDisclaimer    LegalModuleType = "disclaimer"
	LegalImprint       LegalModuleType = "imprint"
)

// LegalModule is one legal text block owned by a country module
type LegalModule struct {
	Type        LegalModuleType `json:"type" yaml:"type"`
	Content     string          `json:"content" yaml:"content"`
	LastUpdated string          `json:"lastUpdated" yaml:"lastUpdated"` // ISO 8601 date
}

// CountryModule localizes the site for one market. It carries regulatory
// and legal context instead of a claims framework: claims live on the
// knowledge pages, not on market chrome.
type CountryModule struct {
	ID                string            `json:"id" yaml:"id"`
	Country           i18n.Country      `json:"country" yaml:"country"`
	Metadata          ContentMetadata   `json:"metadata" yaml:"metadata"`
	RegulatoryContext RegulatoryContext `json:"regulatoryContext" yaml:"regulatoryContext"`
	MarketConditions  string            `json:"marketConditions,omitempty" yaml:"marketConditions,omitempty"`
	LocalStandards    []LocalStandard   `json:"localStandards" yaml:"localStandards"`
	PartnerInfo       *PartnerInfo      `json:"partnerInfo,omitempty" yaml:"partnerInfo,omitempty"`
	LegalModules      []LegalModule     `json:"legalModules" yaml:"legalModules"`
}

func (p CountryModule) PageType() PageType          { return PageCountryModule }
func (p CountryModule) PageID() string              { return p.ID }
func (p CountryModule) PageSlug() string            { return string(p.Country) }
func (p CountryModule) Meta() ContentMetadata       { return p.Metadata }
func (p CountryModule) Framework() *ClaimsFramework { return nil }
