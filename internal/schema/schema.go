// Package schema projects validated content into schema.org structured
// markup. Projection is a pure function of its inputs: every shape is a
// typed struct with a fixed field order, so identical input marshals to
// byte-identical JSON-LD and the output can be cached or snapshot-tested.
package schema

import "encoding/json"

const context = "https://schema.org"

// Organization describes the publishing organization
type Organization struct {
	Context      string        `json:"@context,omitempty"`
	Type         string        `json:"@type"`
	Name         string        `json:"name"`
	URL          string        `json:"url"`
	Logo         string        `json:"logo,omitempty"`
	Description  string        `json:"description,omitempty"`
	ContactPoint *ContactPoint `json:"contactPoint,omitempty"`
	SameAs       []string      `json:"sameAs,omitempty"`
}

// ContactPoint is the organization's contact record
type ContactPoint struct {
	Type              string   `json:"@type"`
	Telephone         string   `json:"telephone,omitempty"`
	Email             string   `json:"email,omitempty"`
	ContactType       string   `json:"contactType"`
	AvailableLanguage []string `json:"availableLanguage,omitempty"`
}

// WebSite identifies the site a page belongs to
type WebSite struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// WebPage describes a generic content page
type WebPage struct {
	Context      string          `json:"@context"`
	Type         string          `json:"@type"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	URL          string          `json:"url"`
	InLanguage   string          `json:"inLanguage,omitempty"`
	DateModified string          `json:"dateModified,omitempty"`
	IsPartOf     *WebSite        `json:"isPartOf,omitempty"`
	Publisher    *Organization   `json:"publisher,omitempty"`
	Breadcrumb   *BreadcrumbList `json:"breadcrumb,omitempty"`
}

// Article describes dated editorial content
type Article struct {
	Context        string        `json:"@context"`
	Type           string        `json:"@type"`
	Headline       string        `json:"headline"`
	Description    string        `json:"description"`
	URL            string        `json:"url"`
	InLanguage     string        `json:"inLanguage,omitempty"`
	DatePublished  string        `json:"datePublished"`
	DateModified   string        `json:"dateModified,omitempty"`
	Author         *Person       `json:"author,omitempty"`
	Publisher      *Organization `json:"publisher,omitempty"`
	Image          string        `json:"image,omitempty"`
	ArticleSection string        `json:"articleSection,omitempty"`
	Keywords       string        `json:"keywords,omitempty"`
}

// Person is an article author
type Person struct {
	Type     string `json:"@type"`
	Name     string `json:"name"`
	JobTitle string `json:"jobTitle,omitempty"`
}

// FAQPage lists question/answer pairs
type FAQPage struct {
	Context    string     `json:"@context"`
	Type       string     `json:"@type"`
	MainEntity []Question `json:"mainEntity"`
}

// Question is one FAQ entry
type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

// Answer is the accepted answer to a question
type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

// Product describes a specification as a procurable product
type Product struct {
	Context            string          `json:"@context"`
	Type               string          `json:"@type"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	URL                string          `json:"url"`
	Brand              *Brand          `json:"brand,omitempty"`
	Manufacturer       *Organization   `json:"manufacturer,omitempty"`
	Category           string          `json:"category,omitempty"`
	AdditionalProperty []PropertyValue `json:"additionalProperty,omitempty"`
}

// Brand names the product brand
type Brand struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// PropertyValue is one technical parameter
type PropertyValue struct {
	Type     string `json:"@type"`
	Name     string `json:"name"`
	Value    string `json:"value"`
	UnitText string `json:"unitText,omitempty"`
}

// HowTo describes installation or maintenance instructions
type HowTo struct {
	Context     string      `json:"@context"`
	Type        string      `json:"@type"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	TotalTime   string      `json:"totalTime,omitempty"`
	Step        []HowToStep `json:"step"`
}

// HowToStep is one instruction step
type HowToStep struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Text     string `json:"text"`
	Image    string `json:"image,omitempty"`
}

// Certification describes certification evidence
type Certification struct {
	Context                     string        `json:"@context"`
	Type                        string        `json:"@type"`
	Name                        string        `json:"name"`
	Description                 string        `json:"description,omitempty"`
	CertificationIdentification string        `json:"certificationIdentification,omitempty"`
	IssuedBy                    *Organization `json:"issuedBy,omitempty"`
	DateCreated                 string        `json:"dateCreated,omitempty"`
	Expires                     string        `json:"expires,omitempty"`
	URL                         string        `json:"url,omitempty"`
}

// BreadcrumbList is the page's breadcrumb trail
type BreadcrumbList struct {
	Context         string     `json:"@context,omitempty"`
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}

// ListItem is one breadcrumb
type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

// JSONLD marshals any schema shape for embedding in a script tag
func JSONLD(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}
