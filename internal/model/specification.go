package model

// SpecificationObject is a verbatim technical or tender text block that
// specifiers copy into their own documents. The text is exported exactly
// as authored; the mandatory disclaimer travels with it.
type SpecificationObject struct {
	ID                  string               `json:"id" yaml:"id"`
	Slug                string               `json:"slug" yaml:"slug"`
	Metadata            ContentMetadata      `json:"metadata" yaml:"metadata"`
	Title               string               `json:"title" yaml:"title"`
	Category            SpecCategory         `json:"category" yaml:"category"`
	ApplicationContext  string               `json:"applicationContext" yaml:"applicationContext"`
	SpecificationText   string               `json:"specificationText" yaml:"specificationText"`
	TechnicalParameters []TechnicalParameter `json:"technicalParameters,omitempty" yaml:"technicalParameters,omitempty"`
	EvidenceRefs        []string             `json:"evidenceRefs" yaml:"evidenceRefs"`
	UsageGuidance       string               `json:"usageGuidance" yaml:"usageGuidance"`
	Disclaimer          string               `json:"disclaimer" yaml:"disclaimer"`
}

// SpecCategory classifies where a specification block is meant to be used
type SpecCategory string

const (
	SpecTender       SpecCategory = "tender"
	SpecTechnical    SpecCategory = "technical"
	SpecInstallation SpecCategory = "installation"
	SpecMaintenance  SpecCategory = "maintenance"
)

// IsValidSpecCategory reports whether c is a known category
func IsValidSpecCategory(c SpecCategory) bool {
	return c == SpecTender || c == SpecTechnical || c == SpecInstallation || c == SpecMaintenance
}

// TechnicalParameter is one measured or declared property of a
// specification. A value without a test method is accepted but flagged
// as a traceability warning during validation.
type TechnicalParameter struct {
	Name       string `json:"name" yaml:"name"`
	Value      string `json:"value" yaml:"value"`
	Unit       string `json:"unit,omitempty" yaml:"unit,omitempty"`
	TestMethod string `json:"testMethod,omitempty" yaml:"testMethod,omitempty"`
}
