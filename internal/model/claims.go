package model

// ClaimsFramework is the mandatory disclosure unit attached to any page
// that asserts a benefit. It pairs every enabling claim with scoped
// evidence and forces an explicit statement of what is NOT guaranteed.
// A page may not publish with an invalid framework: see validate.Claims.
type ClaimsFramework struct {
	ProblemFraming           string              `json:"problemFraming" yaml:"problemFraming"`
	DesignPrinciples         []string            `json:"designPrinciples" yaml:"designPrinciples"`
	WhatThisEnables          []string            `json:"whatThisEnables" yaml:"whatThisEnables"`
	WhatThisDoesNotGuarantee []string            `json:"whatThisDoesNotGuarantee" yaml:"whatThisDoesNotGuarantee"`
	EvidenceAndScope         []EvidenceScopeItem `json:"evidenceAndScope" yaml:"evidenceAndScope"`
	LocalConditions          []string            `json:"localConditions,omitempty" yaml:"localConditions,omitempty"`
}

// EvidenceScopeItem joins one claim to one evidence record, narrowed by
// explicit scope limitations. EvidenceRef must resolve against the
// evidence catalog at validation time.
type EvidenceScopeItem struct {
	Claim            string   `json:"claim" yaml:"claim"`
	EvidenceRef      string   `json:"evidenceRef" yaml:"evidenceRef"`
	ScopeLimitations []string `json:"scopeLimitations,omitempty" yaml:"scopeLimitations,omitempty"`
}

// EvidenceRefs returns the evidence ids referenced by the framework,
// in order, duplicates included
func (f ClaimsFramework) EvidenceRefs() []string {
	refs := make([]string, 0, len(f.EvidenceAndScope))
	for _, item := range f.EvidenceAndScope {
		refs = append(refs, item.EvidenceRef)
	}
	return refs
}
