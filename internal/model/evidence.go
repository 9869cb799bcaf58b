package model

import "time"

// EvidenceObject is a dated, sourced, scoped record substantiating a
// specific claim. Objects are immutable once published: a renewed
// certification is a new object with a new id, never an in-place edit,
// so the audit trail survives re-issuance.
type EvidenceObject struct {
	ID                  string             `json:"id" yaml:"id"`
	EvidenceType        EvidenceType       `json:"evidenceType" yaml:"evidenceType"`
	Title               string             `json:"title" yaml:"title"`
	Description         string             `json:"description" yaml:"description"`
	IssuingOrganization string             `json:"issuingOrganization,omitempty" yaml:"issuingOrganization,omitempty"`
	IssueDate           string             `json:"issueDate,omitempty" yaml:"issueDate,omitempty"`             // ISO 8601 date
	ExpirationDate      string             `json:"expirationDate,omitempty" yaml:"expirationDate,omitempty"`   // ISO 8601 date
	ReferenceNumber     string             `json:"referenceNumber,omitempty" yaml:"referenceNumber,omitempty"` // Issuer's document reference
	DocumentURL         string             `json:"documentUrl,omitempty" yaml:"documentUrl,omitempty"`
	ScopeLimitations    []string           `json:"scopeLimitations,omitempty" yaml:"scopeLimitations,omitempty"`
	VerificationStatus  VerificationStatus `json:"verificationStatus" yaml:"verificationStatus"`
}

// EvidenceType classifies what kind of substantiation a record provides
type EvidenceType string

const (
	EvidenceEPD           EvidenceType = "environmental-declaration" // Environmental Product Declaration
	EvidenceLCA           EvidenceType = "life-cycle-assessment"
	EvidenceTestReport    EvidenceType = "test-report"
	EvidenceCertification EvidenceType = "certification"
	EvidenceDefinition    EvidenceType = "definition"
	EvidenceScope         EvidenceType = "scope-statement"
	EvidenceThirdParty    EvidenceType = "third-party-verification"
)

// EvidenceTypes returns all evidence types in declaration order
func EvidenceTypes() []EvidenceType {
	return []EvidenceType{
		EvidenceEPD, EvidenceLCA, EvidenceTestReport, EvidenceCertification,
		EvidenceDefinition, EvidenceScope, EvidenceThirdParty,
	}
}

// IsValidEvidenceType reports whether t is a known evidence type
func IsValidEvidenceType(t EvidenceType) bool {
	switch t {
	case EvidenceEPD, EvidenceLCA, EvidenceTestReport, EvidenceCertification,
		EvidenceDefinition, EvidenceScope, EvidenceThirdParty:
		return true
	}
	return false
}

// VerificationStatus is the stored audit state of an evidence object.
// It is an editorial record; actual expiry is derived from ExpirationDate
// at read time (see ExpiredAt), never written back into this field.
type VerificationStatus string

const (
	StatusVerified VerificationStatus = "verified"
	StatusPending  VerificationStatus = "pending"
	StatusExpired  VerificationStatus = "expired"
)

// IsValidVerificationStatus reports whether s is a known status
func IsValidVerificationStatus(s VerificationStatus) bool {
	return s == StatusVerified || s == StatusPending || s == StatusExpired
}

// ExpiredAt reports whether the evidence has lapsed relative to a
// caller-supplied reference time. Taking the clock as an argument keeps
// the check deterministic in tests; an unset or unparseable expiration
// date means the evidence never expires.
func (e EvidenceObject) ExpiredAt(asOf time.Time) bool {
	if e.ExpirationDate == "" {
		return false
	}
	expiry, err := time.Parse("2006-01-02", e.ExpirationDate)
	if err != nil {
		return false
	}
	return expiry.Before(asOf)
}

// StatusAt returns the status to display at the given time: a stored
// "verified" downgrades to "expired" once the expiration date passes.
// The stored field is left untouched.
func (e EvidenceObject) StatusAt(asOf time.Time) VerificationStatus {
	if e.ExpiredAt(asOf) {
		return StatusExpired
	}
	return e.VerificationStatus
}
