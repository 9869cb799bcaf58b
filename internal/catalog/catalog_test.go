package catalog

import (
	"testing"
	"time"

	"github.com/one-dna/disclose/internal/model"
)

func verifiedEPD(id string) model.EvidenceObject {
	return model.EvidenceObject{
		ID:                 id,
		EvidenceType:       model.EvidenceEPD,
		Title:              "EPD " + id,
		Description:        "Cradle-to-gate declaration",
		VerificationStatus: model.StatusVerified,
	}
}

func TestEvidence_RegisterAppendOnly(t *testing.T) {
	c := NewEvidence()

	e := verifiedEPD("E1")
	if err := c.Register(e); err != nil {
		t.Fatalf("Register: %v", err)
	}

	// Identical re-registration is a no-op
	if err := c.Register(e); err != nil {
		t.Errorf("identical re-register should succeed, got %v", err)
	}

	// Same id, different content is rejected
	altered := e
	altered.Title = "EPD E1 (revised)"
	if err := c.Register(altered); err == nil {
		t.Error("expected error re-registering E1 with different content")
	}

	// The original content survives the rejected write
	got, ok := c.Resolve("E1")
	if !ok || got.Title != "EPD E1" {
		t.Errorf("Resolve(E1) = %+v, %v", got, ok)
	}
}

func TestEvidence_RegisterAfterFreeze(t *testing.T) {
	c := NewEvidence()
	c.Freeze()

	if err := c.Register(verifiedEPD("E1")); err == nil {
		t.Error("expected error registering into a frozen catalog")
	}
}

func TestEvidence_ResolveMissing(t *testing.T) {
	c := NewEvidence()
	if _, ok := c.Resolve("E404"); ok {
		t.Error("expected miss for unknown id")
	}
}

func TestEvidence_IDsSorted(t *testing.T) {
	c := NewEvidence()
	for _, id := range []string{"E3", "E1", "E2"} {
		if err := c.Register(verifiedEPD(id)); err != nil {
			t.Fatalf("Register(%s): %v", id, err)
		}
	}

	ids := c.IDs()
	want := []string{"E1", "E2", "E3"}
	for i, id := range want {
		if ids[i] != id {
			t.Fatalf("IDs() = %v, want %v", ids, want)
		}
	}
}

func TestEvidence_ValidateExpiryMismatchIsWarning(t *testing.T) {
	c := NewEvidence()
	e := verifiedEPD("E1")
	e.ExpirationDate = "2020-01-01"
	if err := c.Register(e); err != nil {
		t.Fatalf("Register: %v", err)
	}
	c.Freeze()

	asOf, _ := time.Parse("2006-01-02", "2025-01-01")
	report := c.Validate(asOf)

	if !report.Valid() {
		t.Errorf("expiry/status mismatch must not block publication: %v", report.Errors())
	}
	if len(report.Warnings()) != 1 {
		t.Errorf("expected 1 warning, got %v", report.Warnings())
	}
}

func TestEvidence_ValidateBadEnums(t *testing.T) {
	c := NewEvidence()
	bad := model.EvidenceObject{
		ID:                 "E1",
		EvidenceType:       "press-release",
		Title:              "",
		VerificationStatus: "maybe",
	}
	if err := c.Register(bad); err != nil {
		t.Fatalf("Register: %v", err)
	}

	report := c.Validate(time.Now())
	if got := len(report.Errors()); got != 3 {
		t.Errorf("expected 3 errors (type, status, title), got %d: %v", got, report.Errors())
	}
}

func TestSpecifications_RegisterAndResolve(t *testing.T) {
	c := NewSpecifications()
	s := model.SpecificationObject{
		ID:       "S1",
		Slug:     "tender-text",
		Category: model.SpecTender,
	}

	if err := c.Register(s); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := c.Register(s); err != nil {
		t.Errorf("identical re-register should succeed, got %v", err)
	}

	s.Disclaimer = "changed"
	if err := c.Register(s); err == nil {
		t.Error("expected error re-registering S1 with different content")
	}

	if _, ok := c.Resolve("S1"); !ok {
		t.Error("Resolve(S1) failed")
	}
	if _, ok := c.Resolve("S9"); ok {
		t.Error("expected miss for unknown id")
	}
}
