package validate

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/one-dna/disclose/internal/catalog"
	"github.com/one-dna/disclose/internal/model"
)

var testClock = mustDate("2025-01-01")

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func testCatalog(t *testing.T, ids ...string) *catalog.Evidence {
	t.Helper()
	c := catalog.NewEvidence()
	for _, id := range ids {
		err := c.Register(model.EvidenceObject{
			ID:                 id,
			EvidenceType:       model.EvidenceEPD,
			Title:              "Evidence " + id,
			VerificationStatus: model.StatusVerified,
		})
		if err != nil {
			t.Fatalf("register %s: %v", id, err)
		}
	}
	c.Freeze()
	return c
}

func validFramework() model.ClaimsFramework {
	return model.ClaimsFramework{
		ProblemFraming:           "Carpet tiles are hard to recycle at end of life.",
		DesignPrinciples:         []string{"one polymer family"},
		WhatThisEnables:          []string{"mono-material recycling streams"},
		WhatThisDoesNotGuarantee: []string{"recycling in every municipality"},
		EvidenceAndScope: []model.EvidenceScopeItem{
			{Claim: "mono-material construction", EvidenceRef: "E1"},
		},
	}
}

func TestClaims_ValidFramework(t *testing.T) {
	report := Claims(validFramework(), testCatalog(t, "E1"), testClock)

	if len(report.Issues) != 0 {
		t.Errorf("expected clean report, got %v", report.Issues)
	}
}

func TestClaims_NonGuaranteeMandatory(t *testing.T) {
	// An empty whatThisDoesNotGuarantee is the one unconditional error
	f := validFramework()
	f.WhatThisDoesNotGuarantee = nil

	report := Claims(f, testCatalog(t, "E1"), testClock)

	errs := report.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 error, got %v", errs)
	}
	if errs[0].Field != "whatThisDoesNotGuarantee" {
		t.Errorf("error field = %q", errs[0].Field)
	}
}

func TestClaims_EnablingClaimsNeedEvidence(t *testing.T) {
	// Scenario A: one enabling claim, no evidence pairing, non-guarantee present
	f := model.ClaimsFramework{
		WhatThisEnables:          []string{"X"},
		EvidenceAndScope:         []model.EvidenceScopeItem{},
		WhatThisDoesNotGuarantee: []string{"Y"},
	}

	report := Claims(f, testCatalog(t), testClock)

	errs := report.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 error, got %v", errs)
	}
	if errs[0].Field != "evidenceAndScope" {
		t.Errorf("error field = %q", errs[0].Field)
	}
}

func TestClaims_NoEnablingClaimsNoEvidenceNeeded(t *testing.T) {
	f := model.ClaimsFramework{
		ProblemFraming:           "Definitions only.",
		WhatThisDoesNotGuarantee: []string{"anything"},
	}

	report := Claims(f, testCatalog(t), testClock)
	if !report.Valid() {
		t.Errorf("framework without enabling claims needs no evidence: %v", report.Errors())
	}
}

func TestClaims_DanglingReference(t *testing.T) {
	// Scenario C: catalog {E1,E2}, reference to E3
	f := validFramework()
	f.EvidenceAndScope = []model.EvidenceScopeItem{
		{Claim: "claim", EvidenceRef: "E3"},
	}

	report := Claims(f, testCatalog(t, "E1", "E2"), testClock)

	errs := report.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 error, got %v", errs)
	}
	if !strings.Contains(errs[0].Message, `"E3"`) {
		t.Errorf("error should name the dangling id: %q", errs[0].Message)
	}
}

func TestClaims_OneErrorPerDanglingReference(t *testing.T) {
	// Every dangling reference yields its own error, collected in one
	// pass without short-circuiting
	c := testCatalog(t, "E1", "E2", "E3")

	f := validFramework()
	f.EvidenceAndScope = []model.EvidenceScopeItem{
		{Claim: "a", EvidenceRef: "E1"},
		{Claim: "b", EvidenceRef: "MISSING-1"},
		{Claim: "c", EvidenceRef: "E2"},
		{Claim: "d", EvidenceRef: "MISSING-2"},
		{Claim: "e", EvidenceRef: "MISSING-3"},
	}

	report := Claims(f, c, testClock)

	errs := report.Errors()
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors for 3 dangling refs, got %v", errs)
	}
	for i, want := range []string{"MISSING-1", "MISSING-2", "MISSING-3"} {
		if !strings.Contains(errs[i].Message, fmt.Sprintf("%q", want)) {
			t.Errorf("error %d should name %q: %q", i, want, errs[i].Message)
		}
	}
}

func TestClaims_UnverifiedEvidenceWarns(t *testing.T) {
	c := catalog.NewEvidence()
	if err := c.Register(model.EvidenceObject{
		ID:                 "E1",
		EvidenceType:       model.EvidenceTestReport,
		Title:              "Pending report",
		VerificationStatus: model.StatusPending,
	}); err != nil {
		t.Fatal(err)
	}
	c.Freeze()

	report := Claims(validFramework(), c, testClock)

	if len(report.Errors()) != 0 {
		t.Errorf("pending evidence must not error: %v", report.Errors())
	}
	if len(report.Warnings()) != 1 {
		t.Fatalf("expected 1 warning, got %v", report.Warnings())
	}
	if !strings.Contains(report.Warnings()[0].Message, "pending") {
		t.Errorf("warning should name the status: %q", report.Warnings()[0].Message)
	}
}

func TestClaims_ExpiredEvidenceWarnsViaDerivedStatus(t *testing.T) {
	c := catalog.NewEvidence()
	if err := c.Register(model.EvidenceObject{
		ID:                 "E1",
		EvidenceType:       model.EvidenceCertification,
		Title:              "Lapsed certificate",
		ExpirationDate:     "2020-01-01",
		VerificationStatus: model.StatusVerified, // stale editorial record
	}); err != nil {
		t.Fatal(err)
	}
	c.Freeze()

	report := Claims(validFramework(), c, testClock)

	if len(report.Warnings()) != 1 {
		t.Fatalf("expected 1 warning, got %v", report.Warnings())
	}
	if !strings.Contains(report.Warnings()[0].Message, "expired") {
		t.Errorf("warning should report the derived status: %q", report.Warnings()[0].Message)
	}
}
