// Package validate enforces the editorial compliance policy as
// executable rules. Every validator collects the complete finding list
// in one pass instead of stopping at the first problem, so a single
// editorial round can fix everything. Content-integrity errors gate
// publication; warnings are follow-ups and never block a page.
package validate

import (
	"fmt"
	"time"

	"github.com/one-dna/disclose/internal/catalog"
	"github.com/one-dna/disclose/internal/model"
)

// Claims validates a claims framework against the evidence catalog.
// The two structural rules carry the whole anti-greenwashing policy:
// no enabling claim without paired evidence, and no framework without
// an explicit non-guarantee.
func Claims(f model.ClaimsFramework, evidence *catalog.Evidence, asOf time.Time) model.Report {
	var report model.Report

	if len(f.WhatThisDoesNotGuarantee) == 0 {
		report.AddError("whatThisDoesNotGuarantee",
			"at least one explicit non-guarantee is required")
	}

	if len(f.WhatThisEnables) > 0 && len(f.EvidenceAndScope) == 0 {
		report.AddError("evidenceAndScope",
			"%d enabling claim(s) published without paired evidence", len(f.WhatThisEnables))
	}

	for i, item := range f.EvidenceAndScope {
		field := fmt.Sprintf("evidenceAndScope[%d].evidenceRef", i)

		if item.EvidenceRef == "" {
			report.AddError(field, "evidence reference is empty")
			continue
		}

		ev, ok := evidence.Resolve(item.EvidenceRef)
		if !ok {
			report.AddError(field, "unresolved evidence reference %q", item.EvidenceRef)
			continue
		}

		if status := ev.StatusAt(asOf); status != model.StatusVerified {
			report.AddWarning(field, "evidence %q is %s, not verified", item.EvidenceRef, status)
		}
	}

	return report
}
