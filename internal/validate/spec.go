package validate

import (
	"fmt"
	"strconv"
	"time"

	"github.com/one-dna/disclose/internal/catalog"
	"github.com/one-dna/disclose/internal/model"
)

// Specification validates a specification object. Disclaimer and usage
// guidance are mandatory: a copyable tender text without its disclaimer
// is exactly the kind of artifact the policy exists to prevent.
func Specification(s model.SpecificationObject, evidence *catalog.Evidence, asOf time.Time) model.Report {
	var report model.Report

	if s.Disclaimer == "" {
		report.AddError("disclaimer", "disclaimer is required")
	}
	if s.UsageGuidance == "" {
		report.AddError("usageGuidance", "usage guidance is required")
	}
	if !model.IsValidSpecCategory(s.Category) {
		report.AddError("category", "unknown specification category %q", s.Category)
	}
	if s.SpecificationText == "" {
		report.AddError("specificationText", "specification text is required")
	}

	for i, ref := range s.EvidenceRefs {
		field := fmt.Sprintf("evidenceRefs[%d]", i)
		ev, ok := evidence.Resolve(ref)
		if !ok {
			report.AddError(field, "unresolved evidence reference %q", ref)
			continue
		}
		if status := ev.StatusAt(asOf); status != model.StatusVerified {
			report.AddWarning(field, "evidence %q is %s, not verified", ref, status)
		}
	}

	for i, param := range s.TechnicalParameters {
		field := fmt.Sprintf("technicalParameters[%d]", i)
		if param.Name == "" {
			report.AddError(field+".name", "parameter name is required")
		}
		// A measured value without a test method is untraceable
		if isNumeric(param.Value) && param.TestMethod == "" {
			report.AddWarning(field+".testMethod",
				"parameter %q has value %q but no test method", param.Name, param.Value)
		}
	}

	return report
}

func isNumeric(value string) bool {
	if value == "" {
		return false
	}
	_, err := strconv.ParseFloat(value, 64)
	return err == nil
}
