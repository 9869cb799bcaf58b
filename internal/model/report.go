package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/one-dna/disclose/internal/i18n"
)

// Severity grades a validation finding. Errors are content-integrity
// violations that block publication; warnings are editorial follow-ups
// that never gate a page.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one validation finding. Field names the offending attribute
// in dotted path form (e.g. "claimsFramework.evidenceAndScope[2].evidenceRef").
type Issue struct {
	Severity Severity `json:"severity"`
	Field    string   `json:"field"`
	Message  string   `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s: %s", i.Severity, i.Field, i.Message)
}

// Report collects every finding from one validation pass. Validators
// never stop at the first problem: an editor fixing content wants the
// full list in a single pass.
type Report struct {
	Issues []Issue `json:"issues"`
}

// AddError records a blocking finding
func (r *Report) AddError(field, format string, args ...interface{}) {
	r.Issues = append(r.Issues, Issue{
		Severity: SeverityError,
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
	})
}

// AddWarning records a non-blocking finding
func (r *Report) AddWarning(field, format string, args ...interface{}) {
	r.Issues = append(r.Issues, Issue{
		Severity: SeverityWarning,
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Merge appends another report's findings, prefixing their field paths
func (r *Report) Merge(prefix string, other Report) {
	for _, issue := range other.Issues {
		field := issue.Field
		if prefix != "" {
			if field == "" {
				field = prefix
			} else {
				field = prefix + "." + field
			}
		}
		r.Issues = append(r.Issues, Issue{Severity: issue.Severity, Field: field, Message: issue.Message})
	}
}

// Errors returns only the blocking findings
func (r Report) Errors() []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			out = append(out, issue)
		}
	}
	return out
}

// Warnings returns only the non-blocking findings
func (r Report) Warnings() []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Severity == SeverityWarning {
			out = append(out, issue)
		}
	}
	return out
}

// Valid reports whether the subject may be published
func (r Report) Valid() bool {
	return len(r.Errors()) == 0
}

// PageReport ties one page to its validation findings
type PageReport struct {
	PageID   string      `json:"page_id"`
	PageType PageType    `json:"page_type"`
	Locale   i18n.Locale `json:"locale"`
	Slug     string      `json:"slug"`
	Report   Report      `json:"report"`
}

// SiteReport is the outcome of validating a whole content set.
// Publication is gated on Publishable: zero errors across every page
// and every catalog object.
type SiteReport struct {
	RunID       string       `json:"run_id"`
	GeneratedAt time.Time    `json:"generated_at"`
	Pages       []PageReport `json:"pages"`
	Catalog     Report       `json:"catalog"`
	Publishable bool         `json:"publishable"`
}

// NewSiteReport creates an empty site report with a fresh run id
func NewSiteReport(now time.Time) *SiteReport {
	return &SiteReport{
		RunID:       uuid.NewString(),
		GeneratedAt: now.UTC(),
	}
}

// Finish computes the publish gate from the collected findings
func (s *SiteReport) Finish() {
	s.Publishable = s.Catalog.Valid()
	for _, page := range s.Pages {
		if !page.Report.Valid() {
			s.Publishable = false
		}
	}
}

// TotalErrors counts blocking findings across the whole site
func (s SiteReport) TotalErrors() int {
	n := len(s.Catalog.Errors())
	for _, page := range s.Pages {
		n += len(page.Report.Errors())
	}
	return n
}

// TotalWarnings counts non-blocking findings across the whole site
func (s SiteReport) TotalWarnings() int {
	n := len(s.Catalog.Warnings())
	for _, page := range s.Pages {
		n += len(page.Report.Warnings())
	}
	return n
}
