// Package catalog holds the shared evidence and specification lookup
// tables. Catalogs are append-only while loading and frozen before any
// validation or projection runs: validators receive an immutable
// snapshot, so concurrent readers need no locking and a content
// re-publication replaces the whole snapshot instead of editing entries.
package catalog

import (
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/one-dna/disclose/internal/model"
)

// Evidence is the id-keyed evidence catalog
type Evidence struct {
	objects map[string]model.EvidenceObject
	frozen  bool
}

// NewEvidence creates an empty, unfrozen evidence catalog
func NewEvidence() *Evidence {
	return &Evidence{objects: make(map[string]model.EvidenceObject)}
}

// Register inserts an evidence object. Objects are append-only by id:
// re-registering an identical object is a no-op, re-registering the same
// id with different content is an error, because published evidence is
// only ever superseded by a new id.
func (c *Evidence) Register(e model.EvidenceObject) error {
	if c.frozen {
		return fmt.Errorf("catalog is frozen")
	}
	if e.ID == "" {
		return fmt.Errorf("evidence object has no id")
	}
	if existing, ok := c.objects[e.ID]; ok {
		if reflect.DeepEqual(existing, e) {
			return nil
		}
		return fmt.Errorf("evidence %q already registered with different content", e.ID)
	}
	c.objects[e.ID] = e
	return nil
}

// Freeze makes the catalog immutable
func (c *Evidence) Freeze() {
	c.frozen = true
}

// Resolve looks up an evidence object by id
func (c *Evidence) Resolve(id string) (model.EvidenceObject, bool) {
	e, ok := c.objects[id]
	return e, ok
}

// Len returns the number of registered objects
func (c *Evidence) Len() int {
	return len(c.objects)
}

// IDs returns all evidence ids in sorted order
func (c *Evidence) IDs() []string {
	ids := make([]string, 0, len(c.objects))
	for id := range c.objects {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All returns the objects in id order
func (c *Evidence) All() []model.EvidenceObject {
	out := make([]model.EvidenceObject, 0, len(c.objects))
	for _, id := range c.IDs() {
		out = append(out, c.objects[id])
	}
	return out
}

// Validate checks every registered object against a reference clock and
// returns all findings in one pass. A stored "verified" status on lapsed
// evidence is a warning, not an error: the stored field is an editorial
// record and the derived status governs display.
func (c *Evidence) Validate(asOf time.Time) model.Report {
	var report model.Report

	for _, id := range c.IDs() {
		e := c.objects[id]
		field := fmt.Sprintf("evidence[%s]", id)

		if !model.IsValidEvidenceType(e.EvidenceType) {
			report.AddError(field+".evidenceType", "unknown evidence type %q", e.EvidenceType)
		}
		if !model.IsValidVerificationStatus(e.VerificationStatus) {
			report.AddError(field+".verificationStatus", "unknown verification status %q", e.VerificationStatus)
		}
		if e.Title == "" {
			report.AddError(field+".title", "title is required")
		}

		if e.ExpirationDate != "" {
			if _, err := time.Parse("2006-01-02", e.ExpirationDate); err != nil {
				report.AddWarning(field+".expirationDate", "unparseable date %q", e.ExpirationDate)
			}
		}
		if e.IssueDate != "" {
			if _, err := time.Parse("2006-01-02", e.IssueDate); err != nil {
				report.AddWarning(field+".issueDate", "unparseable date %q", e.IssueDate)
			}
		}

		if e.ExpiredAt(asOf) && e.VerificationStatus == model.StatusVerified {
			report.AddWarning(field+".verificationStatus",
				"stored status is verified but evidence expired %s", e.ExpirationDate)
		}
	}

	return report
}

// Specifications is the id-keyed specification catalog
type Specifications struct {
	objects map[string]model.SpecificationObject
	frozen  bool
}

// NewSpecifications creates an empty, unfrozen specification catalog
func NewSpecifications() *Specifications {
	return &Specifications{objects: make(map[string]model.SpecificationObject)}
}

// Register inserts a specification object, append-only by id like evidence
func (c *Specifications) Register(s model.SpecificationObject) error {
	if c.frozen {
		return fmt.Errorf("catalog is frozen")
	}
	if s.ID == "" {
		return fmt.Errorf("specification object has no id")
	}
	if existing, ok := c.objects[s.ID]; ok {
		if reflect.DeepEqual(existing, s) {
			return nil
		}
		return fmt.Errorf("specification %q already registered with different content", s.ID)
	}
	c.objects[s.ID] = s
	return nil
}

// Freeze makes the catalog immutable
func (c *Specifications) Freeze() {
	c.frozen = true
}

// Resolve looks up a specification by id
func (c *Specifications) Resolve(id string) (model.SpecificationObject, bool) {
	s, ok := c.objects[id]
	return s, ok
}

// Len returns the number of registered objects
func (c *Specifications) Len() int {
	return len(c.objects)
}

// IDs returns all specification ids in sorted order
func (c *Specifications) IDs() []string {
	ids := make([]string, 0, len(c.objects))
	for id := range c.objects {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All returns the objects in id order
func (c *Specifications) All() []model.SpecificationObject {
	out := make([]model.SpecificationObject, 0, len(c.objects))
	for _, id := range c.IDs() {
		out = append(out, c.objects[id])
	}
	return out
}
