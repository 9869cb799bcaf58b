package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/one-dna/disclose/internal/catalog"
	"github.com/one-dna/disclose/internal/model"
	"github.com/one-dna/disclose/internal/validate"
)

// validatePages runs page validation across a bounded worker pool.
// Each page validates independently against the frozen catalogs, so the
// only shared state is read-only; results keep input order.
func validatePages(ctx context.Context, pages []model.ContentPage, evidence *catalog.Evidence, specs *catalog.Specifications, workers int, asOf time.Time) []model.PageReport {
	if workers <= 0 {
		workers = 1
	}

	results := make([]model.PageReport, len(pages))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, workers)

	for i, page := range pages {
		wg.Add(1)
		go func(idx int, p model.ContentPage) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				var report model.Report
				report.AddError("", "validation cancelled")
				results[idx] = pageReport(p, report)
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			results[idx] = pageReport(p, validate.Page(p, evidence, specs, asOf))
		}(i, page)
	}

	wg.Wait()
	return results
}

func pageReport(page model.ContentPage, report model.Report) model.PageReport {
	return model.PageReport{
		PageID:   page.PageID(),
		PageType: page.PageType(),
		Locale:   page.Meta().Language,
		Slug:     page.PageSlug(),
		Report:   report,
	}
}
