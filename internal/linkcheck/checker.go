// Package linkcheck probes evidence document URLs. It is an editorial
// tool: a dead or stale link is a follow-up for the content owner, never
// a publication gate, so findings map to warnings in the site report.
package linkcheck

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/time/rate"

	"github.com/one-dna/disclose/internal/model"
)

const (
	maxRetries    = 3
	maxTitleBytes = 64 * 1024
)

// sleepFunc is the backoff sleep between retries (injectable for tests)
var sleepFunc = time.Sleep

// Result is the outcome of probing one evidence document URL
type Result struct {
	EvidenceID   string     `json:"evidence_id"`
	URL          string     `json:"url"`
	Accessible   bool       `json:"accessible"`
	StatusCode   int        `json:"status_code,omitempty"`
	RedirectURL  string     `json:"redirect_url,omitempty"`
	LastModified *time.Time `json:"last_modified,omitempty"`
	AgeDays      *int       `json:"age_days,omitempty"`
	Stale        bool       `json:"stale"`       // Last-Modified over a year old
	Dead         bool       `json:"dead"`        // 404, 410, or transport failure
	RobotsDenied bool       `json:"robots_denied,omitempty"`
	Title        string     `json:"title,omitempty"` // HTML landing page title, if probed
	Error        string     `json:"error,omitempty"`
}

// Checker probes document URLs concurrently with per-domain rate limits
type Checker struct {
	httpClient *http.Client
	maxWorkers int
	userAgent  string
	robots     *robotsChecker
	limiters   map[string]*rate.Limiter
	limiterMu  sync.Mutex
	perSecond  rate.Limit
	burst      int
	now        func() time.Time
}

// NewChecker creates a checker from configuration
func NewChecker(cfg model.LinkCheckConfig) *Checker {
	maxWorkers := cfg.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 10
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 5
	}

	var robots *robotsChecker
	if cfg.RespectRobots {
		robots = newRobotsChecker(cfg.UserAgent, cfg.Timeout)
	}

	return &Checker{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		maxWorkers: maxWorkers,
		userAgent:  cfg.UserAgent,
		robots:     robots,
		limiters:   make(map[string]*rate.Limiter),
		perSecond:  rate.Limit(cfg.RequestsPerSecond),
		burst:      burst,
		now:        time.Now,
	}
}

// Check probes every evidence object that carries a document URL.
// Objects without one are skipped; results keep catalog order.
func (c *Checker) Check(ctx context.Context, evidence []model.EvidenceObject) []Result {
	var targets []model.EvidenceObject
	for _, e := range evidence {
		if e.DocumentURL != "" {
			targets = append(targets, e)
		}
	}
	if len(targets) == 0 {
		return []Result{}
	}

	results := make([]Result, len(targets))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, c.maxWorkers)

	for i, e := range targets {
		wg.Add(1)
		go func(idx int, ev model.EvidenceObject) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				results[idx] = Result{
					EvidenceID: ev.ID,
					URL:        ev.DocumentURL,
					Error:      "context cancelled",
				}
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			results[idx] = c.checkWithRetry(ctx, ev)
		}(i, e)
	}

	wg.Wait()
	return results
}

func (c *Checker) checkWithRetry(ctx context.Context, e model.EvidenceObject) Result {
	var result Result
	for attempt := 0; attempt < maxRetries; attempt++ {
		result = c.checkOne(ctx, e)
		if !isRetryable(result) {
			return result
		}
		if attempt < maxRetries-1 {
			backoff := time.Duration(1<<uint(attempt)) * time.Second
			sleepFunc(backoff)
		}
	}
	return result
}

func (c *Checker) checkOne(ctx context.Context, e model.EvidenceObject) Result {
	result := Result{EvidenceID: e.ID, URL: e.DocumentURL}

	if c.robots != nil && !c.robots.allowed(ctx, e.DocumentURL) {
		result.RobotsDenied = true
		return result
	}

	if err := c.waitLimit(ctx, e.DocumentURL); err != nil {
		result.Error = fmt.Sprintf("rate limit: %v", err)
		return result
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, e.DocumentURL, nil)
	if err != nil {
		result.Error = fmt.Sprintf("create request: %v", err)
		result.Dead = true
		return result
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		result.Error = fmt.Sprintf("request failed: %v", err)
		result.Dead = true
		return result
	}
	defer func() { _ = resp.Body.Close() }()

	result.StatusCode = resp.StatusCode

	if resp.StatusCode >= 200 && resp.StatusCode < 400 {
		result.Accessible = true
	} else if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone {
		result.Dead = true
	}

	if resp.Request.URL.String() != e.DocumentURL {
		result.RedirectURL = resp.Request.URL.String()
	}

	if lastModified := resp.Header.Get("Last-Modified"); lastModified != "" {
		if t, err := time.Parse(time.RFC1123, lastModified); err == nil {
			result.LastModified = &t
			ageDays := int(c.now().Sub(t).Hours() / 24)
			result.AgeDays = &ageDays
			if ageDays > 365 {
				result.Stale = true
			}
		}
	}

	// A certificate link that lands on a generic HTML page instead of a
	// document is worth a second look; surface the page title for the
	// editor to judge.
	if result.Accessible && strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html") {
		result.Title = c.fetchTitle(ctx, resp.Request.URL.String())
	}

	return result
}

// fetchTitle GETs an HTML landing page and extracts its <title>
func (c *Checker) fetchTitle(ctx context.Context, rawURL string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ""
	}
	defer func() { _ = resp.Body.Close() }()

	return extractTitle(io.LimitReader(resp.Body, maxTitleBytes))
}

func extractTitle(r io.Reader) string {
	tokenizer := html.NewTokenizer(r)
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return ""
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if string(name) == "title" {
				if tokenizer.Next() == html.TextToken {
					return strings.TrimSpace(string(tokenizer.Text()))
				}
				return ""
			}
		}
	}
}

func (c *Checker) waitLimit(ctx context.Context, rawURL string) error {
	host := hostOf(rawURL)

	c.limiterMu.Lock()
	limiter, ok := c.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(c.perSecond, c.burst)
		c.limiters[host] = limiter
	}
	c.limiterMu.Unlock()

	return limiter.Wait(ctx)
}

func hostOf(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return parsed.Host
}

func isRetryable(result Result) bool {
	if result.StatusCode >= 500 && result.StatusCode < 600 {
		return true
	}
	if result.StatusCode == http.StatusTooManyRequests {
		return true
	}
	if result.Error != "" {
		s := strings.ToLower(result.Error)
		return strings.Contains(s, "timeout") ||
			strings.Contains(s, "connection refused") ||
			strings.Contains(s, "connection reset")
	}
	return false
}
