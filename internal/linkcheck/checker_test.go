package linkcheck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/one-dna/disclose/internal/model"
)

func init() {
	// Disable retry sleep in all tests for fast execution
	sleepFunc = func(d time.Duration) {}
}

func testConfig() model.LinkCheckConfig {
	return model.LinkCheckConfig{
		Timeout:           5 * time.Second,
		MaxWorkers:        4,
		UserAgent:         "Disclose/0.1 (test)",
		RequestsPerSecond: 100,
		Burst:             100,
		RespectRobots:     false,
	}
}

func evidenceFor(url string) []model.EvidenceObject {
	return []model.EvidenceObject{{
		ID:                 "E1",
		EvidenceType:       model.EvidenceCertification,
		Title:              "Certificate",
		DocumentURL:        url,
		VerificationStatus: model.StatusVerified,
	}}
}

func TestChecker_Accessible(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("expected HEAD request, got %s", r.Method)
		}
		w.Header().Set("Last-Modified", "Mon, 02 Jan 2023 15:04:05 GMT")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	checker := NewChecker(testConfig())
	results := checker.Check(context.Background(), evidenceFor(server.URL))

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	r := results[0]
	if !r.Accessible || r.Dead {
		t.Errorf("result = %+v", r)
	}
	if r.EvidenceID != "E1" {
		t.Errorf("EvidenceID = %q", r.EvidenceID)
	}
	if r.LastModified == nil || r.AgeDays == nil {
		t.Error("expected Last-Modified to be parsed")
	}
	if !r.Stale {
		t.Error("a 2023 document should be stale")
	}
}

func TestChecker_DeadLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	checker := NewChecker(testConfig())
	results := checker.Check(context.Background(), evidenceFor(server.URL))

	if results[0].Accessible {
		t.Error("404 must not be accessible")
	}
	if !results[0].Dead {
		t.Error("404 must be marked dead")
	}
}

func TestChecker_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	checker := NewChecker(testConfig())
	results := checker.Check(context.Background(), evidenceFor(server.URL))

	if !results[0].Accessible {
		t.Errorf("expected success after retries, got %+v", results[0])
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("expected 3 attempts, got %d", got)
	}
}

func TestChecker_HTMLTitleProbe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte("<html><head><title> Certificate Portal </title></head><body></body></html>"))
		}
	}))
	defer server.Close()

	checker := NewChecker(testConfig())
	results := checker.Check(context.Background(), evidenceFor(server.URL))

	if results[0].Title != "Certificate Portal" {
		t.Errorf("Title = %q", results[0].Title)
	}
}

func TestChecker_RobotsDenied(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("User-agent: *\nDisallow: /private/\n"))
	})
	mux.HandleFunc("/private/", func(w http.ResponseWriter, r *http.Request) {
		t.Error("disallowed path was fetched")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	cfg := testConfig()
	cfg.RespectRobots = true
	checker := NewChecker(cfg)

	results := checker.Check(context.Background(), evidenceFor(server.URL+"/private/cert.pdf"))

	if !results[0].RobotsDenied {
		t.Errorf("expected robots denial, got %+v", results[0])
	}
	if results[0].Accessible {
		t.Error("denied URL must not be reported accessible")
	}
}

func TestChecker_SkipsEvidenceWithoutURL(t *testing.T) {
	checker := NewChecker(testConfig())

	results := checker.Check(context.Background(), []model.EvidenceObject{
		{ID: "E1", Title: "No document"},
	})

	if len(results) != 0 {
		t.Errorf("expected no results, got %+v", results)
	}
}

func TestExtractTitle(t *testing.T) {
	got := extractTitle(strings.NewReader("<html><head><meta charset=utf-8><title>Doc</title></head></html>"))
	if got != "Doc" {
		t.Errorf("extractTitle = %q", got)
	}

	if got := extractTitle(strings.NewReader("<html><body>no title</body></html>")); got != "" {
		t.Errorf("expected empty title, got %q", got)
	}
}
