package adzuna

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Mahak-Sharma/Resume-to-job/internal/provider"

	"go.uber.org/zap"
)

const sampleResponse = `{
	"count": 1234,
	"results": [
		{
			"id": "4123",
			"title": "Python Developer",
			"company": {"display_name": "Acme"},
			"location": {"display_name": "Bengaluru"},
			"category": {"label": "IT Jobs"},
			"description": "We need a Python developer",
			"redirect_url": "https://example.com/apply/4123",
			"salary_min": 500000,
			"salary_max": 900000,
			"contract_type": "permanent",
			"created": "2024-05-17T09:30:00Z"
		},
		{
			"id": "4124",
			"title": "",
			"description": "missing title, must be dropped"
		},
		{
			"id": "4125",
			"title": "Data Analyst",
			"company": {"display_name": "Globex"}
		}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := New(zap.NewNop(), "test-id", "test-key")
	client.APIURL = server.URL
	return client
}

func TestSearch(t *testing.T) {
	t.Parallel()

	var gotQuery map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/jobs/in/search/1" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		gotQuery = map[string]string{}
		for key := range r.URL.Query() {
			gotQuery[key] = r.URL.Query().Get(key)
		}
		w.Write([]byte(sampleResponse))
	})

	resp, err := client.Search(context.Background(), provider.Query{Terms: []string{"Python"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotQuery["app_id"] != "test-id" || gotQuery["app_key"] != "test-key" {
		t.Fatalf("auth params not sent: %v", gotQuery)
	}
	if gotQuery["what"] != "Python" {
		t.Fatalf("expected what=Python, got %q", gotQuery["what"])
	}
	if gotQuery["results_per_page"] != "10" {
		t.Fatalf("expected default results_per_page=10, got %q", gotQuery["results_per_page"])
	}
	if gotQuery["sort_by"] != "relevance" {
		t.Fatalf("expected sort_by=relevance, got %q", gotQuery["sort_by"])
	}

	if resp.Count != 1234 {
		t.Fatalf("expected count 1234, got %d", resp.Count)
	}

	// The titleless result is dropped, not propagated.
	if len(resp.Jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(resp.Jobs))
	}

	job := resp.Jobs[0]
	if job.ID != "4123" || job.CompanyName != "Acme" || job.Location != "Bengaluru" {
		t.Fatalf("unexpected normalization: %+v", job)
	}
	if job.ApplyLink != "https://example.com/apply/4123" {
		t.Fatalf("unexpected apply link: %s", job.ApplyLink)
	}
	if job.Category != "IT Jobs" {
		t.Fatalf("unexpected category: %s", job.Category)
	}
	if !job.HasSalaryMin || job.SalaryMin != 500000 || !job.HasSalaryMax || job.SalaryMax != 900000 {
		t.Fatalf("unexpected salary: %+v", job)
	}
	if expect := time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC); !job.CreatedAt.Equal(expect) {
		t.Fatalf("expected created %v, got %v", expect, job.CreatedAt)
	}

	// Absent fields stay zero values, never placeholder strings.
	sparse := resp.Jobs[1]
	if sparse.Location != "" || sparse.ContractType != "" || sparse.HasSalaryMin || sparse.HasSalaryMax {
		t.Fatalf("expected absent fields to stay empty: %+v", sparse)
	}
	if !sparse.CreatedAt.IsZero() {
		t.Fatalf("expected zero created date, got %v", sparse.CreatedAt)
	}
}

func TestSearchBadStatus(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	if _, err := client.Search(context.Background(), provider.Query{Terms: []string{"Go"}}); err == nil {
		t.Fatalf("expected error for non-success status")
	}
}

func TestSearchPageClamping(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/jobs/in/search/1" {
			t.Errorf("page below 1 must clamp to 1, got path %s", r.URL.Path)
		}
		w.Write([]byte(`{"count": 0, "results": []}`))
	})

	resp, err := client.Search(context.Background(), provider.Query{Terms: []string{"Go"}, Page: -2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Jobs) != 0 {
		t.Fatalf("expected no jobs, got %d", len(resp.Jobs))
	}
}
