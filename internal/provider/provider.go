// Package provider defines the outbound job-search contract. Each backend
// gets its own adapter that maps the provider payload onto the canonical
// jobsearch.Job; the adapter to use is selected by configuration, never
// inferred from payload shape.
package provider

import (
	"context"

	"github.com/Mahak-Sharma/Resume-to-job/internal/jobsearch"
)

// Query is one outbound search request. Terms carries the titles or skills
// to search for; how they are encoded is up to the adapter.
type Query struct {
	Terms   []string
	Page    int
	PerPage int
}

// Response is the normalized outcome of one request. Count is the upstream
// total-count hint, which can exceed len(Jobs).
type Response struct {
	Jobs  []*jobsearch.Job
	Count int
}

// Provider is a job-search backend.
type Provider interface {
	// Name identifies the provider in logs and config.
	Name() string
	// Search issues one request and returns normalized records. Payloads
	// missing required fields are dropped during normalization, not
	// surfaced as errors.
	Search(ctx context.Context, q Query) (*Response, error)
}
