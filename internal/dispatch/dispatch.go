// Package dispatch turns the skill/title set into outbound search requests
// and merges the answers into one record list.
package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mahak-Sharma/Resume-to-job/internal/jobsearch"
	"github.com/Mahak-Sharma/Resume-to-job/internal/provider"
	"github.com/Mahak-Sharma/Resume-to-job/internal/skills"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultMaxTerms caps how many titles/skills one dispatch carries.
	DefaultMaxTerms = 5

	defaultConcurrency = 4
)

// ErrNoSearchTerms is raised before any network call when neither
// recommended titles nor skills yield a usable query term.
var ErrNoSearchTerms = errors.New("no search terms: no usable skills or titles")

// Config tunes one dispatcher. The zero value means a single batched query
// with the default term cap.
type Config struct {
	// FanOut switches to the legacy one-request-per-term mode.
	FanOut bool
	// MaxTerms caps the query terms; DefaultMaxTerms when <= 0.
	MaxTerms int
	// Concurrency bounds parallel sub-queries in fan-out mode.
	Concurrency int
	// PerPage is forwarded to the provider; 0 keeps the provider default.
	PerPage int
}

type Dispatcher struct {
	provider    provider.Provider
	logger      *zap.Logger
	fanOut      bool
	maxTerms    int
	concurrency int
	perPage     int
}

func New(p provider.Provider, cfg *Config, logger *zap.Logger) *Dispatcher {
	if cfg == nil {
		cfg = &Config{}
	}

	maxTerms := cfg.MaxTerms
	if maxTerms <= 0 {
		maxTerms = DefaultMaxTerms
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	return &Dispatcher{
		provider:    p,
		logger:      logger,
		fanOut:      cfg.FanOut,
		maxTerms:    maxTerms,
		concurrency: concurrency,
		perPage:     cfg.PerPage,
	}
}

// Dispatch queries the provider and returns the merged, normalized records
// plus the upstream total-count hint. Recommended titles win over skills
// when present; with no usable terms it fails fast with ErrNoSearchTerms.
func (d *Dispatcher) Dispatch(ctx context.Context, set *skills.Set, recommendedTitles []string) ([]*jobsearch.Job, int, error) {
	terms := d.buildTerms(set, recommendedTitles)
	if len(terms) == 0 {
		return nil, 0, ErrNoSearchTerms
	}

	d.logger.Info("dispatching search",
		zap.String("provider", d.provider.Name()),
		zap.Strings("terms", terms),
		zap.Bool("fan_out", d.fanOut),
	)

	if !d.fanOut {
		resp, err := d.provider.Search(ctx, provider.Query{Terms: terms, PerPage: d.perPage})
		if err != nil {
			return nil, 0, fmt.Errorf("search: %w", err)
		}
		return resp.Jobs, resp.Count, nil
	}

	return d.fanOutSearch(ctx, terms)
}

// buildTerms applies the priority policy: recommended titles first, then
// skills, capped at maxTerms.
func (d *Dispatcher) buildTerms(set *skills.Set, recommendedTitles []string) []string {
	source := recommendedTitles
	if len(source) == 0 && set != nil {
		source = set.Values()
	}

	terms := make([]string, 0, d.maxTerms)
	for _, term := range source {
		if term == "" {
			continue
		}
		terms = append(terms, term)
		if len(terms) == d.maxTerms {
			break
		}
	}
	return terms
}

// fanOutSearch issues one sub-query per term concurrently. Completion order
// never leaks into the result: answers land in per-term slots and are merged
// in query-issue order. A failed sub-query is logged and skipped; only when
// every sub-query fails does the dispatcher raise the aggregate error.
func (d *Dispatcher) fanOutSearch(ctx context.Context, terms []string) ([]*jobsearch.Job, int, error) {
	slots := make([]*provider.Response, len(terms))
	failures := make([]error, len(terms))

	g := new(errgroup.Group)
	g.SetLimit(d.concurrency)

	for i, term := range terms {
		g.Go(func() error {
			resp, err := d.provider.Search(ctx, provider.Query{
				Terms:   []string{term},
				PerPage: d.perPage,
			})
			if err != nil {
				failures[i] = fmt.Errorf("%q: %w", term, err)
				return nil
			}
			slots[i] = resp
			return nil
		})
	}

	// Sub-queries never return errors through the group, so Wait only
	// synchronizes.
	_ = g.Wait()

	var jobs []*jobsearch.Job
	count := 0
	failed := 0
	for i, term := range terms {
		if failures[i] != nil {
			failed++
			d.logger.Warn("sub-query failed, skipping",
				zap.String("term", term),
				zap.Error(failures[i]),
			)
			continue
		}

		resp := slots[i]
		for _, job := range resp.Jobs {
			job.MatchedSkill = term
		}
		jobs = append(jobs, resp.Jobs...)
		count += resp.Count
	}

	if failed == len(terms) {
		return nil, 0, fmt.Errorf("all %d sub-queries failed: %w", len(terms), multierr.Combine(failures...))
	}

	if failed > 0 {
		d.logger.Info("partial fan-out result",
			zap.Int("failed", failed),
			zap.Int("succeeded", len(terms)-failed),
		)
	}

	return jobs, count, nil
}
