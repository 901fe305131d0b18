package jobsearch

import "github.com/Mahak-Sharma/Resume-to-job/internal/skills"

// Result is the scored, ranked outcome of one search session. TotalResults
// is the upstream count hint, which can exceed the number of records fetched.
type Result struct {
	Jobs         *Jobs
	TotalResults int
}

// Assemble runs the order-sensitive post-processing over the full merged
// record list: dedup first, then scoring, then the stable rank. It must only
// be called once all reachable records have been normalized, so no result is
// ever partially scored or partially deduplicated.
func Assemble(records []*Job, set *skills.Set, totalResults int) *Result {
	deduped := Dedupe(records)
	ScoreAll(deduped, set)
	Rank(deduped)

	return &Result{
		Jobs:         &Jobs{Items: deduped},
		TotalResults: totalResults,
	}
}

// Page returns the 1-based page of the ranked list.
func (r *Result) Page(pageSize, page int) []*Job {
	return Paginate(r.Jobs.Items, pageSize, page)
}
