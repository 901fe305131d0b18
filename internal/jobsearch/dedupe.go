package jobsearch

// Dedupe collapses records that represent the same posting across multiple
// queries. Identity is the provider id, falling back to the exact
// (title, company) pair. The first occurrence wins and keeps its position;
// later collisions are discarded without merging fields.
func Dedupe(jobs []*Job) []*Job {
	seen := make(map[string]struct{}, len(jobs))
	out := make([]*Job, 0, len(jobs))

	for _, job := range jobs {
		if job == nil {
			continue
		}
		key := job.Identity()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, job)
	}

	return out
}
