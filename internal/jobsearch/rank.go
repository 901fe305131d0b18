package jobsearch

import "sort"

// Rank sorts jobs by skill-match score descending. The sort is stable, so
// ties keep their prior relative order.
func Rank(jobs []*Job) {
	sort.SliceStable(jobs, func(i, k int) bool {
		return jobs[i].SkillMatchScore > jobs[k].SkillMatchScore
	})
}

// Paginate returns the page-sized slice for a 1-based page number. A page
// number below 1 is clamped to 1; a page past the end returns an empty slice
// rather than an error. The returned slice aliases the input.
func Paginate(jobs []*Job, pageSize, page int) []*Job {
	if pageSize <= 0 {
		return nil
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	if start >= len(jobs) {
		return []*Job{}
	}

	end := start + pageSize
	if end > len(jobs) {
		end = len(jobs)
	}
	return jobs[start:end]
}

// Pages returns the number of pages the list occupies at the given size.
func Pages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
