package jobsearch

import "github.com/Mahak-Sharma/Resume-to-job/internal/skills"

// Score attaches the matching skills and the skill-match score to the job.
// The score is the percentage of the skill set found by case-insensitive
// substring match in the description, rounded and clamped to [0, 100]. An
// empty skill set or an empty description scores 0; neither is an error.
func Score(job *Job, set *skills.Set) {
	job.MatchingSkills = nil
	job.SkillMatchScore = 0

	if set == nil || set.Len() == 0 || job.Description == "" {
		return
	}

	matching := set.MatchingIn(job.Description)
	job.MatchingSkills = matching
	job.SkillMatchScore = clampScore(100 * float64(len(matching)) / float64(set.Len()))
}

// ScoreAll scores every job in place against the same skill set.
func ScoreAll(jobs []*Job, set *skills.Set) {
	for _, job := range jobs {
		Score(job, set)
	}
}
