package jobsearch

import (
	"reflect"
	"testing"

	"github.com/Mahak-Sharma/Resume-to-job/internal/skills"
)

func TestScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		skills         []string
		description    string
		expectMatching []string
		expectScore    int
	}{
		{
			name:           "half of the skill set matches",
			skills:         []string{"Python", "React"},
			description:    "We need a Python developer",
			expectMatching: []string{"Python"},
			expectScore:    50,
		},
		{
			name:           "match is case insensitive",
			skills:         []string{"python"},
			description:    "Senior PYTHON engineer",
			expectMatching: []string{"python"},
			expectScore:    100,
		},
		{
			name:        "empty description scores zero",
			skills:      []string{"Python", "React"},
			description: "",
			expectScore: 0,
		},
		{
			name:        "no overlap scores zero",
			skills:      []string{"Rust"},
			description: "We need a Python developer",
			expectScore: 0,
		},
		{
			name:           "thirds are rounded",
			skills:         []string{"Go", "Rust", "Zig"},
			description:    "Go shop",
			expectMatching: []string{"Go"},
			expectScore:    33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			job := &Job{Title: "t", CompanyName: "c", Description: tt.description}
			Score(job, skills.Build(tt.skills, nil))

			if job.SkillMatchScore != tt.expectScore {
				t.Fatalf("expected score %d, got %d", tt.expectScore, job.SkillMatchScore)
			}
			if !reflect.DeepEqual(job.MatchingSkills, tt.expectMatching) {
				t.Fatalf("expected matching %v, got %v", tt.expectMatching, job.MatchingSkills)
			}
		})
	}
}

func TestScoreEmptySkillSet(t *testing.T) {
	t.Parallel()

	job := &Job{Description: "anything"}
	Score(job, skills.NewSet())

	if job.SkillMatchScore != 0 {
		t.Fatalf("expected score 0 for empty skill set, got %d", job.SkillMatchScore)
	}
	if job.MatchingSkills != nil {
		t.Fatalf("expected no matching skills, got %v", job.MatchingSkills)
	}
}

func TestScoreAllStaysInRange(t *testing.T) {
	t.Parallel()

	set := skills.Build([]string{"Go", "Python", "SQL"}, nil)
	jobs := []*Job{
		{Description: "Go Python SQL everything"},
		{Description: "Python only"},
		{Description: ""},
	}

	ScoreAll(jobs, set)

	for _, job := range jobs {
		if job.SkillMatchScore < 0 || job.SkillMatchScore > 100 {
			t.Fatalf("score %d out of range", job.SkillMatchScore)
		}
	}
	if jobs[0].SkillMatchScore != 100 {
		t.Fatalf("expected full match to score 100, got %d", jobs[0].SkillMatchScore)
	}
}
