// Package recommend produces recommended job titles for a skill set when the
// resume analysis did not ship any.
package recommend

import (
	"context"

	"github.com/Mahak-Sharma/Resume-to-job/internal/resume"
)

// Recommender suggests job titles with similarity scores for the given
// skills, best match first.
type Recommender interface {
	Recommend(ctx context.Context, skills []string) ([]resume.RecommendedJob, error)
}
