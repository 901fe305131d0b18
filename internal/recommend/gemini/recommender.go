package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/Mahak-Sharma/Resume-to-job/internal/resume"
	"github.com/Mahak-Sharma/Resume-to-job/internal/utils"

	"go.uber.org/zap"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed prompt.md
var promptTemplate string

const (
	defaultMaxTitles    = 5
	defaultMaxLogLength = 200
)

// Recommender asks Gemini for job titles matching a skill set.
type Recommender struct {
	generator contentGenerator
	maxTitles int
	maxLogLen int
	logger    *zap.Logger
}

func NewRecommender(generator contentGenerator, maxTitles, maxLogLength int, logger *zap.Logger) *Recommender {
	if maxTitles <= 0 {
		maxTitles = defaultMaxTitles
	}
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Recommender{
		generator: generator,
		maxTitles: maxTitles,
		maxLogLen: maxLogLength,
		logger:    logger,
	}
}

func (r *Recommender) Recommend(ctx context.Context, skills []string) ([]resume.RecommendedJob, error) {
	if len(skills) == 0 {
		return nil, fmt.Errorf("at least one skill is required")
	}

	skillsJSON, err := json.Marshal(skills)
	if err != nil {
		return nil, fmt.Errorf("marshal skills: %w", err)
	}

	prompt := buildPrompt(string(skillsJSON), r.maxTitles)

	r.logger.Debug("gemini recommend request",
		zap.Int("skills", len(skills)),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, r.maxLogLen)),
	)

	raw, err := r.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("gemini recommend response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, r.maxLogLen)),
	)

	jobs, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	if len(jobs) > r.maxTitles {
		jobs = jobs[:r.maxTitles]
	}
	return jobs, nil
}

func buildPrompt(skillsJSON string, maxTitles int) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Skills:\n{{SKILLS_JSON}}\n\nReturn up to {{MAX_TITLES}} job titles as JSON."
	}
	prompt := strings.ReplaceAll(template, "{{SKILLS_JSON}}", skillsJSON)
	return strings.ReplaceAll(prompt, "{{MAX_TITLES}}", fmt.Sprintf("%d", maxTitles))
}

// parseResponse extracts the JSON array from the model output, tolerating
// surrounding prose and markdown code fences.
func parseResponse(raw string) ([]resume.RecommendedJob, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON array in model response")
	}

	var parsed []resume.RecommendedJob
	if err := json.Unmarshal([]byte(raw[start:end+1]), &parsed); err != nil {
		return nil, fmt.Errorf("parse model response: %w", err)
	}

	jobs := make([]resume.RecommendedJob, 0, len(parsed))
	for _, job := range parsed {
		job.Title = strings.TrimSpace(job.Title)
		if job.Title == "" {
			continue
		}
		if job.SimilarityScore < 0 {
			job.SimilarityScore = 0
		}
		if job.SimilarityScore > 100 {
			job.SimilarityScore = 100
		}
		jobs = append(jobs, job)
	}

	if len(jobs) == 0 {
		return nil, fmt.Errorf("model response contains no usable titles")
	}
	return jobs, nil
}
