// Package jobsearch holds the canonical job record and the post-processing
// steps shared by all providers: deduplication, skill scoring, ranking and
// pagination.
package jobsearch

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// Job is the provider-independent record every search result is mapped into
// before scoring. Optional fields stay zero values when the provider did not
// supply them; presentation defaults like "N/A" are a display concern.
type Job struct {
	ID           string  `json:"id,omitempty"`
	Title        string  `json:"title"`
	CompanyName  string  `json:"company_name"`
	Location     string  `json:"location,omitempty"`
	Description  string  `json:"description,omitempty"`
	ApplyLink    string  `json:"apply_link,omitempty"`
	Category     string  `json:"category,omitempty"`
	SalaryMin    float64 `json:"salary_min,omitempty"`
	SalaryMax    float64 `json:"salary_max,omitempty"`
	HasSalaryMin bool    `json:"-"`
	HasSalaryMax bool    `json:"-"`
	ContractType string  `json:"contract_type,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`

	// MatchedSkill is the query term that surfaced this job in fan-out mode.
	MatchedSkill string `json:"matched_skill,omitempty"`

	// Attached once during scoring, immutable afterwards.
	MatchingSkills  []string `json:"matching_skills,omitempty"`
	SkillMatchScore int      `json:"skill_match_score"`
}

// Identity returns the dedup key: the provider id when present, otherwise
// the exact (title, company) pair. A NUL separator keeps the two parts from
// colliding with each other.
func (j *Job) Identity() string {
	if j.ID != "" {
		return j.ID
	}
	return j.Title + "\x00" + j.CompanyName
}

// Jobs is an ordered result list for one search session.
type Jobs struct {
	Items []*Job
}

func (j *Jobs) Len() int {
	return len(j.Items)
}

func (j *Jobs) FindByID(id string) *Job {
	for _, job := range j.Items {
		if job.ID == id {
			return job
		}
	}
	return nil
}

// DumpToTmpFile writes the list as indented JSON to a temp file and returns
// its name.
func (j *Jobs) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "jobs_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(j); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// ReportByCompany groups jobs per company for a quick human-readable report.
func (j *Jobs) ReportByCompany() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, job := range j.Items {
		entry := map[string]string{
			"title":       job.Title,
			"location":    job.Location,
			"apply_link":  job.ApplyLink,
			"skill_match": fmt.Sprintf("%d%%", job.SkillMatchScore),
		}
		if len(job.MatchingSkills) > 0 {
			entry["matching_skills"] = strings.Join(job.MatchingSkills, ", ")
		}
		if job.HasSalaryMin || job.HasSalaryMax {
			entry["salary"] = fmt.Sprintf("%.0f-%.0f", job.SalaryMin, job.SalaryMax)
		}
		report[job.CompanyName] = append(report[job.CompanyName], entry)
	}
	return report
}

// ParseCreated turns the provider's creation timestamp into a calendar date.
// Providers disagree on the representation: some send RFC3339 strings, some
// date-only strings, some epoch milliseconds. Unparseable input yields the
// zero time.
func ParseCreated(v any) time.Time {
	switch typed := v.(type) {
	case nil:
		return time.Time{}
	case time.Time:
		return typed.UTC().Truncate(24 * time.Hour)
	case string:
		return parseCreatedString(typed)
	case float64:
		return fromMillis(int64(typed))
	case int64:
		return fromMillis(typed)
	case int:
		return fromMillis(int64(typed))
	case json.Number:
		if millis, err := typed.Int64(); err == nil {
			return fromMillis(millis)
		}
		return parseCreatedString(typed.String())
	default:
		return time.Time{}
	}
}

func parseCreatedString(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}

	if millis, err := strconv.ParseInt(s, 10, 64); err == nil {
		return fromMillis(millis)
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UTC().Truncate(24 * time.Hour)
		}
	}
	return time.Time{}
}

func fromMillis(millis int64) time.Time {
	if millis <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(millis).UTC().Truncate(24 * time.Hour)
}

// clampScore keeps a computed score inside the displayable range.
func clampScore(score float64) int {
	if math.IsNaN(score) {
		return 0
	}
	rounded := int(math.Round(score))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}
