// Package resume carries the data handed over by the excluded collaborators:
// the resume-analysis service output and the manual skill selection. The
// matching core takes these as explicit inputs and never reaches into any
// ambient storage itself.
package resume

import (
	"encoding/json"
	"os"
	"strings"
)

// Analysis is the resume-analysis document as the external parser emits it:
// extracted skills plus recommended job titles with similarity scores.
type Analysis struct {
	ExtractedInfo   ExtractedInfo    `json:"extractedInfo"`
	RecommendedJobs []RecommendedJob `json:"recommendedJobs"`
}

type ExtractedInfo struct {
	Skills    []string `json:"Skills"`
	BatchYear string   `json:"Batch_Year,omitempty"`
}

type RecommendedJob struct {
	Title           string   `json:"title"`
	SimilarityScore float64  `json:"similarity_score"`
	MatchingSkills  []string `json:"matching_skills,omitempty"`
}

// Selection is the manually picked skill list.
type Selection struct {
	Skills []string `json:"skills"`
}

// AnalysisFromFile loads an analysis document. An empty path or an empty
// file yields an empty analysis, which is a valid input.
func AnalysisFromFile(path string) (*Analysis, error) {
	var analysis Analysis
	if err := decodeFile(path, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// SelectionFromFile loads the manual skill selection. Same empty-input rules
// as AnalysisFromFile.
func SelectionFromFile(path string) (*Selection, error) {
	var selection Selection
	if err := decodeFile(path, &selection); err != nil {
		return nil, err
	}
	return &selection, nil
}

func decodeFile(path string, target any) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return err
	}
	if stat.Size() == 0 {
		return nil
	}

	return json.NewDecoder(file).Decode(target)
}

// Skills returns the extracted skills, nil-safe.
func (a *Analysis) Skills() []string {
	if a == nil {
		return nil
	}
	return a.ExtractedInfo.Skills
}

// RecommendedTitles returns up to limit non-empty recommended job titles in
// document order.
func (a *Analysis) RecommendedTitles(limit int) []string {
	if a == nil || limit <= 0 {
		return nil
	}

	titles := make([]string, 0, limit)
	for _, job := range a.RecommendedJobs {
		title := strings.TrimSpace(job.Title)
		if title == "" {
			continue
		}
		titles = append(titles, title)
		if len(titles) == limit {
			break
		}
	}
	return titles
}
