// Package skills builds the normalized skill set used for job matching.
package skills

import "strings"

// Prefixes the resume parser and the manual picker attach to skill values.
// They mark provenance only and are stripped before matching.
var provenancePrefixes = []string{
	"Extracted:",
	"Other:",
}

// Set is an ordered collection of unique skills. Uniqueness is decided by
// fingerprint; display values keep the casing of their first occurrence.
type Set struct {
	values []string
	seen   map[string]struct{}
}

// NewSet returns an empty skill set.
func NewSet() *Set {
	return &Set{seen: make(map[string]struct{})}
}

// Build unions extracted and manual skills into one set, preserving
// first-seen order. An empty result is a valid value; callers decide
// whether an empty set is an error.
func Build(extracted, manual []string) *Set {
	s := NewSet()
	for _, skill := range extracted {
		s.Add(skill)
	}
	for _, skill := range manual {
		s.Add(skill)
	}
	return s
}

// Add normalizes the skill and appends it unless its fingerprint is
// already present. It reports whether the skill was added.
func (s *Set) Add(skill string) bool {
	normalized := Normalize(skill)
	if normalized == "" {
		return false
	}

	fp := Fingerprint(normalized)
	if _, ok := s.seen[fp]; ok {
		return false
	}

	s.seen[fp] = struct{}{}
	s.values = append(s.values, normalized)
	return true
}

// Values returns the skills in first-seen order.
func (s *Set) Values() []string {
	out := make([]string, len(s.values))
	copy(out, s.values)
	return out
}

func (s *Set) Len() int {
	return len(s.values)
}

// Contains reports whether the skill is in the set, compared by fingerprint.
func (s *Set) Contains(skill string) bool {
	_, ok := s.seen[Fingerprint(Normalize(skill))]
	return ok
}

// MatchingIn returns the subset of skills whose fingerprint occurs as a
// substring of the given text. Display values are returned, not fingerprints.
func (s *Set) MatchingIn(text string) []string {
	if text == "" {
		return nil
	}

	lowered := strings.ToLower(text)
	var matching []string
	for _, skill := range s.values {
		if strings.Contains(lowered, Fingerprint(skill)) {
			matching = append(matching, skill)
		}
	}
	return matching
}

// Normalize strips provenance prefixes and surrounding whitespace. It returns
// an empty string when nothing usable remains.
func Normalize(skill string) string {
	skill = strings.TrimSpace(skill)
	for _, prefix := range provenancePrefixes {
		if len(skill) >= len(prefix) && strings.EqualFold(skill[:len(prefix)], prefix) {
			skill = strings.TrimSpace(skill[len(prefix):])
			break
		}
	}
	return skill
}

// Fingerprint is the lowercase form used for equality and substring checks.
func Fingerprint(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}
