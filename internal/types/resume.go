// Package types provides type definitions for structured data used throughout the resume-tailor system.
package types

import (
	"encoding/json"
	"sort"
	"strings"
)

// Contact holds the contact details of a resume. Only the name is required.
type Contact struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Location string `json:"location,omitempty"`
}

// ExperienceItem represents a single job on the resume.
// Bullet order is display order only; scoring treats bullets as a set.
type ExperienceItem struct {
	Company string   `json:"company"`
	Role    string   `json:"role"`
	Dates   string   `json:"dates"`
	Bullets []string `json:"bullets"`
}

// EducationItem represents a single education entry on the resume.
type EducationItem struct {
	School  string `json:"school"`
	Degree  string `json:"degree"`
	Dates   string `json:"dates"`
	Details string `json:"details,omitempty"`
}

// Skills is the resume skills section. Upstream producers (LLM extraction,
// user edits, older stored records) emit it in three shapes: a flat list of
// strings, a mapping of category name to list, or a single free-text string.
// All three are normalized into one flat list at unmarshal time; scoring
// code only ever sees the flat form. An unrecognized shape normalizes to
// empty rather than failing.
type Skills struct {
	flat []string
}

// NewSkills builds a Skills value from an already-flat list.
func NewSkills(skills []string) Skills {
	return Skills{flat: cleanSkillList(skills)}
}

// List returns the normalized flat skill list.
func (s Skills) List() []string {
	return s.flat
}

// IsEmpty reports whether no skills are declared.
func (s Skills) IsEmpty() bool {
	return len(s.flat) == 0
}

// UnmarshalJSON accepts a JSON array of strings, an object mapping category
// names to arrays of strings, a single string, or null.
func (s *Skills) UnmarshalJSON(data []byte) error {
	s.flat = nil

	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	// Flat list shape
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		s.flat = cleanSkillList(list)
		return nil
	}

	// Categorized shape, e.g. {"technical": [...], "soft": [...]}.
	// Category names are sorted so the flattened order is deterministic.
	var categorized map[string][]string
	if err := json.Unmarshal(data, &categorized); err == nil {
		names := make([]string, 0, len(categorized))
		for name := range categorized {
			names = append(names, name)
		}
		sort.Strings(names)

		var flat []string
		for _, name := range names {
			flat = append(flat, categorized[name]...)
		}
		s.flat = cleanSkillList(flat)
		return nil
	}

	// Free-text shape, e.g. "Python, SQL"
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		s.flat = cleanSkillList(splitSkillText(text))
		return nil
	}

	// Unrecognized shape degrades to empty; the scorer is advisory and
	// must not reject a resume over a malformed skills section.
	return nil
}

// MarshalJSON always emits the canonical flat-list shape.
func (s Skills) MarshalJSON() ([]byte, error) {
	if s.flat == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.flat)
}

// splitSkillText splits a free-text skill string on common separators.
func splitSkillText(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || r == '|' || r == '\n'
	})
}

// cleanSkillList trims entries and drops empty ones.
func cleanSkillList(skills []string) []string {
	cleaned := make([]string, 0, len(skills))
	for _, skill := range skills {
		skill = strings.TrimSpace(skill)
		if skill != "" {
			cleaned = append(cleaned, skill)
		}
	}
	if len(cleaned) == 0 {
		return nil
	}
	return cleaned
}

// StructuredResume is the normalized, parsed representation of a resume,
// as opposed to the original document form. The scorer only reads it.
type StructuredResume struct {
	Contact    Contact          `json:"contact"`
	Summary    string           `json:"summary,omitempty"`
	Experience []ExperienceItem `json:"experience"`
	Education  []EducationItem  `json:"education"`
	Skills     Skills           `json:"skills"`
}

// AllBullets returns every experience bullet across all entries.
func (r *StructuredResume) AllBullets() []string {
	var bullets []string
	for _, exp := range r.Experience {
		bullets = append(bullets, exp.Bullets...)
	}
	return bullets
}
