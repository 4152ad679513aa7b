package ats

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-tailor/internal/types"
)

// resumeToText flattens every textual field of a resume into one
// space-joined string for substring matching.
func resumeToText(resume *types.StructuredResume) string {
	var parts []string

	appendNonEmpty := func(values ...string) {
		for _, v := range values {
			if v != "" {
				parts = append(parts, v)
			}
		}
	}

	appendNonEmpty(resume.Contact.Name, resume.Contact.Email, resume.Summary)
	for _, exp := range resume.Experience {
		appendNonEmpty(exp.Company, exp.Role)
		appendNonEmpty(exp.Bullets...)
	}
	for _, edu := range resume.Education {
		appendNonEmpty(edu.School, edu.Degree, edu.Details)
	}
	appendNonEmpty(resume.Skills.List()...)

	return strings.Join(parts, " ")
}

// experienceText joins all experience bullets into one string.
func experienceText(resume *types.StructuredResume) string {
	return strings.Join(resume.AllBullets(), " ")
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// containsTerm reports whether term occurs in text as a whole term: the
// characters adjacent to the occurrence must not be word characters. This
// replaces a \b regex check, which breaks on terms ending in symbols
// such as "c++" or "ci/cd".
func containsTerm(text, term string) bool {
	return countTerm(text, term) > 0
}

// countTerm counts whole-term occurrences of term in text. Both arguments
// are expected to be lowercase already.
func countTerm(text, term string) int {
	if term == "" {
		return 0
	}

	count := 0
	offset := 0
	for {
		i := strings.Index(text[offset:], term)
		if i < 0 {
			return count
		}
		start := offset + i
		end := start + len(term)

		beforeOK := start == 0 || !boundaryConflict(rune(text[start-1]), rune(term[0]))
		afterOK := end == len(text) || !boundaryConflict(rune(text[end]), rune(term[len(term)-1]))
		if beforeOK && afterOK {
			count++
		}
		offset = start + len(term)
	}
}

// boundaryConflict reports whether a neighboring character glues onto the
// edge of a term. A boundary only exists when at least one side of the pair
// is a non-word character, mirroring regex \b semantics at term edges.
func boundaryConflict(neighbor, edge rune) bool {
	return isWordRune(neighbor) && isWordRune(edge)
}
