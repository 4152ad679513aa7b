package ats

import (
	"sort"
	"strings"
)

// maxKeywords caps the number of keywords extracted from a job description.
const maxKeywords = 50

// minTokenLength drops very short tokens ("a", "of", "to", stray initials).
const minTokenLength = 3

// stopWords are common English function words plus job-posting filler.
// The filler list matters: without it, words like "experience" and
// "required" dominate the top of every extraction and drown out real
// signal. Matching is exact; tokens that merely contain a stop word
// survive.
var stopWords = map[string]bool{
	// function words
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "but": true, "by": true, "for": true, "from": true,
	"has": true, "have": true, "he": true, "her": true, "his": true,
	"in": true, "is": true, "it": true, "its": true, "not": true,
	"of": true, "on": true, "or": true, "our": true, "she": true,
	"that": true, "the": true, "their": true, "them": true, "they": true,
	"this": true, "these": true, "those": true, "to": true, "was": true,
	"we": true, "were": true, "what": true, "when": true, "where": true,
	"which": true, "while": true, "who": true, "will": true, "with": true,
	"would": true, "you": true, "your": true,
	// job-posting filler
	"ability": true, "able": true, "about": true, "across": true,
	"also": true, "applicant": true, "applicants": true, "apply": true,
	"benefits": true, "candidate": true, "candidates": true,
	"company": true, "description": true, "duties": true,
	"environment": true, "experience": true, "etc": true,
	"ideal": true, "including": true, "job": true, "join": true,
	"knowledge": true, "looking": true, "must": true, "new": true,
	"opportunity": true, "other": true, "plus": true, "position": true,
	"preferred": true, "qualifications": true, "related": true,
	"required": true, "requirements": true, "responsibilities": true,
	"role": true, "salary": true, "seeking": true, "should": true,
	"skills": true, "strong": true, "team": true, "using": true,
	"well": true, "work": true, "working": true, "years": true,
}

// minGenericCount is the repetition threshold for unrecognized tokens. A
// generic word mentioned once is noise; recognized technical and tool terms
// are exempt and survive at frequency one.
const minGenericCount = 2

// ExtractKeywords turns free text (a job description) into a ranked list of
// candidate keywords. It is deterministic and pure: lowercase, strip
// non-word characters, drop short tokens and stop words, count frequency,
// drop one-off generic tokens, force-include recognized domain terms found
// in the raw text, then rank by frequency descending (ties alphabetical)
// and truncate to the top 50.
func ExtractKeywords(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	lower := strings.ToLower(text)

	cleaned := strings.Map(func(r rune) rune {
		if isWordRune(r) {
			return r
		}
		return ' '
	}, lower)

	counts := make(map[string]int)
	for _, token := range strings.Fields(cleaned) {
		if len(token) < minTokenLength || stopWords[token] {
			continue
		}
		counts[token]++
	}

	for token, count := range counts {
		if count < minGenericCount && !IsTechnical(token) && !IsTool(token) {
			delete(counts, token)
		}
	}

	// Recognized technical and tool terms are added from the raw text even
	// at frequency one. Multi-word and symbol-bearing terms ("machine
	// learning", "ci/cd", "c++") only survive via this pass, since token
	// splitting breaks them apart.
	for _, term := range domainTerms() {
		if counts[term] > 0 {
			continue
		}
		if n := countTerm(lower, term); n > 0 {
			counts[term] = n
		}
	}

	keywords := make([]string, 0, len(counts))
	for word := range counts {
		keywords = append(keywords, word)
	}
	sort.Slice(keywords, func(i, j int) bool {
		if counts[keywords[i]] != counts[keywords[j]] {
			return counts[keywords[i]] > counts[keywords[j]]
		}
		return keywords[i] < keywords[j]
	})

	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}
	return keywords
}
