package ats

import (
	"math"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// Bonus multipliers for keyword placement and repetition. Recruiters and
// ATS parsers weight skills mentioned prominently and repeatedly higher
// than a single incidental mention, so bonuses stack multiplicatively on
// the base category weight.
const (
	summaryLocationBonus    = 1.30
	experienceLocationBonus = 1.15
	highFrequencyBonus      = 1.15 // keyword occurs 3+ times
	mediumFrequencyBonus    = 1.08 // keyword occurs exactly twice
)

// matchRawMax is the raw scale of the keyword matcher before the top-level
// scorer rescales it into its share of the 100-point budget.
const matchRawMax = 50

// MatchResult is the outcome of matching job keywords against a resume.
// Matched and Missing partition the keyword list: every extracted keyword
// lands in exactly one of the two, in extraction order.
type MatchResult struct {
	RawScore int      // 0-50
	Matched  []string
	Missing  []string
}

// MatchKeywords tests each job keyword for literal presence in the resume
// and accumulates category-weighted points with location and frequency
// bonuses. The raw score is the earned fraction of the maximum possible
// points scaled to 0-50.
func MatchKeywords(resume *types.StructuredResume, jobKeywords []string) MatchResult {
	resumeText := strings.ToLower(resumeToText(resume))
	summary := strings.ToLower(resume.Summary)
	experience := strings.ToLower(experienceText(resume))

	result := MatchResult{
		Matched: make([]string, 0, len(jobKeywords)),
		Missing: make([]string, 0, len(jobKeywords)),
	}

	var earned float64
	maxPossible := 0

	for _, keyword := range jobKeywords {
		weight := Weight(Classify(keyword))
		maxPossible += weight

		if !strings.Contains(resumeText, keyword) {
			result.Missing = append(result.Missing, keyword)
			continue
		}
		result.Matched = append(result.Matched, keyword)

		points := float64(weight)

		switch {
		case strings.Contains(summary, keyword):
			points *= summaryLocationBonus
		case strings.Contains(experience, keyword):
			points *= experienceLocationBonus
		}

		switch frequency := countTerm(resumeText, keyword); {
		case frequency >= 3:
			points *= highFrequencyBonus
		case frequency == 2:
			points *= mediumFrequencyBonus
		}

		earned += points
	}

	if maxPossible == 0 {
		return result
	}

	raw := int(math.Round(earned / float64(maxPossible) * matchRawMax))
	if raw > matchRawMax {
		raw = matchRawMax
	}
	if raw < 0 {
		raw = 0
	}
	result.RawScore = raw
	return result
}
