// Package ats implements the deterministic ATS compatibility scorer: a
// rule-based text-analysis engine that extracts keywords from a job
// posting, weights them by category, matches them against a structured
// resume, and produces a composite 0-100 score with categorized,
// actionable recommendations. Every point awarded is traceable to a rule;
// there is no statistical modeling anywhere in this package.
package ats

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// keywordBudget is the keyword dimension's share of the 100-point total.
// The matcher's raw 0-50 output is rescaled into it (factor 0.8).
const keywordBudget = 40

// keywordRescale converts the matcher's raw scale to the keyword budget.
const keywordRescale = float64(keywordBudget) / float64(matchRawMax)

// CalculateATSScore scores a structured resume against a job description.
// It is a single-pass, side-effect-free computation: the same inputs
// always produce identical output, and calls may run concurrently without
// coordination. Missing optional fields and odd skills shapes degrade to
// sensible defaults; the only errors are a nil resume or a blank job
// description.
func CalculateATSScore(resume *types.StructuredResume, jobDescription string) (*types.ScoreResult, error) {
	if resume == nil {
		return nil, fmt.Errorf("resume is required")
	}
	if strings.TrimSpace(jobDescription) == "" {
		return nil, fmt.Errorf("job description is required")
	}

	jobKeywords := ExtractKeywords(jobDescription)
	match := MatchKeywords(resume, jobKeywords)

	experienceScore := scoreExperience(resume)
	skillsScore := scoreSkills(resume, jobDescription)
	educationScore := scoreEducation(resume, jobDescription)
	formatScore := scoreFormat(resume)

	recommendations := Recommend(resume, jobDescription, match)

	keywordScaled := float64(match.RawScore) * keywordRescale

	total := int(math.Round(keywordScaled + float64(experienceScore+skillsScore+educationScore+formatScore)))
	if total > 100 {
		total = 100
	}
	if total < 0 {
		total = 0
	}

	return &types.ScoreResult{
		Score: total,
		Keywords: types.Keywords{
			Matched: match.Matched,
			Missing: recommendations,
		},
		Recommendations: recommendations,
		Breakdown: types.ATSBreakdown{
			Keywords:   types.BreakdownItem{Score: int(math.Round(keywordScaled)), Max: keywordBudget},
			Experience: types.BreakdownItem{Score: experienceScore, Max: experienceMax},
			Skills:     types.BreakdownItem{Score: skillsScore, Max: skillsMax},
			Education:  types.BreakdownItem{Score: educationScore, Max: educationMax},
			Format:     types.BreakdownItem{Score: formatScore, Max: formatMax},
		},
		MissingKeywords: match.Missing,
	}, nil
}
