package ats

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// Sub-dimension point budgets. Together with the 40-point keyword share
// they sum to exactly 100.
const (
	experienceMax = 25
	skillsMax     = 15
	educationMax  = 15
	formatMax     = 5
)

// maxSkillsConsidered caps how many declared skills the skills sub-score
// looks at, so a padded skill list cannot dilute the ratio.
const maxSkillsConsidered = 10

// quantifiedPattern recognizes a bullet with a number, percentage, or
// dollar amount, treated as a proxy for demonstrated impact.
var quantifiedPattern = regexp.MustCompile(`\d+%|\$\d+|\d+`)

// degreeTerms are the degree levels checked for exact matching between a
// job description and a resume's education section.
var degreeTerms = []string{"bachelor", "master", "mba", "phd"}

// scoreExperience rewards quantified achievement language: the fraction of
// bullets carrying a metric scales 0-20 points, with a 5-point bonus for
// having at least two positions. Capped at 25.
func scoreExperience(resume *types.StructuredResume) int {
	bullets := resume.AllBullets()

	ratio := 0.0
	if len(bullets) > 0 {
		quantified := 0
		for _, bullet := range bullets {
			if quantifiedPattern.MatchString(bullet) {
				quantified++
			}
		}
		ratio = float64(quantified) / float64(len(bullets))
	}

	score := int(math.Round(ratio * 20))
	if len(resume.Experience) >= 2 {
		score += 5
	}
	if score > experienceMax {
		score = experienceMax
	}
	return score
}

// scoreSkills measures the fraction of declared skills (the first ten at
// most) that appear literally in the job description.
func scoreSkills(resume *types.StructuredResume, jobDescription string) int {
	skills := resume.Skills.List()
	if len(skills) == 0 {
		return 0
	}

	considered := len(skills)
	if considered > maxSkillsConsidered {
		considered = maxSkillsConsidered
	}

	jobLower := strings.ToLower(jobDescription)
	matched := 0
	for _, skill := range skills[:considered] {
		if strings.Contains(jobLower, strings.ToLower(skill)) {
			matched++
		}
	}

	return int(math.Round(float64(matched) / float64(considered) * skillsMax))
}

// scoreEducation awards the full 15 when the posting asks for no degree.
// Otherwise: 15 for an exact degree-level match, 12 for having some degree,
// 3 for listing no education at all.
func scoreEducation(resume *types.StructuredResume, jobDescription string) int {
	jobLower := strings.ToLower(jobDescription)
	if !degreeRequired(jobLower) {
		return educationMax
	}

	if len(resume.Education) == 0 {
		return 3
	}

	var degrees []string
	for _, edu := range resume.Education {
		degrees = append(degrees, strings.ToLower(edu.Degree))
	}
	resumeDegrees := strings.Join(degrees, " ")

	for _, term := range degreeTerms {
		if strings.Contains(jobLower, term) && strings.Contains(resumeDegrees, term) {
			return educationMax
		}
	}
	return 12
}

// degreeRequired reports whether a lowercased job description mentions a
// degree requirement.
func degreeRequired(jobLower string) bool {
	for _, term := range degreeTerms {
		if strings.Contains(jobLower, term) {
			return true
		}
	}
	return strings.Contains(jobLower, "degree")
}

// scoreFormat awards one point for each structural completeness check:
// a substantive summary, at least two positions, two or more bullets on
// every position, five or more skills, and at least one education entry.
func scoreFormat(resume *types.StructuredResume) int {
	score := 0

	if len(resume.Summary) > 50 {
		score++
	}
	if len(resume.Experience) >= 2 {
		score++
	}
	if allEntriesHaveBullets(resume.Experience, 2) {
		score++
	}
	if len(resume.Skills.List()) >= 5 {
		score++
	}
	if len(resume.Education) >= 1 {
		score++
	}

	return score
}

func allEntriesHaveBullets(entries []types.ExperienceItem, minBullets int) bool {
	if len(entries) == 0 {
		return false
	}
	for _, entry := range entries {
		if len(entry.Bullets) < minBullets {
			return false
		}
	}
	return true
}
