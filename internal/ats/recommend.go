package ats

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// Limits on how many keywords each recommendation line names.
const (
	maxTechnicalSuggestions = 4
	maxToolSuggestions      = 3
	maxSoftSuggestions      = 2
	maxCertSuggestions      = 2
	maxSummarySuggestions   = 2
	maxRepeatSuggestions    = 2
)

// lowSkillOverlapThreshold triggers the generic skills-alignment line.
const lowSkillOverlapThreshold = 0.30

// lowQuantifiedRatio triggers the add-metrics line.
const lowQuantifiedRatio = 0.40

// Recommend produces the categorized, human-readable improvement lines
// for a scored resume, ordered by priority. Each rule appends at most one
// line, and only when its condition holds; the caller may truncate for
// display.
func Recommend(resume *types.StructuredResume, jobDescription string, match MatchResult) []string {
	var recs []string

	missingByCategory := groupByCategory(match.Missing)

	if tech := missingByCategory[CategoryTechnical]; len(tech) > 0 {
		recs = append(recs, "Skills: Add "+joinTop(tech, maxTechnicalSuggestions))
	}
	if tools := missingByCategory[CategoryTool]; len(tools) > 0 {
		recs = append(recs, "Tools: Highlight hands-on experience with "+joinTop(tools, maxToolSuggestions))
	}
	if soft := missingByCategory[CategorySoftSkill]; len(soft) > 0 {
		recs = append(recs, "Skills: Weave in soft skills like "+joinTop(soft, maxSoftSuggestions))
	}
	if certs := missingByCategory[CategoryCertification]; len(certs) > 0 {
		recs = append(recs, "Education: List relevant certifications such as "+joinTop(certs, maxCertSuggestions))
	}

	if line, ok := skillsAlignmentLine(resume, jobDescription); ok {
		recs = append(recs, line)
	}
	if line, ok := quantificationLine(resume); ok {
		recs = append(recs, line)
	}
	if line, ok := summaryKeywordLine(resume, match); ok {
		recs = append(recs, line)
	}
	if line, ok := educationLine(resume, jobDescription); ok {
		recs = append(recs, line)
	}
	if line, ok := repetitionLine(resume, match); ok {
		recs = append(recs, line)
	}

	return recs
}

// groupByCategory buckets keywords by classification, preserving order.
func groupByCategory(keywords []string) map[Category][]string {
	grouped := make(map[Category][]string)
	for _, keyword := range keywords {
		category := Classify(keyword)
		grouped[category] = append(grouped[category], keyword)
	}
	return grouped
}

func joinTop(keywords []string, limit int) string {
	if len(keywords) > limit {
		keywords = keywords[:limit]
	}
	return strings.Join(keywords, ", ")
}

// skillsAlignmentLine fires when the declared skills have low overlap with
// the job description text.
func skillsAlignmentLine(resume *types.StructuredResume, jobDescription string) (string, bool) {
	skills := resume.Skills.List()
	if len(skills) == 0 {
		return "", false
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

	if float64(matched)/float64(considered) >= lowSkillOverlapThreshold {
		return "", false
	}
	return "Skills: Align your skills section with the job description; most listed skills do not appear in the posting", true
}

// quantificationLine fires when fewer than 40% of bullets carry a metric.
func quantificationLine(resume *types.StructuredResume) (string, bool) {
	bullets := resume.AllBullets()
	if len(bullets) == 0 {
		return "", false
	}

	quantified := 0
	for _, bullet := range bullets {
		if quantifiedPattern.MatchString(bullet) {
			quantified++
		}
	}

	if float64(quantified)/float64(len(bullets)) >= lowQuantifiedRatio {
		return "", false
	}
	return "Experience: Add numbers, percentages, or dollar amounts to your achievements", true
}

// summaryKeywordLine suggests moving top matched technical keywords into
// the summary, where ATS parsers and recruiters weight them highest.
func summaryKeywordLine(resume *types.StructuredResume, match MatchResult) (string, bool) {
	summary := strings.ToLower(resume.Summary)

	var absent []string
	for _, keyword := range match.Matched {
		if Classify(keyword) != CategoryTechnical {
			continue
		}
		if strings.Contains(summary, keyword) {
			continue
		}
		absent = append(absent, keyword)
		if len(absent) == maxSummarySuggestions {
			break
		}
	}

	if len(absent) == 0 {
		return "", false
	}
	return fmt.Sprintf("Summary: Mention %s in your professional summary for maximum impact", strings.Join(absent, ", ")), true
}

// educationLine fires when a degree is required but none is listed.
func educationLine(resume *types.StructuredResume, jobDescription string) (string, bool) {
	if len(resume.Education) > 0 {
		return "", false
	}
	if !degreeRequired(strings.ToLower(jobDescription)) {
		return "", false
	}
	return "Education: Add your education or relevant certifications", true
}

// repetitionLine suggests repeating important matched keywords that occur
// only once in the resume.
func repetitionLine(resume *types.StructuredResume, match MatchResult) (string, bool) {
	resumeText := strings.ToLower(resumeToText(resume))

	top := match.Matched
	if len(top) > 5 {
		top = top[:5]
	}

	var once []string
	for _, keyword := range top {
		if countTerm(resumeText, keyword) < 2 {
			once = append(once, keyword)
			if len(once) == maxRepeatSuggestions {
				break
			}
		}
	}

	if len(once) == 0 {
		return "", false
	}
	return fmt.Sprintf("Keywords: Mention %s more than once to reinforce relevance", strings.Join(once, ", ")), true
}
