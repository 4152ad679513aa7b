package ats

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommend_MissingTechnicalComesFirst(t *testing.T) {
	match := MatchResult{
		Missing: []string{"aws", "docker", "python", "terraform", "jenkins"},
	}
	resume := &types.StructuredResume{Contact: types.Contact{Name: "A"}}

	recs := Recommend(resume, "some posting", match)
	require.NotEmpty(t, recs)

	// up to four missing technical keywords, comma separated, in missing-order
	assert.Equal(t, "Skills: Add aws, docker, python, terraform", recs[0])
}

func TestRecommend_ToolAndCertificationLines(t *testing.T) {
	match := MatchResult{
		Missing: []string{"jira", "tableau", "figma", "excel", "pmp", "itil", "cissp"},
	}
	resume := &types.StructuredResume{Contact: types.Contact{Name: "A"}}

	recs := Recommend(resume, "some posting", match)

	var toolLine, certLine string
	for _, rec := range recs {
		if strings.HasPrefix(rec, "Tools: ") {
			toolLine = rec
		}
		if strings.HasPrefix(rec, "Education: List relevant certifications") {
			certLine = rec
		}
	}

	require.NotEmpty(t, toolLine)
	assert.Contains(t, toolLine, "jira, tableau, figma")
	assert.NotContains(t, toolLine, "excel") // capped at three

	require.NotEmpty(t, certLine)
	assert.Contains(t, certLine, "pmp, itil")
	assert.NotContains(t, certLine, "cissp") // capped at two
}

func TestRecommend_SoftSkillLine(t *testing.T) {
	match := MatchResult{Missing: []string{"leadership", "mentoring", "teamwork"}}
	resume := &types.StructuredResume{Contact: types.Contact{Name: "A"}}

	recs := Recommend(resume, "some posting", match)

	found := false
	for _, rec := range recs {
		if strings.HasPrefix(rec, "Skills: Weave in soft skills") {
			found = true
			assert.Contains(t, rec, "leadership, mentoring")
			assert.NotContains(t, rec, "teamwork")
		}
	}
	assert.True(t, found)
}

func TestRecommend_QuantificationLine(t *testing.T) {
	resume := &types.StructuredResume{
		Experience: []types.ExperienceItem{
			{Company: "X", Role: "Dev", Bullets: []string{"Improved things", "Helped the team", "Wrote code"}},
		},
	}

	recs := Recommend(resume, "posting", MatchResult{})
	assert.Contains(t, recs, "Experience: Add numbers, percentages, or dollar amounts to your achievements")
}

func TestRecommend_NoQuantificationLineWhenRatioHealthy(t *testing.T) {
	resume := &types.StructuredResume{
		Experience: []types.ExperienceItem{
			{Company: "X", Role: "Dev", Bullets: []string{"Cut costs 30%", "Saved $50k"}},
		},
	}

	for _, rec := range Recommend(resume, "posting", MatchResult{}) {
		assert.NotContains(t, rec, "numbers, percentages")
	}
}

func TestRecommend_SummaryLineForMatchedTechnicalKeywords(t *testing.T) {
	resume := &types.StructuredResume{
		Summary: "Seasoned engineer",
		Experience: []types.ExperienceItem{
			{Company: "X", Role: "Dev", Bullets: []string{"Built python and aws systems with 10% gains", "Did docker work too"}},
		},
	}
	match := MatchResult{Matched: []string{"python", "aws", "docker"}}

	recs := Recommend(resume, "posting", match)

	var summaryLine string
	for _, rec := range recs {
		if strings.HasPrefix(rec, "Summary: ") {
			summaryLine = rec
		}
	}
	require.NotEmpty(t, summaryLine)
	assert.Contains(t, summaryLine, "python, aws") // capped at two
	assert.NotContains(t, summaryLine, "docker")
}

func TestRecommend_NoSummaryLineWhenKeywordsAlreadyThere(t *testing.T) {
	resume := &types.StructuredResume{
		Summary: "python and aws engineer shipping containers",
	}
	match := MatchResult{Matched: []string{"python", "aws"}}

	for _, rec := range Recommend(resume, "posting", match) {
		assert.False(t, strings.HasPrefix(rec, "Summary: "), "unexpected line: %s", rec)
	}
}

func TestRecommend_EducationLineOnlyWhenDegreeRequiredAndAbsent(t *testing.T) {
	noEducation := &types.StructuredResume{Contact: types.Contact{Name: "A"}}

	recs := Recommend(noEducation, "Bachelor's degree required", MatchResult{})
	assert.Contains(t, recs, "Education: Add your education or relevant certifications")

	recs = Recommend(noEducation, "No formal requirements", MatchResult{})
	assert.NotContains(t, recs, "Education: Add your education or relevant certifications")

	hasEducation := &types.StructuredResume{
		Education: []types.EducationItem{{School: "State", Degree: "BS"}},
	}
	recs = Recommend(hasEducation, "Bachelor's degree required", MatchResult{})
	assert.NotContains(t, recs, "Education: Add your education or relevant certifications")
}

func TestRecommend_RepetitionLine(t *testing.T) {
	resume := &types.StructuredResume{
		Summary: "go and rust services",
	}
	match := MatchResult{Matched: []string{"rust"}}

	recs := Recommend(resume, "posting", match)

	found := false
	for _, rec := range recs {
		if strings.HasPrefix(rec, "Keywords: ") {
			found = true
			assert.Contains(t, rec, "rust")
		}
	}
	assert.True(t, found)
}

func TestRecommend_EmptyWhenNothingFires(t *testing.T) {
	resume := &types.StructuredResume{
		Summary: "python engineer writing python all day in a python shop",
		Experience: []types.ExperienceItem{
			{Company: "X", Role: "Dev", Bullets: []string{"Cut costs 30% with python"}},
		},
		Education: []types.EducationItem{{School: "State", Degree: "BS"}},
		Skills:    types.NewSkills([]string{"python"}),
	}
	match := MatchResult{Matched: []string{"python"}}

	recs := Recommend(resume, "python shop, no degree needed", match)
	assert.Empty(t, recs)
}
