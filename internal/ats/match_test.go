package ats

import (
	"testing"

	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchTestResume() *types.StructuredResume {
	return &types.StructuredResume{
		Contact: types.Contact{Name: "Jane Doe", Email: "jane@example.com"},
		Summary: "Backend engineer focused on Python services",
		Experience: []types.ExperienceItem{
			{
				Company: "Acme",
				Role:    "Software Engineer",
				Dates:   "2021-2024",
				Bullets: []string{"Built Docker images for deployment", "Maintained PostgreSQL clusters"},
			},
		},
		Education: []types.EducationItem{
			{School: "State University", Degree: "BS Computer Science", Dates: "2017-2021"},
		},
		Skills: types.NewSkills([]string{"Python", "Docker"}),
	}
}

func TestMatchKeywords_PartitionsMatchedAndMissing(t *testing.T) {
	keywords := []string{"python", "docker", "kubernetes", "tableau"}
	result := MatchKeywords(matchTestResume(), keywords)

	assert.Equal(t, []string{"python", "docker"}, result.Matched)
	assert.Equal(t, []string{"kubernetes", "tableau"}, result.Missing)

	// every keyword lands in exactly one list
	assert.Len(t, result.Matched, 4-len(result.Missing))
	for _, m := range result.Matched {
		assert.NotContains(t, result.Missing, m)
	}
}

func TestMatchKeywords_NoKeywords(t *testing.T) {
	result := MatchKeywords(matchTestResume(), nil)
	assert.Equal(t, 0, result.RawScore)
	assert.Empty(t, result.Matched)
	assert.Empty(t, result.Missing)
}

func TestMatchKeywords_RawScoreBounds(t *testing.T) {
	resume := matchTestResume()

	all := MatchKeywords(resume, []string{"python", "docker"})
	assert.GreaterOrEqual(t, all.RawScore, 0)
	assert.LessOrEqual(t, all.RawScore, 50)

	none := MatchKeywords(resume, []string{"kubernetes", "terraform"})
	assert.Equal(t, 0, none.RawScore)
}

func TestMatchKeywords_FullMatchSaturates(t *testing.T) {
	// Location and frequency bonuses push earned points past the base
	// maximum, so a resume matching every keyword hits the 50 cap.
	result := MatchKeywords(matchTestResume(), []string{"python", "docker"})
	assert.Equal(t, 50, result.RawScore)
}

func TestMatchKeywords_SummaryPlacementOutscoresBodyPlacement(t *testing.T) {
	inSummary := &types.StructuredResume{
		Contact: types.Contact{Name: "A"},
		Summary: "terraform specialist",
		Experience: []types.ExperienceItem{
			{Company: "X", Role: "Engineer", Bullets: []string{"shipped features", "fixed bugs"}},
		},
	}
	inBullet := &types.StructuredResume{
		Contact: types.Contact{Name: "A"},
		Summary: "infrastructure specialist",
		Experience: []types.ExperienceItem{
			{Company: "X", Role: "Engineer", Bullets: []string{"used terraform daily", "fixed bugs"}},
		},
	}

	// Mix in a missing keyword so neither score saturates at the cap.
	keywords := []string{"terraform", "kubernetes", "jenkins", "ansible"}
	summaryScore := MatchKeywords(inSummary, keywords).RawScore
	bulletScore := MatchKeywords(inBullet, keywords).RawScore

	assert.Greater(t, summaryScore, bulletScore)
}

func TestMatchKeywords_FrequencyBonus(t *testing.T) {
	once := &types.StructuredResume{
		Contact: types.Contact{Name: "A"},
		Experience: []types.ExperienceItem{
			{Company: "X", Role: "Dev", Bullets: []string{"wrote go services with redis"}},
		},
	}
	thrice := &types.StructuredResume{
		Contact: types.Contact{Name: "A"},
		Experience: []types.ExperienceItem{
			{Company: "X", Role: "Dev", Bullets: []string{
				"wrote go services with redis",
				"tuned redis latency",
				"migrated redis clusters",
			}},
		},
	}

	keywords := []string{"redis", "kubernetes", "terraform", "aws", "gcp"}
	assert.Greater(t, MatchKeywords(thrice, keywords).RawScore, MatchKeywords(once, keywords).RawScore)
}

func TestMatchKeywords_AddingKeywordToSummaryNeverDecreasesScore(t *testing.T) {
	base := matchTestResume()
	improved := matchTestResume()
	improved.Summary = base.Summary + " and Kubernetes operations"

	keywords := []string{"python", "docker", "kubernetes", "terraform"}
	before := MatchKeywords(base, keywords)
	after := MatchKeywords(improved, keywords)

	require.Contains(t, before.Missing, "kubernetes")
	assert.Contains(t, after.Matched, "kubernetes")
	assert.GreaterOrEqual(t, after.RawScore, before.RawScore)
}

func TestCountTerm_WholeTermSemantics(t *testing.T) {
	assert.Equal(t, 2, countTerm("java and java", "java"))
	assert.Equal(t, 0, countTerm("javascript", "java"))
	assert.Equal(t, 1, countTerm("javascript and java", "java"))
	assert.Equal(t, 1, countTerm("knows c++ well", "c++"))
	assert.Equal(t, 1, countTerm("ci/cd pipelines", "ci/cd"))
	assert.Equal(t, 0, countTerm("", "java"))
	assert.Equal(t, 0, countTerm("java", ""))
}
