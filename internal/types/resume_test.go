package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillsUnmarshal_FlatList(t *testing.T) {
	var s Skills
	err := json.Unmarshal([]byte(`["Python", " SQL ", ""]`), &s)
	require.NoError(t, err)
	assert.Equal(t, []string{"Python", "SQL"}, s.List())
}

func TestSkillsUnmarshal_Categorized(t *testing.T) {
	var s Skills
	err := json.Unmarshal([]byte(`{"technical": ["Go", "Postgres"], "soft": ["Communication"]}`), &s)
	require.NoError(t, err)

	// Categories flatten in sorted name order
	assert.Equal(t, []string{"Communication", "Go", "Postgres"}, s.List())
}

func TestSkillsUnmarshal_FreeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "comma separated", input: `"Python, SQL, Docker"`, want: []string{"Python", "SQL", "Docker"}},
		{name: "semicolons and pipes", input: `"Go; Rust | C"`, want: []string{"Go", "Rust", "C"}},
		{name: "newlines", input: `"AWS\nTerraform"`, want: []string{"AWS", "Terraform"}},
		{name: "single skill", input: `"Kubernetes"`, want: []string{"Kubernetes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Skills
			err := json.Unmarshal([]byte(tt.input), &s)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.List())
		})
	}
}

func TestSkillsUnmarshal_NullAndUnrecognized(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "null", input: `null`},
		{name: "number", input: `42`},
		{name: "array of objects", input: `[{"name": "Python"}]`},
		{name: "empty string", input: `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Skills
			err := json.Unmarshal([]byte(tt.input), &s)
			require.NoError(t, err)
			assert.True(t, s.IsEmpty())
		})
	}
}

func TestSkillsUnmarshal_ResetsPreviousValue(t *testing.T) {
	s := NewSkills([]string{"Old"})
	err := json.Unmarshal([]byte(`null`), &s)
	require.NoError(t, err)
	assert.True(t, s.IsEmpty())
}

func TestSkillsMarshal_CanonicalForm(t *testing.T) {
	var s Skills
	require.NoError(t, json.Unmarshal([]byte(`{"tools": ["Git"]}`), &s))

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `["Git"]`, string(out))

	var empty Skills
	out, err = json.Marshal(empty)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(out))
}

func TestNewSkills_CleansInput(t *testing.T) {
	s := NewSkills([]string{"  Go  ", "", "Postgres"})
	assert.Equal(t, []string{"Go", "Postgres"}, s.List())
}

func TestStructuredResumeRoundTrip(t *testing.T) {
	input := `{
		"contact": {"name": "Jane Doe", "email": "jane@example.com"},
		"summary": "Backend engineer.",
		"experience": [
			{"company": "Acme", "role": "Engineer", "dates": "2020 - Present", "bullets": ["Built APIs"]}
		],
		"education": [
			{"school": "State University", "degree": "BS Computer Science", "dates": "2016 - 2020"}
		],
		"skills": "Go, SQL"
	}`

	var resume StructuredResume
	require.NoError(t, json.Unmarshal([]byte(input), &resume))

	assert.Equal(t, "Jane Doe", resume.Contact.Name)
	assert.Equal(t, []string{"Go", "SQL"}, resume.Skills.List())
	assert.Equal(t, []string{"Built APIs"}, resume.AllBullets())

	// Free-text skills re-marshal as the canonical flat list
	out, err := json.Marshal(&resume)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"skills":["Go","SQL"]`)
}

func TestAllBullets_MultipleJobs(t *testing.T) {
	resume := StructuredResume{
		Experience: []ExperienceItem{
			{Company: "A", Bullets: []string{"one", "two"}},
			{Company: "B", Bullets: nil},
			{Company: "C", Bullets: []string{"three"}},
		},
	}
	assert.Equal(t, []string{"one", "two", "three"}, resume.AllBullets())
}
