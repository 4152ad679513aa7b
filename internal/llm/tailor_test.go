package llm

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/types"
)

// fakeClient returns canned responses and records the prompts it saw.
type fakeClient struct {
	response string
	err      error
	prompts  []string
	tiers    []ModelTier
}

func (f *fakeClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.tiers = append(f.tiers, tier)
	return f.response, f.err
}

func (f *fakeClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return f.GenerateContent(ctx, prompt, tier)
}

func (f *fakeClient) Close() error { return nil }

func TestTailorResume(t *testing.T) {
	client := &fakeClient{
		response: `{"contact":{"name":"Jane Doe","email":"jane@example.com"},"summary":"Python and AWS engineer","experience":[],"education":[],"skills":["Python","AWS"]}`,
	}
	tailor := NewTailor(client)

	master := &types.StructuredResume{
		Contact: types.Contact{Name: "Jane Doe", Email: "jane@example.com"},
		Summary: "Software engineer",
	}

	tailored, err := tailor.TailorResume(context.Background(), master, "Looking for a Python developer with AWS experience")
	require.NoError(t, err)
	require.NotNil(t, tailored)

	assert.Equal(t, "Jane Doe", tailored.Contact.Name)
	assert.Equal(t, "Python and AWS engineer", tailored.Summary)
	assert.Equal(t, []string{"Python", "AWS"}, tailored.Skills.List())

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Jane Doe")
	assert.Contains(t, client.prompts[0], "Python developer")
	assert.Equal(t, TierAdvanced, client.tiers[0])
}

func TestTailorResume_InputValidation(t *testing.T) {
	tailor := NewTailor(&fakeClient{response: "{}"})

	_, err := tailor.TailorResume(context.Background(), nil, "some job")
	assert.Error(t, err)

	_, err = tailor.TailorResume(context.Background(), &types.StructuredResume{}, "   ")
	assert.Error(t, err)
}

func TestTailorResume_ClientError(t *testing.T) {
	tailor := NewTailor(&fakeClient{err: fmt.Errorf("quota exceeded")})

	_, err := tailor.TailorResume(context.Background(), &types.StructuredResume{}, "some job")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestExtractJobMetadata(t *testing.T) {
	client := &fakeClient{
		response: `{"company":"Acme Corp","role":"Backend Engineer","location":"Remote"}`,
	}
	tailor := NewTailor(client)

	meta, err := tailor.ExtractJobMetadata(context.Background(), "Acme Corp is hiring a Backend Engineer (Remote)")
	require.NoError(t, err)

	assert.Equal(t, "Acme Corp", meta.Company)
	assert.Equal(t, "Backend Engineer", meta.Role)
	assert.Equal(t, "Remote", meta.Location)
	assert.Equal(t, TierLite, client.tiers[0])
}

func TestRewriteSection(t *testing.T) {
	client := &fakeClient{response: "  Led a team of 5 engineers shipping a payments platform.  "}
	tailor := NewTailor(client)

	out, err := tailor.RewriteSection(context.Background(), "Managed some engineers", "more impactful", "payments fintech role")
	require.NoError(t, err)
	assert.Equal(t, "Led a team of 5 engineers shipping a payments platform.", out)

	require.Len(t, client.prompts, 1)
	assert.True(t, strings.Contains(client.prompts[0], "more impactful"))
}

func TestStructure(t *testing.T) {
	client := &fakeClient{
		response: `{
			"contact": {"name": "John Smith", "email": "john@example.com"},
			"summary": "Data engineer with 6 years of experience",
			"experience": [
				{"company": "DataCo", "role": "Data Engineer", "bullets": ["Built ETL pipelines processing 2TB daily"]}
			],
			"education": [{"school": "State University", "degree": "BS Computer Science"}],
			"skills": ["Python", "SQL", "Airflow"]
		}`,
	}
	structurer := NewStructurer(client)

	resume, err := structurer.Structure(context.Background(), "John Smith\njohn@example.com\nData engineer...")
	require.NoError(t, err)

	assert.Equal(t, "John Smith", resume.Contact.Name)
	assert.Len(t, resume.Experience, 1)
	assert.Equal(t, "DataCo", resume.Experience[0].Company)
	assert.Equal(t, []string{"Python", "SQL", "Airflow"}, resume.Skills.List())
	assert.Equal(t, TierStandard, client.tiers[0])
}

func TestStructure_EmptyInput(t *testing.T) {
	structurer := NewStructurer(&fakeClient{response: "{}"})

	_, err := structurer.Structure(context.Background(), "  \n ")
	assert.Error(t, err)
}
