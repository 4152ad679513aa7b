package docgen

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/types"
)

func sampleResume() *types.StructuredResume {
	return &types.StructuredResume{
		Contact: types.Contact{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Location: "Austin, TX",
		},
		Summary: "Backend engineer focused on payments infrastructure.",
		Experience: []types.ExperienceItem{
			{
				Company: "Acme Corp",
				Role:    "Senior Engineer",
				Dates:   "2021 - Present",
				Bullets: []string{"Cut p99 latency by 40%", "Led a team of 4"},
			},
		},
		Education: []types.EducationItem{
			{School: "State University", Degree: "BS Computer Science", Dates: "2016"},
		},
		Skills: types.NewSkills([]string{"Go", "Postgres", "Kafka"}),
	}
}

func TestDocxRenderer(t *testing.T) {
	data, contentType, err := NewDocxRenderer().Render(sampleResume())
	require.NoError(t, err)
	assert.Equal(t, ContentTypeDocx, contentType)

	// The output must be a valid zip containing the document part
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var document string
	for _, f := range reader.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			require.NoError(t, err)
			raw, err := io.ReadAll(rc)
			require.NoError(t, err)
			_ = rc.Close()
			document = string(raw)
		}
	}
	require.NotEmpty(t, document, "word/document.xml missing from archive")

	assert.Contains(t, document, "Jane Doe")
	assert.Contains(t, document, "PROFESSIONAL SUMMARY")
	assert.Contains(t, document, "Senior Engineer | Acme Corp")
	assert.Contains(t, document, "Cut p99 latency by 40%")
	assert.Contains(t, document, "EDUCATION")
	assert.Contains(t, document, "SKILLS")
	assert.NotContains(t, document, "TEMPLATE")
}

func TestDocxRenderer_NilResume(t *testing.T) {
	_, _, err := NewDocxRenderer().Render(nil)
	assert.Error(t, err)
}

func TestBuildDocumentXML_EscapesContent(t *testing.T) {
	resume := &types.StructuredResume{
		Contact: types.Contact{Name: "R&D <Lead>"},
	}

	xml := buildDocumentXML(resume)
	assert.Contains(t, xml, "R&amp;D &lt;Lead&gt;")
	assert.NotContains(t, xml, "<Lead>")
}

func TestHTMLRenderer(t *testing.T) {
	data, contentType, err := NewHTMLRenderer().Render(sampleResume())
	require.NoError(t, err)
	assert.Equal(t, ContentTypeHTML, contentType)

	html := string(data)
	assert.Contains(t, html, "<h1>Jane Doe</h1>")
	assert.Contains(t, html, "jane@example.com | Austin, TX")
	assert.Contains(t, html, "Professional Summary")
	assert.Contains(t, html, "<li>Cut p99 latency by 40%</li>")
	assert.Contains(t, html, "Go • Postgres • Kafka")
}

func TestHTMLRenderer_OmitsEmptySections(t *testing.T) {
	resume := &types.StructuredResume{Contact: types.Contact{Name: "Jane Doe"}}

	data, _, err := NewHTMLRenderer().Render(resume)
	require.NoError(t, err)

	html := string(data)
	assert.NotContains(t, html, "Professional Summary")
	assert.NotContains(t, html, "Experience")
	assert.NotContains(t, html, "Skills")
}

func TestForFormat(t *testing.T) {
	_, ok := ForFormat("html").(*HTMLRenderer)
	assert.True(t, ok)

	_, ok = ForFormat("docx").(*DocxRenderer)
	assert.True(t, ok)

	// Unknown formats fall back to DOCX
	_, ok = ForFormat("").(*DocxRenderer)
	assert.True(t, ok)
}

func TestContactLine(t *testing.T) {
	line := contactLine(types.Contact{Email: "a@b.c", Phone: "555-1234"})
	assert.Equal(t, "a@b.c | 555-1234", line)

	assert.Equal(t, "", contactLine(types.Contact{}))
}

func TestHTMLRenderer_EscapesContent(t *testing.T) {
	resume := sampleResume()
	resume.Summary = `<script>alert("x")</script>`

	data, _, err := NewHTMLRenderer().Render(resume)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(data), "<script>alert"))
}
