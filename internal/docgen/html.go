// Package docgen - html.go renders a resume as a standalone HTML page.
package docgen

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// HTMLRenderer renders resumes as self-contained HTML documents.
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer creates an HTML renderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{
		tmpl: template.Must(template.New("resume").Parse(resumeTemplate)),
	}
}

type htmlData struct {
	Resume      *types.StructuredResume
	ContactLine string
	Skills      string
}

// Render produces the HTML bytes for a resume.
func (r *HTMLRenderer) Render(resume *types.StructuredResume) ([]byte, string, error) {
	if resume == nil {
		return nil, "", fmt.Errorf("resume is nil")
	}

	data := htmlData{
		Resume:      resume,
		ContactLine: contactLine(resume.Contact),
		Skills:      strings.Join(resume.Skills.List(), " • "),
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, "", fmt.Errorf("rendering html: %w", err)
	}
	return buf.Bytes(), ContentTypeHTML, nil
}

const resumeTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Resume.Contact.Name}} - Resume</title>
<style>
body { font-family: Georgia, serif; max-width: 48rem; margin: 2rem auto; color: #1a1a1a; line-height: 1.4; }
h1 { text-align: center; margin-bottom: 0.25rem; }
.contact { text-align: center; color: #444; margin-bottom: 1.5rem; }
h2 { border-bottom: 1px solid #999; padding-bottom: 0.2rem; margin-top: 1.5rem; }
.dates { font-style: italic; color: #555; margin: 0.1rem 0 0.4rem; }
ul { margin-top: 0.3rem; }
</style>
</head>
<body>
<h1>{{.Resume.Contact.Name}}</h1>
{{if .ContactLine}}<div class="contact">{{.ContactLine}}</div>{{end}}
{{if .Resume.Summary}}
<h2>Professional Summary</h2>
<p>{{.Resume.Summary}}</p>
{{end}}
{{if .Resume.Experience}}
<h2>Experience</h2>
{{range .Resume.Experience}}
<p><strong>{{.Role}}</strong> | {{.Company}}</p>
{{if .Dates}}<div class="dates">{{.Dates}}</div>{{end}}
{{if .Bullets}}<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>{{end}}
{{end}}
{{end}}
{{if .Resume.Education}}
<h2>Education</h2>
{{range .Resume.Education}}
<p><strong>{{.Degree}}</strong>{{if .School}} | {{.School}}{{end}}</p>
{{if .Dates}}<div class="dates">{{.Dates}}</div>{{end}}
{{if .Details}}<p>{{.Details}}</p>{{end}}
{{end}}
{{end}}
{{if .Skills}}
<h2>Skills</h2>
<p>{{.Skills}}</p>
{{end}}
</body>
</html>
`
