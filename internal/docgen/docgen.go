// Package docgen renders structured resumes into downloadable documents.
package docgen

import (
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// Content types for rendered documents.
const (
	ContentTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	ContentTypeHTML = "text/html; charset=utf-8"
)

// Renderer converts a structured resume into a document of a fixed format.
type Renderer interface {
	// Render returns the document bytes and their content type.
	Render(resume *types.StructuredResume) ([]byte, string, error)
}

// ForFormat returns the renderer for a format name ("docx" or "html").
// Unknown formats fall back to DOCX.
func ForFormat(format string) Renderer {
	switch format {
	case "html":
		return NewHTMLRenderer()
	default:
		return NewDocxRenderer()
	}
}

// contactLine joins the non-empty contact fields the way the rendered
// header shows them.
func contactLine(c types.Contact) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{c.Email, c.Phone, c.LinkedIn, c.Location} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " | ")
}
