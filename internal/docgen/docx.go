// Package docgen - docx.go renders a resume as a Word document. The layout
// mirrors the HTML renderer: centered name and contact line, then
// PROFESSIONAL SUMMARY, EXPERIENCE, EDUCATION, and SKILLS sections.
package docgen

import (
	"bytes"
	_ "embed"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"github.com/jonathan/resume-tailor/internal/types"
)

//go:embed template.docx
var docxTemplate []byte

// DocxRenderer renders resumes as DOCX files.
type DocxRenderer struct{}

// NewDocxRenderer creates a DOCX renderer.
func NewDocxRenderer() *DocxRenderer {
	return &DocxRenderer{}
}

// Render produces the DOCX bytes for a resume.
func (r *DocxRenderer) Render(resume *types.StructuredResume) ([]byte, string, error) {
	if resume == nil {
		return nil, "", fmt.Errorf("resume is nil")
	}

	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(docxTemplate), int64(len(docxTemplate)))
	if err != nil {
		return nil, "", fmt.Errorf("loading docx template: %w", err)
	}
	defer func() { _ = doc.Close() }()

	edit := doc.Editable()
	edit.SetContent(buildDocumentXML(resume))

	var buf bytes.Buffer
	if err := edit.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("writing docx: %w", err)
	}
	return buf.Bytes(), ContentTypeDocx, nil
}

// buildDocumentXML generates the WordprocessingML body for a resume.
func buildDocumentXML(resume *types.StructuredResume) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	sb.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` + "\n<w:body>")

	// Header: name centered, contact line underneath
	writeParagraph(&sb, resume.Contact.Name, paraOpts{bold: true, size: 32, center: true})
	if line := contactLine(resume.Contact); line != "" {
		writeParagraph(&sb, line, paraOpts{size: 20, center: true})
	}

	if resume.Summary != "" {
		writeParagraph(&sb, "PROFESSIONAL SUMMARY", paraOpts{bold: true, size: 28})
		writeParagraph(&sb, resume.Summary, paraOpts{})
	}

	if len(resume.Experience) > 0 {
		writeParagraph(&sb, "EXPERIENCE", paraOpts{bold: true, size: 28})
		for _, exp := range resume.Experience {
			writeParagraph(&sb, exp.Role+" | "+exp.Company, paraOpts{bold: true, size: 24})
			if exp.Dates != "" {
				writeParagraph(&sb, exp.Dates, paraOpts{italic: true})
			}
			for _, bullet := range exp.Bullets {
				writeParagraph(&sb, "• "+bullet, paraOpts{})
			}
		}
	}

	if len(resume.Education) > 0 {
		writeParagraph(&sb, "EDUCATION", paraOpts{bold: true, size: 28})
		for _, edu := range resume.Education {
			heading := edu.Degree
			if heading == "" {
				heading = edu.School
			} else if edu.School != "" {
				heading += " | " + edu.School
			}
			writeParagraph(&sb, heading, paraOpts{bold: true, size: 24})
			if edu.Dates != "" {
				writeParagraph(&sb, edu.Dates, paraOpts{italic: true})
			}
			if edu.Details != "" {
				writeParagraph(&sb, edu.Details, paraOpts{})
			}
		}
	}

	if skills := resume.Skills.List(); len(skills) > 0 {
		writeParagraph(&sb, "SKILLS", paraOpts{bold: true, size: 28})
		writeParagraph(&sb, strings.Join(skills, " • "), paraOpts{})
	}

	sb.WriteString("</w:body>\n</w:document>")
	return sb.String()
}

type paraOpts struct {
	bold   bool
	italic bool
	center bool
	size   int // half-points; zero means document default
}

func writeParagraph(sb *strings.Builder, text string, opts paraOpts) {
	sb.WriteString("<w:p>")
	if opts.center {
		sb.WriteString(`<w:pPr><w:jc w:val="center"/></w:pPr>`)
	}
	sb.WriteString("<w:r>")
	if opts.bold || opts.italic || opts.size > 0 {
		sb.WriteString("<w:rPr>")
		if opts.bold {
			sb.WriteString("<w:b/>")
		}
		if opts.italic {
			sb.WriteString("<w:i/>")
		}
		if opts.size > 0 {
			fmt.Fprintf(sb, `<w:sz w:val="%d"/>`, opts.size)
		}
		sb.WriteString("</w:rPr>")
	}
	sb.WriteString(`<w:t xml:space="preserve">`)
	_ = xml.EscapeText(sb, []byte(text))
	sb.WriteString("</w:t></w:r></w:p>")
}
