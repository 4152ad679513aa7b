// Package ingestion - file.go extracts plain text from uploaded resume files.
package ingestion

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Supported upload MIME types.
const (
	MimePlainText = "text/plain"
	MimePDF       = "application/pdf"
	MimeDocx      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ExtractFileText converts an uploaded resume file into plain text based on
// its MIME type.
func ExtractFileText(data []byte, mimeType string) (string, error) {
	// Strip charset and boundary parameters
	if idx := strings.Index(mimeType, ";"); idx >= 0 {
		mimeType = mimeType[:idx]
	}
	mimeType = strings.TrimSpace(strings.ToLower(mimeType))

	switch mimeType {
	case MimePlainText:
		return string(data), nil
	case MimePDF:
		return extractPDFText(data)
	case MimeDocx:
		return extractDocxText(data)
	default:
		return "", fmt.Errorf("unsupported file type: %s", mimeType)
	}
}

func extractPDFText(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	numPages := pdfReader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		sb.WriteString(text)
	}
	return sb.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	// GetContent returns WordprocessingML; reduce it to readable text
	return docxXMLToText(doc.Editable().GetContent()), nil
}

var paragraphEnd = regexp.MustCompile(`</w:p>`)
var xmlTag = regexp.MustCompile(`<[^>]+>`)

// docxXMLToText strips WordprocessingML markup, keeping paragraph breaks.
func docxXMLToText(xml string) string {
	withBreaks := paragraphEnd.ReplaceAllString(xml, "\n")
	plain := xmlTag.ReplaceAllString(withBreaks, "")
	plain = strings.ReplaceAll(plain, "&amp;", "&")
	plain = strings.ReplaceAll(plain, "&lt;", "<")
	plain = strings.ReplaceAll(plain, "&gt;", ">")
	plain = strings.ReplaceAll(plain, "&quot;", `"`)
	plain = strings.ReplaceAll(plain, "&apos;", "'")
	return cleanWhitespace(plain)
}
