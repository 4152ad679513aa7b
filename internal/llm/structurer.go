// Package llm - structurer.go converts raw resume text into a structured resume.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// Structurer converts raw resume text into a StructuredResume.
type Structurer interface {
	Structure(ctx context.Context, resumeText string) (*types.StructuredResume, error)
}

// LLMStructurer implements Structurer backed by an LLM client.
type LLMStructurer struct {
	client Client
}

// NewStructurer creates a structurer using the given client.
func NewStructurer(client Client) *LLMStructurer {
	return &LLMStructurer{client: client}
}

const structurePrompt = `You are an expert resume parser. Extract the resume content into structured JSON.

Return ONLY valid JSON matching this exact structure:
{
  "contact": {
    "name": "string",
    "email": "string",
    "phone": "string",
    "linkedin": "string",
    "location": "string"
  },
  "summary": "string", // professional summary or objective, empty string if absent
  "experience": [
    {
      "company": "string",
      "role": "string",
      "dates": "string",    // as written, e.g. "Jan 2021 - Present"
      "bullets": ["string"] // achievement bullets, copied verbatim
    }
  ],
  "education": [
    {
      "school": "string",
      "degree": "string",
      "dates": "string",
      "details": "string" // honors, GPA, coursework, empty string if absent
    }
  ],
  "skills": ["string"] // flat list of skills as written
}

IMPORTANT:
- Copy text verbatim, do not paraphrase or invent content.
- Use empty strings and empty arrays for missing sections.
- Return ONLY the JSON object, no markdown, no explanation, no code blocks.

Resume text:
"""
%s
"""`

// Structure parses raw resume text into a StructuredResume via the LLM.
func (s *LLMStructurer) Structure(ctx context.Context, resumeText string) (*types.StructuredResume, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, fmt.Errorf("resume text is empty")
	}

	prompt := fmt.Sprintf(structurePrompt, resumeText)
	raw, err := s.client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, fmt.Errorf("structuring resume: %w", err)
	}

	var resume types.StructuredResume
	if err := json.Unmarshal([]byte(raw), &resume); err != nil {
		return nil, fmt.Errorf("parsing structured resume: %w", err)
	}
	return &resume, nil
}
