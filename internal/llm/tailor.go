// Package llm - tailor.go rewrites a resume against a target job description.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// Tailor rewrites a master resume so it aligns with a job description
// without fabricating content.
type Tailor interface {
	TailorResume(ctx context.Context, master *types.StructuredResume, jobDescription string) (*types.StructuredResume, error)
	ExtractJobMetadata(ctx context.Context, jobDescription string) (*types.JobMetadata, error)
	RewriteSection(ctx context.Context, originalText, instruction, jobContext string) (string, error)
}

// LLMTailor implements Tailor backed by an LLM client.
type LLMTailor struct {
	client Client
}

// NewTailor creates a tailor using the given client.
func NewTailor(client Client) *LLMTailor {
	return &LLMTailor{client: client}
}

const tailorPrompt = `You are an expert resume writer specializing in ATS optimization.

Tailor the provided resume for the given job description while following these rules:
1. Keep all information TRUTHFUL - never fabricate experience or skills
2. Optimize keyword usage from the job description
3. Reframe bullets to emphasize relevant experience
4. Maintain professional tone and clarity
5. Keep the same structure and format
6. Focus on quantifiable achievements where possible

Return the tailored resume in the same JSON structure as the input.
Return ONLY the JSON object, no markdown, no explanation, no code blocks.

Master Resume:
%s

Job Description:
%s`

// TailorResume rewrites the master resume for the target job description.
// The structure of the input is preserved; only wording and emphasis change.
func (t *LLMTailor) TailorResume(ctx context.Context, master *types.StructuredResume, jobDescription string) (*types.StructuredResume, error) {
	if master == nil {
		return nil, fmt.Errorf("master resume is nil")
	}
	if strings.TrimSpace(jobDescription) == "" {
		return nil, fmt.Errorf("job description is empty")
	}

	masterJSON, err := json.MarshalIndent(master, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding master resume: %w", err)
	}

	prompt := fmt.Sprintf(tailorPrompt, string(masterJSON), jobDescription)
	raw, err := t.client.GenerateJSON(ctx, prompt, TierAdvanced)
	if err != nil {
		return nil, fmt.Errorf("tailoring resume: %w", err)
	}

	var tailored types.StructuredResume
	if err := json.Unmarshal([]byte(raw), &tailored); err != nil {
		return nil, fmt.Errorf("parsing tailored resume: %w", err)
	}
	return &tailored, nil
}

const jobMetadataPrompt = `Extract company name, role/position, and location from the job description.

Return ONLY valid JSON matching this exact structure:
{
  "company": "string", // empty string if not stated
  "role": "string",    // empty string if not stated
  "location": "string" // empty string if not stated
}

Return ONLY the JSON object, no markdown, no explanation, no code blocks.

Job description:
"""
%s
"""`

// ExtractJobMetadata pulls company, role, and location out of a job description.
func (t *LLMTailor) ExtractJobMetadata(ctx context.Context, jobDescription string) (*types.JobMetadata, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, fmt.Errorf("job description is empty")
	}

	prompt := fmt.Sprintf(jobMetadataPrompt, jobDescription)
	raw, err := t.client.GenerateJSON(ctx, prompt, TierLite)
	if err != nil {
		return nil, fmt.Errorf("extracting job metadata: %w", err)
	}

	var meta types.JobMetadata
	if err := json.Unmarshal([]byte(raw), &meta); err != nil {
		return nil, fmt.Errorf("parsing job metadata: %w", err)
	}
	return &meta, nil
}

const rewritePrompt = `Rewrite the given resume section to be %s.
Keep it truthful, professional, and ATS-friendly.
Consider the job context for relevance.
Return only the rewritten text, no additional commentary.

Original text: %s

Job context: %s`

// RewriteSection rewrites a single resume section per the given instruction,
// e.g. "more concise" or "more impactful".
func (t *LLMTailor) RewriteSection(ctx context.Context, originalText, instruction, jobContext string) (string, error) {
	if strings.TrimSpace(originalText) == "" {
		return "", fmt.Errorf("original text is empty")
	}

	prompt := fmt.Sprintf(rewritePrompt, instruction, originalText, jobContext)
	out, err := t.client.GenerateContent(ctx, prompt, TierLite)
	if err != nil {
		return "", fmt.Errorf("rewriting section: %w", err)
	}
	return strings.TrimSpace(out), nil
}
