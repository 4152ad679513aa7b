// Package ingestion - metadata.go derives job metadata from posting text
// without an LLM call. The LLM extractor is preferred when available; this
// heuristic keeps ingestion working offline.
package ingestion

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

var atCompanyPattern = regexp.MustCompile(`(?i)^(.{2,80}?)\s+(?:at|@)\s+(.{2,60})$`)

var locationHints = []string{"remote", "hybrid", "on-site", "onsite"}

// GuessJobMetadata derives company, role, and location from the first lines
// of a job posting. Best effort; fields stay empty when nothing matches.
func GuessJobMetadata(text, sourceURL string) *types.JobMetadata {
	meta := &types.JobMetadata{
		URL:    sourceURL,
		Source: hostOf(sourceURL),
	}

	lines := strings.Split(text, "\n")
	head := lines
	if len(head) > 10 {
		head = head[:10]
	}

	for _, line := range head {
		line = strings.TrimSpace(line)
		if line == "" || len(line) > 120 {
			continue
		}

		// "Senior Engineer at Acme" style titles carry both fields
		if m := atCompanyPattern.FindStringSubmatch(line); m != nil {
			if meta.Role == "" {
				meta.Role = strings.TrimSpace(m[1])
			}
			if meta.Company == "" {
				meta.Company = strings.TrimSpace(m[2])
			}
			continue
		}

		if meta.Role == "" && looksLikeRole(line) {
			meta.Role = line
			continue
		}

		if meta.Location == "" && looksLikeLocation(line) {
			meta.Location = line
		}
	}

	return meta
}

var roleWords = []string{
	"engineer", "developer", "manager", "analyst", "designer", "scientist",
	"architect", "consultant", "specialist", "lead", "director", "intern",
}

func looksLikeRole(line string) bool {
	lower := strings.ToLower(line)
	for _, w := range roleWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func looksLikeLocation(line string) bool {
	lower := strings.ToLower(line)
	for _, hint := range locationHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	// "City, ST" style
	if len(line) < 40 && strings.Count(line, ",") == 1 {
		parts := strings.Split(line, ",")
		second := strings.TrimSpace(parts[1])
		return len(second) >= 2 && len(second) <= 20
	}
	return false
}

func hostOf(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.TrimPrefix(u.Host, "www.")
}
