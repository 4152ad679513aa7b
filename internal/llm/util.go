// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// CleanJSONBlock normalizes an LLM response down to bare JSON. Models wrap
// output in ```json fences or add conversational preamble even when
// instructed not to, so this strips fences first and then falls back to
// locating the first balanced JSON object or array in the text.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip a language identifier on the first line if present
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	// No fences. If the text already starts with JSON, trim any trailing
	// commentary. Otherwise look past preamble for the first object or array.
	if strings.HasPrefix(text, "{") {
		if obj := extractJSONObject(text); obj != "" {
			return obj
		}
		return text
	}
	if strings.HasPrefix(text, "[") {
		if arr := extractJSONArray(text); arr != "" {
			return arr
		}
		return text
	}

	objStart := strings.Index(text, "{")
	arrStart := strings.Index(text, "[")
	if objStart >= 0 && (arrStart < 0 || objStart < arrStart) {
		if obj := extractJSONObject(text[objStart:]); obj != "" {
			return obj
		}
	}
	if arrStart >= 0 {
		if arr := extractJSONArray(text[arrStart:]); arr != "" {
			return arr
		}
	}

	return text
}

// extractJSONObject returns the balanced JSON object at the start of text,
// or "" if text does not start with one. Braces inside string literals are
// ignored.
func extractJSONObject(text string) string {
	return extractBalanced(text, '{', '}')
}

// extractJSONArray returns the balanced JSON array at the start of text,
// or "" if text does not start with one.
func extractJSONArray(text string) string {
	return extractBalanced(text, '[', ']')
}

func extractBalanced(text string, open, close byte) string {
	if len(text) == 0 || text[0] != open {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == open:
			depth++
		case c == close:
			depth--
			if depth == 0 {
				return text[:i+1]
			}
		}
	}
	return ""
}
