// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScore outputs the total score and per-section breakdown.
func (p *Printer) PrintScore(result *types.ScoreResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total Score: %d / 100\n\n", result.Score))

	b := result.Breakdown
	sb.WriteString("Breakdown:\n")
	sb.WriteString(fmt.Sprintf("  Keywords    %2d / %d\n", b.Keywords.Score, b.Keywords.Max))
	sb.WriteString(fmt.Sprintf("  Experience  %2d / %d\n", b.Experience.Score, b.Experience.Max))
	sb.WriteString(fmt.Sprintf("  Skills      %2d / %d\n", b.Skills.Score, b.Skills.Max))
	sb.WriteString(fmt.Sprintf("  Education   %2d / %d\n", b.Education.Score, b.Education.Max))
	sb.WriteString(fmt.Sprintf("  Format      %2d / %d", b.Format.Score, b.Format.Max))

	p.printBox("ATS SCORE", sb.String())
}

// PrintKeywords outputs matched and missing keywords from the scoring run.
func (p *Printer) PrintKeywords(result *types.ScoreResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Matched (%d):\n", len(result.Keywords.Matched)))
	count := min(len(result.Keywords.Matched), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", result.Keywords.Matched[i]))
	}
	if len(result.Keywords.Matched) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Keywords.Matched)-maxItemsToShow))
	}

	sb.WriteString(fmt.Sprintf("\nMissing (%d):\n", len(result.MissingKeywords)))
	count = min(len(result.MissingKeywords), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", result.MissingKeywords[i]))
	}
	if len(result.MissingKeywords) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.MissingKeywords)-maxItemsToShow))
	}

	p.printBox("KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the actionable recommendations.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRecommendations(result *types.ScoreResult) {
	if result == nil {
		return
	}

	if len(result.Recommendations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO RECOMMENDATIONS - STRONG MATCH")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d recommendations:\n\n", len(result.Recommendations)))

	for i, rec := range result.Recommendations {
		if len(rec) > 50 {
			rec = rec[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("%d. %s", i+1, rec))
		if i < len(result.Recommendations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RECOMMENDATIONS", sb.String())
}

// PrintJobMetadata outputs the metadata derived from an ingested posting.
func (p *Printer) PrintJobMetadata(meta *types.JobMetadata) {
	if meta == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:   %s\n", orDash(meta.Company)))
	sb.WriteString(fmt.Sprintf("Role:      %s\n", orDash(meta.Role)))
	sb.WriteString(fmt.Sprintf("Location:  %s\n", orDash(meta.Location)))
	sb.WriteString(fmt.Sprintf("Source:    %s", orDash(meta.Source)))

	p.printBox("JOB METADATA", sb.String())
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
