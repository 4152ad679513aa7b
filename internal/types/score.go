package types

// BreakdownItem is one sub-dimension of the ATS breakdown.
type BreakdownItem struct {
	Score int `json:"score"`
	Max   int `json:"max"`
}

// ATSBreakdown itemizes the composite ATS score. The five Max values
// always sum to 100 and each Score never exceeds its Max.
type ATSBreakdown struct {
	Keywords   BreakdownItem `json:"keywords"`
	Experience BreakdownItem `json:"experience"`
	Skills     BreakdownItem `json:"skills"`
	Education  BreakdownItem `json:"education"`
	Format     BreakdownItem `json:"format"`
}

// Keywords carries the matched keyword tokens alongside the display-facing
// "missing" list. Missing holds the human-readable recommendation lines
// rather than raw tokens; stored application records have always used that
// shape and the dashboard renders it directly. The raw unmatched tokens
// live in ScoreResult.MissingKeywords.
type Keywords struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// ScoreResult is the output of one ATS scoring call. It is constructed
// fresh per call and never mutated afterwards.
type ScoreResult struct {
	Score           int          `json:"score"`
	Keywords        Keywords     `json:"keywords"`
	Recommendations []string     `json:"recommendations"`
	Breakdown       ATSBreakdown `json:"breakdown"`
	MissingKeywords []string     `json:"missingKeywords"`
}
