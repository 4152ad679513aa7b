package ats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractKeywords_EmptyInput(t *testing.T) {
	assert.Empty(t, ExtractKeywords(""))
	assert.Empty(t, ExtractKeywords("   \n\t  "))
}

func TestExtractKeywords_StopWordsOnly(t *testing.T) {
	assert.Empty(t, ExtractKeywords("the and with for from that will have"))
	assert.Empty(t, ExtractKeywords("experience required responsibilities team"))
}

func TestExtractKeywords_DropsShortTokens(t *testing.T) {
	keywords := ExtractKeywords("go is ok at qa db engineering engineering")
	assert.NotContains(t, keywords, "go")
	assert.NotContains(t, keywords, "ok")
	assert.NotContains(t, keywords, "qa")
	assert.Contains(t, keywords, "engineering")
}

func TestExtractKeywords_StopWordFilterIsExactMatch(t *testing.T) {
	// "theme" contains the stop word "the" but must survive
	keywords := ExtractKeywords("theme theme customization and theming theming")
	assert.Contains(t, keywords, "theme")
	assert.Contains(t, keywords, "theming")
}

func TestExtractKeywords_CaseNormalized(t *testing.T) {
	keywords := ExtractKeywords("PYTHON Python python")
	require.Len(t, keywords, 1)
	assert.Equal(t, "python", keywords[0])
}

func TestExtractKeywords_RanksByFrequency(t *testing.T) {
	// frequency descending, alphabetical among ties
	keywords := ExtractKeywords("kafka kafka kafka postgres postgres dashboards dashboards")
	require.Len(t, keywords, 3)
	assert.Equal(t, "kafka", keywords[0])
	assert.Equal(t, "dashboards", keywords[1])
	assert.Equal(t, "postgres", keywords[2])
}

func TestExtractKeywords_DomainTermsIncludedAtLowFrequency(t *testing.T) {
	// Single mention of a recognized technical term must survive even
	// though single-mention generic words are dropped.
	keywords := ExtractKeywords("We ship software every day. Kubernetes helps.")
	assert.Contains(t, keywords, "kubernetes")
}

func TestExtractKeywords_OneOffGenericTokensDropped(t *testing.T) {
	// Unrecognized words need at least two mentions to count as signal;
	// recognized technical terms are exempt from the threshold.
	keywords := ExtractKeywords("We need a Python developer with AWS and Docker experience, Bachelor's required")

	assert.ElementsMatch(t, []string{"python", "aws", "docker"}, keywords)
	assert.NotContains(t, keywords, "developer")
	assert.NotContains(t, keywords, "bachelor")
	assert.NotContains(t, keywords, "need")

	// repetition promotes a generic word back in
	keywords = ExtractKeywords("payments reconciliation, payments ledger")
	assert.Contains(t, keywords, "payments")
	assert.NotContains(t, keywords, "reconciliation")
}

func TestExtractKeywords_MultiWordAndSymbolTerms(t *testing.T) {
	keywords := ExtractKeywords("Looking for machine learning engineers with C++ and CI/CD background")
	assert.Contains(t, keywords, "machine learning")
	assert.Contains(t, keywords, "c++")
	assert.Contains(t, keywords, "ci/cd")
}

func TestExtractKeywords_SymbolTermBoundaries(t *testing.T) {
	// "c++" inside "c++17" still counts; "scala" must not match inside "escalation"
	keywords := ExtractKeywords("c++ developer role")
	assert.Contains(t, keywords, "c++")

	keywords = ExtractKeywords("handles escalation paths gracefully gracefully")
	assert.NotContains(t, keywords, "java")
}

func TestExtractKeywords_TruncatesToTop50(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 80; i++ {
		word := "word" + string(byte('a'+i%26)) + strings.Repeat("x", i/26)
		b.WriteString(word)
		b.WriteString(" ")
		b.WriteString(word)
		b.WriteString(" ")
	}
	keywords := ExtractKeywords(b.String())
	assert.Len(t, keywords, 50)
}

func TestExtractKeywords_Deterministic(t *testing.T) {
	text := "Senior Python developer with AWS, Docker, Terraform and strong SQL. Python and AWS daily."
	first := ExtractKeywords(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ExtractKeywords(text))
	}
}
