package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnalysisDirect(t *testing.T) {
	analysis, ok := parseAnalysis(goodAnalysisJSON)

	require.True(t, ok)
	assert.Len(t, analysis.Strengths, 2)
	assert.Len(t, analysis.Gaps, 1)
	assert.Len(t, analysis.Recommendations, 1)
	assert.Equal(t, "A strong backend match with a small infrastructure gap.", analysis.Summary)
}

func TestParseAnalysisMarkdownFenced(t *testing.T) {
	fenced := "```json\n" + goodAnalysisJSON + "\n```"

	analysis, ok := parseAnalysis(fenced)

	require.True(t, ok)
	assert.Len(t, analysis.Strengths, 2)
}

func TestParseAnalysisBraceExtraction(t *testing.T) {
	chatty := "Here is the analysis you asked for:\n" + goodAnalysisJSON + "\nLet me know if you need more."

	analysis, ok := parseAnalysis(chatty)

	require.True(t, ok)
	assert.Equal(t, "A strong backend match with a small infrastructure gap.", analysis.Summary)
}

func TestParseAnalysisTruncatedRepair(t *testing.T) {
	// Output cut off mid-array: chop to the last complete element and close
	truncated := `{"strengths": ["Go expertise", "Kubernetes"], "gaps": ["No Terraform"], "recommendations": ["Add IaC work"], "summary": "Solid match.", "extra": ["dangling`

	analysis, ok := parseAnalysis(truncated)

	require.True(t, ok)
	assert.Equal(t, "Solid match.", analysis.Summary)
	assert.Len(t, analysis.Strengths, 2)
}

func TestParseAnalysisRejectsGarbage(t *testing.T) {
	for _, raw := range []string{
		"",
		"not json at all",
		`{"strengths": "should be an array", "gaps": [], "recommendations": [], "summary": "x"}`,
		`{"strengths": []}`,
		`[1, 2, 3]`,
	} {
		_, ok := parseAnalysis(raw)
		assert.False(t, ok, "raw: %q", raw)
	}
}

func TestParseAnalysisTruncatesLongLists(t *testing.T) {
	overLong := `{
	  "strengths": ["a", "b", "c", "d", "e", "f", "g"],
	  "gaps": ["a", "b", "c", "d", "e"],
	  "recommendations": ["a", "b", "c", "d"],
	  "summary": "  padded  "
	}`

	analysis, ok := parseAnalysis(overLong)

	require.True(t, ok)
	assert.Len(t, analysis.Strengths, 5)
	assert.Len(t, analysis.Gaps, 4)
	assert.Len(t, analysis.Recommendations, 3)
	assert.Equal(t, "padded", analysis.Summary)
}

func TestParseAnalysisDropsEmptyItems(t *testing.T) {
	withBlanks := `{"strengths": ["real", "", "  "], "gaps": [], "recommendations": [], "summary": "ok"}`

	analysis, ok := parseAnalysis(withBlanks)

	require.True(t, ok)
	assert.Equal(t, []string{"real"}, analysis.Strengths)
}

func TestDefaultAnalysisIsComplete(t *testing.T) {
	analysis := defaultAnalysis()

	assert.NotEmpty(t, analysis.Strengths)
	assert.NotEmpty(t, analysis.Gaps)
	assert.NotEmpty(t, analysis.Recommendations)
	assert.NotEmpty(t, analysis.Summary)
}
