package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestPrintCoverage(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintCoverage(&types.CoverageResult{
		Score:           72,
		FoundKeywords:   []string{"Go", "Kubernetes"},
		MissingKeywords: []string{"Terraform"},
		Findings: []types.Finding{
			{Severity: types.SeverityMedium, Title: "Several critical keywords missing"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "KEYWORD COVERAGE")
	assert.Contains(t, out, "Score: 72/100")
	assert.Contains(t, out, "Terraform")
	assert.Contains(t, out, "[medium]")
}

func TestPrintSemanticMatchError(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintSemanticMatch(&types.SemanticMatchResult{Err: "no credential configured"})

	out := buf.String()
	assert.Contains(t, out, "SEMANTIC MATCH")
	assert.Contains(t, out, "Unavailable")
	assert.NotContains(t, out, "Score:")
}

func TestPrintKnockoutsEmpty(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintKnockouts(nil)

	assert.Contains(t, buf.String(), "No knockout requirements detected.")
}

func TestPrintKnockoutsWithAssessment(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintKnockouts([]types.EnhancedKnockoutItem{
		{
			KnockoutItem: types.KnockoutItem{
				Label:    "U.S. citizenship required",
				Category: types.KnockoutAuthorization,
			},
			AutoAssessment: &types.AutoAssessment{
				Likely:     false,
				Confidence: 0.8,
				Reason:     "visa sponsorship mentioned on resume",
			},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "U.S. citizenship required")
	assert.Contains(t, out, "likely not met")
	assert.Contains(t, out, "80%")
}

func TestPrintScoresSkipsNilResults(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintScores(&types.Scores{
		Coverage: &types.CoverageResult{Score: 90},
	})

	out := buf.String()
	assert.Contains(t, out, "KEYWORD COVERAGE")
	assert.NotContains(t, out, "RECRUITER SEARCH")
	assert.NotContains(t, out, "PARSE HEALTH")
}

func TestPrintBoxTruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintKeywords(&types.KeywordSet{
		Critical: []string{"a keyword phrase that is far longer than the box width allows so it must be truncated"},
	})

	assert.Contains(t, buf.String(), "...")
}
