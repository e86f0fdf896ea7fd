package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestScore_EmptyKeywordSet(t *testing.T) {
	result := Score("a perfectly fine resume", &types.KeywordSet{})

	assert.Equal(t, 100, result.Score)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, types.SeverityInfo, result.Findings[0].Severity)
}

func TestScore_EmptyResume(t *testing.T) {
	ks := &types.KeywordSet{
		Critical: []string{"Go", "Kubernetes"},
		Optional: []string{"Docker"},
		All:      []string{"Go", "Kubernetes", "Docker"},
	}

	result := Score("", ks)

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, ks.Critical, result.MissingKeywords)
	require.NotEmpty(t, result.Findings)
	assert.Equal(t, "empty-resume", result.Findings[0].Category)
	assert.Equal(t, types.SeverityCritical, result.Findings[0].Severity)
}

func TestScore_FullMatch(t *testing.T) {
	ks := &types.KeywordSet{
		Critical: []string{"Python", "Docker"},
	}

	result := Score("Python services packaged with Docker", ks)

	assert.Equal(t, 100, result.Score)
	assert.ElementsMatch(t, []string{"Python", "Docker"}, result.FoundKeywords)
	assert.Empty(t, result.MissingKeywords)
}

func TestScore_LiteralMatchAlwaysFound(t *testing.T) {
	// For any keyword with a normalized literal occurrence, the keyword
	// must appear in FoundKeywords.
	ks := &types.KeywordSet{Critical: []string{"Terraform", "Ansible"}}

	result := Score("Provisioned fleets with Terraform modules", ks)

	assert.Contains(t, result.FoundKeywords, "Terraform")
	assert.Contains(t, result.MissingKeywords, "Ansible")
}

func TestScore_FloorOnFieldMismatch(t *testing.T) {
	ks := &types.KeywordSet{
		Critical: []string{"Kubernetes", "Terraform", "Prometheus", "Grafana"},
	}

	// Nurse resume vs infrastructure posting: zero matches, but non-empty
	// resume text keeps the score at the floor, not zero
	result := Score("Registered nurse with a decade of patient care", ks)

	assert.Equal(t, 8, result.Score)
	assert.Len(t, result.MissingKeywords, 4)
}

func TestScore_OptionalBonusCapped(t *testing.T) {
	ks := &types.KeywordSet{
		Critical: []string{"Python"},
		Optional: []string{"Docker", "Redis"},
	}

	result := Score("Python with Docker and Redis", ks)

	// base 100 + full optional bonus, clamped to 100
	assert.Equal(t, 100, result.Score)
}

func TestScore_SoftSkillBonus(t *testing.T) {
	ks := &types.KeywordSet{Critical: []string{"Python", "Go"}}

	plain := Score("wrote python tooling", ks)
	withSoft := Score("wrote python tooling; known for communication and leadership", ks)

	assert.Greater(t, withSoft.Score, plain.Score)
	assert.Contains(t, withSoft.BonusMatches, "Communication")
	assert.LessOrEqual(t, len(withSoft.BonusMatches), 5)
}

func TestScore_RangeInvariant(t *testing.T) {
	ks := &types.KeywordSet{Critical: []string{"Kubernetes"}}

	texts := []string{
		"unrelated text",
		"kubernetes expert",
		"some kubernetes plus communication leadership teamwork collaboration adaptability mentoring",
	}
	for _, text := range texts {
		result := Score(text, ks)
		assert.GreaterOrEqual(t, result.Score, 8, "text %q", text)
		assert.LessOrEqual(t, result.Score, 100, "text %q", text)
	}
}

func TestScore_ThresholdFindings(t *testing.T) {
	ks := &types.KeywordSet{
		Critical: []string{"Kubernetes", "Terraform", "Prometheus", "Grafana", "Ansible"},
	}

	low := Score("only kubernetes here", ks) // 1/5 = 20 + floor effects
	assert.Equal(t, types.SeverityHigh, low.Findings[0].Severity)

	high := Score("kubernetes terraform prometheus grafana ansible", ks)
	assert.Equal(t, types.SeverityInfo, high.Findings[0].Severity)
}
