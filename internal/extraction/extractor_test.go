package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJD = `Senior Backend Engineer

Requirements:
- 5+ years of experience with Go and distributed systems
- Strong knowledge of Kubernetes, Docker, and Terraform
- Experience with PostgreSQL and Redis
- Familiarity with CI/CD pipelines

Nice to have:
- Python, Kafka, AWS
- Strong communication and leadership skills`

func TestExtract_FindsDictionaryTerms(t *testing.T) {
	ks := Extract(sampleJD)

	require.NotEmpty(t, ks.All)
	assert.Contains(t, ks.All, "Kubernetes")
	assert.Contains(t, ks.All, "Docker")
	assert.Contains(t, ks.All, "PostgreSQL")
	assert.Contains(t, ks.All, "Distributed Systems")
	assert.Contains(t, ks.All, "CI/CD")
}

func TestExtract_TechSuffixTerms(t *testing.T) {
	ks := Extract("Requirements: strong C++ experience. C# is a plus.")

	assert.Contains(t, ks.All, "C++")
	assert.Contains(t, ks.All, "C#")
}

func TestExtract_Deterministic(t *testing.T) {
	first := Extract(sampleJD)
	second := Extract(sampleJD)

	assert.Equal(t, first.Critical, second.Critical)
	assert.Equal(t, first.Optional, second.Optional)
	assert.Equal(t, first.All, second.All)
}

func TestExtract_CriticalOptionalDisjoint(t *testing.T) {
	ks := Extract(sampleJD)

	criticalSet := map[string]bool{}
	for _, k := range ks.Critical {
		criticalSet[k] = true
	}
	for _, k := range ks.Optional {
		assert.False(t, criticalSet[k], "keyword %q appears in both partitions", k)
	}
	assert.LessOrEqual(t, len(ks.Critical), 15)
	assert.LessOrEqual(t, len(ks.Optional), 15)
}

func TestExtract_SubsetSuppression(t *testing.T) {
	// "machine learning" is a compound phrase; bare "learning" would be a
	// substring. Use "data engineering" vs "data analysis" style overlap:
	// "api" is a literal substring of "rest api", so only one survives.
	ks := Extract("We need REST API design skills. The API must be documented. API API API.")

	hasAPI := false
	hasRestAPI := false
	for _, k := range ks.All {
		if k == "API" {
			hasAPI = true
		}
		if k == "REST API" {
			hasRestAPI = true
		}
	}
	assert.False(t, hasAPI && hasRestAPI, "substring term should be suppressed, got %v", ks.All)
}

func TestExtract_RequirementZoneBoost(t *testing.T) {
	// Same single mention of each tool; terraform sits right after a
	// requirement indicator so it must outrank the unboosted mention.
	padding := "Our company values a friendly culture and offers generous benefits. " +
		"We believe in sustainable pacing, thoughtful code review and long term ownership of services. " +
		"The compensation package includes equity, health coverage and an annual learning stipend for every employee."
	boosted := Extract("Requirements: terraform. " + padding + " We also casually mention grafana here.")

	require.NotEmpty(t, boosted.All)
	assert.Equal(t, "Terraform", boosted.All[0])
}

func TestExtract_EmptyInput(t *testing.T) {
	ks := Extract("")

	assert.Empty(t, ks.Critical)
	assert.Empty(t, ks.Optional)
	assert.Empty(t, ks.All)
	assert.True(t, ks.IsEmpty())
}

func TestExtract_FrequencyRaisesScore(t *testing.T) {
	// python mentioned three times should outrank java mentioned once,
	// both from the same dictionary
	ks := Extract("python python python java")

	require.GreaterOrEqual(t, len(ks.All), 2)
	assert.Equal(t, "Python", ks.All[0])
}

func TestDisplayForm(t *testing.T) {
	assert.Equal(t, "AWS", displayForm("aws"))
	assert.Equal(t, "Node.js", displayForm("node.js"))
	assert.Equal(t, "Attention To Detail", displayForm("attention to detail"))
}
