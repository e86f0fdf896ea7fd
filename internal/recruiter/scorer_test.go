package recruiter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const techJD = `Senior Backend Engineer

We build SaaS products on a cloud platform with a microservices backend.
Requirements: Go, Kubernetes, PostgreSQL, API design, agile software delivery.`

const techResume = `Senior Backend Engineer with 8 years of experience.
Built SaaS APIs in Go on Kubernetes with PostgreSQL.
Comfortable in agile software teams, cloud deployment, microservices.`

func keywordSet() *types.KeywordSet {
	return &types.KeywordSet{
		Critical: []string{"Go", "Kubernetes", "PostgreSQL", "API Design"},
		Optional: []string{"Agile Methodologies"},
		All:      []string{"Go", "Kubernetes", "PostgreSQL", "API Design", "Agile Methodologies"},
	}
}

func TestScore_WeightedSumProperty(t *testing.T) {
	result := Score(techResume, techJD, keywordSet())

	expected := int(math.Round(
		0.40*float64(result.KeywordMatch) +
			0.25*float64(result.TitleAlignment) +
			0.25*float64(result.SkillsCoverage) +
			0.10*float64(result.IndustryTerms)))
	if expected > 100 {
		expected = 100
	}
	assert.Equal(t, expected, result.Score)
	assert.GreaterOrEqual(t, result.Score, 0)
	assert.LessOrEqual(t, result.Score, 100)
}

func TestScore_StrongMatchScoresHigh(t *testing.T) {
	result := Score(techResume, techJD, keywordSet())

	assert.GreaterOrEqual(t, result.Score, 75)
	assert.Equal(t, 110, result.TitleAlignment+10) // exact title + same seniority caps at 100
}

func TestScoreTitleAlignment_ExactTitle(t *testing.T) {
	score, title, note := scoreTitleAlignment(
		"senior backend engineer at acme", "senior backend engineer\ngreat team")

	assert.Empty(t, note)
	assert.Equal(t, "Backend Engineer", title)
	// 100 exact + 10 same seniority, clamped
	assert.Equal(t, 100, score)
}

func TestScoreTitleAlignment_SynonymCounts(t *testing.T) {
	score, title, _ := scoreTitleAlignment(
		"site reliability engineer, five years", "devops engineer wanted")

	assert.Equal(t, "Devops Engineer", title)
	assert.Equal(t, 100, score)
}

func TestScoreTitleAlignment_RoleNounOnly(t *testing.T) {
	score, _, _ := scoreTitleAlignment(
		"engineer with broad background", "backend engineer wanted")

	assert.Equal(t, 80, score)
}

func TestScoreTitleAlignment_NoTitleIsNeutral(t *testing.T) {
	score, title, note := scoreTitleAlignment(
		"some resume", "join our wonderful team of builders")

	assert.Equal(t, 50, score)
	assert.Empty(t, title)
	assert.NotEmpty(t, note)
}

func TestSeniorityProximityBonus(t *testing.T) {
	assert.Equal(t, 10, seniorityProximityBonus("senior engineer", "senior developer"))
	assert.Equal(t, 5, seniorityProximityBonus("staff engineer", "senior developer"))
	assert.Equal(t, 0, seniorityProximityBonus("principal engineer", "junior developer"))
	assert.Equal(t, 0, seniorityProximityBonus("engineer", "senior developer"))
}

func TestScoreIndustryTerms_DominantIndustry(t *testing.T) {
	score, note := scoreIndustryTerms(
		"built saas apis with cloud microservices", // 3+ tech matches saturate
		"we are a saas cloud software company using agile devops")

	assert.Empty(t, note)
	assert.Equal(t, 100, score)
}

func TestScoreIndustryTerms_NoDominantIndustryIsNeutral(t *testing.T) {
	score, note := scoreIndustryTerms("any resume", "a very generic posting about working hard")

	assert.Equal(t, 50, score)
	assert.NotEmpty(t, note)
}

func TestScoreKeywordMatch_EmptyKeywordsNeutral(t *testing.T) {
	assert.Equal(t, 50, scoreKeywordMatch("resume", &types.KeywordSet{}))
}

func TestScore_SuggestionTargetsWeakestComponent(t *testing.T) {
	// Resume with keywords but no title or industry overlap
	result := Score("go kubernetes postgresql api design agile", techJD, keywordSet())

	var suggestion *types.Finding
	for i := range result.Findings {
		if result.Findings[i].Severity == types.SeverityMedium {
			suggestion = &result.Findings[i]
		}
	}
	require.NotNil(t, suggestion)
	assert.NotEmpty(t, suggestion.Suggestion)
}
