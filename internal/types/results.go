package types

// RiskLevel is the three-level knockout risk enum
type RiskLevel string

// Knockout risk levels
const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// CoverageResult is the immutable outcome of one coverage-scoring call
type CoverageResult struct {
	Score           int       `json:"score"` // 0-100
	FoundKeywords   []string  `json:"found_keywords"`
	MissingKeywords []string  `json:"missing_keywords"`
	BonusMatches    []string  `json:"bonus_matches,omitempty"` // Soft-skill matches that earned bonus points
	Findings        []Finding `json:"findings"`
}

// KnockoutRiskResult aggregates knockout states into an overall risk tier
type KnockoutRiskResult struct {
	Level       RiskLevel `json:"level"`
	Explanation string    `json:"explanation"`
	Confirmed   int       `json:"confirmed"` // Items the user confirmed as met
	Blockers    int       `json:"blockers"`  // Items the user confirmed as not met
	Unclear     int       `json:"unclear"`   // Items with no confirmation either way
	Findings    []Finding `json:"findings"`
}

// RecruiterSearchResult is the immutable outcome of one recruiter-search scoring call
type RecruiterSearchResult struct {
	Score          int       `json:"score"` // 0-100, weighted sum of the components
	KeywordMatch   int       `json:"keyword_match"`
	TitleAlignment int       `json:"title_alignment"`
	SkillsCoverage int       `json:"skills_coverage"`
	IndustryTerms  int       `json:"industry_terms"`
	TargetTitle    string    `json:"target_title,omitempty"` // Canonical title extracted from the JD
	Findings       []Finding `json:"findings"`
}

// QualitativeAnalysis is the structured narrative produced by the generation model
type QualitativeAnalysis struct {
	Strengths       []string `json:"strengths"`
	Gaps            []string `json:"gaps"`
	Recommendations []string `json:"recommendations"`
	Summary         string   `json:"summary"`
}

// SemanticMatchResult is the immutable outcome of one semantic analysis.
// When Err is non-empty the scores are zeroed and must not be interpreted.
type SemanticMatchResult struct {
	Score           int                  `json:"score"` // 0-100
	SkillsScore     int                  `json:"skills_score"`
	ExperienceScore int                  `json:"experience_score"`
	DomainScore     int                  `json:"domain_score"`
	RoleScore       int                  `json:"role_score"`
	Confidence      float64              `json:"confidence"` // Always >= 0.7 on success
	Analysis        *QualitativeAnalysis `json:"analysis,omitempty"`
	Findings        []Finding            `json:"findings"`
	Err             string               `json:"error,omitempty"`
}

// ParseHealthResult is the immutable outcome of one parse-health scoring call
type ParseHealthResult struct {
	Score        int       `json:"score"` // 0-100
	LayoutScore  int       `json:"layout_score"`
	ContactScore int       `json:"contact_score"`
	SectionScore int       `json:"section_score"`
	Findings     []Finding `json:"findings"`
}

// Scores is the composite snapshot a caller persists or renders after
// running every scorer over one resume/job pair
type Scores struct {
	Coverage        *CoverageResult        `json:"coverage,omitempty"`
	KnockoutRisk    *KnockoutRiskResult    `json:"knockout_risk,omitempty"`
	RecruiterSearch *RecruiterSearchResult `json:"recruiter_search,omitempty"`
	SemanticMatch   *SemanticMatchResult   `json:"semantic_match,omitempty"`
	ParseHealth     *ParseHealthResult     `json:"parse_health,omitempty"`
}
