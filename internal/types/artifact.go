package types

// RiskTier is a coarse low/medium/high signal attached to layout heuristics
type RiskTier string

// Risk tiers reported by the text-extraction collaborator
const (
	RiskLow    RiskTier = "low"
	RiskMedium RiskTier = "medium"
	RiskHigh   RiskTier = "high"
)

// LayoutSignals carries PDF layout heuristics from the text extractor.
// Only present when the uploaded document was a PDF.
type LayoutSignals struct {
	EstimatedColumns  int      `json:"estimated_columns"`   // 1, 2 or 3
	ColumnMergeRisk   RiskTier `json:"column_merge_risk"`
	TextDensity       RiskTier `json:"text_density"`
	HeaderContactRisk RiskTier `json:"header_contact_risk"`
}

// ResumeArtifact is the plain-text rendering of an uploaded resume plus
// whatever the extractor learned along the way. Produced once per upload
// by the extraction collaborator; read-only to the scoring core.
type ResumeArtifact struct {
	Text     string         `json:"text"`
	Warnings []string       `json:"warnings,omitempty"`
	Layout   *LayoutSignals `json:"layout,omitempty"`
}
