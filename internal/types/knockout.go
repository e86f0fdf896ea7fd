package types

// KnockoutCategory classifies the kind of hard requirement a knockout represents
type KnockoutCategory string

// Knockout categories in presentation priority order
const (
	KnockoutAuthorization KnockoutCategory = "authorization"
	KnockoutLocation      KnockoutCategory = "location"
	KnockoutSchedule      KnockoutCategory = "schedule"
	KnockoutLicense       KnockoutCategory = "license"
	KnockoutDegree        KnockoutCategory = "degree"
	KnockoutPhysical      KnockoutCategory = "physical"
	KnockoutOther         KnockoutCategory = "other"
)

// categoryPriority fixes the display order of detected knockouts
var categoryPriority = map[KnockoutCategory]int{
	KnockoutAuthorization: 0,
	KnockoutLocation:      1,
	KnockoutSchedule:      2,
	KnockoutLicense:       3,
	KnockoutDegree:        4,
	KnockoutPhysical:      5,
	KnockoutOther:         6,
}

// Priority returns the presentation rank of a category (0 = first).
func (c KnockoutCategory) Priority() int {
	if p, ok := categoryPriority[c]; ok {
		return p
	}
	return len(categoryPriority)
}

// KnockoutItem is a detected disqualifier-style requirement from a job posting.
// UserConfirmed is nil until the user explicitly answers; true means the
// requirement is met, false means it is a blocker.
type KnockoutItem struct {
	ID            string           `json:"id"`
	Label         string           `json:"label"`
	Category      KnockoutCategory `json:"category"`
	Evidence      string           `json:"evidence"`
	UserConfirmed *bool            `json:"user_confirmed,omitempty"`
}

// AutoAssessment is the enhancer's automatic pass/fail estimate for a knockout
type AutoAssessment struct {
	Likely     bool    `json:"likely"`     // Whether the resume likely satisfies the requirement
	Confidence float64 `json:"confidence"` // 0-1
	Reason     string  `json:"reason"`     // Human-readable rationale
}

// EnhancedKnockoutItem is a KnockoutItem cross-referenced against resume
// content. It is a distinct value constructed once by the enhancer; the
// non-nil AutoAssessment is the discriminator, so consumers never have to
// shape-sniff base vs enhanced items.
type EnhancedKnockoutItem struct {
	KnockoutItem
	AutoAssessment *AutoAssessment `json:"auto_assessment,omitempty"`
	ResumeEvidence string          `json:"resume_evidence,omitempty"`
}

// IsEnhanced reports whether the item carries an automatic assessment.
func (e *EnhancedKnockoutItem) IsEnhanced() bool {
	return e.AutoAssessment != nil
}
