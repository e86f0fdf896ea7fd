package knockouts

import (
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// unclearHighThreshold is how many unanswered knockouts alone push the risk
// tier to high
const unclearHighThreshold = 3

// AssessRisk turns knockout confirmation states into an overall risk tier.
// Blockers dominate: a single confirmed-unmet item is high risk no matter
// how many others are confirmed met.
func AssessRisk(items []types.EnhancedKnockoutItem) *types.KnockoutRiskResult {
	if len(items) == 0 {
		return &types.KnockoutRiskResult{
			Level:       types.RiskLevelLow,
			Explanation: "No knockout-style requirements were detected in this posting.",
			Findings:    []types.Finding{},
		}
	}

	var confirmed, blockers, unclear int
	var blockerFindings []types.Finding
	for _, item := range items {
		switch {
		case item.UserConfirmed == nil:
			unclear++
		case *item.UserConfirmed:
			confirmed++
		default:
			blockers++
			blockerFindings = append(blockerFindings, types.Finding{
				Category:    "knockout",
				Severity:    types.SeverityCritical,
				Title:       item.Label,
				Description: fmt.Sprintf("You indicated this requirement is not met. Evidence: %s", item.Evidence),
				Impact:      "Hard requirements like this one typically end consideration outright.",
				Suggestion:  "Only apply if you can credibly address this gap in a cover letter.",
			})
		}
	}

	result := &types.KnockoutRiskResult{
		Confirmed: confirmed,
		Blockers:  blockers,
		Unclear:   unclear,
		Findings:  blockerFindings,
	}

	switch {
	case blockers > 0:
		result.Level = types.RiskLevelHigh
		result.Explanation = fmt.Sprintf("%d requirement(s) confirmed as not met; any one of them can disqualify the application.", blockers)
	case unclear >= unclearHighThreshold:
		result.Level = types.RiskLevelHigh
		result.Explanation = fmt.Sprintf("%d requirements remain unconfirmed; together they carry substantial disqualification risk.", unclear)
	case unclear > 0:
		result.Level = types.RiskLevelMedium
		result.Explanation = fmt.Sprintf("%d requirement(s) remain unconfirmed; confirm them to settle the risk either way.", unclear)
	default:
		result.Level = types.RiskLevelLow
		result.Explanation = "All detected requirements are confirmed as met."
	}

	return result
}
