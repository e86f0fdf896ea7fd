// Package coverage scores how many of a job posting's extracted keywords a
// resume literally covers, with small bonuses for optional keywords and
// universally valued soft skills.
package coverage

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/matching"
	"github.com/jonathan/resume-analyzer/internal/textnorm"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// maxOptionalBonus caps the bonus for optional-keyword coverage
	maxOptionalBonus = 10.0
	// maxSoftSkillBonus caps the universal soft-skill bonus (1 point per match)
	maxSoftSkillBonus = 5
	// scoreFloor prevents a pure field mismatch from reading as 0%.
	// An empty resume still scores 0 via its own branch.
	scoreFloor = 8
)

// universalSoftSkills earn one bonus point each when present, whatever the
// job posting asked for.
var universalSoftSkills = []string{
	"communication",
	"leadership",
	"collaboration",
	"teamwork",
	"problem solving",
	"adaptability",
	"time management",
	"critical thinking",
	"attention to detail",
	"mentoring",
}

// Score compares resume text against the extracted keyword set and returns
// an immutable coverage snapshot.
func Score(resumeText string, keywords *types.KeywordSet) *types.CoverageResult {
	if keywords.IsEmpty() {
		return &types.CoverageResult{
			Score:           100,
			FoundKeywords:   []string{},
			MissingKeywords: []string{},
			Findings: []types.Finding{{
				Category:    "coverage",
				Severity:    types.SeverityInfo,
				Title:       "No keywords to test",
				Description: "The job posting yielded no ranked keywords, so there is nothing to compare the resume against.",
				Impact:      "Keyword coverage cannot be assessed for this posting.",
			}},
		}
	}

	resumeNorm := textnorm.Normalize(resumeText)
	if resumeNorm == "" {
		missing := append([]string{}, keywords.Critical...)
		return &types.CoverageResult{
			Score:           0,
			FoundKeywords:   []string{},
			MissingKeywords: missing,
			Findings: []types.Finding{{
				Category:    "empty-resume",
				Severity:    types.SeverityCritical,
				Title:       "Resume text is empty",
				Description: "No resume content was available to score.",
				Impact:      "Every critical keyword counts as missing.",
				Suggestion:  "Upload a resume with extractable text content.",
			}},
		}
	}

	foundCritical, missingCritical := matching.Partition(resumeNorm, keywords.Critical)
	foundOptional, _ := matching.Partition(resumeNorm, keywords.Optional)

	base := 100.0
	if len(keywords.Critical) > 0 {
		base = float64(len(foundCritical)) / float64(len(keywords.Critical)) * 100
	}

	optionalBonus := 0.0
	if len(keywords.Optional) > 0 {
		optionalBonus = maxOptionalBonus * float64(len(foundOptional)) / float64(len(keywords.Optional))
	}

	var bonusMatches []string
	for _, skill := range universalSoftSkills {
		if len(bonusMatches) >= maxSoftSkillBonus {
			break
		}
		if matching.Matches(resumeNorm, skill) {
			bonusMatches = append(bonusMatches, textnorm.TitleCase(skill))
		}
	}

	score := int(base + optionalBonus + 0.5)
	score += len(bonusMatches)
	if score < scoreFloor {
		score = scoreFloor
	}
	if score > 100 {
		score = 100
	}

	result := &types.CoverageResult{
		Score:           score,
		FoundKeywords:   append(foundCritical, foundOptional...),
		MissingKeywords: missingCritical,
		BonusMatches:    bonusMatches,
		Findings:        gradeFindings(score, missingCritical),
	}
	return result
}

// gradeFindings emits one severity-graded finding for the overall score plus
// a summary of missing critical keywords.
func gradeFindings(score int, missingCritical []string) []types.Finding {
	var findings []types.Finding

	switch {
	case score >= 90:
		findings = append(findings, types.Finding{
			Category:    "coverage",
			Severity:    types.SeverityInfo,
			Title:       "Excellent keyword coverage",
			Description: fmt.Sprintf("The resume covers %d%% of what this posting asks for.", score),
			Impact:      "Automated keyword filters are unlikely to screen this resume out.",
		})
	case score >= 70:
		findings = append(findings, types.Finding{
			Category:    "coverage",
			Severity:    types.SeverityLow,
			Title:       "Good keyword coverage",
			Description: fmt.Sprintf("Coverage is %d%%, with a few critical keywords unmatched.", score),
			Impact:      "Most keyword filters should pass this resume through.",
			Suggestion:  "Work the remaining critical keywords into relevant bullet points.",
		})
	case score >= 40:
		findings = append(findings, types.Finding{
			Category:    "coverage",
			Severity:    types.SeverityMedium,
			Title:       "Partial keyword coverage",
			Description: fmt.Sprintf("Coverage is %d%%; a substantial share of critical keywords is missing.", score),
			Impact:      "Keyword-driven screens may rank this resume below better-matched candidates.",
			Suggestion:  "Add the missing critical keywords where they truthfully apply.",
		})
	case score >= 20:
		findings = append(findings, types.Finding{
			Category:    "coverage",
			Severity:    types.SeverityHigh,
			Title:       "Low keyword coverage",
			Description: fmt.Sprintf("Coverage is only %d%%.", score),
			Impact:      "This resume is likely to be filtered out on keywords alone.",
			Suggestion:  "Revisit whether this role matches the resume, then close the keyword gaps.",
		})
	default:
		findings = append(findings, types.Finding{
			Category:    "coverage",
			Severity:    types.SeverityCritical,
			Title:       "Minimal keyword coverage",
			Description: fmt.Sprintf("Coverage is %d%%; the resume and posting share almost no keywords.", score),
			Impact:      "The resume will not surface for this role in keyword-based screening.",
			Suggestion:  "This looks like a field mismatch; consider a targeted rewrite.",
		})
	}

	if len(missingCritical) > 0 {
		findings = append(findings, types.Finding{
			Category:    "coverage",
			Severity:    types.SeverityMedium,
			Title:       fmt.Sprintf("%d critical keywords missing", len(missingCritical)),
			Description: fmt.Sprintf("Missing: %s", joinPreview(missingCritical, 8)),
			Impact:      "Each missing critical keyword lowers match rates in automated screens.",
			Suggestion:  "Only add keywords that honestly reflect your experience.",
		})
	}

	return findings
}

// joinPreview renders up to max items, noting how many were omitted.
func joinPreview(items []string, max int) string {
	if len(items) <= max {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s (and %d more)", strings.Join(items[:max], ", "), len(items)-max)
}
