// Package parsehealth estimates how cleanly a resume document survived
// machine extraction, as a penalty-accumulation score over the extracted
// text and any PDF layout signals.
package parsehealth

import (
	"fmt"
	"regexp"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Content-length tiers
const (
	veryShortChars = 300
	shortChars     = 800

	penaltyVeryShort = 30
	penaltyShort     = 15
)

// Layout-signal penalties
const (
	penaltyTwoColumns    = 10
	penaltyThreeColumns  = 20
	penaltyMergeMedium   = 5
	penaltyMergeHigh     = 15
	penaltyDensityMedium = 5
	penaltyDensityHigh   = 10
	penaltyHeaderMedium  = 5
	penaltyHeaderHigh    = 12
)

// Contact penalties
const (
	penaltyNoEmail    = 10
	penaltyNoPhone    = 5
	penaltyNoLinkedIn = 3
)

// Section penalties
const penaltyPerMissingSection = 8

// Warning pass-through
const (
	penaltyPerWarning = 3
	maxWarningPenalty = 15
)

var (
	emailRe    = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phoneRe    = regexp.MustCompile(`(\+?\d{1,2}[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)
	linkedinRe = regexp.MustCompile(`(?i)linkedin\.com/in/[a-zA-Z0-9\-_%]+`)
)

var sectionHeaderRes = []struct {
	name string
	re   *regexp.Regexp
}{
	{"Experience", regexp.MustCompile(`(?im)^\s*(?:work\s+|professional\s+|relevant\s+)?(?:experience|employment(?:\s+history)?)\b`)},
	{"Education", regexp.MustCompile(`(?im)^\s*education(?:al background)?\b`)},
	{"Skills", regexp.MustCompile(`(?im)^\s*(?:technical\s+|core\s+|key\s+)?(?:skills?|competencies)\b`)},
}

// Score estimates parse quality for an extracted resume artifact. The
// overall score starts at 100 and accumulates penalties; the layout,
// contact, and section sub-scores run their own penalty tables so each can
// be read independently of the aggregate.
func Score(artifact *types.ResumeArtifact) *types.ParseHealthResult {
	var findings []types.Finding

	layoutPenalty := scoreLayout(artifact.Layout, &findings)
	contactPenalty := scoreContact(artifact.Text, &findings)
	sectionPenalty := scoreSections(artifact.Text, &findings)
	contentPenalty := scoreContentLength(artifact.Text, &findings)
	warningPenalty := scoreWarnings(artifact.Warnings, &findings)

	total := layoutPenalty + contactPenalty + sectionPenalty + contentPenalty + warningPenalty

	result := &types.ParseHealthResult{
		Score:        clamp(100 - total),
		LayoutScore:  clamp(100 - 3*layoutPenalty),
		ContactScore: clamp(100 - 5*contactPenalty),
		SectionScore: clamp(100 - 4*sectionPenalty),
		Findings:     findings,
	}
	types.SortFindings(result.Findings)
	return result
}

func scoreContentLength(text string, findings *[]types.Finding) int {
	switch {
	case len(text) < veryShortChars:
		*findings = append(*findings, types.Finding{
			Category:    "parse-health",
			Severity:    types.SeverityHigh,
			Title:       "Very little text was extracted",
			Description: fmt.Sprintf("Only %d characters of text came out of the document.", len(text)),
			Impact:      "Most of the resume's content is invisible to automated screening.",
			Suggestion:  "Export the resume as a text-based PDF rather than a scan or image.",
		})
		return penaltyVeryShort
	case len(text) < shortChars:
		*findings = append(*findings, types.Finding{
			Category:    "parse-health",
			Severity:    types.SeverityMedium,
			Title:       "Less text than a typical resume",
			Description: fmt.Sprintf("%d characters were extracted; a full resume usually yields more.", len(text)),
			Suggestion:  "Check that no section was dropped during export.",
		})
		return penaltyShort
	}
	return 0
}

func scoreLayout(layout *types.LayoutSignals, findings *[]types.Finding) int {
	if layout == nil {
		return 0
	}
	penalty := 0

	switch layout.EstimatedColumns {
	case 2:
		penalty += penaltyTwoColumns
		*findings = append(*findings, types.Finding{
			Category:    "parse-health",
			Severity:    types.SeverityMedium,
			Title:       "Two-column layout detected",
			Description: "Multi-column layouts often interleave text when parsed.",
			Suggestion:  "Prefer a single-column layout for the version you submit online.",
		})
	case 3:
		penalty += penaltyThreeColumns
		*findings = append(*findings, types.Finding{
			Category:    "parse-health",
			Severity:    types.SeverityHigh,
			Title:       "Three-column layout detected",
			Description: "Three columns make reading order unreliable for parsers.",
			Impact:      "Sentences from different columns can merge into nonsense.",
			Suggestion:  "Restructure to a single column.",
		})
	}

	penalty += riskPenalty(layout.ColumnMergeRisk, penaltyMergeMedium, penaltyMergeHigh,
		"Column text may have merged",
		"Adjacent columns sit close enough that their text can run together.", findings)
	penalty += riskPenalty(layout.TextDensity, penaltyDensityMedium, penaltyDensityHigh,
		"Dense text layout",
		"Tightly packed text raises the chance of extraction errors.", findings)
	penalty += riskPenalty(layout.HeaderContactRisk, penaltyHeaderMedium, penaltyHeaderHigh,
		"Contact details may sit in the page header",
		"Many parsers drop page headers and footers, losing contact details placed there.", findings)

	return penalty
}

func riskPenalty(tier types.RiskTier, medium, high int, title, description string, findings *[]types.Finding) int {
	switch tier {
	case types.RiskMedium:
		*findings = append(*findings, types.Finding{
			Category:    "parse-health",
			Severity:    types.SeverityLow,
			Title:       title,
			Description: description,
		})
		return medium
	case types.RiskHigh:
		*findings = append(*findings, types.Finding{
			Category:    "parse-health",
			Severity:    types.SeverityMedium,
			Title:       title,
			Description: description,
			Suggestion:  "Move this content into the main body of the document.",
		})
		return high
	}
	return 0
}

func scoreContact(text string, findings *[]types.Finding) int {
	penalty := 0
	hasEmail := emailRe.MatchString(text)
	hasPhone := phoneRe.MatchString(text)
	hasLinkedIn := linkedinRe.MatchString(text)

	if !hasEmail {
		penalty += penaltyNoEmail
		*findings = append(*findings, types.Finding{
			Category:    "parse-health",
			Severity:    types.SeverityHigh,
			Title:       "No email address found",
			Description: "No email address survived extraction.",
			Impact:      "Recruiters cannot reach out if the email was lost to the layout.",
			Suggestion:  "Put your email in the document body, not a header graphic.",
		})
	}
	if !hasPhone {
		penalty += penaltyNoPhone
		*findings = append(*findings, types.Finding{
			Category:    "parse-health",
			Severity:    types.SeverityMedium,
			Title:       "No phone number found",
			Description: "No phone number survived extraction.",
			Suggestion:  "Add a phone number in plain text near the top.",
		})
	}
	if !hasLinkedIn {
		penalty += penaltyNoLinkedIn
		*findings = append(*findings, types.Finding{
			Category:    "parse-health",
			Severity:    types.SeverityLow,
			Title:       "No LinkedIn URL found",
			Description: "No linkedin.com/in/ URL survived extraction.",
		})
	}
	if hasEmail && hasPhone {
		*findings = append(*findings, types.Finding{
			Category:    "parse-health",
			Severity:    types.SeverityInfo,
			Title:       "Contact details parsed cleanly",
			Description: "Both an email address and a phone number were found in the text.",
		})
	}
	return penalty
}

func scoreSections(text string, findings *[]types.Finding) int {
	var missing []string
	for _, section := range sectionHeaderRes {
		if !section.re.MatchString(text) {
			missing = append(missing, section.name)
		}
	}
	if len(missing) == 0 {
		return 0
	}

	severity := types.SeverityLow
	if len(missing) >= 2 {
		severity = types.SeverityMedium
	}
	*findings = append(*findings, types.Finding{
		Category:    "parse-health",
		Severity:    severity,
		Title:       fmt.Sprintf("%d standard section header(s) not found", len(missing)),
		Description: fmt.Sprintf("Could not locate: %v.", missing),
		Impact:      "Parsers that segment resumes by section may misfile this content.",
		Suggestion:  "Use conventional headers such as Experience, Education, and Skills.",
	})
	return penaltyPerMissingSection * len(missing)
}

func scoreWarnings(warnings []string, findings *[]types.Finding) int {
	if len(warnings) == 0 {
		return 0
	}
	penalty := penaltyPerWarning * len(warnings)
	if penalty > maxWarningPenalty {
		penalty = maxWarningPenalty
	}
	for _, warning := range warnings {
		*findings = append(*findings, types.Finding{
			Category:    "parse-health",
			Severity:    types.SeverityInfo,
			Title:       "Extraction warning",
			Description: warning,
		})
	}
	return penalty
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
