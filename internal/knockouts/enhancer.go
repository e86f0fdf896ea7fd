package knockouts

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/ids"
	"github.com/jonathan/resume-analyzer/internal/textnorm"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// EnhancerConfig carries the tunable constants of the automatic assessment.
// The defaults mirror long-standing behavior but have no documented
// rationale; they are configuration precisely so callers can revisit them.
type EnhancerConfig struct {
	// OverlapDiscount scales summed date-range years to approximate
	// concurrent roles.
	OverlapDiscount float64
	// SuppressionYears is the experience shortfall tolerated before the
	// synthetic experience knockout is emitted.
	SuppressionYears float64
}

// DefaultEnhancerConfig returns the standard assessment constants.
func DefaultEnhancerConfig() EnhancerConfig {
	return EnhancerConfig{
		OverlapDiscount:  0.7,
		SuppressionYears: 2,
	}
}

// Enhance cross-references detected knockouts against resume content and
// returns enhanced copies carrying an automatic assessment each. The input
// items are never mutated.
func Enhance(items []types.KnockoutItem, resumeText string, cfg EnhancerConfig) []types.EnhancedKnockoutItem {
	profile := BuildResumeProfile(resumeText, cfg.OverlapDiscount)

	enhanced := make([]types.EnhancedKnockoutItem, 0, len(items))
	for _, item := range items {
		e := types.EnhancedKnockoutItem{KnockoutItem: item}
		switch item.Category {
		case types.KnockoutAuthorization:
			e.AutoAssessment, e.ResumeEvidence = assessAuthorization(item, profile)
		case types.KnockoutDegree:
			e.AutoAssessment, e.ResumeEvidence = assessDegree(item, profile)
		case types.KnockoutLicense:
			e.AutoAssessment, e.ResumeEvidence = assessLicense(item, profile)
		case types.KnockoutLocation:
			e.AutoAssessment, e.ResumeEvidence = assessLocation(item, profile)
		default:
			e.AutoAssessment = &types.AutoAssessment{
				Likely:     true,
				Confidence: 0.2,
				Reason:     fmt.Sprintf("review manually: %s cannot be verified from resume text", item.Category),
			}
		}
		enhanced = append(enhanced, e)
	}
	return enhanced
}

func assessAuthorization(item types.KnockoutItem, profile *ResumeProfile) (*types.AutoAssessment, string) {
	if strings.Contains(strings.ToLower(item.Label), "clearance") {
		if profile.HasClearance {
			return &types.AutoAssessment{
				Likely:     true,
				Confidence: 0.85,
				Reason:     "resume mentions an active security clearance",
			}, "security clearance mentioned"
		}
		return &types.AutoAssessment{
			Likely:     false,
			Confidence: 0.7,
			Reason:     "no security clearance mentioned on the resume",
		}, ""
	}

	switch profile.WorkAuthorization {
	case AuthNegative:
		return &types.AutoAssessment{
			Likely:     false,
			Confidence: 0.75,
			Reason:     "resume mentions a visa status that conflicts with this requirement",
		}, "visa-status mention found"
	case AuthPositive:
		return &types.AutoAssessment{
			Likely:     true,
			Confidence: 0.7,
			Reason:     "resume indicates work authorization or citizenship",
		}, "authorization language found"
	default:
		return &types.AutoAssessment{
			Likely:     true,
			Confidence: 0.3,
			Reason:     "no explicit authorization signal on the resume",
		}, ""
	}
}

// requiredDegreeRes extract the JD's required level, highest first.
var requiredDegreeRes = []struct {
	level string
	re    *regexp.Regexp
}{
	{"phd", regexp.MustCompile(`(?i)\bph\.?d\b|\bdoctora(?:te|l)\b`)},
	{"master", regexp.MustCompile(`(?i)\bmaster(?:'s|s)?\b`)},
	{"bachelor", regexp.MustCompile(`(?i)\bbachelor(?:'s|s)?\b`)},
	{"associate", regexp.MustCompile(`(?i)\bassociate\b`)},
	{"high_school", regexp.MustCompile(`(?i)\bhigh school\b`)},
}

var equivalentExperienceRe = regexp.MustCompile(`(?i)\bor equivalent(?:\s+(?:practical\s+)?experience)?\b`)

func assessDegree(item types.KnockoutItem, profile *ResumeProfile) (*types.AutoAssessment, string) {
	source := item.Label + " " + item.Evidence

	required := ""
	for _, c := range requiredDegreeRes {
		if c.re.MatchString(source) {
			required = c.level
			break
		}
	}
	if required == "" {
		return &types.AutoAssessment{
			Likely:     true,
			Confidence: 0.3,
			Reason:     "could not determine the required degree level",
		}, ""
	}

	// "or equivalent experience" downgrades the requirement to a preference
	if equivalentExperienceRe.MatchString(item.Evidence) {
		return &types.AutoAssessment{
			Likely:     true,
			Confidence: 0.6,
			Reason:     fmt.Sprintf("%s degree is preferred but equivalent experience is accepted", required),
		}, describeEducation(profile)
	}

	if profile.EducationLevel == "" {
		return &types.AutoAssessment{
			Likely:     false,
			Confidence: 0.5,
			Reason:     fmt.Sprintf("a %s degree is required but no degree was detected on the resume", required),
		}, ""
	}

	if educationRank[profile.EducationLevel] >= educationRank[required] {
		return &types.AutoAssessment{
			Likely:     true,
			Confidence: 0.8,
			Reason:     fmt.Sprintf("resume's %s level meets the required %s level", profile.EducationLevel, required),
		}, describeEducation(profile)
	}
	return &types.AutoAssessment{
		Likely:     false,
		Confidence: 0.7,
		Reason:     fmt.Sprintf("resume's %s level falls below the required %s level", profile.EducationLevel, required),
	}, describeEducation(profile)
}

func describeEducation(profile *ResumeProfile) string {
	if profile.EducationLevel == "" {
		return ""
	}
	return "highest detected education: " + profile.EducationLevel
}

func assessLicense(item types.KnockoutItem, profile *ResumeProfile) (*types.AutoAssessment, string) {
	labelNorm := textnorm.Normalize(item.Label)
	for _, cert := range profile.Certifications {
		certNorm := textnorm.Normalize(cert)
		if strings.Contains(labelNorm, certNorm) || strings.Contains(certNorm, labelNorm) {
			return &types.AutoAssessment{
				Likely:     true,
				Confidence: 0.8,
				Reason:     fmt.Sprintf("resume lists %s", cert),
			}, "certification found: " + cert
		}
	}
	return &types.AutoAssessment{
		Likely:     false,
		Confidence: 0.6,
		Reason:     "no matching license or certification found on the resume",
	}, ""
}

var remoteRe = regexp.MustCompile(`(?i)\b(?:fully\s+)?remote\b`)

func assessLocation(item types.KnockoutItem, profile *ResumeProfile) (*types.AutoAssessment, string) {
	source := item.Label + " " + item.Evidence
	if remoteRe.MatchString(source) && !strings.Contains(strings.ToLower(source), "on-site") {
		return &types.AutoAssessment{
			Likely:     true,
			Confidence: 0.9,
			Reason:     "requirement is remote-friendly",
		}, ""
	}

	// Hybrid and on-site both reduce to "can the candidate get there";
	// confidence depends on whether the resume exposed any location token.
	confidence := 0.3
	reason := "on-site or hybrid requirement; resume gives no location to compare"
	evidence := ""
	if profile.HasLocationToken {
		confidence = 0.6
		reason = "on-site or hybrid requirement; resume lists a location but proximity was not verified"
		evidence = "location token found on resume"
	}
	return &types.AutoAssessment{
		Likely:     true,
		Confidence: confidence,
		Reason:     reason,
	}, evidence
}

// requiredYearsRes capture the JD's years-of-experience requirement across
// common phrasings.
var requiredYearsRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(\d{1,2})\s*\+\s*years?\b`),
	regexp.MustCompile(`(?i)\b(?:minimum|min\.?)\s+(?:of\s+)?(\d{1,2})\s+years?\b`),
	regexp.MustCompile(`(?i)\bat least\s+(\d{1,2})\s+years?\b`),
	regexp.MustCompile(`(?i)\b(\d{1,2})\s+or more years?\b`),
	regexp.MustCompile(`(?i)\b(\d{1,2})\s*(?:-|–|to)\s*\d{1,2}\s+years?\b`),
	regexp.MustCompile(`(?i)\b(\d{1,2})\s+years?(?:'|s)?\s+(?:of\s+)?(?:relevant\s+|professional\s+|hands-on\s+)?experience\b`),
}

// RequiredYears extracts the years-of-experience requirement from job text.
// Returns 0, false when no requirement is stated or it fails the 1-30
// sanity bounds.
func RequiredYears(jobText string) (int, bool) {
	for _, re := range requiredYearsRes {
		m := re.FindStringSubmatch(jobText)
		if m == nil {
			continue
		}
		years, err := strconv.Atoi(m[1])
		if err != nil || years < 1 || years > 30 {
			continue
		}
		return years, true
	}
	return 0, false
}

// ExperienceKnockout emits a synthetic knockout when the resume falls short
// of the JD's years requirement by more than cfg.SuppressionYears. Small
// gaps are deliberately not flagged; estimated years are too coarse to
// punish a near miss.
func ExperienceKnockout(jobText, resumeText string, cfg EnhancerConfig, gen ids.Generator) *types.EnhancedKnockoutItem {
	required, ok := RequiredYears(jobText)
	if !ok {
		return nil
	}

	profile := BuildResumeProfile(resumeText, cfg.OverlapDiscount)
	estimated := math.Round(profile.YearsExperience)

	if float64(required)-estimated <= cfg.SuppressionYears {
		return nil
	}

	return &types.EnhancedKnockoutItem{
		KnockoutItem: types.KnockoutItem{
			ID:       gen.NewID("ko"),
			Label:    fmt.Sprintf("%d+ years of experience required", required),
			Category: types.KnockoutOther,
			Evidence: fmt.Sprintf("posting asks for %d years; resume shows roughly %.0f", required, estimated),
		},
		AutoAssessment: &types.AutoAssessment{
			Likely:     false,
			Confidence: 0.6,
			Reason:     fmt.Sprintf("estimated %.0f years of experience against a %d-year requirement", estimated, required),
		},
		ResumeEvidence: fmt.Sprintf("estimated %.0f years from dated roles", estimated),
	}
}
