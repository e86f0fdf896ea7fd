package knockouts

import (
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/jonathan/resume-analyzer/internal/textnorm"
)

// AuthSignal is the tri-state work-authorization heuristic read off a resume
type AuthSignal string

// Work-authorization signals
const (
	AuthPositive AuthSignal = "positive" // citizenship / permanent-residency language present
	AuthNegative AuthSignal = "negative" // explicit visa-type mention
	AuthUnknown  AuthSignal = "unknown"
)

// ResumeProfile is what the enhancer could read off the resume text. Built
// once per resume and shared across every knockout assessment.
type ResumeProfile struct {
	YearsExperience   float64
	EducationLevel    string // phd / master / bachelor / associate / high_school / ""
	WorkAuthorization AuthSignal
	HasClearance      bool
	Certifications    []string
	HasLocationToken  bool
}

// educationRank orders detected education levels for ordinal comparison
var educationRank = map[string]int{
	"high_school": 1,
	"associate":   2,
	"bachelor":    3,
	"master":      4,
	"phd":         5,
}

var (
	dateRangeRe = regexp.MustCompile(`\b(19\d{2}|20\d{2})\s*(?:-|–|—|to|until)\s*(19\d{2}|20\d{2}|present|current|now)\b`)

	positiveAuthRe = regexp.MustCompile(`(?i)\b(?:u\.?s\.?\s+citizen|united states citizen|green card|permanent resident|authorized to work)\b`)
	negativeAuthRe = regexp.MustCompile(`(?i)\b(?:h-?1b|h-?4|f-?1\s+(?:visa|opt)|opt\s+(?:visa|status)|cpt|tn visa|j-?1|requires? sponsorship|need sponsorship|visa sponsorship required)\b`)
	clearanceRe    = regexp.MustCompile(`(?i)\b(?:active\s+)?(?:top secret|ts/sci|secret|security)\s+clearance\b`)
	locationRe     = regexp.MustCompile(`\b[A-Z][a-z]+(?: [A-Z][a-z]+)?,\s*[A-Z]{2}\b|\b(?:remote|relocat)`)
)

// resumeCertTerms are certification spellings scanned for on resumes, mapped
// to canonical display names
var resumeCertTerms = map[string]string{
	"pmp":               "PMP",
	"cpa":               "CPA",
	"cfa":               "CFA",
	"cisa":              "CISA",
	"cissp":             "CISSP",
	"ccna":              "CCNA",
	"aws certified":     "AWS Certified",
	"azure certified":   "Azure Certified",
	"comptia security+": "CompTIA Security+",
	"six sigma":         "Six Sigma",
	"itil":              "ITIL",
	"series 7":          "Series 7",
	"series 63":         "Series 63",
	"driver's license":  "Driver's License",
	"drivers license":   "Driver's License",
	"cdl":               "CDL",
	"rn":                "RN",
	"registered nurse":  "RN",
}

// BuildResumeProfile derives the enhancer's working view of a resume.
// overlapDiscount approximates concurrent roles when summing date ranges.
func BuildResumeProfile(resumeText string, overlapDiscount float64) *ResumeProfile {
	norm := textnorm.Normalize(resumeText)

	profile := &ResumeProfile{
		YearsExperience:   estimateYears(norm, overlapDiscount),
		EducationLevel:    detectEducationLevel(norm),
		WorkAuthorization: AuthUnknown,
		HasClearance:      clearanceRe.MatchString(resumeText),
		HasLocationToken:  locationRe.MatchString(resumeText),
	}

	// Explicit visa-type mentions flip the signal negative even when
	// authorization language is also present.
	if negativeAuthRe.MatchString(resumeText) {
		profile.WorkAuthorization = AuthNegative
	} else if positiveAuthRe.MatchString(resumeText) {
		profile.WorkAuthorization = AuthPositive
	}

	seen := map[string]bool{}
	for term, canonical := range resumeCertTerms {
		if !seen[canonical] && textnorm.ContainsWord(norm, term) {
			seen[canonical] = true
			profile.Certifications = append(profile.Certifications, canonical)
		}
	}
	sort.Strings(profile.Certifications)

	return profile
}

// estimateYears sums non-overlapping date ranges found in the text and
// applies the overlap discount to approximate concurrent roles.
func estimateYears(norm string, discount float64) float64 {
	matches := dateRangeRe.FindAllStringSubmatch(norm, -1)
	if len(matches) == 0 {
		return 0
	}

	currentYear := time.Now().Year()
	type span struct{ start, end int }
	var spans []span
	for _, m := range matches {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		end := currentYear
		if y, err := strconv.Atoi(m[2]); err == nil {
			end = y
		}
		if end < start || start < 1900 || end > currentYear+1 {
			continue
		}
		spans = append(spans, span{start, end})
	}
	if len(spans) == 0 {
		return 0
	}

	// Merge overlapping spans so a 2019-2021 role inside 2018-2022 does not
	// double-count.
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	merged := []span{spans[0]}
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if s.start <= last.end {
			if s.end > last.end {
				last.end = s.end
			}
			continue
		}
		merged = append(merged, s)
	}

	total := 0.0
	for _, s := range merged {
		total += float64(s.end - s.start)
	}
	return total * discount
}

// detectEducationLevel returns the highest education level mentioned.
func detectEducationLevel(norm string) string {
	checks := []struct {
		level string
		re    *regexp.Regexp
	}{
		{"phd", regexp.MustCompile(`\bph\.?d\b|\bdoctorate\b|\bdoctoral\b`)},
		{"master", regexp.MustCompile(`\bmaster(?:'s|s)?\b|\bmba\b|\bm\.s\.|\bmsc\b`)},
		{"bachelor", regexp.MustCompile(`\bbachelor(?:'s|s)?\b|\bb\.s\.|\bbsc\b|\bb\.a\.\b`)},
		{"associate", regexp.MustCompile(`\bassociate(?:'s|s)? degree\b|\ba\.a\.\b`)},
		{"high_school", regexp.MustCompile(`\bhigh school diploma\b|\bged\b`)},
	}
	for _, c := range checks {
		if c.re.MatchString(norm) {
			return c.level
		}
	}
	return ""
}
