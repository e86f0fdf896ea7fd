// Package recruiter estimates how visible a resume is to a human recruiter
// running manual Boolean searches: keyword hit rate, title alignment,
// skills coverage and industry vocabulary, combined on fixed weights.
package recruiter

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/matching"
	"github.com/jonathan/resume-analyzer/internal/textnorm"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Component weights; they sum to 1.
const (
	keywordWeight  = 0.40
	titleWeight    = 0.25
	skillsWeight   = 0.25
	industryWeight = 0.10
)

const (
	// neutralScore is the degraded default when a heuristic cannot decide
	neutralScore = 50
	// optionalKeywordBonus caps the optional-keyword contribution
	optionalKeywordBonus = 10.0
	// industrySaturation is the resume-side match count at which the
	// industry component maxes out
	industrySaturation = 3
	// dominantIndustryMinHits is how many JD hits a term bag needs before
	// its industry counts as dominant
	dominantIndustryMinHits = 2
	// titleScanWindow bounds how much of the JD's opening is searched for
	// the target title
	titleScanWindow = 300
)

// titleFallbackRe recognizes "<modifier> <role noun>" titles when no synonym
// table entry matches the JD's opening lines.
var titleFallbackRe = regexp.MustCompile(`(?i)\b((?:[a-z]+\s+){0,2}(?:engineer|developer|manager|analyst|designer|scientist|architect|consultant|specialist|coordinator|accountant|nurse|recruiter|representative))\b`)

// Score estimates recruiter-search visibility for a resume against a job
// posting and its extracted keywords.
func Score(resumeText, jobText string, keywords *types.KeywordSet) *types.RecruiterSearchResult {
	resumeNorm := textnorm.Normalize(resumeText)
	jobNorm := textnorm.Normalize(jobText)

	components := map[string]int{}
	var findings []types.Finding

	components["keyword_match"] = scoreKeywordMatch(resumeNorm, keywords)

	titleScore, targetTitle, titleNote := scoreTitleAlignment(resumeNorm, jobNorm)
	components["title_alignment"] = titleScore
	if titleNote != "" {
		findings = append(findings, types.Finding{
			Category:    "recruiter-search",
			Severity:    types.SeverityInfo,
			Title:       "Title heuristic degraded",
			Description: titleNote,
			Impact:      "Title alignment fell back to a neutral score.",
		})
	}

	components["skills_coverage"] = scoreSkillsCoverage(resumeNorm, keywords)

	industryScore, industryNote := scoreIndustryTerms(resumeNorm, jobNorm)
	components["industry_terms"] = industryScore
	if industryNote != "" {
		findings = append(findings, types.Finding{
			Category:    "recruiter-search",
			Severity:    types.SeverityInfo,
			Title:       "No dominant industry detected",
			Description: industryNote,
			Impact:      "Industry-term scoring fell back to a neutral score.",
		})
	}

	weighted := keywordWeight*float64(components["keyword_match"]) +
		titleWeight*float64(components["title_alignment"]) +
		skillsWeight*float64(components["skills_coverage"]) +
		industryWeight*float64(components["industry_terms"])
	overall := clamp(int(math.Round(weighted)))

	findings = append(findings, suggestionForWeakest(components))

	return &types.RecruiterSearchResult{
		Score:          overall,
		KeywordMatch:   components["keyword_match"],
		TitleAlignment: components["title_alignment"],
		SkillsCoverage: components["skills_coverage"],
		IndustryTerms:  components["industry_terms"],
		TargetTitle:    targetTitle,
		Findings:       findings,
	}
}

// scoreKeywordMatch is the critical-keyword hit rate plus a capped optional
// bonus, on the shared matching rules.
func scoreKeywordMatch(resumeNorm string, keywords *types.KeywordSet) int {
	if keywords.IsEmpty() {
		return neutralScore
	}

	score := 0.0
	if len(keywords.Critical) > 0 {
		found, _ := matching.Partition(resumeNorm, keywords.Critical)
		score = float64(len(found)) / float64(len(keywords.Critical)) * 100
	}
	if len(keywords.Optional) > 0 {
		found, _ := matching.Partition(resumeNorm, keywords.Optional)
		score += optionalKeywordBonus * float64(len(found)) / float64(len(keywords.Optional))
	}
	return clamp(int(math.Round(score)))
}

// scoreTitleAlignment extracts the JD's target title and checks how the
// resume presents against it. Returns the score, the detected canonical
// title, and a note when the heuristic degraded.
func scoreTitleAlignment(resumeNorm, jobNorm string) (int, string, string) {
	opening := jobNorm
	if len(opening) > titleScanWindow {
		opening = opening[:titleScanWindow]
	}

	canonical, exactTable := extractTargetTitle(opening)
	if canonical == "" {
		return neutralScore, "", "no recognizable job title in the posting's opening lines"
	}

	score := 0
	switch {
	case titlePresent(resumeNorm, canonical, exactTable):
		score = 100
	case roleNounPresent(resumeNorm, canonical):
		score = 80
	default:
		score = 20
	}

	score += seniorityProximityBonus(opening, resumeNorm)
	return clamp(score), textnorm.TitleCase(canonical), ""
}

// extractTargetTitle finds the canonical title in the JD opening: synonym
// table first, regex fallback second. The second return reports whether the
// table (rather than the fallback) produced the title.
func extractTargetTitle(opening string) (string, bool) {
	for _, canonical := range canonicalTitles {
		if strings.Contains(opening, canonical) {
			return canonical, true
		}
		for _, syn := range titleSynonyms[canonical] {
			if len(syn) <= 4 {
				if textnorm.ContainsWord(opening, syn) {
					return canonical, true
				}
				continue
			}
			if strings.Contains(opening, syn) {
				return canonical, true
			}
		}
	}

	if m := titleFallbackRe.FindStringSubmatch(opening); m != nil {
		return strings.TrimSpace(m[1]), false
	}
	return "", false
}

// titlePresent reports an exact canonical-or-synonym occurrence in the resume.
func titlePresent(resumeNorm, canonical string, fromTable bool) bool {
	if strings.Contains(resumeNorm, canonical) {
		return true
	}
	if !fromTable {
		return false
	}
	for _, syn := range titleSynonyms[canonical] {
		if len(syn) <= 4 {
			if textnorm.ContainsWord(resumeNorm, syn) {
				return true
			}
			continue
		}
		if strings.Contains(resumeNorm, syn) {
			return true
		}
	}
	return false
}

// roleNounPresent checks for the title's trailing role noun ("engineer",
// "analyst", ...) as the non-exact tier.
func roleNounPresent(resumeNorm, canonical string) bool {
	parts := strings.Fields(canonical)
	if len(parts) == 0 {
		return false
	}
	return textnorm.ContainsWord(resumeNorm, parts[len(parts)-1])
}

// seniorityProximityBonus compares seniority tokens between the JD opening
// and the resume: same level +10, adjacent +5, else 0.
func seniorityProximityBonus(opening, resumeNorm string) int {
	jdLevel := seniorityIndex(opening)
	resumeLevel := seniorityIndex(resumeNorm)
	if jdLevel < 0 || resumeLevel < 0 {
		return 0
	}
	switch diff := abs(jdLevel - resumeLevel); diff {
	case 0:
		return 10
	case 1:
		return 5
	default:
		return 0
	}
}

func seniorityIndex(norm string) int {
	for i, level := range seniorityLadder {
		if textnorm.ContainsWord(norm, level) {
			return i
		}
	}
	return -1
}

// scoreSkillsCoverage is the fraction of short, concrete skill keywords the
// resume contains. Long compound phrases are excluded; recruiters type short
// terms into search boxes.
func scoreSkillsCoverage(resumeNorm string, keywords *types.KeywordSet) int {
	if keywords.IsEmpty() {
		return neutralScore
	}

	var skills []string
	for _, kw := range keywords.All {
		if len(strings.Fields(kw)) <= 2 {
			skills = append(skills, kw)
		}
	}
	if len(skills) == 0 {
		return neutralScore
	}

	found, _ := matching.Partition(resumeNorm, skills)
	return clamp(int(math.Round(float64(len(found)) / float64(len(skills)) * 100)))
}

// scoreIndustryTerms detects the JD's dominant industry and scores the
// resume by how much of that industry's vocabulary it shares, saturating
// after industrySaturation matches.
func scoreIndustryTerms(resumeNorm, jobNorm string) (int, string) {
	dominant, ok := DominantIndustry(jobNorm)
	if !ok {
		return neutralScore, "the posting does not use enough of any single industry's vocabulary to classify it"
	}

	matches := 0
	for _, term := range IndustryTerms(dominant) {
		if textnorm.ContainsWord(resumeNorm, term) {
			matches++
		}
	}
	if matches > industrySaturation {
		matches = industrySaturation
	}
	return clamp(int(math.Round(float64(matches) / float64(industrySaturation) * 100))), ""
}

// suggestionForWeakest emits the improvement suggestion for the lowest
// scoring component.
func suggestionForWeakest(components map[string]int) types.Finding {
	weakest := ""
	lowest := 101
	// Fixed iteration order keeps the result deterministic
	for _, name := range []string{"keyword_match", "title_alignment", "skills_coverage", "industry_terms"} {
		if components[name] < lowest {
			lowest = components[name]
			weakest = name
		}
	}
	return types.Finding{
		Category:    "recruiter-search",
		Severity:    types.SeverityMedium,
		Title:       fmt.Sprintf("Weakest search factor: %s", strings.ReplaceAll(weakest, "_", " ")),
		Description: fmt.Sprintf("The %s component scored %d.", strings.ReplaceAll(weakest, "_", " "), lowest),
		Impact:      "The lowest factor caps how often recruiters surface this resume.",
		Suggestion:  componentSuggestions[weakest],
	}
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
