package semantic

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/knockouts"
	"github.com/jonathan/resume-analyzer/internal/recruiter"
	"github.com/jonathan/resume-analyzer/internal/textnorm"
)

// heuristicNeutral is the degraded default when a cheap signal cannot decide
const heuristicNeutral = 50.0

// experienceYearsHeuristic scores the resume's estimated years against the
// JD's requirement as a ratio, 0-100. Neutral when the JD states no
// requirement.
func experienceYearsHeuristic(jobText, resumeText string, overlapDiscount float64) float64 {
	required, ok := knockouts.RequiredYears(jobText)
	if !ok {
		return heuristicNeutral
	}
	profile := knockouts.BuildResumeProfile(resumeText, overlapDiscount)
	ratio := profile.YearsExperience / float64(required)
	if ratio > 1 {
		ratio = 1
	}
	return ratio * 100
}

// domainTermHeuristic scores the shared-industry-term ratio between the JD's
// dominant industry vocabulary and the resume. Neutral when no dominant
// industry exists.
func domainTermHeuristic(jobNorm, resumeNorm string) float64 {
	industry, ok := recruiter.DominantIndustry(jobNorm)
	if !ok {
		return heuristicNeutral
	}
	terms := recruiter.IndustryTerms(industry)
	if len(terms) == 0 {
		return heuristicNeutral
	}

	shared := 0
	for _, term := range terms {
		if textnorm.ContainsWord(jobNorm, term) && textnorm.ContainsWord(resumeNorm, term) {
			shared++
		}
	}
	inJob := 0
	for _, term := range terms {
		if textnorm.ContainsWord(jobNorm, term) {
			inJob++
		}
	}
	if inJob == 0 {
		return heuristicNeutral
	}
	return float64(shared) / float64(inJob) * 100
}

// roleTitleHeuristic scores the shared-title-term ratio: how many
// significant words of the JD's opening line appear in the resume.
func roleTitleHeuristic(jobNorm, resumeNorm string) float64 {
	firstLine := jobNorm
	if idx := strings.IndexByte(firstLine, '\n'); idx >= 0 {
		firstLine = firstLine[:idx]
	}

	var titleTerms []string
	for _, word := range strings.Fields(firstLine) {
		word = strings.Trim(word, ".,;:()")
		if len(word) > 3 {
			titleTerms = append(titleTerms, word)
		}
	}
	if len(titleTerms) == 0 {
		return heuristicNeutral
	}

	shared := 0
	for _, term := range titleTerms {
		if textnorm.ContainsWord(resumeNorm, term) {
			shared++
		}
	}
	return float64(shared) / float64(len(titleTerms)) * 100
}
