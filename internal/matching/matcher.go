// Package matching implements the keyword matching shared by the coverage
// and recruiter-search scorers: literal matches, synonym lookups, generated
// morphological variants, and word-boundary matching for short terms.
package matching

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/textnorm"
)

// shortTermLimit is the length at or below which only word-boundary matches
// count. Plain substring matching on terms like "go" or "sql" produces
// false positives inside longer words.
const shortTermLimit = 4

// Matches reports whether keyword is present in resume text. The resume text
// must already be normalized; the keyword may be in display form.
func Matches(resumeNorm, keyword string) bool {
	kw := textnorm.Normalize(keyword)
	if kw == "" || resumeNorm == "" {
		return false
	}

	if containsTerm(resumeNorm, kw) {
		return true
	}

	for _, syn := range synonymsFor(kw) {
		if containsTerm(resumeNorm, syn) {
			return true
		}
	}

	for _, variant := range Variants(kw) {
		if containsTerm(resumeNorm, variant) {
			return true
		}
	}

	return false
}

// containsTerm is the literal avenue: plain substring for longer terms,
// word-boundary matching at or below shortTermLimit.
func containsTerm(resumeNorm, term string) bool {
	if len(term) <= shortTermLimit {
		return textnorm.ContainsWord(resumeNorm, term)
	}
	return strings.Contains(resumeNorm, term)
}

// Partition splits keywords into found and missing against resume text.
// Keywords keep their display form in both lists.
func Partition(resumeNorm string, keywords []string) (found, missing []string) {
	found = make([]string, 0, len(keywords))
	missing = make([]string, 0)
	for _, kw := range keywords {
		if Matches(resumeNorm, kw) {
			found = append(found, kw)
		} else {
			missing = append(missing, kw)
		}
	}
	return found, missing
}

// Variants generates morphological variants of a normalized term: plural and
// singular forms, -ing/-ed stems, and hyphen/space/concatenated spellings.
// The input itself is not included.
func Variants(term string) []string {
	seen := map[string]bool{term: true}
	var variants []string
	add := func(v string) {
		if v != "" && !seen[v] {
			seen[v] = true
			variants = append(variants, v)
		}
	}

	// Plural / singular
	switch {
	case strings.HasSuffix(term, "ies"):
		add(strings.TrimSuffix(term, "ies") + "y")
	case strings.HasSuffix(term, "es"):
		add(strings.TrimSuffix(term, "es"))
		add(strings.TrimSuffix(term, "s"))
	case strings.HasSuffix(term, "s"):
		add(strings.TrimSuffix(term, "s"))
	default:
		add(term + "s")
		if strings.HasSuffix(term, "y") {
			add(strings.TrimSuffix(term, "y") + "ies")
		}
	}

	// Verb stems
	if strings.HasSuffix(term, "ing") {
		stem := strings.TrimSuffix(term, "ing")
		add(stem)
		add(stem + "e")
		add(stem + "ed")
	} else if strings.HasSuffix(term, "ed") {
		stem := strings.TrimSuffix(term, "ed")
		add(stem)
		add(stem + "ing")
	}

	// Hyphen / space / concatenated forms
	if strings.Contains(term, "-") {
		add(strings.ReplaceAll(term, "-", " "))
		add(strings.ReplaceAll(term, "-", ""))
	}
	if strings.Contains(term, " ") {
		add(strings.ReplaceAll(term, " ", "-"))
		add(strings.ReplaceAll(term, " ", ""))
	}

	return variants
}
