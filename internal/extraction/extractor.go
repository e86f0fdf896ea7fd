// Package extraction mines job posting text into a ranked, deduplicated
// keyword set partitioned into critical and optional terms.
package extraction

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/textnorm"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// requirementZoneWidth is how far after a requirement indicator a
	// keyword's first occurrence still counts as requirement-zone placement
	requirementZoneWidth = 200
	// requirementZoneBoost multiplies the score of requirement-zone keywords
	requirementZoneBoost = 1.5
	// criticalCount and optionalCount partition the ranked list
	criticalCount = 15
	optionalCount = 15
)

// scoredTerm is one ranked keyword candidate
type scoredTerm struct {
	term  string  // normalized form
	score float64 // base × (1 + ln(frequency)), possibly zone-boosted
	first int     // offset of first occurrence in the normalized text
}

// Extract scans job text against the canonical dictionaries and returns the
// ranked keyword set. Deterministic: identical input yields an identical
// ordered partition.
func Extract(jobText string) *types.KeywordSet {
	norm := textnorm.Normalize(jobText)
	if norm == "" {
		return &types.KeywordSet{}
	}

	merged := map[string]scoredTerm{}
	for _, dict := range dictionaries {
		for _, term := range dict.terms {
			count := textnorm.CountOccurrences(norm, term)
			if count == 0 {
				continue
			}
			score := dict.baseScore * (1 + math.Log(float64(count)))
			first := textnorm.FirstIndex(norm, term)
			if existing, ok := merged[term]; !ok || score > existing.score {
				merged[term] = scoredTerm{term: term, score: score, first: first}
			}
		}
	}
	if len(merged) == 0 {
		return &types.KeywordSet{}
	}

	zones := requirementZones(norm)
	ranked := make([]scoredTerm, 0, len(merged))
	for _, st := range merged {
		if inRequirementZone(st.first, zones) {
			st.score *= requirementZoneBoost
		}
		ranked = append(ranked, st)
	}

	// Rank by score descending; alphabetical tie-break keeps ordering stable
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].term < ranked[j].term
	})

	ranked = suppressSubsets(ranked)

	display := make([]string, len(ranked))
	for i, st := range ranked {
		display[i] = displayForm(st.term)
	}

	ks := &types.KeywordSet{All: display}
	if len(display) <= criticalCount {
		ks.Critical = display
	} else {
		ks.Critical = display[:criticalCount]
		if len(display) <= criticalCount+optionalCount {
			ks.Optional = display[criticalCount:]
		} else {
			ks.Optional = display[criticalCount : criticalCount+optionalCount]
		}
	}
	return ks
}

// requirementZones returns the start offsets of every requirement indicator.
func requirementZones(norm string) []int {
	var zones []int
	for _, indicator := range requirementIndicators {
		rest := norm
		base := 0
		for {
			idx := strings.Index(rest, indicator)
			if idx < 0 {
				break
			}
			zones = append(zones, base+idx+len(indicator))
			rest = rest[idx+len(indicator):]
			base += idx + len(indicator)
		}
	}
	return zones
}

// inRequirementZone reports whether a first-occurrence offset falls within
// the boost window after any indicator.
func inRequirementZone(first int, zones []int) bool {
	if first < 0 {
		return false
	}
	for _, z := range zones {
		if first >= z && first-z <= requirementZoneWidth {
			return true
		}
	}
	return false
}

// suppressSubsets drops any kept term that is a literal substring of another
// kept term, so compound phrases win over their components. Iterates in rank
// order so the higher-ranked of two overlapping terms survives.
func suppressSubsets(ranked []scoredTerm) []scoredTerm {
	kept := make([]scoredTerm, 0, len(ranked))
	for _, candidate := range ranked {
		shadowed := false
		for _, existing := range kept {
			if strings.Contains(existing.term, candidate.term) || strings.Contains(candidate.term, existing.term) {
				shadowed = true
				break
			}
		}
		if !shadowed {
			kept = append(kept, candidate)
		}
	}
	return kept
}

// displayForm returns the canonical capitalization for a term, else title case.
func displayForm(term string) string {
	if canonical, ok := canonicalForms[term]; ok {
		return canonical
	}
	return textnorm.TitleCase(term)
}
