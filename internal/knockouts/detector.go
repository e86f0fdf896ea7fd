// Package knockouts detects disqualifier-style hard requirements in job
// postings, cross-references them against resume content, and aggregates
// confirmed states into an overall risk tier.
package knockouts

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-analyzer/internal/ids"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// snippetRadius is how many characters of context surround a match in the
// evidence snippet
const snippetRadius = 30

// Detect scans job text for knockout-style requirements. Each pattern
// contributes at most one item (its first match); items with identical
// generated labels collapse into one. Output is sorted by category priority.
func Detect(jobText string, gen ids.Generator) []types.KnockoutItem {
	if strings.TrimSpace(jobText) == "" {
		return []types.KnockoutItem{}
	}

	seen := map[string]bool{}
	var items []types.KnockoutItem

	for _, group := range patternGroups {
		for _, p := range group.patterns {
			loc := p.re.FindStringSubmatchIndex(jobText)
			if loc == nil {
				continue
			}
			match := submatches(jobText, loc)
			label := p.label(match)
			if label == "" || seen[label] {
				continue
			}
			seen[label] = true

			items = append(items, types.KnockoutItem{
				ID:       gen.NewID("ko"),
				Label:    label,
				Category: group.category,
				Evidence: snippet(jobText, loc[0], loc[1]),
			})
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Category.Priority() < items[j].Category.Priority()
	})
	return items
}

// submatches materializes the submatch strings for a FindStringSubmatchIndex
// result.
func submatches(text string, loc []int) []string {
	out := make([]string, 0, len(loc)/2)
	for i := 0; i+1 < len(loc); i += 2 {
		if loc[i] < 0 {
			out = append(out, "")
			continue
		}
		out = append(out, text[loc[i]:loc[i+1]])
	}
	return out
}

// snippet extracts ±snippetRadius characters of context around a match,
// marking truncation with ellipses. Cut points are widened to rune
// boundaries so typographic quotes and dashes never get split.
func snippet(text string, start, end int) string {
	from := start - snippetRadius
	if from < 0 {
		from = 0
	}
	for from > 0 && !utf8.RuneStart(text[from]) {
		from--
	}
	to := end + snippetRadius
	if to > len(text) {
		to = len(text)
	}
	for to < len(text) && !utf8.RuneStart(text[to]) {
		to++
	}

	out := strings.TrimSpace(strings.ReplaceAll(text[from:to], "\n", " "))
	if from > 0 {
		out = "..." + out
	}
	if to < len(text) {
		out += "..."
	}
	return out
}
