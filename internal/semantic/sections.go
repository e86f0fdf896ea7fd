package semantic

import (
	"regexp"
	"strings"
)

// sectionFallbackChars is how much of the document stands in for a section
// the header matchers could not find
const sectionFallbackChars = 600

// Section labels used for embedding pairs
const (
	sectionSkills     = "skills"
	sectionExperience = "experience"
	sectionSummary    = "summary"
	sectionEducation  = "education"
)

// headerMatchers map section labels to header patterns, in match-priority
// order. The first matcher claiming a line wins.
var headerMatchers = []struct {
	label string
	re    *regexp.Regexp
}{
	{sectionSkills, regexp.MustCompile(`(?i)^\s*(?:technical\s+|core\s+|key\s+)?(?:skills?|competencies|technologies|tech stack)\b`)},
	{sectionExperience, regexp.MustCompile(`(?i)^\s*(?:work\s+|professional\s+|relevant\s+)?(?:experience|employment(?:\s+history)?|career history)\b`)},
	{sectionSummary, regexp.MustCompile(`(?i)^\s*(?:summary|objective|profile|about(?:\s+me)?|overview)\b`)},
	{sectionEducation, regexp.MustCompile(`(?i)^\s*education(?:al background)?\b`)},
}

// splitSections breaks a document into labeled sections on recognized
// headers. Content before the first header lands in the summary section.
// Any section the headers never produced falls back to the document's first
// sectionFallbackChars characters; the found map reports which sections came
// from a real header rather than the fallback.
func splitSections(text string) (sections map[string]string, found map[string]bool) {
	sections = map[string]string{}
	found = map[string]bool{}
	current := sectionSummary
	var builders = map[string]*strings.Builder{}

	for _, line := range strings.Split(text, "\n") {
		matched := false
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && len(trimmed) < 60 {
			for _, m := range headerMatchers {
				if m.re.MatchString(trimmed) {
					current = m.label
					found[m.label] = true
					matched = true
					break
				}
			}
		}
		if matched {
			continue
		}
		b, ok := builders[current]
		if !ok {
			b = &strings.Builder{}
			builders[current] = b
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	for label, b := range builders {
		sections[label] = strings.TrimSpace(b.String())
	}

	fallback := text
	if len(fallback) > sectionFallbackChars {
		fallback = fallback[:sectionFallbackChars]
	}
	for _, m := range headerMatchers {
		if strings.TrimSpace(sections[m.label]) == "" {
			sections[m.label] = strings.TrimSpace(fallback)
			found[m.label] = false
		}
	}
	return sections, found
}
