// Package ingestion turns raw resume and job posting inputs (files, URLs)
// into the artifacts the scoring engine consumes.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	multiSpaceRe = regexp.MustCompile(`[ \t]+`)
	blankRunsRe  = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes extracted text while preserving document structure:
// line endings unified, trailing whitespace dropped, bullet markers and
// heading lines kept intact, runs of blank lines collapsed to one.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = blankRunsRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")
	indent := len(line) - len(trimmed)

	// Bullets keep their indentation so nesting survives
	if isBullet(trimmed) {
		if indent > 0 {
			return strings.Repeat(" ", indent) + trimmed
		}
		return trimmed
	}

	content := multiSpaceRe.ReplaceAllString(strings.TrimSpace(line), " ")
	if indent > 0 {
		return strings.Repeat(" ", indent) + content
	}
	return content
}

func isBullet(trimmed string) bool {
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ")
}
