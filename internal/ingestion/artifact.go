package ingestion

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Layout estimation thresholds. These are rough text-side approximations of
// the signals a PDF extractor would report directly.
const (
	columnGapMinWidth   = 4
	columnLineThreshold = 0.30
	densityLineLength   = 110
	densityLineFraction = 0.40
	headerScanLines     = 3
)

var (
	columnGapRe    = regexp.MustCompile(`\S {4,}\S`)
	contactTokenRe = regexp.MustCompile(`(?i)@|\(\d{3}\)|linkedin\.com`)
	controlCharsRe = regexp.MustCompile("[\x00-\x08\x0b\x0c\x0e-\x1f]")
)

// Resume builds a ResumeArtifact from raw extracted text: the text is
// cleaned, extraction problems become warnings, and layout signals are
// estimated from the raw text's shape before cleaning flattens it.
func Resume(raw string) *types.ResumeArtifact {
	var warnings []string

	if !utf8.ValidString(raw) {
		raw = strings.ToValidUTF8(raw, "")
		warnings = append(warnings, "invalid UTF-8 sequences were dropped")
	}
	if controlCharsRe.MatchString(raw) {
		raw = controlCharsRe.ReplaceAllString(raw, "")
		warnings = append(warnings, "control characters were removed")
	}

	cleaned := CleanText(raw)
	if cleaned == "" {
		warnings = append(warnings, "no text content after cleaning")
	}

	return &types.ResumeArtifact{
		Text:     cleaned,
		Warnings: warnings,
		Layout:   estimateLayout(raw),
	}
}

// estimateLayout derives coarse layout signals from raw text shape. A real
// PDF extractor reports these directly; for plain text we look at wide
// intra-line gaps (column seams), line length (density), and whether the
// contact line sits at the very top (header placement risk).
func estimateLayout(raw string) *types.LayoutSignals {
	lines := nonEmptyLines(raw)
	if len(lines) == 0 {
		return nil
	}

	gapLines := 0
	longLines := 0
	for _, line := range lines {
		if columnGapRe.MatchString(line) {
			gapLines++
		}
		if len(line) > densityLineLength {
			longLines++
		}
	}

	layout := &types.LayoutSignals{
		EstimatedColumns:  1,
		ColumnMergeRisk:   types.RiskLow,
		TextDensity:       types.RiskLow,
		HeaderContactRisk: types.RiskLow,
	}

	gapFraction := float64(gapLines) / float64(len(lines))
	if gapFraction >= columnLineThreshold {
		layout.EstimatedColumns = 2
		layout.ColumnMergeRisk = types.RiskMedium
		if gapFraction >= 2*columnLineThreshold {
			layout.ColumnMergeRisk = types.RiskHigh
		}
	}

	if float64(longLines)/float64(len(lines)) >= densityLineFraction {
		layout.TextDensity = types.RiskMedium
	}

	// Contact details only in the first few lines suggests a header block
	// that weaker extractors drop
	top := strings.Join(lines[:min(headerScanLines, len(lines))], "\n")
	rest := ""
	if len(lines) > headerScanLines {
		rest = strings.Join(lines[headerScanLines:], "\n")
	}
	if contactTokenRe.MatchString(top) && !contactTokenRe.MatchString(rest) {
		layout.HeaderContactRisk = types.RiskMedium
	}

	return layout
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
