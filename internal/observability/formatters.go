// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxFindingsToShow caps how many findings a box lists
	maxFindingsToShow = 5
)

// Printer handles formatted score output.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScores renders every populated result in the snapshot.
func (p *Printer) PrintScores(scores *types.Scores) {
	if scores == nil {
		return
	}
	if scores.Coverage != nil {
		p.PrintCoverage(scores.Coverage)
	}
	if scores.KnockoutRisk != nil {
		p.PrintKnockoutRisk(scores.KnockoutRisk)
	}
	if scores.RecruiterSearch != nil {
		p.PrintRecruiterSearch(scores.RecruiterSearch)
	}
	if scores.SemanticMatch != nil {
		p.PrintSemanticMatch(scores.SemanticMatch)
	}
	if scores.ParseHealth != nil {
		p.PrintParseHealth(scores.ParseHealth)
	}
}

// PrintCoverage outputs the keyword coverage result.
func (p *Printer) PrintCoverage(result *types.CoverageResult) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %d/100\n", result.Score))
	sb.WriteString(fmt.Sprintf("Found:   %d keywords\n", len(result.FoundKeywords)))
	sb.WriteString(fmt.Sprintf("Missing: %d keywords\n", len(result.MissingKeywords)))
	if len(result.MissingKeywords) > 0 {
		sb.WriteString("\nTop missing:\n")
		count := min(len(result.MissingKeywords), maxFindingsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.MissingKeywords[i]))
		}
	}
	appendFindings(&sb, result.Findings)
	p.printBox("KEYWORD COVERAGE", strings.TrimRight(sb.String(), "\n"))
}

// PrintKnockoutRisk outputs the knockout risk assessment.
func (p *Printer) PrintKnockoutRisk(result *types.KnockoutRiskResult) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Risk: %s\n", strings.ToUpper(string(result.Level))))
	sb.WriteString(fmt.Sprintf("Confirmed: %d  Blockers: %d  Unclear: %d\n",
		result.Confirmed, result.Blockers, result.Unclear))
	sb.WriteString(fmt.Sprintf("\n%s\n", result.Explanation))
	appendFindings(&sb, result.Findings)
	p.printBox("KNOCKOUT RISK", strings.TrimRight(sb.String(), "\n"))
}

// PrintRecruiterSearch outputs the recruiter search visibility score.
func (p *Printer) PrintRecruiterSearch(result *types.RecruiterSearchResult) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %d/100\n", result.Score))
	if result.TargetTitle != "" {
		sb.WriteString(fmt.Sprintf("Target title: %s\n", result.TargetTitle))
	}
	sb.WriteString("\nComponents:\n")
	sb.WriteString(fmt.Sprintf("  Keywords:  %3d\n", result.KeywordMatch))
	sb.WriteString(fmt.Sprintf("  Title:     %3d\n", result.TitleAlignment))
	sb.WriteString(fmt.Sprintf("  Skills:    %3d\n", result.SkillsCoverage))
	sb.WriteString(fmt.Sprintf("  Industry:  %3d\n", result.IndustryTerms))
	appendFindings(&sb, result.Findings)
	p.printBox("RECRUITER SEARCH", strings.TrimRight(sb.String(), "\n"))
}

// PrintSemanticMatch outputs the semantic match analysis.
func (p *Printer) PrintSemanticMatch(result *types.SemanticMatchResult) {
	var sb strings.Builder
	if result.Err != "" {
		sb.WriteString(fmt.Sprintf("Unavailable: %s", result.Err))
		p.printBox("SEMANTIC MATCH", sb.String())
		return
	}

	sb.WriteString(fmt.Sprintf("Score: %d/100 (confidence %.2f)\n", result.Score, result.Confidence))
	sb.WriteString("\nComponents:\n")
	sb.WriteString(fmt.Sprintf("  Skills:     %3d\n", result.SkillsScore))
	sb.WriteString(fmt.Sprintf("  Experience: %3d\n", result.ExperienceScore))
	sb.WriteString(fmt.Sprintf("  Domain:     %3d\n", result.DomainScore))
	sb.WriteString(fmt.Sprintf("  Role:       %3d\n", result.RoleScore))

	if result.Analysis != nil {
		sb.WriteString(fmt.Sprintf("\n%s\n", result.Analysis.Summary))
		if len(result.Analysis.Recommendations) > 0 {
			sb.WriteString("\nRecommendations:\n")
			for _, rec := range result.Analysis.Recommendations {
				sb.WriteString(fmt.Sprintf("  • %s\n", rec))
			}
		}
	}
	p.printBox("SEMANTIC MATCH", strings.TrimRight(sb.String(), "\n"))
}

// PrintParseHealth outputs the parse health score.
func (p *Printer) PrintParseHealth(result *types.ParseHealthResult) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %d/100\n", result.Score))
	sb.WriteString("\nComponents:\n")
	sb.WriteString(fmt.Sprintf("  Layout:   %3d\n", result.LayoutScore))
	sb.WriteString(fmt.Sprintf("  Contact:  %3d\n", result.ContactScore))
	sb.WriteString(fmt.Sprintf("  Sections: %3d\n", result.SectionScore))
	appendFindings(&sb, result.Findings)
	p.printBox("PARSE HEALTH", strings.TrimRight(sb.String(), "\n"))
}

// PrintKeywords outputs an extracted keyword set.
func (p *Printer) PrintKeywords(keywords *types.KeywordSet) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Critical (%d):\n", len(keywords.Critical)))
	for _, kw := range keywords.Critical {
		sb.WriteString(fmt.Sprintf("  • %s\n", kw))
	}
	if len(keywords.Optional) > 0 {
		sb.WriteString(fmt.Sprintf("\nOptional (%d):\n", len(keywords.Optional)))
		for _, kw := range keywords.Optional {
			sb.WriteString(fmt.Sprintf("  • %s\n", kw))
		}
	}
	p.printBox("EXTRACTED KEYWORDS", strings.TrimRight(sb.String(), "\n"))
}

// PrintKnockouts outputs detected knockout requirements.
func (p *Printer) PrintKnockouts(items []types.EnhancedKnockoutItem) {
	var sb strings.Builder
	if len(items) == 0 {
		sb.WriteString("No knockout requirements detected.")
		p.printBox("KNOCKOUT REQUIREMENTS", sb.String())
		return
	}

	for _, item := range items {
		sb.WriteString(fmt.Sprintf("[%s] %s\n", item.Category, item.Label))
		if item.AutoAssessment != nil {
			verdict := "likely not met"
			if item.AutoAssessment.Likely {
				verdict = "likely met"
			}
			sb.WriteString(fmt.Sprintf("  %s (%.0f%%): %s\n",
				verdict, item.AutoAssessment.Confidence*100, item.AutoAssessment.Reason))
		}
	}
	p.printBox("KNOCKOUT REQUIREMENTS", strings.TrimRight(sb.String(), "\n"))
}

func appendFindings(sb *strings.Builder, findings []types.Finding) {
	if len(findings) == 0 {
		return
	}
	sb.WriteString("\nFindings:\n")
	count := min(len(findings), maxFindingsToShow)
	for i := 0; i < count; i++ {
		f := findings[i]
		sb.WriteString(fmt.Sprintf("  [%s] %s\n", f.Severity, f.Title))
	}
	if len(findings) > maxFindingsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(findings)-maxFindingsToShow))
	}
}
