package semantic

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/prompts"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Field truncation limits for the qualitative analysis
const (
	maxStrengths       = 5
	maxGaps            = 4
	maxRecommendations = 3
	// promptDocLimit bounds how much of each document goes into the prompt
	promptDocLimit = 6000
)

// analysisSchema is the JSON contract the generation model must meet.
const analysisSchema = `{
  "type": "object",
  "required": ["strengths", "gaps", "recommendations", "summary"],
  "properties": {
    "strengths": {"type": "array", "items": {"type": "string"}},
    "gaps": {"type": "array", "items": {"type": "string"}},
    "recommendations": {"type": "array", "items": {"type": "string"}},
    "summary": {"type": "string"}
  }
}`

// qualitativeAnalysis runs the generation call and defensively parses its
// output. Any provider or parse failure degrades to the canned default;
// this step never fails the overall computation.
func (a *Analyzer) qualitativeAnalysis(ctx context.Context, jobText, resumeText string) *types.QualitativeAnalysis {
	template := prompts.MustGet("semantic.json", "qualitative-analysis")
	prompt := prompts.Format(template, map[string]string{
		"JobText":    truncate(jobText, promptDocLimit),
		"ResumeText": truncate(resumeText, promptDocLimit),
	})

	var raw string
	err := llm.WithRetry(ctx, func() error {
		var callErr error
		raw, callErr = a.client.GenerateJSON(ctx, prompt, llm.TierStandard)
		return callErr
	})
	if err != nil {
		a.log.Warn("qualitative analysis call failed, using default analysis",
			zap.Error(err))
		return defaultAnalysis()
	}

	analysis, ok := parseAnalysis(raw)
	if !ok {
		a.log.Warn("qualitative analysis response unparseable, using default analysis")
		return defaultAnalysis()
	}
	return analysis
}

// parseAnalysis tries progressively more forgiving parses: direct, brace
// extraction, then truncated-JSON repair. The parsed value is schema-checked
// and field-truncated before acceptance.
func parseAnalysis(raw string) (*types.QualitativeAnalysis, bool) {
	raw = llm.CleanJSONBlock(raw)
	if raw == "" {
		return nil, false
	}

	candidates := []string{raw}
	if extracted := extractBraces(raw); extracted != "" && extracted != raw {
		candidates = append(candidates, extracted)
	}
	for _, c := range candidates {
		candidates = append(candidates, repairTruncated(c)...)
	}

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if err := schemas.ValidateJSONString(analysisSchema, candidate); err != nil {
			continue
		}
		var analysis types.QualitativeAnalysis
		if err := json.Unmarshal([]byte(candidate), &analysis); err != nil {
			continue
		}
		sanitizeAnalysis(&analysis)
		return &analysis, true
	}
	return nil, false
}

// extractBraces returns the substring between the first '{' and last '}'.
func extractBraces(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return ""
	}
	return raw[start : end+1]
}

// repairTruncated produces candidate completions for output cut off inside
// an array or string. Each candidate chops back to the last complete
// element and closes the open structures.
func repairTruncated(raw string) []string {
	var out []string

	closers := []string{`"]}`, `]}`, `"}`, `}`}
	for _, closer := range closers {
		out = append(out, raw+closer)
	}

	// Chop the trailing partial element after the last comma, then close
	if idx := strings.LastIndex(raw, ","); idx > 0 {
		chopped := raw[:idx]
		for _, closer := range closers {
			out = append(out, chopped+closer)
		}
	}
	return out
}

// sanitizeAnalysis applies the fixed truncation limits and drops empty items.
func sanitizeAnalysis(a *types.QualitativeAnalysis) {
	a.Strengths = trimList(a.Strengths, maxStrengths)
	a.Gaps = trimList(a.Gaps, maxGaps)
	a.Recommendations = trimList(a.Recommendations, maxRecommendations)
	a.Summary = strings.TrimSpace(a.Summary)
}

func trimList(items []string, max int) []string {
	out := make([]string, 0, max)
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
		if len(out) == max {
			break
		}
	}
	return out
}

// defaultAnalysis is the canned fallback when the generation call or its
// parsing fails; a provider outage degrades the narrative rather than
// removing the feature.
func defaultAnalysis() *types.QualitativeAnalysis {
	return &types.QualitativeAnalysis{
		Strengths:       []string{"Semantic scores were computed from embeddings; see the component scores."},
		Gaps:            []string{"A detailed gap analysis was not available for this run."},
		Recommendations: []string{"Re-run the analysis to get tailored recommendations."},
		Summary:         "The qualitative analysis service was unavailable, so only numeric semantic scores are shown.",
	}
}

func truncate(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	return text[:maxLen] + "..."
}
