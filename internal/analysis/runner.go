// Package analysis orchestrates the individual scorers into one composite
// snapshot for a resume / job posting pair.
package analysis

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/coverage"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/ids"
	"github.com/jonathan/resume-analyzer/internal/knockouts"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/parsehealth"
	"github.com/jonathan/resume-analyzer/internal/recruiter"
	"github.com/jonathan/resume-analyzer/internal/semantic"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Inputs carries one analysis invocation.
type Inputs struct {
	Artifact *types.ResumeArtifact
	JobText  string
	// Consent gates the semantic analyzer's provider calls
	Consent bool
}

// Runner wires the scorers together. The zero client is valid: the semantic
// analyzer then reports itself unavailable instead of failing the run.
type Runner struct {
	client llm.Client
	gen    ids.Generator
	log    *zap.Logger
	cfg    knockouts.EnhancerConfig
}

// NewRunner builds a Runner. client may be nil when no credential is
// configured; log may be nil.
func NewRunner(client llm.Client, gen ids.Generator, log *zap.Logger) *Runner {
	if gen == nil {
		gen = ids.UUIDGenerator{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		client: client,
		gen:    gen,
		log:    log,
		cfg:    knockouts.DefaultEnhancerConfig(),
	}
}

// Run executes every scorer and assembles the composite snapshot. The
// synchronous scorers always produce results; the semantic analyzer may
// report itself unavailable via its Err field.
func (r *Runner) Run(ctx context.Context, in Inputs) *types.Scores {
	resumeText := ""
	if in.Artifact != nil {
		resumeText = in.Artifact.Text
	}

	keywords := extraction.Extract(in.JobText)
	r.log.Debug("keywords extracted",
		zap.Int("critical", len(keywords.Critical)),
		zap.Int("optional", len(keywords.Optional)))

	scores := &types.Scores{
		Coverage:        coverage.Score(resumeText, keywords),
		RecruiterSearch: recruiter.Score(resumeText, in.JobText, keywords),
		KnockoutRisk:    r.assessKnockouts(resumeText, in.JobText),
	}
	if in.Artifact != nil {
		scores.ParseHealth = parsehealth.Score(in.Artifact)
	}

	analyzer := semantic.NewAnalyzer(r.client, r.log)
	scores.SemanticMatch = analyzer.Analyze(ctx, semantic.Request{
		ResumeText: resumeText,
		JobText:    in.JobText,
		Consent:    in.Consent,
	})
	if scores.SemanticMatch.Err != "" {
		r.log.Info("semantic analysis skipped", zap.String("reason", scores.SemanticMatch.Err))
	}

	return scores
}

// Knockouts runs detection and enhancement alone, for callers that only
// need the requirement list.
func (r *Runner) Knockouts(resumeText, jobText string) []types.EnhancedKnockoutItem {
	detected := knockouts.Detect(jobText, r.gen)
	enhanced := knockouts.Enhance(detected, resumeText, r.cfg)
	if extra := knockouts.ExperienceKnockout(jobText, resumeText, r.cfg, r.gen); extra != nil {
		enhanced = append(enhanced, *extra)
	}
	return enhanced
}

func (r *Runner) assessKnockouts(resumeText, jobText string) *types.KnockoutRiskResult {
	enhanced := r.Knockouts(resumeText, jobText)
	r.log.Debug("knockouts assessed", zap.Int("count", len(enhanced)))
	return knockouts.AssessRisk(enhanced)
}
