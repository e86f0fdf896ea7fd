// Package semantic computes embedding-based match scores between a resume
// and a job posting, plus an LLM-generated qualitative analysis.
package semantic

import (
	"context"
	"math"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/knockouts"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/textnorm"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Sub-score weights. Skills carry the most signal for keyword-driven
// screening; role title the least.
const (
	weightSkills     = 0.35
	weightExperience = 0.25
	weightDomain     = 0.25
	weightRole       = 0.15

	// The overall score blends the weighted sub-scores with the whole
	// document similarity
	weightSubScores = 0.7
	weightWholeDoc  = 0.3

	// Experience, domain and role blend their embedding similarity with a
	// cheap lexical heuristic; skills rely on the embedding alone
	blendSimilarity = 0.6
	blendHeuristic  = 0.4

	// minConfidence is the floor reported for any successful computation
	minConfidence = 0.7

	// titleRegionChars is how much of the JD's opening feeds the role pair
	titleRegionChars = 300
)

// Request carries one semantic analysis invocation.
type Request struct {
	ResumeText string
	JobText    string
	// Consent records that the user agreed to send document text to the
	// LLM provider. Analysis refuses to run without it.
	Consent bool
}

// Analyzer runs semantic match analysis against an LLM provider.
type Analyzer struct {
	client llm.Client
	log    *zap.Logger
	cfg    knockouts.EnhancerConfig
}

// NewAnalyzer builds an Analyzer. A nil logger falls back to zap.NewNop.
func NewAnalyzer(client llm.Client, log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{
		client: client,
		log:    log,
		cfg:    knockouts.DefaultEnhancerConfig(),
	}
}

// embedding pair labels, used for logging and error messages
const (
	pairWholeDoc   = "whole-document"
	pairSkills     = "skills"
	pairExperience = "experience"
	pairDomain     = "domain"
	pairRole       = "role"
)

// Analyze computes the semantic match between a resume and a job posting.
// It never returns a Go error: gate failures and provider failures produce
// a zeroed result with Err set, so callers can always render something.
func (a *Analyzer) Analyze(ctx context.Context, req Request) *types.SemanticMatchResult {
	if !req.Consent {
		return errResult("semantic analysis requires consent to send document text to the LLM provider")
	}
	if a.client == nil {
		return errResult("no LLM credential configured; set GEMINI_API_KEY to enable semantic analysis")
	}
	if req.ResumeText == "" || req.JobText == "" {
		return errResult("semantic analysis needs both a resume and a job posting")
	}

	resumeSections, resumeFound := splitSections(req.ResumeText)
	jobSections, _ := splitSections(req.JobText)

	jobTitleRegion := req.JobText
	if len(jobTitleRegion) > titleRegionChars {
		jobTitleRegion = jobTitleRegion[:titleRegionChars]
	}

	pairs := []struct {
		label      string
		resumeSide string
		jobSide    string
	}{
		{pairWholeDoc, req.ResumeText, req.JobText},
		{pairSkills, resumeSections[sectionSkills], jobSections[sectionSkills]},
		{pairExperience, resumeSections[sectionExperience], jobSections[sectionExperience]},
		{pairDomain, resumeSections[sectionSummary], jobSections[sectionSummary]},
		{pairRole, resumeSections[sectionSummary], jobTitleRegion},
	}

	similarities := make([]float64, len(pairs))
	var analysis *types.QualitativeAnalysis

	g, gctx := errgroup.WithContext(ctx)
	for i, pair := range pairs {
		i, pair := i, pair
		g.Go(func() error {
			sim, err := a.pairSimilarity(gctx, pair.resumeSide, pair.jobSide)
			if err != nil {
				a.log.Warn("embedding pair failed",
					zap.String("pair", pair.label), zap.Error(err))
				return err
			}
			similarities[i] = sim
			return nil
		})
	}
	// The qualitative call degrades internally and never fails the group
	g.Go(func() error {
		analysis = a.qualitativeAnalysis(gctx, req.JobText, req.ResumeText)
		return nil
	})
	if err := g.Wait(); err != nil {
		return errResult("semantic analysis unavailable: " + err.Error())
	}

	resumeNorm := textnorm.Normalize(req.ResumeText)
	jobNorm := textnorm.Normalize(req.JobText)

	skillsScore := similarityScore(similarities[1])
	experienceScore := blend(similarityScore(similarities[2]),
		experienceYearsHeuristic(req.JobText, req.ResumeText, a.cfg.OverlapDiscount))
	domainScore := blend(similarityScore(similarities[3]),
		domainTermHeuristic(jobNorm, resumeNorm))
	roleScore := blend(similarityScore(similarities[4]),
		roleTitleHeuristic(jobNorm, resumeNorm))

	weighted := weightSkills*skillsScore +
		weightExperience*experienceScore +
		weightDomain*domainScore +
		weightRole*roleScore
	overall := weightSubScores*weighted + weightWholeDoc*similarityScore(similarities[0])

	result := &types.SemanticMatchResult{
		Score:           clampScore(overall),
		SkillsScore:     clampScore(skillsScore),
		ExperienceScore: clampScore(experienceScore),
		DomainScore:     clampScore(domainScore),
		RoleScore:       clampScore(roleScore),
		Confidence:      confidence(resumeFound),
		Analysis:        analysis,
	}
	result.Findings = a.buildFindings(result, resumeFound)
	return result
}

// pairSimilarity embeds both sides of a pair and returns their cosine
// similarity. Each embedding call retries transient provider errors.
func (a *Analyzer) pairSimilarity(ctx context.Context, resumeSide, jobSide string) (float64, error) {
	var resumeVec, jobVec []float32

	err := llm.WithRetry(ctx, func() error {
		var embedErr error
		resumeVec, embedErr = a.client.EmbedText(ctx, resumeSide)
		return embedErr
	})
	if err != nil {
		return 0, err
	}
	err = llm.WithRetry(ctx, func() error {
		var embedErr error
		jobVec, embedErr = a.client.EmbedText(ctx, jobSide)
		return embedErr
	})
	if err != nil {
		return 0, err
	}
	return llm.CosineSimilarity(resumeVec, jobVec)
}

// similarityScore maps cosine similarity in [-1,1] onto the 0-100 scale.
func similarityScore(sim float64) float64 {
	return (sim + 1) / 2 * 100
}

func blend(simScore, heuristicScore float64) float64 {
	return blendSimilarity*simScore + blendHeuristic*heuristicScore
}

// confidence reflects how much of the resume the section splitter actually
// recognized. Fallback-backed sections dilute the embedding signal.
func confidence(found map[string]bool) float64 {
	c := 0.95
	for _, ok := range found {
		if !ok {
			c -= 0.05
		}
	}
	if c < minConfidence {
		c = minConfidence
	}
	return c
}

func clampScore(score float64) int {
	rounded := int(math.Round(score))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}

func (a *Analyzer) buildFindings(result *types.SemanticMatchResult, found map[string]bool) []types.Finding {
	var findings []types.Finding

	switch {
	case result.Score >= 75:
		findings = append(findings, types.Finding{
			Category:    "semantic",
			Severity:    types.SeverityInfo,
			Title:       "Strong semantic match",
			Description: "The resume's content aligns closely with the job posting's themes.",
		})
	case result.Score >= 50:
		findings = append(findings, types.Finding{
			Category:    "semantic",
			Severity:    types.SeverityLow,
			Title:       "Moderate semantic match",
			Description: "The resume partially covers the job posting's themes.",
			Suggestion:  "Mirror more of the posting's language in your summary and experience bullets.",
		})
	default:
		findings = append(findings, types.Finding{
			Category:    "semantic",
			Severity:    types.SeverityMedium,
			Title:       "Weak semantic match",
			Description: "The resume reads as a different role or domain than the posting.",
			Impact:      "Recruiters and matching systems may not surface this resume for the role.",
			Suggestion:  "Rework the summary and skills sections to speak to this posting directly.",
		})
	}

	missing := 0
	for _, ok := range found {
		if !ok {
			missing++
		}
	}
	if missing > 0 {
		findings = append(findings, types.Finding{
			Category:    "semantic",
			Severity:    types.SeverityInfo,
			Title:       "Some resume sections were not recognized",
			Description: "One or more standard sections could not be located, so parts of the analysis used the document opening instead.",
			Suggestion:  "Use conventional headers such as Skills, Experience, and Education.",
		})
	}
	return findings
}

// errResult is the zeroed result returned when the analysis cannot run.
func errResult(msg string) *types.SemanticMatchResult {
	return &types.SemanticMatchResult{
		Err: msg,
		Findings: []types.Finding{{
			Category:    "semantic",
			Severity:    types.SeverityHigh,
			Title:       "Semantic analysis did not run",
			Description: msg,
		}},
	}
}
