package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/ids"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/store"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full analysis of a resume against a job posting",
	Long: "Run every scorer against the resume and job posting, print the results, " +
		"and, when a database is configured, persist the session for history.",
	RunE: runAnalyze,
}

var (
	analyzeResume  string
	analyzeJob     string
	analyzeJobURL  string
	analyzeConsent bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume text file")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job posting text file")
	analyzeCmd.Flags().StringVarP(&analyzeJobURL, "job-url", "u", "", "URL to fetch the job posting from")
	analyzeCmd.Flags().BoolVar(&analyzeConsent, "consent", false, "Consent to sending document text to the LLM provider")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(config.Config{
		Resume:  analyzeResume,
		Job:     analyzeJob,
		JobURL:  analyzeJobURL,
		Consent: analyzeConsent,
	})
	if err != nil {
		return err
	}

	log, err := logger.New(verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()

	artifact, err := loadResume(cfg)
	if err != nil {
		return err
	}
	jobText, err := loadJobText(ctx, cfg, log)
	if err != nil {
		return err
	}

	var client llm.Client
	if cfg.APIKey != "" {
		geminiClient, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer geminiClient.Close()
		client = geminiClient
	}

	runner := analysis.NewRunner(client, ids.UUIDGenerator{}, log)
	scores := runner.Run(ctx, analysis.Inputs{
		Artifact: artifact,
		JobText:  jobText,
		Consent:  cfg.Consent,
	})

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintScores(scores)

	if cfg.DatabaseURL != "" {
		if err := persistSession(cmd, cfg, artifact.Text, scores); err != nil {
			// Persistence failure should not discard an analysis the user
			// can already see
			log.Warn("failed to persist session", zap.Error(err))
		}
	}
	return nil
}

func persistSession(cmd *cobra.Command, cfg *config.Config, resumeText string, scores *types.Scores) error {
	ctx := cmd.Context()
	s, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.EnsureSchema(ctx); err != nil {
		return err
	}
	session := &store.AnalysisSession{
		ID:                uuid.New(),
		ResumeFingerprint: store.Fingerprint(resumeText),
		JobURL:            cfg.JobURL,
		Scores:            scores,
		CreatedAt:         time.Now().UTC(),
	}
	if err := s.SaveSession(ctx, session); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Session saved: %s\n", session.ID)
	return nil
}
