package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/ids"
	"github.com/jonathan/resume-analyzer/internal/knockouts"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/observability"
)

var knockoutsCmd = &cobra.Command{
	Use:   "knockouts",
	Short: "Detect knockout requirements in a job posting",
	Long: "Detect hard requirements (citizenship, degree, location, licenses) in a " +
		"job posting; with a resume, assess whether each is likely met.",
	RunE: runKnockouts,
}

var (
	knockoutsResume string
	knockoutsJob    string
	knockoutsJobURL string
)

func init() {
	knockoutsCmd.Flags().StringVarP(&knockoutsResume, "resume", "r", "", "Path to resume text file (optional)")
	knockoutsCmd.Flags().StringVarP(&knockoutsJob, "job", "j", "", "Path to job posting text file")
	knockoutsCmd.Flags().StringVarP(&knockoutsJobURL, "job-url", "u", "", "URL to fetch the job posting from")

	rootCmd.AddCommand(knockoutsCmd)
}

func runKnockouts(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(config.Config{
		Resume: knockoutsResume,
		Job:    knockoutsJob,
		JobURL: knockoutsJobURL,
	})
	if err != nil {
		return err
	}

	log, err := logger.New(verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	jobText, err := loadJobText(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}

	resumeText := ""
	if cfg.Resume != "" {
		artifact, err := loadResume(cfg)
		if err != nil {
			return err
		}
		resumeText = artifact.Text
	}

	runner := analysis.NewRunner(nil, ids.UUIDGenerator{}, log)
	items := runner.Knockouts(resumeText, jobText)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintKnockouts(items)
	printer.PrintKnockoutRisk(knockouts.AssessRisk(items))
	return nil
}
