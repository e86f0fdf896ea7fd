package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/observability"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract ranked keywords from a job posting",
	RunE:  runExtract,
}

var (
	extractJob    string
	extractJobURL string
)

func init() {
	extractCmd.Flags().StringVarP(&extractJob, "job", "j", "", "Path to job posting text file")
	extractCmd.Flags().StringVarP(&extractJobURL, "job-url", "u", "", "URL to fetch the job posting from")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(config.Config{Job: extractJob, JobURL: extractJobURL})
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

	keywords := extraction.Extract(jobText)
	if keywords.IsEmpty() {
		fmt.Fprintln(os.Stdout, "No recognized keywords found in the posting.")
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintKeywords(keywords)
	return nil
}
