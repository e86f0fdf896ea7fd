package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/parsehealth"
)

var parseHealthCmd = &cobra.Command{
	Use:   "parse-health",
	Short: "Estimate how cleanly a resume parses",
	RunE:  runParseHealth,
}

var parseHealthResume string

func init() {
	parseHealthCmd.Flags().StringVarP(&parseHealthResume, "resume", "r", "", "Path to resume text file")

	rootCmd.AddCommand(parseHealthCmd)
}

func runParseHealth(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(config.Config{Resume: parseHealthResume})
	if err != nil {
		return err
	}

	artifact, err := loadResume(cfg)
	if err != nil {
		return err
	}

	result := parsehealth.Score(artifact)
	observability.NewPrinter(os.Stdout).PrintParseHealth(result)
	return nil
}
