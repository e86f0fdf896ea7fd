// Package main provides the resume analyzer CLI: scoring a resume against a
// job posting for keyword coverage, knockout risk, recruiter findability,
// semantic fit, and parse health.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_analyzer",
	Short: "Score a resume against a job posting",
	Long: "Resume Analyzer scores a resume against a job posting across five dimensions: " +
		"keyword coverage, knockout requirement risk, recruiter search visibility, " +
		"semantic match, and parse health.",
}

var (
	configPath string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
