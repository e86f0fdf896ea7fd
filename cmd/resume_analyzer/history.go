package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past analysis sessions for a resume",
	RunE:  runHistory,
}

var (
	historyResume string
	historyLimit  int
)

func init() {
	historyCmd.Flags().StringVarP(&historyResume, "resume", "r", "", "Path to resume text file")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Maximum sessions to show")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(config.Config{Resume: historyResume})
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("history requires a database; set DATABASE_URL or database_url in the config")
	}

	artifact, err := loadResume(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	s, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer s.Close()

	sessions, err := s.History(ctx, store.Fingerprint(artifact.Text), historyLimit)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(os.Stdout, "No sessions found for this resume.")
		return nil
	}

	for _, session := range sessions {
		line := fmt.Sprintf("%s  %s", session.CreatedAt.Format("2006-01-02 15:04"), session.ID)
		if session.JobTitle != "" {
			line += "  " + session.JobTitle
		}
		if session.Scores != nil && session.Scores.Coverage != nil {
			line += fmt.Sprintf("  coverage=%d", session.Scores.Coverage.Score)
		}
		fmt.Fprintln(os.Stdout, line)
	}
	return nil
}
