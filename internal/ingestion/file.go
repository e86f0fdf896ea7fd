package ingestion

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// ResumeFromFile reads a plain-text resume export and builds its artifact.
func ResumeFromFile(path string) (*types.ResumeArtifact, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("resume file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}
	return Resume(string(content)), nil
}

// JobFromFile reads a job posting from a text file and returns cleaned text.
func JobFromFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("job posting file not found: %w", err)
		}
		return "", fmt.Errorf("failed to read job posting file: %w", err)
	}
	return CleanText(string(content)), nil
}
