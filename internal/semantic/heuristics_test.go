package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-analyzer/internal/textnorm"
)

func TestExperienceYearsHeuristic(t *testing.T) {
	resume := "Software Engineer, Acme Corp, 2019 - 2024. Built services in Go."

	t.Run("no stated requirement is neutral", func(t *testing.T) {
		score := experienceYearsHeuristic("We want a great engineer.", resume, 0.7)
		assert.InDelta(t, 50.0, score, 0.001)
	})

	t.Run("partial coverage scores the ratio", func(t *testing.T) {
		// 5 years discounted to 3.5 against a 5-year requirement
		score := experienceYearsHeuristic("5+ years of experience required.", resume, 0.7)
		assert.InDelta(t, 70.0, score, 0.5)
	})

	t.Run("surplus caps at 100", func(t *testing.T) {
		score := experienceYearsHeuristic("2+ years of experience required.", resume, 0.7)
		assert.InDelta(t, 100.0, score, 0.001)
	})
}

func TestDomainTermHeuristic(t *testing.T) {
	t.Run("no dominant industry is neutral", func(t *testing.T) {
		jobNorm := textnorm.Normalize("We are hiring a friendly generalist.")
		resumeNorm := textnorm.Normalize("I am a friendly generalist.")
		assert.InDelta(t, 50.0, domainTermHeuristic(jobNorm, resumeNorm), 0.001)
	})

	t.Run("shared healthcare vocabulary scores the overlap", func(t *testing.T) {
		jobNorm := textnorm.Normalize("Build HIPAA compliant EHR tooling for clinical staff.")
		resumeNorm := textnorm.Normalize("Maintained HIPAA compliant systems and an EHR integration.")
		score := domainTermHeuristic(jobNorm, resumeNorm)
		// Job mentions hipaa, ehr, clinical; resume shares hipaa and ehr
		assert.InDelta(t, 66.7, score, 0.5)
	})
}

func TestRoleTitleHeuristic(t *testing.T) {
	t.Run("shared title words score the ratio", func(t *testing.T) {
		jobNorm := textnorm.Normalize("Senior Backend Engineer\nJoin our team.")
		resumeNorm := textnorm.Normalize("Senior software engineer focused on backend systems.")
		score := roleTitleHeuristic(jobNorm, resumeNorm)
		assert.InDelta(t, 100.0, score, 0.001)
	})

	t.Run("unrelated title scores low", func(t *testing.T) {
		jobNorm := textnorm.Normalize("Registered Nurse\nAcute care unit.")
		resumeNorm := textnorm.Normalize("Software engineer building APIs.")
		score := roleTitleHeuristic(jobNorm, resumeNorm)
		assert.InDelta(t, 0.0, score, 0.001)
	})
}
