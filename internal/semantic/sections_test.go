package semantic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSectionsRecognizesHeaders(t *testing.T) {
	sections, found := splitSections(testResume)

	require.True(t, found[sectionSkills])
	require.True(t, found[sectionExperience])
	require.True(t, found[sectionSummary])
	require.True(t, found[sectionEducation])

	assert.Contains(t, sections[sectionSkills], "Kubernetes")
	assert.Contains(t, sections[sectionExperience], "Acme Corp")
	assert.Contains(t, sections[sectionEducation], "Computer Science")
	// Content before the first header lands in summary
	assert.Contains(t, sections[sectionSummary], "Jane Doe")
}

func TestSplitSectionsHeaderVariants(t *testing.T) {
	text := strings.Join([]string{
		"PROFESSIONAL EXPERIENCE",
		"Led the platform team.",
		"",
		"Technical Skills",
		"Go, Rust",
		"",
		"About Me",
		"I like distributed systems.",
	}, "\n")

	sections, found := splitSections(text)

	assert.True(t, found[sectionExperience])
	assert.True(t, found[sectionSkills])
	assert.True(t, found[sectionSummary])
	assert.Contains(t, sections[sectionExperience], "platform team")
	assert.Contains(t, sections[sectionSkills], "Rust")
	assert.Contains(t, sections[sectionSummary], "distributed systems")
}

func TestSplitSectionsFallback(t *testing.T) {
	text := "A short document with no headers that mentions Go once."

	sections, found := splitSections(text)

	assert.False(t, found[sectionSkills])
	assert.False(t, found[sectionExperience])
	assert.False(t, found[sectionEducation])
	// Missing sections fall back to the document opening
	assert.Equal(t, text, sections[sectionSkills])
	assert.Equal(t, text, sections[sectionExperience])
}

func TestSplitSectionsLongLineIsNotAHeader(t *testing.T) {
	longLine := "My experience spans ten years of building large distributed systems in Go and Java at scale."
	text := longLine + "\nSkills\nGo"

	sections, found := splitSections(text)

	assert.False(t, found[sectionExperience])
	assert.True(t, found[sectionSkills])
	assert.Contains(t, sections[sectionSummary], "ten years")
}
