package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanTextNormalizesLineEndings(t *testing.T) {
	input := "Line one\r\nLine two\rLine three"

	result := CleanText(input)

	assert.Equal(t, "Line one\nLine two\nLine three", result)
}

func TestCleanTextCollapsesBlankRuns(t *testing.T) {
	input := "Summary\n\n\n\n\nExperience"

	result := CleanText(input)

	assert.Equal(t, "Summary\n\nExperience", result)
}

func TestCleanTextPreservesBullets(t *testing.T) {
	input := "Experience\n  - Built Go services\n  * Led a team"

	result := CleanText(input)

	assert.Contains(t, result, "  - Built Go services")
	assert.Contains(t, result, "  * Led a team")
}

func TestCleanTextCollapsesInternalSpaces(t *testing.T) {
	input := "Senior    Software     Engineer"

	result := CleanText(input)

	assert.Equal(t, "Senior Software Engineer", result)
}

func TestCleanTextTrimsTrailingWhitespace(t *testing.T) {
	input := "Jane Doe   \nEngineer\t\t"

	result := CleanText(input)

	assert.Equal(t, "Jane Doe\nEngineer", result)
}

func TestCleanTextEmptyInput(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n\t\n  "))
}
