package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_UnifiesTypography(t *testing.T) {
	in := "Bachelor’s degree – “required”"
	out := Normalize(in)

	assert.Equal(t, `bachelor's degree - "required"`, out)
}

func TestNormalize_CollapsesWhitespacePreservesNewlines(t *testing.T) {
	out := Normalize("Senior   Engineer\r\nRemote\tOK")

	assert.Equal(t, "senior engineer\nremote ok", out)
}

func TestNormalize_Empty(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
}

func TestContainsWord_Boundaries(t *testing.T) {
	text := Normalize("We use Go and Golang, not Django")

	assert.True(t, ContainsWord(text, "go"))
	assert.True(t, ContainsWord(text, "golang"))
	// "go" inside "django" must not match on its own
	assert.False(t, ContainsWord("django only", "go"))
}

func TestContainsWord_TechSuffixes(t *testing.T) {
	text := Normalize("Expert in C++ and C# development. CompTIA Security+ certified.")

	assert.True(t, ContainsWord(text, "c++"))
	assert.True(t, ContainsWord(text, "c#"))
	assert.True(t, ContainsWord(text, "comptia security+"))
	// bare "c" must not match inside c++ or c#
	assert.False(t, ContainsWord(text, "c"))
}

func TestContainsWord_TrailingSentencePeriod(t *testing.T) {
	assert.True(t, ContainsWord("we value strong c++.", "c++"))
	assert.True(t, ContainsWord("experience with go.", "go"))
	// a dot that continues the token is part of it, not punctuation
	assert.False(t, ContainsWord("node.js services", "node"))
}

func TestFirstIndex(t *testing.T) {
	text := "experience with kubernetes and docker"

	assert.Equal(t, 16, FirstIndex(text, "kubernetes"))
	assert.Equal(t, -1, FirstIndex(text, "terraform"))
}

func TestCountOccurrences(t *testing.T) {
	text := "python python and more python"

	assert.Equal(t, 3, CountOccurrences(text, "python"))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Machine Learning", TitleCase("machine learning"))
	assert.Equal(t, "Go", TitleCase("go"))
}
