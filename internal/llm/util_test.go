package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_JSONFence(t *testing.T) {
	in := "```json\n{\"key\": \"value\"}\n```"

	assert.Equal(t, `{"key": "value"}`, CleanJSONBlock(in))
}

func TestCleanJSONBlock_GenericFenceWithLanguage(t *testing.T) {
	in := "```javascript\n{\"key\": 1}\n```"

	assert.Equal(t, `{"key": 1}`, CleanJSONBlock(in))
}

func TestCleanJSONBlock_NoFence(t *testing.T) {
	in := `{"already": "clean"}`

	assert.Equal(t, in, CleanJSONBlock(in))
}

func TestCleanJSONBlock_WhitespaceOnly(t *testing.T) {
	assert.Equal(t, "", CleanJSONBlock("   \n  "))
}
