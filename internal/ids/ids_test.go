package ids

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequence_Deterministic(t *testing.T) {
	gen := &Sequence{}

	assert.Equal(t, "ko_001", gen.NewID("ko"))
	assert.Equal(t, "ko_002", gen.NewID("ko"))
	assert.Equal(t, "ko_003", gen.NewID("ko"))
}

func TestUUIDGenerator_PrefixAndUniqueness(t *testing.T) {
	gen := UUIDGenerator{}

	a := gen.NewID("ko")
	b := gen.NewID("ko")

	assert.True(t, strings.HasPrefix(a, "ko_"))
	assert.True(t, strings.HasPrefix(b, "ko_"))
	assert.NotEqual(t, a, b)
}
