package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosineSimilarity_Identical(t *testing.T) {
	v := []float32{0.5, 0.5, 0.7}

	sim, err := CosineSimilarity(v, v)

	require.NoError(t, err)
	assert.InDelta(t, 1.0, sim, 1e-9)
}

func TestCosineSimilarity_Orthogonal(t *testing.T) {
	sim, err := CosineSimilarity([]float32{1, 0}, []float32{0, 1})

	require.NoError(t, err)
	assert.InDelta(t, 0.0, sim, 1e-9)
}

func TestCosineSimilarity_Opposite(t *testing.T) {
	sim, err := CosineSimilarity([]float32{1, 2}, []float32{-1, -2})

	require.NoError(t, err)
	assert.InDelta(t, -1.0, sim, 1e-9)
}

func TestCosineSimilarity_Errors(t *testing.T) {
	_, err := CosineSimilarity([]float32{1}, []float32{})
	assert.Error(t, err)

	_, err = CosineSimilarity([]float32{1, 2}, []float32{1})
	assert.Error(t, err)

	_, err = CosineSimilarity([]float32{0, 0}, []float32{1, 1})
	assert.Error(t, err)
}
