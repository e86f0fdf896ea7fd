package llm

import (
	"errors"
	"math"
)

// CosineSimilarity computes the cosine similarity of two embedding vectors,
// in [-1, 1]. Vectors must be the same non-zero length.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, errors.New("cosine similarity of empty vector")
	}
	if len(a) != len(b) {
		return 0, errors.New("cosine similarity of mismatched vector lengths")
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0, errors.New("cosine similarity of zero vector")
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	// Guard against floating point drift outside [-1, 1]
	if sim > 1 {
		sim = 1
	}
	if sim < -1 {
		sim = -1
	}
	return sim, nil
}
