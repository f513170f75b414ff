package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity_SelfSimilarity(t *testing.T) {
	v := []float32{0.5, -0.25, 1.0, 0.0}
	assert.InDelta(t, 1.0, CosineSimilarity(v, v), 1e-6)
}

func TestCosineSimilarity_Symmetric(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{4, 5, 6}
	assert.InDelta(t, CosineSimilarity(a, b), CosineSimilarity(b, a), 1e-9)
}

func TestCosineSimilarity_ZeroVector(t *testing.T) {
	a := []float32{1, 2, 3}
	zero := []float32{0, 0, 0}
	assert.Zero(t, CosineSimilarity(a, zero))
	assert.Zero(t, CosineSimilarity(zero, a))
	assert.Zero(t, CosineSimilarity(zero, zero))
}

func TestCosineSimilarity_MismatchedDimensions(t *testing.T) {
	// A provider switch between indexing and querying produces mismatched
	// vectors; the search must degrade, not error
	assert.Zero(t, CosineSimilarity([]float32{1, 2}, []float32{1, 2, 3}))
	assert.Zero(t, CosineSimilarity(nil, []float32{1}))
	assert.Zero(t, CosineSimilarity(nil, nil))
}

func TestCosineSimilarity_Orthogonal(t *testing.T) {
	assert.InDelta(t, 0.0, CosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
}

func TestCosineSimilarity_Opposite(t *testing.T) {
	// Anti-parallel vectors score -1 here; the search layer clamps to [0,1]
	assert.InDelta(t, -1.0, CosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-6)
	assert.Zero(t, clampScore(-1.0))
	assert.Equal(t, 1.0, clampScore(1.0000001))
}
