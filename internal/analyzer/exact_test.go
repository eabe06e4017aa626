package analyzer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJaccardDistance(t *testing.T) {
	x := []uint64{1, 2, 4}
	y := []uint64{1, 2, 5, 7}
	assert.InDelta(t, 0.6, JaccardDistance(x, y), 1e-12)
}

func TestJaccardDistanceIdentical(t *testing.T) {
	x := []uint64{1, 2, 3}
	assert.Zero(t, JaccardDistance(x, x))
}

func TestJaccardDistanceSetSemantics(t *testing.T) {
	// Duplicates collapse.
	x := []uint64{1, 1, 2}
	y := []uint64{1, 2, 2}
	assert.Zero(t, JaccardDistance(x, y))
}

func TestJaccardDistanceDisjoint(t *testing.T) {
	assert.Equal(t, 1.0, JaccardDistance([]uint64{1}, []uint64{2}))
}

func TestJaccardDistanceEmpty(t *testing.T) {
	assert.Zero(t, JaccardDistance(nil, nil))
	assert.Equal(t, 1.0, JaccardDistance([]uint64{1}, nil))
}

func TestCosineDistanceIdentical(t *testing.T) {
	x := []WeightedFeature{{Hash: 1, Weight: 2}, {Hash: 2, Weight: 3}}
	assert.InDelta(t, 0, CosineDistance(x, x), 1e-12)
}

func TestCosineDistanceOrthogonal(t *testing.T) {
	x := []WeightedFeature{{Hash: 1, Weight: 1}}
	y := []WeightedFeature{{Hash: 2, Weight: 1}}
	assert.InDelta(t, 0.5, CosineDistance(x, y), 1e-12)
}

func TestCosineDistanceKnownAngle(t *testing.T) {
	// (1, 0) against (1, 1): theta = pi/4, distance 0.25.
	x := []WeightedFeature{{Hash: 1, Weight: 1}}
	y := []WeightedFeature{{Hash: 1, Weight: 1}, {Hash: 2, Weight: 1}}
	assert.InDelta(t, 0.25, CosineDistance(x, y), 1e-12)
}

func TestCosineDistanceOpposite(t *testing.T) {
	x := []WeightedFeature{{Hash: 1, Weight: 1}}
	y := []WeightedFeature{{Hash: 1, Weight: -1}}
	assert.InDelta(t, 1.0, CosineDistance(x, y), 1e-12)
}

func TestCosineDistanceZeroVector(t *testing.T) {
	x := []WeightedFeature{{Hash: 1, Weight: 1}}
	d := CosineDistance(x, nil)
	assert.Equal(t, 0.5, d)
	assert.False(t, math.IsNaN(d))
}

func TestCosineDistanceFoldsDuplicates(t *testing.T) {
	x := []WeightedFeature{{Hash: 1, Weight: 0.5}, {Hash: 1, Weight: 0.5}}
	y := []WeightedFeature{{Hash: 1, Weight: 1}}
	assert.InDelta(t, 0, CosineDistance(x, y), 1e-12)
}
