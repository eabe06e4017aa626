package analyzer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTermFrequencyStandard(t *testing.T) {
	feature := []WeightedFeature{{Hash: 'A'}, {Hash: 'B'}, {Hash: 'A'}}
	NewTermFrequency().Apply(feature)

	assert.InDelta(t, 2.0/3.0, feature[0].Weight, 1e-12)
	assert.InDelta(t, 1.0/3.0, feature[1].Weight, 1e-12)
	assert.InDelta(t, 2.0/3.0, feature[2].Weight, 1e-12)
}

func TestTermFrequencySublinear(t *testing.T) {
	feature := []WeightedFeature{{Hash: 'A'}, {Hash: 'B'}, {Hash: 'A'}}
	NewTermFrequency().Sublinear(true).Apply(feature)

	assert.InDelta(t, math.Log10(2)+1, feature[0].Weight, 1e-12)
	assert.InDelta(t, math.Log10(1)+1, feature[1].Weight, 1e-12)
	assert.InDelta(t, math.Log10(2)+1, feature[2].Weight, 1e-12)
}

func TestTermFrequencyEmpty(t *testing.T) {
	assert.NotPanics(t, func() { NewTermFrequency().Apply(nil) })
}

func TestInverseDocumentFrequency(t *testing.T) {
	idf := NewInverseDocumentFrequency()
	idf.Add([]uint64{'A', 'A', 'C'})
	idf.Add([]uint64{'A', 'C'})
	idf.Add([]uint64{'B', 'A'})

	assert.Equal(t, 3, idf.NumDocs())

	assert.InDelta(t, math.Log10(3.0/3.0)+1, idf.Weight('A'), 1e-12)
	assert.InDelta(t, math.Log10(3.0/1.0)+1, idf.Weight('B'), 1e-12)
	assert.InDelta(t, math.Log10(3.0/2.0)+1, idf.Weight('C'), 1e-12)
}

func TestInverseDocumentFrequencySmooth(t *testing.T) {
	idf := NewInverseDocumentFrequency().Smooth(true)
	idf.Add([]uint64{'A', 'A', 'C'})
	idf.Add([]uint64{'A', 'C'})
	idf.Add([]uint64{'B', 'A'})

	assert.InDelta(t, math.Log10(4.0/4.0)+1, idf.Weight('A'), 1e-12)
	assert.InDelta(t, math.Log10(4.0/2.0)+1, idf.Weight('B'), 1e-12)
	assert.InDelta(t, math.Log10(4.0/3.0)+1, idf.Weight('C'), 1e-12)
}

func TestInverseDocumentFrequencyCountsDistinctTermsOnce(t *testing.T) {
	idf := NewInverseDocumentFrequency()
	idf.Add([]uint64{'A', 'A', 'A'})
	idf.Add([]uint64{'A'})

	// df('A') must be 2, not 4.
	assert.InDelta(t, math.Log10(2.0/2.0)+1, idf.Weight('A'), 1e-12)
}

func TestInverseDocumentFrequencyUnknownTermFinite(t *testing.T) {
	idf := NewInverseDocumentFrequency()
	idf.Add([]uint64{'A'})

	w := idf.Weight('Z')
	assert.False(t, math.IsInf(w, 0))
	assert.False(t, math.IsNaN(w))
}
