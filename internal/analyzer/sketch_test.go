package analyzer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomSketchArray(t *testing.T, n, chunks int, seed int64) *SketchArray {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	a := NewSketchArray(chunks)
	for i := 0; i < n; i++ {
		sketch := make([]uint64, chunks)
		for c := range sketch {
			sketch[c] = rng.Uint64()
		}
		a.Append(sketch)
	}
	return a
}

func TestSketchArrayAppendAndLen(t *testing.T) {
	a := NewSketchArray(2)
	assert.Equal(t, 0, a.Len())

	a.Append([]uint64{1, 2})
	a.Append([]uint64{3, 4})
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 2, a.NumChunks())
	assert.Equal(t, 128, a.Dimensions())
	assert.Equal(t, 32, a.MemoryBytes())

	assert.Equal(t, uint64(1), a.Chunk(0, 0))
	assert.Equal(t, uint64(4), a.Chunk(1, 1))
}

func TestSketchArrayAppendWidthMismatchPanics(t *testing.T) {
	a := NewSketchArray(2)
	assert.Panics(t, func() { a.Append([]uint64{1}) })
	assert.Panics(t, func() { a.Append([]uint64{1, 2, 3}) })
}

func TestNewSketchArrayRejectsZeroChunks(t *testing.T) {
	assert.Panics(t, func() { NewSketchArray(0) })
}

func TestHammingDistance(t *testing.T) {
	a := NewSketchArray(2)
	a.Append([]uint64{0b1111, 0b1001})
	a.Append([]uint64{0b1101, 0b1001})
	a.Append([]uint64{0b0101, 0b0001})

	assert.Equal(t, 0, a.HammingDistance(0, 0))
	assert.Equal(t, 1, a.HammingDistance(0, 1))
	assert.Equal(t, 2, a.HammingDistance(1, 2))
	assert.Equal(t, 3, a.HammingDistance(0, 2))
}

func TestHammingDistanceSymmetry(t *testing.T) {
	a := randomSketchArray(t, 10, 3, 42)
	for i := 0; i < a.Len(); i++ {
		for j := 0; j < a.Len(); j++ {
			assert.Equal(t, a.HammingDistance(i, j), a.HammingDistance(j, i))
		}
	}
}

func TestHammingDistanceWithin(t *testing.T) {
	a := NewSketchArray(2)
	a.Append([]uint64{0, 0})
	a.Append([]uint64{0b111, 0b1})

	d, ok := a.HammingDistanceWithin(0, 1, 4)
	assert.True(t, ok)
	assert.Equal(t, 4, d)

	_, ok = a.HammingDistanceWithin(0, 1, 3)
	assert.False(t, ok)
}

func TestNormalizedDistance(t *testing.T) {
	a := NewSketchArray(1)
	a.Append([]uint64{0})
	a.Append([]uint64{0xFFFF})
	assert.InDelta(t, 0.25, a.NormalizedDistance(0, 1), 1e-12)
}

func TestCompareRotatedIsTotalOrder(t *testing.T) {
	a := randomSketchArray(t, 12, 4, 7)
	for start := 0; start < 4; start++ {
		for i := 0; i < a.Len(); i++ {
			require.Equal(t, 0, a.CompareRotated(i, i, start))
			for j := 0; j < a.Len(); j++ {
				// Antisymmetry.
				assert.Equal(t, -a.CompareRotated(j, i, start), a.CompareRotated(i, j, start))
			}
		}
	}
}

func TestCompareRotatedUsesRotationOrder(t *testing.T) {
	a := NewSketchArray(2)
	a.Append([]uint64{1, 9})
	a.Append([]uint64{2, 3})

	// From word 0: 1 < 2. From word 1: 9 > 3.
	assert.Equal(t, -1, a.CompareRotated(0, 1, 0))
	assert.Equal(t, 1, a.CompareRotated(0, 1, 1))
}

func TestEqualPrefix(t *testing.T) {
	a := NewSketchArray(3)
	a.Append([]uint64{5, 6, 7})
	a.Append([]uint64{5, 6, 8})

	assert.True(t, a.equalPrefix(0, 1, 0, 2))
	assert.False(t, a.equalPrefix(0, 1, 0, 3))
	// Rotation starting at word 2 disagrees immediately.
	assert.False(t, a.equalPrefix(0, 1, 2, 1))
	// Rotation starting at word 1 agrees for one chunk.
	assert.True(t, a.equalPrefix(0, 1, 1, 1))
}
