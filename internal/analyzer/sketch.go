package analyzer

import (
	"fmt"
	"math/bits"
)

// WordBits is the number of bits per sketch chunk.
const WordBits = 64

// SketchArray stores fixed-width binary sketches in one contiguous block of
// 64-bit words. Sketch i occupies words [i*chunks, (i+1)*chunks). The joiner
// reads the array but never mutates it; only index slices are reordered.
type SketchArray struct {
	words  []uint64
	chunks int
}

// NewSketchArray creates an empty array for sketches of numChunks words
// (numChunks*64 bits).
func NewSketchArray(numChunks int) *SketchArray {
	if numChunks < 1 {
		panic(fmt.Sprintf("analyzer: sketch array needs at least 1 chunk, got %d", numChunks))
	}
	return &SketchArray{chunks: numChunks}
}

// Append adds one sketch. A width mismatch is a programming error and panics.
func (a *SketchArray) Append(sketch []uint64) {
	if len(sketch) != a.chunks {
		panic(fmt.Sprintf("analyzer: sketch has %d chunks, array holds %d", len(sketch), a.chunks))
	}
	a.words = append(a.words, sketch...)
}

// Len returns the number of stored sketches.
func (a *SketchArray) Len() int {
	return len(a.words) / a.chunks
}

// NumChunks returns the number of 64-bit words per sketch.
func (a *SketchArray) NumChunks() int {
	return a.chunks
}

// Dimensions returns the sketch width H in bits.
func (a *SketchArray) Dimensions() int {
	return a.chunks * WordBits
}

// MemoryBytes returns the size of the packed sketch block.
func (a *SketchArray) MemoryBytes() int {
	return len(a.words) * 8
}

// Chunk returns word b of sketch i.
func (a *SketchArray) Chunk(i, b int) uint64 {
	return a.words[i*a.chunks+b]
}

// HammingDistance returns the exact Hamming distance between sketches i and j.
func (a *SketchArray) HammingDistance(i, j int) int {
	x := a.words[i*a.chunks : (i+1)*a.chunks]
	y := a.words[j*a.chunks : (j+1)*a.chunks]
	dist := 0
	for w := range x {
		dist += bits.OnesCount64(x[w] ^ y[w])
	}
	return dist
}

// HammingDistanceWithin returns the Hamming distance between sketches i and j
// if it does not exceed bound. The second result reports whether the bound
// held; the scan stops early once it is exceeded.
func (a *SketchArray) HammingDistanceWithin(i, j, bound int) (int, bool) {
	x := a.words[i*a.chunks : (i+1)*a.chunks]
	y := a.words[j*a.chunks : (j+1)*a.chunks]
	dist := 0
	for w := range x {
		dist += bits.OnesCount64(x[w] ^ y[w])
		if dist > bound {
			return dist, false
		}
	}
	return dist, true
}

// NormalizedDistance returns the Hamming distance between sketches i and j
// divided by the sketch width.
func (a *SketchArray) NormalizedDistance(i, j int) float64 {
	return float64(a.HammingDistance(i, j)) / float64(a.Dimensions())
}

// CompareRotated lexicographically compares the word sequences of sketches i
// and j starting at word `start` and wrapping modulo the chunk count. The
// result is -1, 0, or +1. This is a total order for any fixed start.
func (a *SketchArray) CompareRotated(i, j, start int) int {
	xi := i * a.chunks
	xj := j * a.chunks
	for t := 0; t < a.chunks; t++ {
		b := start + t
		if b >= a.chunks {
			b -= a.chunks
		}
		x := a.words[xi+b]
		y := a.words[xj+b]
		if x != y {
			if x < y {
				return -1
			}
			return 1
		}
	}
	return 0
}

// equalPrefix reports whether sketches i and j agree on the `length` leading
// chunks of the rotation beginning at word `start`.
func (a *SketchArray) equalPrefix(i, j, start, length int) bool {
	xi := i * a.chunks
	xj := j * a.chunks
	for t := 0; t < length; t++ {
		b := start + t
		if b >= a.chunks {
			b -= a.chunks
		}
		if a.words[xi+b] != a.words[xj+b] {
			return false
		}
	}
	return true
}
