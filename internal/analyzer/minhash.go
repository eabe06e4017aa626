package analyzer

import "math"

// MinHasher produces 1-bit minwise sketches for the Jaccard space.
//
// For each projection p a fresh seed is drawn from the seed stream, the
// minimum hash over the input set is computed under that seed, and only the
// low bit of the minimum is kept. Two sets with Jaccard similarity J agree on
// each bit with probability (1+J)/2, so the normalized Hamming distance of
// two sketches estimates (1-J)/2.
type MinHasher struct {
	seed uint64
}

// NewMinHasher creates a minwise hasher for the given seed.
func NewMinHasher(seed uint64) *MinHasher {
	return &MinHasher{seed: seed}
}

// ComputeSketch returns a sketch of numChunks 64-bit words for the given
// feature set. Callers are expected to have collapsed duplicates; the result
// is the same either way since only minima are kept. An empty set yields the
// all-zero sketch.
func (m *MinHasher) ComputeSketch(feature []uint64, numChunks int) []uint64 {
	words := make([]uint64, numChunks)
	seq := newSeedSequence(m.seed)
	for c := 0; c < numChunks; c++ {
		var w uint64
		for b := 0; b < WordBits; b++ {
			s := seq.next()
			var minv uint64
			if len(feature) > 0 {
				minv = math.MaxUint64
				for _, f := range feature {
					if h := mixHash(f, s); h < minv {
						minv = h
					}
				}
			}
			w |= (minv & 1) << b
		}
		words[c] = w
	}
	return words
}
