package analyzer

import "sort"

// Pair is one qualifying result of a similarity self-join: document ids with
// I < J and their normalized Hamming distance.
type Pair struct {
	I        int
	J        int
	Distance float64
}

// SketchJoiner finds all pairs of sketches within a normalized Hamming
// radius using multi-sorted sketch sorting: the index array is sorted once
// per cyclic rotation of the chunk sequence, maximal runs agreeing on the
// leading chunks form candidate blocks, and every block pair is checked with
// the exact popcount filter. The sketch array is read-only throughout.
type SketchJoiner struct {
	sketches *SketchArray
	progress func(done, total int)
}

// NewSketchJoiner creates a joiner over the given sketches.
func NewSketchJoiner(sketches *SketchArray) *SketchJoiner {
	return &SketchJoiner{sketches: sketches}
}

// OnProgress registers a callback invoked after each completed rotation.
func (j *SketchJoiner) OnProgress(fn func(done, total int)) {
	j.progress = fn
}

// HammingRadius returns the bit budget floor(H*radius) for the given
// normalized radius.
func (j *SketchJoiner) HammingRadius(radius float64) int {
	return int(float64(j.sketches.Dimensions()) * radius)
}

// Degenerate reports whether the radius exhausts the chunk budget: with
// R >= C differing bits, every chunk may differ and block sorting cannot
// narrow candidates, so the joiner falls back to all-pairs verification
// within a single sort. Callers should warn that the chunk count is too
// small for the radius.
func (j *SketchJoiner) Degenerate(radius float64) bool {
	return j.HammingRadius(radius) >= j.sketches.NumChunks()
}

// agreementLength returns the block prefix length L for bit radius r over c
// chunks. At most r chunks can differ, and the c-r clean chunks fall into at
// most r maximal cyclic runs, so a clean run of ceil((c-r)/r) chunks always
// exists and every qualifying pair lands in one block of some rotation. For
// r <= 1 this is the full agreement length c-r.
func agreementLength(c, r int) int {
	if r == 0 {
		return c
	}
	return (c - r + r - 1) / r
}

// SimilarPairs returns every pair of sketches whose normalized Hamming
// distance is within radius, each exactly once with I < J, in ascending
// (I, J) order. The radius must be in [0, 1]; validation happens upstream.
func (j *SketchJoiner) SimilarPairs(radius float64) []Pair {
	n := j.sketches.Len()
	c := j.sketches.NumChunks()
	hamRadius := j.HammingRadius(radius)

	rotations := c
	agree := 0
	switch {
	case hamRadius >= c:
		// Degenerate: one sort, the whole order is a single block.
		rotations = 1
	case hamRadius == 0:
		// Exact match: any rotation yields the same equality blocks.
		rotations = 1
		agree = c
	default:
		agree = agreementLength(c, hamRadius)
	}

	collector := newPairCollector()
	idx := make([]int, n)
	for start := 0; start < rotations; start++ {
		for i := range idx {
			idx[i] = i
		}
		s := start
		sort.Slice(idx, func(a, b int) bool {
			return j.sketches.CompareRotated(idx[a], idx[b], s) < 0
		})
		j.sweepBlocks(idx, start, agree, hamRadius, collector)
		if j.progress != nil {
			j.progress(start+1, rotations)
		}
	}
	return collector.sortedPairs(j.sketches.Dimensions())
}

// sweepBlocks walks one sorted order, tracking the current block of entries
// whose leading `agree` chunks under the rotation are equal, and verifies
// every pair inside each block with the exact Hamming filter. agree == 0
// makes the whole order one block.
func (j *SketchJoiner) sweepBlocks(idx []int, start, agree, hamRadius int, collector *pairCollector) {
	n := len(idx)
	blockStart := 0
	for k := 1; k <= n; k++ {
		if k < n && (agree == 0 || j.sketches.equalPrefix(idx[k-1], idx[k], start, agree)) {
			continue
		}
		j.verifyBlock(idx[blockStart:k], hamRadius, collector)
		blockStart = k
	}
}

// verifyBlock runs the exact filter over every unordered pair of a block.
// Blocks of size 1 yield nothing.
func (j *SketchJoiner) verifyBlock(block []int, hamRadius int, collector *pairCollector) {
	for u := 0; u < len(block); u++ {
		for v := u + 1; v < len(block); v++ {
			if d, ok := j.sketches.HammingDistanceWithin(block[u], block[v], hamRadius); ok {
				collector.add(block[u], block[v], d)
			}
		}
	}
}
