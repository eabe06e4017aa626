package analyzer

import "sort"

// pairCollector de-duplicates candidate pairs across rotations. A pair may
// be rediscovered by every rotation whose block prefix it satisfies, so the
// collector keys a hash set by the packed (min, max) ids. The similarity
// service rejects corpora of 2^32 or more documents, which the packing
// relies on.
type pairCollector struct {
	seen  map[uint64]struct{}
	pairs []packedPair
}

type packedPair struct {
	key  uint64
	dist int
}

func newPairCollector() *pairCollector {
	return &pairCollector{seen: make(map[uint64]struct{})}
}

// add records the pair once, normalizing to i < j.
func (c *pairCollector) add(i, j, dist int) {
	if j < i {
		i, j = j, i
	}
	key := uint64(i)<<32 | uint64(j)
	if _, ok := c.seen[key]; ok {
		return
	}
	c.seen[key] = struct{}{}
	c.pairs = append(c.pairs, packedPair{key: key, dist: dist})
}

// sortedPairs returns the collected pairs in ascending (i, j) order with
// distances normalized by the sketch width.
func (c *pairCollector) sortedPairs(dimensions int) []Pair {
	if len(c.pairs) == 0 {
		return nil
	}
	sort.Slice(c.pairs, func(a, b int) bool {
		return c.pairs[a].key < c.pairs[b].key
	})
	result := make([]Pair, len(c.pairs))
	for k, p := range c.pairs {
		result[k] = Pair{
			I:        int(p.key >> 32),
			J:        int(p.key & 0xFFFFFFFF),
			Distance: float64(p.dist) / float64(dimensions),
		}
	}
	return result
}
