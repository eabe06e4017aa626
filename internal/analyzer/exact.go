package analyzer

import "math"

// JaccardDistance computes the exact Jaccard distance between two feature
// multisets under set semantics: 1 - |A∩B| / |A∪B|. Two empty sets are at
// distance 0.
func JaccardDistance(a, b []uint64) float64 {
	setA := make(map[uint64]struct{}, len(a))
	for _, f := range a {
		setA[f] = struct{}{}
	}
	setB := make(map[uint64]struct{}, len(b))
	for _, f := range b {
		setB[f] = struct{}{}
	}
	if len(setA) == 0 && len(setB) == 0 {
		return 0
	}
	intersection := 0
	for f := range setA {
		if _, ok := setB[f]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return 1 - float64(intersection)/float64(union)
}

// CosineDistance computes the exact angular distance theta/pi between two
// weighted feature vectors, the quantity the simhash sketcher estimates.
// A zero vector is at distance 0.5 from everything (orthogonal by
// convention).
func CosineDistance(a, b []WeightedFeature) float64 {
	va := accumulate(a)
	vb := accumulate(b)
	var dot, na, nb float64
	for h, w := range va {
		na += w * w
		if wb, ok := vb[h]; ok {
			dot += w * wb
		}
	}
	for _, w := range vb {
		nb += w * w
	}
	if na == 0 || nb == 0 {
		return 0.5
	}
	cos := dot / (math.Sqrt(na) * math.Sqrt(nb))
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) / math.Pi
}

// accumulate folds duplicate terms of a vector by summing their weights.
func accumulate(feature []WeightedFeature) map[uint64]float64 {
	v := make(map[uint64]float64, len(feature))
	for _, f := range feature {
		v[f.Hash] += f.Weight
	}
	return v
}
