package analyzer

import "math/bits"

// The accuracy harness quantifies how well 1-bit minwise sketches
// approximate exact Jaccard distances on a corpus small enough to afford the
// O(n^2) ground truth. It is the calibration tool for choosing the chunk
// count; the join itself never invokes it.
//
// All comparisons happen in the join's own convention: the sketch estimate
// is the raw normalized Hamming distance, and the exact Jaccard distance d
// enters as its expected sketch distance d/2.

// RadiusMetrics is the retrieval quality of sketch-based search at one
// radius, with the exact pair set as ground truth.
type RadiusMetrics struct {
	Radius    float64 `json:"radius" yaml:"radius"`
	Results   int     `json:"results" yaml:"results"`
	Precision float64 `json:"precision" yaml:"precision"`
	Recall    float64 `json:"recall" yaml:"recall"`
	F1        float64 `json:"f1" yaml:"f1"`
}

// AccuracyRow is the harness output for one chunk count.
type AccuracyRow struct {
	NumChunks  int             `json:"num_chunks" yaml:"num_chunks"`
	Dimensions int             `json:"dimensions" yaml:"dimensions"`
	MAE        float64         `json:"mean_absolute_error" yaml:"mean_absolute_error"`
	Radii      []RadiusMetrics `json:"radii" yaml:"radii"`
}

// EvaluateMinhashAccuracy sketches every feature set at maxChunks chunks and
// reports, for each chunk count in [1, maxChunks], the mean absolute error
// against the expected sketch distance and precision/recall/F1 at the given
// radii. The progress callback, when non-nil, fires once per document during
// the pairwise sweep.
//
// seed is the same user seed NewJaccardSearcher takes; the hasher seed is
// derived with the searcher's split so the sweep measures exactly the
// sketches a join under that seed would use.
func EvaluateMinhashAccuracy(features [][]uint64, seed uint64, maxChunks int, radii []float64, progress func(done, total int)) []AccuracyRow {
	n := len(features)
	seq := newSeedSequence(seed)
	_ = seq.next() // feature seed; the caller extracted features already
	hasher := NewMinHasher(seq.next())

	deduped := make([][]uint64, n)
	sketches := make([][]uint64, n)
	for i, f := range features {
		deduped[i] = dedupFeature(append([]uint64(nil), f...))
		sketches[i] = hasher.ComputeSketch(deduped[i], maxChunks)
	}

	rows := make([]AccuracyRow, maxChunks)
	tallies := make([][]prfTally, maxChunks)
	for c := range rows {
		rows[c] = AccuracyRow{NumChunks: c + 1, Dimensions: (c + 1) * WordBits}
		tallies[c] = make([]prfTally, len(radii))
	}

	numPairs := 0
	for i := 0; i < n; i++ {
		x := sketches[i]
		for j := i + 1; j < n; j++ {
			y := sketches[j]
			expected := JaccardDistance(deduped[i], deduped[j]) / 2
			dist := 0
			for c := 0; c < maxChunks; c++ {
				dist += hammingDistanceWords(x[c], y[c])
				estimate := float64(dist) / float64((c+1)*WordBits)
				err := expected - estimate
				if err < 0 {
					err = -err
				}
				rows[c].MAE += err
				for k, r := range radii {
					tallies[c][k].observe(expected <= r, estimate <= r)
				}
			}
			numPairs++
		}
		if progress != nil {
			progress(i+1, n)
		}
	}

	for c := range rows {
		if numPairs > 0 {
			rows[c].MAE /= float64(numPairs)
		}
		rows[c].Radii = make([]RadiusMetrics, len(radii))
		for k, r := range radii {
			rows[c].Radii[k] = tallies[c][k].metrics(r)
		}
	}
	return rows
}

func hammingDistanceWords(x, y uint64) int {
	return bits.OnesCount64(x ^ y)
}

// prfTally accumulates the confusion counts of sketch-based retrieval
// against the exact ground truth at one radius.
type prfTally struct {
	truePositive  int
	falsePositive int
	falseNegative int
	truth         int
}

func (t *prfTally) observe(inTruth, retrieved bool) {
	if inTruth {
		t.truth++
	}
	switch {
	case inTruth && retrieved:
		t.truePositive++
	case retrieved:
		t.falsePositive++
	case inTruth:
		t.falseNegative++
	}
}

// metrics converts the tally into precision/recall/F1. Empty denominators
// count as perfect: no retrievals means no false positives, no truth means
// nothing was missed.
func (t *prfTally) metrics(radius float64) RadiusMetrics {
	precision := 1.0
	if t.truePositive+t.falsePositive > 0 {
		precision = float64(t.truePositive) / float64(t.truePositive+t.falsePositive)
	}
	recall := 1.0
	if t.truePositive+t.falseNegative > 0 {
		recall = float64(t.truePositive) / float64(t.truePositive+t.falseNegative)
	}
	f1 := 0.0
	if precision+recall > 0 {
		f1 = 2 * precision * recall / (precision + recall)
	}
	return RadiusMetrics{
		Radius:    radius,
		Results:   t.truth,
		Precision: precision,
		Recall:    recall,
		F1:        f1,
	}
}
