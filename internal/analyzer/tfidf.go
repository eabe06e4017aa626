package analyzer

import "math"

// TermFrequency reweights a feature vector by term frequency within the
// document: count/total in the standard scheme, log10(count)+1 when
// sublinear.
type TermFrequency struct {
	sublinear bool
}

// NewTermFrequency creates a standard TF weighter.
func NewTermFrequency() *TermFrequency {
	return &TermFrequency{}
}

// Sublinear toggles sublinear scaling and returns the weighter.
func (t *TermFrequency) Sublinear(yes bool) *TermFrequency {
	t.sublinear = yes
	return t
}

// Apply overwrites the weights of the feature vector with its TF values.
func (t *TermFrequency) Apply(feature []WeightedFeature) {
	if len(feature) == 0 {
		return
	}
	counts := make(map[uint64]int, len(feature))
	for _, f := range feature {
		counts[f.Hash]++
	}
	total := float64(len(feature))
	for i := range feature {
		cnt := float64(counts[feature[i].Hash])
		if t.sublinear {
			feature[i].Weight = math.Log10(cnt) + 1
		} else {
			feature[i].Weight = cnt / total
		}
	}
}

// InverseDocumentFrequency accumulates document frequencies over a corpus
// and scores terms with log10((N+s)/(df+s)) + 1, where s is 1 when
// smoothing is enabled.
type InverseDocumentFrequency struct {
	counts  map[uint64]int
	numDocs int
	smooth  bool
}

// NewInverseDocumentFrequency creates an untrained IDF weighter.
func NewInverseDocumentFrequency() *InverseDocumentFrequency {
	return &InverseDocumentFrequency{counts: make(map[uint64]int)}
}

// Smooth toggles add-one smoothing and returns the weighter.
func (idf *InverseDocumentFrequency) Smooth(yes bool) *InverseDocumentFrequency {
	idf.smooth = yes
	return idf
}

// Add trains on one document's terms, counting each distinct term once.
func (idf *InverseDocumentFrequency) Add(terms []uint64) {
	seen := make(map[uint64]struct{}, len(terms))
	for _, term := range terms {
		if _, ok := seen[term]; ok {
			continue
		}
		seen[term] = struct{}{}
		idf.counts[term]++
	}
	idf.numDocs++
}

// NumDocs returns the number of trained documents.
func (idf *InverseDocumentFrequency) NumDocs() int {
	return idf.numDocs
}

// Weight returns the IDF of a term. Without smoothing, terms outside the
// training corpus count as appearing once so the ratio stays finite; with
// smoothing the added one already keeps it finite.
func (idf *InverseDocumentFrequency) Weight(term uint64) float64 {
	s := 0
	if idf.smooth {
		s = 1
	}
	n := float64(idf.numDocs + s)
	df := float64(idf.counts[term] + s)
	if df == 0 {
		df = 1
	}
	return math.Log10(n/df) + 1
}
