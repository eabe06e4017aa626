package analyzer

import "fmt"

// CosineSearcher runs the all-pairs similarity self-join in the Cosine
// space: documents become weighted n-gram vectors (optionally TF-IDF
// weighted), the vectors become simplified simhash sketches, and the sketch
// joiner finds all close pairs in Hamming space.
//
// Distances are reported as raw normalized Hamming distances; for vectors at
// angle theta the expectation is theta/pi. The search radius is compared in
// that same space.
type CosineSearcher struct {
	config    *FeatureConfig
	extractor *FeatureExtractor
	hasher    *SimHasher
	tf        *TermFrequency
	idf       *InverseDocumentFrequency
	sketches  *SketchArray
	progress  func(done, total int)
}

// NewCosineSearcher creates a searcher. windowSize and delimiter configure
// n-gram extraction; seed drives both the feature hashing and the sketching.
func NewCosineSearcher(windowSize int, delimiter string, seed uint64) (*CosineSearcher, error) {
	seq := newSeedSequence(seed)
	config, err := NewFeatureConfig(windowSize, delimiter, seq.next())
	if err != nil {
		return nil, err
	}
	return &CosineSearcher{
		config:    config,
		extractor: NewFeatureExtractor(config),
		hasher:    NewSimHasher(seq.next()),
	}, nil
}

// WithTF sets the term-frequency weighter; nil disables TF weighting.
func (s *CosineSearcher) WithTF(tf *TermFrequency) *CosineSearcher {
	s.tf = tf
	return s
}

// WithIDF sets a trained inverse-document-frequency weighter; nil disables
// IDF weighting. The weighter must have been trained with this searcher's
// extractor.
func (s *CosineSearcher) WithIDF(idf *InverseDocumentFrequency) *CosineSearcher {
	s.idf = idf
	return s
}

// TrainIDF builds an IDF weighter over the documents using this searcher's
// feature space.
func (s *CosineSearcher) TrainIDF(documents []string, smooth bool) (*InverseDocumentFrequency, error) {
	idf := NewInverseDocumentFrequency().Smooth(smooth)
	for i, doc := range documents {
		if doc == "" {
			return nil, fmt.Errorf("document %d is empty", i)
		}
		idf.Add(s.extractor.Extract(doc))
	}
	return idf, nil
}

// OnProgress registers a callback invoked after each sketched document and
// after each join rotation.
func (s *CosineSearcher) OnProgress(fn func(done, total int)) {
	s.progress = fn
}

// BuildSketches converts the documents into sketches of numChunks 64-bit
// words, applying the configured TF and IDF weighting. Documents must be
// non-empty.
func (s *CosineSearcher) BuildSketches(documents []string, numChunks int) error {
	sketches := NewSketchArray(numChunks)
	for i, doc := range documents {
		if doc == "" {
			return fmt.Errorf("document %d is empty", i)
		}
		feature := s.weightedFeature(doc)
		sketches.Append(s.hasher.ComputeSketch(feature, numChunks))
		if s.progress != nil {
			s.progress(i+1, len(documents))
		}
	}
	s.sketches = sketches
	return nil
}

// weightedFeature extracts a document's vector and applies TF and IDF.
func (s *CosineSearcher) weightedFeature(doc string) []WeightedFeature {
	feature := s.extractor.ExtractWeighted(doc)
	if s.tf != nil {
		s.tf.Apply(feature)
	}
	if s.idf != nil {
		for i := range feature {
			feature[i].Weight *= s.idf.Weight(feature[i].Hash)
		}
	}
	return feature
}

// SearchSimilarPairs returns all pairs within the given normalized Hamming
// radius, ascending by (i, j), each exactly once.
func (s *CosineSearcher) SearchSimilarPairs(radius float64) []Pair {
	joiner := NewSketchJoiner(s.sketches)
	joiner.OnProgress(s.progress)
	return joiner.SimilarPairs(radius)
}

// DegenerateRadius reports whether the radius exceeds what the chunk count
// can narrow; see SketchJoiner.Degenerate.
func (s *CosineSearcher) DegenerateRadius(radius float64) bool {
	return NewSketchJoiner(s.sketches).Degenerate(radius)
}

// Len returns the number of sketched documents.
func (s *CosineSearcher) Len() int {
	if s.sketches == nil {
		return 0
	}
	return s.sketches.Len()
}

// Dimensions returns the sketch width in bits.
func (s *CosineSearcher) Dimensions() int {
	if s.sketches == nil {
		return 0
	}
	return s.sketches.Dimensions()
}

// MemoryBytes returns the size of the sketch block.
func (s *CosineSearcher) MemoryBytes() int {
	if s.sketches == nil {
		return 0
	}
	return s.sketches.MemoryBytes()
}
