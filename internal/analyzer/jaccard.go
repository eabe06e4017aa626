package analyzer

import "fmt"

// JaccardSearcher runs the all-pairs similarity self-join in the Jaccard
// space: documents become n-gram token sets, the sets become 1-bit minwise
// sketches, and the sketch joiner finds all close pairs in Hamming space.
//
// Distances are reported as raw normalized Hamming distances; for sets with
// Jaccard similarity J the expectation is (1-J)/2. The search radius is
// compared in that same space.
type JaccardSearcher struct {
	config    *FeatureConfig
	extractor *FeatureExtractor
	hasher    *MinHasher
	sketches  *SketchArray
	progress  func(done, total int)
}

// NewJaccardSearcher creates a searcher. windowSize and delimiter configure
// n-gram extraction (empty delimiter means character n-grams); seed drives
// both the feature hashing and the sketching.
func NewJaccardSearcher(windowSize int, delimiter string, seed uint64) (*JaccardSearcher, error) {
	seq := newSeedSequence(seed)
	config, err := NewFeatureConfig(windowSize, delimiter, seq.next())
	if err != nil {
		return nil, err
	}
	return &JaccardSearcher{
		config:    config,
		extractor: NewFeatureExtractor(config),
		hasher:    NewMinHasher(seq.next()),
	}, nil
}

// OnProgress registers a callback invoked after each sketched document and
// after each join rotation.
func (s *JaccardSearcher) OnProgress(fn func(done, total int)) {
	s.progress = fn
}

// BuildSketches converts the documents into sketches of numChunks 64-bit
// words. Documents must be non-empty.
func (s *JaccardSearcher) BuildSketches(documents []string, numChunks int) error {
	sketches := NewSketchArray(numChunks)
	for i, doc := range documents {
		if doc == "" {
			return fmt.Errorf("document %d is empty", i)
		}
		feature := dedupFeature(s.extractor.Extract(doc))
		sketches.Append(s.hasher.ComputeSketch(feature, numChunks))
		if s.progress != nil {
			s.progress(i+1, len(documents))
		}
	}
	s.sketches = sketches
	return nil
}

// SearchSimilarPairs returns all pairs within the given normalized Hamming
// radius, ascending by (i, j), each exactly once.
func (s *JaccardSearcher) SearchSimilarPairs(radius float64) []Pair {
	joiner := NewSketchJoiner(s.sketches)
	joiner.OnProgress(s.progress)
	return joiner.SimilarPairs(radius)
}

// DegenerateRadius reports whether the radius exceeds what the chunk count
// can narrow; see SketchJoiner.Degenerate.
func (s *JaccardSearcher) DegenerateRadius(radius float64) bool {
	return NewSketchJoiner(s.sketches).Degenerate(radius)
}

// Len returns the number of sketched documents.
func (s *JaccardSearcher) Len() int {
	if s.sketches == nil {
		return 0
	}
	return s.sketches.Len()
}

// Dimensions returns the sketch width in bits.
func (s *JaccardSearcher) Dimensions() int {
	if s.sketches == nil {
		return 0
	}
	return s.sketches.Dimensions()
}

// MemoryBytes returns the size of the sketch block.
func (s *JaccardSearcher) MemoryBytes() int {
	if s.sketches == nil {
		return 0
	}
	return s.sketches.MemoryBytes()
}

// Extractor exposes the feature extractor, e.g. for exact-distance tooling
// that must share the searcher's feature space.
func (s *JaccardSearcher) Extractor() *FeatureExtractor {
	return s.extractor
}

// dedupFeature collapses duplicate feature hashes, preserving first-seen
// order.
func dedupFeature(feature []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(feature))
	out := feature[:0]
	for _, f := range feature {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
