package analyzer

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/spaolacci/murmur3"
)

// FeatureConfig holds the parameters of n-gram feature extraction.
type FeatureConfig struct {
	windowSize int
	delimiter  string
	seed       uint64
}

// NewFeatureConfig creates a feature extraction configuration.
//
// windowSize is the w-shingling window (must be positive). delimiter
// recognizes words as tokens; when empty, characters are the tokens. seed
// perturbs the shingle hashes so that independent runs use independent
// feature spaces.
func NewFeatureConfig(windowSize int, delimiter string, seed uint64) (*FeatureConfig, error) {
	if windowSize < 1 {
		return nil, fmt.Errorf("window size must be positive, got %d", windowSize)
	}
	return &FeatureConfig{windowSize: windowSize, delimiter: delimiter, seed: seed}, nil
}

// WindowSize returns the shingling window size.
func (c *FeatureConfig) WindowSize() int { return c.windowSize }

// Delimiter returns the word delimiter; empty means character tokens.
func (c *FeatureConfig) Delimiter() string { return c.delimiter }

// hashShingle hashes a token window into a 64-bit feature. The seed is
// folded in as a prefix and each token is length-framed so that token
// boundaries survive concatenation.
func (c *FeatureConfig) hashShingle(tokens []string) uint64 {
	h := murmur3.New64()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], c.seed)
	_, _ = h.Write(buf[:])
	for _, t := range tokens {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(t)))
		_, _ = h.Write(buf[:])
		_, _ = h.Write([]byte(t))
	}
	return h.Sum64()
}

// FeatureExtractor turns documents into n-gram feature vectors.
type FeatureExtractor struct {
	config *FeatureConfig
}

// NewFeatureExtractor creates an extractor for the given configuration.
func NewFeatureExtractor(config *FeatureConfig) *FeatureExtractor {
	return &FeatureExtractor{config: config}
}

// Extract returns the feature hashes of a document, one per shingle, in
// document order. Duplicates are retained; set-semantics callers collapse
// them. Character unigrams take a fast path where the rune itself is the
// feature.
func (e *FeatureExtractor) Extract(text string) []uint64 {
	if e.config.delimiter == "" && e.config.windowSize == 1 {
		feature := make([]uint64, 0, len(text))
		for _, r := range text {
			feature = append(feature, uint64(r))
		}
		return feature
	}
	tokens := e.tokenize(text)
	var feature []uint64
	it := newShingleIterator(tokens, e.config.windowSize)
	for window := it.next(); window != nil; window = it.next() {
		feature = append(feature, e.config.hashShingle(window))
	}
	return feature
}

// ExtractWeighted returns the features of a document with unit weights,
// ready for TF-IDF reweighting.
func (e *FeatureExtractor) ExtractWeighted(text string) []WeightedFeature {
	hashes := e.Extract(text)
	feature := make([]WeightedFeature, len(hashes))
	for i, h := range hashes {
		feature[i] = WeightedFeature{Hash: h, Weight: 1.0}
	}
	return feature
}

// tokenize splits a document into tokens and pads both ends with windowSize-1
// empty tokens so that every real token appears in windowSize shingles.
func (e *FeatureExtractor) tokenize(text string) []string {
	pad := e.config.windowSize - 1
	tokens := make([]string, 0, pad*2+len(text))
	for i := 0; i < pad; i++ {
		tokens = append(tokens, "")
	}
	if e.config.delimiter != "" {
		tokens = append(tokens, splitKeepEmpty(text, e.config.delimiter)...)
	} else {
		for _, r := range text {
			tokens = append(tokens, string(r))
		}
	}
	for i := 0; i < pad; i++ {
		tokens = append(tokens, "")
	}
	return tokens
}

// splitKeepEmpty splits on the delimiter without collapsing consecutive
// delimiters; an empty input yields no tokens.
func splitKeepEmpty(text, delimiter string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, delimiter)
}
