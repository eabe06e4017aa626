package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosineSearcherIdenticalDocuments(t *testing.T) {
	searcher, err := NewCosineSearcher(1, " ", 42)
	require.NoError(t, err)

	docs := []string{"books and curry", "books and curry"}
	require.NoError(t, searcher.BuildSketches(docs, 4))

	pairs := searcher.SearchSimilarPairs(0.0)
	require.Len(t, pairs, 1)
	assert.Equal(t, Pair{I: 0, J: 1, Distance: 0}, pairs[0])
}

func TestCosineSearcherRejectsEmptyDocument(t *testing.T) {
	searcher, err := NewCosineSearcher(1, " ", 42)
	require.NoError(t, err)
	assert.Error(t, searcher.BuildSketches([]string{""}, 2))
}

func TestCosineSearcherTFIDFChangesSketches(t *testing.T) {
	docs := []string{
		"to be or not to be",
		"to be or not to code",
		"entirely different words here now",
	}

	build := func(configure func(*CosineSearcher) error) *SketchArray {
		searcher, err := NewCosineSearcher(1, " ", 42)
		require.NoError(t, err)
		if configure != nil {
			require.NoError(t, configure(searcher))
		}
		require.NoError(t, searcher.BuildSketches(docs, 8))
		return searcher.sketches
	}

	plain := build(nil)
	weighted := build(func(s *CosineSearcher) error {
		idf, err := s.TrainIDF(docs, true)
		if err != nil {
			return err
		}
		s.WithTF(NewTermFrequency()).WithIDF(idf)
		return nil
	})

	different := false
	for i := 0; i < plain.Len() && !different; i++ {
		for b := 0; b < plain.NumChunks(); b++ {
			if plain.Chunk(i, b) != weighted.Chunk(i, b) {
				different = true
				break
			}
		}
	}
	assert.True(t, different, "TF-IDF weighting should move at least one sketch bit")
}

func TestCosineSearcherTrainIDFRejectsEmptyDocument(t *testing.T) {
	searcher, err := NewCosineSearcher(1, " ", 42)
	require.NoError(t, err)
	_, err = searcher.TrainIDF([]string{"ok", ""}, false)
	assert.Error(t, err)
}

func TestCosineSearcherDeterministic(t *testing.T) {
	docs := []string{"a b c d", "a b c e", "x y z w"}

	run := func() []Pair {
		searcher, err := NewCosineSearcher(1, " ", 42)
		require.NoError(t, err)
		require.NoError(t, searcher.BuildSketches(docs, 8))
		return searcher.SearchSimilarPairs(0.3)
	}
	assert.Equal(t, run(), run())
}

func TestCosineSearcherSimilarBeatsDissimilar(t *testing.T) {
	docs := []string{
		"the cat sat on the mat",
		"the cat sat on the hat",
		"completely unrelated gibberish tokens",
	}
	searcher, err := NewCosineSearcher(1, " ", 42)
	require.NoError(t, err)
	require.NoError(t, searcher.BuildSketches(docs, 16))

	near := searcher.sketches.NormalizedDistance(0, 1)
	far := searcher.sketches.NormalizedDistance(0, 2)
	assert.Less(t, near, far)
}
