package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadDocumentsSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "docs.txt", "first\nsecond\nthird\n")

	docs, err := NewDocumentReader().ReadDocuments(path, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, docs)
}

func TestReadDocumentsSkipsEmptyLines(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "docs.txt", "first\n\n\nsecond\n\n")

	docs, err := NewDocumentReader().ReadDocuments(path, nil, nil)
	require.NoError(t, err)
	// Ids are positions over retained lines: "second" is document 1.
	assert.Equal(t, []string{"first", "second"}, docs)
}

func TestReadDocumentsMissingFile(t *testing.T) {
	_, err := NewDocumentReader().ReadDocuments("/nonexistent/docs.txt", nil, nil)
	assert.Error(t, err)
}

func TestReadDocumentsEmptyCorpus(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "docs.txt", "\n\n")

	_, err := NewDocumentReader().ReadDocuments(path, nil, nil)
	assert.Error(t, err)
}

func TestReadDocumentsDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", "from b\n")
	writeFile(t, dir, "a.txt", "from a\n")
	writeFile(t, dir, "skip.log", "not a document\n")

	docs, err := NewDocumentReader().ReadDocuments(dir, []string{"*.txt"}, nil)
	require.NoError(t, err)
	// Files concatenate in sorted path order.
	assert.Equal(t, []string{"from a", "from b"}, docs)
}

func TestReadDocumentsDirectoryExcludePatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keep.txt", "kept\n")
	writeFile(t, dir, "drop_test.txt", "dropped\n")

	docs, err := NewDocumentReader().ReadDocuments(dir, []string{"*.txt"}, []string{"*_test.txt"})
	require.NoError(t, err)
	assert.Equal(t, []string{"kept"}, docs)
}

func TestShouldIncludeFile(t *testing.T) {
	r := NewDocumentReader()

	assert.True(t, r.shouldIncludeFile("dir/a.txt", []string{"*.txt"}, nil))
	assert.False(t, r.shouldIncludeFile("dir/a.log", []string{"*.txt"}, nil))
	assert.False(t, r.shouldIncludeFile("dir/a.txt", []string{"*.txt"}, []string{"a.*"}))
	// No include patterns means everything is eligible.
	assert.True(t, r.shouldIncludeFile("dir/a.log", nil, nil))
}
