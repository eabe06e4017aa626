package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	loader := NewTomlConfigLoader()
	cfg, err := loader.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".simdoc.toml")
	content := `
[sketch]
chunks = 32
radius = 0.02
seed = 42

[tokenizer]
window_size = 5

[weighting]
tf = "standard"
idf = "smooth"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := NewTomlConfigLoader().LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 32, cfg.Sketch.Chunks)
	assert.InDelta(t, 0.02, cfg.Sketch.Radius, 1e-12)
	assert.Equal(t, int64(42), cfg.Sketch.Seed)
	assert.Equal(t, 5, cfg.Tokenizer.WindowSize)
	assert.Equal(t, "standard", cfg.Weighting.TF)
	assert.Equal(t, "smooth", cfg.Weighting.IDF)

	// Unspecified sections keep their defaults.
	assert.Equal(t, "csv", cfg.Output.Format)
	assert.True(t, cfg.Output.ShowProgress)
}

func TestLoadConfigPriorityOrder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".simdoc.toml"),
		[]byte("[sketch]\nchunks = 16\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "simdoc.toml"),
		[]byte("[sketch]\nchunks = 64\n"), 0o644))

	cfg, err := NewTomlConfigLoader().LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Sketch.Chunks)
}

func TestLoadConfigFromFileInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "simdoc.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid toml"), 0o644))

	_, err := NewTomlConfigLoader().LoadConfigFromFile(path)
	assert.Error(t, err)
}

func TestGenerateDefaultConfigRoundTrips(t *testing.T) {
	data, err := GenerateDefaultConfig()
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, ".simdoc.toml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := NewTomlConfigLoader().LoadConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestWriteDefaultConfigRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".simdoc.toml")

	require.NoError(t, WriteDefaultConfig(path))
	assert.Error(t, WriteDefaultConfig(path))
}
