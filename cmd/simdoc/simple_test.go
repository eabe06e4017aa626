package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludo-technologies/simdoc/domain"
)

func TestOutputFlagsDefaultCSV(t *testing.T) {
	f := &outputFlags{}
	format, err := f.determine()
	require.NoError(t, err)
	assert.Equal(t, domain.OutputFormatCSV, format)
}

func TestOutputFlagsSingleSelection(t *testing.T) {
	f := &outputFlags{json: true}
	format, err := f.determine()
	require.NoError(t, err)
	assert.Equal(t, domain.OutputFormatJSON, format)
}

func TestOutputFlagsRejectsMultiple(t *testing.T) {
	f := &outputFlags{json: true, yaml: true}
	_, err := f.determine()
	assert.Error(t, err)
}

func TestJaccardCommandFlags(t *testing.T) {
	cmd := NewJaccardCommand().CreateCobraCommand()

	assert.Equal(t, "jaccard", cmd.Use)
	for _, flag := range []string{"input", "radius", "window-size", "delimiter", "chunks", "seed"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "missing flag %s", flag)
	}
}

func TestCosineCommandFlags(t *testing.T) {
	cmd := NewCosineCommand().CreateCobraCommand()

	assert.Equal(t, "cosine", cmd.Use)
	for _, flag := range []string{"input", "radius", "delimiter", "tf", "idf"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "missing flag %s", flag)
	}
}

func TestMinhashAccCommandFlags(t *testing.T) {
	cmd := NewMinhashAccCommand().CreateCobraCommand()

	assert.Equal(t, "minhash-acc", cmd.Use)
	assert.Contains(t, cmd.Aliases, "minhash_acc")
	for _, flag := range []string{"input", "window-size", "max-chunks", "radii"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "missing flag %s", flag)
	}
}

func TestDumpCommandFlags(t *testing.T) {
	cmd := NewDumpCommand().CreateCobraCommand()

	assert.Equal(t, "dump", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("input"))
	assert.NotNil(t, cmd.Flags().Lookup("pairs"))
}
