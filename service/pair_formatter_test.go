package service

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ludo-technologies/simdoc/domain"
)

func sampleResponse() *domain.JoinResponse {
	pairs := []domain.Pair{
		{I: 0, J: 1, Distance: 0.0625},
		{I: 1, J: 2, Distance: 0.125},
	}
	return &domain.JoinResponse{
		Pairs:      pairs,
		Statistics: domain.NewJoinStatistics(3, 2, 16, false, 48, pairs),
		Success:    true,
	}
}

func TestFormatJoinResponseCSV(t *testing.T) {
	var buf bytes.Buffer
	err := NewPairOutputFormatter().FormatJoinResponse(sampleResponse(), domain.OutputFormatCSV, &buf)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "i,j,dist", lines[0])
	assert.Equal(t, "0,1,0.0625", lines[1])
	assert.Equal(t, "1,2,0.125", lines[2])
}

func TestFormatJoinResponseCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	response := &domain.JoinResponse{Success: true}
	require.NoError(t, NewPairOutputFormatter().FormatJoinResponse(response, domain.OutputFormatCSV, &buf))
	assert.Equal(t, "i,j,dist\n", buf.String())
}

func TestFormatJoinResponseText(t *testing.T) {
	var buf bytes.Buffer
	err := NewPairOutputFormatter().FormatJoinResponse(sampleResponse(), domain.OutputFormatText, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Documents: 3")
	assert.Contains(t, out, "Pairs found: 2")
	assert.Contains(t, out, "0\t1\t0.0625")
}

func TestFormatJoinResponseTextFailure(t *testing.T) {
	var buf bytes.Buffer
	response := &domain.JoinResponse{Success: false, Error: "bad input"}
	require.NoError(t, NewPairOutputFormatter().FormatJoinResponse(response, domain.OutputFormatText, &buf))
	assert.Contains(t, buf.String(), "bad input")
}

func TestFormatJoinResponseJSON(t *testing.T) {
	var buf bytes.Buffer
	err := NewPairOutputFormatter().FormatJoinResponse(sampleResponse(), domain.OutputFormatJSON, &buf)
	require.NoError(t, err)

	var decoded domain.JoinResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleResponse().Pairs, decoded.Pairs)
}

func TestFormatJoinResponseYAML(t *testing.T) {
	var buf bytes.Buffer
	err := NewPairOutputFormatter().FormatJoinResponse(sampleResponse(), domain.OutputFormatYAML, &buf)
	require.NoError(t, err)

	var decoded domain.JoinResponse
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleResponse().Pairs, decoded.Pairs)
}

func TestFormatJoinResponseUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := NewPairOutputFormatter().FormatJoinResponse(sampleResponse(), "xml", &buf)
	assert.Error(t, err)
}

func TestSortPairsByDistance(t *testing.T) {
	pairs := []domain.Pair{
		{I: 0, J: 1, Distance: 0.5},
		{I: 2, J: 3, Distance: 0.1},
		{I: 0, J: 2, Distance: 0.1},
	}
	SortPairs(pairs, domain.SortByDistance)
	assert.Equal(t, []domain.Pair{
		{I: 0, J: 2, Distance: 0.1},
		{I: 2, J: 3, Distance: 0.1},
		{I: 0, J: 1, Distance: 0.5},
	}, pairs)
}

func TestSortPairsByPair(t *testing.T) {
	pairs := []domain.Pair{
		{I: 2, J: 3, Distance: 0.1},
		{I: 0, J: 2, Distance: 0.5},
		{I: 0, J: 1, Distance: 0.2},
	}
	SortPairs(pairs, domain.SortByPair)
	assert.Equal(t, []domain.Pair{
		{I: 0, J: 1, Distance: 0.2},
		{I: 0, J: 2, Distance: 0.5},
		{I: 2, J: 3, Distance: 0.1},
	}, pairs)
}
