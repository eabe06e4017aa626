package domain

import (
	"context"
	"fmt"
	"io"

	"github.com/ludo-technologies/simdoc/internal/constants"
)

// AccuracyRequest represents a request for the minhash accuracy harness,
// which calibrates the chunk count on a corpus small enough for the O(n^2)
// exact ground truth.
type AccuracyRequest struct {
	// Input parameters
	InputPath       string   `json:"input_path"`
	IncludePatterns []string `json:"include_patterns"`
	ExcludePatterns []string `json:"exclude_patterns"`

	// Harness configuration
	WindowSize int       `json:"window_size"`
	Delimiter  string    `json:"delimiter"`
	Seed       uint64    `json:"seed"`
	MaxChunks  int       `json:"max_chunks"`
	Radii      []float64 `json:"radii"`

	// Output configuration
	OutputFormat OutputFormat `json:"output_format"`
	OutputWriter io.Writer    `json:"-"`
	OutputPath   string       `json:"output_path,omitempty"`
	ShowProgress bool         `json:"show_progress"`
}

// AccuracyRadiusMetrics is the retrieval quality at one radius, with the
// exact pair set as ground truth. Both sides are measured in the join's
// normalized-Hamming convention.
type AccuracyRadiusMetrics struct {
	Radius    float64 `json:"radius" yaml:"radius"`
	Results   int     `json:"results" yaml:"results"`
	Precision float64 `json:"precision" yaml:"precision"`
	Recall    float64 `json:"recall" yaml:"recall"`
	F1        float64 `json:"f1" yaml:"f1"`
}

// AccuracyRow is the harness output for one chunk count.
type AccuracyRow struct {
	NumChunks  int                     `json:"num_chunks" yaml:"num_chunks"`
	Dimensions int                     `json:"dimensions" yaml:"dimensions"`
	MAE        float64                 `json:"mean_absolute_error" yaml:"mean_absolute_error"`
	Radii      []AccuracyRadiusMetrics `json:"radii" yaml:"radii"`
}

// AccuracyResponse represents the response from the accuracy harness.
type AccuracyResponse struct {
	Rows      []AccuracyRow `json:"rows" yaml:"rows"`
	Documents int           `json:"documents" yaml:"documents"`
	Pairs     int           `json:"pairs" yaml:"pairs"`

	// Metadata
	Duration int64  `json:"duration_ms" yaml:"duration_ms"`
	Success  bool   `json:"success" yaml:"success"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

// AccuracyService defines the interface for the accuracy harness
type AccuracyService interface {
	// Evaluate runs the accuracy sweep over the documents
	Evaluate(ctx context.Context, documents []string, req *AccuracyRequest) (*AccuracyResponse, error)
}

// AccuracyOutputFormatter defines the interface for formatting harness results
type AccuracyOutputFormatter interface {
	// FormatAccuracyResponse formats an accuracy response according to the specified format
	FormatAccuracyResponse(response *AccuracyResponse, format OutputFormat, writer io.Writer) error
}

// Validate validates an accuracy request
func (req *AccuracyRequest) Validate() error {
	if req.InputPath == "" {
		return NewValidationError("input path cannot be empty")
	}

	if req.WindowSize < 1 {
		return NewValidationError("window size must be >= 1")
	}

	if req.MaxChunks < 1 || req.MaxChunks > constants.MaxNumChunks {
		return NewValidationError(fmt.Sprintf("max chunks must be between 1 and %d", constants.MaxNumChunks))
	}

	for _, r := range req.Radii {
		if r < 0.0 || r > 1.0 {
			return NewValidationError("radii must be between 0.0 and 1.0")
		}
	}

	return nil
}

// DefaultAccuracyRequest returns a default accuracy request.
func DefaultAccuracyRequest() *AccuracyRequest {
	return &AccuracyRequest{
		IncludePatterns: constants.DefaultIncludePatterns,
		WindowSize:      constants.DefaultWindowSize,
		MaxChunks:       constants.MaxNumChunks,
		Radii:           append([]float64(nil), constants.AccuracyRadii...),
		OutputFormat:    OutputFormatCSV,
		ShowProgress:    true,
	}
}
