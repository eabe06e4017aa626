package domain

import (
	"context"
	"fmt"
	"io"

	"github.com/ludo-technologies/simdoc/internal/constants"
)

// Metric identifies the distance space of a similarity join.
type Metric string

const (
	// MetricJaccard joins token sets under Jaccard distance via 1-bit
	// minwise sketches.
	MetricJaccard Metric = "jaccard"
	// MetricCosine joins weighted token vectors under Cosine distance via
	// simplified simhash sketches.
	MetricCosine Metric = "cosine"
)

// String returns the metric name.
func (m Metric) String() string {
	return string(m)
}

// Pair is one reported similar pair: document ids with I < J and their
// normalized Hamming distance.
type Pair struct {
	I        int     `json:"i" yaml:"i"`
	J        int     `json:"j" yaml:"j"`
	Distance float64 `json:"dist" yaml:"dist"`
}

// String returns string representation of Pair
func (p Pair) String() string {
	return fmt.Sprintf("(%d, %d, %g)", p.I, p.J, p.Distance)
}

// JoinStatistics summarizes a completed join.
type JoinStatistics struct {
	Documents       int     `json:"documents" yaml:"documents"`
	Pairs           int     `json:"pairs" yaml:"pairs"`
	NumChunks       int     `json:"num_chunks" yaml:"num_chunks"`
	Dimensions      int     `json:"dimensions" yaml:"dimensions"`
	HammingRadius   int     `json:"hamming_radius" yaml:"hamming_radius"`
	Degenerate      bool    `json:"degenerate" yaml:"degenerate"`
	SketchBytes     int     `json:"sketch_bytes" yaml:"sketch_bytes"`
	AverageDistance float64 `json:"average_distance" yaml:"average_distance"`
}

// JoinRequest represents a request for an all-pairs similarity self-join.
type JoinRequest struct {
	// Input parameters
	InputPath       string   `json:"input_path"`
	IncludePatterns []string `json:"include_patterns"`
	ExcludePatterns []string `json:"exclude_patterns"`

	// Join configuration
	Metric     Metric  `json:"metric"`
	Radius     float64 `json:"radius"`
	WindowSize int     `json:"window_size"`
	Delimiter  string  `json:"delimiter"`
	NumChunks  int     `json:"num_chunks"`
	Seed       uint64  `json:"seed"`

	// Weighting configuration (cosine only)
	TFScheme  string `json:"tf_scheme"`
	IDFScheme string `json:"idf_scheme"`

	// Output configuration
	OutputFormat OutputFormat `json:"output_format"`
	OutputWriter io.Writer    `json:"-"`
	OutputPath   string       `json:"output_path,omitempty"`
	SortBy       SortCriteria `json:"sort_by"`
	ShowProgress bool         `json:"show_progress"`

	// Configuration file
	ConfigPath string `json:"config_path,omitempty"`
}

// JoinResponse represents the response from a similarity join.
type JoinResponse struct {
	Pairs      []Pair          `json:"pairs" yaml:"pairs"`
	Statistics *JoinStatistics `json:"statistics" yaml:"statistics"`

	// Metadata
	Duration int64  `json:"duration_ms" yaml:"duration_ms"`
	Success  bool   `json:"success" yaml:"success"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

// SimilarityService defines the interface for similarity join services
type SimilarityService interface {
	// Join performs the all-pairs similarity self-join over the documents
	Join(ctx context.Context, documents []string, req *JoinRequest) (*JoinResponse, error)
}

// DocumentReader defines the interface for loading document corpora
type DocumentReader interface {
	// ReadDocuments loads one document per non-empty line. Directory paths
	// are expanded with the include/exclude patterns.
	ReadDocuments(path string, includePatterns, excludePatterns []string) ([]string, error)
}

// PairOutputFormatter defines the interface for formatting join results
type PairOutputFormatter interface {
	// FormatJoinResponse formats a join response according to the specified format
	FormatJoinResponse(response *JoinResponse, format OutputFormat, writer io.Writer) error
}

// JoinConfigurationLoader defines the interface for loading join configuration
type JoinConfigurationLoader interface {
	// LoadJoinConfig loads join configuration from a file
	LoadJoinConfig(configPath string) (*JoinRequest, error)

	// GetDefaultJoinConfig returns the default join configuration
	GetDefaultJoinConfig() *JoinRequest
}

// Validate validates a join request
func (req *JoinRequest) Validate() error {
	if req.InputPath == "" {
		return NewValidationError("input path cannot be empty")
	}

	if req.Metric != MetricJaccard && req.Metric != MetricCosine {
		return NewValidationError(fmt.Sprintf("unknown metric: %s", req.Metric))
	}

	if req.Radius < 0.0 || req.Radius > 1.0 {
		return NewValidationError("radius must be between 0.0 and 1.0")
	}

	if req.WindowSize < 1 {
		return NewValidationError("window size must be >= 1")
	}

	if req.NumChunks < 1 {
		return NewValidationError("number of chunks must be >= 1")
	}

	switch req.TFScheme {
	case constants.TFSchemeNone, constants.TFSchemeStandard, constants.TFSchemeSublinear:
	default:
		return NewValidationError(fmt.Sprintf("unknown TF scheme: %s", req.TFScheme))
	}

	switch req.IDFScheme {
	case constants.IDFSchemeNone, constants.IDFSchemeStandard, constants.IDFSchemeSmooth:
	default:
		return NewValidationError(fmt.Sprintf("unknown IDF scheme: %s", req.IDFScheme))
	}

	if req.SortBy != "" && req.SortBy != SortByPair && req.SortBy != SortByDistance {
		return NewValidationError(fmt.Sprintf("unsupported sort criteria: %s", req.SortBy))
	}

	return nil
}

// HasValidOutputWriter checks if the request has a valid output writer
func (req *JoinRequest) HasValidOutputWriter() bool {
	return req.OutputWriter != nil
}

// WordMode reports whether tokens are delimiter-separated words rather than
// characters.
func (req *JoinRequest) WordMode() bool {
	return req.Delimiter != ""
}

// DefaultJoinRequest returns a default join request for the given metric.
func DefaultJoinRequest(metric Metric) *JoinRequest {
	return &JoinRequest{
		Metric:          metric,
		IncludePatterns: constants.DefaultIncludePatterns,
		Radius:          constants.DefaultRadius,
		WindowSize:      constants.DefaultWindowSize,
		NumChunks:       constants.DefaultNumChunks,
		OutputFormat:    OutputFormatCSV,
		SortBy:          SortByPair,
		ShowProgress:    true,
	}
}

// NewJoinStatistics computes the statistics block of a response.
func NewJoinStatistics(documents, numChunks, hammingRadius int, degenerate bool, sketchBytes int, pairs []Pair) *JoinStatistics {
	stats := &JoinStatistics{
		Documents:     documents,
		Pairs:         len(pairs),
		NumChunks:     numChunks,
		Dimensions:    numChunks * 64,
		HammingRadius: hammingRadius,
		Degenerate:    degenerate,
		SketchBytes:   sketchBytes,
	}
	if len(pairs) > 0 {
		sum := 0.0
		for _, p := range pairs {
			sum += p.Distance
		}
		stats.AverageDistance = sum / float64(len(pairs))
	}
	return stats
}
