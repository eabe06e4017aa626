package domain

import "io"

// OutputFormat identifies a supported result encoding.
type OutputFormat string

const (
	// OutputFormatCSV is the reference pair format: header `i,j,dist`,
	// zero-origin ids, distance as a decimal fraction.
	OutputFormatCSV OutputFormat = "csv"
	// OutputFormatText is a human-readable summary plus the pair list.
	OutputFormatText OutputFormat = "text"
	// OutputFormatJSON encodes the full response as indented JSON.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatYAML encodes the full response as YAML.
	OutputFormatYAML OutputFormat = "yaml"
)

// SortCriteria defines how result pairs are ordered.
type SortCriteria string

const (
	// SortByPair orders ascending by (i, j); the joiner's native order.
	SortByPair SortCriteria = "pair"
	// SortByDistance orders ascending by distance, ties by (i, j).
	SortByDistance SortCriteria = "distance"
)

// ProgressManager manages progress tracking for long-running stages.
type ProgressManager interface {
	// Initialize sets up progress tracking with the maximum value
	Initialize(maxValue int)

	// Start starts the progress bar
	Start(description string)

	// Complete marks the progress as completed
	Complete(success bool)

	// Update updates the progress
	Update(processed, total int)

	// SetWriter sets the output writer for progress bars
	SetWriter(writer io.Writer)

	// IsInteractive returns true if progress bars should be shown
	IsInteractive() bool

	// Close cleans up any resources
	Close()
}

// ReportWriter abstracts writing formatted output to a destination.
//
// If outputPath is non-empty, implementations create/truncate the file at
// that path and pass it to writeFunc; otherwise they pass the provided
// writer.
type ReportWriter interface {
	Write(writer io.Writer, outputPath string, writeFunc func(io.Writer) error) error
}
