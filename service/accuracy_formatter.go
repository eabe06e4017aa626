package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ludo-technologies/simdoc/domain"
)

// AccuracyOutputFormatter implements the domain.AccuracyOutputFormatter interface
type AccuracyOutputFormatter struct{}

// NewAccuracyOutputFormatter creates a new accuracy output formatter
func NewAccuracyOutputFormatter() *AccuracyOutputFormatter {
	return &AccuracyOutputFormatter{}
}

// FormatAccuracyResponse formats an accuracy response according to the specified format
func (f *AccuracyOutputFormatter) FormatAccuracyResponse(response *domain.AccuracyResponse, format domain.OutputFormat, writer io.Writer) error {
	switch format {
	case domain.OutputFormatCSV:
		return f.formatAsCSV(response, writer)
	case domain.OutputFormatText:
		return f.formatAsText(response, writer)
	case domain.OutputFormatJSON:
		return WriteJSON(writer, response)
	case domain.OutputFormatYAML:
		return WriteYAML(writer, response)
	default:
		return domain.NewUnsupportedFormatError(string(format))
	}
}

// formatAsCSV writes one row per chunk count with per-radius
// precision/recall/F1 columns.
func (f *AccuracyOutputFormatter) formatAsCSV(response *domain.AccuracyResponse, writer io.Writer) error {
	csvWriter := csv.NewWriter(writer)
	defer csvWriter.Flush()

	header := []string{"num_chunks", "dimensions", "mean_absolute_error"}
	if len(response.Rows) > 0 {
		for _, m := range response.Rows[0].Radii {
			r := strconv.FormatFloat(m.Radius, 'g', -1, 64)
			header = append(header,
				"results_"+r, "precision_"+r, "recall_"+r, "f1_"+r)
		}
	}
	if err := csvWriter.Write(header); err != nil {
		return domain.NewOutputError("failed to write CSV header", err)
	}

	for _, row := range response.Rows {
		record := []string{
			strconv.Itoa(row.NumChunks),
			strconv.Itoa(row.Dimensions),
			strconv.FormatFloat(row.MAE, 'g', -1, 64),
		}
		for _, m := range row.Radii {
			record = append(record,
				strconv.Itoa(m.Results),
				strconv.FormatFloat(m.Precision, 'g', -1, 64),
				strconv.FormatFloat(m.Recall, 'g', -1, 64),
				strconv.FormatFloat(m.F1, 'g', -1, 64))
		}
		if err := csvWriter.Write(record); err != nil {
			return domain.NewOutputError("failed to write CSV record", err)
		}
	}
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return domain.NewOutputError("failed to flush CSV output", err)
	}
	return nil
}

// formatAsText formats the response as human-readable text
func (f *AccuracyOutputFormatter) formatAsText(response *domain.AccuracyResponse, writer io.Writer) error {
	if !response.Success {
		fmt.Fprintf(writer, "Accuracy evaluation failed: %s\n", response.Error)
		return nil
	}

	fmt.Fprintf(writer, "Minhash Accuracy Sweep\n")
	fmt.Fprintf(writer, "======================\n\n")
	fmt.Fprintf(writer, "Documents: %d (%d pairs)\n", response.Documents, response.Pairs)
	fmt.Fprintf(writer, "Duration: %dms\n\n", response.Duration)

	for _, row := range response.Rows {
		fmt.Fprintf(writer, "chunks=%d (%d bits): MAE=%.6f", row.NumChunks, row.Dimensions, row.MAE)
		for _, m := range row.Radii {
			fmt.Fprintf(writer, "  r=%g P=%.3f R=%.3f F1=%.3f", m.Radius, m.Precision, m.Recall, m.F1)
		}
		fmt.Fprintf(writer, "\n")
	}
	return nil
}
