package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/ludo-technologies/simdoc/domain"
)

// PairOutputFormatter implements the domain.PairOutputFormatter interface
type PairOutputFormatter struct{}

// NewPairOutputFormatter creates a new pair output formatter
func NewPairOutputFormatter() *PairOutputFormatter {
	return &PairOutputFormatter{}
}

// FormatJoinResponse formats a join response according to the specified format
func (f *PairOutputFormatter) FormatJoinResponse(response *domain.JoinResponse, format domain.OutputFormat, writer io.Writer) error {
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

// formatAsCSV writes the reference pair format: header `i,j,dist` with
// zero-origin ids and the distance as a decimal fraction.
func (f *PairOutputFormatter) formatAsCSV(response *domain.JoinResponse, writer io.Writer) error {
	csvWriter := csv.NewWriter(writer)
	defer csvWriter.Flush()

	if err := csvWriter.Write([]string{"i", "j", "dist"}); err != nil {
		return domain.NewOutputError("failed to write CSV header", err)
	}
	for _, pair := range response.Pairs {
		record := []string{
			strconv.Itoa(pair.I),
			strconv.Itoa(pair.J),
			strconv.FormatFloat(pair.Distance, 'g', -1, 64),
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
func (f *PairOutputFormatter) formatAsText(response *domain.JoinResponse, writer io.Writer) error {
	if !response.Success {
		fmt.Fprintf(writer, "Similarity join failed: %s\n", response.Error)
		return nil
	}

	fmt.Fprintf(writer, "Similarity Join Results\n")
	fmt.Fprintf(writer, "=======================\n\n")

	if response.Statistics != nil {
		stats := response.Statistics
		fmt.Fprintf(writer, "Summary:\n")
		fmt.Fprintf(writer, "  Documents: %d\n", stats.Documents)
		fmt.Fprintf(writer, "  Sketch width: %d bits (%d chunks)\n", stats.Dimensions, stats.NumChunks)
		fmt.Fprintf(writer, "  Hamming radius: %d\n", stats.HammingRadius)
		fmt.Fprintf(writer, "  Sketch memory: %d bytes\n", stats.SketchBytes)
		fmt.Fprintf(writer, "  Pairs found: %d\n", stats.Pairs)
		if stats.Pairs > 0 {
			fmt.Fprintf(writer, "  Average distance: %.6f\n", stats.AverageDistance)
		}
		if stats.Degenerate {
			fmt.Fprintf(writer, "  Note: radius exhausts the chunk budget; the join fell back to exhaustive verification\n")
		}
		fmt.Fprintf(writer, "  Duration: %dms\n\n", response.Duration)
	}

	if len(response.Pairs) == 0 {
		fmt.Fprintf(writer, "No similar pairs found.\n")
		return nil
	}

	fmt.Fprintf(writer, "Pairs:\n")
	for _, pair := range response.Pairs {
		fmt.Fprintf(writer, "  %d\t%d\t%g\n", pair.I, pair.J, pair.Distance)
	}
	return nil
}

// SortPairs orders pairs according to the criteria. The joiner's native
// order is ascending (i, j); distance sorting is stable with (i, j) ties.
func SortPairs(pairs []domain.Pair, criteria domain.SortCriteria) {
	switch criteria {
	case domain.SortByDistance:
		sort.SliceStable(pairs, func(a, b int) bool {
			if pairs[a].Distance != pairs[b].Distance {
				return pairs[a].Distance < pairs[b].Distance
			}
			if pairs[a].I != pairs[b].I {
				return pairs[a].I < pairs[b].I
			}
			return pairs[a].J < pairs[b].J
		})
	default:
		sort.SliceStable(pairs, func(a, b int) bool {
			if pairs[a].I != pairs[b].I {
				return pairs[a].I < pairs[b].I
			}
			return pairs[a].J < pairs[b].J
		})
	}
}
