package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/ludo-technologies/simdoc/domain"
)

// DumpServiceImpl implements the domain.DumpService interface: it re-reads
// the corpus and a pairs CSV and prints each pair next to both document
// texts.
type DumpServiceImpl struct {
	reader domain.DocumentReader
}

// NewDumpService creates a new dump service
func NewDumpService(reader domain.DocumentReader) *DumpServiceImpl {
	return &DumpServiceImpl{reader: reader}
}

// Dump reads the documents and the pairs CSV and writes the annotated pair
// listing.
func (s *DumpServiceImpl) Dump(ctx context.Context, req *domain.DumpRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	documents, err := s.reader.ReadDocuments(req.InputPath, nil, nil)
	if err != nil {
		return err
	}

	f, err := os.Open(req.PairsPath)
	if err != nil {
		return domain.NewFileNotFoundError(req.PairsPath, err)
	}
	defer func() { _ = f.Close() }()

	csvReader := csv.NewReader(f)
	records, err := csvReader.ReadAll()
	if err != nil {
		return domain.NewInvalidInputError("failed to parse pairs CSV", err)
	}

	for row, record := range records {
		if row == 0 {
			// Header line.
			continue
		}
		if len(record) < 3 {
			return domain.NewInvalidInputError(fmt.Sprintf("pairs CSV row %d has %d columns, want 3", row, len(record)), nil)
		}
		i, err := strconv.Atoi(record[0])
		if err != nil {
			return domain.NewInvalidInputError(fmt.Sprintf("pairs CSV row %d: bad id %q", row, record[0]), err)
		}
		j, err := strconv.Atoi(record[1])
		if err != nil {
			return domain.NewInvalidInputError(fmt.Sprintf("pairs CSV row %d: bad id %q", row, record[1]), err)
		}
		dist, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return domain.NewInvalidInputError(fmt.Sprintf("pairs CSV row %d: bad distance %q", row, record[2]), err)
		}
		if i < 0 || i >= len(documents) || j < 0 || j >= len(documents) {
			return domain.NewInvalidInputError(fmt.Sprintf("pairs CSV row %d references document outside the corpus", row), nil)
		}

		fmt.Fprintf(req.OutputWriter, "[i=%d,j=%d,dist=%g]\n", i, j, dist)
		fmt.Fprintln(req.OutputWriter, documents[i])
		fmt.Fprintln(req.OutputWriter, documents[j])
	}
	return nil
}
