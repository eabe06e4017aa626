package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ludo-technologies/simdoc/domain"
)

// AccuracyUseCase orchestrates the minhash accuracy harness.
type AccuracyUseCase struct {
	service      domain.AccuracyService
	reader       domain.DocumentReader
	formatter    domain.AccuracyOutputFormatter
	reportWriter domain.ReportWriter
}

// NewAccuracyUseCase creates a new accuracy use case with the given dependencies
func NewAccuracyUseCase(
	service domain.AccuracyService,
	reader domain.DocumentReader,
	formatter domain.AccuracyOutputFormatter,
	reportWriter domain.ReportWriter,
) *AccuracyUseCase {
	return &AccuracyUseCase{
		service:      service,
		reader:       reader,
		formatter:    formatter,
		reportWriter: reportWriter,
	}
}

// Execute executes the accuracy use case
func (uc *AccuracyUseCase) Execute(ctx context.Context, req domain.AccuracyRequest) error {
	startTime := time.Now()

	if err := req.Validate(); err != nil {
		return err
	}

	documents, err := uc.reader.ReadDocuments(req.InputPath, req.IncludePatterns, req.ExcludePatterns)
	if err != nil {
		return err
	}

	response, err := uc.service.Evaluate(ctx, documents, &req)
	if err != nil {
		return err
	}
	response.Duration = time.Since(startTime).Milliseconds()

	if req.OutputWriter == nil {
		return fmt.Errorf("no valid output writer specified")
	}
	return uc.reportWriter.Write(req.OutputWriter, req.OutputPath, func(w io.Writer) error {
		return uc.formatter.FormatAccuracyResponse(response, req.OutputFormat, w)
	})
}
