package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ludo-technologies/simdoc/domain"
)

// JoinUseCase orchestrates a similarity self-join: validate the request,
// overlay file configuration, read the corpus, run the join, and format the
// output.
type JoinUseCase struct {
	service      domain.SimilarityService
	reader       domain.DocumentReader
	formatter    domain.PairOutputFormatter
	configLoader domain.JoinConfigurationLoader
	reportWriter domain.ReportWriter
}

// NewJoinUseCase creates a new join use case with the given dependencies
func NewJoinUseCase(
	service domain.SimilarityService,
	reader domain.DocumentReader,
	formatter domain.PairOutputFormatter,
	configLoader domain.JoinConfigurationLoader,
	reportWriter domain.ReportWriter,
) *JoinUseCase {
	return &JoinUseCase{
		service:      service,
		reader:       reader,
		formatter:    formatter,
		configLoader: configLoader,
		reportWriter: reportWriter,
	}
}

// Execute executes the join use case
func (uc *JoinUseCase) Execute(ctx context.Context, req domain.JoinRequest) error {
	startTime := time.Now()

	// Step 1: Overlay file configuration when requested. Request fields set
	// by the caller take precedence; the command layer resolved those
	// before calling here.
	if req.ConfigPath != "" {
		configReq, err := uc.configLoader.LoadJoinConfig(req.ConfigPath)
		if err != nil {
			return err
		}
		req = mergeJoinConfiguration(*configReq, req)
	}

	// Step 2: Validate the merged request.
	if err := req.Validate(); err != nil {
		return err
	}

	// Step 3: Read the corpus.
	documents, err := uc.reader.ReadDocuments(req.InputPath, req.IncludePatterns, req.ExcludePatterns)
	if err != nil {
		return err
	}

	// Step 4: Run the join.
	response, err := uc.service.Join(ctx, documents, &req)
	if err != nil {
		return err
	}
	response.Duration = time.Since(startTime).Milliseconds()

	// Step 5: Format and write the results.
	if !req.HasValidOutputWriter() {
		return fmt.Errorf("no valid output writer specified")
	}
	return uc.reportWriter.Write(req.OutputWriter, req.OutputPath, func(w io.Writer) error {
		return uc.formatter.FormatJoinResponse(response, req.OutputFormat, w)
	})
}

// mergeJoinConfiguration merges a file configuration with the request.
// Request fields that are set win over configuration values.
func mergeJoinConfiguration(configReq, requestReq domain.JoinRequest) domain.JoinRequest {
	merged := configReq

	merged.Metric = requestReq.Metric
	merged.InputPath = requestReq.InputPath
	merged.ConfigPath = requestReq.ConfigPath
	merged.OutputWriter = requestReq.OutputWriter
	merged.OutputPath = requestReq.OutputPath

	if requestReq.Radius != 0 {
		merged.Radius = requestReq.Radius
	}
	if requestReq.WindowSize != 0 {
		merged.WindowSize = requestReq.WindowSize
	}
	if requestReq.NumChunks != 0 {
		merged.NumChunks = requestReq.NumChunks
	}
	if requestReq.Delimiter != "" {
		merged.Delimiter = requestReq.Delimiter
	}
	if requestReq.Seed != 0 {
		merged.Seed = requestReq.Seed
	}
	if requestReq.TFScheme != "" {
		merged.TFScheme = requestReq.TFScheme
	}
	if requestReq.IDFScheme != "" {
		merged.IDFScheme = requestReq.IDFScheme
	}
	if requestReq.OutputFormat != "" {
		merged.OutputFormat = requestReq.OutputFormat
	}
	if requestReq.SortBy != "" {
		merged.SortBy = requestReq.SortBy
	}
	if len(requestReq.IncludePatterns) > 0 {
		merged.IncludePatterns = requestReq.IncludePatterns
	}
	if len(requestReq.ExcludePatterns) > 0 {
		merged.ExcludePatterns = requestReq.ExcludePatterns
	}
	merged.ShowProgress = requestReq.ShowProgress

	return merged
}

// JoinUseCaseBuilder builds JoinUseCase instances with a fluent interface
type JoinUseCaseBuilder struct {
	service      domain.SimilarityService
	reader       domain.DocumentReader
	formatter    domain.PairOutputFormatter
	configLoader domain.JoinConfigurationLoader
	reportWriter domain.ReportWriter
}

// NewJoinUseCaseBuilder creates a new builder
func NewJoinUseCaseBuilder() *JoinUseCaseBuilder {
	return &JoinUseCaseBuilder{}
}

// WithService sets the similarity service
func (b *JoinUseCaseBuilder) WithService(service domain.SimilarityService) *JoinUseCaseBuilder {
	b.service = service
	return b
}

// WithReader sets the document reader
func (b *JoinUseCaseBuilder) WithReader(reader domain.DocumentReader) *JoinUseCaseBuilder {
	b.reader = reader
	return b
}

// WithFormatter sets the output formatter
func (b *JoinUseCaseBuilder) WithFormatter(formatter domain.PairOutputFormatter) *JoinUseCaseBuilder {
	b.formatter = formatter
	return b
}

// WithConfigLoader sets the configuration loader
func (b *JoinUseCaseBuilder) WithConfigLoader(configLoader domain.JoinConfigurationLoader) *JoinUseCaseBuilder {
	b.configLoader = configLoader
	return b
}

// WithReportWriter sets the report writer
func (b *JoinUseCaseBuilder) WithReportWriter(reportWriter domain.ReportWriter) *JoinUseCaseBuilder {
	b.reportWriter = reportWriter
	return b
}

// Build validates the dependencies and creates the use case
func (b *JoinUseCaseBuilder) Build() (*JoinUseCase, error) {
	if b.service == nil {
		return nil, fmt.Errorf("similarity service is required")
	}
	if b.reader == nil {
		return nil, fmt.Errorf("document reader is required")
	}
	if b.formatter == nil {
		return nil, fmt.Errorf("output formatter is required")
	}
	if b.configLoader == nil {
		return nil, fmt.Errorf("configuration loader is required")
	}
	if b.reportWriter == nil {
		return nil, fmt.Errorf("report writer is required")
	}
	return NewJoinUseCase(b.service, b.reader, b.formatter, b.configLoader, b.reportWriter), nil
}
