package service

import (
	"context"

	"github.com/ludo-technologies/simdoc/domain"
	"github.com/ludo-technologies/simdoc/internal/analyzer"
)

// AccuracyServiceImpl implements the domain.AccuracyService interface
type AccuracyServiceImpl struct {
	progress domain.ProgressManager
}

// NewAccuracyService creates an accuracy service with interactive progress
// reporting.
func NewAccuracyService() *AccuracyServiceImpl {
	return &AccuracyServiceImpl{progress: NewProgressManager()}
}

// NewAccuracyServiceWithProgress creates an accuracy service with the given
// progress manager.
func NewAccuracyServiceWithProgress(progress domain.ProgressManager) *AccuracyServiceImpl {
	return &AccuracyServiceImpl{progress: progress}
}

// Evaluate runs the minhash accuracy sweep over the documents.
func (s *AccuracyServiceImpl) Evaluate(ctx context.Context, documents []string, req *domain.AccuracyRequest) (*domain.AccuracyResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if len(documents) == 0 {
		return nil, domain.NewInvalidInputError("no documents to evaluate", nil)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Features come from the same seed-splitting scheme the jaccard join
	// uses, so the harness calibrates exactly what the join will run.
	searcher, err := analyzer.NewJaccardSearcher(req.WindowSize, req.Delimiter, req.Seed)
	if err != nil {
		return nil, domain.NewInvalidInputError("invalid feature configuration", err)
	}
	extractor := searcher.Extractor()

	features := make([][]uint64, len(documents))
	for i, doc := range documents {
		if doc == "" {
			return nil, domain.NewInvalidInputError("input documents must not be empty", nil)
		}
		features[i] = extractor.Extract(doc)
	}

	var progressFn func(done, total int)
	if req.ShowProgress {
		s.progress.Initialize(len(documents))
		s.progress.Start("Evaluating")
		defer s.progress.Complete(true)
		progressFn = func(done, total int) {
			s.progress.Update(done, total)
		}
	}

	rows := analyzer.EvaluateMinhashAccuracy(features, req.Seed, req.MaxChunks, req.Radii, progressFn)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	response := &domain.AccuracyResponse{
		Rows:      make([]domain.AccuracyRow, len(rows)),
		Documents: len(documents),
		Pairs:     len(documents) * (len(documents) - 1) / 2,
		Success:   true,
	}
	for i, row := range rows {
		metrics := make([]domain.AccuracyRadiusMetrics, len(row.Radii))
		for k, m := range row.Radii {
			metrics[k] = domain.AccuracyRadiusMetrics{
				Radius:    m.Radius,
				Results:   m.Results,
				Precision: m.Precision,
				Recall:    m.Recall,
				F1:        m.F1,
			}
		}
		response.Rows[i] = domain.AccuracyRow{
			NumChunks:  row.NumChunks,
			Dimensions: row.Dimensions,
			MAE:        row.MAE,
			Radii:      metrics,
		}
	}
	return response, nil
}
