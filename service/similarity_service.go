package service

import (
	"context"
	"fmt"
	"os"

	"github.com/ludo-technologies/simdoc/domain"
	"github.com/ludo-technologies/simdoc/internal/analyzer"
	"github.com/ludo-technologies/simdoc/internal/constants"
)

// SimilarityServiceImpl implements the domain.SimilarityService interface.
// It wires the feature extractor, the metric's sketcher, and the sketch
// joiner into one pipeline: tokens -> features -> sketches -> joiner ->
// emitter.
type SimilarityServiceImpl struct {
	progress domain.ProgressManager
}

// NewSimilarityService creates a similarity service with interactive
// progress reporting.
func NewSimilarityService() *SimilarityServiceImpl {
	return &SimilarityServiceImpl{progress: NewProgressManager()}
}

// NewSimilarityServiceWithProgress creates a similarity service with the
// given progress manager.
func NewSimilarityServiceWithProgress(progress domain.ProgressManager) *SimilarityServiceImpl {
	return &SimilarityServiceImpl{progress: progress}
}

// Join performs the all-pairs similarity self-join over the documents.
func (s *SimilarityServiceImpl) Join(ctx context.Context, documents []string, req *domain.JoinRequest) (*domain.JoinResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if len(documents) == 0 {
		return nil, domain.NewInvalidInputError("no documents to join", nil)
	}
	if int64(len(documents)) >= constants.MaxDocuments {
		return nil, domain.NewInvalidInputError(
			fmt.Sprintf("corpus of %d documents exceeds the supported maximum", len(documents)), nil)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch req.Metric {
	case domain.MetricJaccard:
		return s.joinJaccard(ctx, documents, req)
	case domain.MetricCosine:
		return s.joinCosine(ctx, documents, req)
	default:
		return nil, domain.NewInvalidInputError("unknown metric: "+string(req.Metric), nil)
	}
}

func (s *SimilarityServiceImpl) joinJaccard(ctx context.Context, documents []string, req *domain.JoinRequest) (*domain.JoinResponse, error) {
	searcher, err := analyzer.NewJaccardSearcher(req.WindowSize, req.Delimiter, req.Seed)
	if err != nil {
		return nil, domain.NewInvalidInputError("invalid feature configuration", err)
	}
	if req.ShowProgress {
		searcher.OnProgress(s.progressCallback())
	}

	s.startStage("Sketching", len(documents), req.ShowProgress)
	if err := searcher.BuildSketches(documents, req.NumChunks); err != nil {
		s.finishStage(false, req.ShowProgress)
		return nil, domain.NewAnalysisError("failed to build sketches", err)
	}
	s.finishStage(true, req.ShowProgress)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.warnIfDegenerate(searcher.DegenerateRadius(req.Radius), req)

	s.startStage("Joining", 0, req.ShowProgress)
	pairs := searcher.SearchSimilarPairs(req.Radius)
	s.finishStage(true, req.ShowProgress)

	return s.buildResponse(documents, req, pairs,
		searcher.DegenerateRadius(req.Radius), searcher.MemoryBytes()), nil
}

func (s *SimilarityServiceImpl) joinCosine(ctx context.Context, documents []string, req *domain.JoinRequest) (*domain.JoinResponse, error) {
	searcher, err := analyzer.NewCosineSearcher(req.WindowSize, req.Delimiter, req.Seed)
	if err != nil {
		return nil, domain.NewInvalidInputError("invalid feature configuration", err)
	}

	switch req.TFScheme {
	case constants.TFSchemeStandard:
		searcher.WithTF(analyzer.NewTermFrequency())
	case constants.TFSchemeSublinear:
		searcher.WithTF(analyzer.NewTermFrequency().Sublinear(true))
	}

	if req.IDFScheme != constants.IDFSchemeNone {
		idf, err := searcher.TrainIDF(documents, req.IDFScheme == constants.IDFSchemeSmooth)
		if err != nil {
			return nil, domain.NewAnalysisError("failed to train IDF", err)
		}
		searcher.WithIDF(idf)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if req.ShowProgress {
		searcher.OnProgress(s.progressCallback())
	}

	s.startStage("Sketching", len(documents), req.ShowProgress)
	if err := searcher.BuildSketches(documents, req.NumChunks); err != nil {
		s.finishStage(false, req.ShowProgress)
		return nil, domain.NewAnalysisError("failed to build sketches", err)
	}
	s.finishStage(true, req.ShowProgress)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.warnIfDegenerate(searcher.DegenerateRadius(req.Radius), req)

	s.startStage("Joining", 0, req.ShowProgress)
	pairs := searcher.SearchSimilarPairs(req.Radius)
	s.finishStage(true, req.ShowProgress)

	return s.buildResponse(documents, req, pairs,
		searcher.DegenerateRadius(req.Radius), searcher.MemoryBytes()), nil
}

func (s *SimilarityServiceImpl) buildResponse(documents []string, req *domain.JoinRequest, pairs []analyzer.Pair, degenerate bool, sketchBytes int) *domain.JoinResponse {
	result := make([]domain.Pair, len(pairs))
	for i, p := range pairs {
		result[i] = domain.Pair{I: p.I, J: p.J, Distance: p.Distance}
	}
	SortPairs(result, req.SortBy)

	hamRadius := int(float64(req.NumChunks*64) * req.Radius)
	return &domain.JoinResponse{
		Pairs:      result,
		Statistics: domain.NewJoinStatistics(len(documents), req.NumChunks, hamRadius, degenerate, sketchBytes, result),
		Success:    true,
	}
}

// warnIfDegenerate warns when the radius exhausts the chunk budget: the
// join is still exact but the block sweep collapses to all-pairs
// verification.
func (s *SimilarityServiceImpl) warnIfDegenerate(degenerate bool, req *domain.JoinRequest) {
	if degenerate {
		fmt.Fprintf(os.Stderr,
			"warning: radius %g needs more than %d chunks to narrow candidates; falling back to exhaustive verification (increase -c)\n",
			req.Radius, req.NumChunks)
	}
}

func (s *SimilarityServiceImpl) progressCallback() func(done, total int) {
	return func(done, total int) {
		s.progress.Update(done, total)
	}
}

func (s *SimilarityServiceImpl) startStage(description string, total int, show bool) {
	if !show {
		return
	}
	s.progress.Initialize(total)
	s.progress.Start(description)
}

func (s *SimilarityServiceImpl) finishStage(success bool, show bool) {
	if !show {
		return
	}
	s.progress.Complete(success)
}
