package app

import (
	"context"

	"github.com/ludo-technologies/simdoc/domain"
)

// DumpUseCase orchestrates the pair dump tool.
type DumpUseCase struct {
	service domain.DumpService
}

// NewDumpUseCase creates a new dump use case
func NewDumpUseCase(service domain.DumpService) *DumpUseCase {
	return &DumpUseCase{service: service}
}

// Execute executes the dump use case
func (uc *DumpUseCase) Execute(ctx context.Context, req domain.DumpRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return uc.service.Dump(ctx, &req)
}
