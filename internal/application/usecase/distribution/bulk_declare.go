package distribution

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/estateshare/backend/internal/domain/entity"
)

// BulkDeclareResult is the outcome for one distribution of a bulk run.
type BulkDeclareResult struct {
	DistributionID uuid.UUID
	Status         entity.DistributionStatus
	Err            error
}

// BulkDeclareUseCase declares many distributions through the DRAFT to
// DECLARED fast path. Each distribution commits or fails on its own.
type BulkDeclareUseCase struct {
	declare *DeclareUseCase
}

// NewBulkDeclareUseCase creates a new BulkDeclareUseCase instance.
func NewBulkDeclareUseCase(declare *DeclareUseCase) *BulkDeclareUseCase {
	return &BulkDeclareUseCase{
		declare: declare,
	}
}

// Execute declares every id and reports per-id results in input order.
func (uc *BulkDeclareUseCase) Execute(ctx context.Context, distributionIDs []uuid.UUID) []BulkDeclareResult {
	results := make([]BulkDeclareResult, 0, len(distributionIDs))
	failed := 0

	for _, id := range distributionIDs {
		if ctx.Err() != nil {
			results = append(results, BulkDeclareResult{DistributionID: id, Err: ctx.Err()})
			failed++
			continue
		}

		out, err := uc.declare.Execute(ctx, DeclareInput{DistributionID: id, BulkFastPath: true})
		if err != nil {
			results = append(results, BulkDeclareResult{DistributionID: id, Err: err})
			failed++
			continue
		}
		results = append(results, BulkDeclareResult{DistributionID: id, Status: out.Distribution.Status})
	}

	slog.Info("Bulk declaration finished",
		"requested", len(distributionIDs),
		"failed", failed,
	)
	return results
}
