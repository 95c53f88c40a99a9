package distribution

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/estateshare/backend/internal/application/adapter"
)

// ExportScheduleOutput is an encoded payout schedule.
type ExportScheduleOutput struct {
	FileName string
	Content  []byte
}

// ExportScheduleUseCase renders a distribution's payouts as a spreadsheet.
type ExportScheduleUseCase struct {
	uow      adapter.UnitOfWork
	exporter adapter.PayoutScheduleExporter
}

// NewExportScheduleUseCase creates a new ExportScheduleUseCase instance.
func NewExportScheduleUseCase(uow adapter.UnitOfWork, exporter adapter.PayoutScheduleExporter) *ExportScheduleUseCase {
	return &ExportScheduleUseCase{
		uow:      uow,
		exporter: exporter,
	}
}

// Execute builds the schedule and encodes it.
func (uc *ExportScheduleUseCase) Execute(ctx context.Context, distributionID uuid.UUID) (*ExportScheduleOutput, error) {
	repos := uc.uow.Repositories()

	dist, err := loadDistribution(ctx, repos.Distributions, distributionID, false)
	if err != nil {
		return nil, err
	}
	stmt, err := loadStatement(ctx, repos.Statements, dist.RentalStatementID, false)
	if err != nil {
		return nil, err
	}
	property, err := repos.Properties.FindByID(ctx, dist.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load property: %w", err)
	}
	payouts, err := repos.Payouts.ListByDistribution(ctx, dist.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payouts: %w", err)
	}
	investors, err := repos.Users.FindByIDs(ctx, payoutUserIDs(payouts))
	if err != nil {
		return nil, fmt.Errorf("failed to load investors: %w", err)
	}

	content, err := uc.exporter.Export(ctx, adapter.PayoutSchedule{
		Property:     property,
		Statement:    stmt,
		Distribution: dist,
		Payouts:      payouts,
		Investors:    investors,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to export payout schedule: %w", err)
	}

	slog.Info("Payout schedule exported",
		"distribution_id", dist.ID,
		"payouts", len(payouts),
		"bytes", len(content),
	)

	return &ExportScheduleOutput{
		FileName: fmt.Sprintf("payouts-%s-%s.xlsx", stmt.PeriodEnd.Format("2006-01"), dist.ID.String()[:8]),
		Content:  content,
	}, nil
}
