// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/estateshare/backend/internal/domain/entity"
)

// PayoutSchedule is everything needed to render a distribution's payout list.
type PayoutSchedule struct {
	Property     *entity.Property
	Statement    *entity.RentalStatement
	Distribution *entity.Distribution
	Payouts      []*entity.Payout
	Investors    map[uuid.UUID]*entity.User
}

// PayoutScheduleExporter renders a payout schedule as a spreadsheet.
type PayoutScheduleExporter interface {
	// Export returns the encoded workbook.
	Export(ctx context.Context, schedule PayoutSchedule) ([]byte, error)
}
