// Package export renders ledger reports as spreadsheets.
package export

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/estateshare/backend/internal/application/adapter"
)

const (
	summarySheet = "Summary"
	payoutSheet  = "Payouts"
)

var payoutHeadings = []string{"Investor", "Email", "Role", "Shares", "Amount", "Currency", "Status", "Paid At", "Payout ID"}

// ExcelExporter writes payout schedules as xlsx workbooks.
type ExcelExporter struct{}

// NewExcelExporter creates a new ExcelExporter.
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Export implements adapter.PayoutScheduleExporter.
func (e *ExcelExporter) Export(ctx context.Context, schedule adapter.PayoutSchedule) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(payoutSheet); err != nil {
		return nil, err
	}

	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	if err := writeSummary(f, schedule, amountStyle, headerStyle); err != nil {
		return nil, err
	}
	if err := writePayouts(ctx, f, schedule, amountStyle, headerStyle); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummary(f *excelize.File, s adapter.PayoutSchedule, amountStyle, headerStyle int) error {
	declared := ""
	if s.Distribution.DeclaredAt != nil {
		declared = s.Distribution.DeclaredAt.UTC().Format("2006-01-02 15:04")
	}

	rows := [][]interface{}{
		{"Property", s.Property.Name},
		{"Period", s.Statement.PeriodStart.Format("2006-01-02") + " to " + s.Statement.PeriodEnd.Format("2006-01-02")},
		{"Gross Revenue", s.Statement.GrossRevenue.InexactFloat64()},
		{"Operating Costs", s.Statement.OperatingCosts.InexactFloat64()},
		{"Management Fee", s.Statement.ManagementFee.InexactFloat64()},
		{"Net Distributable", s.Statement.NetDistributable.InexactFloat64()},
		{"Total Distributed", s.Distribution.TotalDistributed.InexactFloat64()},
		{"Currency", s.Distribution.Currency},
		{"Status", string(s.Distribution.Status)},
		{"Declared At", declared},
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}

	if err := f.SetCellStyle(summarySheet, "A1", fmt.Sprintf("A%d", len(rows)), headerStyle); err != nil {
		return err
	}
	if err := f.SetCellStyle(summarySheet, "B3", "B7", amountStyle); err != nil {
		return err
	}
	return f.SetColWidth(summarySheet, "A", "B", 22)
}

func writePayouts(ctx context.Context, f *excelize.File, s adapter.PayoutSchedule, amountStyle, headerStyle int) error {
	if err := f.SetSheetRow(payoutSheet, "A1", &payoutHeadings); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(payoutHeadings), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(payoutSheet, "A1", last, headerStyle); err != nil {
		return err
	}

	for i, p := range s.Payouts {
		if err := ctx.Err(); err != nil {
			return err
		}

		name, email := "", ""
		if u, ok := s.Investors[p.UserID]; ok {
			name, email = u.Name, u.Email
		}
		paidAt := ""
		if p.PaidAt != nil {
			paidAt = p.PaidAt.UTC().Format("2006-01-02 15:04")
		}

		row := []interface{}{
			name,
			email,
			string(p.InvestorRole),
			p.SharesAtRecord,
			p.Amount.InexactFloat64(),
			p.Currency,
			string(p.Status),
			paidAt,
			p.ID.String(),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(payoutSheet, cell, &row); err != nil {
			return err
		}
	}

	if len(s.Payouts) > 0 {
		if err := f.SetCellStyle(payoutSheet, "E2", fmt.Sprintf("E%d", len(s.Payouts)+1), amountStyle); err != nil {
			return err
		}
	}
	return f.SetColWidth(payoutSheet, "A", "I", 18)
}

var _ adapter.PayoutScheduleExporter = (*ExcelExporter)(nil)
