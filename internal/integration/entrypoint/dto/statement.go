package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/estateshare/backend/internal/application/usecase/statement"
	"github.com/estateshare/backend/internal/domain/entity"
	"github.com/estateshare/backend/internal/domain/valueobject"
)

// CostItemRequest is one itemised operating cost.
type CostItemRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// CreateStatementRequest represents the request body for a rental statement.
// Dates use the YYYY-MM-DD format.
type CreateStatementRequest struct {
	PeriodStart      string            `json:"period_start" binding:"required"`
	PeriodEnd        string            `json:"period_end" binding:"required"`
	GrossRevenue     decimal.Decimal   `json:"gross_revenue"`
	OperatingCosts   decimal.Decimal   `json:"operating_costs"`
	ManagementFee    decimal.Decimal   `json:"management_fee"`
	NetDistributable *decimal.Decimal  `json:"net_distributable,omitempty"`
	CostBreakdown    []CostItemRequest `json:"cost_breakdown,omitempty"`
	Currency         string            `json:"currency,omitempty" binding:"omitempty,len=3"`
}

// ToCostBreakdown converts the request items to the domain breakdown.
func (r CreateStatementRequest) ToCostBreakdown() valueobject.CostBreakdown {
	if len(r.CostBreakdown) == 0 {
		return nil
	}
	items := make(valueobject.CostBreakdown, len(r.CostBreakdown))
	for i, item := range r.CostBreakdown {
		items[i] = valueobject.CostItem{Description: item.Description, Amount: item.Amount}
	}
	return items
}

// CostItemResponse is one itemised operating cost in API responses.
type CostItemResponse struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

// StatementResponse represents a rental statement in API responses.
type StatementResponse struct {
	ID               string             `json:"id"`
	PropertyID       string             `json:"property_id"`
	PeriodStart      string             `json:"period_start"`
	PeriodEnd        string             `json:"period_end"`
	GrossRevenue     string             `json:"gross_revenue"`
	OperatingCosts   string             `json:"operating_costs"`
	ManagementFee    string             `json:"management_fee"`
	NetDistributable string             `json:"net_distributable"`
	CostBreakdown    []CostItemResponse `json:"cost_breakdown"`
	Currency         string             `json:"currency"`
	CreatedAt        time.Time          `json:"created_at"`
}

// StatementListResponse represents a property's statements.
type StatementListResponse struct {
	Statements []StatementResponse `json:"statements"`
}

// MonthShareResponse is the part of a statement period inside one month.
type MonthShareResponse struct {
	Month        string `json:"month"`
	DaysInMonth  int    `json:"days_in_month"`
	DaysInPeriod int    `json:"days_in_period"`
	Factor       string `json:"factor"`
}

// BreakdownResponse represents a statement pro-rated per month.
type BreakdownResponse struct {
	Statement    StatementResponse    `json:"statement"`
	PeriodDays   int                  `json:"period_days"`
	Months       []MonthShareResponse `json:"months"`
	MonthlyGross string               `json:"monthly_gross"`
	MonthlyNet   string               `json:"monthly_net"`
}

// ToStatementResponse converts a domain RentalStatement entity to a StatementResponse DTO.
func ToStatementResponse(s *entity.RentalStatement) StatementResponse {
	items := make([]CostItemResponse, len(s.CostBreakdown))
	for i, item := range s.CostBreakdown {
		items[i] = CostItemResponse{
			Description: item.Description,
			Amount:      formatAmount(item.Amount, s.Currency),
		}
	}

	return StatementResponse{
		ID:               s.ID.String(),
		PropertyID:       s.PropertyID.String(),
		PeriodStart:      s.PeriodStart.Format("2006-01-02"),
		PeriodEnd:        s.PeriodEnd.Format("2006-01-02"),
		GrossRevenue:     formatAmount(s.GrossRevenue, s.Currency),
		OperatingCosts:   formatAmount(s.OperatingCosts, s.Currency),
		ManagementFee:    formatAmount(s.ManagementFee, s.Currency),
		NetDistributable: formatAmount(s.NetDistributable, s.Currency),
		CostBreakdown:    items,
		Currency:         s.Currency,
		CreatedAt:        s.CreatedAt,
	}
}

// ToStatementListResponse converts statements to a StatementListResponse DTO.
func ToStatementListResponse(statements []*entity.RentalStatement) StatementListResponse {
	items := make([]StatementResponse, len(statements))
	for i, s := range statements {
		items[i] = ToStatementResponse(s)
	}
	return StatementListResponse{Statements: items}
}

// ToBreakdownResponse converts a pro-rated statement to a BreakdownResponse DTO.
func ToBreakdownResponse(output *statement.GetBreakdownOutput) BreakdownResponse {
	months := make([]MonthShareResponse, len(output.Months))
	for i, m := range output.Months {
		months[i] = MonthShareResponse{
			Month:        m.Month.Format("2006-01"),
			DaysInMonth:  m.DaysInMonth,
			DaysInPeriod: m.DaysInPeriod,
			Factor:       m.Factor.String(),
		}
	}

	currency := output.Statement.Currency
	return BreakdownResponse{
		Statement:    ToStatementResponse(output.Statement),
		PeriodDays:   output.PeriodDays,
		Months:       months,
		MonthlyGross: formatAmount(output.MonthlyGross, currency),
		MonthlyNet:   formatAmount(output.MonthlyNet, currency),
	}
}
