package dto

import (
	"time"

	"github.com/estateshare/backend/internal/application/usecase/distribution"
	"github.com/estateshare/backend/internal/domain/entity"
)

// CreateDistributionRequest represents the request body for drafting a distribution.
type CreateDistributionRequest struct {
	PropertyID        string `json:"property_id" binding:"required,uuid"`
	RentalStatementID string `json:"rental_statement_id" binding:"required,uuid"`
}

// BulkDeclareRequest represents the request body for bulk declaration.
type BulkDeclareRequest struct {
	DistributionIDs []string `json:"distribution_ids" binding:"required,min=1,max=100,dive,uuid"`
}

// MarkPayoutFailedRequest represents the request body for a failed payout.
type MarkPayoutFailedRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// PayoutResponse represents a payout in API responses.
type PayoutResponse struct {
	ID             string  `json:"id"`
	DistributionID string  `json:"distribution_id"`
	UserID         string  `json:"user_id"`
	SharesAtRecord int64   `json:"shares_at_record"`
	InvestorRole   string  `json:"investor_role"`
	Amount         string  `json:"amount"`
	Currency       string  `json:"currency"`
	Status         string  `json:"status"`
	TransactionID  *string `json:"transaction_id,omitempty"`
	FailureReason  string  `json:"failure_reason,omitempty"`
	PaidAt         *string `json:"paid_at,omitempty"`
}

// DistributionResponse represents a distribution in API responses.
type DistributionResponse struct {
	ID                string           `json:"id"`
	PropertyID        string           `json:"property_id"`
	RentalStatementID string           `json:"rental_statement_id"`
	Status            string           `json:"status"`
	TotalDistributed  string           `json:"total_distributed"`
	Currency          string           `json:"currency"`
	Warnings          []string         `json:"warnings"`
	DeclaredAt        *string          `json:"declared_at,omitempty"`
	PaidAt            *string          `json:"paid_at,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	Payouts           []PayoutResponse `json:"payouts,omitempty"`
}

// ValidationReportResponse represents a validator report.
type ValidationReportResponse struct {
	IsValid             bool     `json:"is_valid"`
	Errors              []string `json:"errors"`
	Warnings            []string `json:"warnings"`
	UnverifiedInvestors []string `json:"unverified_investors"`
}

// DeclareResponse represents a declared distribution.
type DeclareResponse struct {
	Distribution DistributionResponse     `json:"distribution"`
	Report       ValidationReportResponse `json:"report"`
	Transactions int                      `json:"transactions_created"`
}

// FixUnderwriterPayoutsResponse represents the result of refreshing payout roles.
type FixUnderwriterPayoutsResponse struct {
	Fixed        int                  `json:"fixed"`
	Distribution DistributionResponse `json:"distribution"`
}

// SettleResponse represents the result of settling a distribution.
type SettleResponse struct {
	Distribution DistributionResponse `json:"distribution"`
	Credited     int                  `json:"credited"`
}

// BulkDeclareItemResponse is the outcome for one distribution.
type BulkDeclareItemResponse struct {
	DistributionID string `json:"distribution_id"`
	Status         string `json:"status,omitempty"`
	Error          string `json:"error,omitempty"`
	Code           string `json:"code,omitempty"`
}

// BulkDeclareResponse represents the outcome of a bulk declaration.
type BulkDeclareResponse struct {
	Declared int                       `json:"declared"`
	Failed   int                       `json:"failed"`
	Results  []BulkDeclareItemResponse `json:"results"`
}

// CreditWalletResponse represents a credited payout.
type CreditWalletResponse struct {
	Payout       PayoutResponse       `json:"payout"`
	Transaction  TransactionResponse  `json:"transaction"`
	Distribution DistributionResponse `json:"distribution"`
}

// ToPayoutResponse converts a domain Payout entity to a PayoutResponse DTO.
func ToPayoutResponse(p *entity.Payout) PayoutResponse {
	response := PayoutResponse{
		ID:             p.ID.String(),
		DistributionID: p.DistributionID.String(),
		UserID:         p.UserID.String(),
		SharesAtRecord: p.SharesAtRecord,
		InvestorRole:   string(p.InvestorRole),
		Amount:         formatAmount(p.Amount, p.Currency),
		Currency:       p.Currency,
		Status:         string(p.Status),
		FailureReason:  p.FailureReason,
		PaidAt:         formatTime(p.PaidAt),
	}
	if p.TransactionID != nil {
		txID := p.TransactionID.String()
		response.TransactionID = &txID
	}
	return response
}

// ToDistributionResponse converts a distribution and optionally its payouts
// to a DistributionResponse DTO.
func ToDistributionResponse(d *entity.Distribution, payouts []*entity.Payout) DistributionResponse {
	warnings := d.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	response := DistributionResponse{
		ID:                d.ID.String(),
		PropertyID:        d.PropertyID.String(),
		RentalStatementID: d.RentalStatementID.String(),
		Status:            string(d.Status),
		TotalDistributed:  formatAmount(d.TotalDistributed, d.Currency),
		Currency:          d.Currency,
		Warnings:          warnings,
		DeclaredAt:        formatTime(d.DeclaredAt),
		PaidAt:            formatTime(d.PaidAt),
		CreatedAt:         d.CreatedAt,
	}
	if len(payouts) > 0 {
		response.Payouts = make([]PayoutResponse, len(payouts))
		for i, p := range payouts {
			response.Payouts[i] = ToPayoutResponse(p)
		}
	}
	return response
}

// ToValidationReportResponse converts a validator report to its DTO.
func ToValidationReportResponse(r *distribution.ValidationReport) ValidationReportResponse {
	response := ValidationReportResponse{
		IsValid:             r.IsValid,
		Errors:              nonNil(r.Errors),
		Warnings:            nonNil(r.Warnings),
		UnverifiedInvestors: make([]string, len(r.UnverifiedInvestors)),
	}
	for i, id := range r.UnverifiedInvestors {
		response.UnverifiedInvestors[i] = id.String()
	}
	return response
}

// ToDeclareResponse converts a declaration result to a DeclareResponse DTO.
func ToDeclareResponse(output *distribution.DeclareOutput) DeclareResponse {
	return DeclareResponse{
		Distribution: ToDistributionResponse(output.Distribution, output.Payouts),
		Report:       ToValidationReportResponse(output.Report),
		Transactions: len(output.Transactions),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
