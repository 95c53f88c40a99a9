package dto

import (
	"time"

	"github.com/estateshare/backend/internal/application/usecase/investment"
	"github.com/estateshare/backend/internal/domain/entity"
)

// PurchaseSharesRequest represents the request body for a share purchase.
type PurchaseSharesRequest struct {
	Shares int64 `json:"shares"`
}

// CancelInvestmentRequest represents the request body for cancelling an investment.
type CancelInvestmentRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// InvestmentResponse represents an investment in API responses.
type InvestmentResponse struct {
	ID            string    `json:"id"`
	PropertyID    string    `json:"property_id"`
	Shares        int64     `json:"shares"`
	PricePerShare string    `json:"price_per_share"`
	TotalAmount   string    `json:"total_amount"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// PurchaseResponse represents the result of a share purchase.
type PurchaseResponse struct {
	Investment      InvestmentResponse  `json:"investment"`
	Transaction     TransactionResponse `json:"transaction"`
	AvailableShares int64               `json:"available_shares"`
}

// InvestmentListResponse represents the caller's investments.
type InvestmentListResponse struct {
	Investments []InvestmentResponse `json:"investments"`
}

// ToInvestmentResponse converts a domain Investment entity to an InvestmentResponse DTO.
func ToInvestmentResponse(inv *entity.Investment) InvestmentResponse {
	return InvestmentResponse{
		ID:            inv.ID.String(),
		PropertyID:    inv.PropertyID.String(),
		Shares:        inv.Shares,
		PricePerShare: inv.PricePerShareAtPurchase.String(),
		TotalAmount:   formatAmount(inv.TotalAmount, inv.Currency),
		Currency:      inv.Currency,
		Status:        string(inv.Status),
		CreatedAt:     inv.CreatedAt,
	}
}

// ToPurchaseResponse converts a purchase result to a PurchaseResponse DTO.
func ToPurchaseResponse(output *investment.PurchaseSharesOutput) PurchaseResponse {
	return PurchaseResponse{
		Investment:      ToInvestmentResponse(output.Investment),
		Transaction:     ToTransactionResponse(output.Transaction),
		AvailableShares: output.AvailableShares,
	}
}

// ToInvestmentListResponse converts investments to an InvestmentListResponse DTO.
func ToInvestmentListResponse(investments []*entity.Investment) InvestmentListResponse {
	items := make([]InvestmentResponse, len(investments))
	for i, inv := range investments {
		items[i] = ToInvestmentResponse(inv)
	}
	return InvestmentListResponse{Investments: items}
}
