package dto

import (
	"time"

	"github.com/estateshare/backend/internal/application/usecase/wallet"
	"github.com/estateshare/backend/internal/domain/entity"
)

// TransactionResponse represents a ledger entry in API responses.
type TransactionResponse struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Amount       string    `json:"amount"`
	Currency     string    `json:"currency"`
	Reference    string    `json:"reference"`
	Status       string    `json:"status"`
	InvestmentID *string   `json:"investment_id,omitempty"`
	PayoutID     *string   `json:"payout_id,omitempty"`
	SettledAt    *string   `json:"settled_at,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// TransactionListResponse represents the caller's ledger history.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// DisplayAmountsResponse is the wallet converted for display.
type DisplayAmountsResponse struct {
	Currency       string        `json:"currency"`
	Balance        MoneyResponse `json:"balance"`
	PendingPayouts MoneyResponse `json:"pending_payouts"`
}

// WalletResponse represents the caller's wallet.
type WalletResponse struct {
	Balance        MoneyResponse           `json:"balance"`
	PendingPayouts MoneyResponse           `json:"pending_payouts"`
	Display        *DisplayAmountsResponse `json:"display,omitempty"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(tx *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:        tx.ID.String(),
		Type:      string(tx.Type),
		Amount:    formatAmount(tx.Amount, tx.Currency),
		Currency:  tx.Currency,
		Reference: tx.Reference,
		Status:    string(tx.Status),
		SettledAt: formatTime(tx.SettledAt),
		CreatedAt: tx.CreatedAt,
	}
	if tx.InvestmentID != nil {
		id := tx.InvestmentID.String()
		response.InvestmentID = &id
	}
	if tx.PayoutID != nil {
		id := tx.PayoutID.String()
		response.PayoutID = &id
	}
	return response
}

// ToTransactionListResponse converts transactions to a TransactionListResponse DTO.
func ToTransactionListResponse(txs []*entity.Transaction) TransactionListResponse {
	items := make([]TransactionResponse, len(txs))
	for i, tx := range txs {
		items[i] = ToTransactionResponse(tx)
	}
	return TransactionListResponse{Transactions: items}
}

// ToWalletResponse converts a wallet lookup to a WalletResponse DTO.
func ToWalletResponse(output *wallet.GetWalletOutput) WalletResponse {
	response := WalletResponse{
		Balance:        ToMoneyResponse(output.Balance),
		PendingPayouts: ToMoneyResponse(output.PendingPayouts),
	}
	if output.Display != nil {
		response.Display = &DisplayAmountsResponse{
			Currency:       output.Display.Currency,
			Balance:        ToMoneyResponse(output.Display.Balance),
			PendingPayouts: ToMoneyResponse(output.Display.PendingPayouts),
		}
	}
	return response
}
