package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/estateshare/backend/internal/application/usecase/wallet"
	"github.com/estateshare/backend/internal/integration/entrypoint/dto"
)

// WalletController handles wallet and payout crediting endpoints.
type WalletController struct {
	getUseCase          *wallet.GetWalletUseCase
	transactionsUseCase *wallet.ListTransactionsUseCase
	creditUseCase       *wallet.CreditWalletUseCase
	markFailedUseCase   *wallet.MarkPayoutFailedUseCase
}

// NewWalletController creates a new wallet controller instance.
func NewWalletController(
	getUseCase *wallet.GetWalletUseCase,
	transactionsUseCase *wallet.ListTransactionsUseCase,
	creditUseCase *wallet.CreditWalletUseCase,
	markFailedUseCase *wallet.MarkPayoutFailedUseCase,
) *WalletController {
	return &WalletController{
		getUseCase:          getUseCase,
		transactionsUseCase: transactionsUseCase,
		creditUseCase:       creditUseCase,
		markFailedUseCase:   markFailedUseCase,
	}
}

// Get handles GET /wallet requests. The optional currency query converts
// the figures for display.
func (c *WalletController) Get(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), wallet.GetWalletInput{
		UserID:          userID,
		DisplayCurrency: ctx.Query("currency"),
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToWalletResponse(output))
}

// Transactions handles GET /wallet/transactions requests.
func (c *WalletController) Transactions(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	txs, err := c.transactionsUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(txs))
}

// Credit handles POST /admin/payouts/:id/credit requests.
func (c *WalletController) Credit(ctx *gin.Context) {
	payoutID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	output, err := c.creditUseCase.Execute(ctx.Request.Context(), payoutID)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CreditWalletResponse{
		Payout:       dto.ToPayoutResponse(output.Payout),
		Transaction:  dto.ToTransactionResponse(output.Transaction),
		Distribution: dto.ToDistributionResponse(output.Distribution, nil),
	})
}

// MarkFailed handles POST /admin/payouts/:id/fail requests.
func (c *WalletController) MarkFailed(ctx *gin.Context) {
	payoutID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.MarkPayoutFailedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	payout, err := c.markFailedUseCase.Execute(ctx.Request.Context(), wallet.MarkPayoutFailedInput{
		PayoutID: payoutID,
		Reason:   req.Reason,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToPayoutResponse(payout))
}
