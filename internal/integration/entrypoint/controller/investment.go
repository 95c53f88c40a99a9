package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/estateshare/backend/internal/application/usecase/investment"
	"github.com/estateshare/backend/internal/integration/entrypoint/dto"
	"github.com/estateshare/backend/internal/integration/entrypoint/middleware"
)

// InvestmentController handles share purchase endpoints.
type InvestmentController struct {
	purchaseUseCase *investment.PurchaseSharesUseCase
	listUseCase     *investment.ListInvestmentsUseCase
	cancelUseCase   *investment.CancelInvestmentUseCase
}

// NewInvestmentController creates a new investment controller instance.
func NewInvestmentController(
	purchaseUseCase *investment.PurchaseSharesUseCase,
	listUseCase *investment.ListInvestmentsUseCase,
	cancelUseCase *investment.CancelInvestmentUseCase,
) *InvestmentController {
	return &InvestmentController{
		purchaseUseCase: purchaseUseCase,
		listUseCase:     listUseCase,
		cancelUseCase:   cancelUseCase,
	}
}

// Purchase handles POST /properties/:id/purchases requests.
func (c *InvestmentController) Purchase(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	propertyID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.PurchaseSharesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	email, _ := middleware.GetUserEmailFromContext(ctx)
	output, err := c.purchaseUseCase.Execute(ctx.Request.Context(), investment.PurchaseSharesInput{
		UserID:     userID,
		Email:      email,
		PropertyID: propertyID,
		Shares:     req.Shares,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToPurchaseResponse(output))
}

// List handles GET /investments requests.
func (c *InvestmentController) List(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	investments, err := c.listUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToInvestmentListResponse(investments))
}

// Cancel handles POST /admin/investments/:id/cancel requests.
func (c *InvestmentController) Cancel(ctx *gin.Context) {
	actorID, ok := currentUser(ctx)
	if !ok {
		return
	}
	investmentID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.CancelInvestmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	inv, err := c.cancelUseCase.Execute(ctx.Request.Context(), investment.CancelInvestmentInput{
		InvestmentID: investmentID,
		ActorID:      actorID,
		Reason:       req.Reason,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToInvestmentResponse(inv))
}
