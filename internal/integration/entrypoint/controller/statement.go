package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/estateshare/backend/internal/application/usecase/statement"
	"github.com/estateshare/backend/internal/integration/entrypoint/dto"
)

// StatementController handles rental statement endpoints.
type StatementController struct {
	createUseCase    *statement.CreateStatementUseCase
	listUseCase      *statement.ListStatementsUseCase
	breakdownUseCase *statement.GetBreakdownUseCase
}

// NewStatementController creates a new statement controller instance.
func NewStatementController(
	createUseCase *statement.CreateStatementUseCase,
	listUseCase *statement.ListStatementsUseCase,
	breakdownUseCase *statement.GetBreakdownUseCase,
) *StatementController {
	return &StatementController{
		createUseCase:    createUseCase,
		listUseCase:      listUseCase,
		breakdownUseCase: breakdownUseCase,
	}
}

// Create handles POST /admin/properties/:id/statements requests.
func (c *StatementController) Create(ctx *gin.Context) {
	propertyID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateStatementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	start, err := time.Parse("2006-01-02", req.PeriodStart)
	if err != nil {
		badRequest(ctx, err)
		return
	}
	end, err := time.Parse("2006-01-02", req.PeriodEnd)
	if err != nil {
		badRequest(ctx, err)
		return
	}

	stmt, err := c.createUseCase.Execute(ctx.Request.Context(), statement.CreateStatementInput{
		PropertyID:       propertyID,
		PeriodStart:      start,
		PeriodEnd:        end,
		GrossRevenue:     req.GrossRevenue,
		OperatingCosts:   req.OperatingCosts,
		ManagementFee:    req.ManagementFee,
		NetDistributable: req.NetDistributable,
		CostBreakdown:    req.ToCostBreakdown(),
		Currency:         req.Currency,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToStatementResponse(stmt))
}

// List handles GET /properties/:id/statements requests.
func (c *StatementController) List(ctx *gin.Context) {
	propertyID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	statements, err := c.listUseCase.Execute(ctx.Request.Context(), propertyID)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToStatementListResponse(statements))
}

// Breakdown handles GET /statements/:id/breakdown requests.
func (c *StatementController) Breakdown(ctx *gin.Context) {
	statementID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), statementID)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToBreakdownResponse(output))
}
