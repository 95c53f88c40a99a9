package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/estateshare/backend/internal/application/usecase/investor"
	"github.com/estateshare/backend/internal/domain/entity"
	"github.com/estateshare/backend/internal/integration/entrypoint/dto"
)

// InvestorController handles investor profile administration.
type InvestorController struct {
	upsertUseCase *investor.UpsertInvestorUseCase
	roleUseCase   *investor.SetRoleUseCase
	kycUseCase    *investor.SetKYCStatusUseCase
}

// NewInvestorController creates a new investor controller instance.
func NewInvestorController(
	upsertUseCase *investor.UpsertInvestorUseCase,
	roleUseCase *investor.SetRoleUseCase,
	kycUseCase *investor.SetKYCStatusUseCase,
) *InvestorController {
	return &InvestorController{
		upsertUseCase: upsertUseCase,
		roleUseCase:   roleUseCase,
		kycUseCase:    kycUseCase,
	}
}

// Upsert handles PUT /admin/investors/:id requests.
func (c *InvestorController) Upsert(ctx *gin.Context) {
	userID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpsertInvestorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	user, err := c.upsertUseCase.Execute(ctx.Request.Context(), investor.UpsertInvestorInput{
		UserID: userID,
		Email:  req.Email,
		Name:   req.Name,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToInvestorResponse(user))
}

// SetRole handles PATCH /admin/investors/:id/role requests.
func (c *InvestorController) SetRole(ctx *gin.Context) {
	userID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.SetRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	user, err := c.roleUseCase.Execute(ctx.Request.Context(), investor.SetRoleInput{
		UserID: userID,
		Role:   entity.UserRole(req.Role),
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToInvestorResponse(user))
}

// SetKYCStatus handles PATCH /admin/investors/:id/kyc requests.
func (c *InvestorController) SetKYCStatus(ctx *gin.Context) {
	userID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.SetKYCStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	user, err := c.kycUseCase.Execute(ctx.Request.Context(), investor.SetKYCStatusInput{
		UserID: userID,
		Status: entity.KYCStatus(req.Status),
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToInvestorResponse(user))
}
