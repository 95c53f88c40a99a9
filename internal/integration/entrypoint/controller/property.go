package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/estateshare/backend/internal/application/usecase/investment"
	"github.com/estateshare/backend/internal/application/usecase/property"
	"github.com/estateshare/backend/internal/domain/entity"
	"github.com/estateshare/backend/internal/integration/entrypoint/dto"
)

// PropertyController handles property catalogue endpoints.
type PropertyController struct {
	listUseCase         *property.ListPropertiesUseCase
	availabilityUseCase *investment.GetAvailabilityUseCase
	createUseCase       *property.CreatePropertyUseCase
	setStatusUseCase    *property.SetPropertyStatusUseCase
	deleteUseCase       *property.DeletePropertyUseCase
}

// NewPropertyController creates a new property controller instance.
func NewPropertyController(
	listUseCase *property.ListPropertiesUseCase,
	availabilityUseCase *investment.GetAvailabilityUseCase,
	createUseCase *property.CreatePropertyUseCase,
	setStatusUseCase *property.SetPropertyStatusUseCase,
	deleteUseCase *property.DeletePropertyUseCase,
) *PropertyController {
	return &PropertyController{
		listUseCase:         listUseCase,
		availabilityUseCase: availabilityUseCase,
		createUseCase:       createUseCase,
		setStatusUseCase:    setStatusUseCase,
		deleteUseCase:       deleteUseCase,
	}
}

// List handles GET /properties requests.
func (c *PropertyController) List(ctx *gin.Context) {
	listings, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToPropertyListResponse(listings))
}

// Availability handles GET /properties/:id/availability requests.
func (c *PropertyController) Availability(ctx *gin.Context) {
	propertyID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	output, err := c.availabilityUseCase.Execute(ctx.Request.Context(), propertyID)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToAvailabilityResponse(output))
}

// Create handles POST /admin/properties requests.
func (c *PropertyController) Create(ctx *gin.Context) {
	var req dto.CreatePropertyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	p, err := c.createUseCase.Execute(ctx.Request.Context(), property.CreatePropertyInput{
		Name:          req.Name,
		TotalShares:   req.TotalShares,
		PricePerShare: req.PricePerShare,
		Currency:      req.Currency,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToPropertyResponse(p))
}

// SetStatus handles PATCH /admin/properties/:id/status requests.
func (c *PropertyController) SetStatus(ctx *gin.Context) {
	propertyID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.SetPropertyStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	p, err := c.setStatusUseCase.Execute(ctx.Request.Context(), property.SetPropertyStatusInput{
		PropertyID: propertyID,
		Status:     entity.PropertyStatus(req.Status),
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToPropertyResponse(p))
}

// Delete handles DELETE /admin/properties/:id requests.
func (c *PropertyController) Delete(ctx *gin.Context) {
	propertyID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), propertyID); err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
