package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/estateshare/backend/internal/application/usecase/distribution"
	"github.com/estateshare/backend/internal/integration/entrypoint/dto"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DistributionController handles the distribution lifecycle endpoints.
type DistributionController struct {
	createUseCase      *distribution.CreateDraftUseCase
	getUseCase         *distribution.GetDistributionUseCase
	approveUseCase     *distribution.ApproveUseCase
	declareUseCase     *distribution.DeclareUseCase
	bulkDeclareUseCase *distribution.BulkDeclareUseCase
	discardUseCase     *distribution.DiscardUseCase
	settleUseCase      *distribution.SettleUseCase
	fixUseCase         *distribution.FixUnderwriterPayoutsUseCase
	exportUseCase      *distribution.ExportScheduleUseCase
	validator          *distribution.Validator
}

// DistributionUseCases groups the use cases behind the distribution endpoints.
type DistributionUseCases struct {
	Create      *distribution.CreateDraftUseCase
	Get         *distribution.GetDistributionUseCase
	Approve     *distribution.ApproveUseCase
	Declare     *distribution.DeclareUseCase
	BulkDeclare *distribution.BulkDeclareUseCase
	Discard     *distribution.DiscardUseCase
	Settle      *distribution.SettleUseCase
	Fix         *distribution.FixUnderwriterPayoutsUseCase
	Export      *distribution.ExportScheduleUseCase
	Validator   *distribution.Validator
}

// NewDistributionController creates a new distribution controller instance.
func NewDistributionController(uc DistributionUseCases) *DistributionController {
	return &DistributionController{
		createUseCase:      uc.Create,
		getUseCase:         uc.Get,
		approveUseCase:     uc.Approve,
		declareUseCase:     uc.Declare,
		bulkDeclareUseCase: uc.BulkDeclare,
		discardUseCase:     uc.Discard,
		settleUseCase:      uc.Settle,
		fixUseCase:         uc.Fix,
		exportUseCase:      uc.Export,
		validator:          uc.Validator,
	}
}

// Create handles POST /admin/distributions requests.
func (c *DistributionController) Create(ctx *gin.Context) {
	var req dto.CreateDistributionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), distribution.CreateDraftInput{
		PropertyID:        uuid.MustParse(req.PropertyID),
		RentalStatementID: uuid.MustParse(req.RentalStatementID),
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToDistributionResponse(output.Distribution, output.Payouts))
}

// Get handles GET /distributions/:id requests.
func (c *DistributionController) Get(ctx *gin.Context) {
	distributionID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), distributionID)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToDistributionResponse(output.Distribution, output.Payouts))
}

// Approve handles POST /admin/distributions/:id/approve requests.
func (c *DistributionController) Approve(ctx *gin.Context) {
	distributionID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	dist, err := c.approveUseCase.Execute(ctx.Request.Context(), distributionID)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToDistributionResponse(dist, nil))
}

// Declare handles POST /admin/distributions/:id/declare requests.
func (c *DistributionController) Declare(ctx *gin.Context) {
	distributionID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	output, err := c.declareUseCase.Execute(ctx.Request.Context(), distribution.DeclareInput{
		DistributionID: distributionID,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToDeclareResponse(output))
}

// BulkDeclare handles POST /admin/distributions/bulk-declare requests.
// Each distribution succeeds or fails on its own.
func (c *DistributionController) BulkDeclare(ctx *gin.Context) {
	var req dto.BulkDeclareRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	ids := make([]uuid.UUID, len(req.DistributionIDs))
	for i, raw := range req.DistributionIDs {
		ids[i] = uuid.MustParse(raw)
	}

	results := c.bulkDeclareUseCase.Execute(ctx.Request.Context(), ids)

	response := dto.BulkDeclareResponse{Results: make([]dto.BulkDeclareItemResponse, len(results))}
	for i, r := range results {
		item := dto.BulkDeclareItemResponse{DistributionID: r.DistributionID.String()}
		if r.Err != nil {
			response.Failed++
			item.Error = r.Err.Error()
			if code, message, _, ok := codedError(r.Err); ok {
				item.Code, item.Error = code, message
			}
		} else {
			response.Declared++
			item.Status = string(r.Status)
		}
		response.Results[i] = item
	}
	ctx.JSON(http.StatusOK, response)
}

// Discard handles DELETE /admin/distributions/:id requests.
func (c *DistributionController) Discard(ctx *gin.Context) {
	distributionID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.discardUseCase.Execute(ctx.Request.Context(), distributionID); err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Settle handles POST /admin/distributions/:id/settle requests.
func (c *DistributionController) Settle(ctx *gin.Context) {
	distributionID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	output, err := c.settleUseCase.Execute(ctx.Request.Context(), distributionID)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SettleResponse{
		Distribution: dto.ToDistributionResponse(output.Distribution, nil),
		Credited:     output.Credited,
	})
}

// FixUnderwriterPayouts handles POST /admin/distributions/:id/fix-underwriter-payouts requests.
func (c *DistributionController) FixUnderwriterPayouts(ctx *gin.Context) {
	distributionID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	output, err := c.fixUseCase.Execute(ctx.Request.Context(), distributionID)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FixUnderwriterPayoutsResponse{
		Fixed:        output.Fixed,
		Distribution: dto.ToDistributionResponse(output.Distribution, output.Payouts),
	})
}

// Validate handles GET /admin/distributions/:id/validation requests.
func (c *DistributionController) Validate(ctx *gin.Context) {
	distributionID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	report, err := c.validator.ValidateDistribution(ctx.Request.Context(), distributionID)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToValidationReportResponse(report))
}

// ValidatePayout handles GET /admin/payouts/:id/validation requests.
func (c *DistributionController) ValidatePayout(ctx *gin.Context) {
	payoutID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	report, err := c.validator.ValidatePayout(ctx.Request.Context(), payoutID)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToValidationReportResponse(report))
}

// Export handles GET /admin/distributions/:id/export requests.
func (c *DistributionController) Export(ctx *gin.Context) {
	distributionID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), distributionID)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", "attachment; filename="+output.FileName)
	ctx.Data(http.StatusOK, xlsxContentType, output.Content)
}
