package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/estateshare/backend/internal/domain/error"
	"github.com/estateshare/backend/internal/integration/entrypoint/dto"
	"github.com/estateshare/backend/internal/integration/entrypoint/middleware"
)

// codedError extracts the code and message of any ledger domain error.
func codedError(err error) (code string, message string, issues []string, ok bool) {
	var (
		shareErr     *domainerror.ShareError
		distErr      *domainerror.DistributionError
		walletErr    *domainerror.WalletError
		propertyErr  *domainerror.PropertyError
		statementErr *domainerror.StatementError
		investorErr  *domainerror.InvestorError
	)

	switch {
	case errors.As(err, &distErr):
		return string(distErr.Code), distErr.Message, distErr.Issues, true
	case errors.As(err, &shareErr):
		return string(shareErr.Code), shareErr.Message, nil, true
	case errors.As(err, &walletErr):
		return string(walletErr.Code), walletErr.Message, nil, true
	case errors.As(err, &propertyErr):
		return string(propertyErr.Code), propertyErr.Message, nil, true
	case errors.As(err, &statementErr):
		return string(statementErr.Code), statementErr.Message, nil, true
	case errors.As(err, &investorErr):
		return string(investorErr.Code), investorErr.Message, nil, true
	}
	return "", "", nil, false
}

// statusForCode maps the category digits of a ledger error code
// (PREFIX-CCNNNN) to an HTTP status.
func statusForCode(code string) int {
	_, rest, found := strings.Cut(code, "-")
	if !found || len(rest) < 2 {
		return http.StatusInternalServerError
	}
	switch rest[:2] {
	case "01":
		return http.StatusBadRequest
	case "02":
		return http.StatusConflict
	case "03":
		return http.StatusUnprocessableEntity
	case "04":
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// handleLedgerError writes the response for a failed use case.
func handleLedgerError(ctx *gin.Context, err error) {
	if code, message, issues, ok := codedError(err); ok {
		ctx.JSON(statusForCode(code), dto.ErrorResponse{
			Error:  message,
			Code:   code,
			Issues: issues,
		})
		return
	}

	slog.Error("Unhandled ledger error",
		"method", ctx.Request.Method,
		"path", ctx.FullPath(),
		"error", err,
	)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

func pathID(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func currentUser(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

func badRequest(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid request body: " + err.Error(),
	})
}
