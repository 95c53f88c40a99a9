package investor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/estateshare/backend/internal/application/adapter"
	"github.com/estateshare/backend/internal/domain/entity"
	domainerror "github.com/estateshare/backend/internal/domain/error"
)

// SetKYCStatusInput represents a KYC review outcome.
type SetKYCStatusInput struct {
	UserID uuid.UUID
	Status entity.KYCStatus
}

// SetKYCStatusUseCase records a KYC decision.
type SetKYCStatusUseCase struct {
	uow adapter.UnitOfWork
}

// NewSetKYCStatusUseCase creates a new SetKYCStatusUseCase instance.
func NewSetKYCStatusUseCase(uow adapter.UnitOfWork) *SetKYCStatusUseCase {
	return &SetKYCStatusUseCase{
		uow: uow,
	}
}

// Execute applies the status.
func (uc *SetKYCStatusUseCase) Execute(ctx context.Context, input SetKYCStatusInput) (*entity.User, error) {
	if !input.Status.IsValid() {
		return nil, domainerror.NewInvestorError(
			domainerror.ErrCodeInvalidKYCStatus,
			fmt.Sprintf("unknown kyc status %q", input.Status),
			domainerror.ErrInvalidKYCStatus,
		)
	}

	repos := uc.uow.Repositories()
	user, err := repos.Users.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, notFound(err)
	}

	user.KYCStatus = input.Status
	user.UpdatedAt = time.Now().UTC()
	if err := repos.Users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update investor: %w", err)
	}

	slog.Info("Investor KYC status changed", "user_id", user.ID, "kyc_status", user.KYCStatus)
	return user, nil
}
