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

// SetRoleInput represents a role change.
type SetRoleInput struct {
	UserID uuid.UUID
	Role   entity.UserRole
}

// SetRoleUseCase changes an investor's role. Existing payouts keep their
// role snapshot until fixed explicitly.
type SetRoleUseCase struct {
	uow adapter.UnitOfWork
}

// NewSetRoleUseCase creates a new SetRoleUseCase instance.
func NewSetRoleUseCase(uow adapter.UnitOfWork) *SetRoleUseCase {
	return &SetRoleUseCase{
		uow: uow,
	}
}

// Execute applies the role.
func (uc *SetRoleUseCase) Execute(ctx context.Context, input SetRoleInput) (*entity.User, error) {
	if !input.Role.IsValid() {
		return nil, domainerror.NewInvestorError(
			domainerror.ErrCodeInvalidInvestorRole,
			fmt.Sprintf("unknown role %q", input.Role),
			domainerror.ErrInvalidInvestorRole,
		)
	}

	repos := uc.uow.Repositories()
	user, err := repos.Users.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, notFound(err)
	}

	previous := user.Role
	user.Role = input.Role
	user.UpdatedAt = time.Now().UTC()
	if err := repos.Users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update investor: %w", err)
	}

	slog.Info("Investor role changed",
		"user_id", user.ID,
		"previous_role", previous,
		"role", user.Role,
	)
	return user, nil
}
