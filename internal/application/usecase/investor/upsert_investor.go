// Package investor contains investor profile use cases. Profiles mirror
// the auth service's users and add the ledger's role and KYC state.
package investor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/estateshare/backend/internal/application/adapter"
	"github.com/estateshare/backend/internal/domain/entity"
	domainerror "github.com/estateshare/backend/internal/domain/error"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func profileValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// UpsertInvestorInput represents a profile sync from the auth service.
type UpsertInvestorInput struct {
	UserID uuid.UUID
	Email  string `validate:"required,email,max=255"`
	Name   string `validate:"required,max=255"`
}

// UpsertInvestorUseCase creates or refreshes an investor profile. Role and
// KYC state are left untouched on refresh.
type UpsertInvestorUseCase struct {
	uow adapter.UnitOfWork
}

// NewUpsertInvestorUseCase creates a new UpsertInvestorUseCase instance.
func NewUpsertInvestorUseCase(uow adapter.UnitOfWork) *UpsertInvestorUseCase {
	return &UpsertInvestorUseCase{
		uow: uow,
	}
}

// Execute upserts the profile and returns its stored state.
func (uc *UpsertInvestorUseCase) Execute(ctx context.Context, input UpsertInvestorInput) (*entity.User, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)

	if err := profileValidator().Struct(input); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 && fieldErrs[0].Field() == "Name" {
			return nil, domainerror.NewInvestorError(
				domainerror.ErrCodeInvalidInvestorName,
				"name is required and must be at most 255 characters",
				err,
			)
		}
		return nil, domainerror.NewInvestorError(
			domainerror.ErrCodeInvalidInvestorEmail,
			"a valid email is required",
			errors.Join(domainerror.ErrInvalidInvestorEmail, err),
		)
	}

	repos := uc.uow.Repositories()
	if err := repos.Users.Upsert(ctx, entity.NewUser(input.UserID, input.Email, input.Name)); err != nil {
		return nil, fmt.Errorf("failed to upsert investor: %w", err)
	}

	user, err := repos.Users.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load investor: %w", err)
	}

	slog.Info("Investor profile synced", "user_id", user.ID)
	return user, nil
}

func notFound(err error) error {
	if errors.Is(err, domainerror.ErrInvestorNotFound) {
		return domainerror.NewInvestorError(
			domainerror.ErrCodeInvestorNotFound,
			"investor not found",
			err,
		)
	}
	return fmt.Errorf("failed to load investor: %w", err)
}
