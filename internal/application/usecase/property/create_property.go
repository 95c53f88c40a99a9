// Package property contains property administration use cases.
package property

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/estateshare/backend/internal/application/adapter"
	"github.com/estateshare/backend/internal/domain/entity"
	domainerror "github.com/estateshare/backend/internal/domain/error"
	"github.com/estateshare/backend/internal/domain/valueobject"
)

// CreatePropertyInput represents the input for listing a new property.
type CreatePropertyInput struct {
	Name          string
	TotalShares   int64
	PricePerShare decimal.Decimal
	Currency      string
}

// CreatePropertyUseCase handles property creation.
type CreatePropertyUseCase struct {
	uow             adapter.UnitOfWork
	defaultCurrency string
}

// NewCreatePropertyUseCase creates a new CreatePropertyUseCase instance.
func NewCreatePropertyUseCase(uow adapter.UnitOfWork, defaultCurrency string) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{
		uow:             uow,
		defaultCurrency: defaultCurrency,
	}
}

// Execute validates and stores a new OPEN property.
func (uc *CreatePropertyUseCase) Execute(ctx context.Context, input CreatePropertyInput) (*entity.Property, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || utf8.RuneCountInString(name) > 255 {
		return nil, domainerror.NewPropertyError(
			domainerror.ErrCodeInvalidPropertyName,
			"name is required and must be at most 255 characters",
			domainerror.ErrInvalidPropertyName,
		)
	}

	if input.TotalShares < 1 {
		return nil, domainerror.NewPropertyError(
			domainerror.ErrCodeInvalidTotalShares,
			"total shares must be at least 1",
			domainerror.ErrInvalidTotalShares,
		)
	}

	code := input.Currency
	if code == "" {
		code = uc.defaultCurrency
	}
	currency, err := valueobject.NormalizeCurrency(code)
	if err != nil {
		return nil, domainerror.NewPropertyError(
			domainerror.ErrCodeInvalidCurrency,
			fmt.Sprintf("unknown currency %q", code),
			err,
		)
	}

	price := valueobject.NewMoney(input.PricePerShare, currency)
	if !price.IsPositive() {
		return nil, domainerror.NewPropertyError(
			domainerror.ErrCodeInvalidPricePerShare,
			"price per share must be positive",
			domainerror.ErrInvalidPricePerShare,
		)
	}
	if _, err := price.MinorUnits(); err != nil {
		return nil, domainerror.NewPropertyError(
			domainerror.ErrCodeInvalidPricePerShare,
			"price per share has more precision than the currency allows",
			err,
		)
	}

	property := entity.NewProperty(name, input.TotalShares, input.PricePerShare, currency)
	if err := uc.uow.Repositories().Properties.Create(ctx, property); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	slog.Info("Property created",
		"property_id", property.ID,
		"total_shares", property.TotalShares,
		"price_per_share", price.Format(),
	)

	return property, nil
}
