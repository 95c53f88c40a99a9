// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/estateshare/backend/internal/application/adapter"
	"github.com/estateshare/backend/internal/domain/entity"
	domainerror "github.com/estateshare/backend/internal/domain/error"
	"github.com/estateshare/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
// It only ever inserts rows or flips PENDING entries to SETTLED.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new ledger transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create appends a ledger entry.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	err := r.db.WithContext(ctx).Create(model.TransactionFromEntity(transaction)).Error
	if isDuplicateKey(err) {
		return domainerror.ErrDuplicateReference
	}
	return err
}

// FindByReference retrieves an entry by its unique reference.
func (r *transactionRepository) FindByReference(ctx context.Context, reference string) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	err := r.db.WithContext(ctx).Where("reference = ?", reference).First(&transactionModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, err
	}
	return transactionModel.ToEntity(), nil
}

// MarkSettled flips a pending entry to settled. The status guard in the
// WHERE clause keeps settled rows immutable.
func (r *transactionRepository) MarkSettled(ctx context.Context, transaction *entity.Transaction) error {
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("id = ? AND status = ?", transaction.ID, entity.TransactionStatusPending).
		Updates(map[string]interface{}{
			"status":     entity.TransactionStatusSettled,
			"settled_at": transaction.SettledAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionSettled
	}
	return nil
}

// ListByUser returns a user's entries, newest first.
func (r *transactionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	var models []model.TransactionModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	transactions := make([]*entity.Transaction, len(models))
	for i := range models {
		transactions[i] = models[i].ToEntity()
	}
	return transactions, nil
}

// ExistsForProperty reports whether the property has any ledger history.
func (r *transactionRepository) ExistsForProperty(ctx context.Context, propertyID uuid.UUID) (bool, error) {
	db := r.db.WithContext(ctx)

	investmentIDs := db.Model(&model.InvestmentModel{}).Select("id").Where("property_id = ?", propertyID)
	distributionIDs := db.Model(&model.DistributionModel{}).Select("id").Where("property_id = ?", propertyID)
	payoutIDs := db.Model(&model.PayoutModel{}).Select("id").Where("distribution_id IN (?)", distributionIDs)

	var count int64
	err := db.Model(&model.TransactionModel{}).
		Where("investment_id IN (?) OR payout_id IN (?)", investmentIDs, payoutIDs).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Totals recomputes a user's balances from the full history. Sums are done
// in decimal on the application side so no database float arithmetic is involved.
func (r *transactionRepository) Totals(ctx context.Context, userID uuid.UUID, currency string) (*adapter.WalletTotals, error) {
	var models []model.TransactionModel
	err := r.db.WithContext(ctx).
		Select("type", "amount", "status").
		Where("user_id = ? AND currency = ?", userID, currency).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	totals := &adapter.WalletTotals{
		Payouts:        decimal.Zero,
		Investments:    decimal.Zero,
		PendingPayouts: decimal.Zero,
	}
	for _, m := range models {
		switch m.Type {
		case string(entity.TransactionTypePayout):
			totals.Payouts = totals.Payouts.Add(m.Amount)
			if m.Status != string(entity.TransactionStatusSettled) {
				totals.PendingPayouts = totals.PendingPayouts.Add(m.Amount)
			}
		case string(entity.TransactionTypeInvestment):
			totals.Investments = totals.Investments.Add(m.Amount)
		}
	}
	return totals, nil
}
