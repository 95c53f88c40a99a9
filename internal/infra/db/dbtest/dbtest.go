// Package dbtest opens throwaway in-memory ledger databases and seeds
// fixtures for tests.
package dbtest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/estateshare/backend/internal/application/adapter"
	"github.com/estateshare/backend/internal/domain/entity"
	"github.com/estateshare/backend/internal/infra/db"
	"github.com/estateshare/backend/internal/integration/persistence"
)

// Open returns a migrated database private to the test.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	database, err := db.NewSQLiteConnection(dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.AutoMigrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	return database.DB()
}

// NewUnitOfWork returns a unit of work over a fresh database.
func NewUnitOfWork(t testing.TB) adapter.UnitOfWork {
	t.Helper()
	return persistence.NewUnitOfWork(Open(t), "")
}

// Property stores an OPEN NGN property.
func Property(t testing.TB, uow adapter.UnitOfWork, totalShares int64, pricePerShare string) *entity.Property {
	t.Helper()

	p := entity.NewProperty("Property "+uuid.NewString()[:8], totalShares, decimal.RequireFromString(pricePerShare), "NGN")
	if err := uow.Repositories().Properties.Create(context.Background(), p); err != nil {
		t.Fatalf("create property: %v", err)
	}
	return p
}

// Investor stores a profile with the given role and KYC state.
func Investor(t testing.TB, uow adapter.UnitOfWork, role entity.UserRole, kyc entity.KYCStatus) *entity.User {
	t.Helper()

	id := uuid.New()
	u := entity.NewUser(id, id.String()[:8]+"@example.com", "Investor "+id.String()[:4])
	u.Role = role
	u.KYCStatus = kyc

	if err := uow.Repositories().Users.Upsert(context.Background(), u); err != nil {
		t.Fatalf("upsert investor: %v", err)
	}
	return u
}

// Investment stores a CONFIRMED investment and its ledger entry.
func Investment(t testing.TB, uow adapter.UnitOfWork, userID uuid.UUID, property *entity.Property, shares int64) *entity.Investment {
	t.Helper()

	inv := entity.NewInvestment(userID, property, shares)
	repos := uow.Repositories()
	if err := repos.Investments.Create(context.Background(), inv); err != nil {
		t.Fatalf("create investment: %v", err)
	}
	if err := repos.Transactions.Create(context.Background(), entity.NewInvestmentTransaction(inv)); err != nil {
		t.Fatalf("create investment transaction: %v", err)
	}
	return inv
}

// Statement stores a January 2024 statement with a consistent net.
func Statement(t testing.TB, uow adapter.UnitOfWork, propertyID uuid.UUID, gross, costs, fee string) *entity.RentalStatement {
	t.Helper()

	s := &entity.RentalStatement{
		ID:             uuid.New(),
		PropertyID:     propertyID,
		PeriodStart:    time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:      time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
		GrossRevenue:   decimal.RequireFromString(gross),
		OperatingCosts: decimal.RequireFromString(costs),
		ManagementFee:  decimal.RequireFromString(fee),
		Currency:       "NGN",
		CreatedAt:      time.Now().UTC(),
	}
	s.NetDistributable = s.ComputedNet()

	if err := uow.Repositories().Statements.Create(context.Background(), s); err != nil {
		t.Fatalf("create statement: %v", err)
	}
	return s
}
