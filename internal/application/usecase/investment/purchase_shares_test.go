package investment

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/estateshare/backend/internal/domain/entity"
	domainerror "github.com/estateshare/backend/internal/domain/error"
	"github.com/estateshare/backend/internal/infra/db/dbtest"
	"github.com/estateshare/backend/internal/integration/adapters"
)

func shareErrorCode(err error) domainerror.ShareErrorCode {
	var shareErr *domainerror.ShareError
	if errors.As(err, &shareErr) {
		return shareErr.Code
	}
	return ""
}

func TestPurchaseShares(t *testing.T) {
	ctx := context.Background()
	uow := dbtest.NewUnitOfWork(t)
	open := dbtest.Property(t, uow, 100, "50.00")

	closed := dbtest.Property(t, uow, 100, "50.00")
	closed.Status = entity.PropertyStatusClosed
	if err := uow.Repositories().Properties.Update(ctx, closed); err != nil {
		t.Fatalf("close property: %v", err)
	}

	uc := NewPurchaseSharesUseCase(uow, nil)
	buyer := uuid.New()

	tests := []struct {
		name       string
		propertyID uuid.UUID
		shares     int64
		wantCode   domainerror.ShareErrorCode
	}{
		{name: "zero shares", propertyID: open.ID, shares: 0, wantCode: domainerror.ErrCodeInvalidShareCount},
		{name: "negative shares", propertyID: open.ID, shares: -3, wantCode: domainerror.ErrCodeInvalidShareCount},
		{name: "unknown property", propertyID: uuid.New(), shares: 1, wantCode: domainerror.ErrCodeSharePropertyNotFound},
		{name: "closed property", propertyID: closed.ID, shares: 1, wantCode: domainerror.ErrCodePropertyClosed},
		{name: "more than available", propertyID: open.ID, shares: 101, wantCode: domainerror.ErrCodeInsufficientShares},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, PurchaseSharesInput{UserID: buyer, PropertyID: tt.propertyID, Shares: tt.shares})
			if got := shareErrorCode(err); got != tt.wantCode {
				t.Fatalf("expected %s, got %v", tt.wantCode, err)
			}
		})
	}

	t.Run("rejections write nothing", func(t *testing.T) {
		investments, err := uow.Repositories().Investments.ListByUser(ctx, buyer)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(investments) != 0 {
			t.Errorf("expected no investments, got %d", len(investments))
		}
	})

	t.Run("successful purchase", func(t *testing.T) {
		out, err := uc.Execute(ctx, PurchaseSharesInput{
			UserID:     buyer,
			Email:      "ada@example.com",
			PropertyID: open.ID,
			Shares:     10,
		})
		if err != nil {
			t.Fatalf("purchase: %v", err)
		}

		if out.Investment.Status != entity.InvestmentStatusConfirmed {
			t.Errorf("expected CONFIRMED, got %s", out.Investment.Status)
		}
		if !out.Investment.TotalAmount.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected total 500, got %s", out.Investment.TotalAmount)
		}
		if out.AvailableShares != 90 {
			t.Errorf("expected 90 available, got %d", out.AvailableShares)
		}

		entry, err := uow.Repositories().Transactions.FindByReference(ctx, entity.InvestmentReference(out.Investment.ID))
		if err != nil {
			t.Fatalf("find ledger entry: %v", err)
		}
		if entry.Status != entity.TransactionStatusSettled || !entry.Amount.Equal(decimal.NewFromInt(500)) {
			t.Errorf("unexpected ledger entry %+v", entry)
		}

		profile, err := uow.Repositories().Users.FindByID(ctx, buyer)
		if err != nil {
			t.Fatalf("expected investor profile to be created: %v", err)
		}
		if profile.Name != "ada" || profile.Role != entity.UserRoleInvestor {
			t.Errorf("unexpected profile %+v", profile)
		}
	})

	t.Run("buying the remainder exactly", func(t *testing.T) {
		out, err := uc.Execute(ctx, PurchaseSharesInput{UserID: uuid.New(), PropertyID: open.ID, Shares: 90})
		if err != nil {
			t.Fatalf("purchase: %v", err)
		}
		if out.AvailableShares != 0 {
			t.Errorf("expected sold out, got %d", out.AvailableShares)
		}

		_, err = uc.Execute(ctx, PurchaseSharesInput{UserID: uuid.New(), PropertyID: open.ID, Shares: 1})
		if got := shareErrorCode(err); got != domainerror.ErrCodeInsufficientShares {
			t.Errorf("expected insufficient shares, got %v", err)
		}
	})
}

// SQLite runs on a single connection, so these transactions are serialized
// and FOR UPDATE is never contended. The row lock path is only exercised
// against Postgres.
func TestPurchaseShares_ConcurrentBuyersNeverOversell(t *testing.T) {
	ctx := context.Background()
	uow := dbtest.NewUnitOfWork(t)
	property := dbtest.Property(t, uow, 100, "10.00")

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	uc := NewPurchaseSharesUseCase(uow, adapters.NewRedisLocker(rdb, 10*time.Second, 5*time.Second))

	const buyers = 25
	var succeeded, rejected atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(ctx, PurchaseSharesInput{UserID: uuid.New(), PropertyID: property.ID, Shares: 7})
			switch {
			case err == nil:
				succeeded.Add(1)
			case shareErrorCode(err) == domainerror.ErrCodeInsufficientShares:
				rejected.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	// 14 purchases of 7 fit into 100 shares.
	if succeeded.Load() != 14 || rejected.Load() != buyers-14 {
		t.Errorf("expected 14 successes and %d rejections, got %d and %d", buyers-14, succeeded.Load(), rejected.Load())
	}

	sold, err := uow.Repositories().Investments.SumConfirmedShares(ctx, property.ID)
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	if sold != 98 {
		t.Errorf("expected 98 shares sold, got %d", sold)
	}
}

func TestPurchaseShares_RedisUnavailable(t *testing.T) {
	ctx := context.Background()
	uow := dbtest.NewUnitOfWork(t)
	property := dbtest.Property(t, uow, 10, "1.00")

	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })

	uc := NewPurchaseSharesUseCase(uow, adapters.NewRedisLocker(rdb, time.Second, 50*time.Millisecond))
	if _, err := uc.Execute(ctx, PurchaseSharesInput{UserID: uuid.New(), PropertyID: property.ID, Shares: 2}); err != nil {
		t.Fatalf("expected purchase to fall back to the row lock, got %v", err)
	}
}

func TestCancelInvestment_ReleasesShares(t *testing.T) {
	ctx := context.Background()
	uow := dbtest.NewUnitOfWork(t)
	property := dbtest.Property(t, uow, 10, "1.00")
	inv := dbtest.Investment(t, uow, uuid.New(), property, 10)

	availability := NewGetAvailabilityUseCase(uow)
	before, err := availability.Execute(ctx, property.ID)
	if err != nil {
		t.Fatalf("availability: %v", err)
	}
	if before.AvailableShares != 0 || before.SoldShares != 10 {
		t.Fatalf("unexpected availability %+v", before)
	}

	cancel := NewCancelInvestmentUseCase(uow)
	if _, err := cancel.Execute(ctx, CancelInvestmentInput{InvestmentID: inv.ID, Reason: "duplicate order"}); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	after, err := availability.Execute(ctx, property.ID)
	if err != nil {
		t.Fatalf("availability: %v", err)
	}
	if after.AvailableShares != 10 {
		t.Errorf("expected shares released, got %d available", after.AvailableShares)
	}

	_, err = cancel.Execute(ctx, CancelInvestmentInput{InvestmentID: inv.ID})
	if got := shareErrorCode(err); got != domainerror.ErrCodeInvalidInvestmentTransition {
		t.Errorf("expected second cancel to fail, got %v", err)
	}

	_, err = cancel.Execute(ctx, CancelInvestmentInput{InvestmentID: uuid.New()})
	if got := shareErrorCode(err); got != domainerror.ErrCodeInvestmentNotFound {
		t.Errorf("expected not found, got %v", err)
	}
}
