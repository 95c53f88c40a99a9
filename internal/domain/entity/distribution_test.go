package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/estateshare/backend/internal/domain/error"
)

func TestDistributionStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from     DistributionStatus
		to       DistributionStatus
		bulk     bool
		expected bool
	}{
		{DistributionStatusDraft, DistributionStatusApproved, false, true},
		{DistributionStatusApproved, DistributionStatusDeclared, false, true},
		{DistributionStatusDraft, DistributionStatusDeclared, false, false},
		{DistributionStatusDraft, DistributionStatusDeclared, true, true},
		{DistributionStatusDeclared, DistributionStatusPaid, false, true},
		{DistributionStatusDraft, DistributionStatusPaid, false, false},
		{DistributionStatusApproved, DistributionStatusDraft, false, false},
		{DistributionStatusDeclared, DistributionStatusApproved, false, false},
		{DistributionStatusPaid, DistributionStatusDeclared, true, false},
		{DistributionStatusPaid, DistributionStatusDraft, false, false},
	}

	for _, tt := range tests {
		name := string(tt.from) + " to " + string(tt.to)
		if tt.bulk {
			name += " (bulk)"
		}
		t.Run(name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to, tt.bulk); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestDistribution_Lifecycle(t *testing.T) {
	d := NewDistribution(uuid.New(), uuid.New(), decimal.NewFromInt(1000), "NGN")
	now := time.Now().UTC()

	if err := d.Declare(now, false); !errors.Is(err, domainerror.ErrInvalidDistributionTransition) {
		t.Fatalf("expected draft declare to be rejected, got %v", err)
	}
	if err := d.Approve(); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if err := d.Approve(); !errors.Is(err, domainerror.ErrInvalidDistributionTransition) {
		t.Errorf("expected second approve to fail, got %v", err)
	}
	if err := d.Declare(now, false); err != nil {
		t.Fatalf("declare: %v", err)
	}
	if d.DeclaredAt == nil || !d.DeclaredAt.Equal(now) {
		t.Errorf("expected DeclaredAt to be stamped")
	}
	if d.IsEditable() {
		t.Error("declared distribution must not be editable")
	}
	if err := d.Declare(now, true); !errors.Is(err, domainerror.ErrAlreadyDeclared) {
		t.Errorf("expected ErrAlreadyDeclared, got %v", err)
	}
	if err := d.MarkPaid(now); err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	if err := d.Declare(now, false); !errors.Is(err, domainerror.ErrAlreadyDeclared) {
		t.Errorf("expected ErrAlreadyDeclared on paid, got %v", err)
	}
	if err := d.MarkPaid(now); !errors.Is(err, domainerror.ErrInvalidDistributionTransition) {
		t.Errorf("expected paid to be terminal, got %v", err)
	}
}

func TestDistribution_AddWarning(t *testing.T) {
	d := NewDistribution(uuid.New(), uuid.New(), decimal.Zero, "NGN")
	d.AddWarning("NO_PAYOUTS")
	d.AddWarning("NO_PAYOUTS")
	if len(d.Warnings) != 1 {
		t.Errorf("expected one warning, got %v", d.Warnings)
	}
}
