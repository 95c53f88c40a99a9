package valueobject

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainerror "github.com/estateshare/backend/internal/domain/error"
)

func ngn(s string) Money {
	return NewMoney(decimal.RequireFromString(s), "NGN")
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("add and subtract exactly", func(t *testing.T) {
		sum, err := ngn("0.10").Add(ngn("0.20"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sum.Equal(ngn("0.30")) {
			t.Errorf("expected 0.30, got %s", sum)
		}

		diff, err := sum.Sub(ngn("0.30"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !diff.IsZero() {
			t.Errorf("expected zero, got %s", diff)
		}
	})

	t.Run("currency mismatch is an error", func(t *testing.T) {
		usd := NewMoney(decimal.NewFromInt(1), "USD")
		if _, err := ngn("1").Add(usd); !errors.Is(err, domainerror.ErrCurrencyMismatch) {
			t.Errorf("expected ErrCurrencyMismatch, got %v", err)
		}
		if _, err := ngn("1").Sub(usd); !errors.Is(err, domainerror.ErrCurrencyMismatch) {
			t.Errorf("expected ErrCurrencyMismatch, got %v", err)
		}
		if _, err := ngn("1").Cmp(usd); !errors.Is(err, domainerror.ErrCurrencyMismatch) {
			t.Errorf("expected ErrCurrencyMismatch, got %v", err)
		}
	})

	t.Run("sum rejects foreign currency", func(t *testing.T) {
		_, err := Sum("NGN", ngn("1"), NewMoney(decimal.NewFromInt(1), "USD"))
		if !errors.Is(err, domainerror.ErrCurrencyMismatch) {
			t.Errorf("expected ErrCurrencyMismatch, got %v", err)
		}
	})
}

func TestMoney_Round(t *testing.T) {
	tests := []struct {
		name     string
		money    Money
		expected string
	}{
		{name: "half rounds away from zero", money: ngn("10.005"), expected: "10.01"},
		{name: "below half rounds down", money: ngn("10.0049"), expected: "10"},
		{name: "share price times count", money: ngn("333.333").Mul(decimal.NewFromInt(3)), expected: "1000"},
		{name: "zero digit currency", money: NewMoney(decimal.RequireFromString("150.5"), "JPY"), expected: "151"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.money.Round().Amount()
			if !got.Equal(decimal.RequireFromString(tt.expected)) {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestMoney_MinorUnits(t *testing.T) {
	minor, err := ngn("1234.56").MinorUnits()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if minor.IntPart() != 123456 {
		t.Errorf("expected 123456, got %s", minor)
	}

	if _, err := ngn("0.001").MinorUnits(); !errors.Is(err, domainerror.ErrSubMinorUnitAmount) {
		t.Errorf("expected ErrSubMinorUnitAmount, got %v", err)
	}
}

func TestMoney_WithinTolerance(t *testing.T) {
	tolerance := decimal.RequireFromString("0.01")
	if !ngn("100.00").WithinTolerance(ngn("100.01"), tolerance) {
		t.Error("expected 0.01 difference to be within tolerance")
	}
	if ngn("100.00").WithinTolerance(ngn("100.02"), tolerance) {
		t.Error("expected 0.02 difference to exceed tolerance")
	}
}

func TestMoney_Format(t *testing.T) {
	got := NewMoney(decimal.RequireFromString("1234.5"), "USD").Format()
	if got != "$1,234.50" {
		t.Errorf("expected $1,234.50, got %s", got)
	}
}

func TestNormalizeCurrency(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected string
		wantErr  bool
	}{
		{name: "lower case", code: "usd", expected: "USD"},
		{name: "empty uses default", code: "", expected: DefaultCurrency},
		{name: "unknown", code: "XXZ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeCurrency(tt.code)
			if tt.wantErr {
				if !errors.Is(err, domainerror.ErrUnknownCurrency) {
					t.Errorf("expected ErrUnknownCurrency, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}

	if MinorUnitDigits("NGN") != 2 || MinorUnitDigits("JPY") != 0 {
		t.Error("unexpected minor unit digits")
	}
}
