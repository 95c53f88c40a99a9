package valueobject

import (
	"time"

	"github.com/shopspring/decimal"
)

// AverageDaysPerMonth is the month length used to normalise statement totals.
var AverageDaysPerMonth = decimal.RequireFromString("30.44")

// MonthShare is the part of a period falling within one calendar month.
type MonthShare struct {
	Month        time.Time // first day of the month, UTC
	DaysInMonth  int
	DaysInPeriod int
	// Factor is DaysInPeriod / DaysInMonth.
	Factor decimal.Decimal
}

// MonthlyBreakdown splits the inclusive period [start, end] per calendar
// month. Times are truncated to UTC dates. An inverted period yields nil.
func MonthlyBreakdown(start, end time.Time) []MonthShare {
	start, end = dateOf(start), dateOf(end)
	if end.Before(start) {
		return nil
	}

	var shares []MonthShare
	for month := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC); !month.After(end); month = month.AddDate(0, 1, 0) {
		monthEnd := month.AddDate(0, 1, -1)
		from, to := month, monthEnd
		if start.After(from) {
			from = start
		}
		if end.Before(to) {
			to = end
		}
		days := daysBetween(from, to) + 1
		total := monthEnd.Day()
		shares = append(shares, MonthShare{
			Month:        month,
			DaysInMonth:  total,
			DaysInPeriod: days,
			Factor:       decimal.NewFromInt(int64(days)).DivRound(decimal.NewFromInt(int64(total)), 6),
		})
	}
	return shares
}

// PeriodDays returns the number of days in [start, end], both inclusive.
func PeriodDays(start, end time.Time) int {
	start, end = dateOf(start), dateOf(end)
	if end.Before(start) {
		return 0
	}
	return daysBetween(start, end) + 1
}

// ProrateToMonthly normalises a period total to an average month:
// total / (days / 30.44), rounded to two decimals. Reporting only.
func ProrateToMonthly(total decimal.Decimal, start, end time.Time) decimal.Decimal {
	days := PeriodDays(start, end)
	if days == 0 {
		return decimal.Zero
	}
	return total.Mul(AverageDaysPerMonth).DivRound(decimal.NewFromInt(int64(days)), 2)
}

func dateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
