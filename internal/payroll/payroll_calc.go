package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodOf turns "YYYY-MM" into the first and last day of that month.
func PeriodOf(period string) (start, end time.Time, err error) {
	start, err = time.Parse("2006-01", period)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 1, -1), nil
}

// LOPDays adds unpaid leave and absences, capped at the period length.
func LOPDays(unpaidLeave decimal.Decimal, absent int64, periodDays int) decimal.Decimal {
	lop := unpaidLeave.Add(decimal.NewFromInt(absent))
	return decimal.Min(lop, decimal.NewFromInt(int64(periodDays)))
}

// Prorate pays gross for the days not lost, rounded to 2 places.
func Prorate(gross decimal.Decimal, periodDays int, lop decimal.Decimal) decimal.Decimal {
	days := decimal.NewFromInt(int64(periodDays))
	if !days.IsPositive() {
		return decimal.Zero
	}
	return gross.Mul(days.Sub(lop)).Div(days).Round(2)
}
