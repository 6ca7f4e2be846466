package leavepolicy

import (
	"time"

	"github.com/shopspring/decimal"
)

var twelve = decimal.NewFromInt(12)

// ElapsedCycleMonths counts the months of the accounting year starting in
// cycleStartMonth of year that have begun by now, the current month included.
func ElapsedCycleMonths(year, cycleStartMonth int, now time.Time) int {
	if cycleStartMonth < 1 || cycleStartMonth > 12 {
		cycleStartMonth = 1
	}
	start := time.Date(year, time.Month(cycleStartMonth), 1, 0, 0, 0, 0, now.Location())
	if now.Before(start) {
		return 0
	}
	months := (now.Year()-start.Year())*12 + int(now.Month()) - int(start.Month()) + 1
	if months > 12 {
		return 12
	}
	return months
}

// Entitlement is the year's total for r before carry forward.
func Entitlement(r Rule, elapsedMonths int) decimal.Decimal {
	if !r.AccruesMonthly {
		return r.AnnualEntitlement
	}
	return r.AnnualEntitlement.Div(twelve).Mul(decimal.NewFromInt(int64(elapsedMonths))).Round(2)
}

// CarryForward is min(previous year's available, cap).
func CarryForward(r Rule, prevAvailable decimal.Decimal) decimal.Decimal {
	if !r.CarryForward || !prevAvailable.IsPositive() || !r.CarryForwardCap.IsPositive() {
		return decimal.Zero
	}
	return decimal.Min(prevAvailable, r.CarryForwardCap)
}
