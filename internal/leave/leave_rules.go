package leave

import (
	"strings"
	"time"

	"go-hrms/internal/leavebalance"

	"github.com/shopspring/decimal"
)

type Category int

const (
	CategoryPaid Category = iota
	CategoryUnpaid
)

var (
	half = decimal.NewFromFloat(0.5)

	// leave types that never touch a balance row
	unpaidTypes = map[string]struct{}{
		"lop":               {},
		"loss of pay":       {},
		"leave without pay": {},
		"personal leave":    {},
	}
)

func CategoryOf(leaveType string) Category {
	key := strings.Join(strings.Fields(strings.ToLower(leaveType)), " ")
	if _, ok := unpaidTypes[key]; ok {
		return CategoryUnpaid
	}
	return CategoryPaid
}

// DayCount counts every calendar day from start to end inclusive, weekends
// and holidays included. A half day takes exactly 0.5 off.
func DayCount(start, end time.Time, halfDay bool) decimal.Decimal {
	days := int64(dateOnly(end).Sub(dateOnly(start))/(24*time.Hour)) + 1
	n := decimal.NewFromInt(days)
	if halfDay {
		n = n.Sub(half)
	}
	return n
}

// Split books as many requested days as the balance allows as paid. A nil
// balance or an unpaid category makes the whole request unpaid.
func Split(category Category, requested decimal.Decimal, available *decimal.Decimal) (paid, unpaid decimal.Decimal) {
	if category == CategoryUnpaid || available == nil || !available.IsPositive() {
		return decimal.Zero, requested
	}
	paid = decimal.Min(*available, requested)
	return paid, requested.Sub(paid)
}

// Days lists every calendar date the request covers.
func Days(l LeaveRequest) []time.Time {
	var out []time.Time
	for d := dateOnly(l.StartDate); !d.After(dateOnly(l.EndDate)); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}

func availableOf(b *leavebalance.LeaveBalance) *decimal.Decimal {
	if b == nil {
		return nil
	}
	v := b.Available
	return &v
}

// dateOnly drops the clock and zone but keeps the calendar date.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
