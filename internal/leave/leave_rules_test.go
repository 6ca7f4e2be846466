package leave

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, _ := time.Parse(time.DateOnly, s)
	return t
}

func TestDayCount(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		halfDay bool
		want    string
	}{
		{"single day", "2026-03-10", "2026-03-10", false, "1"},
		{"single half day", "2026-03-10", "2026-03-10", true, "0.5"},
		{"spans a weekend", "2026-03-13", "2026-03-16", false, "4"},
		{"three days with half", "2026-03-10", "2026-03-12", true, "2.5"},
		{"across month end", "2026-02-27", "2026-03-02", false, "4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DayCount(date(tt.start), date(tt.end), tt.halfDay).String())
		})
	}
}

func TestSplit(t *testing.T) {
	five := decimal.NewFromInt(5)
	avail := func(v float64) *decimal.Decimal {
		d := decimal.NewFromFloat(v)
		return &d
	}

	tests := []struct {
		name       string
		category   Category
		available  *decimal.Decimal
		wantPaid   string
		wantUnpaid string
	}{
		{"enough balance", CategoryPaid, avail(10), "5", "0"},
		{"partial balance", CategoryPaid, avail(3), "3", "2"},
		{"half day left", CategoryPaid, avail(0.5), "0.5", "4.5"},
		{"exhausted", CategoryPaid, avail(0), "0", "5"},
		{"overdrawn", CategoryPaid, avail(-1), "0", "5"},
		{"no balance row", CategoryPaid, nil, "0", "5"},
		{"unpaid type", CategoryUnpaid, avail(10), "0", "5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paid, unpaid := Split(tt.category, five, tt.available)
			assert.Equal(t, tt.wantPaid, paid.String())
			assert.Equal(t, tt.wantUnpaid, unpaid.String())
			assert.True(t, five.Equal(paid.Add(unpaid)))
		})
	}
}

func TestCategoryOf(t *testing.T) {
	for _, v := range []string{"LOP", "lop", "Loss of Pay", "leave  without pay", " Personal Leave "} {
		assert.Equal(t, CategoryUnpaid, CategoryOf(v), v)
	}
	for _, v := range []string{"CL", "EL", "Sick Leave", "LOP-2"} {
		assert.Equal(t, CategoryPaid, CategoryOf(v), v)
	}
}

func TestLeaveRequest_Calendar(t *testing.T) {
	l := LeaveRequest{StartDate: date("2026-03-30"), EndDate: date("2026-04-02"), IsHalfDay: true, HalfDayTarget: HalfDayEnd}

	days := Days(l)
	assert.Len(t, days, 4)
	assert.Equal(t, date("2026-03-31"), days[1])

	half, ok := l.HalfDayDate()
	assert.True(t, ok)
	assert.Equal(t, date("2026-04-02"), half)

	l.HalfDayTarget = ""
	half, _ = l.HalfDayDate()
	assert.Equal(t, date("2026-03-30"), half)

	_, ok = LeaveRequest{}.HalfDayDate()
	assert.False(t, ok)
}

func TestParseHalfDayTarget(t *testing.T) {
	got, ok := ParseHalfDayTarget(" end ")
	assert.True(t, ok)
	assert.Equal(t, HalfDayEnd, got)

	_, ok = ParseHalfDayTarget("noon")
	assert.False(t, ok)
}
