package leavebalance

import (
	"testing"

	leavebalanceerrors "go-hrms/internal/leavebalance/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func TestApply(t *testing.T) {
	tests := []struct {
		name        string
		used        string
		pending     string
		movement    Movement
		days        string
		wantUsed    string
		wantPending string
		wantErr     error
	}{
		{name: "reserve", used: "0", pending: "0", movement: Reserve, days: "3", wantUsed: "0", wantPending: "3"},
		{name: "release", used: "0", pending: "3", movement: Release, days: "1.5", wantUsed: "0", wantPending: "1.5"},
		{name: "commit moves pending to used", used: "1", pending: "3", movement: Commit, days: "3", wantUsed: "4", wantPending: "0"},
		{name: "consume", used: "1", pending: "0", movement: Consume, days: "0.5", wantUsed: "1.5", wantPending: "0"},
		{name: "refund", used: "2", pending: "0", movement: Refund, days: "2", wantUsed: "0", wantPending: "0"},
		{name: "release below zero", used: "0", pending: "1", movement: Release, days: "2", wantErr: leavebalanceerrors.ErrNegativePending},
		{name: "commit more than pending", used: "0", pending: "1", movement: Commit, days: "2", wantErr: leavebalanceerrors.ErrNegativePending},
		{name: "refund more than used", used: "1", pending: "0", movement: Refund, days: "1.5", wantErr: leavebalanceerrors.ErrNegativeUsed},
		{name: "negative days", used: "0", pending: "0", movement: Reserve, days: "-1", wantErr: leavebalanceerrors.ErrInvalidDays},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &LeaveBalance{Total: d("12"), Used: d(tt.used), Pending: d(tt.pending)}
			b.Recompute()
			before := *b

			err := Apply(b, tt.movement, d(tt.days))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, before, *b, "failed movement leaves the row untouched")
				return
			}
			assert.NoError(t, err)
			assert.True(t, d(tt.wantUsed).Equal(b.Used), "used %s", b.Used)
			assert.True(t, d(tt.wantPending).Equal(b.Pending), "pending %s", b.Pending)
			assert.True(t, b.Total.Sub(b.Used).Sub(b.Pending).Equal(b.Available))
		})
	}
}

func TestCommitConservesPendingPlusUsed(t *testing.T) {
	b := &LeaveBalance{Total: d("10"), Used: d("2"), Pending: d("4.5")}
	sum := b.Used.Add(b.Pending)

	assert.NoError(t, Apply(b, Commit, d("4.5")))
	assert.True(t, sum.Equal(b.Used.Add(b.Pending)))
}

func TestBeforeSaveRecomputesAvailable(t *testing.T) {
	b := &LeaveBalance{Total: d("12"), Used: d("2"), Pending: d("1"), Available: d("99")}

	assert.NoError(t, b.BeforeSave(nil))
	assert.True(t, d("9").Equal(b.Available))
}
