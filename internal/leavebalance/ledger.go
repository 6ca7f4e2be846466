package leavebalance

import (
	leavebalanceerrors "go-hrms/internal/leavebalance/errors"

	"github.com/shopspring/decimal"
)

type Movement string

const (
	// Reserve holds days for a pending request.
	Reserve Movement = "reserve"
	// Release drops a reservation (reject, cancel, edit).
	Release Movement = "release"
	// Commit turns a reservation into consumption (approve).
	Commit Movement = "commit"
	// Consume debits used directly (auto-approved requests, regularization).
	Consume Movement = "consume"
	// Refund credits used back (regularization).
	Refund Movement = "refund"
)

// Apply moves days on b and recomputes Available. b is left untouched on error.
func Apply(b *LeaveBalance, m Movement, days decimal.Decimal) error {
	if days.IsNegative() {
		return leavebalanceerrors.ErrInvalidDays
	}

	pending, used := b.Pending, b.Used
	switch m {
	case Reserve:
		pending = pending.Add(days)
	case Release:
		pending = pending.Sub(days)
	case Commit:
		pending = pending.Sub(days)
		used = used.Add(days)
	case Consume:
		used = used.Add(days)
	case Refund:
		used = used.Sub(days)
	default:
		return leavebalanceerrors.ErrInvalidDays.WithMessage("unknown ledger movement: " + string(m))
	}

	if pending.IsNegative() {
		return leavebalanceerrors.ErrNegativePending.WithDetails(map[string]string{
			"pending": b.Pending.String(),
			"days":    days.String(),
		})
	}
	if used.IsNegative() {
		return leavebalanceerrors.ErrNegativeUsed.WithDetails(map[string]string{
			"used": b.Used.String(),
			"days": days.String(),
		})
	}

	b.Pending, b.Used = pending, used
	b.Recompute()
	return nil
}
