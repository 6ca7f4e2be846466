package leavebalance_test

import (
	"context"
	"errors"
	"testing"

	"go-hrms/internal/leavebalance"
	leavebalanceerrors "go-hrms/internal/leavebalance/errors"
	"go-hrms/internal/leavebalance/mock"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/testutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setupLedger(t *testing.T) (leavebalance.Service, *mock.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := leavebalance.NewService(&testutil.StaticResolver{}, func(*gorm.DB) leavebalance.Repository { return repo })
	return svc, repo
}

func row(total, used, pending string, version int64) *leavebalance.LeaveBalance {
	b := &leavebalance.LeaveBalance{
		ID:      uuid.New(),
		Total:   decimal.RequireFromString(total),
		Used:    decimal.RequireFromString(used),
		Pending: decimal.RequireFromString(pending),
		Version: version,
	}
	b.Recompute()
	return b
}

var key = leavebalance.Key{EmployeeID: "e1", LeaveType: "CL", Year: 2026}

func TestLedger_Move(t *testing.T) {
	ctx := context.Background()

	t.Run("retries on version conflict", func(t *testing.T) {
		svc, repo := setupLedger(t)
		gomock.InOrder(
			repo.EXPECT().Find(ctx, key).Return(row("12", "0", "0", 1), nil),
			repo.EXPECT().UpdateVersioned(ctx, gomock.Any()).Return(false, nil),
			repo.EXPECT().Find(ctx, key).Return(row("12", "0", "2", 2), nil),
			repo.EXPECT().UpdateVersioned(ctx, gomock.Any()).Return(true, nil),
		)

		b, err := svc.Move(ctx, nil, key, leavebalance.Reserve, decimal.NewFromInt(3))

		require.NoError(t, err)
		assert.Equal(t, "5", b.Pending.String())
		assert.Equal(t, "7", b.Available.String())
	})

	t.Run("gives up after three conflicts", func(t *testing.T) {
		svc, repo := setupLedger(t)
		repo.EXPECT().Find(ctx, key).Return(row("12", "0", "0", 1), nil).Times(3)
		repo.EXPECT().UpdateVersioned(ctx, gomock.Any()).Return(false, nil).Times(3)

		_, err := svc.Move(ctx, nil, key, leavebalance.Reserve, decimal.NewFromInt(1))

		assert.ErrorIs(t, err, leavebalanceerrors.ErrVersionConflict)
	})

	t.Run("negative pending is invalid state and not written", func(t *testing.T) {
		svc, repo := setupLedger(t)
		repo.EXPECT().Find(ctx, key).Return(row("12", "0", "1", 1), nil)

		_, err := svc.Move(ctx, nil, key, leavebalance.Release, decimal.NewFromInt(2))

		assert.True(t, apperror.HasCode(err, apperror.CodeInvalidState))
	})

	t.Run("missing row", func(t *testing.T) {
		svc, repo := setupLedger(t)
		repo.EXPECT().Find(ctx, key).Return(nil, nil)

		_, err := svc.Move(ctx, nil, key, leavebalance.Commit, decimal.NewFromInt(1))

		assert.ErrorIs(t, err, leavebalanceerrors.ErrBalanceNotFound)
	})

	t.Run("zero days is a read", func(t *testing.T) {
		svc, repo := setupLedger(t)
		repo.EXPECT().Find(ctx, key).Return(row("12", "0", "0", 1), nil)

		b, err := svc.Move(ctx, nil, key, leavebalance.Reserve, decimal.Zero)

		require.NoError(t, err)
		assert.True(t, b.Pending.IsZero())
	})

	t.Run("store error", func(t *testing.T) {
		svc, repo := setupLedger(t)
		repo.EXPECT().Find(ctx, key).Return(row("12", "0", "0", 1), nil)
		repo.EXPECT().UpdateVersioned(ctx, gomock.Any()).Return(false, errors.New("conn reset"))

		_, err := svc.Move(ctx, nil, key, leavebalance.Reserve, decimal.NewFromInt(1))

		assert.EqualError(t, err, "conn reset")
	})
}

func typed(leaveType, total, used, pending string) leavebalance.LeaveBalance {
	b := *row(total, used, pending, 0)
	b.LeaveType = leaveType
	b.Year = 2026
	return b
}

func TestLedger_ReplaceYear(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh year", func(t *testing.T) {
		svc, repo := setupLedger(t)
		rows := []leavebalance.LeaveBalance{typed("CL", "12", "0", "0"), typed("SL", "6", "0", "0")}

		gomock.InOrder(
			repo.EXPECT().FindByEmployee(ctx, "e1", 2026).Return(nil, nil),
			repo.EXPECT().DeleteYear(ctx, "e1", 2026).Return(nil),
			repo.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(2),
		)

		require.NoError(t, svc.ReplaceYear(ctx, nil, "e1", 2026, rows))
	})

	t.Run("open reservations survive and can still settle", func(t *testing.T) {
		svc, repo := setupLedger(t)
		current := []leavebalance.LeaveBalance{
			typed("CL", "10", "2", "3"),
			typed("ML", "5", "0", "1"),
			typed("OLD", "4", "0", "0"),
		}
		var created []leavebalance.LeaveBalance
		gomock.InOrder(
			repo.EXPECT().FindByEmployee(ctx, "e1", 2026).Return(current, nil),
			repo.EXPECT().DeleteYear(ctx, "e1", 2026).Return(nil),
			repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, b *leavebalance.LeaveBalance) error {
				created = append(created, *b)
				return nil
			}).Times(2),
		)

		err := svc.ReplaceYear(ctx, nil, "e1", 2026, []leavebalance.LeaveBalance{typed("CL", "12", "0", "0")})

		require.NoError(t, err)
		require.Len(t, created, 2, "OLD held nothing and is dropped")
		cl := created[0]
		assert.Equal(t, "CL", cl.LeaveType)
		assert.Equal(t, "12", cl.Total.String())
		assert.Equal(t, "2", cl.Used.String())
		assert.Equal(t, "3", cl.Pending.String())
		assert.Equal(t, "7", cl.Available.String())
		assert.Equal(t, "ML", created[1].LeaveType)
		assert.Equal(t, "1", created[1].Pending.String())

		// rejecting the pending request releases its days on the rebuilt row
		clKey := leavebalance.Key{EmployeeID: "e1", LeaveType: "CL", Year: 2026}
		repo.EXPECT().Find(ctx, clKey).Return(&cl, nil)
		repo.EXPECT().UpdateVersioned(ctx, gomock.Any()).Return(true, nil)

		b, err := svc.Move(ctx, nil, clKey, leavebalance.Release, decimal.NewFromInt(3))

		require.NoError(t, err)
		assert.True(t, b.Pending.IsZero())
		assert.Equal(t, "10", b.Available.String())
	})

	t.Run("lookup error stops the rebuild", func(t *testing.T) {
		svc, repo := setupLedger(t)
		repo.EXPECT().FindByEmployee(ctx, "e1", 2026).Return(nil, errors.New("conn reset"))

		err := svc.ReplaceYear(ctx, nil, "e1", 2026, []leavebalance.LeaveBalance{typed("CL", "12", "0", "0")})

		assert.EqualError(t, err, "conn reset")
	})
}

func TestMockService_Move(t *testing.T) {
	ctrl := gomock.NewController(t)
	var svc leavebalance.Service = mock.NewMockService(ctrl)
	ctx := context.Background()
	key := leavebalance.Key{EmployeeID: uuid.NewString(), LeaveType: "CL", Year: 2026}
	want := &leavebalance.LeaveBalance{LeaveType: "CL"}

	svc.(*mock.MockService).EXPECT().
		Move(ctx, gomock.Nil(), key, leavebalance.Reserve, decimal.NewFromInt(2)).
		Return(want, nil)

	got, err := svc.Move(ctx, nil, key, leavebalance.Reserve, decimal.NewFromInt(2))

	require.NoError(t, err)
	assert.Same(t, want, got)
}
