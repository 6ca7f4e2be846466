package leavebalance

import (
	"context"
	"testing"

	"go-hrms/internal/shared/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_UpdateVersioned(t *testing.T) {
	ctx := context.Background()
	versioned := `UPDATE "leave_balances" SET .* WHERE id = \$\d+ AND version = \$\d+`

	t.Run("matching version bumps local copy", func(t *testing.T) {
		db, mock := testutil.NewGormMock(t)
		repo := NewRepository(db)
		b := &LeaveBalance{ID: uuid.New(), Total: d("12"), Pending: d("2"), Version: 4}

		mock.ExpectBegin()
		mock.ExpectExec(versioned).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		ok, err := repo.UpdateVersioned(ctx, b)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, int64(5), b.Version)
		assert.True(t, d("10").Equal(b.Available))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stale version writes nothing", func(t *testing.T) {
		db, mock := testutil.NewGormMock(t)
		repo := NewRepository(db)
		b := &LeaveBalance{ID: uuid.New(), Total: d("12"), Version: 4}

		mock.ExpectBegin()
		mock.ExpectExec(versioned).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		ok, err := repo.UpdateVersioned(ctx, b)

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, int64(4), b.Version)
	})
}
