package attendance

import (
	"context"
	"testing"

	"go-hrms/internal/shared/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_FindDay(t *testing.T) {
	ctx := context.Background()
	empID := uuid.New()

	t.Run("locks the row", func(t *testing.T) {
		db, mock := testutil.NewGormMock(t)
		id := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "attendances" WHERE employee_id = \$1 AND date = \$2 .*FOR UPDATE`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "status", "punches"}).
				AddRow(id, empID, "present", []byte(`[{"type":"IN","time":"2026-03-10T09:00:00Z"}]`)))

		rec, err := NewRepository(db).FindDay(ctx, empID.String(), testDay)

		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, id, rec.ID)
		require.Len(t, rec.Punches, 1)
		assert.Equal(t, PunchIn, rec.Punches[0].Type)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing day is nil", func(t *testing.T) {
		db, mock := testutil.NewGormMock(t)
		mock.ExpectQuery(`SELECT \* FROM "attendances"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

		rec, err := NewRepository(db).FindDay(ctx, empID.String(), testDay)

		require.NoError(t, err)
		assert.Nil(t, rec)
	})
}

func TestRepository_CountByStatus(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	empID := uuid.NewString()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "attendances" WHERE \(employee_id = \$1 AND status = \$2\) AND \(date BETWEEN \$3 AND \$4\)`).
		WithArgs(empID, string(StatusAbsent), "2026-03-01", "2026-03-31").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := NewRepository(db).CountByStatus(context.Background(), empID, testDay.AddDate(0, 0, -9), testDay.AddDate(0, 0, 21), StatusAbsent)

	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
