package regularization

import (
	"context"
	"testing"
	"time"

	"go-hrms/internal/shared/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_HasPending(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	empID := uuid.NewString()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "regularizations" WHERE employee_id = \$1 AND date = \$2 AND status = \$3`).
		WithArgs(empID, "2026-02-27", "PENDING").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	pending, err := NewRepository(db).HasPending(context.Background(), empID, time.Date(2026, time.February, 27, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.True(t, pending)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindAll(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	a, b := uuid.NewString(), uuid.NewString()
	mock.ExpectQuery(`SELECT \* FROM "regularizations" WHERE employee_id IN \(\$1,\$2\) AND status = \$3 ORDER BY date DESC, created_at DESC`).
		WithArgs(a, b, "PENDING").
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "status"}).AddRow(uuid.NewString(), a, "PENDING"))

	rows, err := NewRepository(db).FindAll(context.Background(), ListFilter{EmployeeIDs: []string{a, b}, Status: StatusPending})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, StatusPending, rows[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
