package testutil

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewGormMock returns a gorm handle backed by sqlmock so that services
// wrapping fake repositories in db.Transaction can assert Begin/Commit.
func NewGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("open sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open gorm over sqlmock: %v", err)
	}
	return db, mock
}

func ExpectTx(mock sqlmock.Sqlmock, commit bool) {
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

// StaticResolver hands out the same handle for every tenant.
type StaticResolver struct {
	Handle *gorm.DB
	Err    error
	Calls  []string
}

func (r *StaticResolver) DB(_ context.Context, tenantID string) (*gorm.DB, error) {
	r.Calls = append(r.Calls, tenantID)
	return r.Handle, r.Err
}
