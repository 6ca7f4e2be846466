package employee

import (
	"errors"

	employeeerrors "go-hrms/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch {
	case pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == "uq_employee_code":
		return employeeerrors.ErrEmployeeCodeAlreadyExists
	case pgErr.Code == pgForeignKeyViolation && pgErr.ColumnName == "manager_id":
		return employeeerrors.ErrManagerNotFound
	}
	return err
}
