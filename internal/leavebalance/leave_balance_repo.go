package leavebalance

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type RepositoryFactory func(db *gorm.DB) Repository

//go:generate mockgen -source=leave_balance_repo.go -destination=mock/leave_balance_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, b *LeaveBalance) error
	// Find returns nil without error when no row exists.
	Find(ctx context.Context, key Key) (*LeaveBalance, error)
	FindByEmployee(ctx context.Context, employeeID string, year int) ([]LeaveBalance, error)
	// UpdateVersioned writes b if the stored version still equals
	// b.Version and reports whether a row was written.
	UpdateVersioned(ctx context.Context, b *LeaveBalance) (bool, error)
	DeleteYear(ctx context.Context, employeeID string, year int) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, b *LeaveBalance) error {
	b.Recompute()
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) Find(ctx context.Context, key Key) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND leave_type = ? AND year = ?", key.EmployeeID, key.LeaveType, key.Year).
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string, year int) ([]LeaveBalance, error) {
	var rows []LeaveBalance
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND year = ?", employeeID, year).
		Order("leave_type ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) UpdateVersioned(ctx context.Context, b *LeaveBalance) (bool, error) {
	b.Recompute()
	res := r.db.WithContext(ctx).
		Model(&LeaveBalance{}).
		Where("id = ? AND version = ?", b.ID, b.Version).
		Updates(map[string]any{
			"total":      b.Total,
			"used":       b.Used,
			"pending":    b.Pending,
			"available":  b.Available,
			"version":    gorm.Expr("version + 1"),
			"updated_at": gorm.Expr("NOW()"),
		})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	b.Version++
	return true, nil
}

func (r *repository) DeleteYear(ctx context.Context, employeeID string, year int) error {
	return r.db.WithContext(ctx).
		Where("employee_id = ? AND year = ?", employeeID, year).
		Delete(&LeaveBalance{}).Error
}
