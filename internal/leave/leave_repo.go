package leave

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RepositoryFactory func(db *gorm.DB) Repository

type ListFilter struct {
	EmployeeIDs []string
	Status      Status
	LeaveType   string
	// From and To keep requests whose range touches the window.
	From *time.Time
	To   *time.Time
}

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, l *LeaveRequest) error
	FindByID(ctx context.Context, id string) (*LeaveRequest, error)
	FindAll(ctx context.Context, filter ListFilter) ([]LeaveRequest, error)
	Update(ctx context.Context, l *LeaveRequest) error
	HasOverlap(ctx context.Context, employeeID string, start, end time.Time, excludeID string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]LeaveRequest, error) {
	q := r.db.WithContext(ctx).Model(&LeaveRequest{})
	if filter.EmployeeIDs != nil {
		q = q.Where("employee_id IN ?", filter.EmployeeIDs)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.LeaveType != "" {
		q = q.Where("leave_type = ?", filter.LeaveType)
	}
	if filter.From != nil {
		q = q.Where("end_date >= ?", filter.From.Format(time.DateOnly))
	}
	if filter.To != nil {
		q = q.Where("start_date <= ?", filter.To.Format(time.DateOnly))
	}

	var rows []LeaveRequest
	err := q.Order("start_date DESC, created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, l *LeaveRequest) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *repository) HasOverlap(ctx context.Context, employeeID string, start, end time.Time, excludeID string) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("employee_id = ? AND status IN ?", employeeID, []Status{StatusPending, StatusApproved}).
		Where("start_date <= ? AND end_date >= ?", end.Format(time.DateOnly), start.Format(time.DateOnly))
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
