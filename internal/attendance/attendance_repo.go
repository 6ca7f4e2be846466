package attendance

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RepositoryFactory func(db *gorm.DB) Repository

type ListFilter struct {
	EmployeeID string
	From       *time.Time
	To         *time.Time
	Status     Status
}

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, a *Attendance) error
	FindByID(ctx context.Context, id string) (*Attendance, error)
	// FindDay locks the row when called inside a transaction and returns
	// nil without error when the day has no record yet.
	FindDay(ctx context.Context, employeeID string, day time.Time) (*Attendance, error)
	FindAll(ctx context.Context, filter ListFilter) ([]Attendance, error)
	Update(ctx context.Context, a *Attendance) error
	CountByStatus(ctx context.Context, employeeID string, from, to time.Time, status Status) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindDay(ctx context.Context, employeeID string, day time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("employee_id = ? AND date = ?", employeeID, day.Format(time.DateOnly)).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Attendance, error) {
	q := r.db.WithContext(ctx).Model(&Attendance{})
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.From != nil {
		q = q.Where("date >= ?", filter.From.Format(time.DateOnly))
	}
	if filter.To != nil {
		q = q.Where("date <= ?", filter.To.Format(time.DateOnly))
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var rows []Attendance
	err := q.Order("date DESC, employee_id").Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) CountByStatus(ctx context.Context, employeeID string, from, to time.Time, status Status) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&Attendance{}).
		Where("employee_id = ? AND status = ?", employeeID, status).
		Where("date BETWEEN ? AND ?", from.Format(time.DateOnly), to.Format(time.DateOnly)).
		Count(&n).Error
	return n, err
}
