package regularization

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
}

//go:generate mockgen -source=regularization_repo.go -destination=mock/regularization_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, r *Regularization) error
	FindByID(ctx context.Context, id string) (*Regularization, error)
	FindAll(ctx context.Context, filter ListFilter) ([]Regularization, error)
	Update(ctx context.Context, r *Regularization) error
	HasPending(ctx context.Context, employeeID string, day time.Time) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, reg *Regularization) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Regularization, error) {
	var reg Regularization
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&reg).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Regularization, error) {
	q := r.db.WithContext(ctx).Model(&Regularization{})
	if filter.EmployeeIDs != nil {
		q = q.Where("employee_id IN ?", filter.EmployeeIDs)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var rows []Regularization
	if err := q.Order("date DESC, created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) Update(ctx context.Context, reg *Regularization) error {
	return r.db.WithContext(ctx).Save(reg).Error
}

func (r *repository) HasPending(ctx context.Context, employeeID string, day time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Regularization{}).
		Where("employee_id = ? AND date = ? AND status = ?", employeeID, day.Format(time.DateOnly), StatusPending).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
