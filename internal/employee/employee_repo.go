package employee

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListFilter struct {
	Status       Status
	DepartmentID string
	ManagerID    string
	Role         string
}

type RepositoryFactory func(db *gorm.DB) Repository

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, empl *Employee) error
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByCode(ctx context.Context, code string) (*Employee, error)
	FindAll(ctx context.Context, filter ListFilter) ([]Employee, error)
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, id string) error
	ManagerSnapshot(ctx context.Context) (ManagerSnapshot, error)
	SetLeavePolicy(ctx context.Context, ids []string, policyID uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).First(&empl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindByCode(ctx context.Context, code string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).First(&empl, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Employee, error) {
	q := r.db.WithContext(ctx).Model(&Employee{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.DepartmentID != "" {
		q = q.Where("department_id = ?", filter.DepartmentID)
	}
	if filter.ManagerID != "" {
		q = q.Where("manager_id = ?", filter.ManagerID)
	}
	if filter.Role != "" {
		q = q.Where("role = ?", filter.Role)
	}

	var rows []Employee
	err := q.Order("code ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ManagerSnapshot(ctx context.Context) (ManagerSnapshot, error) {
	var rows []struct {
		ID        uuid.UUID
		ManagerID *uuid.UUID
	}
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Select("id", "manager_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	snapshot := make(ManagerSnapshot, len(rows))
	for _, row := range rows {
		m := ""
		if row.ManagerID != nil {
			m = row.ManagerID.String()
		}
		snapshot[row.ID.String()] = m
	}
	return snapshot, nil
}

func (r *repository) SetLeavePolicy(ctx context.Context, ids []string, policyID uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id IN ?", ids).
		Update("leave_policy_id", policyID).Error
}
