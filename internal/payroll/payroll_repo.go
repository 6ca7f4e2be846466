package payroll

import (
	"context"

	"gorm.io/gorm"
)

type RepositoryFactory func(db *gorm.DB) Repository

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	CreateTemplate(ctx context.Context, t *SalaryTemplate) error
	FindTemplates(ctx context.Context) ([]SalaryTemplate, error)
	RunExists(ctx context.Context, period string) (bool, error)
	CreateRun(ctx context.Context, run *Run) error
	FindRun(ctx context.Context, id string) (*Run, error)
	FindPayslip(ctx context.Context, id string) (*Payslip, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateTemplate(ctx context.Context, t *SalaryTemplate) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindTemplates(ctx context.Context) ([]SalaryTemplate, error) {
	var rows []SalaryTemplate
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) RunExists(ctx context.Context, period string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Run{}).
		Where("period = ?", period).
		Count(&count).Error
	return count > 0, err
}

// CreateRun inserts the run together with its payslips.
func (r *repository) CreateRun(ctx context.Context, run *Run) error {
	return r.db.WithContext(ctx).Create(run).Error
}

func (r *repository) FindRun(ctx context.Context, id string) (*Run, error) {
	var run Run
	err := r.db.WithContext(ctx).
		Preload("Payslips", func(db *gorm.DB) *gorm.DB {
			return db.Order("employee_code ASC")
		}).
		First(&run, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *repository) FindPayslip(ctx context.Context, id string) (*Payslip, error) {
	var p Payslip
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
