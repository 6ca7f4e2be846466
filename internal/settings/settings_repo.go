package settings

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=settings_repo.go -destination=mock/settings_repo_mock.go -package=mock
type Repository interface {
	// Find returns nil without error when the tenant has never saved settings.
	Find(ctx context.Context) (*AttendanceSettings, error)
	Save(ctx context.Context, s *AttendanceSettings) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Find(ctx context.Context) (*AttendanceSettings, error) {
	var s AttendanceSettings
	err := r.db.WithContext(ctx).Order("updated_at DESC").First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Save(ctx context.Context, s *AttendanceSettings) error {
	return r.db.WithContext(ctx).Save(s).Error
}
