package tenant

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

//go:generate mockgen -source=tenant_repo.go -destination=mock/tenant_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, t *Tenant) error
	FindByIdentifier(ctx context.Context, identifier string) (*Tenant, error)
	FindAll(ctx context.Context, status Status) ([]Tenant, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	UpdateSettings(ctx context.Context, id string, settings datatypes.JSONMap, features []string) error
	WithTx(tx *gorm.DB) Repository
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, t *Tenant) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// FindByIdentifier accepts the tenant id or its code. A non-uuid identifier
// only matches on code, which keeps postgres from rejecting the uuid cast.
func (r *repository) FindByIdentifier(ctx context.Context, identifier string) (*Tenant, error) {
	var t Tenant
	code := strings.ToLower(strings.TrimSpace(identifier))

	q := r.db.WithContext(ctx)
	if id, err := uuid.Parse(identifier); err == nil {
		q = q.Where("id = ? OR code = ?", id, code)
	} else {
		q = q.Where("code = ?", code)
	}

	if err := q.First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) FindAll(ctx context.Context, status Status) ([]Tenant, error) {
	var rows []Tenant
	q := r.db.WithContext(ctx).Order("code ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&rows).Error
	return rows, err
}

func (r *repository) UpdateStatus(ctx context.Context, id string, status Status) error {
	res := r.db.WithContext(ctx).
		Model(&Tenant{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": gorm.Expr("now()")})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) UpdateSettings(ctx context.Context, id string, settings datatypes.JSONMap, features []string) error {
	updates := map[string]any{"updated_at": gorm.Expr("now()")}
	if settings != nil {
		updates["settings"] = settings
	}
	if features != nil {
		updates["features"] = datatypes.JSONSlice[string](features)
	}

	res := r.db.WithContext(ctx).Model(&Tenant{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
