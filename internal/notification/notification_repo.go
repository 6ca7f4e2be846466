package notification

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type RepositoryFactory func(db *gorm.DB) Repository

type Repository interface {
	CreateMany(ctx context.Context, rows []Notification) error
	FindForRecipient(ctx context.Context, employeeID, role string, unreadOnly bool) ([]Notification, error)
	MarkRead(ctx context.Context, id, employeeID, role string, at time.Time) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateMany(ctx context.Context, rows []Notification) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *repository) FindForRecipient(ctx context.Context, employeeID, role string, unreadOnly bool) ([]Notification, error) {
	q := r.db.WithContext(ctx).
		Where("(recipient_employee_id = ?) OR (recipient_employee_id IS NULL AND recipient_role = ?)", employeeID, role)
	if unreadOnly {
		q = q.Where("read_at IS NULL")
	}
	var rows []Notification
	err := q.Order("created_at DESC").Limit(200).Find(&rows).Error
	return rows, err
}

func (r *repository) MarkRead(ctx context.Context, id, employeeID, role string, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("id = ?", id).
		Where("(recipient_employee_id = ?) OR (recipient_employee_id IS NULL AND recipient_role = ?)", employeeID, role).
		Update("read_at", at)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
