package notification

import (
	"context"
	"errors"
	"time"

	notificationerrors "go-hrms/internal/notification/errors"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/tenant"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Notifier is used by workflows inside their own transaction.
type Notifier interface {
	Notify(ctx context.Context, tx *gorm.DB, msgs ...Message) error
}

type Service interface {
	Notifier
	ListMine(ctx context.Context, tenantID, employeeID, role string, unreadOnly bool) ([]NotificationResponse, error)
	MarkRead(ctx context.Context, tenantID, id, employeeID, role string) error
}

type service struct {
	resolver tenant.Resolver
	repos    RepositoryFactory
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(resolver tenant.Resolver, repos RepositoryFactory, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	if repos == nil {
		repos = NewRepository
	}
	return &service{resolver: resolver, repos: repos, now: time.Now, logger: l}
}

func (s *service) Notify(ctx context.Context, tx *gorm.DB, msgs ...Message) error {
	rows := make([]Notification, 0, len(msgs))
	for _, m := range msgs {
		if m.EmployeeID == "" && m.Role == "" {
			continue
		}
		n := Notification{
			ID:            uuid.New(),
			RecipientRole: m.Role,
			Type:          m.Type,
			Title:         m.Title,
			Message:       m.Body,
			EntityType:    m.EntityType,
			EntityID:      m.EntityID,
		}
		if m.EmployeeID != "" {
			id, err := uuid.Parse(m.EmployeeID)
			if err != nil {
				continue
			}
			n.RecipientEmployeeID = &id
		}
		if len(m.Meta) > 0 {
			n.Meta = datatypes.JSONMap(m.Meta)
		}
		rows = append(rows, n)
	}
	if err := s.repos(tx).CreateMany(ctx, rows); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("persist notifications failed", zap.Int("count", len(rows)), zap.Error(err))
		return err
	}
	return nil
}

func (s *service) ListMine(ctx context.Context, tenantID, employeeID, role string, unreadOnly bool) ([]NotificationResponse, error) {
	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	rows, err := s.repos(db).FindForRecipient(ctx, employeeID, role, unreadOnly)
	if err != nil {
		return nil, err
	}
	res := make([]NotificationResponse, len(rows))
	for i, n := range rows {
		res[i] = mapToResponse(n)
	}
	return res, nil
}

func (s *service) MarkRead(ctx context.Context, tenantID, id, employeeID, role string) error {
	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return err
	}
	err = s.repos(db).MarkRead(ctx, id, employeeID, role, s.now().UTC())
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notificationerrors.ErrNotificationNotFound
	}
	return err
}

func mapToResponse(n Notification) NotificationResponse {
	return NotificationResponse{
		ID:         n.ID.String(),
		Type:       n.Type,
		Title:      n.Title,
		Message:    n.Message,
		EntityType: n.EntityType,
		EntityID:   n.EntityID,
		Meta:       n.Meta,
		Read:       n.ReadAt != nil,
		CreatedAt:  n.CreatedAt,
	}
}
