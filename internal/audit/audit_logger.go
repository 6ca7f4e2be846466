package audit

import (
	"context"
	"encoding/json"
	"time"

	"go-hrms/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Store persists entries into the tenant database it is handed (a plain
// handle or an open transaction) and mirrors them to the audit logger.
type Store struct {
	logger *zap.Logger
}

func NewStore(logger ...*zap.Logger) *Store {
	l := zap.L().Named("audit")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit")
	}
	return &Store{logger: l}
}

// Write stamps the entry with the request id and, when ActorID is empty,
// the calling employee from ctx.
func (s *Store) Write(ctx context.Context, db *gorm.DB, e Entry) error {
	md := contextutil.ExtractMetadata(ctx)
	if e.ActorID == "" {
		e.ActorID = md.EmployeeID
	}
	row := AuditLog{
		Action:     e.Action,
		ActorID:    e.ActorID,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		Message:    e.Message,
		Before:     toJSON(e.Before),
		After:      toJSON(e.After),
		Meta:       datatypes.JSONMap(e.Meta),
		RequestID:  md.RequestID,
	}

	s.logger.Info("audit event",
		zap.String("request_id", row.RequestID),
		zap.String("tenant_id", md.TenantID),
		zap.String("action", e.Action),
		zap.String("actor_id", e.ActorID),
		zap.String("entity_type", e.EntityType),
		zap.String("entity_id", e.EntityID),
		zap.String("message", e.Message),
		zap.Any("meta", e.Meta),
	)

	if err := db.WithContext(ctx).Create(&row).Error; err != nil {
		s.logger.Error("audit persist failed", zap.String("action", e.Action), zap.Error(err))
		return err
	}
	return nil
}

func toJSON(v any) datatypes.JSON {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

// StdoutLogger only writes to zap; used for process level events that have
// no tenant database.
type StdoutLogger struct{}

func NewStdoutLogger() *StdoutLogger {
	return &StdoutLogger{}
}

func (l *StdoutLogger) Log(ctx context.Context, e Entry) {
	zap.L().Named("audit").Info("audit event",
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("action", e.Action),
		zap.String("message", e.Message),
		zap.Any("meta", e.Meta),
	)
}
