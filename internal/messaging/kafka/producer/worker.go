package producer

import (
	"context"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/tenant"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const batchSize = 50

// TenantSource lists the tenants whose outbox should be drained.
type TenantSource interface {
	ListActiveIDs(ctx context.Context) ([]string, error)
}

type Worker struct {
	tenants  TenantSource
	resolver tenant.Resolver
	repos    func(db *gorm.DB) kafka.OutboxRepository
	writer   MessageWriter
	logger   *zap.Logger
}

func NewWorker(
	tenants TenantSource,
	resolver tenant.Resolver,
	repos func(db *gorm.DB) kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
) *Worker {
	if repos == nil {
		repos = kafka.NewOutboxRepository
	}
	if logger == nil {
		logger = zap.L()
	}
	return &Worker{
		tenants:  tenants,
		resolver: resolver,
		repos:    repos,
		writer:   writer,
		logger:   logger.Named("kafka.producer.worker"),
	}
}

func (w *Worker) Run(ctx context.Context, pollInterval time.Duration) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	w.logger.Info("outbox worker started", zap.Duration("poll_interval", pollInterval))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("outbox worker stopped")
			return
		case <-ticker.C:
			if err := w.Tick(ctx); err != nil {
				w.logger.Error("process outbox events failed", zap.Error(err))
			}
		}
	}
}

// Tick drains one batch per active tenant. A failing tenant does not stop
// the others.
func (w *Worker) Tick(ctx context.Context) error {
	ids, err := w.tenants.ListActiveIDs(ctx)
	if err != nil {
		return err
	}

	for _, tenantID := range ids {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := w.processTenant(ctx, tenantID); err != nil {
			w.logger.Error("process tenant outbox failed",
				zap.String("tenant_id", tenantID),
				zap.Error(err),
			)
		}
	}
	return nil
}

func (w *Worker) processTenant(ctx context.Context, tenantID string) error {
	db, err := w.resolver.DB(ctx, tenantID)
	if err != nil {
		return err
	}
	repo := w.repos(db)

	events, err := repo.ListPending(ctx, batchSize)
	if err != nil {
		return err
	}

	if len(events) == 0 {
		return nil
	}

	log := w.logger.With(zap.String("tenant_id", tenantID))
	log.Info("processing pending outbox events", zap.Int("count", len(events)))

	for _, event := range events {
		if err := publishEvent(ctx, w.writer, tenantID, event); err != nil {
			log.Error("publish outbox event failed",
				zap.String("outbox_id", event.ID.String()),
				zap.String("event_type", event.EventType),
				zap.String("topic", event.Topic),
				zap.Error(err),
			)
			_ = repo.MarkFailed(ctx, event.ID, err.Error())
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			log.Error("mark outbox sent failed",
				zap.String("outbox_id", event.ID.String()),
				zap.Error(err),
			)
			continue
		}

		log.Info("outbox event sent",
			zap.String("outbox_id", event.ID.String()),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
		)
	}

	return nil
}
