package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"go-hrms/internal/events"
	leavepolicyerrors "go-hrms/internal/leavepolicy/errors"
	"go-hrms/internal/shared/apperror"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the subset of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// PolicyAssigner is satisfied by leavepolicy.Service.
type PolicyAssigner interface {
	AssignApplicable(ctx context.Context, tenantID, employeeID string) error
}

// ConsumeEmployeeLifecycle materializes leave balances for new employees.
// Transient failures leave the message uncommitted so it is redelivered
// after a rebalance.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	assigner PolicyAssigner,
	logger *zap.Logger,
) {
	if logger == nil {
		logger = zap.L()
	}
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee_created event failed", zap.Error(err))
			commit(ctx, reader, msg, log)
			continue
		}
		if event.EventType != "" && event.EventType != events.EmployeeCreatedEventType {
			commit(ctx, reader, msg, log)
			continue
		}
		if event.TenantID == "" {
			event.TenantID = header(msg, "tenant_id")
		}

		evLog := log.With(
			zap.String("tenant_id", event.TenantID),
			zap.String("employee_id", event.EmployeeID),
			zap.String("request_id", event.RequestID),
		)

		if err := assigner.AssignApplicable(ctx, event.TenantID, event.EmployeeID); err != nil {
			if permanent(err) {
				evLog.Warn("employee_created event skipped", zap.Error(err))
				commit(ctx, reader, msg, log)
				continue
			}
			evLog.Error("assign leave policy from employee_created event failed", zap.Error(err))
			continue
		}

		if commit(ctx, reader, msg, log) {
			evLog.Info("leave balances materialized from employee_created event")
		}
	}
}

// permanent errors will fail the same way on every redelivery.
func permanent(err error) bool {
	return errors.Is(err, leavepolicyerrors.ErrEmployeeNotFound) ||
		apperror.HasCode(err, apperror.CodeTenantNotFound) ||
		apperror.HasCode(err, apperror.CodeForbidden) ||
		apperror.HasCode(err, apperror.CodeInvalidInput)
}

func commit(ctx context.Context, reader MessageReader, msg kafkago.Message, log *zap.Logger) bool {
	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit employee lifecycle message failed", zap.Error(err))
		return false
	}
	return true
}

func header(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
