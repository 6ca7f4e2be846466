package producer

import (
	"context"
	"errors"
	"testing"

	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/shared/testutil"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type staticTenants []string

func (s staticTenants) ListActiveIDs(context.Context) ([]string, error) {
	return s, nil
}

type fakeOutbox struct {
	pending []kafka.OutboxEvent
	sent    []uuid.UUID
	failed  []uuid.UUID
}

func (f *fakeOutbox) Create(context.Context, *kafka.OutboxEvent) error { return nil }

func (f *fakeOutbox) ListPending(context.Context, int) ([]kafka.OutboxEvent, error) {
	return f.pending, nil
}

func (f *fakeOutbox) MarkSent(_ context.Context, id uuid.UUID) error {
	f.sent = append(f.sent, id)
	return nil
}

func (f *fakeOutbox) MarkFailed(_ context.Context, id uuid.UUID, _ string) error {
	f.failed = append(f.failed, id)
	return nil
}

type fakeWriter struct {
	msgs    []kafkago.Message
	failFor string
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if string(m.Key) == w.failFor {
			return errors.New("broker unavailable")
		}
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func TestWorker_Tick(t *testing.T) {
	db, _ := testutil.NewGormMock(t)
	resolver := &testutil.StaticResolver{Handle: db}

	ok, _ := kafka.NewOutboxEvent("hr.employee.lifecycle.v1", "employee_created", "employee", "emp-1", "req-1", map[string]string{"employee_id": "emp-1"})
	bad, _ := kafka.NewOutboxEvent("hr.employee.lifecycle.v1", "employee_created", "employee", "emp-2", "req-2", map[string]string{"employee_id": "emp-2"})
	outbox := &fakeOutbox{pending: []kafka.OutboxEvent{*ok, *bad}}
	writer := &fakeWriter{failFor: "emp-2"}

	w := NewWorker(staticTenants{"t1"}, resolver, func(*gorm.DB) kafka.OutboxRepository { return outbox }, writer, zap.NewNop())

	require.NoError(t, w.Tick(context.Background()))

	assert.Equal(t, []string{"t1"}, resolver.Calls)
	assert.Equal(t, []uuid.UUID{ok.ID}, outbox.sent)
	assert.Equal(t, []uuid.UUID{bad.ID}, outbox.failed)
	require.Len(t, writer.msgs, 1)

	headers := map[string]string{}
	for _, h := range writer.msgs[0].Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "t1", headers["tenant_id"])
	assert.Equal(t, "employee_created", headers["event_type"])
}

func TestWorker_TenantFailureDoesNotStopOthers(t *testing.T) {
	resolver := &testutil.StaticResolver{Err: errors.New("tenant db down")}
	w := NewWorker(staticTenants{"t1", "t2"}, resolver, nil, &fakeWriter{}, zap.NewNop())

	assert.NoError(t, w.Tick(context.Background()))
	assert.Equal(t, []string{"t1", "t2"}, resolver.Calls)
}
