package kafka

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOutboxEvent(t *testing.T) {
	e, err := NewOutboxEvent("hr.leave.status.v1", "leave_status_changed", "leave_request", "l-1", "req-1",
		map[string]string{"status": "approved"})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, e.ID)
	assert.Equal(t, OutboxStatusPending, e.Status)
	assert.JSONEq(t, `{"status":"approved"}`, string(e.Payload))
}

func TestValidateOutboxEvent(t *testing.T) {
	base := OutboxEvent{ID: uuid.New(), Topic: "t", Payload: []byte(`{}`), Status: OutboxStatusPending}
	assert.NoError(t, ValidateOutboxEvent(base))

	noTopic := base
	noTopic.Topic = ""
	assert.EqualError(t, ValidateOutboxEvent(noTopic), "outbox topic is required")

	badStatus := base
	badStatus.Status = "queued"
	assert.EqualError(t, ValidateOutboxEvent(badStatus), "invalid outbox status: queued")

	noID := base
	noID.ID = uuid.Nil
	assert.Error(t, ValidateOutboxEvent(noID))
}
