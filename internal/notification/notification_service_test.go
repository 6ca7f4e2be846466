package notification

import (
	"context"
	"testing"
	"time"

	notificationerrors "go-hrms/internal/notification/errors"
	"go-hrms/internal/shared/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepo struct {
	created []Notification
	rows    []Notification
	readErr error
	readAt  time.Time
}

func (f *fakeRepo) CreateMany(_ context.Context, rows []Notification) error {
	f.created = append(f.created, rows...)
	return nil
}

func (f *fakeRepo) FindForRecipient(context.Context, string, string, bool) ([]Notification, error) {
	return f.rows, nil
}

func (f *fakeRepo) MarkRead(_ context.Context, _, _, _ string, at time.Time) error {
	f.readAt = at
	return f.readErr
}

func newTestService(repo *fakeRepo) *service {
	svc := NewService(&testutil.StaticResolver{}, func(*gorm.DB) Repository { return repo }).(*service)
	svc.now = func() time.Time { return time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestNotify(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	empID := uuid.NewString()

	err := svc.Notify(context.Background(), nil,
		Message{EmployeeID: empID, Type: TypeLeaveApproved, Title: "Leave approved"},
		Message{Role: "HR", Type: TypeLeaveApplied, Title: "New leave request", Meta: map[string]any{"days": 2}},
		Message{Type: TypeLeaveApplied, Title: "nobody"},
		Message{EmployeeID: "not-a-uuid", Title: "bad"},
	)

	require.NoError(t, err)
	require.Len(t, repo.created, 2)
	assert.Equal(t, empID, repo.created[0].RecipientEmployeeID.String())
	assert.Nil(t, repo.created[1].RecipientEmployeeID)
	assert.Equal(t, "HR", repo.created[1].RecipientRole)
	assert.EqualValues(t, 2, repo.created[1].Meta["days"])
}

func TestMarkRead(t *testing.T) {
	t.Run("stamps read time", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := newTestService(repo)

		require.NoError(t, svc.MarkRead(context.Background(), "t1", "n1", "e1", "EMPLOYEE"))
		assert.Equal(t, 2026, repo.readAt.Year())
	})

	t.Run("not visible to caller", func(t *testing.T) {
		repo := &fakeRepo{readErr: gorm.ErrRecordNotFound}
		svc := newTestService(repo)

		err := svc.MarkRead(context.Background(), "t1", "n1", "e1", "EMPLOYEE")
		assert.ErrorIs(t, err, notificationerrors.ErrNotificationNotFound)
	})
}
