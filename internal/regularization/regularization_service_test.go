package regularization

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-hrms/internal/attendance"
	"go-hrms/internal/audit"
	"go-hrms/internal/domain"
	"go-hrms/internal/employee"
	employeemock "go-hrms/internal/employee/mock"
	"go-hrms/internal/leave"
	"go-hrms/internal/leavebalance"
	leavebalanceerrors "go-hrms/internal/leavebalance/errors"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/notification"
	regularizationerrors "go-hrms/internal/regularization/errors"
	"go-hrms/internal/settings"
	"go-hrms/internal/shared/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type memRepo struct {
	rows map[uuid.UUID]*Regularization
}

func (m *memRepo) Create(_ context.Context, r *Regularization) error {
	cp := *r
	m.rows[r.ID] = &cp
	return nil
}

func (m *memRepo) FindByID(_ context.Context, id string) (*Regularization, error) {
	for _, r := range m.rows {
		if r.ID.String() == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memRepo) FindAll(_ context.Context, filter ListFilter) ([]Regularization, error) {
	var out []Regularization
	for _, r := range m.rows {
		if filter.EmployeeIDs != nil && !contains(filter.EmployeeIDs, r.EmployeeID.String()) {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (m *memRepo) Update(_ context.Context, r *Regularization) error {
	cp := *r
	m.rows[r.ID] = &cp
	return nil
}

func (m *memRepo) HasPending(_ context.Context, employeeID string, day time.Time) (bool, error) {
	for _, r := range m.rows {
		if r.EmployeeID.String() == employeeID && r.Date.Equal(day) && r.Status == StatusPending {
			return true, nil
		}
	}
	return false, nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

type memLedger struct {
	rows map[leavebalance.Key]*leavebalance.LeaveBalance
}

func (m *memLedger) Get(_ context.Context, _ *gorm.DB, key leavebalance.Key) (*leavebalance.LeaveBalance, error) {
	b, ok := m.rows[key]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (m *memLedger) Move(_ context.Context, _ *gorm.DB, key leavebalance.Key, mv leavebalance.Movement, days decimal.Decimal) (*leavebalance.LeaveBalance, error) {
	b, ok := m.rows[key]
	if !ok {
		return nil, leavebalanceerrors.ErrBalanceNotFound
	}
	if err := leavebalance.Apply(b, mv, days); err != nil {
		return nil, err
	}
	cp := *b
	return &cp, nil
}

func (m *memLedger) ReplaceYear(context.Context, *gorm.DB, string, int, []leavebalance.LeaveBalance) error {
	return nil
}

type fakeCalendar struct {
	day         *attendance.Attendance
	corrections []attendance.Correction
}

func (c *fakeCalendar) Day(context.Context, *gorm.DB, string, time.Time) (*attendance.Attendance, error) {
	return c.day, nil
}

func (c *fakeCalendar) UpsertLeaveDays(context.Context, *gorm.DB, string, []attendance.LeaveDay) error {
	return nil
}

func (c *fakeCalendar) Correct(_ context.Context, _ *gorm.DB, _, _ string, _ time.Time, corr attendance.Correction) (*attendance.Attendance, error) {
	c.corrections = append(c.corrections, corr)
	return &attendance.Attendance{Status: corr.Status}, nil
}

type leaveRecorder struct {
	recorded []leave.LeaveRequest
}

func (r *leaveRecorder) RecordApproved(_ context.Context, _ *gorm.DB, _ string, l *leave.LeaveRequest) error {
	r.recorded = append(r.recorded, *l)
	return nil
}

type notifyRecorder struct {
	msgs []notification.Message
}

func (n *notifyRecorder) Notify(_ context.Context, _ *gorm.DB, msgs ...notification.Message) error {
	n.msgs = append(n.msgs, msgs...)
	return nil
}

type auditRecorder struct {
	entries []audit.Entry
}

func (a *auditRecorder) Write(_ context.Context, _ *gorm.DB, e audit.Entry) error {
	a.entries = append(a.entries, e)
	return nil
}

func (a *auditRecorder) actions() []string {
	out := make([]string, 0, len(a.entries))
	for _, e := range a.entries {
		out = append(out, e.Action)
	}
	return out
}

type fakeOutbox struct {
	events []kafka.OutboxEvent
}

func (f *fakeOutbox) Create(_ context.Context, e *kafka.OutboxEvent) error {
	f.events = append(f.events, *e)
	return nil
}

func (f *fakeOutbox) ListPending(context.Context, int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutbox) MarkSent(context.Context, uuid.UUID) error {
	return nil
}

func (f *fakeOutbox) MarkFailed(context.Context, uuid.UUID, string) error {
	return nil
}

type staticSettings struct{ st settings.AttendanceSettings }

func (s *staticSettings) Get(context.Context, string) (settings.AttendanceSettings, error) {
	return s.st, nil
}

type harness struct {
	svc       *service
	repo      *memRepo
	ledger    *memLedger
	calendar  *fakeCalendar
	leaves    *leaveRecorder
	notifier  *notifyRecorder
	audit     *auditRecorder
	outbox    *fakeOutbox
	employees *employeemock.MockRepository
	sql       sqlmock.Sqlmock
}

var (
	managerID = uuid.New()
	hrID      = uuid.New()
	staff     = employee.Employee{ID: uuid.New(), Code: "EMP-001", FirstName: "Rina", ManagerID: &managerID}
	friday    = time.Date(2026, time.February, 27, 0, 0, 0, 0, time.UTC)
)

func newHarness(t *testing.T) *harness {
	db, mock := testutil.NewGormMock(t)
	h := &harness{
		repo:      &memRepo{rows: make(map[uuid.UUID]*Regularization)},
		ledger:    &memLedger{rows: make(map[leavebalance.Key]*leavebalance.LeaveBalance)},
		calendar:  &fakeCalendar{},
		leaves:    &leaveRecorder{},
		notifier:  &notifyRecorder{},
		audit:     &auditRecorder{},
		outbox:    &fakeOutbox{},
		employees: employeemock.NewMockRepository(gomock.NewController(t)),
		sql:       mock,
	}
	h.employees.EXPECT().FindByID(gomock.Any(), staff.ID.String()).Return(&staff, nil).AnyTimes()

	h.svc = NewService(&testutil.StaticResolver{Handle: db}, Deps{
		Repos:     func(*gorm.DB) Repository { return h.repo },
		Employees: func(*gorm.DB) employee.Repository { return h.employees },
		Outbox:    func(*gorm.DB) kafka.OutboxRepository { return h.outbox },
		Ledger:    h.ledger,
		Leaves:    h.leaves,
		Calendar:  h.calendar,
		Notifier:  h.notifier,
		Audit:     h.audit,
		Settings:  &staticSettings{st: settings.Defaults()},
	}).(*service)
	// Monday 2 March 2026
	h.svc.now = func() time.Time { return time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC) }
	return h
}

func (h *harness) balance(leaveType string, total, used int64) *leavebalance.LeaveBalance {
	b := &leavebalance.LeaveBalance{
		ID:         uuid.New(),
		EmployeeID: staff.ID,
		LeaveType:  leaveType,
		Year:       2026,
		Total:      decimal.NewFromInt(total),
		Used:       decimal.NewFromInt(used),
	}
	b.Recompute()
	h.ledger.rows[leavebalance.Key{EmployeeID: staff.ID.String(), LeaveType: leaveType, Year: 2026}] = b
	return b
}

func (h *harness) seed(r Regularization) *Regularization {
	r.ID = uuid.New()
	r.EmployeeID = staff.ID
	r.Date = friday
	r.Status = StatusPending
	if r.Reason == "" {
		r.Reason = "forgot to punch"
	}
	h.repo.rows[r.ID] = &r
	return &r
}

func self() domain.Actor {
	return domain.Actor{EmployeeID: staff.ID.String(), Role: domain.RoleEmployee}
}

func manager() domain.Actor {
	return domain.Actor{EmployeeID: managerID.String(), Role: domain.RoleManager}
}

func hr() domain.Actor {
	return domain.Actor{EmployeeID: hrID.String(), Role: domain.RoleHR}
}

func TestApply_SnapshotsLeaveDay(t *testing.T) {
	h := newHarness(t)
	h.calendar.day = &attendance.Attendance{Status: attendance.StatusLeave, LeaveType: "CL", Date: friday}
	testutil.ExpectTx(h.sql, true)

	resp, err := h.svc.Apply(context.Background(), "t1", self(), ApplyRequest{
		Category:  "leave",
		Date:      "2026-02-27",
		LeaveType: "SL",
		Reason:    "was sick, not casual",
	})

	require.NoError(t, err)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, "LEAVE", resp.Category)
	assert.Equal(t, "leave", resp.BeforeStatus)
	assert.Equal(t, "CL", resp.BeforeLeaveType)
	assert.Equal(t, "SL", resp.RequestedLeaveType)
	assert.Equal(t, "CL", resp.Before["leave_type"])

	require.Len(t, h.notifier.msgs, 2)
	assert.Equal(t, string(domain.RoleHR), h.notifier.msgs[0].Role)
	assert.Equal(t, managerID.String(), h.notifier.msgs[1].EmployeeID)
	assert.Equal(t, notification.TypeRegularizationApplied, h.notifier.msgs[1].Type)
	assert.NoError(t, h.sql.ExpectationsWereMet())
}

func TestApply_MissingDayIsNone(t *testing.T) {
	h := newHarness(t)
	testutil.ExpectTx(h.sql, true)

	resp, err := h.svc.Apply(context.Background(), "t1", self(), ApplyRequest{
		Category: "ATTENDANCE",
		Date:     "2026-02-27",
		CheckIn:  "09:05",
		CheckOut: "18:00",
		Reason:   "device offline",
	})

	require.NoError(t, err)
	assert.Equal(t, BeforeNone, resp.BeforeStatus)
	assert.Equal(t, BeforeNone, resp.BeforeLeaveType)
	assert.Equal(t, "09:05", resp.RequestedCheckIn)
	assert.NoError(t, h.sql.ExpectationsWereMet())
}

func TestApply_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  ApplyRequest
		want error
	}{
		{
			name: "unknown category",
			req:  ApplyRequest{Category: "shift", Date: "2026-02-27", Reason: "x"},
			want: regularizationerrors.ErrInvalidCategory,
		},
		{
			name: "bad date",
			req:  ApplyRequest{Category: "LEAVE", Date: "27-02-2026", Reason: "x"},
			want: regularizationerrors.ErrInvalidDateFormat,
		},
		{
			name: "future day",
			req:  ApplyRequest{Category: "LEAVE", Date: "2026-03-05", LeaveType: "CL", Reason: "x"},
			want: regularizationerrors.ErrFutureDate,
		},
		{
			name: "attendance without changes",
			req:  ApplyRequest{Category: "ATTENDANCE", Date: "2026-02-27", Reason: "x"},
			want: regularizationerrors.ErrNothingRequested,
		},
		{
			name: "unknown status",
			req:  ApplyRequest{Category: "ATTENDANCE", Date: "2026-02-27", Status: "sleeping", Reason: "x"},
			want: regularizationerrors.ErrInvalidStatus,
		},
		{
			name: "leave without type",
			req:  ApplyRequest{Category: "LEAVE", Date: "2026-02-27", Reason: "x"},
			want: regularizationerrors.ErrLeaveTypeRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)

			_, err := h.svc.Apply(context.Background(), "t1", self(), tt.req)

			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Empty(t, h.repo.rows)
			assert.NoError(t, h.sql.ExpectationsWereMet())
		})
	}
}

func TestApply_CheckOutNeedsCheckIn(t *testing.T) {
	h := newHarness(t)

	_, err := h.svc.Apply(context.Background(), "t1", self(), ApplyRequest{
		Category: "ATTENDANCE",
		Date:     "2026-02-27",
		CheckOut: "18:00",
		Reason:   "x",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "check_out requires check_in")
}

func TestApply_DuplicatePending(t *testing.T) {
	h := newHarness(t)
	h.seed(Regularization{Category: CategoryAttendance, RequestedStatus: "present"})
	testutil.ExpectTx(h.sql, false)

	_, err := h.svc.Apply(context.Background(), "t1", self(), ApplyRequest{
		Category: "ATTENDANCE",
		Date:     "2026-02-27",
		Status:   "present",
		Reason:   "again",
	})

	assert.True(t, errors.Is(err, regularizationerrors.ErrDuplicatePending))
	assert.Len(t, h.repo.rows, 1)
	assert.Empty(t, h.notifier.msgs)
	assert.NoError(t, h.sql.ExpectationsWereMet())
}

func TestApprove_TransfersBalanceBetweenTypes(t *testing.T) {
	h := newHarness(t)
	sl := h.balance("SL", 5, 0)
	cl := h.balance("CL", 6, 1)
	reg := h.seed(Regularization{
		Category:           CategoryLeave,
		BeforeStatus:       string(attendance.StatusLeave),
		BeforeLeaveType:    "CL",
		RequestedLeaveType: "SL",
	})
	testutil.ExpectTx(h.sql, true)

	resp, err := h.svc.Approve(context.Background(), "t1", manager(), reg.ID.String(), DecisionRequest{Note: "ok"})

	require.NoError(t, err)
	assert.Equal(t, "APPROVED", resp.Status)
	assert.Equal(t, "1", sl.Used.String())
	assert.Equal(t, "4", sl.Available.String())
	assert.Equal(t, "0", cl.Used.String())
	assert.Equal(t, "6", cl.Available.String())

	assert.Equal(t, []string{
		audit.ActionBalanceDebit,
		audit.ActionBalanceRefund,
		audit.ActionRegularizationDecided,
	}, h.audit.actions())
	assert.Equal(t, "0", h.audit.entries[0].Before.(map[string]string)["used"])
	assert.Equal(t, "1", h.audit.entries[0].After.(map[string]string)["used"])

	require.Len(t, h.leaves.recorded, 1)
	l := h.leaves.recorded[0]
	assert.Equal(t, "SL", l.LeaveType)
	assert.Equal(t, "1", l.PaidDays.String())
	assert.Equal(t, "0", l.UnpaidDays.String())
	assert.Equal(t, leave.SourceRegularization, l.Source)
	assert.Equal(t, managerID, *l.ApproverID)
	require.NotNil(t, resp.LeaveRequestID)
	assert.Equal(t, l.ID.String(), *resp.LeaveRequestID)
	assert.Empty(t, h.calendar.corrections)

	require.Len(t, h.notifier.msgs, 1)
	assert.Equal(t, staff.ID.String(), h.notifier.msgs[0].EmployeeID)
	require.Len(t, h.outbox.events, 1)
	assert.Equal(t, "regularization_decided", h.outbox.events[0].EventType)
	assert.NoError(t, h.sql.ExpectationsWereMet())
}

func TestApplyThenApprove_LeaveTypeCaseIsNormalized(t *testing.T) {
	h := newHarness(t)
	sl := h.balance("SL", 5, 0)
	cl := h.balance("CL", 6, 1)
	h.calendar.day = &attendance.Attendance{Status: attendance.StatusLeave, LeaveType: "cl", Date: friday}
	testutil.ExpectTx(h.sql, true)

	applied, err := h.svc.Apply(context.Background(), "t1", self(), ApplyRequest{
		Category:  "leave",
		Date:      "2026-02-27",
		LeaveType: " sl",
		Reason:    "was sick",
	})
	require.NoError(t, err)
	assert.Equal(t, "SL", applied.RequestedLeaveType)
	assert.Equal(t, "CL", applied.BeforeLeaveType)

	testutil.ExpectTx(h.sql, true)
	_, err = h.svc.Approve(context.Background(), "t1", manager(), applied.ID, DecisionRequest{})

	require.NoError(t, err)
	assert.Equal(t, "1", sl.Used.String())
	assert.Equal(t, "0", cl.Used.String())
	require.Len(t, h.leaves.recorded, 1)
	assert.Equal(t, "1", h.leaves.recorded[0].PaidDays.String())
	assert.NoError(t, h.sql.ExpectationsWereMet())
}

func TestApprove_CountAsPresentRefundsOriginal(t *testing.T) {
	h := newHarness(t)
	cl := h.balance("CL", 6, 2)
	reg := h.seed(Regularization{
		Category:        CategoryLeave,
		BeforeStatus:    string(attendance.StatusHalfDay),
		BeforeLeaveType: "CL",
		CountAsPresent:  true,
	})
	testutil.ExpectTx(h.sql, true)

	_, err := h.svc.Approve(context.Background(), "t1", hr(), reg.ID.String(), DecisionRequest{})

	require.NoError(t, err)
	assert.Equal(t, "1.5", cl.Used.String(), "half day gives back half")
	assert.Equal(t, []string{audit.ActionBalanceRefund, audit.ActionRegularizationDecided}, h.audit.actions())
	require.Len(t, h.calendar.corrections, 1)
	assert.Equal(t, attendance.StatusPresent, h.calendar.corrections[0].Status)
	assert.Empty(t, h.leaves.recorded)
	assert.NoError(t, h.sql.ExpectationsWereMet())
}

func TestApprove_AbsentDayWithoutBalanceIsUnpaid(t *testing.T) {
	h := newHarness(t)
	reg := h.seed(Regularization{
		Category:           CategoryLeave,
		BeforeStatus:       string(attendance.StatusAbsent),
		BeforeLeaveType:    BeforeAbsent,
		RequestedLeaveType: "EL",
		IsHalfDay:          true,
	})
	testutil.ExpectTx(h.sql, true)

	_, err := h.svc.Approve(context.Background(), "t1", manager(), reg.ID.String(), DecisionRequest{})

	require.NoError(t, err)
	assert.Equal(t, []string{audit.ActionRegularizationDecided}, h.audit.actions())
	require.Len(t, h.leaves.recorded, 1)
	l := h.leaves.recorded[0]
	assert.Equal(t, "0.5", l.DaysCount.String())
	assert.Equal(t, "0", l.PaidDays.String())
	assert.Equal(t, "0.5", l.UnpaidDays.String())
	assert.Equal(t, leave.HalfDayStart, l.HalfDayTarget)
	assert.NoError(t, h.sql.ExpectationsWereMet())
}

func TestApprove_PartialAvailabilityDebitsWhatIsLeft(t *testing.T) {
	h := newHarness(t)
	h.ledger.rows[leavebalance.Key{EmployeeID: staff.ID.String(), LeaveType: "SL", Year: 2026}] = &leavebalance.LeaveBalance{
		ID:        uuid.New(),
		LeaveType: "SL",
		Year:      2026,
		Total:     decimal.NewFromInt(2),
		Used:      decimal.NewFromFloat(1.5),
		Available: decimal.NewFromFloat(0.5),
	}
	reg := h.seed(Regularization{
		Category:           CategoryLeave,
		BeforeStatus:       BeforeNone,
		BeforeLeaveType:    BeforeNone,
		RequestedLeaveType: "SL",
	})
	testutil.ExpectTx(h.sql, true)

	_, err := h.svc.Approve(context.Background(), "t1", manager(), reg.ID.String(), DecisionRequest{})

	require.NoError(t, err)
	l := h.leaves.recorded[0]
	assert.Equal(t, "0.5", l.PaidDays.String())
	assert.Equal(t, "0.5", l.UnpaidDays.String())
	assert.Equal(t, "0.5", h.audit.entries[0].Meta["days"])
}

func TestApprove_AttendanceCorrection(t *testing.T) {
	h := newHarness(t)
	reg := h.seed(Regularization{
		Category:          CategoryAttendance,
		BeforeStatus:      string(attendance.StatusMissedPunch),
		BeforeLeaveType:   BeforeNone,
		RequestedCheckIn:  "09:00",
		RequestedCheckOut: "18:00",
	})
	testutil.ExpectTx(h.sql, true)

	_, err := h.svc.Approve(context.Background(), "t1", manager(), reg.ID.String(), DecisionRequest{})

	require.NoError(t, err)
	require.Len(t, h.calendar.corrections, 1)
	corr := h.calendar.corrections[0]
	assert.Equal(t, "09:00", corr.CheckIn)
	assert.Equal(t, "18:00", corr.CheckOut)
	assert.Empty(t, corr.Status, "status is derived from the rebuilt punches")
	assert.Empty(t, h.leaves.recorded)
	assert.Equal(t, []string{audit.ActionRegularizationDecided}, h.audit.actions())
}

func TestReject_LeavesEverythingAlone(t *testing.T) {
	h := newHarness(t)
	cl := h.balance("CL", 6, 1)
	reg := h.seed(Regularization{
		Category:        CategoryLeave,
		BeforeStatus:    string(attendance.StatusLeave),
		BeforeLeaveType: "CL",
		CountAsPresent:  true,
	})
	testutil.ExpectTx(h.sql, true)

	resp, err := h.svc.Reject(context.Background(), "t1", manager(), reg.ID.String(), DecisionRequest{Note: "you were out"})

	require.NoError(t, err)
	assert.Equal(t, "REJECTED", resp.Status)
	assert.Equal(t, "you were out", resp.DecisionNote)
	assert.Equal(t, "1", cl.Used.String())
	assert.Empty(t, h.calendar.corrections)
	assert.Equal(t, []string{audit.ActionRegularizationDecided}, h.audit.actions())
	assert.Equal(t, notification.TypeRegularizationDecided, h.notifier.msgs[0].Type)
	assert.Equal(t, StatusRejected, h.repo.rows[reg.ID].Status)
}

func TestDecide_Guards(t *testing.T) {
	t.Run("peer cannot decide", func(t *testing.T) {
		h := newHarness(t)
		reg := h.seed(Regularization{Category: CategoryAttendance, RequestedStatus: "present"})
		testutil.ExpectTx(h.sql, false)

		peer := domain.Actor{EmployeeID: uuid.NewString(), Role: domain.RoleEmployee}
		_, err := h.svc.Approve(context.Background(), "t1", peer, reg.ID.String(), DecisionRequest{})

		assert.True(t, errors.Is(err, regularizationerrors.ErrNotApprover))
		assert.Equal(t, StatusPending, h.repo.rows[reg.ID].Status)
	})

	t.Run("already decided", func(t *testing.T) {
		h := newHarness(t)
		reg := h.seed(Regularization{Category: CategoryAttendance, RequestedStatus: "present"})
		h.repo.rows[reg.ID].Status = StatusApproved
		testutil.ExpectTx(h.sql, false)

		_, err := h.svc.Reject(context.Background(), "t1", hr(), reg.ID.String(), DecisionRequest{})

		assert.True(t, errors.Is(err, regularizationerrors.ErrNotPending))
		assert.Empty(t, h.audit.entries)
	})

	t.Run("unknown id", func(t *testing.T) {
		h := newHarness(t)
		testutil.ExpectTx(h.sql, false)

		_, err := h.svc.Approve(context.Background(), "t1", hr(), uuid.NewString(), DecisionRequest{})

		assert.True(t, errors.Is(err, regularizationerrors.ErrRegularizationNotFound))
	})
}

func TestList_Scopes(t *testing.T) {
	h := newHarness(t)
	h.seed(Regularization{Category: CategoryAttendance, RequestedStatus: "present"})
	decided := h.seed(Regularization{Category: CategoryAttendance, RequestedStatus: "present"})
	h.repo.rows[decided.ID].Status = StatusApproved

	mine, err := h.svc.List(context.Background(), "t1", self(), ListQuery{Scope: ScopeMine})
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	h.employees.EXPECT().
		FindAll(gomock.Any(), employee.ListFilter{ManagerID: managerID.String()}).
		Return([]employee.Employee{staff}, nil)
	pending, err := h.svc.List(context.Background(), "t1", manager(), ListQuery{Scope: ScopePending})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "PENDING", pending[0].Status)

	all, err := h.svc.List(context.Background(), "t1", hr(), ListQuery{Scope: ScopePending})
	require.NoError(t, err)
	assert.Len(t, all, 1)

	other := domain.Actor{EmployeeID: uuid.NewString(), Role: domain.RoleManager}
	h.employees.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return(nil, nil)
	none, err := h.svc.List(context.Background(), "t1", other, ListQuery{Scope: ScopePending})
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = h.svc.List(context.Background(), "t1", self(), ListQuery{Scope: "team"})
	assert.True(t, errors.Is(err, regularizationerrors.ErrInvalidScope))
}

func TestRefundsOriginal(t *testing.T) {
	tests := []struct {
		before, requested string
		present           bool
		want              bool
	}{
		{before: BeforeNone, requested: "CL", want: false},
		{before: BeforeAbsent, requested: "CL", want: false},
		{before: "CL", requested: "cl", want: false},
		{before: "CL", requested: "SL", want: true},
		{before: "CL", present: true, want: true},
	}
	for _, tt := range tests {
		r := Regularization{BeforeLeaveType: tt.before, RequestedLeaveType: tt.requested, CountAsPresent: tt.present}
		assert.Equal(t, tt.want, r.RefundsOriginal(), "%s -> %s", tt.before, tt.requested)
	}
}
