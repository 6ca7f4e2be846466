package regularization

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-hrms/internal/attendance"
	"go-hrms/internal/audit"
	"go-hrms/internal/domain"
	"go-hrms/internal/employee"
	"go-hrms/internal/events"
	"go-hrms/internal/leave"
	"go-hrms/internal/leavebalance"
	"go-hrms/internal/leavepolicy"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/notification"
	regularizationerrors "go-hrms/internal/regularization/errors"
	"go-hrms/internal/settings"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/tenant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SettingsReader is satisfied by settings.Service.
type SettingsReader interface {
	Get(ctx context.Context, tenantID string) (settings.AttendanceSettings, error)
}

// AuditWriter is satisfied by *audit.Store.
type AuditWriter interface {
	Write(ctx context.Context, db *gorm.DB, e audit.Entry) error
}

//go:generate mockgen -source=regularization_service.go -destination=mock/regularization_service_mock.go -package=mock
type Service interface {
	Apply(ctx context.Context, tenantID string, actor domain.Actor, req ApplyRequest) (RegularizationResponse, error)
	Approve(ctx context.Context, tenantID string, actor domain.Actor, id string, req DecisionRequest) (RegularizationResponse, error)
	Reject(ctx context.Context, tenantID string, actor domain.Actor, id string, req DecisionRequest) (RegularizationResponse, error)
	List(ctx context.Context, tenantID string, actor domain.Actor, q ListQuery) ([]RegularizationResponse, error)
}

// Deps groups the collaborators of the regularization flow. Nil factories
// fall back to the package repositories; Outbox may stay nil.
type Deps struct {
	Repos     RepositoryFactory
	Employees employee.RepositoryFactory
	Outbox    func(db *gorm.DB) kafka.OutboxRepository
	Ledger    leavebalance.Ledger
	Leaves    leave.Recorder
	Calendar  attendance.Calendar
	Notifier  notification.Notifier
	Audit     AuditWriter
	Settings  SettingsReader
}

type service struct {
	resolver  tenant.Resolver
	repos     RepositoryFactory
	employees employee.RepositoryFactory
	outbox    func(db *gorm.DB) kafka.OutboxRepository
	ledger    leavebalance.Ledger
	leaves    leave.Recorder
	calendar  attendance.Calendar
	notifier  notification.Notifier
	audit     AuditWriter
	settings  SettingsReader
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(resolver tenant.Resolver, deps Deps, logger ...*zap.Logger) Service {
	l := zap.L().Named("regularization.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("regularization.service")
	}
	if deps.Repos == nil {
		deps.Repos = NewRepository
	}
	if deps.Employees == nil {
		deps.Employees = employee.NewRepository
	}
	return &service{
		resolver:  resolver,
		repos:     deps.Repos,
		employees: deps.Employees,
		outbox:    deps.Outbox,
		ledger:    deps.Ledger,
		leaves:    deps.Leaves,
		calendar:  deps.Calendar,
		notifier:  deps.Notifier,
		audit:     deps.Audit,
		settings:  deps.Settings,
		now:       time.Now,
		logger:    l,
	}
}

func (s *service) Apply(ctx context.Context, tenantID string, actor domain.Actor, req ApplyRequest) (RegularizationResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger).With(zap.String("actor_id", actor.EmployeeID))

	empID, err := uuid.Parse(actor.EmployeeID)
	if err != nil {
		return RegularizationResponse{}, regularizationerrors.ErrInvalidEmployeeID
	}
	category, ok := ParseCategory(req.Category)
	if !ok {
		return RegularizationResponse{}, regularizationerrors.ErrInvalidCategory
	}
	day, err := time.Parse(time.DateOnly, strings.TrimSpace(req.Date))
	if err != nil {
		return RegularizationResponse{}, regularizationerrors.ErrInvalidDateFormat
	}

	st, err := s.settings.Get(ctx, tenantID)
	if err != nil {
		return RegularizationResponse{}, err
	}
	if day.After(dateOnly(s.now().In(st.Location()))) {
		return RegularizationResponse{}, regularizationerrors.ErrFutureDate
	}

	reg := &Regularization{
		ID:         uuid.New(),
		EmployeeID: empID,
		Category:   category,
		Date:       day,
		Status:     StatusPending,
		Reason:     strings.TrimSpace(req.Reason),
	}
	if err := fillRequested(reg, req); err != nil {
		log.Warn("apply regularization rejected", zap.Error(err))
		return RegularizationResponse{}, err
	}

	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return RegularizationResponse{}, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		empl, err := s.findEmployee(ctx, tx, actor.EmployeeID)
		if err != nil {
			return err
		}
		pending, err := s.repos(tx).HasPending(ctx, actor.EmployeeID, day)
		if err != nil {
			return err
		}
		if pending {
			return regularizationerrors.ErrDuplicatePending.WithDetails(map[string]string{"date": req.Date})
		}

		current, err := s.calendar.Day(ctx, tx, actor.EmployeeID, day)
		if err != nil {
			return err
		}
		snapshot(reg, current)

		if err := s.repos(tx).Create(ctx, reg); err != nil {
			return err
		}
		return s.notifyApplied(ctx, tx, *empl, reg)
	})
	if err != nil {
		log.Warn("apply regularization failed", zap.Error(err))
		return RegularizationResponse{}, mapRepositoryError(err)
	}

	log.Info("apply regularization success",
		zap.String("regularization_id", reg.ID.String()),
		zap.String("category", string(reg.Category)),
		zap.String("date", req.Date),
	)
	return mapToResponse(*reg), nil
}

// fillRequested copies the requested values that belong to the category.
func fillRequested(reg *Regularization, req ApplyRequest) error {
	reg.IsHalfDay = req.IsHalfDay

	if reg.Category == CategoryAttendance {
		reg.RequestedCheckIn = strings.TrimSpace(req.CheckIn)
		reg.RequestedCheckOut = strings.TrimSpace(req.CheckOut)
		if v := strings.TrimSpace(req.Status); v != "" {
			status, ok := attendance.ParseStatus(v)
			if !ok {
				return regularizationerrors.ErrInvalidStatus.WithDetails(map[string]string{"status": v})
			}
			reg.RequestedStatus = string(status)
		}
		if reg.RequestedCheckOut != "" && reg.RequestedCheckIn == "" {
			return regularizationerrors.ErrNothingRequested.WithMessage("check_out requires check_in")
		}
		if reg.RequestedCheckIn == "" && reg.RequestedStatus == "" {
			return regularizationerrors.ErrNothingRequested
		}
		return nil
	}

	reg.CountAsPresent = req.CountAsPresent
	if reg.CountAsPresent {
		return nil
	}
	reg.RequestedLeaveType = leavepolicy.NormalizeLeaveType(req.LeaveType)
	if reg.RequestedLeaveType == "" {
		return regularizationerrors.ErrLeaveTypeRequired
	}
	return nil
}

// snapshot records what the day looked like before the change.
func snapshot(reg *Regularization, day *attendance.Attendance) {
	if day == nil {
		reg.BeforeStatus = BeforeNone
		reg.BeforeLeaveType = BeforeNone
		return
	}

	reg.BeforeStatus = string(day.Status)
	switch {
	case day.LeaveType != "" && (day.Status == attendance.StatusLeave || day.Status == attendance.StatusHalfDay):
		reg.BeforeLeaveType = leavepolicy.NormalizeLeaveType(day.LeaveType)
	case day.Status == attendance.StatusAbsent:
		reg.BeforeLeaveType = BeforeAbsent
	default:
		reg.BeforeLeaveType = BeforeNone
	}
	reg.BeforeSnapshot = datatypes.JSONMap{
		"status":          string(day.Status),
		"leave_type":      day.LeaveType,
		"punches":         []attendance.PunchLog(day.Punches),
		"working_hours":   day.WorkingHours,
		"manual_override": day.ManualOverride,
	}
}

func (s *service) Approve(ctx context.Context, tenantID string, actor domain.Actor, id string, req DecisionRequest) (RegularizationResponse, error) {
	return s.decide(ctx, tenantID, actor, id, StatusApproved, req.Note)
}

func (s *service) Reject(ctx context.Context, tenantID string, actor domain.Actor, id string, req DecisionRequest) (RegularizationResponse, error) {
	return s.decide(ctx, tenantID, actor, id, StatusRejected, req.Note)
}

func (s *service) decide(ctx context.Context, tenantID string, actor domain.Actor, id string, status Status, note string) (RegularizationResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger).With(
		zap.String("actor_id", actor.EmployeeID),
		zap.String("regularization_id", id),
		zap.String("decision", string(status)),
	)

	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return RegularizationResponse{}, err
	}

	var out Regularization
	err = db.Transaction(func(tx *gorm.DB) error {
		reg, err := s.repos(tx).FindByID(ctx, id)
		if err != nil {
			return err
		}
		empl, err := s.findEmployee(ctx, tx, reg.EmployeeID.String())
		if err != nil {
			return err
		}
		if !canDecide(actor, *empl) {
			return regularizationerrors.ErrNotApprover
		}
		if reg.Status != StatusPending {
			return regularizationerrors.ErrNotPending.WithDetails(map[string]string{"status": string(reg.Status)})
		}

		now := s.now()
		reg.Status = status
		reg.ApproverID = parseActor(actor)
		reg.DecidedAt = &now
		reg.DecisionNote = strings.TrimSpace(note)

		if status == StatusApproved {
			if err := s.apply(ctx, tx, tenantID, actor, reg); err != nil {
				return err
			}
		}
		if err := s.repos(tx).Update(ctx, reg); err != nil {
			return err
		}

		if err := s.audit.Write(ctx, tx, decisionEntry(actor, reg)); err != nil {
			return err
		}
		if err := s.notifyDecided(ctx, tx, reg); err != nil {
			return err
		}
		out = *reg
		return s.queueDecided(ctx, tx, tenantID, actor.EmployeeID, reg)
	})
	if err != nil {
		log.Warn("decide regularization failed", zap.Error(err))
		return RegularizationResponse{}, mapRepositoryError(err)
	}

	log.Info("decide regularization success", zap.String("category", string(out.Category)))
	return mapToResponse(out), nil
}

// apply carries an approved request into attendance and, for the leave
// category, into the ledger.
func (s *service) apply(ctx context.Context, tx *gorm.DB, tenantID string, actor domain.Actor, reg *Regularization) error {
	employeeID := reg.EmployeeID.String()
	reason := "regularization: " + reg.Reason

	if reg.Category == CategoryAttendance {
		_, err := s.calendar.Correct(ctx, tx, tenantID, employeeID, reg.Date, attendance.Correction{
			CheckIn:  reg.RequestedCheckIn,
			CheckOut: reg.RequestedCheckOut,
			Status:   attendance.Status(reg.RequestedStatus),
			Reason:   reason,
		})
		return err
	}

	st, err := s.settings.Get(ctx, tenantID)
	if err != nil {
		return err
	}
	year := st.AccountingYear(reg.Date)

	days := decimal.NewFromInt(1)
	if reg.IsHalfDay {
		days = decimal.NewFromFloat(0.5)
	}

	paid := decimal.Zero
	if !reg.CountAsPresent && leave.CategoryOf(reg.RequestedLeaveType) == leave.CategoryPaid {
		key := leavebalance.Key{EmployeeID: employeeID, LeaveType: reg.RequestedLeaveType, Year: year}
		if paid, err = s.debit(ctx, tx, actor, reg, key, days); err != nil {
			return err
		}
	}

	if reg.RefundsOriginal() && leave.CategoryOf(reg.BeforeLeaveType) == leave.CategoryPaid {
		refund := decimal.NewFromInt(1)
		if attendance.Status(reg.BeforeStatus) == attendance.StatusHalfDay {
			refund = decimal.NewFromFloat(0.5)
		}
		key := leavebalance.Key{EmployeeID: employeeID, LeaveType: reg.BeforeLeaveType, Year: year}
		if err := s.refund(ctx, tx, actor, reg, key, refund); err != nil {
			return err
		}
	}

	if reg.CountAsPresent {
		_, err := s.calendar.Correct(ctx, tx, tenantID, employeeID, reg.Date, attendance.Correction{
			Status: attendance.StatusPresent,
			Reason: reason,
		})
		return err
	}

	l := &leave.LeaveRequest{
		ID:             uuid.New(),
		EmployeeID:     reg.EmployeeID,
		AppliedBy:      reg.EmployeeID,
		LeaveType:      reg.RequestedLeaveType,
		StartDate:      reg.Date,
		EndDate:        reg.Date,
		IsHalfDay:      reg.IsHalfDay,
		DaysCount:      days,
		PaidDays:       paid,
		UnpaidDays:     days.Sub(paid),
		AccountingYear: year,
		Reason:         reg.Reason,
		Source:         leave.SourceRegularization,
		ApproverID:     reg.ApproverID,
		DecisionNote:   reg.DecisionNote,
		DecidedAt:      reg.DecidedAt,
	}
	if reg.IsHalfDay {
		l.HalfDayTarget = leave.HalfDayStart
	}
	if err := s.leaves.RecordApproved(ctx, tx, tenantID, l); err != nil {
		return err
	}
	reg.LeaveRequestID = &l.ID
	return nil
}

// debit books as much of days as the new type's row covers as used. A
// missing row books nothing and the day stays unpaid.
func (s *service) debit(ctx context.Context, tx *gorm.DB, actor domain.Actor, reg *Regularization, key leavebalance.Key, days decimal.Decimal) (decimal.Decimal, error) {
	before, err := s.ledger.Get(ctx, tx, key)
	if err != nil || before == nil {
		return decimal.Zero, err
	}
	avail := before.Available
	paid, _ := leave.Split(leave.CategoryPaid, days, &avail)
	if !paid.IsPositive() {
		return decimal.Zero, nil
	}

	after, err := s.ledger.Move(ctx, tx, key, leavebalance.Consume, paid)
	if err != nil {
		return decimal.Zero, err
	}
	return paid, s.audit.Write(ctx, tx, balanceEntry(audit.ActionBalanceDebit, actor, reg, before, after, paid))
}

// refund gives back at most what the original type has used.
func (s *service) refund(ctx context.Context, tx *gorm.DB, actor domain.Actor, reg *Regularization, key leavebalance.Key, days decimal.Decimal) error {
	before, err := s.ledger.Get(ctx, tx, key)
	if err != nil || before == nil {
		return err
	}
	amount := decimal.Min(days, before.Used)
	if !amount.IsPositive() {
		return nil
	}

	after, err := s.ledger.Move(ctx, tx, key, leavebalance.Refund, amount)
	if err != nil {
		return err
	}
	return s.audit.Write(ctx, tx, balanceEntry(audit.ActionBalanceRefund, actor, reg, before, after, amount))
}

func (s *service) List(ctx context.Context, tenantID string, actor domain.Actor, q ListQuery) ([]RegularizationResponse, error) {
	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	filter := ListFilter{Status: q.Status}
	switch q.Scope {
	case "", ScopeMine:
		filter.EmployeeIDs = []string{actor.EmployeeID}
	case ScopePending:
		filter.Status = StatusPending
		if !actor.Role.IsPeopleOps() {
			reports, err := s.employees(db).FindAll(ctx, employee.ListFilter{ManagerID: actor.EmployeeID})
			if err != nil {
				return nil, err
			}
			if len(reports) == 0 {
				return []RegularizationResponse{}, nil
			}
			filter.EmployeeIDs = make([]string, 0, len(reports))
			for _, r := range reports {
				filter.EmployeeIDs = append(filter.EmployeeIDs, r.ID.String())
			}
		}
	default:
		return nil, regularizationerrors.ErrInvalidScope
	}

	rows, err := s.repos(db).FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]RegularizationResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, mapToResponse(r))
	}
	return out, nil
}

func (s *service) findEmployee(ctx context.Context, tx *gorm.DB, id string) (*employee.Employee, error) {
	empl, err := s.employees(tx).FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, regularizationerrors.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return empl, nil
}

func (s *service) queueDecided(ctx context.Context, tx *gorm.DB, tenantID, actorID string, reg *Regularization) error {
	if s.outbox == nil {
		return nil
	}
	rid := contextutil.GetRequestID(ctx)
	event := events.RegularizationDecidedEvent{
		EventType:        events.RegularizationDecidedEventType,
		RequestID:        rid,
		TenantID:         tenantID,
		RegularizationID: reg.ID.String(),
		EmployeeID:       reg.EmployeeID.String(),
		ActorID:          actorID,
		Category:         string(reg.Category),
		Date:             reg.Date.Format(time.DateOnly),
		Status:           string(reg.Status),
		OccurredAt:       s.now().UTC(),
	}
	if reg.LeaveRequestID != nil {
		event.LeaveRequestID = reg.LeaveRequestID.String()
	}
	row, err := kafka.NewOutboxEvent(
		events.LeaveStatusTopic,
		event.EventType,
		entityRegularization,
		reg.ID.String(),
		rid,
		event,
	)
	if err != nil {
		return err
	}
	if err := s.outbox(tx).Create(ctx, row); err != nil {
		s.logger.Error("regularization outbox persist failed", zap.String("regularization_id", reg.ID.String()), zap.Error(err))
		return err
	}
	return nil
}

func decisionEntry(actor domain.Actor, reg *Regularization) audit.Entry {
	after := map[string]any{
		"status":               string(reg.Status),
		"requested_status":     reg.RequestedStatus,
		"requested_leave_type": reg.RequestedLeaveType,
		"count_as_present":     reg.CountAsPresent,
	}
	if reg.LeaveRequestID != nil {
		after["leave_request_id"] = reg.LeaveRequestID.String()
	}
	return audit.Entry{
		Action:     audit.ActionRegularizationDecided,
		ActorID:    actor.EmployeeID,
		EntityType: entityRegularization,
		EntityID:   reg.ID.String(),
		Message:    "regularization " + strings.ToLower(string(reg.Status)),
		Before: map[string]any{
			"status":     reg.BeforeStatus,
			"leave_type": reg.BeforeLeaveType,
		},
		After: after,
		Meta: map[string]any{
			"employee_id": reg.EmployeeID.String(),
			"category":    string(reg.Category),
			"date":        reg.Date.Format(time.DateOnly),
		},
	}
}

func balanceEntry(action string, actor domain.Actor, reg *Regularization, before, after *leavebalance.LeaveBalance, days decimal.Decimal) audit.Entry {
	return audit.Entry{
		Action:     action,
		ActorID:    actor.EmployeeID,
		EntityType: "leave_balance",
		EntityID:   after.ID.String(),
		Message:    strings.ToLower(action) + " of " + days.String() + " " + after.LeaveType + " day(s)",
		Before:     balanceView(before),
		After:      balanceView(after),
		Meta: map[string]any{
			"regularization_id": reg.ID.String(),
			"employee_id":       reg.EmployeeID.String(),
			"leave_type":        after.LeaveType,
			"year":              after.Year,
			"days":              days.String(),
		},
	}
}

func balanceView(b *leavebalance.LeaveBalance) map[string]string {
	return map[string]string{
		"total":     b.Total.String(),
		"used":      b.Used.String(),
		"pending":   b.Pending.String(),
		"available": b.Available.String(),
	}
}

func canDecide(actor domain.Actor, empl employee.Employee) bool {
	if actor.Role.IsPeopleOps() {
		return true
	}
	return empl.ManagerID != nil && empl.ManagerID.String() == actor.EmployeeID
}

func parseActor(actor domain.Actor) *uuid.UUID {
	id, err := uuid.Parse(actor.EmployeeID)
	if err != nil {
		return nil
	}
	return &id
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	v := id.String()
	return &v
}

func mapToResponse(r Regularization) RegularizationResponse {
	resp := RegularizationResponse{
		ID:                 r.ID.String(),
		EmployeeID:         r.EmployeeID.String(),
		Category:           string(r.Category),
		Date:               r.Date.Format(time.DateOnly),
		Status:             string(r.Status),
		BeforeStatus:       r.BeforeStatus,
		BeforeLeaveType:    r.BeforeLeaveType,
		Before:             map[string]any(r.BeforeSnapshot),
		RequestedCheckIn:   r.RequestedCheckIn,
		RequestedCheckOut:  r.RequestedCheckOut,
		RequestedStatus:    r.RequestedStatus,
		RequestedLeaveType: r.RequestedLeaveType,
		CountAsPresent:     r.CountAsPresent,
		IsHalfDay:          r.IsHalfDay,
		Reason:             r.Reason,
		ApproverID:         ptr(r.ApproverID),
		DecisionNote:       r.DecisionNote,
		LeaveRequestID:     ptr(r.LeaveRequestID),
		CreatedAt:          r.CreatedAt.Format(time.RFC3339),
	}
	if r.DecidedAt != nil {
		v := r.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	return resp
}
