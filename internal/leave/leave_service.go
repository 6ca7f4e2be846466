package leave

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-hrms/internal/attendance"
	"go-hrms/internal/domain"
	"go-hrms/internal/employee"
	"go-hrms/internal/events"
	"go-hrms/internal/holiday"
	leaveerrors "go-hrms/internal/leave/errors"
	"go-hrms/internal/leavebalance"
	"go-hrms/internal/leavepolicy"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/notification"
	"go-hrms/internal/settings"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/tenant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SettingsReader is satisfied by settings.Service.
type SettingsReader interface {
	Get(ctx context.Context, tenantID string) (settings.AttendanceSettings, error)
}

// Recorder books leave that was decided elsewhere (regularization) inside
// the caller's transaction. The caller owns the ledger movement.
type Recorder interface {
	RecordApproved(ctx context.Context, tx *gorm.DB, tenantID string, l *LeaveRequest) error
}

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Recorder
	Apply(ctx context.Context, tenantID string, actor domain.Actor, req ApplyRequest) (LeaveResponse, error)
	Edit(ctx context.Context, tenantID string, actor domain.Actor, id string, req EditRequest) (LeaveResponse, error)
	Approve(ctx context.Context, tenantID string, actor domain.Actor, id string, req DecisionRequest) (LeaveResponse, error)
	Reject(ctx context.Context, tenantID string, actor domain.Actor, id string, req DecisionRequest) (LeaveResponse, error)
	Cancel(ctx context.Context, tenantID string, actor domain.Actor, id string) (LeaveResponse, error)
	Get(ctx context.Context, tenantID string, actor domain.Actor, id string) (LeaveResponse, error)
	List(ctx context.Context, tenantID string, actor domain.Actor, q ListQuery) ([]LeaveResponse, error)
}

// Deps groups the collaborators of the leave flow. Nil factories fall back
// to the package repositories; Outbox may stay nil to skip event fan-out.
type Deps struct {
	Repos     RepositoryFactory
	Employees employee.RepositoryFactory
	Holidays  holiday.RepositoryFactory
	Outbox    func(db *gorm.DB) kafka.OutboxRepository
	Ledger    leavebalance.Ledger
	Rules     leavepolicy.RuleLookup
	Calendar  attendance.Calendar
	Notifier  notification.Notifier
	Settings  SettingsReader
}

type service struct {
	resolver  tenant.Resolver
	repos     RepositoryFactory
	employees employee.RepositoryFactory
	holidays  holiday.RepositoryFactory
	outbox    func(db *gorm.DB) kafka.OutboxRepository
	ledger    leavebalance.Ledger
	rules     leavepolicy.RuleLookup
	calendar  attendance.Calendar
	notifier  notification.Notifier
	settings  SettingsReader
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(resolver tenant.Resolver, deps Deps, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if deps.Repos == nil {
		deps.Repos = NewRepository
	}
	if deps.Employees == nil {
		deps.Employees = employee.NewRepository
	}
	if deps.Holidays == nil {
		deps.Holidays = holiday.NewRepository
	}
	return &service{
		resolver:  resolver,
		repos:     deps.Repos,
		employees: deps.Employees,
		holidays:  deps.Holidays,
		outbox:    deps.Outbox,
		ledger:    deps.Ledger,
		rules:     deps.Rules,
		calendar:  deps.Calendar,
		notifier:  deps.Notifier,
		settings:  deps.Settings,
		now:       time.Now,
		logger:    l,
	}
}

type span struct {
	start   time.Time
	end     time.Time
	halfDay bool
	target  HalfDayTarget
	session string
}

func parseSpan(startDate, endDate string, isHalfDay bool, target, session string) (span, error) {
	start, err := time.Parse(time.DateOnly, strings.TrimSpace(startDate))
	if err != nil {
		return span{}, leaveerrors.ErrInvalidDateFormat
	}
	end := start
	if strings.TrimSpace(endDate) != "" {
		if end, err = time.Parse(time.DateOnly, strings.TrimSpace(endDate)); err != nil {
			return span{}, leaveerrors.ErrInvalidDateFormat
		}
	}

	sp := span{start: start, end: end}
	if isHalfDay {
		sp.halfDay = true
		sp.target = HalfDayStart
		if strings.TrimSpace(target) != "" {
			t, ok := ParseHalfDayTarget(target)
			if !ok {
				return span{}, leaveerrors.ErrInvalidHalfDay
			}
			sp.target = t
		}
		sp.session = strings.TrimSpace(session)
	}
	return sp, nil
}

// checkDates runs the rules that need no database: past start, range order
// and weekly-off boundaries.
func (s *service) checkDates(st settings.AttendanceSettings, sp span, peopleOps bool) error {
	today := dateOnly(s.now().In(st.Location()))
	if sp.start.Before(today) && !peopleOps {
		return leaveerrors.ErrPastStartDate
	}
	if sp.end.Before(sp.start) {
		return leaveerrors.ErrInvalidDateRange
	}
	for _, d := range []time.Time{sp.start, sp.end} {
		if st.IsWeeklyOff(d.Weekday()) {
			return leaveerrors.ErrWeeklyOffBoundary.WithDetails(map[string]string{
				"date":    d.Format(time.DateOnly),
				"weekday": d.Weekday().String(),
			})
		}
	}
	return nil
}

// checkCalendar rejects holiday boundaries and overlaps with requests that
// still hold their range.
func (s *service) checkCalendar(ctx context.Context, tx *gorm.DB, employeeID string, sp span, excludeID string) error {
	holidays, err := s.holidays(tx).FindInRange(ctx, sp.start, sp.end)
	if err != nil {
		return err
	}
	for _, h := range holidays {
		d := dateOnly(h.Date)
		if d.Equal(sp.start) || d.Equal(sp.end) {
			return leaveerrors.ErrHolidayBoundary.WithDetails(map[string]string{
				"date":    d.Format(time.DateOnly),
				"holiday": h.Name,
			})
		}
	}

	overlap, err := s.repos(tx).HasOverlap(ctx, employeeID, sp.start, sp.end, excludeID)
	if err != nil {
		return err
	}
	if overlap {
		return leaveerrors.ErrLeaveOverlap
	}
	return nil
}

func (s *service) Apply(ctx context.Context, tenantID string, actor domain.Actor, req ApplyRequest) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger).With(zap.String("actor_id", actor.EmployeeID))

	targetID := actor.EmployeeID
	onBehalf := req.EmployeeID != "" && req.EmployeeID != actor.EmployeeID
	if onBehalf {
		if !actor.Role.IsPeopleOps() {
			log.Warn("apply leave for another employee denied", zap.String("employee_id", req.EmployeeID))
			return LeaveResponse{}, leaveerrors.ErrApplyOnBehalfForbidden
		}
		targetID = req.EmployeeID
	}
	empID, err := uuid.Parse(targetID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	appliedBy, err := uuid.Parse(actor.EmployeeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}

	sp, err := parseSpan(req.StartDate, req.EndDate, req.IsHalfDay, req.HalfDayTarget, req.HalfDaySession)
	if err != nil {
		return LeaveResponse{}, err
	}
	st, err := s.settings.Get(ctx, tenantID)
	if err != nil {
		return LeaveResponse{}, err
	}
	if err := s.checkDates(st, sp, actor.Role.IsPeopleOps()); err != nil {
		log.Warn("apply leave rejected", zap.String("employee_id", targetID), zap.Error(err))
		return LeaveResponse{}, err
	}

	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return LeaveResponse{}, err
	}

	l := &LeaveRequest{
		ID:             uuid.New(),
		EmployeeID:     empID,
		AppliedBy:      appliedBy,
		LeaveType:      leavepolicy.NormalizeLeaveType(req.LeaveType),
		StartDate:      sp.start,
		EndDate:        sp.end,
		IsHalfDay:      sp.halfDay,
		HalfDayTarget:  sp.target,
		HalfDaySession: sp.session,
		DaysCount:      DayCount(sp.start, sp.end, sp.halfDay),
		AccountingYear: st.AccountingYear(sp.start),
		Reason:         strings.TrimSpace(req.Reason),
		Status:         StatusPending,
		Source:         SourceApply,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		empl, err := s.findEmployee(ctx, tx, targetID)
		if err != nil {
			return err
		}
		if err := s.checkCalendar(ctx, tx, targetID, sp, ""); err != nil {
			return err
		}

		rule, hasRule, err := s.rules.RuleFor(ctx, tx, *empl, l.LeaveType)
		if err != nil {
			return err
		}
		if hasRule {
			l.LeaveType = rule.LeaveType
		}
		if onBehalf || (hasRule && !rule.RequiresApproval) {
			now := s.now()
			l.Status = StatusApproved
			l.ApproverID = &appliedBy
			l.DecidedAt = &now
		}

		if l.PaidDays, l.UnpaidDays, _, err = s.quote(ctx, tx, l.BalanceKey(), l.DaysCount, decimal.Zero); err != nil {
			return err
		}
		if err := s.repos(tx).Create(ctx, l); err != nil {
			return err
		}

		movement := leavebalance.Reserve
		if l.Status == StatusApproved {
			movement = leavebalance.Consume
		}
		if err := s.move(ctx, tx, l.BalanceKey(), movement, l.PaidDays); err != nil {
			return err
		}

		if l.Status == StatusApproved {
			if err := s.syncAttendance(ctx, tx, l, colorFor(rule, hasRule)); err != nil {
				return err
			}
		}
		if err := s.notifyApplied(ctx, tx, *empl, l, onBehalf); err != nil {
			return err
		}
		return s.queueStatusChanged(ctx, tx, tenantID, actor.EmployeeID, l)
	})
	if err != nil {
		log.Warn("apply leave failed", zap.String("employee_id", targetID), zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	log.Info("apply leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", targetID),
		zap.String("status", string(l.Status)),
		zap.String("paid_days", l.PaidDays.String()),
		zap.String("unpaid_days", l.UnpaidDays.String()),
	)
	return mapToResponse(*l), nil
}

func (s *service) Edit(ctx context.Context, tenantID string, actor domain.Actor, id string, req EditRequest) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger).With(zap.String("actor_id", actor.EmployeeID), zap.String("leave_id", id))

	sp, err := parseSpan(req.StartDate, req.EndDate, req.IsHalfDay, req.HalfDayTarget, req.HalfDaySession)
	if err != nil {
		return LeaveResponse{}, err
	}
	st, err := s.settings.Get(ctx, tenantID)
	if err != nil {
		return LeaveResponse{}, err
	}
	if err := s.checkDates(st, sp, actor.Role.IsPeopleOps()); err != nil {
		return LeaveResponse{}, err
	}

	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return LeaveResponse{}, err
	}

	var out LeaveRequest
	err = db.Transaction(func(tx *gorm.DB) error {
		l, err := s.repos(tx).FindByID(ctx, id)
		if err != nil {
			return err
		}
		if l.AppliedBy.String() != actor.EmployeeID {
			return leaveerrors.ErrNotApplier
		}
		if l.Status != StatusPending {
			return leaveerrors.ErrNotPending.WithDetails(map[string]string{"status": string(l.Status)})
		}
		if err := s.checkCalendar(ctx, tx, l.EmployeeID.String(), sp, l.ID.String()); err != nil {
			return err
		}

		next := *l
		next.LeaveType = leavepolicy.NormalizeLeaveType(req.LeaveType)
		next.StartDate = sp.start
		next.EndDate = sp.end
		next.IsHalfDay = sp.halfDay
		next.HalfDayTarget = sp.target
		next.HalfDaySession = sp.session
		next.DaysCount = DayCount(sp.start, sp.end, sp.halfDay)
		next.AccountingYear = st.AccountingYear(sp.start)
		next.Reason = strings.TrimSpace(req.Reason)

		if err := s.rebook(ctx, tx, l, &next); err != nil {
			return err
		}
		if err := s.repos(tx).Update(ctx, &next); err != nil {
			return err
		}
		out = next
		return nil
	})
	if err != nil {
		log.Warn("edit leave failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	log.Info("edit leave success",
		zap.String("days_count", out.DaysCount.String()),
		zap.String("paid_days", out.PaidDays.String()),
	)
	return mapToResponse(out), nil
}

// rebook moves the reservation from prev to next. On the same ledger row
// only the delta moves; a different row must cover the new request in full.
func (s *service) rebook(ctx context.Context, tx *gorm.DB, prev, next *LeaveRequest) error {
	oldKey, newKey := prev.BalanceKey(), next.BalanceKey()

	if oldKey == newKey {
		paid, unpaid, _, err := s.quote(ctx, tx, newKey, next.DaysCount, prev.PaidDays)
		if err != nil {
			return err
		}
		next.PaidDays, next.UnpaidDays = paid, unpaid
		delta := paid.Sub(prev.PaidDays)
		if delta.IsNegative() {
			return s.move(ctx, tx, newKey, leavebalance.Release, delta.Neg())
		}
		return s.move(ctx, tx, newKey, leavebalance.Reserve, delta)
	}

	paid, unpaid, b, err := s.quote(ctx, tx, newKey, next.DaysCount, decimal.Zero)
	if err != nil {
		return err
	}
	if b != nil && b.Available.LessThan(next.DaysCount) {
		return leaveerrors.ErrInsufficientBalance.WithDetails(map[string]string{
			"leave_type": next.LeaveType,
			"available":  b.Available.String(),
			"requested":  next.DaysCount.String(),
		})
	}
	if err := s.move(ctx, tx, oldKey, leavebalance.Release, prev.PaidDays); err != nil {
		return err
	}
	next.PaidDays, next.UnpaidDays = paid, unpaid
	return s.move(ctx, tx, newKey, leavebalance.Reserve, paid)
}

func (s *service) Approve(ctx context.Context, tenantID string, actor domain.Actor, id string, req DecisionRequest) (LeaveResponse, error) {
	return s.decide(ctx, tenantID, actor, id, StatusApproved, req.Note)
}

func (s *service) Reject(ctx context.Context, tenantID string, actor domain.Actor, id string, req DecisionRequest) (LeaveResponse, error) {
	return s.decide(ctx, tenantID, actor, id, StatusRejected, req.Note)
}

func (s *service) decide(ctx context.Context, tenantID string, actor domain.Actor, id string, status Status, note string) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger).With(
		zap.String("actor_id", actor.EmployeeID),
		zap.String("leave_id", id),
		zap.String("decision", string(status)),
	)

	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return LeaveResponse{}, err
	}

	var out LeaveRequest
	err = db.Transaction(func(tx *gorm.DB) error {
		l, err := s.repos(tx).FindByID(ctx, id)
		if err != nil {
			return err
		}
		empl, err := s.findEmployee(ctx, tx, l.EmployeeID.String())
		if err != nil {
			return err
		}
		if !canDecide(actor, *empl) {
			return leaveerrors.ErrNotApprover
		}
		if l.Status != StatusPending {
			return leaveerrors.ErrNotPending.WithDetails(map[string]string{"status": string(l.Status)})
		}

		movement := leavebalance.Release
		if status == StatusApproved {
			movement = leavebalance.Commit
		}
		if err := s.move(ctx, tx, l.BalanceKey(), movement, l.PaidDays); err != nil {
			return err
		}

		now := s.now()
		l.Status = status
		l.ApproverID = parseActor(actor)
		l.DecidedAt = &now
		l.DecisionNote = strings.TrimSpace(note)
		if err := s.repos(tx).Update(ctx, l); err != nil {
			return err
		}

		if status == StatusApproved {
			rule, hasRule, err := s.rules.RuleFor(ctx, tx, *empl, l.LeaveType)
			if err != nil {
				return err
			}
			if err := s.syncAttendance(ctx, tx, l, colorFor(rule, hasRule)); err != nil {
				return err
			}
		}

		if err := s.notifyDecided(ctx, tx, l); err != nil {
			return err
		}
		out = *l
		return s.queueStatusChanged(ctx, tx, tenantID, actor.EmployeeID, l)
	})
	if err != nil {
		log.Warn("decide leave failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	log.Info("decide leave success", zap.String("paid_days", out.PaidDays.String()))
	return mapToResponse(out), nil
}

func (s *service) Cancel(ctx context.Context, tenantID string, actor domain.Actor, id string) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger).With(zap.String("actor_id", actor.EmployeeID), zap.String("leave_id", id))

	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return LeaveResponse{}, err
	}

	var out LeaveRequest
	err = db.Transaction(func(tx *gorm.DB) error {
		l, err := s.repos(tx).FindByID(ctx, id)
		if err != nil {
			return err
		}
		if l.AppliedBy.String() != actor.EmployeeID {
			return leaveerrors.ErrNotApplier
		}
		switch l.Status {
		case StatusPending:
		case StatusApproved:
			return leaveerrors.ErrApprovedNotCancellable
		default:
			return leaveerrors.ErrNotPending.WithDetails(map[string]string{"status": string(l.Status)})
		}

		if err := s.move(ctx, tx, l.BalanceKey(), leavebalance.Release, l.PaidDays); err != nil {
			return err
		}
		now := s.now()
		l.Status = StatusCancelled
		l.DecidedAt = &now
		if err := s.repos(tx).Update(ctx, l); err != nil {
			return err
		}

		empl, err := s.findEmployee(ctx, tx, l.EmployeeID.String())
		if err != nil {
			return err
		}
		if err := s.notifyCancelled(ctx, tx, *empl, l); err != nil {
			return err
		}
		out = *l
		return s.queueStatusChanged(ctx, tx, tenantID, actor.EmployeeID, l)
	})
	if err != nil {
		log.Warn("cancel leave failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	log.Info("cancel leave success")
	return mapToResponse(out), nil
}

func (s *service) Get(ctx context.Context, tenantID string, actor domain.Actor, id string) (LeaveResponse, error) {
	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return LeaveResponse{}, err
	}
	l, err := s.repos(db).FindByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}

	owner := l.EmployeeID.String() == actor.EmployeeID || l.AppliedBy.String() == actor.EmployeeID
	if !owner && !actor.Role.IsPeopleOps() {
		empl, err := s.findEmployee(ctx, db, l.EmployeeID.String())
		if err != nil {
			return LeaveResponse{}, err
		}
		if empl.ManagerIDString() != actor.EmployeeID {
			return LeaveResponse{}, leaveerrors.ErrLeaveAccessDenied
		}
	}
	return mapToResponse(*l), nil
}

func (s *service) List(ctx context.Context, tenantID string, actor domain.Actor, q ListQuery) ([]LeaveResponse, error) {
	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	filter := ListFilter{Status: q.Status, LeaveType: q.LeaveType}
	switch q.Scope {
	case "", ScopeMine:
		filter.EmployeeIDs = []string{actor.EmployeeID}
	case ScopeTeam:
		reports, err := s.employees(db).FindAll(ctx, employee.ListFilter{ManagerID: actor.EmployeeID})
		if err != nil {
			return nil, err
		}
		if len(reports) == 0 {
			return []LeaveResponse{}, nil
		}
		filter.EmployeeIDs = make([]string, 0, len(reports))
		for _, r := range reports {
			filter.EmployeeIDs = append(filter.EmployeeIDs, r.ID.String())
		}
	case ScopeAll:
		if !actor.Role.IsPeopleOps() {
			return nil, leaveerrors.ErrLeaveAccessDenied
		}
	default:
		return nil, leaveerrors.ErrInvalidScope
	}

	rows, err := s.repos(db).FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]LeaveResponse, 0, len(rows))
	for _, l := range rows {
		out = append(out, mapToResponse(l))
	}
	return out, nil
}

func (s *service) RecordApproved(ctx context.Context, tx *gorm.DB, tenantID string, l *LeaveRequest) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.EndDate.IsZero() {
		l.EndDate = l.StartDate
	}
	if l.DaysCount.IsZero() {
		l.DaysCount = DayCount(l.StartDate, l.EndDate, l.IsHalfDay)
	}
	if l.PaidDays.Add(l.UnpaidDays).IsZero() {
		l.UnpaidDays = l.DaysCount
	}
	if l.AccountingYear == 0 {
		st, err := s.settings.Get(ctx, tenantID)
		if err != nil {
			return err
		}
		l.AccountingYear = st.AccountingYear(l.StartDate)
	}
	if l.Source == "" {
		l.Source = SourceRegularization
	}
	if l.DecidedAt == nil {
		now := s.now()
		l.DecidedAt = &now
	}
	l.Status = StatusApproved

	empl, err := s.findEmployee(ctx, tx, l.EmployeeID.String())
	if err != nil {
		return err
	}
	if err := s.trimCovered(ctx, tx, l); err != nil {
		return err
	}
	if err := s.repos(tx).Create(ctx, l); err != nil {
		return err
	}
	rule, hasRule, err := s.rules.RuleFor(ctx, tx, *empl, l.LeaveType)
	if err != nil {
		return err
	}
	if err := s.syncAttendance(ctx, tx, l, colorFor(rule, hasRule)); err != nil {
		return err
	}
	actorID := ""
	if l.ApproverID != nil {
		actorID = l.ApproverID.String()
	}
	return s.queueStatusChanged(ctx, tx, tenantID, actorID, l)
}

// trimCovered takes the days l books out of approved requests that already
// cover them, so payroll counts each day once. The share comes off the
// bucket matching the old request's category first. A request left with no
// days is cancelled.
func (s *service) trimCovered(ctx context.Context, tx *gorm.DB, l *LeaveRequest) error {
	from, to := dateOnly(l.StartDate), dateOnly(l.EndDate)
	rows, err := s.repos(tx).FindAll(ctx, ListFilter{
		EmployeeIDs: []string{l.EmployeeID.String()},
		Status:      StatusApproved,
		From:        &from,
		To:          &to,
	})
	if err != nil {
		return err
	}

	for i := range rows {
		prev := &rows[i]
		if prev.ID == l.ID {
			continue
		}
		share := decimal.Zero
		for _, d := range Days(*l) {
			if d.Before(dateOnly(prev.StartDate)) || d.After(dateOnly(prev.EndDate)) {
				continue
			}
			share = share.Add(decimal.Min(dayShare(*l, d), dayShare(*prev, d)))
		}
		share = decimal.Min(share, prev.DaysCount)
		if !share.IsPositive() {
			continue
		}

		first, second := &prev.UnpaidDays, &prev.PaidDays
		if CategoryOf(prev.LeaveType) == CategoryPaid {
			first, second = &prev.PaidDays, &prev.UnpaidDays
		}
		take := decimal.Min(share, *first)
		*first = first.Sub(take)
		*second = second.Sub(decimal.Min(share.Sub(take), *second))
		prev.DaysCount = prev.DaysCount.Sub(share)
		if !prev.DaysCount.IsPositive() {
			prev.Status = StatusCancelled
		}
		if err := s.repos(tx).Update(ctx, prev); err != nil {
			return err
		}
		contextutil.GetLogger(ctx, s.logger).Info("approved leave trimmed for regularized day",
			zap.String("leave_id", prev.ID.String()),
			zap.String("superseded_by", l.ID.String()),
			zap.String("days", share.String()),
		)
	}
	return nil
}

func dayShare(l LeaveRequest, d time.Time) decimal.Decimal {
	if hd, ok := l.HalfDayDate(); ok && dateOnly(hd).Equal(d) {
		return half
	}
	return decimal.NewFromInt(1)
}

func (s *service) findEmployee(ctx context.Context, tx *gorm.DB, id string) (*employee.Employee, error) {
	empl, err := s.employees(tx).FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, leaveerrors.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return empl, nil
}

// quote splits days against the row's available balance plus credit, the
// days the same row would get back first.
func (s *service) quote(ctx context.Context, tx *gorm.DB, key leavebalance.Key, days, credit decimal.Decimal) (paid, unpaid decimal.Decimal, b *leavebalance.LeaveBalance, err error) {
	category := CategoryOf(key.LeaveType)
	if category == CategoryUnpaid {
		return decimal.Zero, days, nil, nil
	}
	if b, err = s.ledger.Get(ctx, tx, key); err != nil {
		return decimal.Zero, decimal.Zero, nil, err
	}
	avail := availableOf(b)
	if avail != nil {
		v := avail.Add(credit)
		avail = &v
	}
	paid, unpaid = Split(category, days, avail)
	return paid, unpaid, b, nil
}

func (s *service) move(ctx context.Context, tx *gorm.DB, key leavebalance.Key, m leavebalance.Movement, days decimal.Decimal) error {
	if !days.IsPositive() {
		return nil
	}
	_, err := s.ledger.Move(ctx, tx, key, m, days)
	return err
}

func (s *service) syncAttendance(ctx context.Context, tx *gorm.DB, l *LeaveRequest, color string) error {
	halfDate, hasHalf := l.HalfDayDate()
	dates := Days(*l)
	days := make([]attendance.LeaveDay, 0, len(dates))
	for _, d := range dates {
		status := attendance.StatusLeave
		if hasHalf && d.Equal(dateOnly(halfDate)) {
			status = attendance.StatusHalfDay
		}
		days = append(days, attendance.LeaveDay{
			Date:      d,
			Status:    status,
			LeaveType: l.LeaveType,
			Color:     color,
		})
	}
	return s.calendar.UpsertLeaveDays(ctx, tx, l.EmployeeID.String(), days)
}

func (s *service) queueStatusChanged(ctx context.Context, tx *gorm.DB, tenantID, actorID string, l *LeaveRequest) error {
	if s.outbox == nil {
		return nil
	}
	rid := contextutil.GetRequestID(ctx)
	event := events.LeaveStatusChangedEvent{
		EventType:      events.LeaveStatusChangedEventType,
		RequestID:      rid,
		TenantID:       tenantID,
		LeaveRequestID: l.ID.String(),
		EmployeeID:     l.EmployeeID.String(),
		ActorID:        actorID,
		LeaveType:      l.LeaveType,
		Status:         string(l.Status),
		StartDate:      l.StartDate.Format(time.DateOnly),
		EndDate:        l.EndDate.Format(time.DateOnly),
		OccurredAt:     s.now().UTC(),
	}
	row, err := kafka.NewOutboxEvent(
		events.LeaveStatusTopic,
		event.EventType,
		"leave_request",
		l.ID.String(),
		rid,
		event,
	)
	if err != nil {
		return err
	}
	if err := s.outbox(tx).Create(ctx, row); err != nil {
		s.logger.Error("leave outbox persist failed", zap.String("leave_id", l.ID.String()), zap.Error(err))
		return err
	}
	return nil
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

func colorFor(rule leavepolicy.Rule, ok bool) string {
	if ok && rule.Color != "" {
		return rule.Color
	}
	return leavepolicy.DefaultColor
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:              l.ID.String(),
		EmployeeID:      l.EmployeeID.String(),
		AppliedBy:       l.AppliedBy.String(),
		LeaveType:       l.LeaveType,
		StartDate:       l.StartDate.Format(time.DateOnly),
		EndDate:         l.EndDate.Format(time.DateOnly),
		IsHalfDay:       l.IsHalfDay,
		HalfDayTarget:   string(l.HalfDayTarget),
		HalfDaySession:  l.HalfDaySession,
		DaysCount:       l.DaysCount,
		PaidLeaveDays:   l.PaidDays,
		UnpaidLeaveDays: l.UnpaidDays,
		AccountingYear:  l.AccountingYear,
		Reason:          l.Reason,
		Status:          string(l.Status),
		Source:          string(l.Source),
		DecisionNote:    l.DecisionNote,
		CreatedAt:       l.CreatedAt.Format(time.RFC3339),
	}
	if l.ApproverID != nil {
		v := l.ApproverID.String()
		resp.ApproverID = &v
	}
	if l.DecidedAt != nil {
		v := l.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	return resp
}
