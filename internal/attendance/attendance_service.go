package attendance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	attendanceerrors "go-hrms/internal/attendance/errors"
	"go-hrms/internal/audit"
	"go-hrms/internal/employee"
	"go-hrms/internal/settings"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/tenant"

	"github.com/google/uuid"
	"go.uber.org/zap"
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

// LeaveDay stamps one calendar day from an approved leave.
type LeaveDay struct {
	Date      time.Time
	Status    Status
	LeaveType string
	Color     string
}

// Correction rebuilds one day from an approved regularization. Empty
// CheckIn/CheckOut keep the logged punches; empty Status re-derives it.
type Correction struct {
	CheckIn  string
	CheckOut string
	Status   Status
	Reason   string
}

// Calendar is what the leave and regularization flows use, always inside
// their own transaction.
type Calendar interface {
	Day(ctx context.Context, tx *gorm.DB, employeeID string, day time.Time) (*Attendance, error)
	UpsertLeaveDays(ctx context.Context, tx *gorm.DB, employeeID string, days []LeaveDay) error
	Correct(ctx context.Context, tx *gorm.DB, tenantID, employeeID string, day time.Time, c Correction) (*Attendance, error)
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Calendar
	Punch(ctx context.Context, tenantID, employeeID string, req PunchRequest, clientIP string) (PunchResponse, error)
	Today(ctx context.Context, tenantID, employeeID string) (TodayResponse, error)
	List(ctx context.Context, tenantID string, filter ListFilter) ([]AttendanceResponse, error)
	Override(ctx context.Context, tenantID, actorID, id string, req OverrideRequest) (AttendanceResponse, error)
	Import(ctx context.Context, tenantID, actorID, filename string, r io.Reader) (ImportResult, error)
}

type service struct {
	resolver  tenant.Resolver
	repos     RepositoryFactory
	employees employee.RepositoryFactory
	settings  SettingsReader
	audit     AuditWriter
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	resolver tenant.Resolver,
	repos RepositoryFactory,
	employees employee.RepositoryFactory,
	settings SettingsReader,
	audit AuditWriter,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	if repos == nil {
		repos = NewRepository
	}
	if employees == nil {
		employees = employee.NewRepository
	}
	return &service{
		resolver:  resolver,
		repos:     repos,
		employees: employees,
		settings:  settings,
		audit:     audit,
		now:       time.Now,
		logger:    l,
	}
}

// violation is a rejected punch; it is audit-logged on the plain handle so
// the record survives the rolled back transaction.
type violation struct {
	err    *apperror.AppError
	action string
	meta   map[string]any
}

func (s *service) Punch(ctx context.Context, tenantID, employeeID string, req PunchRequest, clientIP string) (PunchResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger).With(zap.String("employee_id", employeeID))

	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return PunchResponse{}, apperror.InvalidField("employee_id")
	}

	st, err := s.settings.Get(ctx, tenantID)
	if err != nil {
		return PunchResponse{}, err
	}
	loc := st.Location()
	now := s.now().In(loc)

	localDay := localMidnight(now, loc)
	if req.Date != "" {
		localDay, err = time.ParseInLocation(time.DateOnly, req.Date, loc)
		if err != nil {
			return PunchResponse{}, attendanceerrors.ErrInvalidDate
		}
	}
	day := calendarDay(localDay)

	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return PunchResponse{}, err
	}

	if v := checkLocation(st, req); v != nil {
		return PunchResponse{}, s.reject(ctx, db, employeeID, day, nil, v)
	}
	if v := checkNetwork(st, clientIP); v != nil {
		return PunchResponse{}, s.reject(ctx, db, employeeID, day, nil, v)
	}

	var (
		rec      *Attendance
		before   *Attendance
		kind     PunchType
		warning  string
		rejected *violation
	)
	err = db.Transaction(func(tx *gorm.DB) error {
		repo := s.repos(tx)
		existing, err := repo.FindDay(ctx, employeeID, day)
		if err != nil {
			return err
		}
		if existing == nil {
			rec = &Attendance{ID: uuid.New(), EmployeeID: empID, Date: day, Status: StatusPresent}
		} else {
			snapshot := *existing
			snapshot.Punches = append(snapshot.Punches[:0:0], existing.Punches...)
			before = &snapshot
			rec = existing
		}

		kind = NextPunchType(rec.Punches)
		if v, block := checkPunchLimits(st, rec.Punches, kind); v != nil {
			if block {
				rejected = v
				return v.err
			}
			warning = v.err.Message
			log.Warn("punch limit exceeded, allowed by policy", zap.Int("punches", len(rec.Punches)))
			if err := s.audit.Write(ctx, tx, violationEntry(employeeID, day, before, v)); err != nil {
				log.Error("audit punch limit warning failed", zap.Error(err))
			}
		}

		rec.Punches = append(rec.Punches, PunchLog{
			Type:      kind,
			Time:      now,
			Device:    req.Device,
			Location:  req.Location,
			IP:        clientIP,
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		})

		switch {
		case kind == PunchIn && len(rec.Punches) == 1:
			if cutoff, err := LateCutoff(localDay, st); err == nil {
				rec.IsLate = now.After(cutoff)
			} else {
				log.Warn("late cutoff unavailable", zap.Error(err))
			}
		case kind == PunchOut:
			if end, err := ShiftEndOn(localDay, st); err == nil {
				rec.IsEarlyOut = now.Before(end)
			} else {
				log.Warn("shift end unavailable", zap.Error(err))
			}
		}

		Evaluate(rec, st, kind == PunchOut)

		if existing == nil {
			return mapRepositoryError(repo.Create(ctx, rec))
		}
		return mapRepositoryError(repo.Update(ctx, rec))
	})
	if rejected != nil {
		return PunchResponse{}, s.reject(ctx, db, employeeID, day, before, rejected)
	}
	if err != nil {
		log.Error("punch failed", zap.Error(err))
		return PunchResponse{}, err
	}

	log.Info("punch recorded",
		zap.String("type", string(kind)),
		zap.String("date", day.Format(time.DateOnly)),
		zap.String("status", string(rec.Status)),
		zap.Float64("working_hours", rec.WorkingHours),
	)
	return PunchResponse{
		Attendance:   mapToResponse(*rec),
		PunchType:    kind,
		PunchMode:    string(st.PunchMode),
		IsLate:       rec.IsLate,
		IsEarlyOut:   rec.IsEarlyOut,
		WorkingHours: rec.WorkingHours,
		Warning:      warning,
	}, nil
}

func checkLocation(st settings.AttendanceSettings, req PunchRequest) *violation {
	if !st.GeofencingEnabled {
		return nil
	}
	if req.Latitude == nil || req.Longitude == nil {
		return &violation{
			err:    attendanceerrors.ErrLocationRequired,
			action: audit.ActionGeoFencingViolation,
			meta:   map[string]any{"radius_m": st.GeofenceRadiusM},
		}
	}
	distance := DistanceMeters(st.OfficeLatitude, st.OfficeLongitude, *req.Latitude, *req.Longitude)
	if distance <= st.GeofenceRadiusM {
		return nil
	}
	return &violation{
		err:    attendanceerrors.ErrGeoFencingViolation,
		action: audit.ActionGeoFencingViolation,
		meta: map[string]any{
			"distance_m": round2(distance),
			"radius_m":   st.GeofenceRadiusM,
			"latitude":   *req.Latitude,
			"longitude":  *req.Longitude,
		},
	}
}

func checkNetwork(st settings.AttendanceSettings, clientIP string) *violation {
	if !st.IPRestrictionEnabled || IPAllowed(clientIP, st.AllowedIPs) {
		return nil
	}
	return &violation{
		err:    attendanceerrors.ErrIPRestrictionViolation,
		action: audit.ActionIPRestrictionViolation,
		meta: map[string]any{
			"ip":          clientIP,
			"allowed_ips": []string(st.AllowedIPs),
		},
	}
}

// checkPunchLimits reports a violation and whether it blocks the punch.
func checkPunchLimits(st settings.AttendanceSettings, punches []PunchLog, next PunchType) (*violation, bool) {
	n := len(punches)
	if st.PunchMode == settings.PunchModeSingle {
		if n >= 2 {
			return &violation{
				err:    attendanceerrors.ErrSinglePunchMode,
				action: audit.ActionPunchModeViolation,
				meta:   map[string]any{"punches": n, "attempted": string(next)},
			}, true
		}
		return nil, false
	}
	if st.MaxPunchesPerDay > 0 && n >= st.MaxPunchesPerDay {
		return &violation{
			err:    attendanceerrors.ErrMaxPunchLimit,
			action: audit.ActionPunchLimitExceeded,
			meta:   map[string]any{"punches": n, "max_punches_per_day": st.MaxPunchesPerDay},
		}, st.MaxPunchAction != settings.MaxPunchWarn
	}
	return nil, false
}

func violationEntry(employeeID string, day time.Time, before *Attendance, v *violation) audit.Entry {
	meta := make(map[string]any, len(v.meta)+1)
	for k, val := range v.meta {
		meta[k] = val
	}
	meta["date"] = day.Format(time.DateOnly)
	var snapshot any
	if before != nil {
		snapshot = before
	}
	return audit.Entry{
		Action:     v.action,
		ActorID:    employeeID,
		EntityType: "attendance",
		EntityID:   employeeID,
		Message:    v.err.Message,
		Before:     snapshot,
		Meta:       meta,
	}
}

func (s *service) reject(ctx context.Context, db *gorm.DB, employeeID string, day time.Time, before *Attendance, v *violation) error {
	log := contextutil.GetLogger(ctx, s.logger)
	if err := s.audit.Write(ctx, db, violationEntry(employeeID, day, before, v)); err != nil {
		log.Error("audit punch violation failed", zap.String("action", v.action), zap.Error(err))
	}
	log.Warn("punch rejected",
		zap.String("employee_id", employeeID),
		zap.String("code", v.err.Code),
		zap.Any("details", v.meta),
	)
	return v.err.WithDetails(v.meta)
}

func (s *service) Today(ctx context.Context, tenantID, employeeID string) (TodayResponse, error) {
	st, err := s.settings.Get(ctx, tenantID)
	if err != nil {
		return TodayResponse{}, err
	}
	day := calendarDay(s.now().In(st.Location()))

	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return TodayResponse{}, err
	}
	rec, err := s.repos(db).FindDay(ctx, employeeID, day)
	if err != nil {
		return TodayResponse{}, err
	}

	resp := TodayResponse{
		Date:      day.Format(time.DateOnly),
		PunchMode: string(st.PunchMode),
		NextPunch: PunchIn,
	}
	if rec != nil {
		out := mapToResponse(*rec)
		resp.Attendance = &out
		resp.NextPunch = NextPunchType(rec.Punches)
	}
	return resp, nil
}

func (s *service) List(ctx context.Context, tenantID string, filter ListFilter) ([]AttendanceResponse, error) {
	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	rows, err := s.repos(db).FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	res := make([]AttendanceResponse, len(rows))
	for i, a := range rows {
		res[i] = mapToResponse(a)
	}
	return res, nil
}

func (s *service) Override(ctx context.Context, tenantID, actorID, id string, req OverrideRequest) (AttendanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	status, ok := ParseStatus(req.Status)
	if !ok {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidStatus
	}
	st, err := s.settings.Get(ctx, tenantID)
	if err != nil {
		return AttendanceResponse{}, err
	}
	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return AttendanceResponse{}, err
	}

	var rec *Attendance
	err = db.Transaction(func(tx *gorm.DB) error {
		repo := s.repos(tx)
		found, err := repo.FindByID(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		before := *found
		rec = found

		if req.CheckIn != "" || req.CheckOut != "" {
			punches, err := buildPunches(localMidnight(rec.Date, st.Location()), req.CheckIn, req.CheckOut, "override")
			if err != nil {
				return err
			}
			rec.Punches = punches
			Evaluate(rec, st, true)
		}
		applyManualStatus(rec, status, req.Reason)

		if err := repo.Update(ctx, rec); err != nil {
			return err
		}
		return s.audit.Write(ctx, tx, audit.Entry{
			Action:     audit.ActionAttendanceOverride,
			ActorID:    actorID,
			EntityType: "attendance",
			EntityID:   rec.ID.String(),
			Message:    req.Reason,
			Before:     before,
			After:      rec,
		})
	})
	if err != nil {
		log.Warn("attendance override failed", zap.String("attendance_id", id), zap.Error(err))
		return AttendanceResponse{}, err
	}

	log.Info("attendance override success",
		zap.String("attendance_id", id),
		zap.String("status", string(rec.Status)),
		zap.String("actor_id", actorID),
	)
	return mapToResponse(*rec), nil
}

func (s *service) Day(ctx context.Context, tx *gorm.DB, employeeID string, day time.Time) (*Attendance, error) {
	return s.repos(tx).FindDay(ctx, employeeID, calendarDay(day))
}

// UpsertLeaveDays keeps the punch log of days that already have one.
func (s *service) UpsertLeaveDays(ctx context.Context, tx *gorm.DB, employeeID string, days []LeaveDay) error {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return apperror.InvalidField("employee_id")
	}

	repo := s.repos(tx)
	for _, d := range days {
		day := calendarDay(d.Date)
		rec, err := repo.FindDay(ctx, employeeID, day)
		if err != nil {
			return err
		}
		if rec == nil {
			rec = &Attendance{ID: uuid.New(), EmployeeID: empID, Date: day, Status: d.Status, LeaveType: d.LeaveType, Color: d.Color}
			if err := repo.Create(ctx, rec); err != nil {
				return mapRepositoryError(err)
			}
			continue
		}
		rec.Status = d.Status
		rec.LeaveType = d.LeaveType
		rec.Color = d.Color
		if err := repo.Update(ctx, rec); err != nil {
			return err
		}
	}
	contextutil.GetLogger(ctx, s.logger).Debug("leave days synced to attendance",
		zap.String("employee_id", employeeID),
		zap.Int("days", len(days)),
	)
	return nil
}

func (s *service) Correct(ctx context.Context, tx *gorm.DB, tenantID, employeeID string, day time.Time, c Correction) (*Attendance, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, apperror.InvalidField("employee_id")
	}
	st, err := s.settings.Get(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	day = calendarDay(day)
	repo := s.repos(tx)
	rec, err := repo.FindDay(ctx, employeeID, day)
	if err != nil {
		return nil, err
	}
	created := rec == nil
	if created {
		rec = &Attendance{ID: uuid.New(), EmployeeID: empID, Date: day, Status: StatusAbsent}
	}

	if c.CheckIn != "" || c.CheckOut != "" {
		punches, err := buildPunches(localMidnight(day, st.Location()), c.CheckIn, c.CheckOut, "regularization")
		if err != nil {
			return nil, err
		}
		rec.Punches = punches
	}
	if c.Status == "" {
		rec.Status = ""
	}
	Evaluate(rec, st, true)
	status := c.Status
	if status == "" {
		status = rec.Status
	}
	applyManualStatus(rec, status, c.Reason)

	if created {
		err = repo.Create(ctx, rec)
	} else {
		err = repo.Update(ctx, rec)
	}
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return rec, nil
}

func (s *service) Import(ctx context.Context, tenantID, actorID, filename string, r io.Reader) (ImportResult, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	rows, err := readRows(filename, r)
	if err != nil {
		log.Warn("attendance import unreadable", zap.String("file", filename), zap.Error(err))
		return ImportResult{}, err
	}
	if len(rows) == 0 {
		return ImportResult{}, attendanceerrors.ErrMissingColumns
	}
	cols, err := mapColumns(rows[0])
	if err != nil {
		return ImportResult{}, err
	}

	st, err := s.settings.Get(ctx, tenantID)
	if err != nil {
		return ImportResult{}, err
	}
	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return ImportResult{}, err
	}

	imp := &importer{
		repo:     s.repos(db),
		empls:    s.employees(db),
		st:       st,
		loc:      st.Location(),
		resolved: make(map[string]uuid.UUID),
	}

	result := ImportResult{Errors: []RowError{}}
	for i, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		line := i + 1
		code := cols.cell(row, colEmployee)
		if err := imp.apply(ctx, cols, row); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, RowError{Row: line, EmployeeCode: code, Error: err.Error()})
			continue
		}
		result.Success++
	}

	log.Info("attendance import finished",
		zap.String("file", filename),
		zap.String("actor_id", actorID),
		zap.Int("success", result.Success),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

// importer caches employee lookups across the rows of one file.
type importer struct {
	repo     Repository
	empls    employee.Repository
	st       settings.AttendanceSettings
	loc      *time.Location
	resolved map[string]uuid.UUID
}

func (imp *importer) apply(ctx context.Context, cols columns, row []string) error {
	code := cols.cell(row, colEmployee)
	if code == "" {
		return errors.New("employee code is required")
	}
	empID, ok := imp.resolved[code]
	if !ok {
		empl, err := imp.empls.FindByCode(ctx, code)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("employee code %q not found", code)
			}
			return err
		}
		empID = empl.ID
		imp.resolved[code] = empID
	}

	rawDate := cols.cell(row, colDate)
	localDay, err := parseImportDate(rawDate, imp.loc)
	if err != nil {
		return fmt.Errorf("invalid date %q", rawDate)
	}

	checkIn, err := parseImportClock(cols.cell(row, colCheckIn))
	if err != nil {
		return fmt.Errorf("invalid check-in %q", cols.cell(row, colCheckIn))
	}
	checkOut, err := parseImportClock(cols.cell(row, colCheckOut))
	if err != nil {
		return fmt.Errorf("invalid check-out %q", cols.cell(row, colCheckOut))
	}

	var status Status
	if raw := cols.cell(row, colStatus); raw != "" {
		if status, ok = ParseStatus(raw); !ok {
			return fmt.Errorf("invalid status %q", raw)
		}
	}

	day := calendarDay(localDay)
	rec, err := imp.repo.FindDay(ctx, empID.String(), day)
	if err != nil {
		return err
	}
	created := rec == nil
	if created {
		rec = &Attendance{ID: uuid.New(), EmployeeID: empID, Date: day}
	}

	if checkIn != "" || checkOut != "" {
		punches, err := buildPunches(localDay, checkIn, checkOut, "import")
		if err != nil {
			return err
		}
		rec.Punches = punches
	}
	rec.Status = ""
	Evaluate(rec, imp.st, true)
	if status != "" {
		rec.Status = status
	}
	applyManualStatus(rec, rec.Status, importOverrideReason)

	if created {
		return mapRepositoryError(imp.repo.Create(ctx, rec))
	}
	return imp.repo.Update(ctx, rec)
}

// applyManualStatus marks a day as edited by hand; leave tags only stay on
// leave days.
func applyManualStatus(rec *Attendance, status Status, reason string) {
	rec.Status = status
	rec.ManualOverride = true
	rec.OverrideReason = reason
	if status != StatusLeave && status != StatusHalfDay {
		rec.LeaveType = ""
		rec.Color = ""
	}
}

// buildPunches turns HH:MM check-in/out on localDay into a log. A check-out
// earlier than check-in belongs to the next day.
func buildPunches(localDay time.Time, checkIn, checkOut, device string) ([]PunchLog, error) {
	var punches []PunchLog
	var in time.Time
	if checkIn != "" {
		t, err := settings.ClockOn(localDay, checkIn)
		if err != nil {
			return nil, attendanceerrors.ErrInvalidTime.WithDetails(map[string]string{"check_in": checkIn})
		}
		in = t
		punches = append(punches, PunchLog{Type: PunchIn, Time: t, Device: device})
	}
	if checkOut != "" {
		if checkIn == "" {
			return nil, attendanceerrors.ErrInvalidTime.WithMessage("check-out requires a check-in")
		}
		t, err := settings.ClockOn(localDay, checkOut)
		if err != nil {
			return nil, attendanceerrors.ErrInvalidTime.WithDetails(map[string]string{"check_out": checkOut})
		}
		if !t.After(in) {
			t = t.Add(24 * time.Hour)
		}
		punches = append(punches, PunchLog{Type: PunchOut, Time: t, Device: device})
	}
	return punches, nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	punches := []PunchLog(a.Punches)
	if punches == nil {
		punches = []PunchLog{}
	}
	return AttendanceResponse{
		ID:             a.ID.String(),
		EmployeeID:     a.EmployeeID.String(),
		Date:           a.Date.Format(time.DateOnly),
		Status:         string(a.Status),
		Punches:        punches,
		WorkingHours:   a.WorkingHours,
		OvertimeHours:  a.OvertimeHours,
		IsLate:         a.IsLate,
		IsEarlyOut:     a.IsEarlyOut,
		ManualOverride: a.ManualOverride,
		OverrideReason: a.OverrideReason,
		LeaveType:      a.LeaveType,
		Color:          a.Color,
	}
}
