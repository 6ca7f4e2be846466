package payroll

import (
	"context"
	"strings"
	"time"

	"go-hrms/internal/attendance"
	"go-hrms/internal/employee"
	"go-hrms/internal/leave"
	payrollerrors "go-hrms/internal/payroll/errors"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/tenant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	CreateTemplate(ctx context.Context, tenantID string, req CreateTemplateRequest) (TemplateResponse, error)
	ListTemplates(ctx context.Context, tenantID string) ([]TemplateResponse, error)
	Run(ctx context.Context, tenantID, actorID string, req RunRequest) (RunResponse, error)
	GetRun(ctx context.Context, tenantID, id string) (RunResponse, error)
	PayslipPDF(ctx context.Context, tenantID, id string) ([]byte, string, error)
}

// Deps lets tests swap the repositories; zero values use the package ones.
type Deps struct {
	Repos      RepositoryFactory
	Employees  employee.RepositoryFactory
	Leaves     leave.RepositoryFactory
	Attendance attendance.RepositoryFactory
}

type service struct {
	resolver   tenant.Resolver
	repos      RepositoryFactory
	employees  employee.RepositoryFactory
	leaves     leave.RepositoryFactory
	attendance attendance.RepositoryFactory
	logger     *zap.Logger
}

func NewService(resolver tenant.Resolver, deps Deps, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	if deps.Repos == nil {
		deps.Repos = NewRepository
	}
	if deps.Employees == nil {
		deps.Employees = employee.NewRepository
	}
	if deps.Leaves == nil {
		deps.Leaves = leave.NewRepository
	}
	if deps.Attendance == nil {
		deps.Attendance = attendance.NewRepository
	}
	return &service{
		resolver:   resolver,
		repos:      deps.Repos,
		employees:  deps.Employees,
		leaves:     deps.Leaves,
		attendance: deps.Attendance,
		logger:     l,
	}
}

func (s *service) CreateTemplate(ctx context.Context, tenantID string, req CreateTemplateRequest) (TemplateResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return TemplateResponse{}, payrollerrors.ErrTemplateNameRequired
	}
	if req.Basic.IsNegative() || req.Allowance.IsNegative() {
		return TemplateResponse{}, payrollerrors.ErrInvalidMoneyValue
	}

	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return TemplateResponse{}, err
	}

	t := &SalaryTemplate{
		ID:        uuid.New(),
		Name:      name,
		Basic:     req.Basic,
		Allowance: req.Allowance,
	}
	if err := s.repos(db).CreateTemplate(ctx, t); err != nil {
		return TemplateResponse{}, mapTemplateError(err)
	}

	contextutil.GetLogger(ctx, s.logger).Info("salary template created",
		zap.String("template_id", t.ID.String()),
		zap.String("gross", t.Gross().String()),
	)
	return mapTemplate(*t), nil
}

func (s *service) ListTemplates(ctx context.Context, tenantID string) ([]TemplateResponse, error) {
	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	rows, err := s.repos(db).FindTemplates(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]TemplateResponse, 0, len(rows))
	for _, t := range rows {
		out = append(out, mapTemplate(t))
	}
	return out, nil
}

// Run pays every active employee with a template for one calendar month.
func (s *service) Run(ctx context.Context, tenantID, actorID string, req RunRequest) (RunResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger).With(zap.String("period", req.Period))

	start, end, err := PeriodOf(strings.TrimSpace(req.Period))
	if err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidPeriodFormat
	}
	createdBy, err := uuid.Parse(actorID)
	if err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidActorID
	}

	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return RunResponse{}, err
	}

	run := &Run{
		ID:          uuid.New(),
		Period:      start.Format("2006-01"),
		PeriodStart: start,
		PeriodEnd:   end,
		PeriodDays:  end.Day(),
		TotalNet:    decimal.Zero,
		CreatedBy:   createdBy,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		exists, err := s.repos(tx).RunExists(ctx, run.Period)
		if err != nil {
			return err
		}
		if exists {
			return payrollerrors.ErrRunExists
		}

		payees, templates, err := s.payees(ctx, tx)
		if err != nil {
			return err
		}
		unpaid, err := s.unpaidLeave(ctx, tx, payees, start, end)
		if err != nil {
			return err
		}

		for _, e := range payees {
			t := templates[*e.SalaryTemplateID]
			absent, err := s.attendance(tx).CountByStatus(ctx, e.ID.String(), start, end, attendance.StatusAbsent)
			if err != nil {
				return err
			}
			lop := LOPDays(unpaid[e.ID], absent, run.PeriodDays)
			slip := Payslip{
				ID:              uuid.New(),
				RunID:           run.ID,
				EmployeeID:      e.ID,
				EmployeeCode:    e.Code,
				EmployeeName:    e.FullName(),
				TemplateName:    t.Name,
				Basic:           t.Basic,
				Allowance:       t.Allowance,
				Gross:           t.Gross(),
				UnpaidLeaveDays: unpaid[e.ID],
				AbsentDays:      int(absent),
				LOPDays:         lop,
				Net:             Prorate(t.Gross(), run.PeriodDays, lop),
			}
			run.TotalNet = run.TotalNet.Add(slip.Net)
			run.Payslips = append(run.Payslips, slip)
		}
		return s.repos(tx).CreateRun(ctx, run)
	})
	if err != nil {
		log.Warn("payroll run failed", zap.Error(err))
		return RunResponse{}, mapRunError(err)
	}

	log.Info("payroll run completed",
		zap.String("run_id", run.ID.String()),
		zap.Int("payslips", len(run.Payslips)),
		zap.String("total_net", run.TotalNet.String()),
	)
	return mapRun(*run), nil
}

// payees lists active employees whose salary template exists.
func (s *service) payees(ctx context.Context, tx *gorm.DB) ([]employee.Employee, map[uuid.UUID]SalaryTemplate, error) {
	rows, err := s.repos(tx).FindTemplates(ctx)
	if err != nil {
		return nil, nil, err
	}
	templates := make(map[uuid.UUID]SalaryTemplate, len(rows))
	for _, t := range rows {
		templates[t.ID] = t
	}

	active, err := s.employees(tx).FindAll(ctx, employee.ListFilter{Status: employee.StatusActive})
	if err != nil {
		return nil, nil, err
	}
	out := make([]employee.Employee, 0, len(active))
	for _, e := range active {
		if e.SalaryTemplateID == nil {
			continue
		}
		if _, ok := templates[*e.SalaryTemplateID]; ok {
			out = append(out, e)
		}
	}
	return out, templates, nil
}

// unpaidLeave sums unpaid days of approved leave starting inside the period.
func (s *service) unpaidLeave(ctx context.Context, tx *gorm.DB, payees []employee.Employee, start, end time.Time) (map[uuid.UUID]decimal.Decimal, error) {
	out := make(map[uuid.UUID]decimal.Decimal, len(payees))
	if len(payees) == 0 {
		return out, nil
	}
	ids := make([]string, 0, len(payees))
	for _, e := range payees {
		ids = append(ids, e.ID.String())
	}

	rows, err := s.leaves(tx).FindAll(ctx, leave.ListFilter{
		EmployeeIDs: ids,
		Status:      leave.StatusApproved,
		From:        &start,
		To:          &end,
	})
	if err != nil {
		return nil, err
	}
	for _, l := range rows {
		if l.StartDate.Before(start) || l.StartDate.After(end) {
			continue
		}
		out[l.EmployeeID] = out[l.EmployeeID].Add(l.UnpaidDays)
	}
	return out, nil
}

func (s *service) GetRun(ctx context.Context, tenantID, id string) (RunResponse, error) {
	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return RunResponse{}, err
	}
	run, err := s.repos(db).FindRun(ctx, id)
	if err != nil {
		return RunResponse{}, mapRunError(err)
	}
	return mapRun(*run), nil
}

// PayslipPDF renders one payslip and suggests a file name for it.
func (s *service) PayslipPDF(ctx context.Context, tenantID, id string) ([]byte, string, error) {
	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return nil, "", err
	}
	repo := s.repos(db)
	p, err := repo.FindPayslip(ctx, id)
	if err != nil {
		return nil, "", mapPayslipError(err)
	}
	run, err := repo.FindRun(ctx, p.RunID.String())
	if err != nil {
		return nil, "", mapRunError(err)
	}

	name := "payslip-" + run.Period + "-" + p.EmployeeCode + ".pdf"
	return renderPDF(payslipLines(*run, *p)), name, nil
}

func mapTemplate(t SalaryTemplate) TemplateResponse {
	return TemplateResponse{
		ID:        t.ID.String(),
		Name:      t.Name,
		Basic:     t.Basic,
		Allowance: t.Allowance,
		Gross:     t.Gross(),
	}
}

func mapRun(r Run) RunResponse {
	resp := RunResponse{
		ID:          r.ID.String(),
		Period:      r.Period,
		PeriodStart: r.PeriodStart.Format(time.DateOnly),
		PeriodEnd:   r.PeriodEnd.Format(time.DateOnly),
		PeriodDays:  r.PeriodDays,
		TotalNet:    r.TotalNet,
		CreatedBy:   r.CreatedBy.String(),
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		Payslips:    make([]PayslipResponse, 0, len(r.Payslips)),
	}
	for _, p := range r.Payslips {
		resp.Payslips = append(resp.Payslips, PayslipResponse{
			ID:              p.ID.String(),
			RunID:           p.RunID.String(),
			EmployeeID:      p.EmployeeID.String(),
			EmployeeCode:    p.EmployeeCode,
			EmployeeName:    p.EmployeeName,
			TemplateName:    p.TemplateName,
			Basic:           p.Basic,
			Allowance:       p.Allowance,
			Gross:           p.Gross,
			UnpaidLeaveDays: p.UnpaidLeaveDays,
			AbsentDays:      p.AbsentDays,
			LOPDays:         p.LOPDays,
			Net:             p.Net,
		})
	}
	return resp
}
