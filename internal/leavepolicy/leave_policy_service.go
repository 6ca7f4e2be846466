package leavepolicy

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-hrms/internal/employee"
	"go-hrms/internal/leavebalance"
	leavepolicyerrors "go-hrms/internal/leavepolicy/errors"
	"go-hrms/internal/settings"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/tenant"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SettingsReader is satisfied by settings.Service.
type SettingsReader interface {
	Get(ctx context.Context, tenantID string) (settings.AttendanceSettings, error)
}

// RuleLookup resolves the rule that governs one employee's leave type.
type RuleLookup interface {
	RuleFor(ctx context.Context, tx *gorm.DB, empl employee.Employee, leaveType string) (Rule, bool, error)
}

//go:generate mockgen -source=leave_policy_service.go -destination=mock/leave_policy_service_mock.go -package=mock
type Service interface {
	RuleLookup
	Create(ctx context.Context, tenantID string, req UpsertPolicyRequest) (PolicyResponse, error)
	GetAll(ctx context.Context, tenantID string) ([]PolicyResponse, error)
	GetByID(ctx context.Context, tenantID, id string) (PolicyResponse, error)
	Update(ctx context.Context, tenantID, id string, req UpsertPolicyRequest) (PolicyResponse, error)
	Delete(ctx context.Context, tenantID, id string) error
	Assign(ctx context.Context, tenantID, policyID string, req AssignPolicyRequest) (AssignResult, error)
	AssignApplicable(ctx context.Context, tenantID, employeeID string) error
	ResolveApplicable(ctx context.Context, tx *gorm.DB, empl employee.Employee) (*LeavePolicy, error)
}

type service struct {
	resolver  tenant.Resolver
	repos     RepositoryFactory
	employees employee.RepositoryFactory
	ledger    leavebalance.Ledger
	settings  SettingsReader
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	resolver tenant.Resolver,
	repos RepositoryFactory,
	employees employee.RepositoryFactory,
	ledger leavebalance.Ledger,
	settings SettingsReader,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leavepolicy.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavepolicy.service")
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
		ledger:    ledger,
		settings:  settings,
		now:       time.Now,
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, tenantID string, req UpsertPolicyRequest) (PolicyResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	p := &LeavePolicy{ID: uuid.New(), Active: true}
	if err := applyRequest(p, req); err != nil {
		log.Warn("create leave policy rejected", zap.Error(err))
		return PolicyResponse{}, err
	}

	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return PolicyResponse{}, err
	}
	if err := s.repos(db).Create(ctx, p); err != nil {
		log.Error("create leave policy persist failed", zap.Error(err))
		return PolicyResponse{}, err
	}

	log.Info("create leave policy success", zap.String("policy_id", p.ID.String()), zap.String("scope", string(p.Scope)))
	return mapToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context, tenantID string) ([]PolicyResponse, error) {
	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	rows, err := s.repos(db).FindAll(ctx, false)
	if err != nil {
		return nil, err
	}
	res := make([]PolicyResponse, len(rows))
	for i, p := range rows {
		res[i] = mapToResponse(p)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, tenantID, id string) (PolicyResponse, error) {
	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return PolicyResponse{}, err
	}
	p, err := s.repos(db).FindByID(ctx, id)
	if err != nil {
		return PolicyResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*p), nil
}

// Update does not touch balances already materialized; Assign re-runs them.
func (s *service) Update(ctx context.Context, tenantID, id string, req UpsertPolicyRequest) (PolicyResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return PolicyResponse{}, err
	}

	var p *LeavePolicy
	err = db.Transaction(func(tx *gorm.DB) error {
		repo := s.repos(tx)
		p, err = repo.FindByID(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		if err := applyRequest(p, req); err != nil {
			return err
		}
		return repo.Update(ctx, p)
	})
	if err != nil {
		log.Warn("update leave policy failed", zap.String("policy_id", id), zap.Error(err))
		return PolicyResponse{}, err
	}

	log.Info("update leave policy success", zap.String("policy_id", id))
	return mapToResponse(*p), nil
}

func (s *service) Delete(ctx context.Context, tenantID, id string) error {
	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return err
	}
	if err := s.repos(db).Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	contextutil.GetLogger(ctx, s.logger).Info("delete leave policy success", zap.String("policy_id", id))
	return nil
}

// Assign stores the policy on each employee and rebuilds that accounting
// year's balances from the policy rules.
func (s *service) Assign(ctx context.Context, tenantID, policyID string, req AssignPolicyRequest) (AssignResult, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("assign leave policy requested",
		zap.String("policy_id", policyID),
		zap.Int("employees", len(req.EmployeeIDs)),
		zap.Int("year", req.Year),
	)

	st, err := s.settings.Get(ctx, tenantID)
	if err != nil {
		return AssignResult{}, err
	}
	year := req.Year
	if year == 0 {
		year = st.AccountingYear(s.now().In(st.Location()))
	}

	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return AssignResult{}, err
	}

	result := AssignResult{PolicyID: policyID, Year: year}
	err = db.Transaction(func(tx *gorm.DB) error {
		p, err := s.repos(tx).FindByID(ctx, policyID)
		if err != nil {
			return mapRepositoryError(err)
		}
		if !p.Active {
			return leavepolicyerrors.ErrPolicyInactive
		}

		n, err := s.assignTx(ctx, tx, p, req.EmployeeIDs, year, st)
		if err != nil {
			return err
		}
		result.Assigned = len(req.EmployeeIDs)
		result.Balances = n
		return nil
	})
	if err != nil {
		log.Warn("assign leave policy failed", zap.String("policy_id", policyID), zap.Error(err))
		return AssignResult{}, err
	}

	log.Info("assign leave policy success",
		zap.String("policy_id", policyID),
		zap.Int("year", year),
		zap.Int("assigned", result.Assigned),
	)
	return result, nil
}

// AssignApplicable is driven by the employee lifecycle consumer.
func (s *service) AssignApplicable(ctx context.Context, tenantID, employeeID string) error {
	log := contextutil.GetLogger(ctx, s.logger)

	st, err := s.settings.Get(ctx, tenantID)
	if err != nil {
		return err
	}
	year := st.AccountingYear(s.now().In(st.Location()))

	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		empl, err := s.employees(tx).FindByID(ctx, employeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return leavepolicyerrors.ErrEmployeeNotFound
			}
			return err
		}

		p, err := s.ResolveApplicable(ctx, tx, *empl)
		if err != nil {
			return err
		}
		if p == nil {
			log.Warn("no applicable leave policy", zap.String("employee_id", employeeID))
			return nil
		}

		if _, err := s.assignTx(ctx, tx, p, []string{employeeID}, year, st); err != nil {
			return err
		}
		log.Info("applicable leave policy assigned",
			zap.String("employee_id", employeeID),
			zap.String("policy_id", p.ID.String()),
			zap.Int("year", year),
		)
		return nil
	})
}

// ResolveApplicable returns nil without error when nothing applies.
func (s *service) ResolveApplicable(ctx context.Context, tx *gorm.DB, empl employee.Employee) (*LeavePolicy, error) {
	policies, err := s.repos(tx).FindAll(ctx, true)
	if err != nil {
		return nil, err
	}
	p, ok := Applicable(policies, empl)
	if !ok {
		return nil, nil
	}
	return p, nil
}

// RuleFor uses the employee's assigned policy, falling back to the
// applicable one when nothing is assigned yet.
func (s *service) RuleFor(ctx context.Context, tx *gorm.DB, empl employee.Employee, leaveType string) (Rule, bool, error) {
	var p *LeavePolicy
	if empl.LeavePolicyID != nil {
		found, err := s.repos(tx).FindByID(ctx, empl.LeavePolicyID.String())
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return Rule{}, false, err
		}
		p = found
	}
	if p == nil {
		var err error
		if p, err = s.ResolveApplicable(ctx, tx, empl); err != nil {
			return Rule{}, false, err
		}
	}
	if p == nil {
		return Rule{}, false, nil
	}
	r, ok := p.RuleFor(leaveType)
	return r, ok, nil
}

func (s *service) assignTx(
	ctx context.Context,
	tx *gorm.DB,
	p *LeavePolicy,
	employeeIDs []string,
	year int,
	st settings.AttendanceSettings,
) (int, error) {
	empls := s.employees(tx)
	for _, id := range employeeIDs {
		if _, err := empls.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, leavepolicyerrors.ErrEmployeeNotFound.WithDetails(map[string]string{"employee_id": id})
			}
			return 0, err
		}
	}
	if err := empls.SetLeavePolicy(ctx, employeeIDs, p.ID); err != nil {
		return 0, err
	}

	elapsed := ElapsedCycleMonths(year, st.LeaveCycleStartMonth, s.now().In(st.Location()))
	written := 0
	for _, id := range employeeIDs {
		empID, _ := uuid.Parse(id)
		rows := make([]leavebalance.LeaveBalance, 0, len(p.Rules))
		for _, r := range p.Rules {
			total := Entitlement(r, elapsed)
			if r.CarryForward {
				prev, err := s.ledger.Get(ctx, tx, leavebalance.Key{EmployeeID: id, LeaveType: r.LeaveType, Year: year - 1})
				if err != nil {
					return 0, err
				}
				if prev != nil {
					total = total.Add(CarryForward(r, prev.Available))
				}
			}
			rows = append(rows, leavebalance.LeaveBalance{
				ID:         uuid.New(),
				EmployeeID: empID,
				LeaveType:  r.LeaveType,
				Year:       year,
				Total:      total,
			})
		}
		if err := s.ledger.ReplaceYear(ctx, tx, id, year, rows); err != nil {
			s.logger.Error("rebuild leave balances failed", zap.String("employee_id", id), zap.Error(err))
			return 0, err
		}
		written += len(rows)
	}
	return written, nil
}

func applyRequest(p *LeavePolicy, req UpsertPolicyRequest) error {
	scope := Scope(strings.ToUpper(strings.TrimSpace(req.Scope)))
	switch scope {
	case ScopeAll:
	case ScopeRoles:
		if len(req.ScopeRoles) == 0 {
			return leavepolicyerrors.ErrInvalidScope
		}
	case ScopeDepartments:
		if len(req.ScopeDepartmentIDs) == 0 {
			return leavepolicyerrors.ErrInvalidScope
		}
	case ScopeEmployee:
		if _, err := uuid.Parse(req.ScopeEmployeeID); err != nil {
			return leavepolicyerrors.ErrInvalidScope
		}
	default:
		return leavepolicyerrors.ErrInvalidScope
	}

	seen := make(map[string]struct{}, len(req.Rules))
	rules := make([]Rule, 0, len(req.Rules))
	for _, rr := range req.Rules {
		code := NormalizeLeaveType(rr.LeaveType)
		if _, dup := seen[code]; dup {
			return leavepolicyerrors.ErrDuplicateRule.WithDetails(map[string]string{"leave_type": code})
		}
		seen[code] = struct{}{}
		if rr.AnnualEntitlement.IsNegative() || rr.CarryForwardCap.IsNegative() {
			return leavepolicyerrors.ErrInvalidRule.WithDetails(map[string]string{"leave_type": code})
		}
		rules = append(rules, Rule{
			LeaveType:         code,
			AnnualEntitlement: rr.AnnualEntitlement,
			AccruesMonthly:    rr.AccruesMonthly,
			CarryForward:      rr.CarryForward,
			CarryForwardCap:   rr.CarryForwardCap,
			RequiresApproval:  rr.RequiresApproval,
			Color:             rr.Color,
		})
	}

	p.Name = strings.TrimSpace(req.Name)
	p.Scope = scope
	p.ScopeRoles = nil
	p.ScopeDepartmentIDs = nil
	p.ScopeEmployeeID = nil
	switch scope {
	case ScopeRoles:
		p.ScopeRoles = datatypes.JSONSlice[string](req.ScopeRoles)
	case ScopeDepartments:
		p.ScopeDepartmentIDs = datatypes.JSONSlice[string](req.ScopeDepartmentIDs)
	case ScopeEmployee:
		id := uuid.MustParse(req.ScopeEmployeeID)
		p.ScopeEmployeeID = &id
	}
	if req.Active != nil {
		p.Active = *req.Active
	}
	p.Rules = datatypes.JSONSlice[Rule](rules)
	return nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leavepolicyerrors.ErrPolicyNotFound
	}
	return err
}

func mapToResponse(p LeavePolicy) PolicyResponse {
	resp := PolicyResponse{
		ID:                 p.ID.String(),
		Name:               p.Name,
		Scope:              string(p.Scope),
		ScopeRoles:         []string(p.ScopeRoles),
		ScopeDepartmentIDs: []string(p.ScopeDepartmentIDs),
		Active:             p.Active,
		Rules:              []Rule(p.Rules),
	}
	if p.ScopeEmployeeID != nil {
		resp.ScopeEmployeeID = p.ScopeEmployeeID.String()
	}
	if resp.Rules == nil {
		resp.Rules = []Rule{}
	}
	return resp
}
