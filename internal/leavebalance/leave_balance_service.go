package leavebalance

import (
	"context"
	"errors"

	leavebalanceerrors "go-hrms/internal/leavebalance/errors"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/tenant"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxVersionRetries = 3

// Ledger is the write side used by the leave and regularization flows
// inside their own tenant transaction.
type Ledger interface {
	Get(ctx context.Context, tx *gorm.DB, key Key) (*LeaveBalance, error)
	Move(ctx context.Context, tx *gorm.DB, key Key, mv Movement, days decimal.Decimal) (*LeaveBalance, error)
	ReplaceYear(ctx context.Context, tx *gorm.DB, employeeID string, year int, rows []LeaveBalance) error
}

//go:generate mockgen -source=leave_balance_service.go -destination=mock/leave_balance_service_mock.go -package=mock
type Service interface {
	Ledger
	ListForEmployee(ctx context.Context, tenantID, employeeID string, year int) ([]BalanceResponse, error)
}

type service struct {
	resolver tenant.Resolver
	repos    RepositoryFactory
	logger   *zap.Logger
}

func NewService(resolver tenant.Resolver, repos RepositoryFactory, logger ...*zap.Logger) Service {
	l := zap.L().Named("leavebalance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavebalance.service")
	}
	if repos == nil {
		repos = NewRepository
	}
	return &service{resolver: resolver, repos: repos, logger: l}
}

func (s *service) Get(ctx context.Context, tx *gorm.DB, key Key) (*LeaveBalance, error) {
	return s.repos(tx).Find(ctx, key)
}

// Move applies one ledger movement with optimistic versioning. A version
// conflict re-reads the row and re-applies the movement.
func (s *service) Move(ctx context.Context, tx *gorm.DB, key Key, mv Movement, days decimal.Decimal) (*LeaveBalance, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	repo := s.repos(tx)

	if days.IsZero() {
		return repo.Find(ctx, key)
	}

	for attempt := 1; attempt <= maxVersionRetries; attempt++ {
		b, err := repo.Find(ctx, key)
		if err != nil {
			return nil, err
		}
		if b == nil {
			return nil, leavebalanceerrors.ErrBalanceNotFound.WithDetails(map[string]any{
				"employee_id": key.EmployeeID,
				"leave_type":  key.LeaveType,
				"year":        key.Year,
			})
		}

		if err := Apply(b, mv, days); err != nil {
			log.Warn("leave balance movement rejected",
				zap.String("employee_id", key.EmployeeID),
				zap.String("leave_type", key.LeaveType),
				zap.String("movement", string(mv)),
				zap.String("days", days.String()),
				zap.Error(err),
			)
			return nil, err
		}

		ok, err := repo.UpdateVersioned(ctx, b)
		if err != nil {
			log.Error("leave balance persist failed", zap.String("employee_id", key.EmployeeID), zap.Error(err))
			return nil, err
		}
		if ok {
			log.Debug("leave balance moved",
				zap.String("employee_id", key.EmployeeID),
				zap.String("leave_type", key.LeaveType),
				zap.String("movement", string(mv)),
				zap.String("days", days.String()),
				zap.String("available", b.Available.String()),
			)
			return b, nil
		}

		log.Warn("leave balance version conflict",
			zap.String("employee_id", key.EmployeeID),
			zap.String("leave_type", key.LeaveType),
			zap.Int("attempt", attempt),
		)
	}
	return nil, leavebalanceerrors.ErrVersionConflict
}

// ReplaceYear rebuilds an employee's rows for year from new totals. Used
// and pending days move onto the rebuilt row of the same leave type so
// open requests can still settle; a type the new rows drop survives while
// it still holds used or pending days.
func (s *service) ReplaceYear(ctx context.Context, tx *gorm.DB, employeeID string, year int, rows []LeaveBalance) error {
	repo := s.repos(tx)
	current, err := repo.FindByEmployee(ctx, employeeID, year)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	prev := make(map[string]LeaveBalance, len(current))
	for _, b := range current {
		prev[b.LeaveType] = b
	}

	next := make([]LeaveBalance, 0, len(rows)+len(current))
	for _, b := range rows {
		if old, ok := prev[b.LeaveType]; ok {
			b.Used, b.Pending = old.Used, old.Pending
			delete(prev, b.LeaveType)
		}
		next = append(next, b)
	}
	for _, old := range current {
		if _, dropped := prev[old.LeaveType]; !dropped {
			continue
		}
		if old.Used.IsPositive() || old.Pending.IsPositive() {
			old.Version = 0
			next = append(next, old)
		}
	}

	if err := repo.DeleteYear(ctx, employeeID, year); err != nil {
		return err
	}
	for i := range next {
		next[i].Recompute()
		if err := repo.Create(ctx, &next[i]); err != nil {
			return err
		}
		if next[i].Available.IsNegative() {
			s.logger.Warn("rebuilt leave balance is overdrawn",
				zap.String("employee_id", employeeID),
				zap.String("leave_type", next[i].LeaveType),
				zap.String("available", next[i].Available.String()),
			)
		}
	}
	return nil
}

func (s *service) ListForEmployee(ctx context.Context, tenantID, employeeID string, year int) ([]BalanceResponse, error) {
	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	rows, err := s.repos(db).FindByEmployee(ctx, employeeID, year)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []BalanceResponse{}, nil
		}
		return nil, err
	}
	res := make([]BalanceResponse, len(rows))
	for i, b := range rows {
		res[i] = mapToResponse(b)
	}
	return res, nil
}

func mapToResponse(b LeaveBalance) BalanceResponse {
	return BalanceResponse{
		ID:         b.ID.String(),
		EmployeeID: b.EmployeeID.String(),
		LeaveType:  b.LeaveType,
		Year:       b.Year,
		Total:      b.Total,
		Used:       b.Used,
		Pending:    b.Pending,
		Available:  b.Available,
	}
}
