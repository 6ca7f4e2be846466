package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	employeeerrors "go-hrms/internal/employee/errors"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/counter"
	"go-hrms/internal/tenant"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const codeCounter = "employee_code"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, tenantID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, tenantID string, filter ListFilter) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, tenantID, id string) (EmployeeResponse, error)
	Update(ctx context.Context, tenantID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Activate(ctx context.Context, tenantID, id string) (EmployeeResponse, error)
	AssignManager(ctx context.Context, tenantID, id string, req AssignManagerRequest) (EmployeeResponse, error)
	Reportees(ctx context.Context, tenantID, managerID string) ([]EmployeeResponse, error)
	Delete(ctx context.Context, tenantID, id string, hard bool) error
}

type service struct {
	resolver tenant.Resolver
	repos    RepositoryFactory
	counters func(db *gorm.DB) counter.Repository
	outbox   func(db *gorm.DB) kafka.OutboxRepository
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(
	resolver tenant.Resolver,
	repos RepositoryFactory,
	counters func(db *gorm.DB) counter.Repository,
	outbox func(db *gorm.DB) kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if repos == nil {
		repos = NewRepository
	}
	if counters == nil {
		counters = counter.NewRepository
	}
	return &service{
		resolver: resolver,
		repos:    repos,
		counters: counters,
		outbox:   outbox,
		now:      time.Now,
		logger:   l,
	}
}

func (s *service) Create(ctx context.Context, tenantID string, req CreateEmployeeRequest) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	rid := contextutil.GetRequestID(ctx)
	log.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("tenant_id", tenantID),
		zap.String("email", req.Email),
	)

	joiningDate, err := time.Parse("2006-01-02", req.JoiningDate)
	if err != nil {
		log.Warn("create employee invalid joining_date", zap.String("joining_date", req.JoiningDate))
		return EmployeeResponse{}, employeeerrors.ErrInvalidJoiningDate
	}

	status := StatusActive
	if req.Status != "" {
		parsed, ok := ParseStatus(req.Status)
		if !ok || parsed == StatusInactive {
			return EmployeeResponse{}, employeeerrors.ErrInvalidStatus
		}
		status = parsed
	}

	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		ID:               uuid.New(),
		Code:             strings.TrimSpace(req.Code),
		FirstName:        strings.TrimSpace(req.FirstName),
		MiddleName:       strings.TrimSpace(req.MiddleName),
		LastName:         strings.TrimSpace(req.LastName),
		Email:            strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:            req.Phone,
		Role:             req.Role,
		Designation:      req.Designation,
		DepartmentID:     uuidPtr(req.DepartmentID),
		ManagerID:        uuidPtr(req.ManagerID),
		Status:           status,
		JoiningDate:      joiningDate,
		SalaryTemplateID: uuidPtr(req.SalaryTemplateID),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		repo := s.repos(tx)

		if empl.ManagerID != nil {
			if _, err := repo.FindByID(ctx, empl.ManagerID.String()); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return employeeerrors.ErrManagerNotFound
				}
				return err
			}
		}

		if empl.Code == "" {
			next, err := s.counters(tx).GetNextValue(ctx, codeCounter)
			if err != nil {
				log.Error("create employee generate code failed", zap.Error(err))
				return err
			}
			empl.Code = fmt.Sprintf("EMP-%06d", next)
		}

		if err := repo.Create(ctx, empl); err != nil {
			log.Error("create employee persist failed", zap.Error(err))
			return mapRepositoryError(err)
		}

		if empl.Status == StatusActive {
			return s.queueCreated(ctx, tx, tenantID, empl)
		}
		return nil
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	log.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("code", empl.Code),
	)
	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context, tenantID string, filter ListFilter) ([]EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("get all employees requested", zap.String("tenant_id", tenantID))

	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repos(db).FindAll(ctx, filter)
	if err != nil {
		log.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, tenantID, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return EmployeeResponse{}, err
	}

	empl, err := s.repos(db).FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, tenantID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("update employee requested",
		zap.String("tenant_id", tenantID),
		zap.String("employee_id", id),
	)

	joiningDate, err := time.Parse("2006-01-02", req.JoiningDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidJoiningDate
	}

	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return EmployeeResponse{}, err
	}

	var empl *Employee
	err = db.Transaction(func(tx *gorm.DB) error {
		repo := s.repos(tx)

		empl, err = repo.FindByID(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}

		empl.FirstName = strings.TrimSpace(req.FirstName)
		empl.MiddleName = strings.TrimSpace(req.MiddleName)
		empl.LastName = strings.TrimSpace(req.LastName)
		empl.Email = strings.ToLower(strings.TrimSpace(req.Email))
		empl.Phone = req.Phone
		empl.Role = req.Role
		empl.Designation = req.Designation
		empl.DepartmentID = uuidPtr(req.DepartmentID)
		empl.JoiningDate = joiningDate
		empl.SalaryTemplateID = uuidPtr(req.SalaryTemplateID)

		if err := repo.Update(ctx, empl); err != nil {
			log.Error("update employee persist failed", zap.Error(err))
			return mapRepositoryError(err)
		}
		return nil
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	log.Info("update employee success", zap.String("employee_id", id))
	return mapToResponse(*empl), nil
}

func (s *service) Activate(ctx context.Context, tenantID, id string) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return EmployeeResponse{}, err
	}

	var empl *Employee
	err = db.Transaction(func(tx *gorm.DB) error {
		repo := s.repos(tx)

		empl, err = repo.FindByID(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		if empl.Status != StatusDraft {
			log.Warn("activate employee rejected",
				zap.String("employee_id", id),
				zap.String("status", string(empl.Status)),
			)
			return employeeerrors.ErrNotDraft
		}

		empl.Status = StatusActive
		if err := repo.Update(ctx, empl); err != nil {
			log.Error("activate employee persist failed", zap.Error(err))
			return mapRepositoryError(err)
		}
		return s.queueCreated(ctx, tx, tenantID, empl)
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	log.Info("activate employee success", zap.String("employee_id", id))
	return mapToResponse(*empl), nil
}

func (s *service) AssignManager(ctx context.Context, tenantID, id string, req AssignManagerRequest) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("assign manager requested",
		zap.String("employee_id", id),
		zap.String("manager_id", req.ManagerID),
	)

	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return EmployeeResponse{}, err
	}

	var empl *Employee
	err = db.Transaction(func(tx *gorm.DB) error {
		repo := s.repos(tx)

		empl, err = repo.FindByID(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}

		if req.ManagerID != "" {
			if _, err := repo.FindByID(ctx, req.ManagerID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return employeeerrors.ErrManagerNotFound
				}
				return err
			}

			snapshot, err := repo.ManagerSnapshot(ctx)
			if err != nil {
				log.Error("assign manager snapshot failed", zap.Error(err))
				return err
			}
			if err := ValidateManager(snapshot, empl.ID.String(), req.ManagerID); err != nil {
				log.Warn("assign manager rejected", zap.String("employee_id", id), zap.Error(err))
				return err
			}
		}

		empl.ManagerID = uuidPtr(req.ManagerID)
		if err := repo.Update(ctx, empl); err != nil {
			log.Error("assign manager persist failed", zap.Error(err))
			return mapRepositoryError(err)
		}
		return nil
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	log.Info("assign manager success",
		zap.String("employee_id", id),
		zap.String("manager_id", req.ManagerID),
	)
	return mapToResponse(*empl), nil
}

func (s *service) Reportees(ctx context.Context, tenantID, managerID string) ([]EmployeeResponse, error) {
	if _, err := uuid.Parse(managerID); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}
	return s.GetAll(ctx, tenantID, ListFilter{ManagerID: managerID})
}

// Delete marks the employee Inactive unless hard is set.
func (s *service) Delete(ctx context.Context, tenantID, id string, hard bool) error {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("delete employee requested",
		zap.String("employee_id", id),
		zap.Bool("hard", hard),
	)

	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		repo := s.repos(tx)
		if hard {
			return mapRepositoryError(repo.Delete(ctx, id))
		}

		empl, err := repo.FindByID(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		empl.Status = StatusInactive
		return mapRepositoryError(repo.Update(ctx, empl))
	})
	if err != nil {
		log.Error("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return err
	}

	log.Info("delete employee success", zap.String("employee_id", id), zap.Bool("hard", hard))
	return nil
}

func (s *service) queueCreated(ctx context.Context, tx *gorm.DB, tenantID string, empl *Employee) error {
	if s.outbox == nil {
		return nil
	}
	rid := contextutil.GetRequestID(ctx)
	event := events.EmployeeCreatedEvent{
		EventType:  events.EmployeeCreatedEventType,
		RequestID:  rid,
		TenantID:   tenantID,
		EmployeeID: empl.ID.String(),
		OccurredAt: s.now().UTC(),
	}
	row, err := kafka.NewOutboxEvent(
		events.EmployeeLifecycleTopic,
		event.EventType,
		"employee",
		empl.ID.String(),
		rid,
		event,
	)
	if err != nil {
		return err
	}
	if err := s.outbox(tx).Create(ctx, row); err != nil {
		s.logger.Error("employee outbox persist failed",
			zap.String("employee_id", empl.ID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:               empl.ID.String(),
		Code:             empl.Code,
		FirstName:        empl.FirstName,
		MiddleName:       empl.MiddleName,
		LastName:         empl.LastName,
		FullName:         empl.FullName(),
		Email:            empl.Email,
		Phone:            empl.Phone,
		Role:             empl.Role,
		Designation:      empl.Designation,
		DepartmentID:     uuidToString(empl.DepartmentID),
		ManagerID:        uuidToString(empl.ManagerID),
		Status:           string(empl.Status),
		JoiningDate:      empl.JoiningDate.Format("2006-01-02"),
		LeavePolicyID:    uuidToString(empl.LeavePolicyID),
		SalaryTemplateID: uuidToString(empl.SalaryTemplateID),
	}
}

func mapToListResponse(rows []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(rows))
	for i, e := range rows {
		res[i] = mapToResponse(e)
	}
	return res
}

func uuidPtr(v string) *uuid.UUID {
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}

func uuidToString(v *uuid.UUID) string {
	if v == nil {
		return ""
	}
	return v.String()
}
