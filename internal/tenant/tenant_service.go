package tenant

import (
	"context"
	"errors"
	"regexp"
	"strings"

	tenanterrors "go-hrms/internal/tenant/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var codePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{1,62}$`)

//go:generate mockgen -source=tenant_service.go -destination=mock/tenant_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateTenantRequest) (TenantResponse, error)
	GetByID(ctx context.Context, identifier string) (TenantResponse, error)
	GetAll(ctx context.Context, status string) ([]TenantResponse, error)
	ListActiveIDs(ctx context.Context) ([]string, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (TenantResponse, error)
	UpdateSettings(ctx context.Context, id string, req UpdateSettingsRequest) (TenantResponse, error)
}

type service struct {
	repo        Repository
	router      *Router
	provisioner Provisioner
	logger      *zap.Logger
}

func NewService(repo Repository, router *Router, provisioner Provisioner, logger ...*zap.Logger) Service {
	l := zap.L().Named("tenant.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("tenant.service")
	}
	return &service{
		repo:        repo,
		router:      router,
		provisioner: provisioner,
		logger:      l,
	}
}

func (s *service) Create(ctx context.Context, req CreateTenantRequest) (TenantResponse, error) {
	code := strings.ToLower(strings.TrimSpace(req.Code))
	s.logger.Debug("create tenant requested", zap.String("code", code))

	if !codePattern.MatchString(code) {
		s.logger.Warn("create tenant invalid code", zap.String("code", code))
		return TenantResponse{}, tenanterrors.ErrInvalidTenantCode
	}

	t := &Tenant{
		Code:     code,
		Name:     strings.TrimSpace(req.Name),
		Status:   StatusPending,
		Features: datatypes.JSONSlice[string](req.Features),
		Settings: datatypes.JSONMap(req.Settings),
	}
	if err := s.repo.Create(ctx, t); err != nil {
		s.logger.Error("create tenant persist failed", zap.String("code", code), zap.Error(err))
		return TenantResponse{}, mapRepositoryError(err)
	}

	tenantID := t.ID.String()
	if err := s.provisioner.CreateDatabase(ctx, s.router.DBName(tenantID)); err != nil {
		s.logger.Error("create tenant database failed", zap.String("tenant_id", tenantID), zap.Error(err))
		return TenantResponse{}, err
	}

	// first resolve migrates every tenant model
	if _, err := s.router.Resolve(ctx, tenantID); err != nil {
		s.logger.Error("create tenant initial resolve failed", zap.String("tenant_id", tenantID), zap.Error(err))
		return TenantResponse{}, err
	}

	if err := s.repo.UpdateStatus(ctx, tenantID, StatusActive); err != nil {
		s.logger.Error("create tenant activate failed", zap.String("tenant_id", tenantID), zap.Error(err))
		return TenantResponse{}, mapRepositoryError(err)
	}
	t.Status = StatusActive

	s.logger.Info("create tenant success",
		zap.String("tenant_id", tenantID),
		zap.String("code", code),
	)
	return s.toResponse(*t), nil
}

func (s *service) GetByID(ctx context.Context, identifier string) (TenantResponse, error) {
	t, err := s.repo.FindByIdentifier(ctx, identifier)
	if err != nil {
		return TenantResponse{}, mapRepositoryError(err)
	}
	return s.toResponse(*t), nil
}

func (s *service) GetAll(ctx context.Context, status string) ([]TenantResponse, error) {
	st := Status(strings.ToLower(strings.TrimSpace(status)))
	if st != "" && !st.Valid() {
		return nil, tenanterrors.ErrInvalidTenantStatus
	}

	rows, err := s.repo.FindAll(ctx, st)
	if err != nil {
		s.logger.Error("list tenants failed", zap.Error(err))
		return nil, err
	}

	resp := make([]TenantResponse, 0, len(rows))
	for _, t := range rows {
		resp = append(resp, s.toResponse(t))
	}
	return resp, nil
}

func (s *service) ListActiveIDs(ctx context.Context) ([]string, error) {
	rows, err := s.repo.FindAll(ctx, StatusActive)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(rows))
	for _, t := range rows {
		ids = append(ids, t.ID.String())
	}
	return ids, nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (TenantResponse, error) {
	st := Status(strings.ToLower(strings.TrimSpace(req.Status)))
	if !st.Valid() {
		s.logger.Warn("update tenant status invalid", zap.String("status", req.Status))
		return TenantResponse{}, tenanterrors.ErrInvalidTenantStatus
	}

	t, err := s.repo.FindByIdentifier(ctx, id)
	if err != nil {
		return TenantResponse{}, mapRepositoryError(err)
	}

	if err := s.repo.UpdateStatus(ctx, t.ID.String(), st); err != nil {
		s.logger.Error("update tenant status failed", zap.String("tenant_id", t.ID.String()), zap.Error(err))
		return TenantResponse{}, mapRepositoryError(err)
	}
	t.Status = st

	s.router.Evict(t.ID.String())

	s.logger.Info("update tenant status success",
		zap.String("tenant_id", t.ID.String()),
		zap.String("status", string(st)),
	)
	return s.toResponse(*t), nil
}

func (s *service) UpdateSettings(ctx context.Context, id string, req UpdateSettingsRequest) (TenantResponse, error) {
	t, err := s.repo.FindByIdentifier(ctx, id)
	if err != nil {
		return TenantResponse{}, mapRepositoryError(err)
	}

	var settings datatypes.JSONMap
	if req.Settings != nil {
		settings = datatypes.JSONMap(req.Settings)
		t.Settings = settings
	}
	if req.Features != nil {
		t.Features = datatypes.JSONSlice[string](req.Features)
	}

	if err := s.repo.UpdateSettings(ctx, t.ID.String(), settings, req.Features); err != nil {
		s.logger.Error("update tenant settings failed", zap.String("tenant_id", t.ID.String()), zap.Error(err))
		return TenantResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update tenant settings success", zap.String("tenant_id", t.ID.String()))
	return s.toResponse(*t), nil
}

func (s *service) toResponse(t Tenant) TenantResponse {
	features := []string(t.Features)
	if features == nil {
		features = []string{}
	}
	settings := map[string]any(t.Settings)
	if settings == nil {
		settings = map[string]any{}
	}
	return TenantResponse{
		ID:        t.ID.String(),
		Code:      t.Code,
		Name:      t.Name,
		Status:    string(t.Status),
		Database:  s.router.DBName(t.ID.String()),
		Features:  features,
		Settings:  settings,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tenanterrors.ErrTenantNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_tenant_code" {
		return tenanterrors.ErrTenantCodeTaken
	}
	return err
}
