package holiday

import (
	"context"
	"errors"
	"strings"
	"time"

	holidayerrors "go-hrms/internal/holiday/errors"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/tenant"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=holiday_service.go -destination=mock/holiday_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, tenantID string, req CreateHolidayRequest) (HolidayResponse, error)
	GetByYear(ctx context.Context, tenantID string, year int) ([]HolidayResponse, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type service struct {
	resolver tenant.Resolver
	repos    RepositoryFactory
	logger   *zap.Logger
}

func NewService(resolver tenant.Resolver, repos RepositoryFactory, logger ...*zap.Logger) Service {
	l := zap.L().Named("holiday.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.service")
	}
	if repos == nil {
		repos = NewRepository
	}
	return &service{resolver: resolver, repos: repos, logger: l}
}

func (s *service) Create(ctx context.Context, tenantID string, req CreateHolidayRequest) (HolidayResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return HolidayResponse{}, holidayerrors.ErrInvalidDate
	}

	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return HolidayResponse{}, err
	}

	h := &Holiday{
		ID:       uuid.New(),
		Date:     date,
		Name:     strings.TrimSpace(req.Name),
		Optional: req.Optional,
	}
	if err := s.repos(db).Create(ctx, h); err != nil {
		mapped := mapRepositoryError(err)
		if errors.Is(mapped, holidayerrors.ErrHolidayExists) {
			log.Warn("create holiday duplicate date", zap.String("date", req.Date))
			return HolidayResponse{}, holidayerrors.ErrHolidayExists.WithDetails(map[string]string{"date": req.Date})
		}
		log.Error("create holiday persist failed", zap.Error(err))
		return HolidayResponse{}, mapped
	}

	log.Info("create holiday success", zap.String("date", req.Date), zap.String("name", h.Name))
	return mapToResponse(*h), nil
}

func (s *service) GetByYear(ctx context.Context, tenantID string, year int) ([]HolidayResponse, error) {
	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	rows, err := s.repos(db).FindByYear(ctx, year)
	if err != nil {
		return nil, err
	}
	res := make([]HolidayResponse, len(rows))
	for i, h := range rows {
		res[i] = mapToResponse(h)
	}
	return res, nil
}

func (s *service) Delete(ctx context.Context, tenantID, id string) error {
	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return err
	}
	if err := s.repos(db).Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	contextutil.GetLogger(ctx, s.logger).Info("delete holiday success", zap.String("holiday_id", id))
	return nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return holidayerrors.ErrHolidayNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return holidayerrors.ErrHolidayExists
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return holidayerrors.ErrHolidayExists
	}
	return err
}

func mapToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:       h.ID.String(),
		Date:     h.Date.Format("2006-01-02"),
		Name:     h.Name,
		Optional: h.Optional,
	}
}
