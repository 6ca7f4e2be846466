package settings

import (
	"context"
	"encoding/json"
	"net"
	"strings"
	"time"

	settingserrors "go-hrms/internal/settings/errors"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/tenant"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	CacheKeyPrefix = "settings:attendance:"
	cacheTTL       = 30 * time.Minute
)

func CacheKey(tenantID string) string {
	return CacheKeyPrefix + tenantID
}

type RepositoryFactory func(db *gorm.DB) Repository

//go:generate mockgen -source=settings_service.go -destination=mock/settings_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context, tenantID string) (AttendanceSettings, error)
	Update(ctx context.Context, tenantID string, req UpdateAttendanceSettingsRequest) (AttendanceSettings, error)
}

type service struct {
	resolver tenant.Resolver
	repos    RepositoryFactory
	rdb      *redis.Client
	sf       *singleflight.Group
	logger   *zap.Logger
}

func NewService(resolver tenant.Resolver, repos RepositoryFactory, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("settings.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("settings.service")
	}
	if repos == nil {
		repos = NewRepository
	}
	return &service{
		resolver: resolver,
		repos:    repos,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		logger:   l,
	}
}

func (s *service) Get(ctx context.Context, tenantID string) (AttendanceSettings, error) {
	cacheKey := CacheKey(tenantID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var st AttendanceSettings
			if json.Unmarshal([]byte(cached), &st) == nil {
				return st, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn("settings cache read failed, using database", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		db, err := s.resolver.DB(ctx, tenantID)
		if err != nil {
			return nil, err
		}

		row, err := s.repos(db).Find(ctx)
		if err != nil {
			s.logger.Error("load attendance settings failed", zap.String("tenant_id", tenantID), zap.Error(err))
			return nil, err
		}

		st := Defaults()
		if row != nil {
			st = *row
		}

		if s.rdb != nil {
			if data, err := json.Marshal(st); err == nil {
				s.rdb.Set(ctx, cacheKey, data, cacheTTL)
			}
		}
		return st, nil
	})
	if err != nil {
		return AttendanceSettings{}, err
	}
	return v.(AttendanceSettings), nil
}

func (s *service) Update(ctx context.Context, tenantID string, req UpdateAttendanceSettingsRequest) (AttendanceSettings, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("update attendance settings requested", zap.String("tenant_id", tenantID))

	if err := validate(req); err != nil {
		log.Warn("update attendance settings rejected", zap.Error(err))
		return AttendanceSettings{}, err
	}

	db, err := s.resolver.DB(ctx, tenantID)
	if err != nil {
		return AttendanceSettings{}, err
	}
	repo := s.repos(db)

	current, err := repo.Find(ctx)
	if err != nil {
		log.Error("update attendance settings load failed", zap.Error(err))
		return AttendanceSettings{}, err
	}

	st := Defaults()
	if current != nil {
		st.ID = current.ID
	}
	apply(&st, req)

	if err := repo.Save(ctx, &st); err != nil {
		log.Error("update attendance settings persist failed", zap.Error(err))
		return AttendanceSettings{}, err
	}

	if s.rdb != nil {
		if err := s.rdb.Del(ctx, CacheKey(tenantID)).Err(); err != nil {
			log.Error("failed to invalidate attendance settings cache", zap.String("key", CacheKey(tenantID)), zap.Error(err))
		}
	}

	log.Info("update attendance settings success", zap.String("tenant_id", tenantID))
	return st, nil
}

func apply(st *AttendanceSettings, req UpdateAttendanceSettingsRequest) {
	st.ShiftStart = req.ShiftStart
	st.ShiftEnd = req.ShiftEnd
	st.Timezone = req.Timezone
	st.GraceTimeMinutes = req.GraceTimeMinutes
	st.LateMarkThresholdMinutes = req.LateMarkThresholdMinutes
	st.FullDayThresholdHours = req.FullDayThresholdHours
	st.HalfDayThresholdHours = req.HalfDayThresholdHours
	st.PunchMode = PunchMode(req.PunchMode)
	st.MaxPunchesPerDay = req.MaxPunchesPerDay
	if req.MaxPunchAction != "" {
		st.MaxPunchAction = MaxPunchAction(req.MaxPunchAction)
	}
	st.OvertimeEnabled = req.OvertimeEnabled
	st.OvertimeAfterShiftHours = req.OvertimeAfterShiftHours
	st.GeofencingEnabled = req.GeofencingEnabled
	st.OfficeLatitude = req.OfficeLatitude
	st.OfficeLongitude = req.OfficeLongitude
	st.GeofenceRadiusM = req.GeofenceRadiusM
	st.IPRestrictionEnabled = req.IPRestrictionEnabled

	ips := make([]string, 0, len(req.AllowedIPs))
	for _, ip := range req.AllowedIPs {
		if ip = strings.TrimSpace(ip); ip != "" {
			ips = append(ips, ip)
		}
	}
	st.AllowedIPs = datatypes.JSONSlice[string](ips)

	if req.WeeklyOffDays != nil {
		st.WeeklyOffDays = datatypes.JSONSlice[int](req.WeeklyOffDays)
	}
	if req.LeaveCycleStartMonth != 0 {
		st.LeaveCycleStartMonth = req.LeaveCycleStartMonth
	}
}

func validate(req UpdateAttendanceSettingsRequest) error {
	candidate := AttendanceSettings{ShiftStart: req.ShiftStart, ShiftEnd: req.ShiftEnd}
	if d, err := candidate.ShiftDuration(); err != nil || d >= 24*time.Hour {
		return settingserrors.ErrInvalidShiftTime
	}
	if _, err := time.LoadLocation(req.Timezone); err != nil {
		return settingserrors.ErrInvalidTimezone
	}
	if req.HalfDayThresholdHours > req.FullDayThresholdHours {
		return settingserrors.ErrInvalidThresholds
	}
	if req.GeofencingEnabled && (req.GeofenceRadiusM <= 0 || (req.OfficeLatitude == 0 && req.OfficeLongitude == 0)) {
		return settingserrors.ErrInvalidGeofence
	}
	for _, entry := range req.AllowedIPs {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if net.ParseIP(entry) != nil {
			continue
		}
		if _, _, err := net.ParseCIDR(entry); err != nil {
			return settingserrors.ErrInvalidAllowedIP.WithDetails(map[string]string{"entry": entry})
		}
	}
	for _, d := range req.WeeklyOffDays {
		if d < 0 || d > 6 {
			return settingserrors.ErrInvalidWeeklyOff
		}
	}
	return nil
}
