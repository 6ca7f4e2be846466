package settings_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-hrms/internal/settings"
	settingserrors "go-hrms/internal/settings/errors"
	"go-hrms/internal/settings/mock"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/testutil"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service   settings.Service
	repo      *mock.MockRepository
	redismock redismock.ClientMock
	resolver  *testutil.StaticResolver
}

func setupServiceTest(t *testing.T) serviceDeps {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	db, _ := testutil.NewGormMock(t)
	rdb, redisMock := redismock.NewClientMock()
	resolver := &testutil.StaticResolver{Handle: db}

	svc := settings.NewService(resolver, func(*gorm.DB) settings.Repository { return repo }, rdb)
	return serviceDeps{service: svc, repo: repo, redismock: redisMock, resolver: resolver}
}

func validRequest() settings.UpdateAttendanceSettingsRequest {
	return settings.UpdateAttendanceSettingsRequest{
		ShiftStart:               "09:30",
		ShiftEnd:                 "18:30",
		Timezone:                 "Asia/Kolkata",
		GraceTimeMinutes:         10,
		LateMarkThresholdMinutes: 20,
		FullDayThresholdHours:    8,
		HalfDayThresholdHours:    4,
		PunchMode:                "single",
		MaxPunchesPerDay:         2,
		GeofencingEnabled:        true,
		OfficeLatitude:           12.9716,
		OfficeLongitude:          77.5946,
		GeofenceRadiusM:          100,
		IPRestrictionEnabled:     true,
		AllowedIPs:               []string{"203.0.113.7", " 10.0.0.0/8 "},
		WeeklyOffDays:            []int{5, 6},
		LeaveCycleStartMonth:     4,
	}
}

func TestSettingsService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips database", func(t *testing.T) {
		deps := setupServiceTest(t)
		cached := settings.Defaults()
		cached.PunchMode = settings.PunchModeSingle
		data, _ := json.Marshal(cached)
		deps.redismock.ExpectGet(settings.CacheKey("t1")).SetVal(string(data))

		st, err := deps.service.Get(ctx, "t1")

		assert.NoError(t, err)
		assert.Equal(t, settings.PunchModeSingle, st.PunchMode)
		assert.Empty(t, deps.resolver.Calls)
	})

	t.Run("cache miss without row returns defaults", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(settings.CacheKey("t2")).RedisNil()
		deps.repo.EXPECT().Find(gomock.Any()).Return(nil, nil)

		st, err := deps.service.Get(ctx, "t2")

		assert.NoError(t, err)
		assert.Equal(t, "09:00", st.ShiftStart)
		assert.Equal(t, []int{0}, []int(st.WeeklyOffDays))
		assert.Equal(t, []string{"t2"}, deps.resolver.Calls)
	})

	t.Run("redis down degrades to database", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(settings.CacheKey("t3")).SetErr(errors.New("connection refused"))
		row := settings.Defaults()
		row.GraceTimeMinutes = 0
		deps.repo.EXPECT().Find(gomock.Any()).Return(&row, nil)

		st, err := deps.service.Get(ctx, "t3")

		assert.NoError(t, err)
		assert.Equal(t, 0, st.GraceTimeMinutes)
	})

	t.Run("database error", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(settings.CacheKey("t4")).RedisNil()
		deps.repo.EXPECT().Find(gomock.Any()).Return(nil, errors.New("database connection lost"))

		_, err := deps.service.Get(ctx, "t4")

		assert.ErrorContains(t, err, "database connection lost")
	})
}

func TestSettingsService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success upserts and invalidates cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().Find(gomock.Any()).Return(nil, nil)
		deps.repo.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *settings.AttendanceSettings) error {
				assert.Equal(t, settings.PunchModeSingle, s.PunchMode)
				assert.Equal(t, []string{"203.0.113.7", "10.0.0.0/8"}, []string(s.AllowedIPs))
				assert.Equal(t, settings.MaxPunchBlock, s.MaxPunchAction)
				return nil
			})
		deps.redismock.ExpectDel(settings.CacheKey("t1")).SetVal(1)

		st, err := deps.service.Update(ctx, "t1", validRequest())

		assert.NoError(t, err)
		assert.Equal(t, 4, st.LeaveCycleStartMonth)
		assert.True(t, st.IsWeeklyOff(time.Friday))
		assert.False(t, st.IsWeeklyOff(time.Sunday))
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("rejects bad cidr", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validRequest()
		req.AllowedIPs = []string{"10.0.0.0/99"}

		_, err := deps.service.Update(ctx, "t1", req)

		assert.True(t, apperror.HasCode(err, apperror.CodeInvalidInput))
	})

	t.Run("rejects half day above full day", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validRequest()
		req.HalfDayThresholdHours = 9

		_, err := deps.service.Update(ctx, "t1", req)

		assert.ErrorIs(t, err, settingserrors.ErrInvalidThresholds)
	})

	t.Run("rejects geofence without coordinates", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validRequest()
		req.OfficeLatitude, req.OfficeLongitude = 0, 0

		_, err := deps.service.Update(ctx, "t1", req)

		assert.True(t, apperror.HasCode(err, apperror.CodeInvalidInput))
	})
}
