package attendance_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/attendance"
	attendanceerrors "go-hrms/internal/attendance/errors"
	"go-hrms/internal/attendance/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupRouter(svc attendance.Service, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("tenant_id", "t1")
		c.Set("employee_id", "e1")
		c.Set("role", role)
		c.Next()
	})
	pass := func(c *gin.Context) { c.Next() }
	attendance.RegisterRoutes(r.Group("/api/v1"), attendance.NewHandler(svc), pass, pass, pass, pass, pass)
	return r
}

func TestAttendanceHandler_Punch(t *testing.T) {
	t.Run("forwarded client ip reaches the engine", func(t *testing.T) {
		svc := mock.NewMockService(gomock.NewController(t))
		svc.EXPECT().
			Punch(gomock.Any(), "t1", "e1", gomock.Any(), "203.0.113.7").
			DoAndReturn(func(_ context.Context, _, _ string, req attendance.PunchRequest, _ string) (attendance.PunchResponse, error) {
				require.NotNil(t, req.Latitude)
				assert.Equal(t, 12.97, *req.Latitude)
				return attendance.PunchResponse{PunchType: attendance.PunchIn, PunchMode: "multiple"}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/punch", strings.NewReader(`{"latitude":12.97,"longitude":77.59}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		w := httptest.NewRecorder()
		setupRouter(svc, "EMPLOYEE").ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"punch_type":"IN"`)
	})

	t.Run("geofence violation surfaces code and details", func(t *testing.T) {
		svc := mock.NewMockService(gomock.NewController(t))
		svc.EXPECT().
			Punch(gomock.Any(), "t1", "e1", gomock.Any(), gomock.Any()).
			Return(attendance.PunchResponse{}, attendanceerrors.ErrGeoFencingViolation.WithDetails(map[string]any{"distance_m": 1102.18, "radius_m": 100}))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/punch", strings.NewReader(`{"latitude":12.98,"longitude":77.6}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		setupRouter(svc, "EMPLOYEE").ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "GEO_FENCING_VIOLATION")
		assert.Contains(t, w.Body.String(), "1102.18")
	})

	t.Run("invalid latitude", func(t *testing.T) {
		svc := mock.NewMockService(gomock.NewController(t))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/punch", strings.NewReader(`{"latitude":123}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		setupRouter(svc, "EMPLOYEE").ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAttendanceHandler_ListScope(t *testing.T) {
	tests := []struct {
		role string
		want string
	}{
		{"EMPLOYEE", "e1"},
		{"HR", "e9"},
		{"MANAGER", "e9"},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			svc := mock.NewMockService(gomock.NewController(t))
			svc.EXPECT().
				List(gomock.Any(), "t1", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, f attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
					assert.Equal(t, tt.want, f.EmployeeID)
					require.NotNil(t, f.From)
					assert.Equal(t, "2026-03-01", f.From.Format("2006-01-02"))
					return []attendance.AttendanceResponse{{ID: "a1"}}, nil
				})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance?employee_id=e9&from=2026-03-01", nil)
			w := httptest.NewRecorder()
			setupRouter(svc, tt.role).ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}

	t.Run("bad date", func(t *testing.T) {
		svc := mock.NewMockService(gomock.NewController(t))
		req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance?to=March", nil)
		w := httptest.NewRecorder()
		setupRouter(svc, "HR").ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAttendanceHandler_Import(t *testing.T) {
	svc := mock.NewMockService(gomock.NewController(t))
	svc.EXPECT().
		Import(gomock.Any(), "t1", "e1", "march.csv", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, _ string, r io.Reader) (attendance.ImportResult, error) {
			b, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Contains(t, string(b), "EMP-000001")
			return attendance.ImportResult{Success: 1, Errors: []attendance.RowError{}}, nil
		})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "march.csv")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("code,date\nEMP-000001,2026-03-02\n"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	setupRouter(svc, "HR").ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":1`)
}

func TestAttendanceHandler_Override(t *testing.T) {
	svc := mock.NewMockService(gomock.NewController(t))

	req := httptest.NewRequest(http.MethodPut, "/api/v1/attendance/a1/override", strings.NewReader(`{"status":"present"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	setupRouter(svc, "HR").ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "reason is required")
}
