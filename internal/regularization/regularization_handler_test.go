package regularization_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/domain"
	"go-hrms/internal/regularization"
	regularizationerrors "go-hrms/internal/regularization/errors"
	"go-hrms/internal/regularization/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRouter(svc regularization.Service, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("tenant_id", "t1")
		c.Set("user_id", "u1")
		c.Set("employee_id", "e1")
		c.Set("role", role)
		c.Next()
	})
	pass := func(c *gin.Context) { c.Next() }
	regularization.RegisterRoutes(r.Group("/api/v1"), regularization.NewHandler(svc), pass, pass, pass)
	return r
}

func TestRegularizationHandler_Apply(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := mock.NewMockService(gomock.NewController(t))
		actor := domain.Actor{UserID: "u1", EmployeeID: "e1", Role: domain.RoleEmployee}
		svc.EXPECT().
			Apply(gomock.Any(), "t1", actor, regularization.ApplyRequest{
				Category:  "LEAVE",
				Date:      "2026-02-27",
				LeaveType: "SL",
				Reason:    "sick",
			}).
			Return(regularization.RegularizationResponse{Status: "PENDING", BeforeLeaveType: "CL"}, nil)

		body := `{"category":"LEAVE","date":"2026-02-27","leave_type":"SL","reason":"sick"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/regularizations", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		setupRouter(svc, "EMPLOYEE").ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"before_leave_type":"CL"`)
	})

	t.Run("bad clock is rejected before the service", func(t *testing.T) {
		svc := mock.NewMockService(gomock.NewController(t))

		body := `{"category":"ATTENDANCE","date":"2026-02-27","check_in":"9am","reason":"x"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/regularizations", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		setupRouter(svc, "EMPLOYEE").ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("duplicate maps to conflict", func(t *testing.T) {
		svc := mock.NewMockService(gomock.NewController(t))
		svc.EXPECT().
			Apply(gomock.Any(), "t1", gomock.Any(), gomock.Any()).
			Return(regularization.RegularizationResponse{}, regularizationerrors.ErrDuplicatePending)

		body := `{"category":"ATTENDANCE","date":"2026-02-27","status":"present","reason":"x"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/regularizations", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		setupRouter(svc, "EMPLOYEE").ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestRegularizationHandler_Decide(t *testing.T) {
	t.Run("approve without body", func(t *testing.T) {
		svc := mock.NewMockService(gomock.NewController(t))
		svc.EXPECT().
			Approve(gomock.Any(), "t1", gomock.Any(), "r1", regularization.DecisionRequest{}).
			Return(regularization.RegularizationResponse{Status: "APPROVED"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/regularizations/r1/approve", nil)
		w := httptest.NewRecorder()
		setupRouter(svc, "MANAGER").ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"APPROVED"`)
	})

	t.Run("reject not pending", func(t *testing.T) {
		svc := mock.NewMockService(gomock.NewController(t))
		svc.EXPECT().
			Reject(gomock.Any(), "t1", gomock.Any(), "r1", regularization.DecisionRequest{Note: "late"}).
			Return(regularization.RegularizationResponse{}, regularizationerrors.ErrNotPending)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/regularizations/r1/reject", strings.NewReader(`{"note":"late"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		setupRouter(svc, "HR").ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_STATE")
	})
}

func TestRegularizationHandler_List(t *testing.T) {
	svc := mock.NewMockService(gomock.NewController(t))
	svc.EXPECT().
		List(gomock.Any(), "t1", gomock.Any(), regularization.ListQuery{Scope: regularization.ScopePending}).
		Return([]regularization.RegularizationResponse{{ID: "r1"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/regularizations?scope=Pending", nil)
	w := httptest.NewRecorder()
	setupRouter(svc, "MANAGER").ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"r1"`)
}
