package payroll_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/payroll"
	payrollerrors "go-hrms/internal/payroll/errors"
	"go-hrms/internal/payroll/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRouter(svc payroll.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("tenant_id", "t1")
		c.Set("employee_id", "e1")
		c.Next()
	})
	pass := func(c *gin.Context) { c.Next() }
	payroll.RegisterRoutes(r.Group("/api/v1"), payroll.NewHandler(svc), pass, pass, pass)
	return r
}

func TestPayrollHandler_Run(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := mock.NewMockService(gomock.NewController(t))
		svc.EXPECT().
			Run(gomock.Any(), "t1", "e1", payroll.RunRequest{Period: "2026-03"}).
			Return(payroll.RunResponse{ID: "run-1", Period: "2026-03"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/payroll/runs", strings.NewReader(`{"period":"2026-03"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"run-1"`)
	})

	t.Run("bad period", func(t *testing.T) {
		svc := mock.NewMockService(gomock.NewController(t))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/payroll/runs", strings.NewReader(`{"period":"03/2026"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("period already paid", func(t *testing.T) {
		svc := mock.NewMockService(gomock.NewController(t))
		svc.EXPECT().
			Run(gomock.Any(), "t1", "e1", gomock.Any()).
			Return(payroll.RunResponse{}, payrollerrors.ErrRunExists)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/payroll/runs", strings.NewReader(`{"period":"2026-03"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestPayrollHandler_DownloadPayslip(t *testing.T) {
	t.Run("pdf", func(t *testing.T) {
		svc := mock.NewMockService(gomock.NewController(t))
		svc.EXPECT().
			PayslipPDF(gomock.Any(), "t1", "p1").
			Return([]byte("%PDF-1.4\n%%EOF"), "payslip-2026-03-EMP-001.pdf", nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/payroll/payslips/p1/pdf", nil)
		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "payslip-2026-03-EMP-001.pdf")
		assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
	})

	t.Run("not found", func(t *testing.T) {
		svc := mock.NewMockService(gomock.NewController(t))
		svc.EXPECT().
			PayslipPDF(gomock.Any(), "t1", "missing").
			Return(nil, "", payrollerrors.ErrPayslipNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/payroll/payslips/missing/pdf", nil)
		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPayrollHandler_Templates(t *testing.T) {
	svc := mock.NewMockService(gomock.NewController(t))
	svc.EXPECT().
		CreateTemplate(gomock.Any(), "t1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req payroll.CreateTemplateRequest) (payroll.TemplateResponse, error) {
			assert.Equal(t, "Staff", req.Name)
			assert.Equal(t, "1200", req.Basic.String())
			return payroll.TemplateResponse{ID: "tpl-1", Name: req.Name}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/salary-templates", strings.NewReader(`{"name":"Staff","basic":1200,"allowance":"50"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Staff"`)
}
