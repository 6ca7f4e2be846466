package employee_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/employee"
	employeeerrors "go-hrms/internal/employee/errors"
	"go-hrms/internal/employee/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupRouter(svc employee.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("tenant_id", "t1")
		c.Next()
	})
	pass := func(c *gin.Context) { c.Next() }
	employee.RegisterRoutes(r.Group("/api/v1"), employee.NewHandler(svc), pass, pass)
	return r
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().
			Create(gomock.Any(), "t1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "Asha", req.FirstName)
				return employee.EmployeeResponse{ID: "e1", Code: "EMP-000001", Status: "Active"}, nil
			})

		body := `{"first_name":"Asha","joining_date":"2026-02-01"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "EMP-000001")
	})

	t.Run("validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader(`{"first_name":"Asha"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})
}

func TestEmployeeHandler_AssignManagerCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	svc.EXPECT().
		AssignManager(gomock.Any(), "t1", "e1", employee.AssignManagerRequest{ManagerID: "6c0b77a4-7d0e-4a53-9d0b-3c6c5f1c2a10"}).
		Return(employee.EmployeeResponse{}, employeeerrors.ErrManagerCycle)

	body := `{"manager_id":"6c0b77a4-7d0e-4a53-9d0b-3c6c5f1c2a10"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/employees/e1/manager", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var env struct {
		Ok    bool `json:"ok"`
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Ok)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestEmployeeHandler_GetAllFiltersAndPaginates(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	svc.EXPECT().
		GetAll(gomock.Any(), "t1", employee.ListFilter{Status: employee.StatusActive}).
		Return([]employee.EmployeeResponse{
			{ID: "1", FullName: "Zed", Code: "EMP-3"},
			{ID: "2", FullName: "amy", Code: "EMP-1"},
			{ID: "3", FullName: "Bob", Code: "EMP-2"},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees?status=active&page_size=2", nil)
	w := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Data []employee.EmployeeResponse `json:"data"`
		Meta struct {
			Total int `json:"total"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Len(t, env.Data, 2)
	assert.Equal(t, "amy", env.Data[0].FullName)
	assert.Equal(t, "Bob", env.Data[1].FullName)
	assert.Equal(t, 3, env.Meta.Total)
}

func TestEmployeeHandler_DeleteHard(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	svc.EXPECT().Delete(gomock.Any(), "t1", "e1", true).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/employees/e1?hard=true", nil)
	w := httptest.NewRecorder()
	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
