package attendance

import (
	"net/http"
	"path/filepath"
	"time"

	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxImportBytes = 10 << 20

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("attendance request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func validationError(c *gin.Context, detail any) {
	response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", detail)
}

func (h *Handler) Punch(c *gin.Context) {
	var req PunchRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			validationError(c, apperror.MapValidationError(err).Error())
			return
		}
	}

	resp, err := h.service.Punch(
		c.Request.Context(),
		c.GetString("tenant_id"),
		c.GetString("employee_id"),
		req,
		middleware.ClientIP(c.Request),
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Today(c *gin.Context) {
	resp, err := h.service.Today(c.Request.Context(), c.GetString("tenant_id"), c.GetString("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// List shows the caller's own days unless the role may see others.
func (h *Handler) List(c *gin.Context) {
	filter := ListFilter{EmployeeID: c.GetString("employee_id")}
	role := domain.ParseRole(c.GetString("role"))
	if role.IsPeopleOps() || role == domain.RoleManager {
		filter.EmployeeID = c.Query("employee_id")
	}

	for key, dst := range map[string]**time.Time{"from": &filter.From, "to": &filter.To} {
		raw := c.Query(key)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			validationError(c, key+" must be YYYY-MM-DD")
			return
		}
		*dst = &t
	}
	if raw := c.Query("status"); raw != "" {
		status, ok := ParseStatus(raw)
		if !ok {
			validationError(c, "status is invalid")
			return
		}
		filter.Status = status
	}

	rows, err := h.service.List(c.Request.Context(), c.GetString("tenant_id"), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Paginate(c, http.StatusOK, rows)
}

func (h *Handler) Override(c *gin.Context) {
	var req OverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, apperror.MapValidationError(err).Error())
		return
	}

	resp, err := h.service.Override(c.Request.Context(), c.GetString("tenant_id"), c.GetString("employee_id"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Import(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes)
	fh, err := c.FormFile("file")
	if err != nil {
		validationError(c, "file is required")
		return
	}
	f, err := fh.Open()
	if err != nil {
		validationError(c, err.Error())
		return
	}
	defer f.Close()

	h.logger.Info("http attendance import",
		zap.String("tenant_id", c.GetString("tenant_id")),
		zap.String("file", filepath.Base(fh.Filename)),
		zap.Int64("size", fh.Size),
	)

	resp, err := h.service.Import(c.Request.Context(), c.GetString("tenant_id"), c.GetString("employee_id"), fh.Filename, f)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
