package leavebalance

import (
	"net/http"
	"strconv"
	"time"

	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Mine(c *gin.Context) {
	h.list(c, c.GetString("employee_id"))
}

func (h *Handler) ForEmployee(c *gin.Context) {
	h.list(c, c.Param("employeeId"))
}

func (h *Handler) list(c *gin.Context, employeeID string) {
	year := time.Now().Year()
	if raw := c.Query("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", "year is invalid")
			return
		}
		year = v
	}

	resp, err := h.service.ListForEmployee(c.Request.Context(), c.GetString("tenant_id"), employeeID, year)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
