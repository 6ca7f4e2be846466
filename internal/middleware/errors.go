package middleware

import (
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/response"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	ErrTokenMissing = apperror.New(
		apperror.CodeUnauthorized,
		"Token not found",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Token has expired",
		http.StatusUnauthorized,
	)
	ErrTooManyRequests = apperror.New(
		"TOO_MANY_REQUESTS",
		"Too many requests",
		http.StatusTooManyRequests,
	)
)

func abort(c *gin.Context, err *apperror.AppError) {
	response.Error(c, err.HTTPStatus, err.Code, err.Message, err.Details)
	c.Abort()
}
