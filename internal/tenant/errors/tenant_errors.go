package tenanterrors

import (
	"go-hrms/internal/shared/apperror"
	"net/http"
)

var (
	ErrTenantNotFound = apperror.New(
		apperror.CodeTenantNotFound,
		"Tenant not found",
		http.StatusNotFound,
	)
	ErrTenantRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Tenant identifier is required",
		http.StatusBadRequest,
	)
	ErrTenantInactive = apperror.New(
		apperror.CodeForbidden,
		"Tenant is not active",
		http.StatusForbidden,
	)
	ErrTenantMismatch = apperror.New(
		apperror.CodeForbidden,
		"Tenant does not match the authenticated tenant",
		http.StatusForbidden,
	)
	ErrTenantCodeTaken = apperror.New(
		apperror.CodeConflict,
		"Tenant code already exists",
		http.StatusConflict,
	)
	ErrInvalidTenantCode = apperror.New(
		apperror.CodeInvalidInput,
		"Tenant code must be 2-63 lowercase letters, digits or dashes",
		http.StatusBadRequest,
	)
	ErrInvalidTenantStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid tenant status",
		http.StatusBadRequest,
	)
	ErrTenantUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"Tenant database is unavailable",
		http.StatusServiceUnavailable,
	)
)
