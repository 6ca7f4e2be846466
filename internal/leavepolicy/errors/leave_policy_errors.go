package leavepolicyerrors

import (
	"go-hrms/internal/shared/apperror"
	"net/http"
)

var (
	ErrPolicyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave policy not found",
		http.StatusNotFound,
	)
	ErrInvalidScope = apperror.New(
		apperror.CodeInvalidInput,
		"Scope must be ALL, ROLES, DEPARTMENTS or EMPLOYEE with matching targets",
		http.StatusBadRequest,
	)
	ErrDuplicateRule = apperror.New(
		apperror.CodeInvalidInput,
		"Each leave type may appear only once in a policy",
		http.StatusBadRequest,
	)
	ErrInvalidRule = apperror.New(
		apperror.CodeInvalidInput,
		"Leave rule entitlement and carry forward cap must not be negative",
		http.StatusBadRequest,
	)
	ErrPolicyInactive = apperror.New(
		apperror.CodeInvalidState,
		"Inactive leave policies cannot be assigned",
		http.StatusConflict,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
)
