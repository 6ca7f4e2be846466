package leavebalanceerrors

import (
	"go-hrms/internal/shared/apperror"
	"net/http"
)

var (
	ErrBalanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave balance not found",
		http.StatusNotFound,
	)
	ErrNegativePending = apperror.New(
		apperror.CodeInvalidState,
		"Leave balance pending cannot go negative",
		http.StatusConflict,
	)
	ErrNegativeUsed = apperror.New(
		apperror.CodeInvalidState,
		"Leave balance used cannot go negative",
		http.StatusConflict,
	)
	ErrInvalidDays = apperror.New(
		apperror.CodeInvalidInput,
		"Leave days must be positive",
		http.StatusBadRequest,
	)
	ErrVersionConflict = apperror.New(
		apperror.CodeConflict,
		"Leave balance was modified concurrently, please retry",
		http.StatusConflict,
	)
)
