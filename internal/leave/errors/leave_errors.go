package leaveerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrPastStartDate = apperror.New(
		apperror.CodeInvalidInput,
		"start_date cannot be in the past",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"end_date must be on or after start_date",
		http.StatusBadRequest,
	)
	ErrWeeklyOffBoundary = apperror.New(
		apperror.CodeInvalidInput,
		"leave cannot start or end on a weekly off day",
		http.StatusBadRequest,
	)
	ErrHolidayBoundary = apperror.New(
		apperror.CodeInvalidInput,
		"leave cannot start or end on a holiday",
		http.StatusBadRequest,
	)
	ErrInvalidHalfDay = apperror.New(
		apperror.CodeInvalidInput,
		"half_day_target must be START or END",
		http.StatusBadRequest,
	)
	ErrLeaveOverlap = apperror.New(
		apperror.CodeConflict,
		"leave already exists in overlapping period",
		http.StatusConflict,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrApplyOnBehalfForbidden = apperror.New(
		apperror.CodeForbidden,
		"only HR may apply leave for another employee",
		http.StatusForbidden,
	)
	ErrNotApprover = apperror.New(
		apperror.CodeForbidden,
		"only the direct manager or HR may decide this leave",
		http.StatusForbidden,
	)
	ErrNotApplier = apperror.New(
		apperror.CodeForbidden,
		"only the original applier may change this leave",
		http.StatusForbidden,
	)
	ErrLeaveAccessDenied = apperror.New(
		apperror.CodeForbidden,
		"you are not allowed to view this leave",
		http.StatusForbidden,
	)
	ErrNotPending = apperror.New(
		apperror.CodeInvalidState,
		"leave is no longer pending",
		http.StatusConflict,
	)
	ErrApprovedNotCancellable = apperror.New(
		apperror.CodeInvalidState,
		"approved leave cannot be cancelled, raise a regularization instead",
		http.StatusConflict,
	)
	ErrInsufficientBalance = apperror.New(
		apperror.CodeInvalidInput,
		"insufficient leave balance for the new leave type",
		http.StatusBadRequest,
	)
	ErrInvalidScope = apperror.New(
		apperror.CodeInvalidInput,
		"scope must be mine, team or all",
		http.StatusBadRequest,
	)
)
