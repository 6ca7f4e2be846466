package regularizationerrors

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
	ErrInvalidCategory = apperror.New(
		apperror.CodeInvalidInput,
		"category must be ATTENDANCE or LEAVE",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrFutureDate = apperror.New(
		apperror.CodeInvalidInput,
		"only past or current days can be regularized",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"requested status is not a known attendance status",
		http.StatusBadRequest,
	)
	ErrNothingRequested = apperror.New(
		apperror.CodeInvalidInput,
		"attendance regularization needs check-in/check-out times or a status",
		http.StatusBadRequest,
	)
	ErrLeaveTypeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"leave regularization needs a leave_type unless count_as_present is set",
		http.StatusBadRequest,
	)
	ErrDuplicatePending = apperror.New(
		apperror.CodeConflict,
		"a pending regularization already exists for this day",
		http.StatusConflict,
	)
	ErrRegularizationNotFound = apperror.New(
		apperror.CodeNotFound,
		"regularization not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrNotApprover = apperror.New(
		apperror.CodeForbidden,
		"only the direct manager or HR may decide this regularization",
		http.StatusForbidden,
	)
	ErrNotPending = apperror.New(
		apperror.CodeInvalidState,
		"regularization is no longer pending",
		http.StatusConflict,
	)
	ErrInvalidScope = apperror.New(
		apperror.CodeInvalidInput,
		"scope must be mine or pending",
		http.StatusBadRequest,
	)
)
