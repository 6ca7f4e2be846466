package attendanceerrors

import (
	"go-hrms/internal/shared/apperror"
	"net/http"
)

var (
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance record not found",
		http.StatusNotFound,
	)
	ErrGeoFencingViolation = apperror.New(
		apperror.CodeGeoFencingViolation,
		"Punch location is outside the allowed office radius",
		http.StatusForbidden,
	)
	ErrLocationRequired = apperror.New(
		apperror.CodeGeoFencingViolation,
		"Location coordinates are required to punch",
		http.StatusForbidden,
	)
	ErrIPRestrictionViolation = apperror.New(
		apperror.CodeIPRestrictionViolation,
		"Punching is not allowed from this network",
		http.StatusForbidden,
	)
	ErrSinglePunchMode = apperror.New(
		apperror.CodeSinglePunchModeViolation,
		"Only one check-in and one check-out are allowed per day",
		http.StatusConflict,
	)
	ErrMaxPunchLimit = apperror.New(
		apperror.CodeMaxPunchLimitExceeded,
		"Maximum punches for the day reached",
		http.StatusConflict,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid attendance status",
		http.StatusBadRequest,
	)
	ErrInvalidTime = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid time, expected HH:MM",
		http.StatusBadRequest,
	)
	ErrConcurrentPunch = apperror.New(
		apperror.CodeConflict,
		"Another punch for this day was recorded at the same time, please retry",
		http.StatusConflict,
	)
	ErrUnsupportedFile = apperror.New(
		apperror.CodeInvalidInput,
		"Unsupported file type, upload .xlsx or .csv",
		http.StatusBadRequest,
	)
	ErrMissingColumns = apperror.New(
		apperror.CodeInvalidInput,
		"File must contain employee code and date columns",
		http.StatusBadRequest,
	)
)
