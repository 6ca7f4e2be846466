package settingserrors

import (
	"go-hrms/internal/shared/apperror"
	"net/http"
)

var (
	ErrInvalidShiftTime = apperror.New(
		apperror.CodeInvalidInput,
		"Shift times must use HH:MM and shift end must differ from shift start",
		http.StatusBadRequest,
	)
	ErrInvalidTimezone = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown timezone",
		http.StatusBadRequest,
	)
	ErrInvalidThresholds = apperror.New(
		apperror.CodeInvalidInput,
		"Half-day threshold must not exceed the full-day threshold",
		http.StatusBadRequest,
	)
	ErrInvalidGeofence = apperror.New(
		apperror.CodeInvalidInput,
		"Geofencing needs office coordinates and a positive radius",
		http.StatusBadRequest,
	)
	ErrInvalidAllowedIP = apperror.New(
		apperror.CodeInvalidInput,
		"Allowed IP entries must be IP addresses or CIDR ranges",
		http.StatusBadRequest,
	)
	ErrInvalidWeeklyOff = apperror.New(
		apperror.CodeInvalidInput,
		"Weekly off days must be between 0 (Sunday) and 6 (Saturday)",
		http.StatusBadRequest,
	)
)
