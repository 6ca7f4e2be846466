package notificationerrors

import (
	"go-hrms/internal/shared/apperror"
	"net/http"
)

var ErrNotificationNotFound = apperror.New(
	apperror.CodeNotFound,
	"Notification not found",
	http.StatusNotFound,
)
