package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-hrms/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps code and details", func(t *testing.T) {
		err := apperror.New(apperror.CodeGeoFencingViolation, "outside office radius", http.StatusForbidden).
			WithDetails(map[string]any{"distance_meters": 1300})

		httpErr := apperror.ToHTTP(fmt.Errorf("punch: %w", err))

		assert.Equal(t, http.StatusForbidden, httpErr.Status)
		assert.Equal(t, apperror.CodeGeoFencingViolation, httpErr.Code)
		assert.Equal(t, map[string]any{"distance_meters": 1300}, httpErr.Details)
	})

	t.Run("unknown error becomes internal", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("connection refused"))

		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
		assert.Equal(t, "connection refused", httpErr.Message)
	})
}

func TestAppError_WithDetailsStillMatchesSentinel(t *testing.T) {
	detailed := apperror.ErrNotFound.WithDetails("employee EMP-9")

	assert.True(t, errors.Is(detailed, apperror.ErrNotFound))
	assert.Nil(t, apperror.ErrNotFound.Details)
	assert.True(t, apperror.HasCode(detailed, apperror.CodeNotFound))
}
