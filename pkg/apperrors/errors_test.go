package apperrors_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"crockpot-backend/pkg/apperrors"
)

func TestConstructorsCarryFixedStatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		err    *apperrors.Error
		status int
	}{
		{"bad request", apperrors.NewBadRequest("Invalid input"), http.StatusBadRequest},
		{"unauthorized", apperrors.NewUnauthorized("Not authenticated", ""), http.StatusUnauthorized},
		{"forbidden", apperrors.NewForbidden("Access denied"), http.StatusForbidden},
		{"not found", apperrors.NewNotFound("Resource not found"), http.StatusNotFound},
		{"conflict", apperrors.NewConflict("Resource already exists"), http.StatusConflict},
		{"internal", apperrors.NewInternal("Something went wrong"), http.StatusInternalServerError},
		{"service unavailable", apperrors.NewServiceUnavailable("Service is currently unavailable"), http.StatusServiceUnavailable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.status, tc.err.Status)
			require.NotEmpty(t, tc.err.Error())
		})
	}
}

func TestUnauthorizedErrorCode(t *testing.T) {
	err := apperrors.NewUnauthorized("Token expired", "TOKEN_EXPIRED")
	require.Equal(t, "TOKEN_EXPIRED", err.ErrorCode)
	require.Equal(t, "Token expired", err.Error())

	noCode := apperrors.NewUnauthorized("Not authenticated", "")
	require.Empty(t, noCode.ErrorCode)
}
