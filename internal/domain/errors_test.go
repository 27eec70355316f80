package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/urbanfarm-dashboard/internal/domain"
)

func TestAPIError_IsSegunStatus(t *testing.T) {
	cases := []struct {
		status int
		target error
	}{
		{401, domain.ErrUnauthorized},
		{403, domain.ErrForbidden},
		{404, domain.ErrNotFound},
		{409, domain.ErrConflict},
		{400, domain.ErrInvalidInput},
		{422, domain.ErrInvalidInput},
		{503, domain.ErrUnavailable},
		{0, domain.ErrUnavailable},
	}
	for _, tc := range cases {
		err := fmt.Errorf("envuelto: %w", &domain.APIError{Status: tc.status, Method: "GET", Path: "/farms"})
		assert.True(t, errors.Is(err, tc.target), "status %d debe mapear a %v", tc.status, tc.target)
	}

	err := &domain.APIError{Status: 500}
	assert.False(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestAPIError_Mensaje(t *testing.T) {
	err := &domain.APIError{Status: 400, Message: "name is required", Method: "POST", Path: "/farms"}
	assert.Equal(t, "POST /farms: 400 name is required", err.Error())

	cause := errors.New("connection refused")
	err = &domain.APIError{Method: "GET", Path: "/crops", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}
