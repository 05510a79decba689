package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-fare-card/internal/adapter"
	"github.com/stretchr/testify/assert"
)

func TestMapAdapterError(t *testing.T) {
	wrap := func(sentinel error, body string) error {
		return fmt.Errorf("basic info: %w", fmt.Errorf("%w: %s", sentinel, body))
	}
	transport := errors.New("dial tcp: connection refused")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"wrong credentials", wrap(adapter.ErrNotFound, "Login ou Senha estão incorretos!"), ErrWrongCredentials},
		{"no data found", wrap(adapter.ErrNotFound, "No data found with ID: u-1"), ErrNotFound},
		{"unknown route stays adapter error", wrap(adapter.ErrNotFound, "404 page not found"), adapter.ErrNotFound},
		{"token required", wrap(adapter.ErrUnauthorized, "Authorization token required"), ErrSessionExpired},
		{"token expired", wrap(adapter.ErrUnauthorized, "Invalid or expired authorization header"), ErrSessionExpired},
		{"ids differ", wrap(adapter.ErrUnauthorized, "IDs are not equals"), ErrAccessDenied},
		{"no id in token", wrap(adapter.ErrBadRequest, "Cannot get ID with this TOKEN"), ErrSessionExpired},
		{"invalid payload", wrap(adapter.ErrBadRequest, "Invalid request payload"), ErrInvalidDataProvided},
		{"server error passes through", wrap(adapter.ErrInternalServerError, "boom"), adapter.ErrInternalServerError},
		{"transport error passes through", transport, transport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestExtractBody(t *testing.T) {
	err := fmt.Errorf("fare history: %w", fmt.Errorf("%w: %s", adapter.ErrNotFound, "No data found with ID: u-1"))

	assert.Equal(t, "No data found with ID: u-1", extractBody(err, adapter.ErrNotFound))
	assert.Equal(t, "plain", extractBody(errors.New("plain"), adapter.ErrNotFound))
}
