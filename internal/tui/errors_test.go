package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-fare-card/internal/service"
	"github.com/MKhiriev/go-fare-card/internal/validators"
	"github.com/stretchr/testify/assert"
	"go.uber.org/multierr"
)

var errCPFForTest = validators.ErrInvalidCPF

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"wrong credentials", fmt.Errorf("login: %w", service.ErrWrongCredentials), "Login ou Senha estão incorretos!"},
		{"expired", service.ErrSessionExpired, "Sessão expirada. Entre novamente"},
		{"not found", service.ErrNotFound, "Nenhum dado encontrado"},
		{"offline", errors.New("dial tcp 127.0.0.1:8080: connect: connection refused"), "Sem conexão ou servidor indisponível"},
		{"deadline", context.DeadlineExceeded, "Sem conexão ou servidor indisponível"},
		{"other", errors.New("boom"), "boom"},
		{"invalid without details", service.ErrInvalidDataProvided, "Dados inválidos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}

func TestHumanizeError_ListsEveryViolation(t *testing.T) {
	violations := multierr.Combine(validators.ErrInvalidName, validators.ErrInvalidPostalCode, validators.ErrInvalidCPF)
	err := fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, violations)

	got := humanizeError(err)

	assert.Equal(t, "Dados inválidos:\n"+
		"• Nome deve ter ao menos 4 caracteres\n"+
		"• CPF inválido\n"+
		"• CEP deve ter 8 dígitos", got)
}

func TestNeedsRelogin(t *testing.T) {
	assert.True(t, needsRelogin(service.ErrSessionExpired))
	assert.True(t, needsRelogin(fmt.Errorf("x: %w", service.ErrNotLoggedIn)))
	assert.False(t, needsRelogin(service.ErrAccessDenied))
	assert.False(t, needsRelogin(nil))
}
