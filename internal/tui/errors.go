// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-fare-card/internal/app"
	"github.com/MKhiriev/go-fare-card/internal/service"
	"github.com/MKhiriev/go-fare-card/internal/validators"
)

var fieldMessages = []struct {
	err error
	msg string
}{
	{validators.ErrInvalidLogin, "Informe o e-mail ou CPF"},
	{validators.ErrInvalidImage, "URL da foto inválida"},
	{validators.ErrInvalidName, "Nome deve ter ao menos 4 caracteres"},
	{validators.ErrInvalidSurname, "Sobrenome deve ter ao menos 4 caracteres"},
	{validators.ErrInvalidEmail, "Email inválido"},
	{validators.ErrInvalidPhone, "Telefone deve ter 10 ou 11 dígitos"},
	{validators.ErrInvalidCPF, "CPF inválido"},
	{validators.ErrInvalidPassword, "Senha deve ter ao menos 8 caracteres"},
	{validators.ErrInvalidPostalCode, "CEP deve ter 8 dígitos"},
	{validators.ErrInvalidNumber, "Informe o número do endereço"},
	{validators.ErrInvalidStreet, "Rua obrigatória (até 255 caracteres)"},
	{validators.ErrInvalidDistrict, "Bairro obrigatório (até 60 caracteres)"},
	{validators.ErrInvalidCity, "Cidade obrigatória (até 60 caracteres)"},
	{validators.ErrInvalidState, "Estado obrigatório (até 20 caracteres)"},
	{validators.ErrInvalidComplement, "Complemento deve ter até 255 caracteres"},
}

// humanizeError turns a service error into the text shown to the rider.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrWrongCredentials):
		return app.MsgInvalidLoginPassword
	case errors.Is(err, service.ErrSessionExpired):
		return "Sessão expirada. Entre novamente"
	case errors.Is(err, service.ErrNotLoggedIn):
		return "Entre na sua conta para continuar"
	case errors.Is(err, service.ErrAccessDenied):
		return "Acesso negado"
	case errors.Is(err, service.ErrNotFound):
		return "Nenhum dado encontrado"
	case errors.Is(err, errInvalidNumber):
		return "Número do endereço inválido"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return invalidDataMessage(err)
	}

	return humanizeServerUnavailableError(err)
}

func invalidDataMessage(err error) string {
	lines := []string{"Dados inválidos:"}
	for _, fm := range fieldMessages {
		if errors.Is(err, fm.err) {
			lines = append(lines, "• "+fm.msg)
		}
	}
	if len(lines) == 1 {
		return "Dados inválidos"
	}
	return strings.Join(lines, "\n")
}

// needsRelogin reports errors after which the rider must log in again.
func needsRelogin(err error) bool {
	return errors.Is(err, service.ErrSessionExpired) || errors.Is(err, service.ErrNotLoggedIn)
}

func humanizeServerUnavailableError(err error) string {
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Sem conexão ou servidor indisponível"
	}

	return err.Error()
}
