package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-fare-card/models"
	"github.com/charmbracelet/bubbles/textinput"
)

var errInvalidNumber = errors.New("número do endereço inválido")

// register form fields, in tab order
const (
	fieldImage = iota
	fieldName
	fieldSurname
	fieldEmail
	fieldPhone
	fieldCPF
	fieldPassword
	fieldPostalCode
	fieldNumber
	fieldStreet
	fieldDistrict
	fieldCity
	fieldState
	fieldComplement
	registerFieldCount
)

var registerLabels = [registerFieldCount]string{
	fieldImage:      "URL da Foto",
	fieldName:       "Nome",
	fieldSurname:    "Sobrenome",
	fieldEmail:      "Email",
	fieldPhone:      "Telefone",
	fieldCPF:        "CPF",
	fieldPassword:   "Senha",
	fieldPostalCode: "CEP",
	fieldNumber:     "Número",
	fieldStreet:     "Rua",
	fieldDistrict:   "Bairro",
	fieldCity:       "Cidade",
	fieldState:      "Estado",
	fieldComplement: "Complemento",
}

type registerModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newRegisterModel() registerModel {
	inputs := make([]textinput.Model, registerFieldCount)
	for i := range inputs {
		in := textinput.New()
		in.Width = 40
		in.CharLimit = 255
		inputs[i] = in
	}

	inputs[fieldImage].Placeholder = "https://..."
	inputs[fieldPhone].Placeholder = "(11) 99999-0000"
	inputs[fieldPhone].CharLimit = 20
	inputs[fieldCPF].Placeholder = "000.000.000-00"
	inputs[fieldCPF].CharLimit = 14
	inputs[fieldPassword].EchoMode = textinput.EchoPassword
	inputs[fieldPassword].EchoCharacter = '*'
	inputs[fieldPostalCode].Placeholder = "00000-000"
	inputs[fieldPostalCode].CharLimit = 9
	inputs[fieldNumber].CharLimit = 10
	inputs[fieldDistrict].CharLimit = 60
	inputs[fieldCity].CharLimit = 60
	inputs[fieldState].CharLimit = 20

	inputs[fieldImage].Focus()
	return registerModel{inputs: inputs}
}

func (m registerModel) value(field int) string {
	return strings.TrimSpace(m.inputs[field].Value())
}

// request builds the registration body. Masks in CPF and CEP are left for
// the auth service to strip.
func (m registerModel) request() (models.RegisterRequest, error) {
	var number int64
	if raw := m.value(fieldNumber); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return models.RegisterRequest{}, errInvalidNumber
		}
		number = n
	}

	return models.RegisterRequest{
		Image:    m.value(fieldImage),
		Name:     m.value(fieldName),
		Surname:  m.value(fieldSurname),
		Email:    m.value(fieldEmail),
		Phone:    m.value(fieldPhone),
		CPF:      m.value(fieldCPF),
		Password: m.inputs[fieldPassword].Value(),
		Address: models.Address{
			PostalCode: m.value(fieldPostalCode),
			Number:     number,
			Street:     m.value(fieldStreet),
			District:   m.value(fieldDistrict),
			City:       m.value(fieldCity),
			State:      m.value(fieldState),
			Complement: m.value(fieldComplement),
		},
	}, nil
}

func (m registerModel) focusNext() registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m registerModel) focusPrev() registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m registerModel) View() string {
	var b strings.Builder
	for i, in := range m.inputs {
		if i == fieldPostalCode {
			b.WriteString("\nEndereço\n")
		}
		b.WriteString(padRight(registerLabels[i], 12))
		b.WriteString("│ [")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Criando conta...]")
	} else {
		b.WriteString("\n[Criar conta]")
	}

	return renderPage("CRIE SUA CONTA", b.String(), "esc: voltar │ tab: próximo campo │ enter: enviar")
}
