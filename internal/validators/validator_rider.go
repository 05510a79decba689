package validators

import (
	"context"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-fare-card/models"
	"go.uber.org/multierr"
)

const (
	FieldImage      = "image"
	FieldName       = "name"
	FieldSurname    = "surname"
	FieldEmail      = "email"
	FieldPhone      = "phone"
	FieldCPF        = "cpf"
	FieldPassword   = "password"
	FieldLogin      = "login"
	FieldAddress    = "address"
	FieldPostalCode = "postalcode"
	FieldNumber     = "number"
	FieldStreet     = "street"
	FieldDistrict   = "district"
	FieldCity       = "city"
	FieldState      = "state"
	FieldComplement = "complement"
)

const (
	minNameLen       = 4
	minPasswordLen   = 8
	cpfLen           = 11
	postalCodeLen    = 8
	maxStreetLen     = 255
	maxDistrictLen   = 60
	maxCityLen       = 60
	maxStateLen      = 20
	maxComplementLen = 255
)

var (
	registerFields = []string{FieldImage, FieldName, FieldSurname, FieldEmail, FieldPhone, FieldCPF, FieldPassword, FieldAddress}
	addressFields  = []string{FieldPostalCode, FieldNumber, FieldStreet, FieldDistrict, FieldCity, FieldState, FieldComplement}
	loginFields    = []string{FieldLogin, FieldPassword}
)

// RiderValidator validates registration forms, addresses and credentials.
// Unlike a fail-fast check it reports every violated rule at once.
type RiderValidator struct {
}

func NewRiderValidator() Validator {
	return &RiderValidator{}
}

func (v *RiderValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(ctx, *value, fields...)

	case models.Address:
		return v.validateAddress(ctx, value, fields...)
	case *models.Address:
		return v.validateAddress(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RiderValidator) validateRegister(ctx context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = registerFields
	}

	var err error
	for _, f := range fields {
		switch f {
		case FieldImage:
			if !isHTTPURL(req.Image) {
				err = multierr.Append(err, ErrInvalidImage)
			}
		case FieldName:
			if runeLen(req.Name) < minNameLen {
				err = multierr.Append(err, ErrInvalidName)
			}
		case FieldSurname:
			if runeLen(req.Surname) < minNameLen {
				err = multierr.Append(err, ErrInvalidSurname)
			}
		case FieldEmail:
			if !isEmail(req.Email) {
				err = multierr.Append(err, ErrInvalidEmail)
			}
		case FieldPhone:
			if !isPhone(req.Phone) {
				err = multierr.Append(err, ErrInvalidPhone)
			}
		case FieldCPF:
			if !IsCPF(req.CPF) {
				err = multierr.Append(err, ErrInvalidCPF)
			}
		case FieldPassword:
			if runeLen(req.Password) < minPasswordLen {
				err = multierr.Append(err, ErrInvalidPassword)
			}
		case FieldAddress:
			err = multierr.Append(err, v.validateAddress(ctx, req.Address))
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return err
}

func (v *RiderValidator) validateAddress(_ context.Context, a models.Address, fields ...string) error {
	if len(fields) == 0 {
		fields = addressFields
	}

	var err error
	for _, f := range fields {
		switch f {
		case FieldPostalCode:
			if len(a.PostalCode) != postalCodeLen || !isDigits(a.PostalCode) {
				err = multierr.Append(err, ErrInvalidPostalCode)
			}
		case FieldNumber:
			if a.Number <= 0 {
				err = multierr.Append(err, ErrInvalidNumber)
			}
		case FieldStreet:
			if !requiredMax(a.Street, maxStreetLen) {
				err = multierr.Append(err, ErrInvalidStreet)
			}
		case FieldDistrict:
			if !requiredMax(a.District, maxDistrictLen) {
				err = multierr.Append(err, ErrInvalidDistrict)
			}
		case FieldCity:
			if !requiredMax(a.City, maxCityLen) {
				err = multierr.Append(err, ErrInvalidCity)
			}
		case FieldState:
			if !requiredMax(a.State, maxStateLen) {
				err = multierr.Append(err, ErrInvalidState)
			}
		case FieldComplement:
			if runeLen(a.Complement) > maxComplementLen {
				err = multierr.Append(err, ErrInvalidComplement)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return err
}

func (v *RiderValidator) validateCredentials(_ context.Context, c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = loginFields
	}

	var err error
	for _, f := range fields {
		switch f {
		case FieldLogin:
			if strings.TrimSpace(c.Login) == "" {
				err = multierr.Append(err, ErrInvalidLogin)
			}
		case FieldPassword:
			if runeLen(c.Password) < minPasswordLen {
				err = multierr.Append(err, ErrInvalidPassword)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return err
}

// IsCPF reports whether s is 11 digits with valid check digits. Sequences of
// one repeated digit are rejected.
func IsCPF(s string) bool {
	if len(s) != cpfLen || !isDigits(s) {
		return false
	}
	if strings.Count(s, s[:1]) == cpfLen {
		return false
	}

	d := make([]int, cpfLen)
	for i := range s {
		d[i] = int(s[i] - '0')
	}

	return cpfCheckDigit(d[:9]) == d[9] && cpfCheckDigit(d[:10]) == d[10]
}

// cpfCheckDigit computes the next CPF check digit for the given prefix.
func cpfCheckDigit(prefix []int) int {
	sum := 0
	weight := len(prefix) + 1
	for _, n := range prefix {
		sum += n * weight
		weight--
	}

	r := sum * 10 % 11
	if r == 10 {
		return 0
	}
	return r
}

// OnlyDigits strips every non-digit from s. Forms use it to accept masked
// input such as "529.982.247-25" or "01001-000".
func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func isPhone(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && !strings.ContainsRune("+()- ", r) {
			return false
		}
	}
	n := len(OnlyDigits(s))
	return n == 10 || n == 11
}

func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func isHTTPURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func requiredMax(s string, limit int) bool {
	n := runeLen(strings.TrimSpace(s))
	return n > 0 && runeLen(s) <= limit
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
