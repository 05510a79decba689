package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidImage      = errors.New("image must be an http(s) URL")
	ErrInvalidName       = errors.New("name must have at least 4 characters")
	ErrInvalidSurname    = errors.New("surname must have at least 4 characters")
	ErrInvalidEmail      = errors.New("invalid e-mail")
	ErrInvalidPhone      = errors.New("phone must have 10 or 11 digits")
	ErrInvalidCPF        = errors.New("invalid CPF")
	ErrInvalidPassword   = errors.New("password must have at least 8 characters")
	ErrInvalidLogin      = errors.New("login is required")
	ErrInvalidPostalCode = errors.New("postal code must have exactly 8 digits")
	ErrInvalidNumber     = errors.New("address number is required")
	ErrInvalidStreet     = errors.New("street is required and must have at most 255 characters")
	ErrInvalidDistrict   = errors.New("district is required and must have at most 60 characters")
	ErrInvalidCity       = errors.New("city is required and must have at most 60 characters")
	ErrInvalidState      = errors.New("state is required and must have at most 20 characters")
	ErrInvalidComplement = errors.New("complement must have at most 255 characters")
)
