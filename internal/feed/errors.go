package feed

import "errors"

var (
	ErrInvalidAddress = errors.New("invalid scan feed address")
	ErrEmptyBusID     = errors.New("empty bus id")
)
