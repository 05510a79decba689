package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrInvalidBusID = errors.New("bus id must be a UUID")

	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong login or password")
	ErrNotLoggedIn         = errors.New("not logged in")
	ErrSessionExpired      = errors.New("session expired")
	ErrAccessDenied        = errors.New("access to another rider's data denied")
	ErrNotFound            = errors.New("no data found")
)
