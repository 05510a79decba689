// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the fare API.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401). The text
// of the API's {"error": "..."} body is kept in the wrapped message.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-fare-card/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the fare API.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every subsequent request.
	// An empty token stops the header from being sent.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a rider account. The API does not log the rider in,
	// so no token is stored.
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)

	// Login exchanges credentials for a bearer token. On success the token
	// is stored via SetToken.
	Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)

	// BasicInfo returns the header data of the logged-in rider.
	BasicInfo(ctx context.Context) (models.UserInfo, error)

	// Dashboard returns the home screen summary of the logged-in rider.
	Dashboard(ctx context.Context) (models.Dashboard, error)

	// BalanceHistory returns the rider's top-ups, newest first.
	BalanceHistory(ctx context.Context) ([]models.BalanceEntry, error)

	// FareHistory returns the trips charged to userID, newest first. The
	// API rejects ids other than the token owner's.
	FareHistory(ctx context.Context, userID string) ([]models.FareEntry, error)
}
