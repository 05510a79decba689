// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-fare-card/internal/adapter"
	"github.com/MKhiriev/go-fare-card/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch extractBody(err, adapter.ErrBadRequest) {
		case app.MsgInvalidRequestPayload:
			return ErrInvalidDataProvided
		case app.MsgCannotGetIDFromToken:
			return ErrSessionExpired
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch extractBody(err, adapter.ErrUnauthorized) {
		case app.MsgIDsNotEqual:
			return ErrAccessDenied
		default:
			return ErrSessionExpired
		}

	case errors.Is(err, adapter.ErrNotFound):
		msg := extractBody(err, adapter.ErrNotFound)
		switch {
		case msg == app.MsgInvalidLoginPassword:
			return ErrWrongCredentials
		case strings.HasPrefix(msg, app.MsgNoDataFoundPrefix):
			return ErrNotFound
		}
	}

	return err
}

// extractBody extracts the body from a message of the form
// "<context>: not found: <body>", where sentinel is the adapter error.
func extractBody(err, sentinel error) string {
	msg := err.Error()
	marker := sentinel.Error() + ": "
	if idx := strings.Index(msg, marker); idx != -1 {
		return msg[idx+len(marker):]
	}
	return msg
}
