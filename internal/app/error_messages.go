// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared across the go-fare-card
// binaries.
//
// The Msg* constants in this file are the exact "error" texts the fare API
// writes into its JSON error bodies. The service layer matches on them to
// tell apart failures that share an HTTP status.
package app

const (
	// MsgInvalidLoginPassword is returned with 404 when the login does not
	// exist or the password does not match.
	MsgInvalidLoginPassword = "Login ou Senha estão incorretos!"

	// MsgAuthorizationRequired is returned with 401 when no Authorization
	// header was sent.
	MsgAuthorizationRequired = "Authorization token required"

	// MsgInvalidAuthorizationHeader is returned with 401 for a header that
	// is not "Bearer <token>".
	MsgInvalidAuthorizationHeader = "Invalid authorization header"

	// MsgInvalidOrExpiredToken is returned with 401 when the token signature
	// or expiry check fails.
	MsgInvalidOrExpiredToken = "Invalid or expired authorization header"

	// MsgCannotGetIDFromToken is returned with 400 when the token carries no
	// usable id_user claim.
	MsgCannotGetIDFromToken = "Cannot get ID with this TOKEN"

	// MsgIDsNotEqual is returned with 401 when a path id does not belong to
	// the token owner.
	MsgIDsNotEqual = "IDs are not equals"

	// MsgInvalidRequestPayload is returned with 400 when binding or
	// validation of a request body fails.
	MsgInvalidRequestPayload = "Invalid request payload"

	// MsgNoDataFoundPrefix starts every 404 lookup failure, followed by the
	// id that was looked up.
	MsgNoDataFoundPrefix = "No data found with ID: "

	// MsgUserCreated is the message of a successful registration.
	MsgUserCreated = "User successfully created!"
)
