// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrStreamingUnsupported is returned when the response writer chain
	// cannot flush, so server-sent events would never reach the browser.
	ErrStreamingUnsupported = errors.New("streaming unsupported by response writer")

	// ErrTooManySessions is returned when a client opens viewer sessions
	// faster than the configured rate.
	ErrTooManySessions = errors.New("too many viewer sessions")
)
