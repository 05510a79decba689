// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-fare-card/internal/logger"
	"github.com/MKhiriev/go-fare-card/internal/service"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is a terminal program that runs until the user quits or ctx ends.
type UI interface {
	Run(ctx context.Context) error
}

// KioskRunner shows one viewer session on the terminal. It owns the
// session and closes it on return.
type KioskRunner func(ctx context.Context, session service.ViewerSession, log *logger.Logger) error
