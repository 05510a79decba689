// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by all
// binaries. It is populated by merging values from flags, environment
// variables, an optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the addresses of the external fare API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Viewer holds the kiosk display settings.
	Viewer Viewer `envPrefix:"VIEWER_"`

	// Server holds the kiosk web server settings.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Version is reported by GET /version of the kiosk server.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds the endpoints of the fare API consumed by the clients.
type Adapter struct {
	// HTTPAddress is the REST base URL (e.g. "http://localhost:8080/v1").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// WSAddress is the scan feed endpoint (e.g. "ws://localhost:8080/v1/ws").
	// The bus id is appended as the "id" query parameter.
	// Env: ADAPTER_WS_ADDRESS
	WSAddress string `env:"WS_ADDRESS"`

	// RequestTimeout bounds every outbound REST call and the feed handshake.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Viewer holds the kiosk display settings.
type Viewer struct {
	// BusID is the bus whose scans the terminal kiosk shows.
	// Env: VIEWER_BUS_ID
	BusID string `env:"BUS_ID"`

	// ResetTimeout is how long a scan result stays on screen before the
	// kiosk returns to idle.
	// Env: VIEWER_RESET_TIMEOUT
	ResetTimeout time.Duration `env:"RESET_TIMEOUT"`
}

// Server holds network and stream settings of the kiosk web server.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds page and version requests. Event streams are
	// not subject to it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// HeartbeatInterval is the period of SSE keep-alive comments.
	// Env: SERVER_HEARTBEAT_INTERVAL
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL"`

	// SessionRate is the number of viewer sessions a single client may open
	// per second.
	// Env: SERVER_SESSION_RATE
	SessionRate float64 `env:"SESSION_RATE"`

	// SessionBurst is the burst size of the session limiter.
	// Env: SERVER_SESSION_BURST
	SessionBurst int `env:"SESSION_BURST"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// BalanceRefreshInterval is how often the rider dashboard refreshes the
	// balance header.
	// Env: WORKERS_BALANCE_REFRESH_INTERVAL
	BalanceRefreshInterval time.Duration `env:"BALANCE_REFRESH_INTERVAL"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the log file of the terminal binaries. Empty means a "logs"
	// file next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources. args are the command-line arguments without the program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
