// Package config provides configuration loading, merging, and validation
// facilities for the fare-card binaries.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win over later ones for non-zero fields):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file (-c / -config / CONFIG)
//  4. Built-in defaults
//
// The main entry points are [GetClientConfig] for the rider TUI,
// [GetViewerConfig] for the kiosk TUI and [GetServerConfig] for the kiosk web
// server.
package config
