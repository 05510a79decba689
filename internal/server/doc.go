// Package server runs the kiosk web server.
//
// It owns the HTTP listener lifecycle: startup, signal handling and graceful
// shutdown of open viewer streams.
package server
