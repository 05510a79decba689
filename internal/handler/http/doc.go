// Package http implements the kiosk web front-end.
//
// It serves the viewer page for one bus as HTML and streams its display
// state over server-sent events. Request tracing, access logging, response
// compression and the per-client session limit are handled here before
// requests reach the viewer service.
package http
