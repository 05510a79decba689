// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client runs the terminal binaries: the rider client and the
// terminal kiosk.
//
// It ties process signals to the lifetime of the terminal UI.
package client
