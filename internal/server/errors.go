// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated is returned when there is no HTTP handler or no
// listen address to serve it on.
var errNoServersAreCreated = errors.New("no servers are created")
