// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"

	"github.com/MKhiriev/go-fare-card/internal/utils"
	"github.com/rs/zerolog"
)

// validate checks the settings every binary depends on.
func (cfg *StructuredConfig) validate() error {
	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			return ErrInvalidLogConfigs
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if !isURL(cfg.Adapter.HTTPAddress, "http", "https") || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.BalanceRefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ViewerConfig) validate() error {
	if !isURL(cfg.Adapter.WSAddress, "ws", "wss") || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if !utils.IsUUID(cfg.Viewer.BusID) {
		return ErrInvalidViewerConfigs
	}
	if cfg.Viewer.ResetTimeout <= 0 {
		return ErrInvalidViewerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if !isURL(cfg.Adapter.WSAddress, "ws", "wss") || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Viewer.ResetTimeout <= 0 {
		return ErrInvalidViewerConfigs
	}

	if cfg.Server.HTTPAddress == "" ||
		cfg.Server.RequestTimeout <= 0 ||
		cfg.Server.HeartbeatInterval <= 0 ||
		cfg.Server.SessionRate <= 0 ||
		cfg.Server.SessionBurst <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func isURL(raw string, schemes ...string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}

	for _, s := range schemes {
		if u.Scheme == s {
			return true
		}
	}
	return false
}
