package config

import (
	"fmt"
)

// ServerConfig is the kiosk web server configuration.
type ServerConfig struct {
	App     App
	Adapter ClientAdapter
	Viewer  ViewerSettings
	Server  Server
	Log     Log
}

// GetServerConfig builds and validates the kiosk web server config view.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App:     cfg.App,
		Adapter: clientAdapter(cfg.Adapter),
		Viewer: ViewerSettings{
			ResetTimeout: cfg.Viewer.ResetTimeout,
		},
		Server: cfg.Server,
		Log:    cfg.Log,
	}

	return serverCfg, serverCfg.validate()
}
