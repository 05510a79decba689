package config

import (
	"fmt"
	"time"
)

// ViewerSettings contains the kiosk display settings shared by the terminal
// kiosk and the web kiosk.
type ViewerSettings struct {
	// BusID is the bus shown by the terminal kiosk. The web kiosk takes the
	// bus id from the request path instead.
	BusID string
	// ResetTimeout is how long a result stays on screen.
	ResetTimeout time.Duration
}

// ViewerConfig is the terminal kiosk configuration.
type ViewerConfig struct {
	Adapter ClientAdapter
	Viewer  ViewerSettings
	Log     Log
}

// GetViewerConfig builds and validates the terminal kiosk config view.
func GetViewerConfig(args []string) (*ViewerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	viewerCfg := &ViewerConfig{
		Adapter: clientAdapter(cfg.Adapter),
		Viewer: ViewerSettings{
			BusID:        cfg.Viewer.BusID,
			ResetTimeout: cfg.Viewer.ResetTimeout,
		},
		Log: cfg.Log,
	}

	return viewerCfg, viewerCfg.validate()
}
