package service

import (
	"fmt"

	"github.com/MKhiriev/go-fare-card/internal/config"
	"github.com/MKhiriev/go-fare-card/internal/feed"
	"github.com/MKhiriev/go-fare-card/internal/logger"
)

// Services is the kiosk web server's service set.
type Services struct {
	ViewerService  ViewerService
	AppInfoService AppInfoService
}

func NewServices(feedClient feed.Client, cfg config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &Services{
		ViewerService:  NewViewerService(feedClient, cfg.Viewer.ResetTimeout, logger),
		AppInfoService: appInfo,
	}, nil
}
