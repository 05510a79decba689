package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-fare-card/internal/client"
	"github.com/MKhiriev/go-fare-card/internal/config"
	"github.com/MKhiriev/go-fare-card/internal/feed"
	"github.com/MKhiriev/go-fare-card/internal/logger"
	"github.com/MKhiriev/go-fare-card/internal/service"
	"github.com/MKhiriev/go-fare-card/internal/tui"
)

func main() {
	cfg, err := config.GetViewerConfig(os.Args[1:])
	if err != nil {
		logger.NewClientLogger("kiosk-viewer", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("kiosk-viewer", cfg.Log.File)
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	feedClient, err := feed.NewWebSocketClient(cfg.Adapter.WSAddress, cfg.Adapter.RequestTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating feed client")
	}

	viewer := service.NewViewerService(feedClient, cfg.Viewer.ResetTimeout, log)

	kiosk, err := client.NewKiosk(viewer, cfg.Viewer.BusID, tui.RunKiosk, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init kiosk error")
	}

	if err = kiosk.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("kiosk run error")
	}
}
