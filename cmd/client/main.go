package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-fare-card/internal/adapter"
	"github.com/MKhiriev/go-fare-card/internal/client"
	"github.com/MKhiriev/go-fare-card/internal/config"
	"github.com/MKhiriev/go-fare-card/internal/logger"
	"github.com/MKhiriev/go-fare-card/internal/service"
	"github.com/MKhiriev/go-fare-card/internal/tui"
	"github.com/MKhiriev/go-fare-card/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		logger.NewClientLogger("rider-client", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("rider-client", cfg.Log.File)
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(serverAdapter, log)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui := tui.New(services, cfg.Workers.BalanceRefreshInterval, buildInfo, log)

	app, err := client.NewApp(ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
