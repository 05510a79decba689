package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-fare-card/internal/logger"
	"github.com/MKhiriev/go-fare-card/internal/service"
)

var errNoKioskRunner = errors.New("no kiosk runner")

// Kiosk is the terminal kiosk: one viewer session for one bus.
type Kiosk struct {
	viewer service.ViewerService
	busID  string
	run    KioskRunner
	logger *logger.Logger
}

func NewKiosk(viewer service.ViewerService, busID string, run KioskRunner, logger *logger.Logger) (*Kiosk, error) {
	if run == nil {
		return nil, errNoKioskRunner
	}
	return &Kiosk{
		viewer: viewer,
		busID:  busID,
		run:    run,
		logger: logger.WithField("bus_id", busID),
	}, nil
}

// Run opens the session and shows it until the user quits or the process
// is signalled.
func (k *Kiosk) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	session, err := k.viewer.Open(ctx, k.busID)
	if err != nil {
		return fmt.Errorf("open viewer session: %w", err)
	}

	k.logger.Info().Msg("kiosk started")
	if err = k.run(ctx, session, k.logger); err != nil {
		return fmt.Errorf("run kiosk: %w", err)
	}
	k.logger.Info().Msg("kiosk stopped")

	return nil
}
