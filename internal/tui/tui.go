package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-fare-card/internal/logger"
	"github.com/MKhiriev/go-fare-card/internal/service"
	"github.com/MKhiriev/go-fare-card/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the rider terminal client.
type TUI struct {
	services        *service.ClientServices
	refreshInterval time.Duration
	buildInfo       models.AppBuildInfo
	logger          *logger.Logger
}

func New(services *service.ClientServices, refreshInterval time.Duration, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{
		services:        services,
		refreshInterval: refreshInterval,
		buildInfo:       buildInfo,
		logger:          log,
	}
}

// Run shows the rider client until the user quits or ctx ends. The session
// and the refresh job never outlive it.
func (t *TUI) Run(ctx context.Context) error {
	defer func() {
		t.services.RefreshJob.Stop()
		t.services.AuthService.Logout()
	}()

	model := newAppModel(ctx, t.services, t.refreshInterval, t.buildInfo, t.logger)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return programError(ctx, err)
}

// RunKiosk shows session on the terminal until the user quits, ctx ends or
// the session closes. The session is closed on return.
func RunKiosk(ctx context.Context, session service.ViewerSession, log *logger.Logger) error {
	defer session.Close()

	model := newKioskModel(session, log)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return programError(ctx, err)
}

// programError hides the kill error of a program stopped by ctx.
func programError(ctx context.Context, err error) error {
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
