package service

import (
	"context"

	"github.com/MKhiriev/go-fare-card/models"
)

//go:generate mockgen -source=interfaces.go -destination=servicemock/service_mock.go -package=servicemock

// ViewerService opens kiosk display sessions. Opening a session is the
// equivalent of mounting the kiosk page for one bus.
type ViewerService interface {
	// Open validates busID, subscribes to its scan feed and starts the
	// display actor. The session lives until Close is called or ctx ends.
	Open(ctx context.Context, busID string) (ViewerSession, error)
}

// ViewerSession is one live kiosk display.
type ViewerSession interface {
	BusID() string

	// Updates delivers display states, newest first wins: a slow reader
	// only ever sees the latest state. The channel is closed by Close.
	Updates() <-chan models.DisplayState

	// State returns the current display state.
	State() models.DisplayState

	// Close cancels the reset timer, closes the feed connection and waits
	// for both goroutines. No update is published after Close returns.
	Close()
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
