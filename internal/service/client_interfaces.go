package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-fare-card/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the rider-side contract for registration and
// authentication against the fare API.
type ClientAuthService interface {
	// Register validates the form locally and creates the account. Masked
	// CPF and postal code input is reduced to digits first. The rider is not
	// logged in afterwards.
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)

	// Login exchanges credentials for a session. The bearer token is kept
	// in the adapter and its id_user/exp claims are decoded without
	// verification.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// Logout forgets the session and the bearer token.
	Logout()

	// Session returns the current session, if any.
	Session() (models.Session, bool)
}

// ClientAccountService reads the logged-in rider's data. Every method
// returns ErrNotLoggedIn without a session and ErrSessionExpired once the
// token expired locally or the API rejected it.
type ClientAccountService interface {
	BasicInfo(ctx context.Context) (models.UserInfo, error)

	// Dashboard returns the home screen summary. When the API does not
	// serve one, it is derived from BasicInfo and FareHistory.
	Dashboard(ctx context.Context) (models.Dashboard, error)

	BalanceHistory(ctx context.Context) ([]models.BalanceEntry, error)
	FareHistory(ctx context.Context) ([]models.FareEntry, error)
}

// BalanceRefreshJob keeps the dashboard balance current while it is shown.
type BalanceRefreshJob interface {
	// Start launches the background goroutine. It refreshes every interval,
	// defaulting to 30 seconds if interval is zero or negative, and reports
	// each result through onUpdate. Any previously running job is stopped
	// first.
	Start(ctx context.Context, interval time.Duration, onUpdate func(models.UserInfo, error))

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
