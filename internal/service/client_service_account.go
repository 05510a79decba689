package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-fare-card/internal/adapter"
	"github.com/MKhiriev/go-fare-card/internal/logger"
	"github.com/MKhiriev/go-fare-card/models"
)

type clientAccountService struct {
	adapter adapter.ServerAdapter
	auth    ClientAuthService
	now     func() time.Time

	logger *logger.Logger
}

func NewClientAccountService(serverAdapter adapter.ServerAdapter, auth ClientAuthService, logger *logger.Logger) ClientAccountService {
	return &clientAccountService{adapter: serverAdapter, auth: auth, now: time.Now, logger: logger}
}

func (s *clientAccountService) BasicInfo(ctx context.Context) (models.UserInfo, error) {
	if _, err := s.activeSession(); err != nil {
		return models.UserInfo{}, err
	}

	info, err := s.adapter.BasicInfo(ctx)
	if err != nil {
		return models.UserInfo{}, mapAdapterError(err)
	}
	return info, nil
}

func (s *clientAccountService) Dashboard(ctx context.Context) (models.Dashboard, error) {
	if _, err := s.activeSession(); err != nil {
		return models.Dashboard{}, err
	}

	d, err := s.adapter.Dashboard(ctx)
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, adapter.ErrNotFound) {
		return models.Dashboard{}, mapAdapterError(err)
	}

	s.logger.Debug().Msg("dashboard endpoint unavailable, deriving summary")
	return s.deriveDashboard(ctx)
}

func (s *clientAccountService) BalanceHistory(ctx context.Context) ([]models.BalanceEntry, error) {
	if _, err := s.activeSession(); err != nil {
		return nil, err
	}

	entries, err := s.adapter.BalanceHistory(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return entries, nil
}

func (s *clientAccountService) FareHistory(ctx context.Context) ([]models.FareEntry, error) {
	session, err := s.activeSession()
	if err != nil {
		return nil, err
	}

	entries, err := s.adapter.FareHistory(ctx, session.UserID)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return entries, nil
}

// activeSession returns the session unless it is missing or past its exp
// claim.
func (s *clientAccountService) activeSession() (models.Session, error) {
	session, ok := s.auth.Session()
	if !ok {
		return models.Session{}, ErrNotLoggedIn
	}
	if session.Expired(s.now()) {
		return models.Session{}, ErrSessionExpired
	}
	return session, nil
}

// deriveDashboard builds the summary from the rider header and the trips of
// the current calendar month in local time.
func (s *clientAccountService) deriveDashboard(ctx context.Context) (models.Dashboard, error) {
	info, err := s.BasicInfo(ctx)
	if err != nil {
		return models.Dashboard{}, err
	}

	fares, err := s.FareHistory(ctx)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return models.Dashboard{}, err
	}

	d := models.Dashboard{Balance: info.Balance}
	now := s.now()
	for _, f := range fares {
		at, err := time.Parse(models.APITimeLayout, f.Date)
		if err != nil {
			continue
		}
		at = at.In(now.Location())
		if at.Year() == now.Year() && at.Month() == now.Month() {
			d.TripsMonth++
			d.SpentMonth += f.Fare
		}
	}

	return d, nil
}
