package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-fare-card/internal/adapter"
	"github.com/MKhiriev/go-fare-card/internal/logger"
	"github.com/MKhiriev/go-fare-card/internal/utils"
	"github.com/MKhiriev/go-fare-card/internal/validators"
	"github.com/MKhiriev/go-fare-card/models"
)

type clientAuthService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator

	mu      sync.RWMutex
	session *models.Session

	logger *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, validator validators.Validator, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, validator: validator, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	req.CPF = validators.OnlyDigits(req.CPF)
	req.Address.PostalCode = validators.OnlyDigits(req.Address.PostalCode)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.RegisterResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := a.adapter.Register(ctx, req)
	if err != nil {
		return models.RegisterResponse{}, mapAdapterError(err)
	}

	a.logger.Info().Str("user_id", created.ID).Msg("rider registered")
	return created, nil
}

func (a *clientAuthService) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	resp, err := a.adapter.Login(ctx, creds)
	if err != nil {
		return models.Session{}, mapAdapterError(err)
	}

	session := models.Session{
		UserID:  resp.ID,
		Name:    resp.Name,
		Surname: resp.Surname,
		Token:   resp.Token,
	}

	claims, err := utils.ParseSessionClaims(resp.Token)
	if err != nil {
		// the API stays the authority; a token we cannot read only loses
		// the local expiry check
		a.logger.Warn().Err(err).Msg("cannot decode session claims")
	} else {
		if session.UserID == "" {
			session.UserID = claims.UserID
		}
		session.ExpiresAt = claims.ExpiresAt
	}

	a.mu.Lock()
	a.session = &session
	a.mu.Unlock()

	a.logger.Info().Str("user_id", session.UserID).Msg("rider logged in")
	return session, nil
}

func (a *clientAuthService) Logout() {
	a.mu.Lock()
	a.session = nil
	a.mu.Unlock()

	a.adapter.SetToken("")
}

func (a *clientAuthService) Session() (models.Session, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.session == nil {
		return models.Session{}, false
	}
	return *a.session, true
}
