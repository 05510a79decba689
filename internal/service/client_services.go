package service

import (
	"github.com/MKhiriev/go-fare-card/internal/adapter"
	"github.com/MKhiriev/go-fare-card/internal/logger"
	"github.com/MKhiriev/go-fare-card/internal/validators"
)

type ClientServices struct {
	AuthService    ClientAuthService
	AccountService ClientAccountService
	RefreshJob     BalanceRefreshJob
}

func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	authSvc := NewClientAuthService(serverAdapter, validators.NewRiderValidator(), logger)
	accountSvc := NewClientAccountService(serverAdapter, authSvc, logger)

	return &ClientServices{
		AuthService:    authSvc,
		AccountService: accountSvc,
		RefreshJob:     NewBalanceRefreshJob(accountSvc, logger),
	}
}
