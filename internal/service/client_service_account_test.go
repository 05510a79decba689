package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-fare-card/internal/adapter"
	"github.com/MKhiriev/go-fare-card/internal/logger"
	"github.com/MKhiriev/go-fare-card/internal/mock"
	"github.com/MKhiriev/go-fare-card/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var accountNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.FixedZone("BRT", -3*3600))

// stubAuth is a ClientAuthService holding a fixed session.
type stubAuth struct {
	session *models.Session
}

func (s *stubAuth) Register(context.Context, models.RegisterRequest) (models.RegisterResponse, error) {
	return models.RegisterResponse{}, nil
}

func (s *stubAuth) Login(context.Context, models.Credentials) (models.Session, error) {
	return models.Session{}, nil
}

func (s *stubAuth) Logout() { s.session = nil }

func (s *stubAuth) Session() (models.Session, bool) {
	if s.session == nil {
		return models.Session{}, false
	}
	return *s.session, true
}

func newTestAccountService(ctrl *gomock.Controller, session *models.Session) (*clientAccountService, *mock.MockServerAdapter) {
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientAccountService(mockAdapter, &stubAuth{session: session}, logger.Nop()).(*clientAccountService)
	svc.now = func() time.Time { return accountNow }
	return svc, mockAdapter
}

func activeSession() *models.Session {
	return &models.Session{UserID: "u-1", Token: "tok", ExpiresAt: accountNow.Add(time.Hour)}
}

// ── session guard ────────────────────────────────────────────────────────────

func TestClientAccountService_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAccountService(ctrl, nil)
	ctx := context.Background()

	_, err := svc.BasicInfo(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	_, err = svc.Dashboard(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	_, err = svc.BalanceHistory(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	_, err = svc.FareHistory(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestClientAccountService_ExpiredSessionSkipsServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	expired := &models.Session{UserID: "u-1", ExpiresAt: accountNow.Add(-time.Second)}
	svc, _ := newTestAccountService(ctrl, expired)

	_, err := svc.BasicInfo(context.Background())

	assert.ErrorIs(t, err, ErrSessionExpired)
}

// ── reads ────────────────────────────────────────────────────────────────────

func TestClientAccountService_BasicInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAccountService(ctrl, activeSession())

	mockAdapter.EXPECT().BasicInfo(gomock.Any()).Return(models.UserInfo{Name: "Alice", Balance: 20}, nil)

	got, err := svc.BasicInfo(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 20.0, got.Balance)
}

func TestClientAccountService_BasicInfo_RejectedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAccountService(ctrl, activeSession())

	mockAdapter.EXPECT().BasicInfo(gomock.Any()).
		Return(models.UserInfo{}, fmt.Errorf("basic info: %w", fmt.Errorf("%w: %s", adapter.ErrUnauthorized, "Invalid or expired authorization header")))

	_, err := svc.BasicInfo(context.Background())

	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestClientAccountService_FareHistory_UsesSessionUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAccountService(ctrl, activeSession())

	mockAdapter.EXPECT().FareHistory(gomock.Any(), "u-1").
		Return([]models.FareEntry{{ID: "f-1", BusName: "Linha 100", Fare: 3.5}}, nil)

	got, err := svc.FareHistory(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestClientAccountService_BalanceHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAccountService(ctrl, activeSession())

	mockAdapter.EXPECT().BalanceHistory(gomock.Any()).
		Return([]models.BalanceEntry{{ID: "b-1", Method: models.PaymentCreditCard, Value: 50}}, nil)

	got, err := svc.BalanceHistory(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.PaymentCreditCard, got[0].Method)
}

// ── Dashboard ────────────────────────────────────────────────────────────────

func TestClientAccountService_Dashboard_FromAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAccountService(ctrl, activeSession())

	want := models.Dashboard{Balance: 20, TripsMonth: 12, SpentMonth: 42}
	mockAdapter.EXPECT().Dashboard(gomock.Any()).Return(want, nil)

	got, err := svc.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientAccountService_Dashboard_Derived(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAccountService(ctrl, activeSession())

	gomock.InOrder(
		mockAdapter.EXPECT().Dashboard(gomock.Any()).
			Return(models.Dashboard{}, fmt.Errorf("dashboard: %w", fmt.Errorf("%w: %s", adapter.ErrNotFound, "404 page not found"))),
		mockAdapter.EXPECT().BasicInfo(gomock.Any()).Return(models.UserInfo{Balance: 16.5}, nil),
		mockAdapter.EXPECT().FareHistory(gomock.Any(), "u-1").Return([]models.FareEntry{
			{ID: "f-3", Date: "2026-03-14T08:00:00-0300", Fare: 3.5},
			{ID: "f-2", Date: "2026-03-01T00:30:00-0300", Fare: 4},
			// 2026-03-01T01:00Z is still February in BRT
			{ID: "f-1", Date: "2026-03-01T01:00:00+0000", Fare: 5},
			{ID: "f-0", Date: "garbage", Fare: 100},
		}, nil),
	)

	got, err := svc.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.Dashboard{Balance: 16.5, TripsMonth: 2, SpentMonth: 7.5}, got)
}

func TestClientAccountService_Dashboard_DerivedWithoutTrips(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAccountService(ctrl, activeSession())

	mockAdapter.EXPECT().Dashboard(gomock.Any()).
		Return(models.Dashboard{}, fmt.Errorf("%w: %s", adapter.ErrNotFound, "404 page not found"))
	mockAdapter.EXPECT().BasicInfo(gomock.Any()).Return(models.UserInfo{Balance: 5}, nil)
	mockAdapter.EXPECT().FareHistory(gomock.Any(), "u-1").
		Return(nil, fmt.Errorf("%w: %s", adapter.ErrNotFound, "No data found with ID: u-1"))

	got, err := svc.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.Dashboard{Balance: 5}, got)
}

func TestClientAccountService_Dashboard_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAccountService(ctrl, activeSession())

	mockAdapter.EXPECT().Dashboard(gomock.Any()).
		Return(models.Dashboard{}, fmt.Errorf("%w: %s", adapter.ErrInternalServerError, "boom"))

	_, err := svc.Dashboard(context.Background())

	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
}
