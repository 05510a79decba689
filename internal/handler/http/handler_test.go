package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-fare-card/internal/config"
	"github.com/MKhiriev/go-fare-card/internal/logger"
	"github.com/MKhiriev/go-fare-card/internal/service"
	"github.com/MKhiriev/go-fare-card/internal/service/servicemock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testBusID = "0b7e3c1a-7d2f-4c55-9c0e-2f4a8e6d1b90"

type testServices struct {
	viewer  *servicemock.MockViewerService
	appInfo *servicemock.MockAppInfoService
}

func newTestHandler(t *testing.T, cfg config.Server) (*Handler, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svcs := testServices{
		viewer:  servicemock.NewMockViewerService(ctrl),
		appInfo: servicemock.NewMockAppInfoService(ctrl),
	}
	h := NewHandler(&service.Services{
		ViewerService:  svcs.viewer,
		AppInfoService: svcs.appInfo,
	}, cfg, logger.Nop())
	return h, svcs
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_Defaults(t *testing.T) {
	h := NewHandler(&service.Services{}, config.Server{}, logger.Nop())

	require.NotNil(t, h)
	assert.Equal(t, defaultHeartbeatInterval, h.heartbeat)
	assert.Equal(t, 5, h.limiter.burst)
	assert.NotNil(t, h.traceIDs)
}

func TestNewHandler_UsesConfig(t *testing.T) {
	cfg := config.Server{HeartbeatInterval: time.Second, SessionRate: 3, SessionBurst: 7, RequestTimeout: 2 * time.Second}

	h := NewHandler(&service.Services{}, cfg, logger.Nop())

	assert.Equal(t, time.Second, h.heartbeat)
	assert.Equal(t, 7, h.limiter.burst)
	assert.Equal(t, 2*time.Second, h.requestTimeout)
}

// ─────────────────────────────────────────────
// Init: routing
// ─────────────────────────────────────────────

func TestInit_UnknownRoutes(t *testing.T) {
	h, _ := newTestHandler(t, config.Server{})
	router := h.Init()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/"},
		{http.MethodGet, "/viewer"},
		{http.MethodPost, "/version"},
		{http.MethodDelete, "/viewer/" + testBusID},
		{http.MethodGet, "/api/version"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestInit_InvalidBusID(t *testing.T) {
	h, _ := newTestHandler(t, config.Server{})
	router := h.Init()

	for _, path := range []string{"/viewer/bus-1", "/viewer/123/events", "/viewer/" + testBusID + "x"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
		assert.JSONEq(t, `{"error":"bus id must be a UUID"}`, rec.Body.String(), path)
	}
}

func TestInit_TraceIDOnEveryResponse(t *testing.T) {
	h, svcs := newTestHandler(t, config.Server{})
	svcs.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}
