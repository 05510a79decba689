// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-fare-card/internal/config"
	"github.com/MKhiriev/go-fare-card/internal/render"
	"github.com/MKhiriev/go-fare-card/internal/service"
	"github.com/MKhiriev/go-fare-card/internal/service/servicemock"
	"github.com/MKhiriev/go-fare-card/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// sseEvent is one parsed server-sent event.
type sseEvent struct {
	name string
	data string
}

// readEvent reads lines until a blank line ends an event. Comment lines are
// returned as events named ":".
func readEvent(t *testing.T, r *bufio.Reader) sseEvent {
	t.Helper()
	var ev sseEvent
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")

		switch {
		case line == "":
			return ev
		case strings.HasPrefix(line, ":"):
			ev.name = ":"
			ev.data = strings.TrimSpace(strings.TrimPrefix(line, ":"))
		case strings.HasPrefix(line, "event: "):
			ev.name = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			ev.data = strings.TrimPrefix(line, "data: ")
		}
	}
}

func decodeState(t *testing.T, ev sseEvent) stateEventData {
	t.Helper()
	require.Equal(t, stateEvent, ev.name)
	var data stateEventData
	require.NoError(t, json.Unmarshal([]byte(ev.data), &data))
	return data
}

// ─────────────────────────────────────────────
// GET /viewer/{id}
// ─────────────────────────────────────────────

func TestViewerPage(t *testing.T) {
	h, _ := newTestHandler(t, config.Server{})

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/viewer/"+testBusID, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, render.IdleTitle)
	assert.Contains(t, body, "new EventSource(")
	assert.Contains(t, body, testBusID)
	assert.Contains(t, body, "/events")
}

// ─────────────────────────────────────────────
// GET /viewer/{id}/events
// ─────────────────────────────────────────────

func TestViewerEvents_StreamHeaders(t *testing.T) {
	h, svcs := newTestHandler(t, config.Server{HeartbeatInterval: time.Hour})
	session := servicemock.NewMockViewerSession(gomock.NewController(t))
	updates := make(chan models.DisplayState)
	close(updates)

	svcs.viewer.EXPECT().Open(gomock.Any(), testBusID).Return(session, nil)
	session.EXPECT().State().Return(models.IdleState())
	session.EXPECT().Updates().Return(updates).AnyTimes()
	session.EXPECT().Close()

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/viewer/"+testBusID+"/events", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "no", rec.Header().Get("X-Accel-Buffering"))
	assert.Empty(t, rec.Header().Get("Connection"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "event: state\n"))
}

func TestViewerEvents_StreamsStates(t *testing.T) {
	h, svcs := newTestHandler(t, config.Server{HeartbeatInterval: time.Hour})
	session := servicemock.NewMockViewerSession(gomock.NewController(t))
	updates := make(chan models.DisplayState, 1)
	closed := make(chan struct{})

	svcs.viewer.EXPECT().Open(gomock.Any(), testBusID).Return(session, nil)
	session.EXPECT().State().Return(models.IdleState())
	session.EXPECT().Updates().Return(updates).AnyTimes()
	session.EXPECT().Close().Do(func() { close(closed) })

	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/viewer/"+testBusID+"/events", nil)
	require.NoError(t, err)
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
	assert.Empty(t, resp.Header.Get("Content-Encoding"))

	reader := bufio.NewReader(resp.Body)

	initial := decodeState(t, readEvent(t, reader))
	assert.Equal(t, "idle", initial.Mode)
	assert.Contains(t, initial.HTML, render.IdleTitle)

	updates <- models.DisplayState{
		Mode: models.DisplayShowingSuccess,
		Outcome: models.ScanSuccess{
			CardID: "c-1", HolderName: "Ana", HolderSurname: "Souza",
			Fare: 3.5, BalanceBefore: 20, BalanceAfter: 16.5,
		},
	}
	shown := decodeState(t, readEvent(t, reader))
	assert.Equal(t, "success", shown.Mode)
	assert.Contains(t, shown.HTML, "Ana")
	assert.Contains(t, shown.HTML, "Souza")
	assert.Contains(t, shown.HTML, "R$ 16,50")

	cancel()
	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatal("session not closed after client disconnect")
	}
}

func TestViewerEvents_Heartbeat(t *testing.T) {
	h, svcs := newTestHandler(t, config.Server{HeartbeatInterval: 20 * time.Millisecond})
	session := servicemock.NewMockViewerSession(gomock.NewController(t))

	svcs.viewer.EXPECT().Open(gomock.Any(), testBusID).Return(session, nil)
	session.EXPECT().State().Return(models.IdleState())
	session.EXPECT().Updates().Return(make(chan models.DisplayState)).AnyTimes()
	session.EXPECT().Close().AnyTimes()

	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/viewer/" + testBusID + "/events")
	require.NoError(t, err)
	defer resp.Body.Close()

	reader := bufio.NewReader(resp.Body)
	_ = readEvent(t, reader)

	ping := readEvent(t, reader)
	assert.Equal(t, ":", ping.name)
	assert.Equal(t, "ping", ping.data)
}

func TestViewerEvents_SessionClosedEndsStream(t *testing.T) {
	h, svcs := newTestHandler(t, config.Server{HeartbeatInterval: time.Hour})
	session := servicemock.NewMockViewerSession(gomock.NewController(t))
	updates := make(chan models.DisplayState)
	close(updates)

	svcs.viewer.EXPECT().Open(gomock.Any(), testBusID).Return(session, nil)
	session.EXPECT().State().Return(models.IdleState())
	session.EXPECT().Updates().Return(updates).AnyTimes()
	session.EXPECT().Close()

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/viewer/"+testBusID+"/events", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, strings.Count(rec.Body.String(), "event: state"))
}

func TestViewerEvents_OpenFails(t *testing.T) {
	h, svcs := newTestHandler(t, config.Server{})
	svcs.viewer.EXPECT().Open(gomock.Any(), testBusID).Return(nil, errors.New("boom"))

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/viewer/"+testBusID+"/events", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
}

func TestViewerEvents_InvalidBusIDFromService(t *testing.T) {
	h, svcs := newTestHandler(t, config.Server{})
	svcs.viewer.EXPECT().Open(gomock.Any(), testBusID).Return(nil, service.ErrInvalidBusID)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/viewer/"+testBusID+"/events", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestViewerEvents_RateLimited(t *testing.T) {
	h, svcs := newTestHandler(t, config.Server{SessionRate: 0.001, SessionBurst: 1})
	svcs.viewer.EXPECT().Open(gomock.Any(), testBusID).Return(nil, service.ErrInvalidBusID)

	router := h.Init()
	codes := make([]int, 0, 2)
	for range 2 {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/viewer/"+testBusID+"/events", nil))
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusBadRequest, http.StatusTooManyRequests}, codes)
}

// ─────────────────────────────────────────────
// writeState
// ─────────────────────────────────────────────

func TestWriteState_Format(t *testing.T) {
	var b strings.Builder

	err := writeState(&b, models.DisplayState{
		Mode:    models.DisplayShowingError,
		Outcome: models.ScanFailure{Kind: models.ErrorKindUserNotFound, Message: "x"},
	})

	require.NoError(t, err)
	out := b.String()
	assert.True(t, strings.HasPrefix(out, "event: state\ndata: {"))
	assert.True(t, strings.HasSuffix(out, "}\n\n"))
	assert.Equal(t, 3, strings.Count(out, "\n"))
}
