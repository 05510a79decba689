package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-fare-card/internal/logger"
	"github.com/MKhiriev/go-fare-card/models"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBusID = "0b7c5f8e-8f2a-4c57-9f43-2d1b7f0c6a11"

// feedServer upgrades every request, records the bus id and runs serve on
// the server side of the socket.
func feedServer(t *testing.T, serve func(conn *websocket.Conn)) (*httptest.Server, <-chan string) {
	t.Helper()

	upgrader := websocket.Upgrader{}
	ids := make(chan string, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case ids <- r.URL.Query().Get("id"):
		default:
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		serve(conn)
	}))
	t.Cleanup(srv.Close)

	return srv, ids
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/ws"
}

func newTestClient(t *testing.T, address string) Client {
	t.Helper()
	c, err := NewWebSocketClient(address, time.Second, logger.Nop())
	require.NoError(t, err)
	return c
}

func nextEvent(t *testing.T, events <-chan models.FeedEvent) models.FeedEvent {
	t.Helper()
	select {
	case ev, ok := <-events:
		require.True(t, ok, "events channel closed early")
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for feed event")
		return models.FeedEvent{}
	}
}

func waitClosed(t *testing.T, events <-chan models.FeedEvent) {
	t.Helper()
	select {
	case _, ok := <-events:
		require.False(t, ok, "expected closed channel")
	case <-time.After(2 * time.Second):
		t.Fatal("events channel was not closed")
	}
}

// ── NewWebSocketClient ───────────────────────────────────────────────────────

func TestNewWebSocketClient_InvalidAddress(t *testing.T) {
	tests := []string{"", "http://localhost:8080/v1/ws", "ws://", "::bad"}

	for _, addr := range tests {
		t.Run(addr, func(t *testing.T) {
			_, err := NewWebSocketClient(addr, time.Second, nil)
			assert.ErrorIs(t, err, ErrInvalidAddress)
		})
	}
}

func TestEndpoint_SetsBusID(t *testing.T) {
	c := newTestClient(t, "ws://localhost:8080/v1/ws").(*wsClient)

	assert.Equal(t, "ws://localhost:8080/v1/ws?id="+testBusID, c.endpoint(testBusID))
}

// ── Open ─────────────────────────────────────────────────────────────────────

func TestOpen_DeliversFramesInOrder(t *testing.T) {
	frames := []string{`{"type":"success"}`, `{"type":"error"}`, `garbage`}

	srv, ids := feedServer(t, func(conn *websocket.Conn) {
		for _, f := range frames {
			_ = conn.WriteMessage(websocket.TextMessage, []byte(f))
		}
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		time.Sleep(50 * time.Millisecond)
	})

	conn := newTestClient(t, wsURL(srv)).Open(context.Background(), testBusID)
	defer conn.Close()

	assert.Equal(t, models.FeedConnected, nextEvent(t, conn.Events()).Kind)
	for _, want := range frames {
		ev := nextEvent(t, conn.Events())
		assert.Equal(t, models.FeedMessage, ev.Kind)
		assert.Equal(t, want, string(ev.Data))
	}

	last := nextEvent(t, conn.Events())
	assert.Equal(t, models.FeedDisconnected, last.Kind)
	assert.NoError(t, last.Err)
	waitClosed(t, conn.Events())

	assert.Equal(t, testBusID, <-ids)
}

func TestOpen_SkipsBinaryFrames(t *testing.T) {
	srv, _ := feedServer(t, func(conn *websocket.Conn) {
		_ = conn.WriteMessage(websocket.BinaryMessage, []byte{0x01})
		_ = conn.WriteMessage(websocket.TextMessage, []byte("text"))
		time.Sleep(100 * time.Millisecond)
	})

	conn := newTestClient(t, wsURL(srv)).Open(context.Background(), testBusID)
	defer conn.Close()

	require.Equal(t, models.FeedConnected, nextEvent(t, conn.Events()).Kind)
	ev := nextEvent(t, conn.Events())
	assert.Equal(t, models.FeedMessage, ev.Kind)
	assert.Equal(t, "text", string(ev.Data))
}

func TestOpen_DialFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	conn := newTestClient(t, wsURL(srv)).Open(context.Background(), testBusID)
	defer conn.Close()

	ev := nextEvent(t, conn.Events())
	assert.Equal(t, models.FeedDisconnected, ev.Kind)
	assert.Error(t, ev.Err)
	waitClosed(t, conn.Events())
}

func TestOpen_EmptyBusID(t *testing.T) {
	conn := newTestClient(t, "ws://localhost:1/v1/ws").Open(context.Background(), "")
	defer conn.Close()

	ev := nextEvent(t, conn.Events())
	assert.Equal(t, models.FeedDisconnected, ev.Kind)
	assert.ErrorIs(t, ev.Err, ErrEmptyBusID)
}

func TestOpen_ServerDropIsReported(t *testing.T) {
	srv, _ := feedServer(t, func(conn *websocket.Conn) {
		_ = conn.UnderlyingConn().Close()
	})

	conn := newTestClient(t, wsURL(srv)).Open(context.Background(), testBusID)
	defer conn.Close()

	require.Equal(t, models.FeedConnected, nextEvent(t, conn.Events()).Kind)
	ev := nextEvent(t, conn.Events())
	assert.Equal(t, models.FeedDisconnected, ev.Kind)
	assert.Error(t, ev.Err)
}

// ── Close ────────────────────────────────────────────────────────────────────

func TestClose_StopsDeliveryAndIsIdempotent(t *testing.T) {
	release := make(chan struct{})
	srv, _ := feedServer(t, func(conn *websocket.Conn) {
		for {
			select {
			case <-release:
				return
			default:
			}
			if err := conn.WriteMessage(websocket.TextMessage, []byte("tick")); err != nil {
				return
			}
			time.Sleep(5 * time.Millisecond)
		}
	})
	defer close(release)

	conn := newTestClient(t, wsURL(srv)).Open(context.Background(), testBusID)
	require.Equal(t, models.FeedConnected, nextEvent(t, conn.Events()).Kind)

	conn.Close()
	conn.Close()

	// after Close the channel is closed with nothing left in it
	_, ok := <-conn.Events()
	assert.False(t, ok)
}

func TestClose_BeforeHandshakeNoEvents(t *testing.T) {
	conn := newTestClient(t, "ws://10.255.255.1:9/v1/ws").Open(context.Background(), testBusID)

	done := make(chan struct{})
	go func() {
		conn.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not return while dialing")
	}

	_, ok := <-conn.Events()
	assert.False(t, ok)
}

func TestOpen_ParentContextCancel(t *testing.T) {
	srv, _ := feedServer(t, func(conn *websocket.Conn) {
		time.Sleep(time.Second)
	})

	ctx, cancel := context.WithCancel(context.Background())
	conn := newTestClient(t, wsURL(srv)).Open(ctx, testBusID)
	defer conn.Close()

	require.Equal(t, models.FeedConnected, nextEvent(t, conn.Events()).Kind)
	cancel()

	ev := nextEvent(t, conn.Events())
	assert.Equal(t, models.FeedDisconnected, ev.Kind)
	waitClosed(t, conn.Events())
}
