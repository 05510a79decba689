// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package feed connects to the fare system's live scan feed over WebSocket.
package feed

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/MKhiriev/go-fare-card/internal/logger"
	"github.com/MKhiriev/go-fare-card/models"
	"github.com/gorilla/websocket"
)

const (
	busIDParam   = "id"
	maxFrameSize = 64 << 10
)

type wsClient struct {
	address *url.URL
	dialer  *websocket.Dialer
	logger  *logger.Logger
}

// NewWebSocketClient returns a Client dialing address, a ws:// or wss:// URL
// such as ws://localhost:8080/v1/ws. handshakeTimeout bounds the opening
// handshake.
func NewWebSocketClient(address string, handshakeTimeout time.Duration, log *logger.Logger) (Client, error) {
	u, err := url.Parse(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if (u.Scheme != "ws" && u.Scheme != "wss") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	if log == nil {
		log = logger.Nop()
	}

	return &wsClient{
		address: u,
		dialer: &websocket.Dialer{
			HandshakeTimeout: handshakeTimeout,
		},
		logger: log,
	}, nil
}

// Open starts the reader goroutine. The connection lives until Close is
// called, ctx is cancelled or the server goes away.
func (c *wsClient) Open(ctx context.Context, busID string) Connection {
	ctx, cancel := context.WithCancel(ctx)

	conn := &wsConnection{
		events: make(chan models.FeedEvent),
		done:   make(chan struct{}),
		cancel: cancel,
		logger: c.logger.WithField("bus_id", busID),
	}

	conn.wg.Add(1)
	go conn.run(ctx, c.dialer, c.endpoint(busID), busID)

	return conn
}

// endpoint returns the feed URL with the bus id query parameter set.
func (c *wsClient) endpoint(busID string) string {
	u := *c.address
	q := u.Query()
	q.Set(busIDParam, busID)
	u.RawQuery = q.Encode()
	return u.String()
}

type wsConnection struct {
	events chan models.FeedEvent
	done   chan struct{}
	cancel context.CancelFunc
	logger *logger.Logger

	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	ws     *websocket.Conn
	closed bool
}

func (c *wsConnection) Events() <-chan models.FeedEvent {
	return c.events
}

func (c *wsConnection) Close() {
	c.once.Do(func() {
		c.mu.Lock()
		c.closed = true
		ws := c.ws
		c.mu.Unlock()

		close(c.done)
		c.cancel()
		if ws != nil {
			_ = ws.Close()
		}
	})
	c.wg.Wait()
}

func (c *wsConnection) run(ctx context.Context, dialer *websocket.Dialer, endpoint, busID string) {
	defer c.wg.Done()
	defer close(c.events)

	if busID == "" {
		c.emit(models.FeedEvent{Kind: models.FeedDisconnected, Err: ErrEmptyBusID})
		return
	}

	ws, _, err := dialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		c.logger.Err(err).Msg("scan feed dial failed")
		c.emit(models.FeedEvent{Kind: models.FeedDisconnected, Err: c.closeReason(err)})
		return
	}
	ws.SetReadLimit(maxFrameSize)

	if !c.attach(ws) {
		_ = ws.Close()
		return
	}
	defer ws.Close()

	// a cancelled parent context must also unblock ReadMessage
	stop := context.AfterFunc(ctx, func() { _ = ws.Close() })
	defer stop()

	if !c.emit(models.FeedEvent{Kind: models.FeedConnected}) {
		return
	}

	for {
		msgType, data, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) && !c.isClosed() {
				c.logger.Err(err).Msg("scan feed read failed")
			}
			c.emit(models.FeedEvent{Kind: models.FeedDisconnected, Err: c.closeReason(err)})
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}
		if !c.emit(models.FeedEvent{Kind: models.FeedMessage, Data: data}) {
			return
		}
	}
}

// attach publishes ws so Close can interrupt reads. It reports false when
// Close already ran.
func (c *wsConnection) attach(ws *websocket.Conn) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	c.ws = ws
	return true
}

func (c *wsConnection) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// closeReason hides errors caused by a local Close and by a clean close
// frame from the server.
func (c *wsConnection) closeReason(err error) error {
	if c.isClosed() || websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// emit delivers ev unless the connection was closed.
func (c *wsConnection) emit(ev models.FeedEvent) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.events <- ev:
		return true
	case <-c.done:
		return false
	}
}
