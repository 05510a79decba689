package feed

import (
	"context"

	"github.com/MKhiriev/go-fare-card/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/feed_mock.go -package=mock

// Client opens live scan feed connections for a bus.
type Client interface {
	// Open starts a connection and returns without waiting for the
	// handshake. Dial failures arrive as a FeedDisconnected event.
	Open(ctx context.Context, busID string) Connection
}

// Connection is one live scan feed subscription.
type Connection interface {
	// Events delivers FeedConnected, one FeedMessage per text frame and a
	// final FeedDisconnected, in that order. The channel is closed when the
	// connection ends.
	Events() <-chan models.FeedEvent
	// Close tears the connection down and waits for the reader to exit.
	// It is safe to call more than once. No event is delivered after Close
	// returns.
	Close()
}
