package models

// FeedEventKind tags the entries delivered by a live scan feed connection.
type FeedEventKind int

const (
	// FeedConnected is emitted once the socket handshake succeeded.
	FeedConnected FeedEventKind = iota
	// FeedMessage carries one raw text frame.
	FeedMessage
	// FeedDisconnected is the last event of a connection. Err is nil when
	// the connection was closed locally.
	FeedDisconnected
)

func (k FeedEventKind) String() string {
	switch k {
	case FeedConnected:
		return "connected"
	case FeedMessage:
		return "message"
	default:
		return "disconnected"
	}
}

// FeedEvent is one entry of a connection's ordered event stream.
type FeedEvent struct {
	Kind FeedEventKind
	Data []byte
	Err  error
}
