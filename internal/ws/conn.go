package ws

import (
	"context"
	"net/http"
	"sync"
	"time"

	"log/slog"

	"nhooyr.io/websocket"
)

// Endpoint is one participant's duplex message channel. Sends are
// serialized by a per-endpoint mutex so a room broadcast and any other
// writer never interleave frames on the same connection.
type Endpoint struct {
	mu  sync.Mutex
	ws  *websocket.Conn
	log *slog.Logger

	sendTimeout time.Duration
}

// Accept upgrades HTTP to websocket (allow all origins)
func Accept(w http.ResponseWriter, r *http.Request) (*websocket.Conn, error) {
	return websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns:  []string{"*"},
		CompressionMode: websocket.CompressionDisabled,
	})
}

// NewEndpoint wraps a WS connection with a bounded per-send timeout
func NewEndpoint(ws *websocket.Conn, log *slog.Logger, sendTimeout time.Duration) *Endpoint {
	if sendTimeout <= 0 {
		sendTimeout = 5 * time.Second
	}
	return &Endpoint{ws: ws, log: log, sendTimeout: sendTimeout}
}

// Send writes one text frame. A slow peer cannot block the caller past
// the send timeout; a timeout is reported like any other send failure.
func (e *Endpoint) Send(ctx context.Context, payload string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, e.sendTimeout)
	defer cancel()
	return e.ws.Write(ctx, websocket.MessageText, []byte(payload))
}

// Read blocks until the next text payload. Binary frames are skipped
// (ping/pong and close are answered by the library and never surface).
// Returns false once the transport reports closure or an error.
func (e *Endpoint) Read(ctx context.Context) (string, bool) {
	for {
		typ, data, err := e.ws.Read(ctx)
		if err != nil {
			return "", false
		}
		if typ == websocket.MessageText {
			return string(data), true
		}
		e.log.Debug("endpoint.read.skip", "type", typ, "bytes", len(data))
	}
}

// Ping checks peer liveness; used by the session keepalive ticker.
func (e *Endpoint) Ping(ctx context.Context) error { return e.ws.Ping(ctx) }

// Close closes the WS connection normally
func (e *Endpoint) Close() error { return e.ws.Close(websocket.StatusNormalClosure, "bye") }

// CloseWith closes with an explicit status, e.g. after an unknown-room join.
func (e *Endpoint) CloseWith(code websocket.StatusCode, reason string) error {
	return e.ws.Close(code, reason)
}
