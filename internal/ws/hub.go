package ws

import (
	"context"
	"net/http"
	"time"

	"log/slog"

	"nhooyr.io/websocket"
)

// Hub runs the per-connection session loops against a shared registry.
// When a redis bus is configured it also applies updates published by
// sibling instances; with a nil bus the relay is single-process.
type Hub struct {
	log      *slog.Logger
	registry *Registry
	bus      *RedisBus

	sendTimeout time.Duration
}

// NewHub wires the hub to its registry and optional bus.
func NewHub(log *slog.Logger, registry *Registry, bus *RedisBus, sendTimeout time.Duration) *Hub {
	return &Hub{log: log, registry: registry, bus: bus, sendTimeout: sendTimeout}
}

// Run forwards bus updates into local rooms until ctx is cancelled.
// A room unknown to this instance is skipped, not created.
func (h *Hub) Run(ctx context.Context) {
	if h.bus == nil {
		<-ctx.Done()
		return
	}
	go h.bus.Subscribe(ctx, func(msg BusMessage) {
		rm, err := h.registry.GetRoom(msg.RoomID)
		if err != nil {
			return
		}
		rm.ApplyAndBroadcast(ctx, msg.Payload)
	})
	<-ctx.Done()
}

// ServeWS handles a /ws/{room_id} connection for its whole lifetime.
// The upgrade is accepted first; only then is the room looked up, and an
// unknown room terminates the session without creating a participant.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	roomID := r.PathValue("room_id")

	conn, err := Accept(w, r)
	if err != nil {
		h.log.Error("ws.accept", "err", err)
		return
	}
	ep := NewEndpoint(conn, h.log, h.sendTimeout)

	rm, err := h.registry.GetRoom(roomID)
	if err != nil {
		h.log.Warn("ws.join", "room", roomID, "err", err)
		_ = ep.CloseWith(websocket.StatusPolicyViolation, "unknown room")
		return
	}

	participantID := rm.Join(ep)

	// Keepalive pings until the session ends
	pingCtx, stopPing := context.WithCancel(ctx)
	defer stopPing()
	go func() {
		t := time.NewTicker(20 * time.Second)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				_ = ep.Ping(pingCtx)
			case <-pingCtx.Done():
				return
			}
		}
	}()

	// Inbound reader: every text payload overwrites the document and is
	// fanned out to the whole room, then published for other instances.
	for {
		payload, ok := ep.Read(ctx)
		if !ok {
			break
		}
		rm.ApplyAndBroadcast(ctx, payload)
		if h.bus != nil {
			if err := h.bus.Publish(ctx, roomID, payload); err != nil {
				h.log.Warn("ws.publish", "room", roomID, "err", err)
			}
		}
	}

	// Explicit close and abrupt transport errors take the same exit:
	// the participant leaves exactly once and the loop ends.
	rm.Leave(participantID)
	_ = ep.Close()
}
