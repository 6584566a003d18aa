package httpx

import (
	"net/http"

	"github.com/Shyamnatesan/Simple-Collaborative-Editor/internal/ws"
	"github.com/Shyamnatesan/Simple-Collaborative-Editor/pkg/metrics"
)

// NewRouter wires up all HTTP routes, middleware, and handlers
func NewRouter(hub *ws.Hub, registry *ws.Registry) http.Handler {
	mw := NewMiddleware()
	api := &RoomsAPI{Registry: registry}

	mux := http.NewServeMux()

	// Health / readiness / metrics
	mux.Handle("GET /healthz", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(200) }))
	mux.Handle("GET /readyz", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(200) }))
	mux.Handle("GET /metrics", metrics.Handler())

	// Room API
	mux.Handle("GET /create-room", http.HandlerFunc(api.Create))
	mux.Handle("GET /rooms/{room_id}", http.HandlerFunc(api.Get))

	// WebSocket endpoint
	mux.Handle("GET /ws/{room_id}", http.HandlerFunc(hub.ServeWS))

	// CORS + rate limit applied globally
	return mw.Wrap(mux)
}
