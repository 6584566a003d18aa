package httpx

import (
	"net/http"
	"time"

	"github.com/rs/cors"

	"github.com/Shyamnatesan/Simple-Collaborative-Editor/pkg/ratelimit"
)

type Middleware struct {
	cors   *cors.Cors
	rlimit *ratelimit.Limiter
}

// NewMiddleware builds the shared middleware stack. CORS is wide open on
// purpose: the relay serves browser clients from arbitrary origins.
func NewMiddleware() *Middleware {
	return &Middleware{
		cors: cors.New(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST"},
			AllowedHeaders: []string{"*"},
		}),
		rlimit: ratelimit.New(120, time.Minute),
	}
}

// Wrap applies CORS + rate limiting to a handler
func (m *Middleware) Wrap(h http.Handler) http.Handler {
	return m.cors.Handler(m.rlimit.Middleware(h))
}
