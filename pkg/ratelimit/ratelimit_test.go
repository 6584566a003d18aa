package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLimiter_AllowsUpToMaxThenRejects(t *testing.T) {
	req := require.New(t)
	h := New(2, time.Minute).Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func() int {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w.Code
	}

	req.Equal(http.StatusOK, do())
	req.Equal(http.StatusOK, do())
	req.Equal(http.StatusTooManyRequests, do())
}

func TestLimiter_BucketsArePerIP(t *testing.T) {
	req := require.New(t)
	h := New(1, time.Minute).Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(addr string) int {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = addr
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w.Code
	}

	req.Equal(http.StatusOK, do("10.0.0.1:1"))
	req.Equal(http.StatusTooManyRequests, do("10.0.0.1:2"))
	req.Equal(http.StatusOK, do("10.0.0.2:1"))
}
