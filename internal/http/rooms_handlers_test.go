package httpx

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateRoom_SequentialIDs(t *testing.T) {
	req := require.New(t)
	srv, _ := newTestServer(t)

	req.Equal("room_1", createRoom(t, srv))
	req.Equal("room_2", createRoom(t, srv))
}

func TestGetRoom_Unknown(t *testing.T) {
	req := require.New(t)
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/rooms/room_42")
	req.NoError(err)
	defer resp.Body.Close()
	req.Equal(http.StatusNotFound, resp.StatusCode)
}

func TestHealthEndpoints(t *testing.T) {
	req := require.New(t)
	srv, _ := newTestServer(t)

	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		resp, err := http.Get(srv.URL + path)
		req.NoError(err)
		resp.Body.Close()
		req.Equal(http.StatusOK, resp.StatusCode, path)
	}
}
