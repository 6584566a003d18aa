package ws

import (
	"io"
	"testing"

	"log/slog"

	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRegistry_CreateRoom_AssignsSequentialIDs(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(testLogger())

	req.Equal("room_1", registry.CreateRoom().ID)
	req.Equal("room_2", registry.CreateRoom().ID)
	req.Equal("room_3", registry.CreateRoom().ID)
	req.Equal(3, registry.Len())
}

func TestRegistry_GetRoom_ReturnsCreatedRoom(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(testLogger())

	created := registry.CreateRoom()
	got, err := registry.GetRoom(created.ID)
	req.NoError(err)
	req.Same(created, got)
}

func TestRegistry_GetRoom_UnknownID(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(testLogger())
	registry.CreateRoom()

	_, err := registry.GetRoom("room_99")
	req.ErrorIs(err, ErrRoomNotFound)
	// A failed lookup must not grow the registry
	req.Equal(1, registry.Len())
}
