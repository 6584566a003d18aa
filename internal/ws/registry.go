package ws

import (
	"errors"
	"fmt"
	"sync"

	"log/slog"

	"github.com/Shyamnatesan/Simple-Collaborative-Editor/pkg/metrics"
)

// ErrRoomNotFound signals a lookup for a room id that was never created.
var ErrRoomNotFound = errors.New("room not found")

// Registry is the process-wide map of room id to room. It is constructed
// explicitly and handed to every consumer; there is no package-level
// instance. Rooms are never removed, they live for the process lifetime.
type Registry struct {
	log *slog.Logger

	mu      sync.Mutex
	rooms   map[string]*Room
	created int // total rooms ever created, drives id assignment
}

// NewRegistry returns an empty registry.
func NewRegistry(log *slog.Logger) *Registry {
	return &Registry{log: log, rooms: map[string]*Room{}}
}

// CreateRoom allocates the next room id and inserts an empty room.
// It cannot fail; the only side effect is process-wide state growth.
func (g *Registry) CreateRoom() *Room {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.created++
	id := fmt.Sprintf("room_%d", g.created)
	rm := NewRoom(id, g.log)
	g.rooms[id] = rm

	metrics.RoomsCreated.Inc()
	g.log.Info("registry.create", "room", id)
	return rm
}

// GetRoom looks up an existing room by id.
func (g *Registry) GetRoom(id string) (*Room, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	rm := g.rooms[id]
	if rm == nil {
		return nil, ErrRoomNotFound
	}
	return rm, nil
}

// Len returns the number of rooms ever created (none are removed).
func (g *Registry) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.rooms)
}
