package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/Shyamnatesan/Simple-Collaborative-Editor/internal/ws"
)

type RoomsAPI struct{ Registry *ws.Registry }

type createRoomResponse struct {
	RoomID string `json:"room_id"`
}

type roomResponse struct {
	RoomID       string `json:"room_id"`
	Content      string `json:"content"`
	Participants int    `json:"participants"`
}

// Create allocates a new room and returns its id. Cannot fail.
func (a *RoomsAPI) Create(w http.ResponseWriter, _ *http.Request) {
	rm := a.Registry.CreateRoom()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(createRoomResponse{RoomID: rm.ID})
}

// Get returns a room's current document content and member count.
func (a *RoomsAPI) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("room_id")
	rm, err := a.Registry.GetRoom(id)
	if err != nil {
		http.Error(w, "room not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(roomResponse{
		RoomID: rm.ID, Content: rm.Content(), Participants: rm.Size(),
	})
}
