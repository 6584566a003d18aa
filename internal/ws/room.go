package ws

import (
	"context"
	"fmt"
	"sync"

	"log/slog"

	"github.com/Shyamnatesan/Simple-Collaborative-Editor/pkg/metrics"
)

// sendStrikeLimit is how many consecutive failed sends a participant
// survives before being dropped as implicitly gone.
const sendStrikeLimit = 3

// Sender pushes one outbound payload to a participant.
type Sender interface {
	Send(ctx context.Context, payload string) error
}

// Participant is one joined connection, identified uniquely within its room.
type Participant struct {
	ID       string
	endpoint Sender
	strikes  int
}

// Room is an isolated broadcast domain owning one Document and the
// ordered set of joined participants. One mutex covers membership and
// the document for the whole mutate-then-broadcast sequence, so updates
// to a room are applied and fanned out in a single per-room order.
type Room struct {
	ID string

	log *slog.Logger

	mu           sync.Mutex
	doc          Document
	participants []*Participant
	joined       int // total joins ever, drives id assignment
}

// NewRoom creates an empty room
func NewRoom(id string, log *slog.Logger) *Room {
	return &Room{ID: id, log: log}
}

// Join adds an endpoint and returns its participant id. Ids come from a
// monotonic per-room join counter so a leave-then-join sequence can
// never reissue a live participant's id.
func (r *Room) Join(endpoint Sender) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.joined++
	p := &Participant{
		ID:       fmt.Sprintf("participant_%d", r.joined),
		endpoint: endpoint,
	}
	r.participants = append(r.participants, p)

	metrics.ParticipantsJoined.Inc()
	metrics.ParticipantsCurrent.Inc()
	r.log.Info("room.join", "room", r.ID, "participant", p.ID)
	return p.ID
}

// Leave removes the participant by id. Absent ids are a no-op so
// duplicate close signals are tolerated.
func (r *Room) Leave(participantID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removeLocked(participantID)
}

func (r *Room) removeLocked(participantID string) {
	for i, p := range r.participants {
		if p.ID == participantID {
			r.participants = append(r.participants[:i], r.participants[i+1:]...)
			metrics.ParticipantsCurrent.Dec()
			r.log.Info("room.leave", "room", r.ID, "participant", p.ID)
			return
		}
	}
}

// ApplyAndBroadcast overwrites the document with payload and sends it to
// every current participant, sender included, exactly once. The room
// lock is held across both steps so the mutation and the fan-out see the
// same membership snapshot. A failed send is logged and skips to the
// next participant; after sendStrikeLimit straight failures the
// participant is treated as gone and removed.
func (r *Room) ApplyAndBroadcast(ctx context.Context, payload string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.doc.SetContent(payload)
	metrics.BroadcastsTotal.Inc()

	var dead []string
	for _, p := range r.participants {
		if err := p.endpoint.Send(ctx, payload); err != nil {
			p.strikes++
			metrics.SendFailures.Inc()
			r.log.Warn("room.send", "room", r.ID, "participant", p.ID, "err", err)
			if p.strikes >= sendStrikeLimit {
				dead = append(dead, p.ID)
			}
			continue
		}
		p.strikes = 0
	}
	for _, id := range dead {
		r.log.Info("room.evict", "room", r.ID, "participant", id)
		r.removeLocked(id)
	}
}

// Content returns the document's current state.
func (r *Room) Content() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.doc.Content()
}

// Size returns the current number of participants.
func (r *Room) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.participants)
}
