package ws

import (
	"context"
	"encoding/json"

	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Shyamnatesan/Simple-Collaborative-Editor/internal/app"
)

// BusMessage carries one room update between relay instances.
type BusMessage struct {
	RoomID  string `json:"roomId"`
	Payload string `json:"payload"`
	Origin  string `json:"origin"`
}

// RedisBus fans room updates out to sibling relay instances over redis
// pub/sub. Each instance tags what it publishes with its own origin id
// and drops the echo, so a local update is only ever broadcast once.
type RedisBus struct {
	rdb    *redis.Client
	log    *slog.Logger
	origin string
}

// NewRedisBus connects to redis and verifies connectivity
func NewRedisBus(ctx context.Context, cfg app.Config, log *slog.Logger) (*RedisBus, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RedisBus{rdb: rdb, log: log, origin: uuid.NewString()}, nil
}

// Publish sends a room update to the redis channel for that room
func (b *RedisBus) Publish(ctx context.Context, roomID, payload string) error {
	raw, _ := json.Marshal(BusMessage{RoomID: roomID, Payload: payload, Origin: b.origin})
	return b.rdb.Publish(ctx, channel(roomID), raw).Err()
}

// Subscribe listens to all room channels and invokes fn for every
// message published by another instance.
func (b *RedisBus) Subscribe(ctx context.Context, fn func(BusMessage)) {
	pubsub := b.rdb.PSubscribe(ctx, channel("*"))
	ch := pubsub.Channel()

	for {
		select {
		case <-ctx.Done():
			_ = pubsub.Close()
			return
		case msg := <-ch:
			var bm BusMessage
			_ = json.Unmarshal([]byte(msg.Payload), &bm)
			if bm.RoomID == "" || bm.Origin == b.origin {
				continue
			}
			fn(bm)
		}
	}
}

// Close shuts down the redis connection
func (b *RedisBus) Close() { _ = b.rdb.Close() }

// channel namespacing for room pub/sub
func channel(roomID string) string { return "room:" + roomID }
