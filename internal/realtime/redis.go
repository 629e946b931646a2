package realtime

import (
	"context"
	"encoding/json"
	"time"

	"github.com/a2sh3r/stablex/internal/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisEmitter publishes events to a redis channel so every instance's Hub receives them.
type RedisEmitter struct {
	client  redis.UniversalClient
	channel string
}

func NewRedisEmitter(client redis.UniversalClient, channel string) *RedisEmitter {
	return &RedisEmitter{client: client, channel: channel}
}

func (e *RedisEmitter) Emit(ctx context.Context, room, event string, payload any) error {
	data, err := json.Marshal(Envelope{Room: room, Event: event, Payload: payload, SentAt: time.Now().UTC()})
	if err != nil {
		return err
	}
	return e.client.Publish(ctx, e.channel, data).Err()
}

// Bridge forwards messages from the redis channel into the local Hub.
type Bridge struct {
	client  redis.UniversalClient
	channel string
	hub     *Hub
}

func NewBridge(client redis.UniversalClient, channel string, hub *Hub) *Bridge {
	return &Bridge{client: client, channel: channel, hub: hub}
}

func (b *Bridge) Run(ctx context.Context) {
	sub := b.client.Subscribe(ctx, b.channel)
	defer func() {
		if err := sub.Close(); err != nil {
			logger.Log.Error("failed to close redis subscription", zap.Error(err))
		}
	}()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			b.forward(msg.Payload)
		}
	}
}

func (b *Bridge) forward(raw string) {
	room, err := roomOf([]byte(raw))
	if err != nil {
		logger.Log.Warn("dropping malformed realtime message", zap.Error(err))
		return
	}
	b.hub.deliver(room, []byte(raw))
}

func roomOf(data []byte) (string, error) {
	var env struct {
		Room string `json:"room"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return "", err
	}
	return env.Room, nil
}
