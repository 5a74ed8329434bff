package data

import (
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis"
)

// RedisNotifier publishes match events on a per-session pub/sub channel.
// Delivery is best effort; the turn that triggered the event has already
// been committed by the time Publish runs.
type RedisNotifier struct {
	client redis.Cmdable
}

type notification struct {
	Event   string      `json:"event"`
	Data    interface{} `json:"data"`
	Session string      `json:"session"`
	Gamer   PlayerId    `json:"gamer,omitempty"`
}

func NewRedisNotifier(client redis.Cmdable) *RedisNotifier {
	return &RedisNotifier{
		client: client,
	}
}

func channelKey(session string) string {
	return fmt.Sprintf("lpgame.%v", session)
}

func (n *RedisNotifier) Publish(event string, payload interface{}, session string, gamer PlayerId) error {
	message, err := json.Marshal(notification{
		Event:   event,
		Data:    payload,
		Session: session,
		Gamer:   gamer,
	})
	if err != nil {
		return err
	}

	return n.client.Publish(channelKey(session), message).Err()
}
