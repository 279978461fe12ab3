package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/folio-space/core/internal/pkg/redis"
)

// Op is the kind of write an Event reports.
type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Event is published after a write has been committed.
type Event struct {
	Kind string    `json:"kind"`
	Op   Op        `json:"op"`
	ID   string    `json:"id"`
	At   time.Time `json:"at"`
}

// Publisher receives committed write events.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, Event) error { return nil }

// DefaultChannel is the pub/sub channel used when none is configured.
const DefaultChannel = "folio:events"

// RedisPublisher sends events as JSON to a Redis pub/sub channel.
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisPublisher{client: client, channel: channel}
}

func (p *RedisPublisher) Publish(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, p.channel, payload)
}
