package state

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces the slot keys.
const DefaultRedisPrefix = "speech2text"

// RedisSink publishes slots as plain string keys so widgets on other hosts
// can watch a session. Keys are <prefix>:text, <prefix>:level and
// <prefix>:model, written without a TTL.
type RedisSink struct {
	client *redis.Client
	prefix string
}

func NewRedisSink(connStr, prefix string) (*RedisSink, error) {
	opt, err := redis.ParseURL(connStr)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisSink{client: redis.NewClient(opt), prefix: prefix}, nil
}

func (s *RedisSink) key(slot string) string {
	return fmt.Sprintf("%s:%s", s.prefix, slot)
}

func (s *RedisSink) SetText(ctx context.Context, text string) error {
	return s.client.Set(ctx, s.key("text"), text, 0).Err()
}

func (s *RedisSink) SetLevel(ctx context.Context, level int) error {
	return s.client.Set(ctx, s.key("level"), strconv.Itoa(level), 0).Err()
}

func (s *RedisSink) SetModelPath(ctx context.Context, path string) error {
	return s.client.Set(ctx, s.key("model"), path, 0).Err()
}

func (s *RedisSink) Close() error {
	return s.client.Close()
}
