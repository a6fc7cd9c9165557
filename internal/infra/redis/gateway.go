package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Gateway stores each serialized collection as a Redis string. A plain SET
// per save matches the whole-collection-overwrite contract exactly.
// Keys are: quizboard:{slot}
type Gateway struct {
	client *redis.Client
	ttl    time.Duration
}

// NewGateway wraps a Redis client. ttl of zero keeps collections forever;
// a positive ttl turns the store into an expiring cache.
func NewGateway(client *redis.Client, ttl time.Duration) *Gateway {
	return &Gateway{client: client, ttl: ttl}
}

func (g *Gateway) Load(ctx context.Context, slot string) ([]byte, bool, error) {
	data, err := g.client.Get(ctx, g.key(slot)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", slot, err)
	}
	return data, true, nil
}

func (g *Gateway) Save(ctx context.Context, slot string, data []byte) error {
	if err := g.client.Set(ctx, g.key(slot), data, g.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", slot, err)
	}
	return nil
}

func (g *Gateway) key(slot string) string {
	return "quizboard:" + slot
}
