// Package redis provides the Redis-backed cache for order read models.
// The cache is read-through: query handlers fill it on a miss, command
// handlers invalidate on mutation, and entries expire with a TTL so a missed
// invalidation heals itself.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ayoya/internal/core/application/usecases/queries"
	"ayoya/internal/core/domain/model/kernel"

	"github.com/go-redis/redis/v8"
)

// DefaultTTL bounds how long a stale entry can survive a missed
// invalidation.
const DefaultTTL = 10 * time.Minute

// OrderCache caches order read models keyed by order ID. It implements both
// the query side (Get/Set) and the command side (Invalidate) cache
// contracts.
type OrderCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewOrderCache creates an order cache over the given Redis address. A ttl
// of zero falls back to DefaultTTL. The connection is verified with a ping
// so a misconfigured address fails at startup, not on first request.
func NewOrderCache(ctx context.Context, addr, password string, db int, ttl time.Duration) (*OrderCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &OrderCache{
		client: client,
		ttl:    ttl,
	}, nil
}

// Close releases the underlying Redis connection.
func (c *OrderCache) Close() error {
	return c.client.Close()
}

// Get returns the cached read model for the order, or (nil, nil) on a cache
// miss.
func (c *OrderCache) Get(ctx context.Context, orderID kernel.UUID) (*queries.OrderReadModel, error) {
	data, err := c.client.Get(ctx, orderKey(orderID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var model queries.OrderReadModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, err
	}

	return &model, nil
}

// Set stores the read model under the order's key with the cache TTL.
func (c *OrderCache) Set(ctx context.Context, model *queries.OrderReadModel) error {
	data, err := json.Marshal(model)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, "order:"+model.ID, data, c.ttl).Err()
}

// Invalidate drops the cached entry for the order after a mutation.
func (c *OrderCache) Invalidate(ctx context.Context, orderID kernel.UUID) error {
	return c.client.Del(ctx, orderKey(orderID)).Err()
}

func orderKey(orderID kernel.UUID) string {
	return "order:" + orderID.String()
}
