// Copyright (c) 2026 Evenzo. All rights reserved.

// Redis implementation of the volatile event-list cache.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KYusufbd/evenzo-back-end/internal/platform/constants"
)

// ErrCacheMiss is returned by Get when the list is not cached.
var ErrCacheMiss = errors.New("events: cache miss")

// RedisListCache implements [ListCache] on a Redis client.
type RedisListCache struct {
	client *redis.Client
}

// NewListCache creates a new Redis-backed event list cache.
func NewListCache(client *redis.Client) *RedisListCache {
	return &RedisListCache{client: client}
}

/*
Get returns the cached event list.

Returns:
  - []Event: Decoded entities
  - error: ErrCacheMiss when absent/expired, or connectivity errors
*/
func (cache *RedisListCache) Get(context context.Context) ([]Event, error) {
	payload, err := cache.client.Get(context, constants.RedisPrefixEventList).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("redis_event_cache_get_failed: %w", err)
	}

	var events []Event
	if err := json.Unmarshal(payload, &events); err != nil {
		// A corrupt entry behaves like a miss; the caller repopulates it.
		return nil, ErrCacheMiss
	}

	return events, nil
}

/*
Set stores the event list for the given TTL.

Returns:
  - error: Encoding or connectivity errors
*/
func (cache *RedisListCache) Set(context context.Context, events []Event, ttl time.Duration) error {
	payload, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("redis_event_cache_encode_failed: %w", err)
	}

	if err := cache.client.Set(context, constants.RedisPrefixEventList, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis_event_cache_set_failed: %w", err)
	}

	return nil
}

/*
Invalidate drops the cached list after a write.

Returns:
  - error: Deletion failures
*/
func (cache *RedisListCache) Invalidate(context context.Context) error {
	if err := cache.client.Del(context, constants.RedisPrefixEventList).Err(); err != nil {
		return fmt.Errorf("redis_event_cache_invalidate_failed: %w", err)
	}
	return nil
}
