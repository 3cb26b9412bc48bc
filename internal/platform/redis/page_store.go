// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis

import (
	stdctx "context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/spectator/internal/platform/constants"
)

// PageStore keeps rendered GET responses. It satisfies middleware.PageStore.
//
// Entries are never deleted on write. Instead the generation counter moves
// on, old keys stop being asked for, and their TTL clears them out.
type PageStore struct {
	client redis.Cmdable
}

// NewPageStore wraps a client.
func NewPageStore(client redis.Cmdable) *PageStore {
	return &PageStore{client: client}
}

// Generation returns the current write generation, 0 before the first write.
func (store *PageStore) Generation(context stdctx.Context) (int64, error) {
	generation, err := store.client.Get(context, constants.RedisKeyGeneration).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis: read generation: %w", err)
	}
	return generation, nil
}

// Bump advances the generation.
func (store *PageStore) Bump(context stdctx.Context) error {
	if err := store.client.Incr(context, constants.RedisKeyGeneration).Err(); err != nil {
		return fmt.Errorf("redis: bump generation: %w", err)
	}
	return nil
}

// Get returns a cached payload.
func (store *PageStore) Get(context stdctx.Context, key string) ([]byte, bool, error) {
	payload, err := store.client.Get(context, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis: get page: %w", err)
	}
	return payload, true, nil
}

// Set stores a payload with a TTL.
func (store *PageStore) Set(context stdctx.Context, key string, payload []byte, ttl time.Duration) error {
	if err := store.client.Set(context, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis: set page: %w", err)
	}
	return nil
}
