// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"folio/internal/models"
)

// viewKeyPrefix is the Valkey key prefix for view counters.
const viewKeyPrefix = "views:"

// ViewCounter keeps per-item view counts in Valkey so that every server
// instance increments and reads the same number.
type ViewCounter struct {
	client *redis.Client
}

// NewViewCounter creates a view counter backed by the given client.
func NewViewCounter(client *redis.Client) *ViewCounter {
	return &ViewCounter{client: client}
}

// ViewKey returns the counter key for an item.
func ViewKey(t models.ContentType, slug string) string {
	return viewKeyPrefix + string(t) + ":" + slug
}

// Counts reads the counters for slugs in one MGET. Slugs without a counter
// are left out of the result.
func (vc *ViewCounter) Counts(ctx context.Context, t models.ContentType, slugs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(slugs))
	if len(slugs) == 0 {
		return counts, nil
	}

	keys := make([]string, len(slugs))
	for i, s := range slugs {
		keys[i] = ViewKey(t, s)
	}

	vals, err := vc.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("view counter mget: %w", err)
	}
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("view counter %s: %w", keys[i], err)
		}
		counts[slugs[i]] = n
	}
	return counts, nil
}

// Increment seeds the counter with base when it does not exist yet and then
// adds one. SETNX and INCR run in a single MULTI so concurrent first views
// are all counted.
func (vc *ViewCounter) Increment(ctx context.Context, t models.ContentType, slug string, base int64) (int64, error) {
	key := ViewKey(t, slug)

	var incr *redis.IntCmd
	_, err := vc.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SetNX(ctx, key, base, 0)
		incr = pipe.Incr(ctx, key)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("view counter incr: %w", err)
	}
	return incr.Val(), nil
}
