// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// response.go provides a Valkey-backed cache for read-only JSON responses.
// A cached body is served as-is, skipping the store scan and encoding.
package cache

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// responseKeyPrefix is the Valkey key prefix for cached responses.
	responseKeyPrefix = "resp:"

	// DefaultResponseTTL is how long a response stays cached.
	DefaultResponseTTL = 30 * time.Second
)

// ResponseCache stores encoded API responses in Valkey.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResponseCache creates a response cache backed by the given client.
func NewResponseCache(client *redis.Client, ttl time.Duration) *ResponseCache {
	if ttl <= 0 {
		ttl = DefaultResponseTTL
	}
	return &ResponseCache{client: client, ttl: ttl}
}

// Get retrieves a cached body. The second result is false on a miss or error.
func (rc *ResponseCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := rc.client.Get(ctx, responseKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		slog.Warn("response cache get error", "key", key, "error", err)
		return nil, false
	}
	return val, true
}

// Set stores a body under key with the configured TTL.
func (rc *ResponseCache) Set(ctx context.Context, key string, body []byte) {
	if err := rc.client.Set(ctx, responseKeyPrefix+key, body, rc.ttl).Err(); err != nil {
		slog.Warn("response cache set error", "key", key, "error", err)
	}
}

// InvalidateAll removes every cached response by scanning for the prefix.
func (rc *ResponseCache) InvalidateAll(ctx context.Context) {
	var cursor uint64
	var deleted int
	for {
		keys, next, err := rc.client.Scan(ctx, cursor, responseKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("response cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := rc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("response cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("response cache cleared", "deleted", deleted)
	}
}

// Middleware serves GET requests from the cache, keyed by the request URI,
// and stores successful JSON responses produced by next.
func (rc *ResponseCache) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		key := r.URL.RequestURI()
		if body, ok := rc.Get(r.Context(), key); ok {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.Header().Set("X-Cache", "HIT")
			w.WriteHeader(http.StatusOK)
			w.Write(body)
			return
		}

		w.Header().Set("X-Cache", "MISS")
		rec := &recorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		if rec.status == http.StatusOK {
			rc.Set(r.Context(), key, rec.body.Bytes())
		}
	})
}

// recorder tees the response body while passing it through.
type recorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (r *recorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *recorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}
