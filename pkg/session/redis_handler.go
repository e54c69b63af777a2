package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSaveHandlerName is the save handler name reported by RedisHandler.
const RedisSaveHandlerName = "redis"

// RedisHandler keeps sessions in Redis. Expiry is delegated to key TTLs, so GC
// has nothing to sweep.
type RedisHandler struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

var (
	_ TimestampHandler = (*RedisHandler)(nil)
	_ NamedHandler     = (*RedisHandler)(nil)
)

// RedisOption configures a RedisHandler.
type RedisOption func(*RedisHandler)

// WithRedisPrefix sets the key prefix (default: "sess:").
func WithRedisPrefix(prefix string) RedisOption {
	return func(h *RedisHandler) {
		h.prefix = prefix
	}
}

// WithRedisTTL sets the key TTL (default: 24 minutes).
func WithRedisTTL(ttl time.Duration) RedisOption {
	return func(h *RedisHandler) {
		if ttl > 0 {
			h.ttl = ttl
		}
	}
}

// NewRedisHandler creates a Redis backed handler.
func NewRedisHandler(client redis.UniversalClient, opts ...RedisOption) *RedisHandler {
	h := &RedisHandler{
		client: client,
		prefix: "sess:",
		ttl:    DefaultMaxLifetime,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// SaveHandlerName returns "redis".
func (h *RedisHandler) SaveHandlerName() string {
	return RedisSaveHandlerName
}

// Open is a no-op; the client manages its own connections.
func (h *RedisHandler) Open(context.Context, string, string) (bool, error) {
	return true, nil
}

// Close is a no-op; the client is owned by the caller.
func (h *RedisHandler) Close(context.Context) (bool, error) {
	return true, nil
}

// Read returns an empty string when the key does not exist.
func (h *RedisHandler) Read(ctx context.Context, id string) (string, error) {
	data, err := h.client.Get(ctx, h.key(id)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return data, nil
}

// Write stores data with the configured TTL.
func (h *RedisHandler) Write(ctx context.Context, id, data string) (bool, error) {
	if err := h.client.Set(ctx, h.key(id), data, h.ttl).Err(); err != nil {
		return false, err
	}
	return true, nil
}

// Destroy deletes the session key.
func (h *RedisHandler) Destroy(ctx context.Context, id string) (bool, error) {
	if err := h.client.Del(ctx, h.key(id)).Err(); err != nil {
		return false, err
	}
	return true, nil
}

// GC always returns 0: expired keys are removed by Redis.
func (h *RedisHandler) GC(context.Context, time.Duration) (int, error) {
	return 0, nil
}

// ValidateID reports whether the session key exists.
func (h *RedisHandler) ValidateID(ctx context.Context, id string) (bool, error) {
	n, err := h.client.Exists(ctx, h.key(id)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// UpdateTimestamp refreshes the key TTL and rewrites the data if the key expired meanwhile.
func (h *RedisHandler) UpdateTimestamp(ctx context.Context, id, data string) (bool, error) {
	ok, err := h.client.Expire(ctx, h.key(id), h.ttl).Result()
	if err != nil {
		return false, err
	}
	if ok {
		return true, nil
	}
	return h.Write(ctx, id, data)
}

func (h *RedisHandler) key(id string) string {
	return h.prefix + id
}
