package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartwire/heartwire/internal/config"
)

// SessionActorTTL bounds how long a session keeps its current-actor
// pointer without activity.
const SessionActorTTL = 30 * 24 * time.Hour

// SummaryTTL bounds how long a cached analytics summary is served before
// it is recomputed from the log.
const SummaryTTL = time.Minute

type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache initializes Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return &RedisCache{Client: redis.NewClient(opts)}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return c.Client.Set(ctx, key, value, ttl).Err()
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	return c.Client.Get(ctx, key).Result()
}

func (c *RedisCache) Del(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}

// KeyForSessionActor generates the key holding a session's current actor.
func (c *RedisCache) KeyForSessionActor(sessionID string) string {
	return fmt.Sprintf("session:actor:%s", sessionID)
}

// SetSessionActor records userID as the current actor for a session.
// Called on register and login.
func (c *RedisCache) SetSessionActor(ctx context.Context, sessionID string, userID uint64) error {
	key := c.KeyForSessionActor(sessionID)
	return c.Client.Set(ctx, key, strconv.FormatUint(userID, 10), SessionActorTTL).Err()
}

// GetSessionActor resolves the current actor for a session. Returns
// (0, false, nil) on a cache miss. TTL is refreshed on access since the
// session is active.
func (c *RedisCache) GetSessionActor(ctx context.Context, sessionID string) (uint64, bool, error) {
	key := c.KeyForSessionActor(sessionID)
	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	} else if err != nil {
		return 0, false, err
	}

	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, false, nil
	}
	_ = c.Client.Expire(ctx, key, SessionActorTTL).Err()
	return id, true, nil
}

// KeyForSummary is the cache slot for the serialized analytics summary.
func (c *RedisCache) KeyForSummary() string {
	return "analytics:summary"
}

// SetSummary caches a serialized analytics summary with SummaryTTL.
func (c *RedisCache) SetSummary(ctx context.Context, payload string) error {
	return c.Client.Set(ctx, c.KeyForSummary(), payload, SummaryTTL).Err()
}

// GetSummary returns the cached summary payload, or "" on a miss.
func (c *RedisCache) GetSummary(ctx context.Context) (string, error) {
	val, err := c.Client.Get(ctx, c.KeyForSummary()).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return val, err
}
