package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/gestiserv/backend/internal/domain/billing"
	"github.com/gestiserv/backend/internal/domain/roster"
	"github.com/gestiserv/backend/internal/infrastructure/config"
)

const defaultScanBatchSize = 100

// RedisTotalsCache implements billing.TotalsCache using Redis
type RedisTotalsCache struct {
	client     *redis.Client
	ownsClient bool // true if we created the client and should close it
	logger     *zap.Logger
}

// RedisTotalsCacheOption is a functional option for configuring the cache
type RedisTotalsCacheOption func(*RedisTotalsCache)

// WithCacheLogger sets the logger for the cache
func WithCacheLogger(logger *zap.Logger) RedisTotalsCacheOption {
	return func(c *RedisTotalsCache) {
		c.logger = logger
	}
}

// NewRedisTotalsCache creates a new Redis-based totals cache
func NewRedisTotalsCache(cfg config.RedisConfig, opts ...RedisTotalsCacheOption) (*RedisTotalsCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	cache := &RedisTotalsCache{
		client:     client,
		ownsClient: true,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache, nil
}

// NewRedisTotalsCacheWithClient creates a cache with an existing Redis client.
// The caller retains ownership of the client and is responsible for closing it.
func NewRedisTotalsCacheWithClient(client *redis.Client, opts ...RedisTotalsCacheOption) *RedisTotalsCache {
	cache := &RedisTotalsCache{
		client:     client,
		ownsClient: false,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache
}

func (c *RedisTotalsCache) cacheKey(kind roster.Kind, key string) string {
	return fmt.Sprintf("totales:%s:%s", kind, key)
}

// Get retrieves a totals snapshot from cache. A miss returns (nil, nil).
func (c *RedisTotalsCache) Get(ctx context.Context, kind roster.Kind, key string) (*billing.TotalsSnapshot, error) {
	data, err := c.client.Get(ctx, c.cacheKey(kind, key)).Bytes()
	if err == redis.Nil {
		c.logger.Debug("Totals cache miss",
			zap.String("kind", kind.String()),
			zap.String("key", key))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get totals from cache: %w", err)
	}

	var snapshot billing.TotalsSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached totals: %w", err)
	}
	return &snapshot, nil
}

// Set stores a totals snapshot with the given TTL
func (c *RedisTotalsCache) Set(ctx context.Context, kind roster.Kind, key string, snapshot *billing.TotalsSnapshot, ttl time.Duration) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal totals snapshot: %w", err)
	}
	return c.client.Set(ctx, c.cacheKey(kind, key), data, ttl).Err()
}

// InvalidateKind drops every cached snapshot for a record kind. Called
// after any write to that kind's records.
func (c *RedisTotalsCache) InvalidateKind(ctx context.Context, kind roster.Kind) error {
	pattern := fmt.Sprintf("totales:%s:*", kind)
	iter := c.client.Scan(ctx, 0, pattern, defaultScanBatchSize).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan totals cache keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate totals cache: %w", err)
	}

	c.logger.Debug("Invalidated totals cache",
		zap.String("kind", kind.String()),
		zap.Int("keys", len(keys)))
	return nil
}

// Close closes the Redis client if this cache owns it
func (c *RedisTotalsCache) Close() error {
	if c.ownsClient {
		return c.client.Close()
	}
	return nil
}

// Ensure RedisTotalsCache implements TotalsCache
var _ billing.TotalsCache = (*RedisTotalsCache)(nil)
