package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"demandcast/internal/metrics"
	"demandcast/internal/port"
)

// Redis is a ResultsCache backed by a Redis server, for deployments running
// more than one API instance.
type Redis struct {
	client *redis.Client
}

var _ port.ResultsCache = (*Redis)(nil)

// NewRedis connects to the Redis server described by redisURL
// (redis://[:password@]host:port/db) and verifies the connection with a ping.
func NewRedis(ctx context.Context, redisURL string) (*Redis, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("cache: parsing redis url: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("cache: redis ping: %w", err)
	}

	return &Redis{client: client}, nil
}

func resultsKey(datasetID string) string {
	return "demandcast:results:" + datasetID
}

func (r *Redis) Get(ctx context.Context, datasetID string) ([]byte, bool, error) {
	payload, err := r.client.Get(ctx, resultsKey(datasetID)).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.CacheHits.WithLabelValues("miss").Inc()
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: redis get: %w", err)
	}

	metrics.CacheHits.WithLabelValues("hit").Inc()
	return payload, true, nil
}

func (r *Redis) Set(ctx context.Context, datasetID string, payload []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, resultsKey(datasetID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("cache: redis set: %w", err)
	}
	return nil
}

func (r *Redis) Invalidate(ctx context.Context, datasetID string) error {
	if err := r.client.Del(ctx, resultsKey(datasetID)).Err(); err != nil {
		return fmt.Errorf("cache: redis del: %w", err)
	}
	return nil
}

// Ping reports whether the Redis server is reachable, for readiness checks.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the underlying connection pool.
func (r *Redis) Close() error {
	return r.client.Close()
}
