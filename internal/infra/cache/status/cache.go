package status

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Metrics интерфейс для метрик кеша (опционально)
type Metrics interface {
	IncCacheHit()
	IncCacheMiss()
	IncCacheError()
}

// Cache короткоживущий кеш ответов статуса поверх redis.
// TTL измеряется десятками секунд, поэтому инвалидация не нужна
type Cache struct {
	client  *redis.Client
	metrics Metrics
}

// NewCache создает кеш статусов. metrics может быть nil
func NewCache(client *redis.Client, metrics Metrics) *Cache {
	return &Cache{client: client, metrics: metrics}
}

// Get возвращает закешированный ответ или ErrCacheMiss
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		c.incMiss()
		return nil, ErrCacheMiss
	}
	if err != nil {
		c.incError()
		return nil, fmt.Errorf("%w: get %s: %v", ErrCacheUnavailable, key, err)
	}

	c.incHit()
	return data, nil
}

// Set кладет ответ в кеш с указанным TTL
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		c.incError()
		return fmt.Errorf("%w: set %s: %v", ErrCacheUnavailable, key, err)
	}
	return nil
}

func (c *Cache) incHit() {
	if c.metrics != nil {
		c.metrics.IncCacheHit()
	}
}

func (c *Cache) incMiss() {
	if c.metrics != nil {
		c.metrics.IncCacheMiss()
	}
}

func (c *Cache) incError() {
	if c.metrics != nil {
		c.metrics.IncCacheError()
	}
}
