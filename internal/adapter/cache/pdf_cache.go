package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "resume:pdf:"

// RedisPDFCache keeps rendered PDFs in Redis, keyed by the hash of the HTML
// they were printed from, so identical resumes are printed once per TTL.
type RedisPDFCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisPDFCache(client redis.Cmdable, ttl time.Duration) *RedisPDFCache {
	return &RedisPDFCache{client: client, ttl: ttl}
}

func key(hash string) string { return keyPrefix + hash }

func (c *RedisPDFCache) Get(ctx context.Context, hash string) ([]byte, bool, error) {
	b, err := c.client.Get(ctx, key(hash)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get cached pdf %s: %w", hash, err)
	}
	return b, true, nil
}

func (c *RedisPDFCache) Set(ctx context.Context, hash string, pdf []byte) error {
	if err := c.client.Set(ctx, key(hash), pdf, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache pdf %s: %w", hash, err)
	}
	return nil
}
