package repository

import (
	"context"
	"time"
)

// CacheRepository is the byte-level cache used for reference-data listings
// (stations, train types). Writers invalidate by key prefix.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPrefix(ctx context.Context, prefix string) error
}
