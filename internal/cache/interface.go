package cache

import (
	"context"
	"strings"
	"time"
)

// Cache stores JSON-encoded values. A missing or expired key is reported as
// found=false with a nil error.
type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeletePrefix(ctx context.Context, prefix string) error
	Close() error
}

func Key(parts ...string) string {
	return strings.Join(parts, ":")
}

const (
	CatalogKeyPrefix = "catalog"

	KindList    = "list"
	KindSummary = "summary"
	KindOptions = "options"
)
