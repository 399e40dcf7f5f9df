package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/aaravmahajanofficial/catalog-admin/internal/config"
	"github.com/aaravmahajanofficial/catalog-admin/internal/metrics"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// ResultCache memoizes per-user listing results and aggregates. All methods
// are best effort: backend failures are logged and read as a miss.
type ResultCache struct {
	backend Cache
	ttl     map[string]time.Duration
}

func NewResultCache(backend Cache, cfg *config.CacheConfig) *ResultCache {
	return &ResultCache{
		backend: backend,
		ttl: map[string]time.Duration{
			KindList:    cfg.DefaultTTL,
			KindSummary: cfg.SummaryTTL,
			KindOptions: cfg.OptionsTTL,
		},
	}
}

func UserPrefix(userID uuid.UUID) string {
	return Key(CatalogKeyPrefix, userID.String()) + ":"
}

// ResultKey derives the cache key for a request. Params are JSON encoded,
// and encoding/json writes struct fields in declaration order, so equal
// params always give the same digest. ok is false when params cannot be
// encoded; such requests are not cached.
func ResultKey(userID uuid.UUID, kind string, params any) (key string, ok bool) {
	digest := "all"

	if params != nil {
		data, err := json.Marshal(params)
		if err != nil {
			return "", false
		}
		digest = strconv.FormatUint(xxhash.Sum64(data), 16)
	}

	return Key(CatalogKeyPrefix, userID.String(), kind, digest), true
}

func (c *ResultCache) Lookup(ctx context.Context, userID uuid.UUID, kind string, params any, dest any) bool {
	key, ok := ResultKey(userID, kind, params)
	if !ok {
		metrics.ObserveCacheLookup(kind, false)
		return false
	}

	found, err := c.backend.Get(ctx, key, dest)
	if err != nil {
		slog.WarnContext(ctx, "Result cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		found = false
	}

	metrics.ObserveCacheLookup(kind, found)

	return found
}

func (c *ResultCache) Store(ctx context.Context, userID uuid.UUID, kind string, params any, value any) {
	key, ok := ResultKey(userID, kind, params)
	if !ok {
		slog.WarnContext(ctx, "Result cache skipped, params not encodable", slog.String("kind", kind))
		return
	}

	if err := c.backend.Set(ctx, key, value, c.ttl[kind]); err != nil {
		slog.WarnContext(ctx, "Result cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// Clear drops every cached result of one user.
func (c *ResultCache) Clear(ctx context.Context, userID uuid.UUID) {
	if err := c.backend.DeletePrefix(ctx, UserPrefix(userID)); err != nil {
		slog.WarnContext(ctx, "Result cache clear failed", slog.String("userId", userID.String()), slog.String("error", err.Error()))
		return
	}

	metrics.ObserveCacheInvalidation()
}

func (c *ResultCache) ClearAll(ctx context.Context) {
	if err := c.backend.DeletePrefix(ctx, CatalogKeyPrefix+":"); err != nil {
		slog.WarnContext(ctx, "Result cache flush failed", slog.String("error", err.Error()))
	}
}
