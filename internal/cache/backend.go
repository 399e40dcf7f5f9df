package cache

import (
	"fmt"

	"github.com/aaravmahajanofficial/catalog-admin/internal/config"
	"github.com/redis/go-redis/v9"
)

// New builds the backend selected by cfg.Backend. The redis client is only
// required for the redis backend.
func New(cfg *config.CacheConfig, client *redis.Client) (Cache, error) {
	switch cfg.Backend {
	case "", "memory":
		policy, err := ParsePolicy(cfg.Policy)
		if err != nil {
			return nil, err
		}
		return NewMemoryCache(cfg.Capacity, cfg.DefaultTTL, WithPolicy(policy)), nil
	case "redis":
		if client == nil {
			return nil, fmt.Errorf("redis cache backend requires a redis client")
		}
		return NewRedisCache(client, cfg), nil
	}

	return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
}
