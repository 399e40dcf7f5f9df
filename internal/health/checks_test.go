package health_test

import (
	"testing"

	"github.com/aaravmahajanofficial/catalog-admin/internal/config"
	"github.com/aaravmahajanofficial/catalog-admin/internal/health"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHealthHandler(t *testing.T) {
	cfg := &config.Config{
		Database:     config.Database{Host: "localhost", Port: "5432", User: "u", Password: "p", Name: "db", SSLMode: "disable"},
		RedisConnect: config.RedisConnect{Host: "localhost", Port: "6379"},
		Cache:        config.CacheConfig{Backend: "memory"},
	}

	t.Run("Without pooled client", func(t *testing.T) {
		h, err := health.NewHealthHandler(cfg, nil)

		require.NoError(t, err)
		assert.NotNil(t, h)
	})

	t.Run("With pooled client", func(t *testing.T) {
		client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
		t.Cleanup(func() { client.Close() })

		h, err := health.NewHealthHandler(cfg, &health.Endpoints{RedisClient: client})

		require.NoError(t, err)
		assert.NotNil(t, h.Handler())
	})
}
