package repository

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/catalog-admin/internal/config"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLimiter(t *testing.T, maxAttempts int64, window time.Duration, now time.Time) (*redisRepository, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	cfg := &config.Config{RateConfig: config.RateConfig{MaxAttempts: maxAttempts, WindowSize: window}}

	return &redisRepository{client: client, cfg: cfg, now: func() time.Time { return now }}, mock
}

func expectPipeline(mock redismock.ClientMock, key string, now time.Time, window time.Duration, count int64) {
	windowStart := now.Unix() - int64(window.Seconds())

	mock.ExpectZRemRangeByScore(key, "0", strconv.FormatInt(windowStart, 10)).SetVal(0)
	mock.ExpectZAdd(key, redis.Z{Score: float64(now.Unix()), Member: now.UnixNano()}).SetVal(1)
	mock.ExpectZCard(key).SetVal(count)
	mock.ExpectExpire(key, window).SetVal(true)
}

func TestCheckImportRateLimit(t *testing.T) {
	now := time.Unix(1_700_000_100, 500)
	window := time.Minute
	userID := "6f1c2b9e-0c1d-4d8e-9f10-0a1b2c3d4e5f"
	key := "import_attempts:" + userID

	t.Run("Allowed - Under Limit", func(t *testing.T) {
		// Arrange
		limiter, mock := setupLimiter(t, 5, window, now)
		expectPipeline(mock, key, now, window, 2)

		// Act
		allowed, remaining, retryAfter, err := limiter.CheckImportRateLimit(t.Context(), userID)

		// Assert
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, 3, remaining)
		assert.Equal(t, 0, retryAfter)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Allowed - Exactly At Limit", func(t *testing.T) {
		limiter, mock := setupLimiter(t, 5, window, now)
		expectPipeline(mock, key, now, window, 5)

		allowed, remaining, _, err := limiter.CheckImportRateLimit(t.Context(), userID)

		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, 0, remaining)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Denied - Over Limit", func(t *testing.T) {
		// Arrange
		limiter, mock := setupLimiter(t, 5, window, now)
		expectPipeline(mock, key, now, window, 6)

		oldest := now.Add(-20 * time.Second)
		mock.ExpectZRangeArgsWithScores(redis.ZRangeArgs{Key: key, Start: 0, Stop: 0}).
			SetVal([]redis.Z{{Score: float64(oldest.Unix()), Member: "1"}})

		// Act
		allowed, remaining, retryAfter, err := limiter.CheckImportRateLimit(t.Context(), userID)

		// Assert
		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Equal(t, 0, remaining)
		assert.Equal(t, 40, retryAfter)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Denied - Oldest Entry Lookup Fails", func(t *testing.T) {
		limiter, mock := setupLimiter(t, 1, window, now)
		expectPipeline(mock, key, now, window, 2)
		mock.ExpectZRangeArgsWithScores(redis.ZRangeArgs{Key: key, Start: 0, Stop: 0}).SetErr(errors.New("timeout"))

		allowed, _, retryAfter, err := limiter.CheckImportRateLimit(t.Context(), userID)

		assert.Error(t, err)
		assert.False(t, allowed)
		assert.Equal(t, 60, retryAfter)
	})

	t.Run("Failure - Pipeline Error", func(t *testing.T) {
		// Arrange
		limiter, mock := setupLimiter(t, 5, window, now)
		windowStart := now.Unix() - int64(window.Seconds())
		mock.ExpectZRemRangeByScore(key, "0", strconv.FormatInt(windowStart, 10)).SetErr(errors.New("connection refused"))

		// Act
		allowed, _, _, err := limiter.CheckImportRateLimit(t.Context(), userID)

		// Assert
		assert.Error(t, err)
		assert.False(t, allowed)
		assert.Contains(t, err.Error(), "redis pipeline error")
	})
}
