package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/catalog-admin/internal/errors"
	"github.com/aaravmahajanofficial/catalog-admin/internal/utils/response"
)

// ImportLimiter is satisfied by the Redis backed limiter in repositories.
type ImportLimiter interface {
	CheckImportRateLimit(ctx context.Context, userID string) (bool, int, int, error)
}

// LimitImports rejects uploads above the per-user window with 429. It must
// run after Authenticate.
func LimitImports(limiter ImportLimiter) func(http.Handler) http.HandlerFunc {
	return func(next http.Handler) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {

			logger := LoggerFromContext(r.Context())

			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				response.Error(w, errors.UnauthorizedError("Authentication required"))
				return
			}

			allowed, remaining, retryAfter, err := limiter.CheckImportRateLimit(r.Context(), claims.UserID.String())
			if err != nil {
				// the limiter store being down should not block imports
				logger.Error("Import rate limit check failed", slog.Any("error", err))
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				response.Error(w, errors.TooManyRequestsError("Too many imports. Please try again later.").
					WithDetail("retry after "+strconv.Itoa(retryAfter)+" seconds"))
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			next.ServeHTTP(w, r)
		}
	}
}
