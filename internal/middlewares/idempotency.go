package middlewares

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tmuriuki/cashlink/internal/logger"
)

const (
	// IdempotencyHeader carries the caller-chosen key.
	IdempotencyHeader = "Idempotency-Key"

	idempotencyTTL = 24 * time.Hour
	// lockTTL bounds how long a crashed request can hold the lock.
	lockTTL = 10 * time.Second

	cachePrefix = "idempotency:"
	lockPrefix  = "idempotency_lock:"
)

// cachingWriter captures the response for replay on a repeated key.
type cachingWriter struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (w *cachingWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *cachingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// IdempotencyMiddleware replays the cached response for a repeated
// Idempotency-Key instead of re-processing the request, and holds a Redis
// lock so two in-flight requests with the same key cannot both run.
// Requests without the header pass through untouched.
func IdempotencyMiddleware(rdb *redis.Client) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			key := r.Header.Get(IdempotencyHeader)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			cacheKey := cachePrefix + key
			lockKey := lockPrefix + key

			cached, err := rdb.Get(ctx, cacheKey).Result()
			if err == nil {
				logger.Log.Infow("idempotency cache hit", "key", key)
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-Idempotency-Hit", "true")
				w.Write([]byte(cached))
				return
			}
			if err != redis.Nil {
				logger.Log.Errorw("idempotency cache lookup failed", "key", key, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			acquired, err := rdb.SetNX(ctx, lockKey, "processing", lockTTL).Result()
			if err != nil {
				logger.Log.Errorw("idempotency lock acquisition failed", "key", key, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if !acquired {
				logger.Log.Warnw("concurrent request with same idempotency key", "key", key)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(map[string]string{
					"error": "A request with this idempotency key is being processed",
				})
				return
			}
			defer func() {
				if err := rdb.Del(ctx, lockKey).Err(); err != nil {
					logger.Log.Errorw("failed to release idempotency lock", "key", key, "error", err)
				}
			}()

			cw := &cachingWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}
			next.ServeHTTP(cw, r)

			// Only successful outcomes are worth replaying.
			if cw.statusCode >= 200 && cw.statusCode < 300 {
				if err := rdb.Set(ctx, cacheKey, cw.body.String(), idempotencyTTL).Err(); err != nil {
					logger.Log.Errorw("failed to cache idempotent response", "key", key, "error", err)
				}
			}
		})
	}
}
