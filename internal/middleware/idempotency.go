package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/BMarcano/dispatcher/internal/shared/apperror"
	"github.com/BMarcano/dispatcher/internal/shared/contextutil"
	"github.com/BMarcano/dispatcher/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	IdempotencyHeader       = "Idempotency-Key"
	IdempotencyReplayHeader = "Idempotent-Replayed"

	idempotencyLockTTL   = 30 * time.Second
	idempotencyResultTTL = 24 * time.Hour
)

type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        string `json:"body"`
}

type bodyRecorder struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

func IdempotencyCacheKey(path, userID, key string) string {
	return fmt.Sprintf("idemp:%s:%s:%s", path, userID, key)
}

// Idempotency replays the stored response of a POST that already succeeded
// under the same Idempotency-Key and rejects a duplicate that arrives while
// the first one is still running. Requests without the header pass through.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader(IdempotencyHeader)
		if rdb == nil || idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		log := contextutil.GetLogger(ctx, zap.L()).Named("idempotency")
		cacheKey := IdempotencyCacheKey(c.FullPath(), c.GetString("user_id"), idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(ctx, cacheKey).Result()
		switch {
		case err == nil:
			var cached cachedResponse
			if jsonErr := json.Unmarshal([]byte(val), &cached); jsonErr == nil {
				c.Header(IdempotencyReplayHeader, "true")
				c.Data(cached.Status, cached.ContentType, []byte(cached.Body))
				c.Abort()
				return
			}
			log.Warn("idempotency cache entry unreadable", zap.String("key", cacheKey))
		case !errors.Is(err, redis.Nil):
			log.Error("idempotency lookup failed", zap.Error(err))
			c.Next()
			return
		}

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			log.Error("idempotency lock failed", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.Abort(c, http.StatusConflict, apperror.CodeConflict, "A request with this Idempotency-Key is still being processed")
			return
		}

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec

		c.Next()

		status := rec.Status()
		if status >= 200 && status < 300 {
			payload, _ := json.Marshal(cachedResponse{
				Status:      status,
				ContentType: rec.Header().Get("Content-Type"),
				Body:        rec.buf.String(),
			})
			if err := rdb.Set(ctx, cacheKey, string(payload), idempotencyResultTTL).Err(); err != nil {
				log.Error("idempotency store failed", zap.Error(err))
			}
		}

		if err := rdb.Del(ctx, lockKey).Err(); err != nil {
			log.Error("idempotency unlock failed", zap.Error(err))
		}
	}
}
