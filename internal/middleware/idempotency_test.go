package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idempotentRouter(t *testing.T, calls *int) (*gin.Engine, redismock.ClientMock) {
	t.Helper()
	rdb, mock := redismock.NewClientMock()

	r := gin.New()
	r.POST("/jobs/:id/assignments",
		func(c *gin.Context) { c.Set("user_id", "u-1"); c.Next() },
		Idempotency(rdb),
		func(c *gin.Context) {
			*calls++
			c.Data(http.StatusCreated, "application/json", []byte(`{"ok":true}`))
		},
	)
	return r, mock
}

func postWithKey(r *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/jobs/j-1/assignments", nil)
	if key != "" {
		req.Header.Set(IdempotencyHeader, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency(t *testing.T) {
	cacheKey := IdempotencyCacheKey("/jobs/:id/assignments", "u-1", "k-1")
	lockKey := cacheKey + ":lock"

	t.Run("first request runs and is stored", func(t *testing.T) {
		calls := 0
		r, mock := idempotentRouter(t, &calls)

		payload, err := json.Marshal(cachedResponse{Status: http.StatusCreated, ContentType: "application/json", Body: `{"ok":true}`})
		require.NoError(t, err)

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", idempotencyLockTTL).SetVal(true)
		mock.ExpectSet(cacheKey, string(payload), idempotencyResultTTL).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		w := postWithKey(r, "k-1")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("repeat is replayed without running the handler", func(t *testing.T) {
		calls := 0
		r, mock := idempotentRouter(t, &calls)

		payload, _ := json.Marshal(cachedResponse{Status: http.StatusCreated, ContentType: "application/json", Body: `{"ok":true}`})
		mock.ExpectGet(cacheKey).SetVal(string(payload))

		w := postWithKey(r, "k-1")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, `{"ok":true}`, w.Body.String())
		assert.Equal(t, "true", w.Header().Get(IdempotencyReplayHeader))
		assert.Equal(t, 0, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("concurrent duplicate is rejected", func(t *testing.T) {
		calls := 0
		r, mock := idempotentRouter(t, &calls)

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", idempotencyLockTTL).SetVal(false)

		w := postWithKey(r, "k-1")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, 0, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no key passes through", func(t *testing.T) {
		calls := 0
		r, mock := idempotentRouter(t, &calls)

		w := postWithKey(r, "")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
