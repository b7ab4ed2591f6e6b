package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/BMarcano/dispatcher/internal/shared/apperror"
	"github.com/BMarcano/dispatcher/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedLimiter hands out one token bucket per key (client IP or user id).
// Buckets idle for longer than limiterIdleTTL are dropped on the next sweep.
type KeyedLimiter struct {
	mu        sync.Mutex
	entries   map[string]*limiterEntry
	r         rate.Limit
	b         int
	now       func() time.Time
	lastSweep time.Time
}

func NewKeyedLimiter(r rate.Limit, b int) *KeyedLimiter {
	return &KeyedLimiter{
		entries: make(map[string]*limiterEntry),
		r:       r,
		b:       b,
		now:     time.Now,
	}
}

func (k *KeyedLimiter) Allow(key string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	if now.Sub(k.lastSweep) > limiterIdleTTL {
		for key, e := range k.entries {
			if now.Sub(e.lastSeen) > limiterIdleTTL {
				delete(k.entries, key)
			}
		}
		k.lastSweep = now
	}

	e, ok := k.entries[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(k.r, k.b)}
		k.entries[key] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

func (k *KeyedLimiter) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}

func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedLimiter(r, b)
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			response.Abort(c, http.StatusTooManyRequests, apperror.CodeRateLimited, "Too many requests from this IP")
			return
		}
		c.Next()
	}
}

// RateLimitByUser keys on the authenticated user; anonymous requests pass.
func RateLimitByUser(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedLimiter(r, b)
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.Next()
			return
		}
		if !limiter.Allow(userID) {
			response.Abort(c, http.StatusTooManyRequests, apperror.CodeRateLimited, "Too many requests from this user")
			return
		}
		c.Next()
	}
}
