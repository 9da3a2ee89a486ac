package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// IdleTTL is how long an unused bucket is kept before it is dropped. A
// dropped key starts again with a full bucket.
const IdleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands out one token bucket per key. Buckets idle for longer
// than IdleTTL are swept, at most once per IdleTTL.
type RateLimiter struct {
	visitors  map[string]*visitor
	mu        sync.Mutex
	rate      rate.Limit
	burst     int
	now       func() time.Time
	lastSweep time.Time
}

func NewRateLimiter(perMinute, burst int) *RateLimiter {
	return &RateLimiter{
		visitors:  make(map[string]*visitor),
		rate:      rate.Every(time.Minute / time.Duration(perMinute)),
		burst:     burst,
		now:       time.Now,
		lastSweep: time.Now(),
	}
}

func (rl *RateLimiter) GetLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) >= IdleTTL {
		for k, v := range rl.visitors {
			if now.Sub(v.lastSeen) >= IdleTTL {
				delete(rl.visitors, k)
			}
		}
		rl.lastSweep = now
	}

	if v, exists := rl.visitors[key]; exists {
		v.lastSeen = now
		return v.limiter
	}

	limiter := rate.NewLimiter(rl.rate, rl.burst)
	rl.visitors[key] = &visitor{limiter: limiter, lastSeen: now}
	return limiter
}

// Middleware keys on the authenticated user, falling back to client IP.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetString(UserIDKey)
		if key == "" {
			key = c.ClientIP()
		}
		if !rl.GetLimiter(key).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			c.Abort()
			return
		}
		c.Next()
	}
}
