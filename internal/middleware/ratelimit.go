package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"movi-agent/pkg/response"
)

// limiterCapacity caps tracked client IPs; idle entries expire after the TTL.
const (
	limiterCapacity = 1000
	limiterTTL      = 5 * time.Minute
)

type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](limiterCapacity, nil, limiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimit throttles requests per client IP. Disabled in config means a
// pass-through handler.
func (m Middleware) RateLimit() gin.HandlerFunc {
	if !m.cfg.RateLimit.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	rl := newRateLimiter(m.cfg.RateLimit.RequestsPerMin)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !rl.allow(ip) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: throttled %s", ip)
			response.TooManyRequests(c, "Too many requests. Please slow down.")
			c.Abort()
			return
		}
		c.Next()
	}
}
