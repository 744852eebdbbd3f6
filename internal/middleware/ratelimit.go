package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit provides per-IP token-bucket rate limiting for the friend
// mutation endpoints. r is requests per second, b the burst size.
func RateLimit(r rate.Limit, b int) gin.HandlerFunc {
	var mu sync.Mutex
	limiters := make(map[string]*ipLimiter)

	getLimiter := func(ip string) *rate.Limiter {
		now := time.Now()

		mu.Lock()
		defer mu.Unlock()

		if v, ok := limiters[ip]; ok {
			v.lastSeen = now
			return v.limiter
		}

		// Drop entries idle for more than ten minutes.
		cutoff := now.Add(-10 * time.Minute)
		for key, v := range limiters {
			if v.lastSeen.Before(cutoff) {
				delete(limiters, key)
			}
		}

		v := &ipLimiter{limiter: rate.NewLimiter(r, b), lastSeen: now}
		limiters[ip] = v
		return v.limiter
	}

	return func(c *gin.Context) {
		if !getLimiter(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
