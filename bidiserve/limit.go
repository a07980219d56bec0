package main

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maypok86/otter/v2"
	"golang.org/x/time/rate"
)

// clientLimiter hands out a token bucket per client address. Buckets of
// clients which stay quiet for longer than the idle TTL are evicted.
type clientLimiter struct {
	mu       sync.Mutex // serializes get-or-create
	limit    rate.Limit
	burst    int
	limiters *otter.Cache[string, *rate.Limiter]
}

func newClientLimiter(perSecond float64, burst int, idle time.Duration, maxClients int) *clientLimiter {
	return &clientLimiter{
		limit: rate.Limit(perSecond),
		burst: burst,
		limiters: otter.Must(&otter.Options[string, *rate.Limiter]{
			MaximumSize:      maxClients,
			InitialCapacity:  min(maxClients, 1024),
			ExpiryCalculator: otter.ExpiryAccessing[string, *rate.Limiter](idle),
		}),
	}
}

func (cl *clientLimiter) get(client string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	l, ok := cl.limiters.GetIfPresent(client)
	if !ok {
		l = rate.NewLimiter(cl.limit, cl.burst)
		cl.limiters.Set(client, l)
	}
	return l
}

// RateLimit rejects requests of clients exceeding their rate with 429.
func (cl *clientLimiter) RateLimit(m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cl.get(c.ClientIP()).Allow() {
			m.limited.Inc()
			tracer().Debugf("rate limit exceeded for %s", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
