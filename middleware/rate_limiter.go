package middleware

import (
	"net/http"
	"sync"
	"time"

	"gamelibrary/config"
	"gamelibrary/metrics"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// visitorTTL is how long an idle client keeps its bucket
const visitorTTL = 10 * time.Minute

type RateLimiter struct {
	visitors map[string]*Visitor
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
}

type Visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*Visitor),
		limit:    rate.Limit(cfg.RequestsPerSecond),
		burst:    cfg.Burst,
	}
}

func (rl *RateLimiter) getVisitor(ip string, now time.Time) *Visitor {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, visitor := range rl.visitors {
		if now.Sub(visitor.lastSeen) > visitorTTL {
			delete(rl.visitors, key)
		}
	}

	visitor, exists := rl.visitors[ip]
	if !exists {
		visitor = &Visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[ip] = visitor
	}
	visitor.lastSeen = now
	return visitor
}

// Allow reports whether the client at ip may make a request now
func (rl *RateLimiter) Allow(ip string) bool {
	now := time.Now()
	return rl.getVisitor(ip, now).limiter.AllowN(now, 1)
}

func RateLimiterMiddleware(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			metrics.RateLimiterRejections.WithLabelValues(routeLabel(c)).Inc()

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests. Please try again later.",
			})
			return
		}
		c.Next()
	}
}
