package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/a2sh3r/stablex/internal/logger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type UserLimiter struct {
	visitors map[string]*visitor
	mu       sync.Mutex
	r        rate.Limit
	b        int
	now      func() time.Time
}

func NewUserRateLimiter(r rate.Limit, b int) *UserLimiter {
	return &UserLimiter{
		visitors: make(map[string]*visitor),
		r:        r,
		b:        b,
		now:      time.Now,
	}
}

func (u *UserLimiter) getLimiter(key string) *rate.Limiter {
	u.mu.Lock()
	defer u.mu.Unlock()

	v, exists := u.visitors[key]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(u.r, u.b)}
		u.visitors[key] = v
	}
	v.lastSeen = u.now()
	return v.limiter
}

// Sweep drops the limiters of keys not seen for idle and returns how many were removed.
func (u *UserLimiter) Sweep(idle time.Duration) int {
	u.mu.Lock()
	defer u.mu.Unlock()

	cutoff := u.now().Add(-idle)
	removed := 0
	for key, v := range u.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(u.visitors, key)
			removed++
		}
	}
	return removed
}

// RunCleanup sweeps idle keys every interval until ctx is done.
func (u *UserLimiter) RunCleanup(ctx context.Context, interval, idle time.Duration) {
	if interval <= 0 || idle <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := u.Sweep(idle); n > 0 {
				logger.Log.Debug("rate limiter swept", zap.Int("removed", n))
			}
		}
	}
}

func (u *UserLimiter) size() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.visitors)
}

// RateLimitMiddleware keys on the authenticated user when present, otherwise on the client IP.
func RateLimitMiddleware(limiter *UserLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var key string
			if userID, ok := GetUserID(r.Context()); ok {
				key = "user:" + fmt.Sprint(userID)
			} else {
				ip, _, err := net.SplitHostPort(r.RemoteAddr)
				if err != nil {
					ip = r.RemoteAddr
				}
				key = "ip:" + ip
			}
			if !limiter.getLimiter(key).Allow() {
				logger.Log.Debug("rate limited", zap.String("key", key))
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
