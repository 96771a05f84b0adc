package http

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/nudge/internal/logger"
	"github.com/MKhiriev/nudge/internal/utils"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

type userLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// rateLimiter keeps one token bucket per authenticated user. A zero limit
// disables it.
type rateLimiter struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[int64]*userLimiter
	now      func() time.Time
}

func newRateLimiter(perSecond float64, burst int) *rateLimiter {
	if burst <= 0 {
		burst = max(1, int(math.Ceil(perSecond)))
	}
	return &rateLimiter{
		limit:    rate.Limit(perSecond),
		burst:    burst,
		limiters: make(map[int64]*userLimiter),
		now:      time.Now,
	}
}

func (rl *rateLimiter) enabled() bool {
	return rl != nil && rl.limit > 0
}

// allow takes a token from the user's bucket. Buckets idle for longer than
// limiterIdleTTL are dropped on the way.
func (rl *rateLimiter) allow(userID int64) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for id, ul := range rl.limiters {
		if now.Sub(ul.lastAccess) > limiterIdleTTL {
			delete(rl.limiters, id)
		}
	}

	ul, ok := rl.limiters[userID]
	if !ok {
		ul = &userLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[userID] = ul
	}
	ul.lastAccess = now
	return ul.limiter.AllowN(now, 1)
}

func (rl *rateLimiter) retryAfter() int {
	return max(1, int(math.Ceil(1/float64(rl.limit))))
}

// rateLimit must run after auth.
func (h *Handler) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.limiter.enabled() {
			next.ServeHTTP(w, r)
			return
		}

		userID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok || h.limiter.allow(userID) {
			next.ServeHTTP(w, r)
			return
		}

		logger.FromRequest(r).Warn().Int64("user_id", userID).Msg("rate limit exceeded")
		if h.metrics != nil {
			h.metrics.RecordRateLimited()
		}
		w.Header().Set("Retry-After", strconv.Itoa(h.limiter.retryAfter()))
		utils.WriteError(w, ErrRateLimited.Error(), http.StatusTooManyRequests)
	})
}
